// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: Postgres connection string or SQLite path (required)
  - DatabaseType: postgres, sqlite or memory (inferred from the URL)
  - RequestTimeout: Per-request deadline (default: 10s)
  - MaxBodyBytes: Request body limit (default: 64 KiB)

# CLI Flags

	-p         Server port
	-d         Database URL
	-t         Database type
	-timeout   Per-request timeout
	-max-body  Request body limit, human readable ("64KiB", "1 MB")
	-env-file  Dotenv file to load (default: .env)

# Environment Variables

Flags fall back to environment variables:

	PORT            → -p
	DATABASE_URL    → -d
	DATABASE_TYPE   → -t
	REQUEST_TIMEOUT → -timeout
	MAX_BODY_SIZE   → -max-body

CLI flags take precedence over environment variables. The env file is
loaded before the fallback, and never overrides a variable that is
already set. A missing env file is not an error.

# Validation

ParseFlags returns an error if:

  - DATABASE_URL is missing (unless the type is memory)
  - DATABASE_TYPE is not one of postgres, sqlite, memory
  - REQUEST_TIMEOUT or MAX_BODY_SIZE cannot be parsed
*/
package cliparse
