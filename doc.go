// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the survey-pulse API server.

survey-pulse collects survey responses (a profile type plus answers to five
fixed questions) and serves flat counts over them: the total number of
responses, how many share each profile type, and how many gave each answer
to each question.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3318 -d survey.db

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): Postgres connection string or SQLite file path

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): postgres, sqlite or memory (inferred from the URL)
  - REQUEST_TIMEOUT (-timeout): Per-request deadline (default: 10s)
  - MAX_BODY_SIZE (-max-body): Request body limit (default: 64 KiB)

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (save-response, get-stats)
  - survey: ResponseWriter and StatsAggregator
  - store: Storage contract with SQL and in-memory implementations
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, timeouts, JSON helpers
  - metrics: Prometheus instrumentation
  - models: Request/response types
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
