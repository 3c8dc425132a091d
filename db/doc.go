// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes the survey table for a dialect:

	if err := db.CreateSchema(conn, db.Postgres); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for the table and index.

# Dialects

  - Postgres: driver "postgres" (github.com/lib/pq), id is SERIAL
  - SQLite: driver "sqlite" (modernc.org/sqlite), id is AUTOINCREMENT

# Tables

	survey_responses (
	    id            auto-assigned, unique
	    profile_type  TEXT NOT NULL DEFAULT ''
	    question_1..5 TEXT NOT NULL DEFAULT ''
	    created_at    TIMESTAMP
	)

Rows are append-only. Nothing in the API updates or deletes them.

# Indexes

  - survey_responses.profile_type
*/
package db
