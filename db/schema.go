// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// Dialect selects the SQL flavor of the backing database.
type Dialect string

const (
	Postgres Dialect = "postgres"
	SQLite   Dialect = "sqlite"
)

// DriverName returns the database/sql driver registered for the dialect.
func (d Dialect) DriverName() string {
	switch d {
	case Postgres:
		return "postgres"
	case SQLite:
		return "sqlite"
	}
	return ""
}

// CreateSchema creates the survey_responses table for the given dialect.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB, dialect Dialect) error {
	var stmts []string
	switch dialect {
	case Postgres:
		stmts = postgresSchema
	case SQLite:
		stmts = sqliteSchema
	default:
		return fmt.Errorf("unsupported database dialect %q", dialect)
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}

	return nil
}

var postgresSchema = []string{`
CREATE TABLE IF NOT EXISTS survey_responses (
    id SERIAL PRIMARY KEY,
    profile_type TEXT NOT NULL DEFAULT '',
    question_1 TEXT NOT NULL DEFAULT '',
    question_2 TEXT NOT NULL DEFAULT '',
    question_3 TEXT NOT NULL DEFAULT '',
    question_4 TEXT NOT NULL DEFAULT '',
    question_5 TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT NOW()
)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_responses_profile_type ON survey_responses(profile_type)`,
}

// AUTOINCREMENT keeps SQLite from handing out the id of a removed max row again.
var sqliteSchema = []string{`
CREATE TABLE IF NOT EXISTS survey_responses (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    profile_type TEXT NOT NULL DEFAULT '',
    question_1 TEXT NOT NULL DEFAULT '',
    question_2 TEXT NOT NULL DEFAULT '',
    question_3 TEXT NOT NULL DEFAULT '',
    question_4 TEXT NOT NULL DEFAULT '',
    question_5 TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`,
	`CREATE INDEX IF NOT EXISTS idx_survey_responses_profile_type ON survey_responses(profile_type)`,
}
