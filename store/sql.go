// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/danielhkuo/survey-pulse/db"
	"github.com/danielhkuo/survey-pulse/models"
)

const (
	insertPostgres = `
		INSERT INTO survey_responses
		    (profile_type, question_1, question_2, question_3, question_4, question_5)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	insertSQLite = `
		INSERT INTO survey_responses
		    (profile_type, question_1, question_2, question_3, question_4, question_5)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING id`
)

// querier is satisfied by both *sql.DB and *sql.Tx
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// SQLStore keeps survey responses in Postgres or SQLite.
type SQLStore struct {
	db      *sql.DB
	dialect db.Dialect
}

func NewSQLStore(conn *sql.DB, dialect db.Dialect) *SQLStore {
	return &SQLStore{db: conn, dialect: dialect}
}

// Open connects to the database and verifies the connection.
// SQLite is limited to a single connection so writers queue instead of
// failing with SQLITE_BUSY.
func Open(ctx context.Context, dialect db.Dialect, url string) (*SQLStore, error) {
	driver := dialect.DriverName()
	if driver == "" {
		return nil, fmt.Errorf("unsupported database dialect %q", dialect)
	}

	conn, err := sql.Open(driver, url)
	if err != nil {
		return nil, unavailable("open", err)
	}
	if dialect == db.SQLite {
		conn.SetMaxOpenConns(1)
	}

	if err := conn.PingContext(ctx); err != nil {
		conn.Close()
		return nil, unavailable("ping", err)
	}

	return NewSQLStore(conn, dialect), nil
}

// DB exposes the underlying handle, used for schema creation.
func (s *SQLStore) DB() *sql.DB { return s.db }

func (s *SQLStore) Dialect() db.Dialect { return s.dialect }

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) Insert(ctx context.Context, sub models.Submission) (int64, error) {
	query := insertPostgres
	if s.dialect == db.SQLite {
		query = insertSQLite
	}

	var id int64
	err := s.db.QueryRowContext(ctx, query,
		sub.ProfileType,
		sub.Answers[0], sub.Answers[1], sub.Answers[2], sub.Answers[3], sub.Answers[4],
	).Scan(&id)
	if err != nil {
		if isConstraintViolation(err) {
			return 0, rejected("insert response", err)
		}
		return 0, unavailable("insert response", err)
	}

	return id, nil
}

func (s *SQLStore) CountAll(ctx context.Context) (int, error) {
	return countAll(ctx, s.db)
}

func (s *SQLStore) CountGroupedBy(ctx context.Context, col models.Column) ([]models.GroupCount, error) {
	return countGroupedBy(ctx, s.db, col)
}

// Snapshot runs fn inside one read transaction. On Postgres this is a
// read-only REPEATABLE READ transaction. SQLite transactions already read
// from a single snapshot once the first statement runs.
func (s *SQLStore) Snapshot(ctx context.Context, fn func(Reader) error) error {
	var opts *sql.TxOptions
	if s.dialect == db.Postgres {
		opts = &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true}
	}

	tx, err := s.db.BeginTx(ctx, opts)
	if err != nil {
		return unavailable("begin snapshot", err)
	}
	// Nothing is written, so rolling back just releases the connection
	defer tx.Rollback()

	return fn(txReader{tx: tx})
}

type txReader struct {
	tx *sql.Tx
}

func (r txReader) CountAll(ctx context.Context) (int, error) {
	return countAll(ctx, r.tx)
}

func (r txReader) CountGroupedBy(ctx context.Context, col models.Column) ([]models.GroupCount, error) {
	return countGroupedBy(ctx, r.tx, col)
}

func countAll(ctx context.Context, q querier) (int, error) {
	var count int
	if err := q.QueryRowContext(ctx, `SELECT COUNT(*) FROM survey_responses`).Scan(&count); err != nil {
		return 0, unavailable("count responses", err)
	}
	return count, nil
}

func countGroupedBy(ctx context.Context, q querier, col models.Column) ([]models.GroupCount, error) {
	// Identifiers cannot be bound as parameters; col is checked against a closed set
	if !col.Valid() {
		return nil, fmt.Errorf("unknown column %q", col)
	}

	query := fmt.Sprintf(`
		SELECT %[1]s, COUNT(*)
		FROM survey_responses
		GROUP BY %[1]s
		ORDER BY %[1]s`, col)

	rows, err := q.QueryContext(ctx, query)
	if err != nil {
		return nil, unavailable("group by "+string(col), err)
	}
	defer rows.Close()

	counts := []models.GroupCount{}
	for rows.Next() {
		var gc models.GroupCount
		if err := rows.Scan(&gc.Value, &gc.Count); err != nil {
			return nil, unavailable("scan "+string(col), err)
		}
		counts = append(counts, gc)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable("group by "+string(col), err)
	}

	return counts, nil
}

// isConstraintViolation recognizes integrity errors from either driver:
// SQLSTATE class 23 on Postgres, SQLITE_CONSTRAINT on SQLite.
func isConstraintViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code.Class() == "23"
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		// Extended result codes keep the primary code in the low byte
		return liteErr.Code()&0xff == sqlite3.SQLITE_CONSTRAINT
	}

	return false
}
