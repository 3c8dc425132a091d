// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/danielhkuo/survey-pulse/models"
)

var (
	// ErrStorageUnavailable means the store could not be reached or a query failed.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrWriteRejected means the store refused a write because of a constraint.
	ErrWriteRejected = errors.New("write rejected")
)

// Reader is the read side of the survey store.
type Reader interface {
	// CountAll returns the number of stored responses at call time.
	CountAll(ctx context.Context) (int, error)
	// CountGroupedBy returns one entry per distinct value of col, ordered by value.
	CountGroupedBy(ctx context.Context, col models.Column) ([]models.GroupCount, error)
}

// Writer is the write side of the survey store.
type Writer interface {
	// Insert appends one response atomically and returns its new id.
	Insert(ctx context.Context, sub models.Submission) (int64, error)
}

type Store interface {
	Reader
	Writer
}

// Snapshotter is implemented by stores that can run several reads
// against one consistent view of the data.
type Snapshotter interface {
	Snapshot(ctx context.Context, fn func(Reader) error) error
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStorageUnavailable, err)
}

func rejected(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrWriteRejected, err)
}
