// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists survey responses and answers count queries.

# Contract

	Insert(ctx, sub)           → new unique id; the row is written whole or not at all
	CountAll(ctx)              → rows at call time, never cached
	CountGroupedBy(ctx, col)   → (value, count) per distinct value, ordered by value

A store may also implement Snapshotter, which runs a group of reads
against one consistent view.

# Implementations

  - SQLStore: Postgres (github.com/lib/pq) or SQLite (modernc.org/sqlite)
  - MemoryStore: in-process, for tests and the memory database type

# Errors

	ErrStorageUnavailable - store unreachable, query failed, context done
	ErrWriteRejected      - a constraint refused the insert

Errors wrap both the sentinel and the driver error:

	if errors.Is(err, store.ErrWriteRejected) { ... }
*/
package store
