// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/danielhkuo/survey-pulse/models"
)

// MemoryStore keeps responses in process memory. It backs the "memory"
// database type and most tests.
type MemoryStore struct {
	mu     sync.RWMutex
	rows   []models.SurveyResponse
	lastID int64
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Insert(ctx context.Context, sub models.Submission) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, unavailable("insert response", err)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastID++
	m.rows = append(m.rows, models.SurveyResponse{ID: m.lastID, Submission: sub})
	return m.lastID, nil
}

func (m *MemoryStore) CountAll(ctx context.Context) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return memoryReader(m.rows).CountAll(ctx)
}

func (m *MemoryStore) CountGroupedBy(ctx context.Context, col models.Column) ([]models.GroupCount, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return memoryReader(m.rows).CountGroupedBy(ctx, col)
}

// Snapshot hands fn a frozen view; inserts made while fn runs are not visible to it.
func (m *MemoryStore) Snapshot(ctx context.Context, fn func(Reader) error) error {
	m.mu.RLock()
	frozen := slices.Clone(m.rows)
	m.mu.RUnlock()

	return fn(memoryReader(frozen))
}

// Responses returns a copy of everything stored, in insertion order.
func (m *MemoryStore) Responses() []models.SurveyResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return slices.Clone(m.rows)
}

type memoryReader []models.SurveyResponse

func (r memoryReader) CountAll(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, unavailable("count responses", err)
	}
	return len(r), nil
}

func (r memoryReader) CountGroupedBy(ctx context.Context, col models.Column) ([]models.GroupCount, error) {
	if !col.Valid() {
		return nil, fmt.Errorf("unknown column %q", col)
	}
	if err := ctx.Err(); err != nil {
		return nil, unavailable("group by "+string(col), err)
	}

	counts := map[string]int{}
	for _, row := range r {
		counts[columnValue(row.Submission, col)]++
	}

	result := make([]models.GroupCount, 0, len(counts))
	for v, n := range counts {
		result = append(result, models.GroupCount{Value: v, Count: n})
	}
	slices.SortFunc(result, func(a, b models.GroupCount) int {
		return strings.Compare(a.Value, b.Value)
	})
	return result, nil
}

func columnValue(sub models.Submission, col models.Column) string {
	if col == models.ColumnProfileType {
		return sub.ProfileType
	}
	for n := 1; n <= models.QuestionCount; n++ {
		if c, _ := models.QuestionColumn(n); c == col {
			return sub.Answers[n-1]
		}
	}
	return ""
}
