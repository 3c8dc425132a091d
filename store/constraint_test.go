// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsConstraintViolation_Postgres(t *testing.T) {
	tests := []struct {
		code     pq.ErrorCode
		expected bool
	}{
		{"23505", true},  // unique_violation
		{"23514", true},  // check_violation
		{"08006", false}, // connection_failure
		{"42P01", false}, // undefined_table
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			err := fmt.Errorf("wrapped: %w", &pq.Error{Code: tt.code})
			assert.Equal(t, tt.expected, isConstraintViolation(err))
		})
	}
}

func TestIsConstraintViolation_Other(t *testing.T) {
	assert.False(t, isConstraintViolation(errors.New("connection refused")))
}
