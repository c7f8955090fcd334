package database

import (
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{name: "postgres unique violation", err: &pq.Error{Code: "23505"}, expected: true},
		{name: "wrapped postgres unique violation", err: fmt.Errorf("insert: %w", &pq.Error{Code: "23505"}), expected: true},
		{name: "postgres other error", err: &pq.Error{Code: "23503"}, expected: false},
		{name: "mysql duplicate entry", err: &mysql.MySQLError{Number: 1062}, expected: true},
		{name: "mysql other error", err: &mysql.MySQLError{Number: 1452}, expected: false},
		{name: "plain error", err: assert.AnError, expected: false},
		{name: "nil", err: nil, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsUniqueViolation(tt.err))
		})
	}
}
