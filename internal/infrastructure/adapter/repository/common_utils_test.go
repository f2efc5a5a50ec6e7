package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestErrorClassifierClassify(t *testing.T) {
	c := NewErrorClassifier()

	tests := []struct {
		name     string
		err      error
		expected ErrorType
	}{
		{name: "Nil", err: nil, expected: ""},
		{name: "Unique Violation", err: &pgconn.PgError{Code: "23505"}, expected: DuplicateKeyError},
		{name: "Wrapped Unique Violation", err: fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), expected: DuplicateKeyError},
		{name: "Not Null Violation", err: &pgconn.PgError{Code: "23502"}, expected: ConstraintError},
		{name: "Query Canceled", err: &pgconn.PgError{Code: "57014"}, expected: TimeoutError},
		{name: "Deadline", err: context.DeadlineExceeded, expected: TimeoutError},
		{name: "Connection Failure", err: &pgconn.PgError{Code: "08006"}, expected: ConnectionError},
		{name: "Refused", err: errors.New("dial tcp: connection refused"), expected: ConnectionError},
		{name: "Other", err: errors.New("syntax error"), expected: UnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, c.Classify(tt.err))
		})
	}
}

func TestErrorClassifierWrap(t *testing.T) {
	err := NewErrorClassifier().Wrap("create transaction", errors.New("connection refused"))

	assert.ErrorIs(t, err, errs.ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "create transaction")
	assert.Contains(t, err.Error(), string(ConnectionError))
}
