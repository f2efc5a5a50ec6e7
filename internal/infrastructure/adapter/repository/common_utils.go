package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/amirhossein-jamali/wallet-api/internal/domain/error"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorType represents the type of database error that occurred
type ErrorType string

const (
	DuplicateKeyError ErrorType = "duplicate_key"
	TimeoutError      ErrorType = "timeout"
	ConnectionError   ErrorType = "connection"
	ConstraintError   ErrorType = "constraint"
	UnknownError      ErrorType = "unknown"
)

// PostgreSQL SQLSTATE codes and classes
const (
	pgUniqueViolation   = "23505"
	pgIntegrityClass    = "23"
	pgConnectionClass   = "08"
	pgQueryCanceled     = "57014"
	pgAdminShutdownCode = "57P01"
)

// ErrorClassifier provides methods to classify database errors
type ErrorClassifier struct{}

// NewErrorClassifier creates a new ErrorClassifier
func NewErrorClassifier() *ErrorClassifier {
	return &ErrorClassifier{}
}

// Classify returns the type of error
func (c *ErrorClassifier) Classify(err error) ErrorType {
	switch {
	case err == nil:
		return ""
	case c.IsDuplicateKeyError(err):
		return DuplicateKeyError
	case c.IsTimeoutError(err):
		return TimeoutError
	case c.IsConnectionError(err):
		return ConnectionError
	case c.IsConstraintError(err):
		return ConstraintError
	default:
		return UnknownError
	}
}

// IsDuplicateKeyError checks if the error is a unique constraint violation
func (c *ErrorClassifier) IsDuplicateKeyError(err error) bool {
	if code, ok := sqlState(err); ok {
		return code == pgUniqueViolation
	}
	return err != nil && strings.Contains(err.Error(), "duplicate key")
}

// IsTimeoutError checks if the query ran out of time
func (c *ErrorClassifier) IsTimeoutError(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	code, ok := sqlState(err)
	return ok && code == pgQueryCanceled
}

// IsConnectionError checks if the error is related to database connectivity
func (c *ErrorClassifier) IsConnectionError(err error) bool {
	if err == nil {
		return false
	}
	if code, ok := sqlState(err); ok {
		return strings.HasPrefix(code, pgConnectionClass) || code == pgAdminShutdownCode
	}
	msg := err.Error()
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "connection reset") ||
		strings.Contains(msg, "broken pipe") ||
		strings.Contains(msg, "dial")
}

// IsConstraintError checks if the error is an integrity constraint violation
func (c *ErrorClassifier) IsConstraintError(err error) bool {
	code, ok := sqlState(err)
	return ok && strings.HasPrefix(code, pgIntegrityClass)
}

// Wrap maps a driver error to the domain persistence error, keeping the
// original message for logs
func (c *ErrorClassifier) Wrap(operation string, err error) error {
	return fmt.Errorf("%w: %s %s: %s", errs.ErrDatabaseConnection, operation, c.Classify(err), err.Error())
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, true
	}
	return "", false
}
