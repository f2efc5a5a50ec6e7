package error

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeValidation          = 4000
	CodeInvalidAmount       = 4002
	CodeInvalidUserID       = 4003
	CodeInvalidTransaction  = 4004
	CodeInvalidAddress      = 4005
	CodeTransactionNotFound = 4040
	CodeTooManyRequests     = 4290

	// 5xxx - Server errors
	CodeInternalServer  = 5000
	CodeDatabase        = 5001
	CodeUpstreamService = 5020
)

// Base error types
var (
	// ErrValidation is returned when one or more request fields are invalid
	ErrValidation = errors.New("validation failed")

	// ErrInvalidAmount is returned when the transaction amount is not a valid decimal
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidUserID is returned when the user ID is empty or too long
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidCurrency is returned when the currency code is empty or too long
	ErrInvalidCurrency = errors.New("invalid currency")

	// ErrInvalidTransactionID is returned when a transaction ID is not a UUID
	ErrInvalidTransactionID = errors.New("invalid transaction ID")

	// ErrInvalidAddress is returned when a wallet address is not a hex address
	ErrInvalidAddress = errors.New("invalid wallet address")

	// ErrTransactionNotFound is returned when the requested transaction doesn't exist
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrNotFound is returned when no route matches the request path
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrDatabaseConnection is returned when the record store fails
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrUpstreamService is returned when the balance-query service fails
	ErrUpstreamService = errors.New("balance service unavailable")

	// ErrTooManyRequests is returned when the rate limit is exceeded
	ErrTooManyRequests = errors.New("too many requests")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidTransactionID):
		return CodeInvalidTransaction
	case errors.Is(err, ErrInvalidAddress):
		return CodeInvalidAddress
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidRequest):
		return CodeValidation
	case errors.Is(err, ErrTransactionNotFound), errors.Is(err, ErrNotFound):
		return CodeTransactionNotFound
	case errors.Is(err, ErrTooManyRequests):
		return CodeTooManyRequests
	case errors.Is(err, ErrDatabaseConnection):
		return CodeDatabase
	case errors.Is(err, ErrUpstreamService):
		return CodeUpstreamService
	default:
		return CodeInternalServer
	}
}

// ValidationError collects per-field validation messages
type ValidationError struct {
	Fields map[string][]string
}

// NewValidationError creates an empty validation error
func NewValidationError() *ValidationError {
	return &ValidationError{Fields: make(map[string][]string)}
}

// Add records a message for a field
func (e *ValidationError) Add(field, message string) {
	e.Fields[field] = append(e.Fields[field], message)
}

// Merge copies all messages of other into e
func (e *ValidationError) Merge(other *ValidationError) {
	if other == nil {
		return
	}
	for field, messages := range other.Fields {
		for _, msg := range messages {
			if !e.has(field, msg) {
				e.Add(field, msg)
			}
		}
	}
}

func (e *ValidationError) has(field, message string) bool {
	for _, m := range e.Fields[field] {
		if m == message {
			return true
		}
	}
	return false
}

// HasErrors reports whether any field failed
func (e *ValidationError) HasErrors() bool {
	return len(e.Fields) > 0
}

// OrNil returns e if it holds errors, nil otherwise
func (e *ValidationError) OrNil() error {
	if e == nil || !e.HasErrors() {
		return nil
	}
	return e
}

// Error implements the error interface for ValidationError
func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, field := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", field, strings.Join(e.Fields[field], "; ")))
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, ", "))
}

// Is checks if the target error is an ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// LogFields returns a map of fields for structured logging
func (e *ValidationError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "validation_error",
		"fields":     e.Fields,
		"error_code": CodeValidation,
	}
}

// UpstreamServiceError describes a failed call to the balance-query service
type UpstreamServiceError struct {
	Service   string
	Operation string
	Err       error
}

// Error implements the error interface for UpstreamServiceError
func (e *UpstreamServiceError) Error() string {
	return fmt.Sprintf("%s %s failed: %v", e.Service, e.Operation, e.Err)
}

// Unwrap returns the underlying error
func (e *UpstreamServiceError) Unwrap() error {
	return e.Err
}

// Is checks if the target error is an ErrUpstreamService
func (e *UpstreamServiceError) Is(target error) bool {
	return target == ErrUpstreamService
}

// LogFields returns a map of fields for structured logging
func (e *UpstreamServiceError) LogFields() map[string]any {
	fields := map[string]any{
		"error_type": "upstream_service_error",
		"service":    e.Service,
		"operation":  e.Operation,
		"error_code": CodeUpstreamService,
	}
	if e.Err != nil {
		fields["error"] = e.Err.Error()
	}
	return fields
}

// NewUpstreamServiceError creates a new upstream service error
func NewUpstreamServiceError(service, operation string, err error) error {
	return &UpstreamServiceError{
		Service:   service,
		Operation: operation,
		Err:       err,
	}
}

// AsValidationError extracts a ValidationError from an error chain
func AsValidationError(err error) (*ValidationError, bool) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		return verr, true
	}
	return nil, false
}

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsUpstreamServiceError checks if the error came from the balance-query service
func IsUpstreamServiceError(err error) bool {
	return errors.Is(err, ErrUpstreamService)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrTransactionNotFound) || errors.Is(err, ErrNotFound)
}

// IsPersistenceError checks if the error came from the record store
func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrDatabaseConnection)
}
