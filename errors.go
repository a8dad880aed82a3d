package jennifer

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Standard sentinel errors for adapter operations.
var (
	// ErrPoolExhausted is returned when a connection checkout times out
	// before the pool can satisfy it.
	ErrPoolExhausted = errors.New("jennifer: connection pool exhausted")

	// ErrTxStarted is returned when attempting to begin a transaction
	// while one is already bound to the calling scope.
	ErrTxStarted = errors.New("jennifer: cannot start a transaction within a transaction")

	// ErrNoTx is returned when a manual rollback is requested and no
	// transaction is bound to the calling scope.
	ErrNoTx = errors.New("jennifer: no active transaction")
)

// BadQueryError represents a driver-level failure during exec, query or
// scalar. It carries the rendered statement and the bound arguments so the
// failure can be reproduced without changing the log level.
type BadQueryError struct {
	Query string
	Args  []any
	Err   error
}

// Error returns the error string.
func (e *BadQueryError) Error() string {
	if len(e.Args) > 0 {
		return fmt.Sprintf("jennifer: %v. Original query was: %s | %v", e.Err, e.Query, e.Args)
	}
	return fmt.Sprintf("jennifer: %v. Original query was: %s", e.Err, e.Query)
}

// Unwrap returns the underlying driver error.
func (e *BadQueryError) Unwrap() error {
	return e.Err
}

// NewBadQueryError returns a new BadQueryError for the given statement.
func NewBadQueryError(err error, query string, args []any) *BadQueryError {
	return &BadQueryError{Query: query, Args: args, Err: err}
}

// IsBadQuery returns true if the error is a BadQueryError.
func IsBadQuery(err error) bool {
	if err == nil {
		return false
	}
	var e *BadQueryError
	return errors.As(err, &e)
}

// PoolExhaustedError represents a checkout that timed out waiting for a
// pooled connection.
type PoolExhaustedError struct {
	Timeout time.Duration
	Err     error
}

// Error returns the error string.
func (e *PoolExhaustedError) Error() string {
	return fmt.Sprintf("jennifer: no free connection after %s", e.Timeout)
}

// Is reports whether the target error matches PoolExhaustedError.
// This allows errors.Is(err, ErrPoolExhausted) to return true.
func (e *PoolExhaustedError) Is(err error) bool {
	return err == ErrPoolExhausted
}

// Unwrap returns the underlying error, usually context.DeadlineExceeded.
func (e *PoolExhaustedError) Unwrap() error {
	return e.Err
}

// NewPoolExhaustedError returns a new PoolExhaustedError.
func NewPoolExhaustedError(timeout time.Duration, err error) *PoolExhaustedError {
	return &PoolExhaustedError{Timeout: timeout, Err: err}
}

// IsPoolExhausted returns true if the error is a PoolExhaustedError.
func IsPoolExhausted(err error) bool {
	if err == nil {
		return false
	}
	var e *PoolExhaustedError
	return errors.As(err, &e) || errors.Is(err, ErrPoolExhausted)
}

// InvalidArgumentError represents a malformed structured option handed to
// the DDL layer, e.g. an unrecognized index kind.
type InvalidArgumentError struct {
	Name  string
	Value any
}

// Error returns the error string.
func (e *InvalidArgumentError) Error() string {
	return fmt.Sprintf("jennifer: invalid %s: %v", e.Name, e.Value)
}

// NewInvalidArgumentError returns a new InvalidArgumentError.
func NewInvalidArgumentError(name string, value any) *InvalidArgumentError {
	return &InvalidArgumentError{Name: name, Value: value}
}

// IsInvalidArgument returns true if the error is an InvalidArgumentError.
func IsInvalidArgument(err error) bool {
	if err == nil {
		return false
	}
	var e *InvalidArgumentError
	return errors.As(err, &e)
}

// UnsupportedOperationError represents an optional DDL capability the
// concrete dialect does not implement.
type UnsupportedOperationError struct {
	Dialect string
	Op      string
}

// Error returns the error string.
func (e *UnsupportedOperationError) Error() string {
	return fmt.Sprintf("jennifer: %s does not support %s", e.Dialect, e.Op)
}

// NewUnsupportedOperationError returns a new UnsupportedOperationError.
func NewUnsupportedOperationError(dialect, op string) *UnsupportedOperationError {
	return &UnsupportedOperationError{Dialect: dialect, Op: op}
}

// IsUnsupportedOperation returns true if the error is an UnsupportedOperationError.
func IsUnsupportedOperation(err error) bool {
	if err == nil {
		return false
	}
	var e *UnsupportedOperationError
	return errors.As(err, &e)
}

// RollbackError wraps an error that occurred while rolling a transaction
// back. The error that triggered the rollback is reported separately so
// callers still observe the original cause.
type RollbackError struct {
	Err error
}

// Error returns the error string.
func (e *RollbackError) Error() string {
	return fmt.Sprintf("jennifer: rollback failed: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *RollbackError) Unwrap() error {
	return e.Err
}

// AggregateError represents multiple errors collected during an operation.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "jennifer: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("jennifer: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
