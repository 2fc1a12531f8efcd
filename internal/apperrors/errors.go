package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientEquity is matched by InsufficientEquityError through errors.Is.
var ErrInsufficientEquity = errors.New("insufficient equity")

// ErrIntegrityConflict means a storage constraint rejected a write that the
// services should already have refused. It is never expected in normal operation.
var ErrIntegrityConflict = errors.New("storage integrity conflict")

// ErrStoreBusy means the store gave up waiting for a lock. Callers may retry.
var ErrStoreBusy = errors.New("store is busy")

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

// InsufficientEquityError reports how much capital was available when a
// transfer asked for more.
type InsufficientEquityError struct {
	AccountID int64
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientEquityError) Error() string {
	return fmt.Sprintf("insufficient equity: %s available, %s requested",
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

// Is lets errors.Is(err, ErrInsufficientEquity) match.
func (e *InsufficientEquityError) Is(target error) bool {
	return target == ErrInsufficientEquity
}

// IsRetryable reports whether err is a transient lock-wait failure.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrStoreBusy)
}
