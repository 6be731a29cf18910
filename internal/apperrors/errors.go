package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// Storage uniqueness violations are always mapped to this error.
var ErrDuplicate = errors.New("resource already exists")

// Ledger errors.
var (
	ErrInvalidAmount        = errors.New("amount must be a positive integer")
	ErrInsufficientBalance  = errors.New("insufficient balance")
	ErrTransferNotPermitted = errors.New("transfer not permitted")
	ErrAccountSuspended     = errors.New("account suspended")
	ErrInvalidCurrency      = errors.New("invalid currency")
)

// AppError carries an HTTP-ish status code alongside the wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates a new AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
