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
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the operation conflicts with the current state of the
// resource, e.g. re-sealing a period that already has a monthly snapshot.
var ErrConflict = errors.New("conflict with existing state")

// ErrShiftInProgress indicates that the employee's open period is being sealed right
// now. The caller may retry once the shift completes.
var ErrShiftInProgress = errors.New("shift in progress, retry later")

// ErrPartialArchival indicates that a period seal left partial state behind
// (snapshot written but open entries not cleared). Requires operator reconciliation;
// must never be retried blindly.
var ErrPartialArchival = errors.New("partial archival, manual reconciliation required")

// ErrStorageUnavailable indicates a transient storage failure. Safe to retry with backoff.
var ErrStorageUnavailable = errors.New("storage unavailable")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrRefreshTokenExpired indicates the stored refresh token has expired.
var ErrRefreshTokenExpired = errors.New("refresh token expired")

// AppError carries an HTTP-ish status code alongside a wrapped cause. Used by the
// repository layer for failures that have no sentinel of their own.
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

// NewAppError creates a new AppError wrapping err.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
