package errors

import (
	stderrors "errors"
	"fmt"
	"time"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrInvalidRepoURL   ErrorType = "INVALID_REPO_URL"
	ErrRateLimit        ErrorType = "RATE_LIMIT"
	ErrTransport        ErrorType = "TRANSPORT"
	ErrMalformedRecord  ErrorType = "MALFORMED_RECORD"
	ErrCollectionFailed ErrorType = "COLLECTION_FAILED"
)

// AppError represents an application error
type AppError struct {
	Type      ErrorType
	Message   string
	Cause     error
	Timestamp time.Time
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(errType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:      errType,
		Message:   message,
		Cause:     cause,
		Timestamp: time.Now(),
	}
}

// hasType walks the cause chain looking for an AppError of the given type.
// A COLLECTION_FAILED error wrapping a RATE_LIMIT cause matches both types,
// so callers can detect the rate limit through the umbrella error.
func hasType(err error, errType ErrorType) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Type == errType {
			return true
		}
		err = stderrors.Unwrap(err)
	}
	return false
}

// IsInvalidRepoURL checks if the error is an invalid repository URL error
func IsInvalidRepoURL(err error) bool {
	return hasType(err, ErrInvalidRepoURL)
}

// IsRateLimit checks if the error is, or was caused by, a rate limit error
func IsRateLimit(err error) bool {
	return hasType(err, ErrRateLimit)
}

// IsTransport checks if the error is, or was caused by, a transport failure
func IsTransport(err error) bool {
	return hasType(err, ErrTransport)
}

// IsMalformedRecord checks if the error is a per-record normalization failure
func IsMalformedRecord(err error) bool {
	return hasType(err, ErrMalformedRecord)
}

// IsCollectionFailed checks if the error is a collection-level failure
func IsCollectionFailed(err error) bool {
	return hasType(err, ErrCollectionFailed)
}
