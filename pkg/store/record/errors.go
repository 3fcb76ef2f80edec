package record

import "errors"

// StoreError represents a domain error from record store operations.
//
// These are business outcomes (record not found, duplicate email) rather than
// infrastructure failures. The HTTP layer translates codes to status codes;
// infrastructure failures travel as wrapped plain errors instead.
type StoreError struct {
	// Code is the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *StoreError) Error() string {
	return e.Message
}

// ErrorCode is the category of a store error.
type ErrorCode int

const (
	// ErrNotFound indicates the record does not exist. A malformed id is
	// reported the same way so callers cannot probe for existence.
	ErrNotFound ErrorCode = iota

	// ErrAlreadyExists indicates a uniqueness violation (duplicate email).
	ErrAlreadyExists
)

// IsNotFound reports whether err is a StoreError with ErrNotFound.
func IsNotFound(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrNotFound
}

// IsAlreadyExists reports whether err is a StoreError with ErrAlreadyExists.
func IsAlreadyExists(err error) bool {
	var se *StoreError
	return errors.As(err, &se) && se.Code == ErrAlreadyExists
}
