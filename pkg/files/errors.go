package files

import "errors"

// WorkflowError represents a business outcome of a file-metadata operation.
//
// The HTTP layer translates codes to status codes and sends Message as the
// error body. Ownership mismatches surface as ErrNotFound on purpose: a
// caller probing someone else's record cannot distinguish "absent" from
// "forbidden".
type WorkflowError struct {
	// Code is the outcome category.
	Code ErrorCode

	// Message is the caller-visible description.
	Message string
}

// Error implements the error interface.
func (e *WorkflowError) Error() string {
	return e.Message
}

// ErrorCode is the category of a workflow outcome.
type ErrorCode int

const (
	// ErrValidation indicates missing or invalid request fields, including
	// a bad parent reference.
	ErrValidation ErrorCode = iota

	// ErrNotFound indicates an unknown id, a malformed id, or an
	// authorization denial masked as absence.
	ErrNotFound

	// ErrBadRequest indicates a semantically invalid operation, such as
	// reading the content of a folder.
	ErrBadRequest

	// ErrInternal indicates a storage failure.
	ErrInternal
)

// CodeOf extracts the workflow error code from err. The second return is
// false when err is not a WorkflowError.
func CodeOf(err error) (ErrorCode, bool) {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Code, true
	}
	return 0, false
}

func validationErr(message string) *WorkflowError {
	return &WorkflowError{Code: ErrValidation, Message: message}
}

var (
	errNotFound    = &WorkflowError{Code: ErrNotFound, Message: "Not found"}
	errFolderData  = &WorkflowError{Code: ErrBadRequest, Message: "A folder doesn't have content"}
	errSavingFile  = &WorkflowError{Code: ErrInternal, Message: "Error saving the file"}
	errReadingFile = &WorkflowError{Code: ErrInternal, Message: "Error reading the file"}
)
