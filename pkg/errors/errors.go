package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
	ErrPersist     ErrorCode = "PERSIST"

	// Catalog errors
	ErrCatalogScan       ErrorCode = "CATALOG_SCAN"
	ErrCollectionInvalid ErrorCode = "COLLECTION_INVALID"

	// FileSystem errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileRemove ErrorCode = "FILE_REMOVE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Sync errors
	ErrSyncFailed ErrorCode = "SYNC_FAILED"
)

// DetailSuggestion is the detail key holding a closest-match suggestion
const DetailSuggestion = "suggestion"

// CopilotError represents a structured error with code and details
type CopilotError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CopilotError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CopilotError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CopilotError) Is(target error) bool {
	var targetErr *CopilotError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CopilotError with the given code and message
func New(code ErrorCode, message string) *CopilotError {
	return &CopilotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CopilotError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CopilotError {
	return &CopilotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CopilotError
func Wrap(err error, code ErrorCode, message string) *CopilotError {
	if err == nil {
		return nil
	}
	return &CopilotError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CopilotError {
	if err == nil {
		return nil
	}
	return &CopilotError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CopilotError) WithDetail(key string, value interface{}) *CopilotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CopilotError) WithDetails(details map[string]interface{}) *CopilotError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var copilotErr *CopilotError
	if errors.As(err, &copilotErr) {
		return copilotErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CopilotError
func GetErrorCode(err error) ErrorCode {
	var copilotErr *CopilotError
	if errors.As(err, &copilotErr) {
		return copilotErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CopilotError
func GetErrorDetails(err error) map[string]interface{} {
	var copilotErr *CopilotError
	if errors.As(err, &copilotErr) {
		return copilotErr.Details
	}
	return nil
}

// Suggestion returns the closest-match suggestion attached to a NOT_FOUND
// error, or an empty string.
func Suggestion(err error) string {
	if s, ok := GetErrorDetails(err)[DetailSuggestion].(string); ok {
		return s
	}
	return ""
}
