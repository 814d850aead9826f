package errors

import (
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// NoSourceFiles indicates the scan found zero analyzable source files.
	// This is the only terminal condition during analysis.
	NoSourceFiles ErrorCode = "NO_SOURCE_FILES"
	// ConfigInvalid indicates the configuration file failed validation
	ConfigInvalid ErrorCode = "CONFIG_INVALID"
	// ScanFailed indicates the directory walk itself failed
	ScanFailed ErrorCode = "SCAN_FAILED"
	// OutputFailed indicates the report could not be written
	OutputFailed ErrorCode = "OUTPUT_FAILED"
	// InternalError indicates unexpected error
	InternalError ErrorCode = "INTERNAL_ERROR"
)

// AnalyzerError represents a modscope error with a stable code and message
type AnalyzerError struct {
	Code    ErrorCode   `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
	cause   error       // Underlying error (not exported to JSON)
}

// New creates a new AnalyzerError
func New(code ErrorCode, message string, cause error) *AnalyzerError {
	return &AnalyzerError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *AnalyzerError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AnalyzerError) Unwrap() error {
	return e.cause
}

// Is reports whether target carries the same error code
func (e *AnalyzerError) Is(target error) bool {
	t, ok := target.(*AnalyzerError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// IsCode checks whether err is an AnalyzerError with the given code
func IsCode(err error, code ErrorCode) bool {
	e, ok := err.(*AnalyzerError)
	if !ok {
		return false
	}
	return e.Code == code
}
