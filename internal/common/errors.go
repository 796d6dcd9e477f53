package common

import (
	"errors"
	"fmt"
)

// AppError represents application-specific errors
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Common application errors. Extraction errors terminate a request with a
// client-facing status; model-service errors are never surfaced and are
// absorbed by the fallback parser instead.
var (
	ErrNoFile               = errors.New("no file provided")
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrInsufficientContent  = errors.New("insufficient text content")
	ErrProcessing           = errors.New("processing failure")
)

func NewAppError(code, message string, cause error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}
