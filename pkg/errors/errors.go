package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType represents the category of a failure
type ErrorType string

const (
	// ErrorTypeValidation indicates a required field was missing before any network call
	ErrorTypeValidation ErrorType = "VALIDATION"

	// ErrorTypeTransport indicates a network failure or an unreadable response
	ErrorTypeTransport ErrorType = "TRANSPORT"

	// ErrorTypeApplication indicates the backend answered with success=false
	ErrorTypeApplication ErrorType = "APPLICATION"

	// ErrorTypeNoSession indicates the session cache holds no user
	ErrorTypeNoSession ErrorType = "NO_SESSION"

	// ErrorTypeInternal indicates an unexpected local failure
	ErrorTypeInternal ErrorType = "INTERNAL"
)

// AppError represents an application error
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap implements the unwrap interface
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new validation error
func NewValidationError(message string) *AppError {
	return &AppError{Type: ErrorTypeValidation, Message: message}
}

// NewTransportError creates a new transport error
func NewTransportError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeTransport, Message: message, Err: err}
}

// NewApplicationError creates a new application error carrying the server message
func NewApplicationError(message string) *AppError {
	return &AppError{Type: ErrorTypeApplication, Message: message}
}

// NewNoSessionError creates a new no-session error
func NewNoSessionError(message string) *AppError {
	return &AppError{Type: ErrorTypeNoSession, Message: message}
}

// NewInternalError creates a new internal error
func NewInternalError(message string, err error) *AppError {
	return &AppError{Type: ErrorTypeInternal, Message: message, Err: err}
}

// TypeOf returns the error type of err, or ErrorTypeInternal for foreign errors
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeInternal
}

// MessageOf returns the user-facing message of err, or fallback when err carries none
func MessageOf(err error, fallback string) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}

// Is reports whether err is an AppError of the given type
func Is(err error, t ErrorType) bool {
	return err != nil && TypeOf(err) == t
}
