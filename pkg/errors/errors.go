package errors

import (
	stderrors "errors"
	"fmt"
)

// Application error types organized by category for better error handling

type ErrorType int

// Domain errors - errors related to input, permissions and missing data
const (
	ErrorTypeUnknown ErrorType = iota
	ErrorTypeValidation
	ErrorTypeNotFound
	ErrorTypePermissionDenied

	// Infrastructure Errors - errors related to external systems and platform services
	ErrorTypeNetwork
	ErrorTypeServiceUnavailable
	ErrorTypeLocationUnavailable
	ErrorTypeStorage

	// System/Configuration Errors - errors related to system setup and configuration
	ErrorTypeConfiguration
)

// String returns the string representation of error type
func (e ErrorType) String() string {
	switch e {
	case ErrorTypeValidation:
		return "VALIDATION_ERROR"
	case ErrorTypeNotFound:
		return "NOT_FOUND_ERROR"
	case ErrorTypePermissionDenied:
		return "PERMISSION_DENIED_ERROR"
	case ErrorTypeNetwork:
		return "NETWORK_ERROR"
	case ErrorTypeServiceUnavailable:
		return "SERVICE_UNAVAILABLE_ERROR"
	case ErrorTypeLocationUnavailable:
		return "LOCATION_UNAVAILABLE_ERROR"
	case ErrorTypeStorage:
		return "STORAGE_ERROR"
	case ErrorTypeConfiguration:
		return "CONFIGURATION_ERROR"
	default:
		return "UNKNOWN_ERROR"
	}
}

type AppError struct {
	Type    ErrorType
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type.String(), e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type.String(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func New(errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
	}
}

func Wrap(errorType ErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Cause:   cause,
	}
}

// Domain Error Constructors
func NewValidationError(message string) *AppError {
	return New(ErrorTypeValidation, message)
}

func NewNotFoundError(message string) *AppError {
	return New(ErrorTypeNotFound, message)
}

func NewPermissionDeniedError(message string) *AppError {
	return New(ErrorTypePermissionDenied, message)
}

func NewUnknownError(message string, cause error) *AppError {
	return Wrap(ErrorTypeUnknown, message, cause)
}

// Infrastructure Error Constructors
func NewNetworkError(message string, cause error) *AppError {
	return Wrap(ErrorTypeNetwork, message, cause)
}

func NewServiceUnavailableError(message string, cause error) *AppError {
	return Wrap(ErrorTypeServiceUnavailable, message, cause)
}

func NewLocationUnavailableError(message string, cause error) *AppError {
	return Wrap(ErrorTypeLocationUnavailable, message, cause)
}

func NewStorageError(message string, cause error) *AppError {
	return Wrap(ErrorTypeStorage, message, cause)
}

// System/Configuration Error Constructors
func NewConfigurationError(message string, cause error) *AppError {
	return Wrap(ErrorTypeConfiguration, message, cause)
}

// TypeOf returns the type of the outermost AppError in err's chain,
// or ErrorTypeUnknown when there is none.
func TypeOf(err error) ErrorType {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type
	}
	return ErrorTypeUnknown
}

func isType(err error, errorType ErrorType) bool {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Type == errorType
	}
	return false
}

// Helper functions for error type checking
func IsValidationError(err error) bool {
	return isType(err, ErrorTypeValidation)
}

func IsNotFoundError(err error) bool {
	return isType(err, ErrorTypeNotFound)
}

func IsPermissionDeniedError(err error) bool {
	return isType(err, ErrorTypePermissionDenied)
}

func IsNetworkError(err error) bool {
	return isType(err, ErrorTypeNetwork)
}

func IsServiceUnavailableError(err error) bool {
	return isType(err, ErrorTypeServiceUnavailable)
}

func IsLocationUnavailableError(err error) bool {
	return isType(err, ErrorTypeLocationUnavailable)
}

func IsStorageError(err error) bool {
	return isType(err, ErrorTypeStorage)
}

func IsConfigurationError(err error) bool {
	return isType(err, ErrorTypeConfiguration)
}
