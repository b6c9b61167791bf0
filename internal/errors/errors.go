package errors

import (
	"errors"
	"fmt"
)

// NewValidationError creates a new validation error
func NewValidationError(message string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeValidation,
		Message: message,
		Code:    "VALIDATION_FAILED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewNotFoundError creates a new not found error
func NewNotFoundError(resource string, identifier string) *AppError {
	return &AppError{
		Type:    ErrorTypeNotFound,
		Message: fmt.Sprintf("%s not found: %s", resource, identifier),
		Code:    "NOT_FOUND",
		Context: map[string]interface{}{
			"resource":   resource,
			"identifier": identifier,
		},
	}
}

// NewInvalidInputError creates a new invalid input error
func NewInvalidInputError(field string, value interface{}, reason string) *AppError {
	return &AppError{
		Type:    ErrorTypeInvalidInput,
		Message: fmt.Sprintf("invalid input for %s: %s", field, reason),
		Code:    "INVALID_INPUT",
		Context: map[string]interface{}{
			"field":  field,
			"value":  value,
			"reason": reason,
		},
	}
}

// NewStorageError creates a new generic storage error.
// Changes are kept in memory but may not persist for this session.
func NewStorageError(operation string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorage,
		Message: fmt.Sprintf("storage operation failed: %s", operation),
		Code:    "STORAGE_ERROR",
		Cause:   cause,
		Context: map[string]interface{}{
			"operation": operation,
		},
	}
}

// NewQuotaError creates a storage error for an exhausted storage quota.
// This is the hard failure the size guard tries to avoid.
func NewQuotaError(cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageQuota,
		Message: "storage quota exceeded; export your data and remove old entries",
		Code:    "STORAGE_QUOTA_EXCEEDED",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewCapacityWarning creates a warning for a document that is approaching
// the storage quota. The write is aborted before it is attempted.
func NewCapacityWarning(size, limit int) *AppError {
	return &AppError{
		Type:    ErrorTypeStorageCapacity,
		Message: "audit data is approaching the storage limit; export and prune old entries",
		Code:    "STORAGE_NEAR_CAPACITY",
		Context: map[string]interface{}{
			"size":  size,
			"limit": limit,
		},
	}
}

// NewCorruptDataError creates an error describing unusable persisted state.
// Callers recover by substituting defaults; the error exists for diagnostics.
func NewCorruptDataError(reason string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeCorruptData,
		Message: fmt.Sprintf("stored audit data is corrupt: %s", reason),
		Code:    "CORRUPT_DATA",
		Cause:   cause,
		Context: make(map[string]interface{}),
	}
}

// NewExportError creates a new export error
func NewExportError(format string, cause error) *AppError {
	return &AppError{
		Type:    ErrorTypeExport,
		Message: fmt.Sprintf("failed to generate %s export", format),
		Code:    "EXPORT_FAILED",
		Cause:   cause,
		Context: map[string]interface{}{
			"format": format,
		},
	}
}

// WrapError wraps an existing error with additional context
func WrapError(err error, errorType ErrorType, message string) *AppError {
	return &AppError{
		Type:    errorType,
		Message: message,
		Code:    errorType.String(),
		Cause:   err,
		Context: make(map[string]interface{}),
	}
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsErrorType checks if the error is of the specified type
func IsErrorType(err error, errorType ErrorType) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.IsType(errorType)
	}
	return false
}

// GetUserMessage returns a user-friendly error message
func GetUserMessage(err error) string {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return appErr.Message
		case ErrorTypeStorageQuota:
			return "Storage is full. Export your audit data, then clear old entries to continue."
		case ErrorTypeStorageCapacity:
			return "Audit data is getting large. Export your data soon to avoid losing changes."
		case ErrorTypeStorage:
			return "Changes could not be saved and may be lost when this session ends."
		case ErrorTypeExport:
			return "The export could not be generated. Your audit data is unaffected."
		default:
			return "An unexpected error occurred. Please try again."
		}
	}
	return err.Error()
}

// GetErrorCode returns the error code for the error
func GetErrorCode(err error) string {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code
	}
	return "UNKNOWN_ERROR"
}

// GetSeverity returns the severity classification for the error
func GetSeverity(err error) Severity {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Severity()
	}
	return SeverityError
}

// ShouldLogError determines if an error should be logged based on its type
func ShouldLogError(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		switch appErr.Type {
		case ErrorTypeValidation, ErrorTypeNotFound, ErrorTypeInvalidInput:
			return false // These are user errors, not system errors
		default:
			return true
		}
	}
	return true
}
