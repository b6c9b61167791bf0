package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := NewNotFoundError("entry", "abc-123")
		assert.Equal(t, "not_found: entry not found: abc-123", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := stderrors.New("disk unplugged")
		err := NewStorageError("write document", cause)
		assert.Contains(t, err.Error(), "storage operation failed: write document")
		assert.Contains(t, err.Error(), "disk unplugged")
	})
}

func TestAppError_Unwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	err := NewStorageError("read", cause)

	assert.Equal(t, cause, err.Unwrap())
	assert.True(t, stderrors.Is(err, cause))
}

func TestAppError_Severity(t *testing.T) {
	tests := []struct {
		name     string
		err      *AppError
		expected Severity
	}{
		{name: "capacity is a warning", err: NewCapacityWarning(5000000, 4718592), expected: SeverityWarning},
		{name: "quota is an error", err: NewQuotaError(nil), expected: SeverityError},
		{name: "storage is an error", err: NewStorageError("write", nil), expected: SeverityError},
		{name: "corrupt data is an error", err: NewCorruptDataError("bad shape", nil), expected: SeverityError},
		{name: "export is an error", err: NewExportError("csv", nil), expected: SeverityError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Severity())
			assert.Equal(t, tt.expected, GetSeverity(tt.err))
		})
	}
}

func TestAppError_Context(t *testing.T) {
	err := NewCapacityWarning(100, 50)

	size, ok := err.GetContext("size")
	require.True(t, ok)
	assert.Equal(t, 100, size)

	limit, ok := err.GetContext("limit")
	require.True(t, ok)
	assert.Equal(t, 50, limit)

	_, ok = err.GetContext("missing")
	assert.False(t, ok)

	err.WithContext("extra", "value")
	extra, ok := err.GetContext("extra")
	require.True(t, ok)
	assert.Equal(t, "value", extra)
}

func TestErrorTypeChecks(t *testing.T) {
	quota := NewQuotaError(stderrors.New("SQLITE_FULL"))

	assert.True(t, IsAppError(quota))
	assert.True(t, IsErrorType(quota, ErrorTypeStorageQuota))
	assert.False(t, IsErrorType(quota, ErrorTypeStorage))

	// type checks survive wrapping
	wrapped := fmt.Errorf("while saving: %w", quota)
	assert.True(t, IsAppError(wrapped))
	assert.True(t, IsErrorType(wrapped, ErrorTypeStorageQuota))

	plain := stderrors.New("plain")
	assert.False(t, IsAppError(plain))
	assert.False(t, IsErrorType(plain, ErrorTypeStorage))
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "validation passes its message through",
			err:      NewValidationError("activity is required", nil),
			expected: "activity is required",
		},
		{
			name:     "quota tells the user how to recover",
			err:      NewQuotaError(nil),
			expected: "Storage is full. Export your audit data, then clear old entries to continue.",
		},
		{
			name:     "capacity warns before data loss",
			err:      NewCapacityWarning(1, 1),
			expected: "Audit data is getting large. Export your data soon to avoid losing changes.",
		},
		{
			name:     "storage failure states the consequence",
			err:      NewStorageError("write", nil),
			expected: "Changes could not be saved and may be lost when this session ends.",
		},
		{
			name:     "export failure reassures about the data",
			err:      NewExportError("csv", nil),
			expected: "The export could not be generated. Your audit data is unaffected.",
		},
		{
			name:     "plain errors fall back to Error()",
			err:      stderrors.New("something else"),
			expected: "something else",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, GetUserMessage(tt.err))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, "STORAGE_QUOTA_EXCEEDED", GetErrorCode(NewQuotaError(nil)))
	assert.Equal(t, "STORAGE_NEAR_CAPACITY", GetErrorCode(NewCapacityWarning(1, 1)))
	assert.Equal(t, "CORRUPT_DATA", GetErrorCode(NewCorruptDataError("x", nil)))
	assert.Equal(t, "UNKNOWN_ERROR", GetErrorCode(stderrors.New("plain")))
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("entry", "id")))
	assert.True(t, ShouldLogError(NewStorageError("write", nil)))
	assert.True(t, ShouldLogError(NewCorruptDataError("shape", nil)))
	assert.True(t, ShouldLogError(stderrors.New("plain")))
}
