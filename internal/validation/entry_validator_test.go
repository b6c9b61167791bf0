package validation

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
)

func testValidationConfig() config.ValidationConfig {
	return config.ValidationConfig{
		MaxDaysBack:       14,
		MaxActivityLength: 500,
		MaxNotesLength:    1000,
	}
}

func validInput() NewEntryInput {
	return NewEntryInput{
		Date:       "2026-09-01",
		StartTime:  "09:00",
		EndTime:    "10:30",
		Activity:   "Quarterly strategy review",
		CategoryID: 1,
		Notes:      "with the exec team",
	}
}

func TestEntryValidator_ValidateNewEntry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ev := NewEntryValidator(testValidationConfig())

	t.Run("accepts a valid entry", func(t *testing.T) {
		assert.NoError(t, ev.ValidateNewEntry(validInput(), now))
	})

	tests := []struct {
		name       string
		mutate     func(*NewEntryInput)
		wantField  string
	}{
		{
			name:      "empty activity",
			mutate:    func(in *NewEntryInput) { in.Activity = "   " },
			wantField: "activity",
		},
		{
			name:      "activity too long",
			mutate:    func(in *NewEntryInput) { in.Activity = strings.Repeat("a", 501) },
			wantField: "activity",
		},
		{
			name:      "notes too long",
			mutate:    func(in *NewEntryInput) { in.Notes = strings.Repeat("n", 1001) },
			wantField: "notes",
		},
		{
			name:      "missing date",
			mutate:    func(in *NewEntryInput) { in.Date = "" },
			wantField: "date",
		},
		{
			name:      "malformed date",
			mutate:    func(in *NewEntryInput) { in.Date = "01/09/2026" },
			wantField: "date",
		},
		{
			name:      "date in the future",
			mutate:    func(in *NewEntryInput) { in.Date = "2026-09-02" },
			wantField: "date",
		},
		{
			name:      "date beyond the trailing window",
			mutate:    func(in *NewEntryInput) { in.Date = "2026-08-17" },
			wantField: "date",
		},
		{
			name:      "unknown category",
			mutate:    func(in *NewEntryInput) { in.CategoryID = 7 },
			wantField: "categoryId",
		},
		{
			name:      "zero category",
			mutate:    func(in *NewEntryInput) { in.CategoryID = 0 },
			wantField: "categoryId",
		},
		{
			name:      "malformed start time",
			mutate:    func(in *NewEntryInput) { in.StartTime = "9am" },
			wantField: "startTime",
		},
		{
			name:      "malformed end time",
			mutate:    func(in *NewEntryInput) { in.EndTime = "25:00" },
			wantField: "endTime",
		},
		{
			name:      "end equals start",
			mutate:    func(in *NewEntryInput) { in.EndTime = "09:00" },
			wantField: "endTime",
		},
		{
			name: "end before start",
			mutate: func(in *NewEntryInput) {
				in.StartTime = "10:30"
				in.EndTime = "09:00"
			},
			wantField: "endTime",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validInput()
			tt.mutate(&input)

			err := ev.ValidateNewEntry(input, now)
			require.Error(t, err)

			validationErr, ok := err.(*ValidationError)
			require.True(t, ok)
			assert.True(t, validationErr.HasFieldError(tt.wantField),
				"expected an error on field %q, got %v", tt.wantField, validationErr.Errors)
		})
	}

	t.Run("collects multiple field errors", func(t *testing.T) {
		input := validInput()
		input.Activity = ""
		input.CategoryID = 99
		input.Date = "never"

		err := ev.ValidateNewEntry(input, now)
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.True(t, validationErr.HasFieldError("activity"))
		assert.True(t, validationErr.HasFieldError("categoryId"))
		assert.True(t, validationErr.HasFieldError("date"))
	})

	t.Run("does not flag duration when a time is malformed", func(t *testing.T) {
		input := validInput()
		input.StartTime = "late"

		err := ev.ValidateNewEntry(input, now)
		require.Error(t, err)

		validationErr, ok := err.(*ValidationError)
		require.True(t, ok)
		assert.True(t, validationErr.HasFieldError("startTime"))
		assert.False(t, validationErr.HasFieldError("endTime"))
	})
}

func TestEntryValidator_BuildEntry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ev := NewEntryValidator(testValidationConfig())

	t.Run("constructs an entry with derived duration", func(t *testing.T) {
		input := validInput()
		input.Activity = "  Board prep  "
		input.Notes = "  trimmed  "

		entry, err := ev.BuildEntry(input, now)
		require.NoError(t, err)
		require.NotNil(t, entry)

		assert.NotEmpty(t, entry.ID)
		assert.Equal(t, "2026-09-01", entry.Date)
		assert.Equal(t, "09:00", entry.StartTime)
		assert.Equal(t, "10:30", entry.EndTime)
		assert.Equal(t, 1.5, entry.Duration)
		assert.Equal(t, "Board prep", entry.Activity)
		assert.Equal(t, "trimmed", entry.Notes)
		assert.Equal(t, 1, entry.CategoryID)
		assert.False(t, entry.CreatedAt.IsZero())
	})

	t.Run("returns nil entry on invalid input", func(t *testing.T) {
		input := validInput()
		input.Activity = ""

		entry, err := ev.BuildEntry(input, now)
		assert.Error(t, err)
		assert.Nil(t, entry)
	})
}

func TestEntryValidator_ValidateEntry(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	ev := NewEntryValidator(testValidationConfig())

	entry := domain.NewTimeEntry("2026-09-01", "09:00", "10:00", 1, "Pilot review", 2, "")
	assert.NoError(t, ev.ValidateEntry(entry, now))

	entry.EndTime = "08:00"
	err := ev.ValidateEntry(entry, now)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
