package validation

import (
	"time"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// NewEntryInput is a candidate time entry before acceptance. Field names
// in reported errors match the JSON field names of domain.TimeEntry so
// callers can render field-level feedback.
type NewEntryInput struct {
	Date       string
	StartTime  string
	EndTime    string
	Activity   string
	CategoryID int
	Notes      string
}

// EntryValidator validates candidate time entries against the acceptance
// rules: valid times with a strictly positive duration, a non-empty
// bounded activity, a date within the trailing window, and a category
// that resolves in the registry.
type EntryValidator struct {
	validator *Validator
	cfg       config.ValidationConfig
}

// NewEntryValidator creates an entry validator with the given bounds.
func NewEntryValidator(cfg config.ValidationConfig) *EntryValidator {
	return &EntryValidator{
		validator: NewValidator(),
		cfg:       cfg,
	}
}

// ValidateNewEntry validates a candidate entry for creation. It returns
// nil when the candidate is acceptable, or a *ValidationError carrying
// one FieldError per failed check. No partial entry is constructed when
// any required check fails.
func (ev *EntryValidator) ValidateNewEntry(input NewEntryInput, now time.Time) error {
	validationError := NewValidationError()

	ev.validateActivity(input.Activity, validationError)
	ev.validateNotes(input.Notes, validationError)
	ev.validateDate(input.Date, now, validationError)
	ev.validateCategory(input.CategoryID, validationError)
	ev.validateTimes(input.StartTime, input.EndTime, validationError)

	if validationError.HasErrors() {
		return validationError
	}
	return nil
}

// BuildEntry validates the input and, when acceptable, constructs the
// TimeEntry with its derived duration, fresh id, and creation timestamp.
func (ev *EntryValidator) BuildEntry(input NewEntryInput, now time.Time) (*domain.TimeEntry, error) {
	if err := ev.ValidateNewEntry(input, now); err != nil {
		return nil, err
	}

	entry := domain.NewTimeEntry(
		input.Date,
		input.StartTime,
		input.EndTime,
		ComputeDuration(input.StartTime, input.EndTime),
		ev.validator.TrimString(input.Activity),
		input.CategoryID,
		ev.validator.TrimString(input.Notes),
	)
	return &entry, nil
}

func (ev *EntryValidator) validateActivity(activity string, ve *ValidationError) {
	if !ev.validator.IsNonEmptyString(activity) {
		ve.AddRequiredError("activity")
		return
	}
	if !ev.validator.IsWithinMaxLength(activity, ev.cfg.MaxActivityLength) {
		ve.AddInvalidLengthError("activity", activity, ev.cfg.MaxActivityLength)
	}
}

func (ev *EntryValidator) validateNotes(notes string, ve *ValidationError) {
	if !ev.validator.IsWithinMaxLength(notes, ev.cfg.MaxNotesLength) {
		ve.AddInvalidLengthError("notes", notes, ev.cfg.MaxNotesLength)
	}
}

func (ev *EntryValidator) validateDate(date string, now time.Time, ve *ValidationError) {
	if !ev.validator.IsNonEmptyString(date) {
		ve.AddRequiredError("date")
		return
	}
	if !ev.validator.IsValidDate(date) {
		ve.AddInvalidFormatError("date", date, domain.DateFormat)
		return
	}
	if !ev.validator.IsDateInWindow(date, now, ev.cfg.MaxDaysBack) {
		ve.AddInvalidRangeError("date", date, "must not be in the future or more than the permitted days back")
	}
}

func (ev *EntryValidator) validateCategory(categoryID int, ve *ValidationError) {
	if !registry.Exists(categoryID) {
		ve.AddInvalidValueError("categoryId", categoryID, "unknown category")
	}
}

func (ev *EntryValidator) validateTimes(startTime, endTime string, ve *ValidationError) {
	valid := true
	if !ev.validator.IsValidTimeOfDay(startTime) {
		ve.AddInvalidFormatError("startTime", startTime, "HH:MM")
		valid = false
	}
	if !ev.validator.IsValidTimeOfDay(endTime) {
		ve.AddInvalidFormatError("endTime", endTime, "HH:MM")
		valid = false
	}
	if !valid {
		return
	}

	if ComputeDuration(startTime, endTime) <= 0 {
		ve.AddInvalidRangeError("endTime", endTime, "end time must be after start time")
	}
}

// ValidateEntry validates a fully-formed domain.TimeEntry, re-deriving
// the duration from its times. Used when admitting entries that did not
// come through BuildEntry, such as edits.
func (ev *EntryValidator) ValidateEntry(entry domain.TimeEntry, now time.Time) error {
	return ev.ValidateNewEntry(NewEntryInput{
		Date:       entry.Date,
		StartTime:  entry.StartTime,
		EndTime:    entry.EndTime,
		Activity:   entry.Activity,
		CategoryID: entry.CategoryID,
		Notes:      entry.Notes,
	}, now)
}
