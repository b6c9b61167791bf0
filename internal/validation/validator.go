package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
)

// timeOfDayRegex matches 24-hour HH:MM values (hour 0-23, minute 0-59).
// A single-digit hour is accepted, matching what time pickers emit.
var timeOfDayRegex = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):([0-5][0-9])$`)

// Validator provides common validation utilities
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// IsNonEmptyString checks if a string is not empty after trimming whitespace
func (v *Validator) IsNonEmptyString(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsWithinMaxLength checks if a string's trimmed length does not exceed max
func (v *Validator) IsWithinMaxLength(s string, max int) bool {
	return len(strings.TrimSpace(s)) <= max
}

// IsValidTimeOfDay checks if a string is a valid 24-hour HH:MM value
func (v *Validator) IsValidTimeOfDay(s string) bool {
	return timeOfDayRegex.MatchString(s)
}

// IsValidDate checks if a string is a valid ISO calendar date
func (v *Validator) IsValidDate(s string) bool {
	_, err := time.Parse(domain.DateFormat, s)
	return err == nil
}

// IsDateInWindow checks that the date is not in the future and no more
// than maxDaysBack days before now. Comparison is by calendar day.
func (v *Validator) IsDateInWindow(date string, now time.Time, maxDaysBack int) bool {
	parsed, err := time.Parse(domain.DateFormat, date)
	if err != nil {
		return false
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	earliest := today.AddDate(0, 0, -maxDaysBack)
	return !parsed.After(today) && !parsed.Before(earliest)
}

// TrimString trims whitespace and returns the cleaned string
func (v *Validator) TrimString(s string) string {
	return strings.TrimSpace(s)
}

// ComputeDuration computes the duration in hours between two HH:MM
// times of day. It returns 0 when either input fails the format check
// or when the end is not strictly after the start; callers must treat
// a 0 duration as "reject, do not persist".
func ComputeDuration(startTime, endTime string) float64 {
	if !timeOfDayRegex.MatchString(startTime) || !timeOfDayRegex.MatchString(endTime) {
		return 0
	}

	startMinutes := minutesOfDay(startTime)
	endMinutes := minutesOfDay(endTime)

	durationMinutes := endMinutes - startMinutes
	if durationMinutes <= 0 {
		return 0
	}
	return float64(durationMinutes) / 60
}

// minutesOfDay converts a pre-validated HH:MM string to minutes since midnight.
func minutesOfDay(t string) int {
	parts := strings.SplitN(t, ":", 2)
	hour, _ := strconv.Atoi(parts[0])
	minute, _ := strconv.Atoi(parts[1])
	return hour*60 + minute
}
