package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// DateFormat is the calendar-date layout used throughout the audit.
const DateFormat = "2006-01-02"

// TimeEntry represents one user-logged block of work.
// Date carries no time component; StartTime and EndTime are times of day
// in 24-hour HH:MM form, independent of Date. Duration is derived from
// the two and is stored denormalized so the persisted document matches
// what consumers read back.
type TimeEntry struct {
	ID         string    `json:"id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	Duration   float64   `json:"duration"`
	Activity   string    `json:"activity"`
	CategoryID int       `json:"categoryId"`
	Notes      string    `json:"notes"`
	CreatedAt  time.Time `json:"createdAt"`
}

// NewTimeEntry creates a TimeEntry with a fresh id and creation timestamp.
func NewTimeEntry(date, startTime, endTime string, duration float64, activity string, categoryID int, notes string) TimeEntry {
	return TimeEntry{
		ID:         uuid.NewString(),
		Date:       date,
		StartTime:  startTime,
		EndTime:    endTime,
		Duration:   duration,
		Activity:   activity,
		CategoryID: categoryID,
		Notes:      notes,
		CreatedAt:  time.Now(),
	}
}

// IsValid checks if the entry has structurally valid data. This is the
// check applied when repairing a loaded document; full acceptance rules
// (date window, category registry, field lengths) live in the validation
// package.
func (e TimeEntry) IsValid() bool {
	if e.ID == "" {
		return false
	}
	if _, err := time.Parse(DateFormat, e.Date); err != nil {
		return false
	}
	if e.Duration <= 0 {
		return false
	}
	if strings.TrimSpace(e.Activity) == "" {
		return false
	}
	if e.CategoryID <= 0 {
		return false
	}
	return true
}
