// Package export serializes audit data into the formats the user takes
// away: a per-entry CSV and a summary report document.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// csvHeader is the fixed column layout of the entry export.
var csvHeader = []string{"Date", "Start Time", "End Time", "Duration (hrs)", "Activity", "Category", "Notes"}

// WriteCSV writes one row per entry, no aggregation. Entries referencing
// an unknown category render as "Unknown".
func WriteCSV(w io.Writer, entries []domain.TimeEntry) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(csvHeader); err != nil {
		return errors.NewExportError("csv", err)
	}

	for _, entry := range entries {
		categoryName := "Unknown"
		if cat, ok := registry.ByID(entry.CategoryID); ok {
			categoryName = cat.Name
		}

		row := []string{
			entry.Date,
			entry.StartTime,
			entry.EndTime,
			strconv.FormatFloat(entry.Duration, 'f', -1, 64),
			entry.Activity,
			categoryName,
			entry.Notes,
		}
		if err := writer.Write(row); err != nil {
			return errors.NewExportError("csv", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewExportError("csv", err)
	}
	return nil
}
