// Package aggregation turns a list of time entries into per-category
// totals, percentages, and derived composite metrics. Every function is
// pure and deterministic; the zero-hours case is always well-defined
// (all percentages 0, never NaN).
package aggregation

import (
	"math"
	"sort"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// CategoryTotals sums entry durations grouped by category id. Every
// registered category is present in the result, defaulting to 0, so
// callers never need to check for missing keys. Entries referencing an
// unregistered category are ignored.
func CategoryTotals(entries []domain.TimeEntry) map[int]float64 {
	totals := make(map[int]float64, len(registry.IDs()))
	for _, id := range registry.IDs() {
		totals[id] = 0
	}
	for _, entry := range entries {
		if _, ok := totals[entry.CategoryID]; ok {
			totals[entry.CategoryID] += entry.Duration
		}
	}
	return totals
}

// TotalHours sums the durations of all entries.
func TotalHours(entries []domain.TimeEntry) float64 {
	var total float64
	for _, entry := range entries {
		total += entry.Duration
	}
	return total
}

// CategoryPercentages computes each category's share of total hours,
// rounded to the nearest integer percentage. Rounding is independent per
// category, so the values may not sum to exactly 100.
func CategoryPercentages(entries []domain.TimeEntry) map[int]int {
	totals := CategoryTotals(entries)

	var totalHours float64
	for _, hours := range totals {
		totalHours += hours
	}

	percentages := make(map[int]int, len(totals))
	if totalHours == 0 {
		for id := range totals {
			percentages[id] = 0
		}
		return percentages
	}

	for id, hours := range totals {
		percentages[id] = roundPercent(hours, totalHours)
	}
	return percentages
}

// HighValuePercentage computes the rounded share of hours spent in the
// high-value category subset. Returns 0 when there are no hours.
func HighValuePercentage(entries []domain.TimeEntry) int {
	return subsetPercentage(entries, registry.HighValue())
}

// AutomatablePercentage computes the rounded share of hours spent in the
// automatable category subset. Returns 0 when there are no hours.
func AutomatablePercentage(entries []domain.TimeEntry) int {
	return subsetPercentage(entries, registry.Automatable())
}

func subsetPercentage(entries []domain.TimeEntry, subset []registry.Category) int {
	totalHours := TotalHours(entries)
	if totalHours == 0 {
		return 0
	}

	totals := CategoryTotals(entries)
	var subsetHours float64
	for _, cat := range subset {
		subsetHours += totals[cat.ID]
	}
	return roundPercent(subsetHours, totalHours)
}

// roundPercent rounds half away from zero; durations are non-negative so
// this is round-half-up for every value we see.
func roundPercent(part, total float64) int {
	return int(math.Round(part / total * 100))
}

// EntriesByDate partitions entries by date, ordering each group by start
// time ascending.
func EntriesByDate(entries []domain.TimeEntry) map[string][]domain.TimeEntry {
	grouped := make(map[string][]domain.TimeEntry)
	for _, entry := range entries {
		grouped[entry.Date] = append(grouped[entry.Date], entry)
	}
	for date := range grouped {
		group := grouped[date]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartTime < group[j].StartTime
		})
	}
	return grouped
}

// SortedDates returns the keys of a grouped result in descending date
// order, the order groups are typically presented in.
func SortedDates(grouped map[string][]domain.TimeEntry) []string {
	dates := make([]string, 0, len(grouped))
	for date := range grouped {
		dates = append(dates, date)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	return dates
}

// ChartRow is one category's aggregated view, ready for presentation.
type ChartRow struct {
	ID            int
	Name          string
	ShortCode     string
	Hours         float64
	Percentage    int
	Color         string
	IsHighValue   bool
	IsAutomatable bool
}

// ChartData returns one row per registered category, in registry order.
func ChartData(entries []domain.TimeEntry) []ChartRow {
	totals := CategoryTotals(entries)
	percentages := CategoryPercentages(entries)

	cats := registry.All()
	rows := make([]ChartRow, len(cats))
	for i, cat := range cats {
		rows[i] = ChartRow{
			ID:            cat.ID,
			Name:          cat.Name,
			ShortCode:     cat.ShortCode,
			Hours:         totals[cat.ID],
			Percentage:    percentages[cat.ID],
			Color:         cat.Color,
			IsHighValue:   cat.IsHighValue,
			IsAutomatable: cat.IsAutomatable,
		}
	}
	return rows
}
