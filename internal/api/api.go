// Package api is the facade the CLI talks to: validation in front,
// store mutations in the middle, aggregation on the way out.
package api

import (
	"context"
	"io"
	"math"
	"time"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/aggregation"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/export"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/sample"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/store"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/validation"
)

// timeNow is a variable so tests can control the clock
var timeNow = time.Now

// API defines the interface for all audit operations.
type API interface {
	// Entry operations
	AddEntry(ctx context.Context, input validation.NewEntryInput) (*domain.TimeEntry, error)
	UpdateEntry(ctx context.Context, id string, patch EntryUpdate) (bool, error)
	DeleteEntry(ctx context.Context, id string) (bool, error)
	Entries() []domain.TimeEntry

	// Document operations
	LoadSampleData(ctx context.Context) (int, error)
	UpdateReflections(ctx context.Context, patch store.ReflectionPatch) error
	MarkComplete(ctx context.Context) error
	ClearAll(ctx context.Context) error
	Document() *domain.AuditDocument
	Dirty() bool

	// Derived views
	Summary() *AuditSummary

	// Exports
	ExportCSV(w io.Writer) error
	ExportReport(w io.Writer) error
}

// EntryUpdate holds the user-editable fields of an entry update.
// Nil fields are left unchanged.
type EntryUpdate struct {
	Date       *string
	StartTime  *string
	EndTime    *string
	Activity   *string
	CategoryID *int
	Notes      *string
}

// AuditSummary is the aggregated view of the whole document.
type AuditSummary struct {
	TotalHours         float64
	EntryCount         int
	Totals             map[int]float64
	Percentages        map[int]int
	HighValuePercent   int
	AutomatablePercent int
	Band               aggregation.WorkflowBand
	ProgressPercent    int
	ReviewUnlocked     bool
	MeaningfulInsights bool
	Completed          bool
}

type apiImpl struct {
	store          *store.Manager
	cfg            *config.Config
	entryValidator *validation.EntryValidator
	generator      *sample.Generator
}

// New creates a new API instance.
func New(storeManager *store.Manager, cfg *config.Config) API {
	return &apiImpl{
		store:          storeManager,
		cfg:            cfg,
		entryValidator: validation.NewEntryValidator(cfg.Validation),
		generator:      sample.NewGenerator(),
	}
}

// AddEntry validates the candidate, constructs the entry, and appends
// it to the document. Validation failures are returned field-by-field
// and nothing is persisted.
func (a *apiImpl) AddEntry(ctx context.Context, input validation.NewEntryInput) (*domain.TimeEntry, error) {
	entry, err := a.entryValidator.BuildEntry(input, timeNow())
	if err != nil {
		return nil, err
	}

	if err := a.store.AddEntry(ctx, *entry); err != nil {
		return entry, err
	}
	return entry, nil
}

// UpdateEntry merges the update into the existing entry after validating
// the merged result. Updating an unknown id is a no-op reported as
// (false, nil). The duration is re-derived whenever either time changes.
func (a *apiImpl) UpdateEntry(ctx context.Context, id string, patch EntryUpdate) (bool, error) {
	doc := a.store.Document()
	idx, found := doc.FindEntry(id)
	if !found {
		return false, nil
	}

	merged := doc.Entries[idx]
	if patch.Date != nil {
		merged.Date = *patch.Date
	}
	if patch.StartTime != nil {
		merged.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		merged.EndTime = *patch.EndTime
	}
	if patch.Activity != nil {
		merged.Activity = *patch.Activity
	}
	if patch.CategoryID != nil {
		merged.CategoryID = *patch.CategoryID
	}
	if patch.Notes != nil {
		merged.Notes = *patch.Notes
	}

	if err := a.entryValidator.ValidateEntry(merged, timeNow()); err != nil {
		return false, err
	}

	duration := validation.ComputeDuration(merged.StartTime, merged.EndTime)
	return a.store.UpdateEntry(ctx, id, store.EntryPatch{
		Date:       patch.Date,
		StartTime:  patch.StartTime,
		EndTime:    patch.EndTime,
		Duration:   &duration,
		Activity:   patch.Activity,
		CategoryID: patch.CategoryID,
		Notes:      patch.Notes,
	})
}

// DeleteEntry removes an entry; deleting an unknown id is a no-op.
func (a *apiImpl) DeleteEntry(ctx context.Context, id string) (bool, error) {
	return a.store.DeleteEntry(ctx, id)
}

// Entries returns the current entries.
func (a *apiImpl) Entries() []domain.TimeEntry {
	return a.store.Document().Entries
}

// LoadSampleData replaces all entries with a generated sample dataset
// and returns how many entries were loaded. Sample entries satisfy
// every document invariant, so they bypass entry validation.
func (a *apiImpl) LoadSampleData(ctx context.Context) (int, error) {
	entries := a.generator.Generate()
	if err := a.store.ReplaceEntries(ctx, entries); err != nil {
		return len(entries), err
	}
	return len(entries), nil
}

// UpdateReflections merges the reflection patch, last write wins per field.
func (a *apiImpl) UpdateReflections(ctx context.Context, patch store.ReflectionPatch) error {
	return a.store.UpdateReflections(ctx, patch)
}

// MarkComplete stamps the completion milestone.
func (a *apiImpl) MarkComplete(ctx context.Context) error {
	return a.store.MarkComplete(ctx)
}

// ClearAll resets the document to defaults.
func (a *apiImpl) ClearAll(ctx context.Context) error {
	return a.store.ClearAll(ctx)
}

// Document returns a copy of the current document.
func (a *apiImpl) Document() *domain.AuditDocument {
	return a.store.Document()
}

// Dirty reports unsaved in-memory changes.
func (a *apiImpl) Dirty() bool {
	return a.store.Dirty()
}

// Summary aggregates the whole document into the review view.
func (a *apiImpl) Summary() *AuditSummary {
	doc := a.store.Document()
	entries := doc.Entries

	totalHours := aggregation.TotalHours(entries)
	highValue := aggregation.HighValuePercentage(entries)
	automatable := aggregation.AutomatablePercentage(entries)

	progress := 0
	if a.cfg.Audit.TargetHours > 0 {
		progress = int(math.Round(totalHours / a.cfg.Audit.TargetHours * 100))
		if progress > 100 {
			progress = 100
		}
	}

	return &AuditSummary{
		TotalHours:         totalHours,
		EntryCount:         len(entries),
		Totals:             aggregation.CategoryTotals(entries),
		Percentages:        aggregation.CategoryPercentages(entries),
		HighValuePercent:   highValue,
		AutomatablePercent: automatable,
		Band: aggregation.Classify(highValue, automatable, aggregation.Thresholds{
			Trap:               a.cfg.Audit.TrapThreshold,
			HealthyHighValue:   a.cfg.Audit.HealthyHighValue,
			HealthyAutomatable: a.cfg.Audit.HealthyAutomatable,
		}),
		ProgressPercent:    progress,
		ReviewUnlocked:     len(entries) >= a.cfg.Audit.MinEntriesForReview,
		MeaningfulInsights: totalHours >= a.cfg.Audit.MinHoursForInsights,
		Completed:          doc.CompletedAt != nil,
	}
}

// ExportCSV writes the per-entry CSV to w.
func (a *apiImpl) ExportCSV(w io.Writer) error {
	return export.WriteCSV(w, a.store.Document().Entries)
}

// ExportReport writes the report document to w.
func (a *apiImpl) ExportReport(w io.Writer) error {
	return export.RenderReport(w, a.store.Document(), aggregation.Thresholds{
		Trap:               a.cfg.Audit.TrapThreshold,
		HealthyHighValue:   a.cfg.Audit.HealthyHighValue,
		HealthyAutomatable: a.cfg.Audit.HealthyAutomatable,
	}, timeNow())
}
