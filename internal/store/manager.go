// Package store owns the single source-of-truth audit document. It
// loads and repairs persisted state at startup, applies mutations in
// memory, and persists a complete document snapshot after every
// mutation. Persistence failures never roll back the in-memory
// mutation; they are classified and returned so callers can warn the
// user.
package store

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/repository/sqlitekv"
)

// timeNow is a variable so tests can control the clock
var timeNow = time.Now

// EntryPatch holds the fields of a time entry that may be updated.
// Nil fields are left unchanged. ID and CreatedAt are immutable.
type EntryPatch struct {
	Date       *string
	StartTime  *string
	EndTime    *string
	Duration   *float64
	Activity   *string
	CategoryID *int
	Notes      *string
}

// ReflectionPatch holds the reflection fields that may be updated.
// Nil fields are left unchanged; set fields win (last write wins per field).
type ReflectionPatch struct {
	MostSurprisingCategory *int
	SurpriseExplanation    *string
	BiggestOpportunity     *string
}

// Manager owns the in-memory audit document and its persistence.
// It is not safe for concurrent use; the application is single-writer.
type Manager struct {
	repo   sqlitekv.Repository
	cfg    *config.Config
	logger *zap.Logger
	doc    *domain.AuditDocument
	dirty  bool
}

// New creates a store manager. Call Load before using it.
func New(repo sqlitekv.Repository, cfg *config.Config, logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{
		repo:   repo,
		cfg:    cfg,
		logger: logger,
		doc:    domain.NewAuditDocument(),
	}
}

// Load reads the persisted document. An absent or structurally invalid
// document is replaced with empty defaults; corruption is logged and
// recovered, never fatal. Only an unexpected read failure is returned,
// and even then the manager holds a usable default document.
func (m *Manager) Load(ctx context.Context) error {
	data, found, err := m.repo.Read(ctx)
	if err != nil {
		m.doc = domain.NewAuditDocument()
		return err
	}
	if !found {
		m.doc = domain.NewAuditDocument()
		return nil
	}

	doc, repairErr := m.decodeDocument(data)
	if repairErr != nil {
		m.logger.Warn("stored audit data unusable, starting fresh",
			zap.Error(repairErr))
		m.doc = domain.NewAuditDocument()
		return nil
	}

	m.doc = doc
	return nil
}

// decodeDocument validates the raw stored bytes against the expected
// document shape. A document that is not an object, whose entries field
// is not a list, or whose reflections field is not an object is
// rejected wholesale. Individually malformed entries are dropped, the
// rest of the document survives.
func (m *Manager) decodeDocument(data []byte) (*domain.AuditDocument, error) {
	var raw struct {
		Entries     json.RawMessage `json:"entries"`
		Reflections json.RawMessage `json:"reflections"`
		CompletedAt *time.Time      `json:"completedAt"`
		LastUpdated time.Time       `json:"lastUpdated"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, errors.NewCorruptDataError("not a valid document object", err)
	}

	var rawEntries []json.RawMessage
	if raw.Entries == nil {
		return nil, errors.NewCorruptDataError("entries field missing", nil)
	}
	if err := json.Unmarshal(raw.Entries, &rawEntries); err != nil {
		return nil, errors.NewCorruptDataError("entries is not a list", err)
	}

	doc := domain.NewAuditDocument()

	if raw.Reflections == nil {
		return nil, errors.NewCorruptDataError("reflections field missing", nil)
	}
	var reflections domain.ReflectionState
	if err := json.Unmarshal(raw.Reflections, &reflections); err != nil {
		return nil, errors.NewCorruptDataError("reflections is not an object", err)
	}
	doc.Reflections = reflections

	for i, rawEntry := range rawEntries {
		var entry domain.TimeEntry
		if err := json.Unmarshal(rawEntry, &entry); err != nil {
			m.logger.Warn("dropping malformed entry from stored document",
				zap.Int("index", i), zap.Error(err))
			continue
		}
		if !entry.IsValid() {
			m.logger.Warn("dropping invalid entry from stored document",
				zap.Int("index", i), zap.String("id", entry.ID))
			continue
		}
		doc.Entries = append(doc.Entries, entry)
	}

	doc.CompletedAt = raw.CompletedAt
	if !raw.LastUpdated.IsZero() {
		doc.LastUpdated = raw.LastUpdated
	}
	return doc, nil
}

// Document returns a deep copy of the current in-memory document.
func (m *Manager) Document() *domain.AuditDocument {
	return m.doc.Clone()
}

// Dirty reports whether the in-memory document has changes that were
// not durably persisted. It is set by any aborted or failed persist and
// cleared by the next successful one.
func (m *Manager) Dirty() bool {
	return m.dirty
}

// AddEntry appends an entry to the document and persists.
func (m *Manager) AddEntry(ctx context.Context, entry domain.TimeEntry) error {
	m.doc.Entries = append(m.doc.Entries, entry)
	return m.persist(ctx)
}

// UpdateEntry merges the patch into the entry with the given id and
// persists. When no entry matches, the document is unchanged and the
// first return value is false; this is a no-op for callers, observable
// for diagnostics only.
func (m *Manager) UpdateEntry(ctx context.Context, id string, patch EntryPatch) (bool, error) {
	idx, found := m.doc.FindEntry(id)
	if !found {
		m.logger.Debug("update requested for unknown entry", zap.String("id", id))
		return false, nil
	}

	entry := &m.doc.Entries[idx]
	if patch.Date != nil {
		entry.Date = *patch.Date
	}
	if patch.StartTime != nil {
		entry.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		entry.EndTime = *patch.EndTime
	}
	if patch.Duration != nil {
		entry.Duration = *patch.Duration
	}
	if patch.Activity != nil {
		entry.Activity = *patch.Activity
	}
	if patch.CategoryID != nil {
		entry.CategoryID = *patch.CategoryID
	}
	if patch.Notes != nil {
		entry.Notes = *patch.Notes
	}

	return true, m.persist(ctx)
}

// DeleteEntry removes the entry with the given id and persists.
// Deleting a non-existent id is a no-op.
func (m *Manager) DeleteEntry(ctx context.Context, id string) (bool, error) {
	idx, found := m.doc.FindEntry(id)
	if !found {
		m.logger.Debug("delete requested for unknown entry", zap.String("id", id))
		return false, nil
	}

	m.doc.Entries = append(m.doc.Entries[:idx], m.doc.Entries[idx+1:]...)
	return true, m.persist(ctx)
}

// ReplaceEntries swaps in a whole new entry list and persists. Used for
// loading sample data.
func (m *Manager) ReplaceEntries(ctx context.Context, entries []domain.TimeEntry) error {
	m.doc.Entries = make([]domain.TimeEntry, len(entries))
	copy(m.doc.Entries, entries)
	return m.persist(ctx)
}

// UpdateReflections merges the patch into the reflection state and
// persists. Each set field overwrites; unset fields are untouched.
func (m *Manager) UpdateReflections(ctx context.Context, patch ReflectionPatch) error {
	if patch.MostSurprisingCategory != nil {
		id := *patch.MostSurprisingCategory
		m.doc.Reflections.MostSurprisingCategory = &id
	}
	if patch.SurpriseExplanation != nil {
		m.doc.Reflections.SurpriseExplanation = *patch.SurpriseExplanation
	}
	if patch.BiggestOpportunity != nil {
		m.doc.Reflections.BiggestOpportunity = *patch.BiggestOpportunity
	}
	return m.persist(ctx)
}

// MarkComplete stamps the completion milestone and persists. Calling it
// again overwrites the timestamp.
func (m *Manager) MarkComplete(ctx context.Context) error {
	now := timeNow()
	m.doc.CompletedAt = &now
	return m.persist(ctx)
}

// ClearAll resets the document to empty defaults, including reflections
// and completion state, and persists.
func (m *Manager) ClearAll(ctx context.Context) error {
	m.doc = domain.NewAuditDocument()
	return m.persist(ctx)
}

// Flush re-attempts persistence of the current document. Useful after a
// failed persist once the user has freed space.
func (m *Manager) Flush(ctx context.Context) error {
	return m.persist(ctx)
}

// persist serializes the whole document and writes it back as a single
// replace. The serialized size is checked against the configured limit
// first; an over-limit document is not written at all and the failure
// is a warning, leaving the previous snapshot on disk.
func (m *Manager) persist(ctx context.Context) error {
	m.doc.LastUpdated = timeNow()

	data, err := json.Marshal(m.doc)
	if err != nil {
		m.dirty = true
		return errors.NewStorageError("serialize document", err)
	}

	if len(data) > m.cfg.Storage.MaxDocumentBytes {
		m.dirty = true
		m.logger.Warn("document over size limit, write aborted",
			zap.Int("size", len(data)),
			zap.Int("limit", m.cfg.Storage.MaxDocumentBytes))
		return errors.NewCapacityWarning(len(data), m.cfg.Storage.MaxDocumentBytes)
	}

	if err := m.repo.Write(ctx, data); err != nil {
		m.dirty = true
		if appErr, ok := errors.AsAppError(err); ok && appErr.IsType(errors.ErrorTypeStorageQuota) {
			m.logger.Error("storage quota exceeded", zap.Error(err))
		} else {
			m.logger.Error("document write failed", zap.Error(err))
		}
		return err
	}

	m.dirty = false
	return nil
}
