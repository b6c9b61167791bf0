package domain

import "time"

// ReflectionState holds the free-form answers from the review step.
// These are gated only at the presentation boundary; the core stores
// whatever the user typed.
type ReflectionState struct {
	MostSurprisingCategory *int   `json:"mostSurprisingCategory"`
	SurpriseExplanation    string `json:"surpriseExplanation"`
	BiggestOpportunity     string `json:"biggestOpportunity"`
}

// AuditDocument is the single persisted aggregate: all entries, the
// reflection answers, and the completion milestone. It is always
// persisted whole; there are no partial-field writes.
type AuditDocument struct {
	Entries     []TimeEntry     `json:"entries"`
	Reflections ReflectionState `json:"reflections"`
	CompletedAt *time.Time      `json:"completedAt"`
	LastUpdated time.Time       `json:"lastUpdated"`
}

// NewAuditDocument creates a document with empty defaults.
func NewAuditDocument() *AuditDocument {
	return &AuditDocument{
		Entries:     []TimeEntry{},
		Reflections: ReflectionState{},
		CompletedAt: nil,
		LastUpdated: time.Now(),
	}
}

// Clone returns a deep copy of the document. The store hands out clones
// so callers can never mutate the owned document behind its back.
func (d *AuditDocument) Clone() *AuditDocument {
	out := &AuditDocument{
		Entries:     make([]TimeEntry, len(d.Entries)),
		Reflections: d.Reflections,
		LastUpdated: d.LastUpdated,
	}
	copy(out.Entries, d.Entries)
	if d.CompletedAt != nil {
		t := *d.CompletedAt
		out.CompletedAt = &t
	}
	if d.Reflections.MostSurprisingCategory != nil {
		id := *d.Reflections.MostSurprisingCategory
		out.Reflections.MostSurprisingCategory = &id
	}
	return out
}

// FindEntry returns the index of the entry with the given id, or false
// when no such entry exists.
func (d *AuditDocument) FindEntry(id string) (int, bool) {
	for i, entry := range d.Entries {
		if entry.ID == id {
			return i, true
		}
	}
	return 0, false
}
