package export

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/aggregation"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
)

func testThresholds() aggregation.Thresholds {
	return aggregation.Thresholds{
		Trap:               40,
		HealthyHighValue:   30,
		HealthyAutomatable: 30,
	}
}

func TestRenderReport_EmptyDocument(t *testing.T) {
	doc := domain.NewAuditDocument()
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, doc, testThresholds(), now))
	out := buf.String()

	assert.Contains(t, out, "CAIO Workflow Audit")
	assert.Contains(t, out, "Generated September 1, 2026")
	assert.Contains(t, out, "Total Hours Analyzed: 0 hrs")
	assert.Contains(t, out, "Total Entries: 0")
	assert.Contains(t, out, "Category Breakdown")
	assert.Contains(t, out, "1. Client Advisory")
	assert.Contains(t, out, "6. Administration")
	assert.Contains(t, out, "Most surprising category: (unanswered)")
	assert.Contains(t, out, "Why it surprised you: (unanswered)")
	assert.Contains(t, out, "Biggest automation opportunity: (unanswered)")
	assert.NotContains(t, out, "Audit completed")
}

func TestRenderReport_PopulatedDocument(t *testing.T) {
	doc := domain.NewAuditDocument()
	doc.Entries = []domain.TimeEntry{
		csvTestEntry("2026-09-01", "09:00", "12:00", 3, "Advisory work", 1, ""),
		csvTestEntry("2026-09-01", "13:00", "14:00", 1, "Inbox", 5, ""),
	}
	category := 5
	doc.Reflections.MostSurprisingCategory = &category
	doc.Reflections.SurpriseExplanation = "more email than expected"
	doc.Reflections.BiggestOpportunity = "auto-draft replies"
	completed := time.Date(2026, 8, 30, 18, 0, 0, 0, time.UTC)
	doc.CompletedAt = &completed

	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	var buf bytes.Buffer
	require.NoError(t, RenderReport(&buf, doc, testThresholds(), now))
	out := buf.String()

	assert.Contains(t, out, "Total Hours Analyzed: 4.0 hrs")
	assert.Contains(t, out, "Total Entries: 2")
	assert.Contains(t, out, "High-Value Work: 75%")
	assert.Contains(t, out, "Automatable Work: 25%")
	assert.Contains(t, out, "Most surprising category: Communication")
	assert.Contains(t, out, "Why it surprised you: more email than expected")
	assert.Contains(t, out, "Biggest automation opportunity: auto-draft replies")
	assert.Contains(t, out, "Audit completed August 30, 2026")
}

func TestRenderReport_AssessmentBands(t *testing.T) {
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		entries  []domain.TimeEntry
		expected string
	}{
		{
			name: "trap",
			entries: []domain.TimeEntry{
				csvTestEntry("2026-09-01", "09:00", "14:00", 5, "email all day", 5, ""),
				csvTestEntry("2026-09-01", "14:00", "19:00", 5, "strategy", 1, ""),
			},
			expected: "CAIO trap",
		},
		{
			name: "healthy",
			entries: []domain.TimeEntry{
				csvTestEntry("2026-09-01", "09:00", "17:00", 8, "strategy", 1, ""),
				csvTestEntry("2026-09-01", "17:00", "19:00", 2, "email", 5, ""),
			},
			expected: "Keep protecting that advisory time",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := domain.NewAuditDocument()
			doc.Entries = tt.entries

			var buf bytes.Buffer
			require.NoError(t, RenderReport(&buf, doc, testThresholds(), now))
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}
