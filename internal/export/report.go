package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/aggregation"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// RenderReport writes the audit report document: a summary block, the
// per-category table with benchmark comparison, the workflow
// classification, and the verbatim reflection answers.
func RenderReport(w io.Writer, doc *domain.AuditDocument, thresholds aggregation.Thresholds, now time.Time) error {
	totals := aggregation.CategoryTotals(doc.Entries)
	percentages := aggregation.CategoryPercentages(doc.Entries)
	totalHours := aggregation.TotalHours(doc.Entries)
	highValuePercent := aggregation.HighValuePercentage(doc.Entries)
	automatablePercent := aggregation.AutomatablePercentage(doc.Entries)
	band := aggregation.Classify(highValuePercent, automatablePercent, thresholds)

	var b strings.Builder

	b.WriteString("CAIO Workflow Audit\n")
	b.WriteString(fmt.Sprintf("Generated %s\n\n", now.Format("January 2, 2006")))

	b.WriteString("Summary\n")
	b.WriteString("-------\n")
	b.WriteString(fmt.Sprintf("Total Hours Analyzed: %s\n", aggregation.FormatHours(totalHours)))
	b.WriteString(fmt.Sprintf("Total Entries: %d\n", len(doc.Entries)))
	b.WriteString(fmt.Sprintf("High-Value Work: %d%%\n", highValuePercent))
	b.WriteString(fmt.Sprintf("Automatable Work: %d%%\n\n", automatablePercent))

	b.WriteString("Category Breakdown\n")
	b.WriteString("------------------\n")
	b.WriteString(fmt.Sprintf("%-30s %-10s %-8s %-8s %-8s\n", "Category", "Hours", "Your %", "Trap %", "Ideal %"))
	for _, cat := range registry.All() {
		b.WriteString(fmt.Sprintf("%-30s %-10s %-8s %-8s %-8s\n",
			fmt.Sprintf("%d. %s", cat.ID, cat.Name),
			aggregation.FormatHours(totals[cat.ID]),
			fmt.Sprintf("%d%%", percentages[cat.ID]),
			fmt.Sprintf("%d%%", registry.TrapBenchmark(cat.ID)),
			fmt.Sprintf("%d%%", registry.IdealTarget(cat.ID)),
		))
	}
	b.WriteString("\n")

	b.WriteString("Assessment\n")
	b.WriteString("----------\n")
	b.WriteString(band.Message())
	b.WriteString("\n\n")

	b.WriteString("Reflection Responses\n")
	b.WriteString("--------------------\n")
	b.WriteString(fmt.Sprintf("Most surprising category: %s\n", surprisingCategoryName(doc.Reflections)))
	b.WriteString(fmt.Sprintf("Why it surprised you: %s\n", orUnanswered(doc.Reflections.SurpriseExplanation)))
	b.WriteString(fmt.Sprintf("Biggest automation opportunity: %s\n", orUnanswered(doc.Reflections.BiggestOpportunity)))

	if doc.CompletedAt != nil {
		b.WriteString(fmt.Sprintf("\nAudit completed %s\n", doc.CompletedAt.Format("January 2, 2006")))
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.NewExportError("report", err)
	}
	return nil
}

func surprisingCategoryName(reflections domain.ReflectionState) string {
	if reflections.MostSurprisingCategory == nil {
		return "(unanswered)"
	}
	cat, ok := registry.ByID(*reflections.MostSurprisingCategory)
	if !ok {
		return "Unknown"
	}
	return cat.Name
}

func orUnanswered(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(unanswered)"
	}
	return s
}
