package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// newSummaryCommand creates the summary command
func newSummaryCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Show the category breakdown and workflow assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary := app.api.Summary()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Total hours analyzed: %s across %d entries\n",
				formatDuration(summary.TotalHours), summary.EntryCount)
			fmt.Fprintf(out, "Progress toward %.0f hours: %d%%\n\n",
				app.config.Audit.TargetHours, summary.ProgressPercent)

			fmt.Fprintf(out, "%-30s %-10s %-8s %-8s %-8s\n", "Category", "Hours", "Yours", "Trap", "Ideal")
			for _, cat := range registry.All() {
				fmt.Fprintf(out, "%-30s %-10s %-8s %-8s %-8s\n",
					fmt.Sprintf("%d. %s", cat.ID, cat.Name),
					formatDuration(summary.Totals[cat.ID]),
					fmt.Sprintf("%d%%", summary.Percentages[cat.ID]),
					fmt.Sprintf("%d%%", registry.TrapBenchmark(cat.ID)),
					fmt.Sprintf("%d%%", registry.IdealTarget(cat.ID)))
			}

			fmt.Fprintf(out, "\nHigh-value work:  %d%%\n", summary.HighValuePercent)
			fmt.Fprintf(out, "Automatable work: %d%%\n\n", summary.AutomatablePercent)
			fmt.Fprintln(out, summary.Band.Message())

			if !summary.MeaningfulInsights {
				fmt.Fprintf(out, "\nLog at least %.0f hours for meaningful insights.\n",
					app.config.Audit.MinHoursForInsights)
			}
			if !summary.ReviewUnlocked {
				fmt.Fprintf(out, "Log at least %d entries to unlock the review step.\n",
					app.config.Audit.MinEntriesForReview)
			}
			if summary.Completed {
				fmt.Fprintln(out, "\nThis audit has been marked complete.")
			}
			return nil
		},
	}
}
