package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/aggregation"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
)

// newListCommand creates the list command
func newListCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List logged entries grouped by date",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries := app.api.Entries()
			out := cmd.OutOrStdout()

			if len(entries) == 0 {
				fmt.Fprintln(out, "No entries logged yet. Use 'audit add' or 'audit sample' to get started.")
				return nil
			}

			grouped := aggregation.EntriesByDate(entries)
			for _, date := range aggregation.SortedDates(grouped) {
				fmt.Fprintf(out, "%s\n", date)
				for _, entry := range grouped[date] {
					code := "???"
					if cat, ok := registry.ByID(entry.CategoryID); ok {
						code = cat.ShortCode
					}
					fmt.Fprintf(out, "  %s-%s  [%s]  %-40s %s  (%s)\n",
						entry.StartTime, entry.EndTime, code, entry.Activity,
						formatDuration(entry.Duration), entry.ID)
				}
			}
			fmt.Fprintf(out, "\n%d entries, %s total\n",
				len(entries), formatDuration(aggregation.TotalHours(entries)))
			return nil
		},
	}
}
