package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/domain"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/validation"
)

// newAddCommand creates the add command
func newAddCommand(app *App) *cobra.Command {
	var (
		date     string
		start    string
		end      string
		activity string
		category int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Log a time block",
		Long: `Log one block of work against a category.

The date defaults to today and must be within the trailing audit window.
Times are 24-hour HH:MM; the end time must be strictly after the start.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			if date == "" {
				date = time.Now().Format(domain.DateFormat)
			}

			entry, err := app.api.AddEntry(cmd.Context(), validation.NewEntryInput{
				Date:       date,
				StartTime:  start,
				EndTime:    end,
				Activity:   activity,
				CategoryID: category,
				Notes:      notes,
			})
			if handled := eh.Handle("add entry", err); handled != nil {
				return handled
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s on %s (%s-%s, %s)\n",
				entry.Activity, entry.Date, entry.StartTime, entry.EndTime,
				formatDuration(entry.Duration))
			printDirtyNotice(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Entry date (YYYY-MM-DD, default today)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM)")
	cmd.Flags().StringVar(&activity, "activity", "", "What you worked on")
	cmd.Flags().IntVar(&category, "category", 0, "Category id (1-6)")
	cmd.Flags().StringVar(&notes, "notes", "", "Optional notes")
	cmd.MarkFlagRequired("start")
	cmd.MarkFlagRequired("end")
	cmd.MarkFlagRequired("activity")
	cmd.MarkFlagRequired("category")

	return cmd
}
