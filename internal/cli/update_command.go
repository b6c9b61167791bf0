package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/api"
)

// newUpdateCommand creates the update command
func newUpdateCommand(app *App) *cobra.Command {
	var (
		id       string
		date     string
		start    string
		end      string
		activity string
		category int
		notes    string
	)

	cmd := &cobra.Command{
		Use:   "update",
		Short: "Update an existing entry by id",
		Long: `Update fields of an existing entry. Only the flags you pass change;
everything else is preserved. The duration is recomputed when either
time changes. Updating an unknown id changes nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			patch := api.EntryUpdate{}
			if cmd.Flags().Changed("date") {
				patch.Date = &date
			}
			if cmd.Flags().Changed("start") {
				patch.StartTime = &start
			}
			if cmd.Flags().Changed("end") {
				patch.EndTime = &end
			}
			if cmd.Flags().Changed("activity") {
				patch.Activity = &activity
			}
			if cmd.Flags().Changed("category") {
				patch.CategoryID = &category
			}
			if cmd.Flags().Changed("notes") {
				patch.Notes = &notes
			}

			found, err := app.api.UpdateEntry(cmd.Context(), id, patch)
			if handled := eh.Handle("update entry", err); handled != nil {
				return handled
			}

			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s; nothing changed.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated entry %s\n", id)
			printDirtyNotice(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Entry id (see 'audit list')")
	cmd.Flags().StringVar(&date, "date", "", "New date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&start, "start", "", "New start time (HH:MM)")
	cmd.Flags().StringVar(&end, "end", "", "New end time (HH:MM)")
	cmd.Flags().StringVar(&activity, "activity", "", "New activity description")
	cmd.Flags().IntVar(&category, "category", 0, "New category id (1-6)")
	cmd.Flags().StringVar(&notes, "notes", "", "New notes")
	cmd.MarkFlagRequired("id")

	return cmd
}
