package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newSampleCommand creates the sample command
func newSampleCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "sample",
		Short: "Replace all entries with a demo dataset",
		Long: `Load a synthetic two-week dataset so the summary and exports have
something to show. This replaces any entries you have logged.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			count, err := app.api.LoadSampleData(cmd.Context())
			if handled := eh.Handle("load sample data", err); handled != nil {
				return handled
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Loaded %d sample entries.\n", count)
			printDirtyNotice(cmd, app)
			return nil
		},
	}
}
