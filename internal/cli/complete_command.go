package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newCompleteCommand creates the complete command
func newCompleteCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "complete",
		Short: "Mark the audit complete",
		Long: `Stamp the completion milestone. This is a flag, not a lock: entries
can still be edited afterwards, and completing again just refreshes
the timestamp.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			err := app.api.MarkComplete(cmd.Context())
			if handled := eh.Handle("mark complete", err); handled != nil {
				return handled
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Audit marked complete.")
			printDirtyNotice(cmd, app)
			return nil
		},
	}
}
