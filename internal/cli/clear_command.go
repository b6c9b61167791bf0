package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newClearCommand creates the clear command
func newClearCommand(app *App) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Reset the audit to an empty state",
		Long: `Delete all entries, reflections, and the completion flag. This cannot
be undone; pass --force to confirm.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			if !force {
				fmt.Fprintln(cmd.OutOrStdout(), "This deletes everything. Re-run with --force to confirm.")
				return nil
			}

			err := app.api.ClearAll(cmd.Context())
			if handled := eh.Handle("clear audit data", err); handled != nil {
				return handled
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Audit data cleared.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Confirm the reset")

	return cmd
}
