package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newDeleteCommand creates the delete command
func newDeleteCommand(app *App) *cobra.Command {
	var id string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete an entry by id",
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			found, err := app.api.DeleteEntry(cmd.Context(), id)
			if handled := eh.Handle("delete entry", err); handled != nil {
				return handled
			}

			if !found {
				fmt.Fprintf(cmd.OutOrStdout(), "No entry with id %s; nothing changed.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted entry %s\n", id)
			printDirtyNotice(cmd, app)
			return nil
		},
	}

	cmd.Flags().StringVar(&id, "id", "", "Entry id (see 'audit list')")
	cmd.MarkFlagRequired("id")

	return cmd
}
