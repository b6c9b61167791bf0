package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"
)

// newExportCommand creates the export command
func newExportCommand(app *App) *cobra.Command {
	var outputPath string

	cmd := &cobra.Command{
		Use:   "export {csv|report}",
		Short: "Export audit data as CSV or a summary report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			var out io.Writer = cmd.OutOrStdout()
			if outputPath != "" {
				file, err := os.Create(outputPath)
				if err != nil {
					return eh.Handle("export", errors.NewExportError(args[0], err))
				}
				defer file.Close()
				out = file
			}

			var err error
			switch args[0] {
			case "csv":
				err = app.api.ExportCSV(out)
			case "report":
				err = app.api.ExportReport(out)
			default:
				return errors.NewInvalidInputError("format", args[0], "supported formats: csv, report")
			}
			if handled := eh.Handle("export", err); handled != nil {
				return handled
			}

			if outputPath != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "Exported %s to %s\n", args[0], outputPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Write to a file instead of stdout")

	return cmd
}
