package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/aggregation"
)

// formatDuration renders an entry duration for display
func formatDuration(hours float64) string {
	return aggregation.FormatHours(hours)
}

// printDirtyNotice warns when the latest in-memory state could not be
// durably saved. The in-memory mutation still happened; only the disk
// snapshot is stale.
func printDirtyNotice(cmd *cobra.Command, app *App) {
	if app.api.Dirty() {
		fmt.Fprintln(cmd.ErrOrStderr(), "Note: you have unsaved changes. Export your data, then clear old entries and retry.")
	}
}
