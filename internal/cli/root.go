// Package cli is the cobra command surface over the audit API. It is
// presentation glue: all validation, aggregation, and persistence
// semantics live below the api package.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/api"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/config"
)

// App holds the wired dependencies shared by all commands.
type App struct {
	api    api.API
	config *config.Config
}

// NewApp creates a CLI application instance with dependency injection.
func NewApp(apiInstance api.API, cfg *config.Config) *App {
	return &App{
		api:    apiInstance,
		config: cfg,
	}
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd *cobra.Command
	app *App
}

// NewRootCommand creates the root cobra command with all subcommands
func NewRootCommand(app *App) *RootCommand {
	root := &RootCommand{app: app}

	root.cmd = &cobra.Command{
		Use:   "audit",
		Short: "A two-week workflow self-audit for Chief AI Officers",
		Long: `CAIO Workflow Audit logs discrete time blocks over a two-week window,
tags each with one of six fixed work categories, and compares the
resulting distribution against the CAIO trap benchmark.

EXAMPLES:
  audit add --date 2026-09-01 --start 09:00 --end 11:00 \
            --activity "AI Council meeting" --category 1
  audit list                               # Entries grouped by date
  audit summary                            # Category breakdown and assessment
  audit sample                             # Load a demo dataset
  audit export csv -o audit.csv            # Per-entry CSV export
  audit export report                      # Summary report to stdout
  audit reflect --surprising-category 5    # Record reflection answers
  audit complete                           # Mark the audit complete
  audit clear --force                      # Reset everything

CATEGORIES:
  1 Client Advisory (ADV)    2 Pilot Management (PLT)
  3 Research & Evaluation    4 Governance & Documentation
  5 Communication (COM)      6 Administration (ADM)

CONFIGURATION:
  AUDIT_DB_DIR                   Storage directory (default: ~/.caio-audit)
  AUDIT_DB_FILENAME              Storage filename (default: audit.db)
  AUDIT_STORAGE_MAX_BYTES        Document size guard (default: ~4.5MB)
  AUDIT_TARGET_HOURS             Audit-period target hours (default: 80)
  AUDIT_MIN_ENTRIES_FOR_REVIEW   Entries needed before review (default: 5)
  AUDIT_MAX_DAYS_BACK            Oldest permitted entry date (default: 14)
  AUDIT_VERBOSE                  Verbose logging (default: false)`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.addSubcommands()
	return root
}

// Command returns the underlying cobra command, for execution and tests.
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Execute runs the root command
func (r *RootCommand) Execute() error {
	return r.cmd.Execute()
}

// addSubcommands registers all audit subcommands
func (r *RootCommand) addSubcommands() {
	r.cmd.AddCommand(
		newAddCommand(r.app),
		newListCommand(r.app),
		newUpdateCommand(r.app),
		newDeleteCommand(r.app),
		newSummaryCommand(r.app),
		newReflectCommand(r.app),
		newCompleteCommand(r.app),
		newSampleCommand(r.app),
		newExportCommand(r.app),
		newClearCommand(r.app),
	)
}
