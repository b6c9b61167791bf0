package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/CAIOdaigle/caio-workflow-audit/internal/errors"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/registry"
	"github.com/CAIOdaigle/caio-workflow-audit/internal/store"
)

// newReflectCommand creates the reflect command
func newReflectCommand(app *App) *cobra.Command {
	var (
		surprisingCategory int
		surprise           string
		opportunity        string
	)

	cmd := &cobra.Command{
		Use:   "reflect",
		Short: "Record reflection answers",
		Long: `Record answers for the review step. Only the flags you pass change;
each answer is independent and can be revised at any time.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			eh := NewErrorHandler(cmd.ErrOrStderr())

			patch := store.ReflectionPatch{}
			if cmd.Flags().Changed("surprising-category") {
				if !registry.Exists(surprisingCategory) {
					return errors.NewInvalidInputError("surprising-category", surprisingCategory, "unknown category")
				}
				patch.MostSurprisingCategory = &surprisingCategory
			}
			if cmd.Flags().Changed("surprise") {
				patch.SurpriseExplanation = &surprise
			}
			if cmd.Flags().Changed("opportunity") {
				patch.BiggestOpportunity = &opportunity
			}

			err := app.api.UpdateReflections(cmd.Context(), patch)
			if handled := eh.Handle("save reflections", err); handled != nil {
				return handled
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Reflections saved.")
			printDirtyNotice(cmd, app)
			return nil
		},
	}

	cmd.Flags().IntVar(&surprisingCategory, "surprising-category", 0, "Category id that surprised you most (1-6)")
	cmd.Flags().StringVar(&surprise, "surprise", "", "Why it surprised you")
	cmd.Flags().StringVar(&opportunity, "opportunity", "", "Your biggest automation opportunity")

	return cmd
}
