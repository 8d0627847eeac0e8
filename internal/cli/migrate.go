package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewMigrateCommand creates the 'quicksizerctl migrate' command
func NewMigrateCommand(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create the tables of the configured storage backend",
		Long: `Create the DynamoDB tables (questionnaires, estimates, counters) or run
the relational schema migration, depending on STORAGE_DRIVER. Safe to run repeatedly.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, factory, func(app *App) error {
				if err := app.Migrate(cmd.Context()); err != nil {
					return fmt.Errorf("migrate: %w", err)
				}
				color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "storage schema is ready")
				return nil
			})
		},
	}
}
