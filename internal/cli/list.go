package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"quicksizer/internal/domain/entities"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewListCommand creates the 'quicksizerctl list' command
func NewListCommand(factory AppFactory) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List questionnaires, most recent first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd, factory, func(app *App) error {
				items, err := app.Questionnaires.List(cmd.Context())
				if err != nil {
					return fmt.Errorf("list questionnaires: %w", err)
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(items)
				}
				printQuestionnaires(cmd.OutOrStdout(), items)
				return nil
			})
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print JSON instead of a table")
	return cmd
}

func printQuestionnaires(w io.Writer, items []entities.Questionnaire) {
	if len(items) == 0 {
		color.New(color.FgYellow).Fprintln(w, "No questionnaires found")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tSESSION\tCOMPANY\tINDUSTRY\tDATA SIZE\tDEPLOYMENT\tCREATED")
	for _, q := range items {
		company := "-"
		if q.CompanyName != nil {
			company = *q.CompanyName
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			q.ID, q.SessionID, company, q.Industry, q.DataSize, q.DeploymentPreference,
			q.CreatedAt.Format("2006-01-02 15:04:05"))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\n%d questionnaire(s)\n", len(items))
}
