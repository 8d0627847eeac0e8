package cli

import (
	"fmt"
	"io"
	"strconv"

	"quicksizer/internal/domain/entities"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewResolveCommand creates the 'quicksizerctl resolve' command
func NewResolveCommand(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve <session-id>",
		Short: "Show the cost result of a session, computing it on first use",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd, factory, func(app *App) error {
				res, err := app.Estimates.Resolve(cmd.Context(), args[0])
				if err != nil {
					return fmt.Errorf("resolve: %w", err)
				}
				if res == nil {
					return fmt.Errorf("no questionnaire found for session %q", args[0])
				}
				printEstimate(cmd.OutOrStdout(), res.Questionnaire.SessionID, res.Estimation)
				return nil
			})
		},
	}
}

// NewEstimateCommand creates the 'quicksizerctl estimate' command
func NewEstimateCommand(factory AppFactory) *cobra.Command {
	return &cobra.Command{
		Use:   "estimate <questionnaire-id>",
		Short: "Show the stored estimate of a questionnaire without computing one",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid questionnaire id %q", args[0])
			}
			return withApp(cmd, factory, func(app *App) error {
				e, err := app.Estimates.GetByQuestionnaireID(cmd.Context(), id)
				if err != nil {
					return fmt.Errorf("get estimate: %w", err)
				}
				if e == nil {
					return fmt.Errorf("no estimate stored for questionnaire %d", id)
				}
				printEstimate(cmd.OutOrStdout(), "", *e)
				return nil
			})
		},
	}
}

func printEstimate(w io.Writer, sessionID string, e entities.Estimate) {
	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)

	if sessionID != "" {
		cyan.Fprintf(w, "\n=== Estimate for session %s ===\n\n", sessionID)
	} else {
		cyan.Fprintf(w, "\n=== Estimate for questionnaire %d ===\n\n", e.QuestionnaireID)
	}

	for _, line := range e.CostBreakdown {
		share := e.CostBreakdown.Share(line.Label, e.TotalMonthlyCost)
		fmt.Fprintf(w, "  %-20s %12s  (%s%%)\n", line.Label, line.Amount.StringFixed(2), share.StringFixed(1))
	}
	fmt.Fprintf(w, "\n  Monthly total: ")
	green.Fprintf(w, "%s\n", e.TotalMonthlyCost.StringFixed(2))
	fmt.Fprintf(w, "  Annual total:  ")
	green.Fprintf(w, "%s\n", e.TotalAnnualCost.StringFixed(2))

	if len(e.Recommendations) > 0 {
		fmt.Fprintf(w, "\n")
		cyan.Fprintf(w, "Recommendations:\n")
		for _, r := range e.Recommendations {
			fmt.Fprintf(w, "  - %s\n", r)
		}
	}
}
