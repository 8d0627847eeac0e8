package cli

import (
	"context"

	"quicksizer/internal/bootstrap"
	"quicksizer/internal/config"
	"quicksizer/internal/domain/pricing"
	"quicksizer/internal/usecase"
	"quicksizer/pkg/logger"

	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// App bundles what the subcommands operate on.
type App struct {
	Questionnaires usecase.IQuestionnaireUseCase
	Estimates      usecase.IEstimateUseCase
	Migrate        func(ctx context.Context) error
	Close          func()
}

// AppFactory builds an App on demand so commands like --help never touch storage.
type AppFactory func(ctx context.Context) (*App, error)

// NewRootCommand creates and returns the root cobra command for quicksizerctl
func NewRootCommand(factory AppFactory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quicksizerctl",
		Short: "Administrative tool for the QuickSizer estimate service",
		Long: `quicksizerctl prepares storage and inspects questionnaires and
their cost estimates using the same configuration as the API.`,
		Version:      Version,
		SilenceUsage: true,
	}

	cmd.AddCommand(NewMigrateCommand(factory))
	cmd.AddCommand(NewListCommand(factory))
	cmd.AddCommand(NewResolveCommand(factory))
	cmd.AddCommand(NewEstimateCommand(factory))

	return cmd
}

// DefaultFactory wires the App from environment configuration.
func DefaultFactory(log *logger.Logger) AppFactory {
	return func(ctx context.Context) (*App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}

		stores, err := bootstrap.NewStores(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return &App{
			Questionnaires: usecase.NewQuestionnaireUseCase(stores.Questionnaires, log),
			Estimates:      usecase.NewEstimateUseCase(stores.Questionnaires, stores.Estimates, pricing.NewEngine(), log),
			Migrate:        func(ctx context.Context) error { return bootstrap.Migrate(ctx, cfg, log) },
			Close:          stores.Close,
		}, nil
	}
}

func withApp(cmd *cobra.Command, factory AppFactory, fn func(app *App) error) error {
	app, err := factory(cmd.Context())
	if err != nil {
		return err
	}
	if app.Close != nil {
		defer app.Close()
	}
	return fn(app)
}
