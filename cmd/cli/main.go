package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grandcafe/venueops/cmd/cli/commands"
	"github.com/grandcafe/venueops/internal/config"
	"github.com/grandcafe/venueops/pkg/db"
	"github.com/grandcafe/venueops/pkg/utils/logging"
)

var (
	env string
	app *commands.AppContext
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "venueops",
		Short: "VenueOps CLI - Validate and publish staff schedules",
		Long:  `A CLI tool for validating weekly staff schedules against labor constraints, generating draft weeks from shift templates, and publishing compliant schedules.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if app != nil {
				if app.Logger != nil {
					app.Logger.Sync()
				}
				if app.Database != nil {
					app.Database.Close()
				}
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "", "Environment (required: test, prod, etc.)")
	rootCmd.MarkPersistentFlagRequired("env")

	rootCmd.AddCommand(
		commands.ValidateScheduleCmd(appRef()),
		commands.PublishScheduleCmd(appRef()),
		commands.GenerateWeekCmd(appRef()),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// appRef returns the shared AppContext, allocating it before initApp has
// populated the dependencies so commands can capture the pointer
func appRef() *commands.AppContext {
	if app == nil {
		app = &commands.AppContext{}
	}
	return app
}

// initApp loads configuration and wires up the logger and database
func initApp() error {
	ctx := context.Background()

	logger, err := logging.InitLogger(env)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Debug("Configuration loaded", zap.String("venue", cfg.VenueName))

	database, err := db.NewDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(ctx); err != nil {
		database.Close()
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	a := appRef()
	a.Cfg = cfg
	a.Database = database
	a.Logger = logger
	a.Ctx = ctx

	return nil
}
