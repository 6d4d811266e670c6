package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jakechorley/shift-grid/cmd/cli/commands"
	"github.com/jakechorley/shift-grid/internal/config"
	"github.com/jakechorley/shift-grid/pkg/postgres"
	"github.com/jakechorley/shift-grid/pkg/utils/logging"
)

var (
	env        string
	configPath string
	verbose    bool
	app        = &commands.AppContext{}
	database   *postgres.DB
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "shiftgrid",
		Short: "Shift Grid CLI - Build weekly shift schedules",
		Long: `A CLI tool that assigns employees to morning, afternoon and evening shifts
across a week, honouring preferences and a weekly cap on working days.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initApp()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if database != nil {
				database.Close()
			}
			if app.Logger != nil {
				app.Logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVarP(&env, "env", "e", "dev", "Environment (selects shift_scheduler.<env>.yaml and the log file prefix)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a config file (skips the config search)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log info messages to the console")

	rootCmd.AddCommand(commands.GenerateCmd(app))
	rootCmd.AddCommand(commands.ListRunsCmd(app))
	rootCmd.AddCommand(commands.ViewScheduleCmd(app))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// initApp loads config and sets up the logger and, when configured, the database
func initApp() error {
	var err error
	app.Ctx = context.Background()

	// Load configuration
	if configPath != "" {
		app.Cfg, err = config.LoadFromPath(configPath)
	} else {
		app.Cfg, err = config.LoadWithEnv(env)
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	app.Logger, err = logging.InitLogger(env, app.Cfg.ConfiguredLogDir(), verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	app.Logger.Info("Starting application", zap.String("environment", env))
	app.Logger.Debug("Configuration loaded",
		zap.Int("min_staffing", app.Cfg.MinStaffing),
		zap.Int("weekly_cap", app.Cfg.WeeklyCap),
		zap.Int("staffing_overrides", len(app.Cfg.StaffingOverrides)))

	if app.Cfg.DatabaseURL == "" {
		app.Logger.Debug("No databaseURL configured, publishing disabled")
		return nil
	}

	// Initialize database
	app.Logger.Info("Connecting to database")
	database, err = postgres.NewDB(app.Ctx, app.Cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := database.RunMigrations(app.Ctx); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	app.Store = database
	app.Logger.Info("Database initialized successfully")

	return nil
}
