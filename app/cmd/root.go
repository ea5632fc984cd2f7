// Package cmd wires the maintenance CLI: the API server plus storage maintenance commands.
package cmd

import (
	"os"

	"maintenance-system/pkg/config"
	applogger "maintenance-system/pkg/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var rootCmd = &cobra.Command{
	Use:   "maintenance",
	Short: "Maintenance dashboard API",
	Long: `maintenance serves the maintenance dashboard API: requests, equipment,
work centers, teams, the kanban board and reporting.

Running it without a subcommand is the same as "maintenance serve".`,
	SilenceUsage: true,
	RunE:         runServe,
}

// Execute runs the root command. It is called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// Root returns the root command for tests.
func Root() *cobra.Command {
	return rootCmd
}

// loadRuntime reads the configuration and builds the root logger shared by every command.
func loadRuntime() (*config.Config, *zap.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	var paths []string
	if cfg.Log.File != "" {
		paths = append(paths, cfg.Log.File)
	}
	logger, err := applogger.NewLogger(cfg.Log.Level, paths...)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logger, nil
}
