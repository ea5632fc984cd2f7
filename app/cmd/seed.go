package cmd

import (
	"maintenance-system/seeders"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Write the default collections into storage",
	Long: `Write the default teams, equipment, work centers and requests.

Keys that already hold data are left alone. Pass --reset to wipe every
application key first.`,
	RunE: runSeed,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.Flags().Bool("reset", false, "remove existing collections before seeding")
}

func runSeed(cmd *cobra.Command, _ []string) error {
	reset, _ := cmd.Flags().GetBool("reset")

	cfg, logger, err := loadRuntime()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	b, err := openBackends(cmd.Context(), cfg, logger)
	if err != nil {
		return err
	}
	defer b.Close()

	res, err := seeders.Seed(cmd.Context(), b.Storage, logger.Named("seeder"), seeders.Options{Reset: reset})
	if err != nil {
		logger.Error("seeding failed", zap.Error(err))
		return err
	}

	cmd.Printf("seeded %d collections, skipped %d\n", len(res.Written), len(res.Skipped))
	return nil
}
