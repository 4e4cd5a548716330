package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var cleanupForce bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup",
	Short: "Delete every seeded row",
	Long: `
Delete rows from every table the seed chunks write, dependents first.
Asks for confirmation unless --force is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signalContext(cmd)
		defer stop()

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		color.Yellow("🗑️  This will delete all seeded data from your %s database!", cfg.Database.Provider)
		if !askUserConfirmation("Are you sure you want to continue?", cleanupForce) {
			fmt.Println("Cleanup cancelled")
			return nil
		}

		o, err := newOrchestrator(nil)
		if err != nil {
			return err
		}

		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		tables, deleted, err := o.Cleanup(ctx, st, nil)
		if err != nil {
			return err
		}
		color.Green("✅ Deleted %d row(s) from %d table(s)", deleted, len(tables))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanupCmd)
	cleanupCmd.Flags().BoolVarP(&cleanupForce, "force", "f", false, "skip confirmation")
}
