package cmd

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/modules"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show row counts for every seeded table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		ctx := context.Background()
		st, closeStore, err := openStore(ctx, cfg)
		if err != nil {
			return err
		}
		defer closeStore()

		fmt.Printf("📊 Seed Status\n")
		fmt.Printf("==============\n\n")
		fmt.Printf("Database: %s\n\n", cfg.Database.Provider)

		for _, chunk := range modules.Registry() {
			for _, table := range chunk.Tables {
				n, err := st.Count(ctx, table)
				if err != nil {
					return fmt.Errorf("failed to count %s: %w", table, err)
				}
				fmt.Printf("%-24s %-24s %d\n", chunk.Name, table, n)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
