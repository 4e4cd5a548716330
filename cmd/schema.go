package cmd

import (
	"context"
	"fmt"

	"github.com/capopt/platform/internal/store"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Work with the development schema",
}

var schemaApplyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Create the seeded tables if they do not exist",
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

		if err := st.ApplySchema(ctx); err != nil {
			return err
		}

		tables, err := st.Adapter().GetAllTableNames(ctx)
		if err != nil {
			return fmt.Errorf("failed to list tables: %w", err)
		}
		color.Green("✅ Schema applied (%d tables)", len(tables))
		return nil
	},
}

var schemaPrintCmd = &cobra.Command{
	Use:   "print",
	Short: "Print the development schema",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Print(store.Schema)
	},
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.AddCommand(schemaApplyCmd, schemaPrintCmd)
}
