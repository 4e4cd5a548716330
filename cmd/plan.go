package cmd

import (
	"fmt"
	"strings"

	"github.com/capopt/platform/internal/modules"
	"github.com/capopt/platform/internal/seeder"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var planCmd = &cobra.Command{
	Use:   "plan [strategy]",
	Short: "Show the order chunks would run in",
	Long: `
Print the resolved chunk order for a strategy without touching the database.

Strategies: full (default), master-data, bmc, facility`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		strategy := modules.StrategyFull
		if len(args) == 1 {
			strategy = args[0]
		}

		names, err := modules.Strategy(strategy)
		if err != nil {
			return err
		}

		o, err := seeder.New(modules.Registry())
		if err != nil {
			return err
		}
		plan, err := o.Plan(names)
		if err != nil {
			return err
		}

		chunks := make(map[string]seeder.Chunk)
		for _, c := range o.Chunks() {
			chunks[c.Name] = c
		}

		color.Cyan("📋 Plan for strategy %q (%d chunks)", strategy, len(plan))
		fmt.Println()
		for i, name := range plan {
			c := chunks[name]
			deps := "-"
			if len(c.Dependencies) > 0 {
				deps = strings.Join(c.Dependencies, ", ")
			}
			fmt.Printf("%2d. %-24s %-50s depends on: %s\n", i+1, name, c.Description, deps)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
