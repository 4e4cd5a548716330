package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/capopt/platform/internal/config"
	"github.com/capopt/platform/internal/modules"
	"github.com/capopt/platform/internal/seeder"
	"github.com/spf13/cobra"
)

var (
	seedModules []string
	seedCleanup bool
	seedTimeout time.Duration
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Run every seed chunk in dependency order",
	Long: `
Run the full seed. SEED_MODULES (or --modules) restricts the run to the
listed chunks; chunks whose dependencies are not selected assume that data
is already in the database.

Examples:
  capopt seed
  capopt seed --modules users,industries
  NODE_ENV=staging capopt seed --cleanup`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStrategy(cmd, modules.StrategyFull, "")
	},
}

var seedMasterDataCmd = &cobra.Command{
	Use:   "master-data",
	Short: "Seed industries, facility types, operational streams and regulatory frameworks",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStrategy(cmd, modules.StrategyMasterData, "")
	},
}

var seedBMCCmd = &cobra.Command{
	Use:   "bmc",
	Short: "Seed business canvases and all canvas sections",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStrategy(cmd, modules.StrategyBMC, "")
	},
}

var seedFacilityCmd = &cobra.Command{
	Use:   "facility <code>",
	Short: "Seed the canvas and canvas sections of one facility",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runStrategy(cmd, modules.StrategyFacility, args[0])
	},
}

var seedChunkCmd = &cobra.Command{
	Use:   "chunk <name>",
	Short: "Run a single chunk without dependency gating",
	Long: `
Run exactly one chunk. Dependencies are not run or checked first; the chunk
fails if the rows it needs are missing from the database.

Example:
  capopt seed chunk value-propositions`,
	Args: cobra.ExactArgs(1),
	RunE: runSingleChunk,
}

func init() {
	rootCmd.AddCommand(seedCmd)
	seedCmd.AddCommand(seedMasterDataCmd, seedBMCCmd, seedFacilityCmd, seedChunkCmd)

	seedCmd.PersistentFlags().StringSliceVar(&seedModules, "modules", nil, "comma separated chunks to run (overrides SEED_MODULES)")
	seedCmd.PersistentFlags().BoolVar(&seedCleanup, "cleanup", false, "delete seeded rows before seeding")
	seedCmd.PersistentFlags().DurationVar(&seedTimeout, "timeout", 0, "per-chunk timeout (overrides SEED_CHUNK_TIMEOUT)")
}

// seedOptions loads options from config and env, then applies flags.
func seedOptions(cmd *cobra.Command, cfg *config.Config) (*seeder.Options, error) {
	opts, err := cfg.LoadSeedOptions()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("modules") {
		opts.Modules = config.SplitList(strings.Join(seedModules, ","))
	}
	if flags.Changed("cleanup") {
		opts.CleanupBeforeSeed = seedCleanup
	}
	if flags.Changed("timeout") {
		opts.ChunkTimeout = seedTimeout
	}
	return opts, nil
}

func signalContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func runStrategy(cmd *cobra.Command, strategy, facility string) error {
	ctx, stop := signalContext(cmd)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := seedOptions(cmd, cfg)
	if err != nil {
		return err
	}

	names, err := modules.Strategy(strategy)
	if err != nil {
		return err
	}
	if opts.Modules, err = modules.Select(names, opts.Modules); err != nil {
		return err
	}
	opts.Facility = facility

	reporter, flush, err := newReporter(cfg)
	if err != nil {
		return err
	}
	defer flush()

	o, err := newOrchestrator(reporter)
	if err != nil {
		return err
	}

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	report, err := o.Run(ctx, st, opts)
	if err != nil {
		return err
	}
	if err := report.Err(); err != nil {
		return fmt.Errorf("seeding incomplete: %w", err)
	}
	return nil
}

func runSingleChunk(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext(cmd)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	opts, err := seedOptions(cmd, cfg)
	if err != nil {
		return err
	}

	reporter, flush, err := newReporter(cfg)
	if err != nil {
		return err
	}
	defer flush()

	o, err := newOrchestrator(reporter)
	if err != nil {
		return err
	}

	st, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	_, err = o.RunChunk(ctx, args[0], st, opts)
	return err
}
