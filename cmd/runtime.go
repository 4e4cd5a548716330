package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/capopt/platform/internal/config"
	"github.com/capopt/platform/internal/database"
	"github.com/capopt/platform/internal/modules"
	"github.com/capopt/platform/internal/seeder"
	"github.com/capopt/platform/internal/store"
	"go.uber.org/zap"
)

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// openStore connects the configured adapter and checks the connection is
// live. The returned func closes it.
func openStore(ctx context.Context, cfg *config.Config) (*store.Store, func(), error) {
	adapter, err := database.NewAdapter(cfg.Database.Provider, cfg.Database.Driver)
	if err != nil {
		return nil, nil, err
	}

	dbURL, err := cfg.GetDatabaseURL()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get database URL: %w", err)
	}

	if err := adapter.Connect(ctx, dbURL); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := adapter.Ping(ctx); err != nil {
		adapter.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return store.New(adapter), func() { adapter.Close() }, nil
}

// newReporter picks the console or JSON reporter from log.format. The
// returned func flushes it.
func newReporter(cfg *config.Config) (seeder.Reporter, func(), error) {
	if cfg.Log.Format != "json" {
		return seeder.NewConsoleReporter(os.Stdout), func() {}, nil
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.OutputPaths = []string{"stdout"}
	logger, err := zapConfig.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return seeder.NewLogReporter(logger.Named("seed")), func() { _ = logger.Sync() }, nil
}

func newOrchestrator(reporter seeder.Reporter) (*seeder.Orchestrator, error) {
	return seeder.New(modules.Registry(), seeder.WithReporter(reporter))
}

func askUserConfirmation(message string, force bool) bool {
	if force {
		return true
	}

	fmt.Printf("🤔 %s (y/N): ", message)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "yes" || response == "y"
}
