package config

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/capopt/platform/internal/seeder"
	"github.com/spf13/viper"
)

func clearSeedEnv(t *testing.T) {
	for _, key := range []string{
		"NODE_ENV", "SEED_DEFAULT_PASSWORD", "SEED_MODULES", "SEED_INCLUDE_TEST_DATA",
		"SEED_INCLUDE_SAMPLE_DATA", "SEED_CLEANUP", "SEED_CHUNK_TIMEOUT",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Database.Provider != "postgresql" {
		t.Errorf("Expected database provider to be 'postgresql', got '%s'", cfg.Database.Provider)
	}
	if cfg.Database.URLEnv != "DATABASE_URL" {
		t.Errorf("Expected database url_env to be 'DATABASE_URL', got '%s'", cfg.Database.URLEnv)
	}
	if cfg.Database.Driver != "pgx" {
		t.Errorf("Expected database driver to be 'pgx', got '%s'", cfg.Database.Driver)
	}
	if cfg.Log.Format != "console" {
		t.Errorf("Expected log format to be 'console', got '%s'", cfg.Log.Format)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should be valid: %v", err)
	}
}

func TestLoadFromViper(t *testing.T) {
	viper.Reset()
	defer viper.Reset()
	viper.Set("database.provider", "sqlite")
	viper.Set("database.url_env", "CAPOPT_DB")
	viper.Set("seed.chunk_timeout", "30s")
	viper.Set("log.format", "json")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Database.Provider != "sqlite" || cfg.Database.URLEnv != "CAPOPT_DB" {
		t.Errorf("Unexpected database config: %+v", cfg.Database)
	}
	if cfg.Seed.ChunkTimeout != "30s" || cfg.Log.Format != "json" {
		t.Errorf("Unexpected seed/log config: %+v %+v", cfg.Seed, cfg.Log)
	}

	t.Setenv("CAPOPT_DB", "sqlite://dev.db")
	url, err := cfg.GetDatabaseURL()
	if err != nil || url != "sqlite://dev.db" {
		t.Errorf("Expected url from CAPOPT_DB, got %q (%v)", url, err)
	}
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		return &Config{
			Database: Database{Provider: "postgresql", URLEnv: "DATABASE_URL", Driver: "pgx"},
			Seed:     Seed{ChunkTimeout: "5m", DefaultPassword: DefaultPassword},
			Log:      Log{Format: "console"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid", func(*Config) {}, false},
		{"pq on postgres", func(c *Config) { c.Database.Driver = "pq" }, false},
		{"unknown provider", func(c *Config) { c.Database.Provider = "oracle" }, true},
		{"pq on mysql", func(c *Config) { c.Database.Provider = "mysql"; c.Database.Driver = "pq" }, true},
		{"bad log format", func(c *Config) { c.Log.Format = "xml" }, true},
		{"bad timeout", func(c *Config) { c.Seed.ChunkTimeout = "soon" }, true},
	}
	for _, tt := range tests {
		cfg := base()
		tt.mutate(cfg)
		err := cfg.Validate()
		if (err != nil) != tt.wantErr {
			t.Errorf("%s: Validate() error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
	}
}

func TestLoadSeedOptionsDefaults(t *testing.T) {
	clearSeedEnv(t)
	cfg := &Config{Seed: Seed{DefaultPassword: DefaultPassword}}

	opts, err := cfg.LoadSeedOptions()
	if err != nil {
		t.Fatalf("LoadSeedOptions failed: %v", err)
	}
	if opts.Environment != seeder.Development {
		t.Errorf("Expected development, got %s", opts.Environment)
	}
	if !opts.IncludeTestData || !opts.IncludeSampleData {
		t.Errorf("Development should include test and sample data: %+v", opts)
	}
	if opts.DefaultPassword != DefaultPassword {
		t.Errorf("Expected default password, got %q", opts.DefaultPassword)
	}
	if opts.ChunkTimeout != DefaultChunkTimeout {
		t.Errorf("Expected chunk timeout %s, got %s", DefaultChunkTimeout, opts.ChunkTimeout)
	}
	if opts.CleanupBeforeSeed {
		t.Error("Cleanup should be off by default")
	}
}

func TestLoadSeedOptionsEnvironments(t *testing.T) {
	tests := []struct {
		nodeEnv    string
		want       seeder.Environment
		testData   bool
		sampleData bool
	}{
		{"development", seeder.Development, true, true},
		{"test", seeder.Testing, true, false},
		{"staging", seeder.Staging, false, true},
	}
	for _, tt := range tests {
		clearSeedEnv(t)
		t.Setenv("NODE_ENV", tt.nodeEnv)
		cfg := &Config{Seed: Seed{DefaultPassword: DefaultPassword}}

		opts, err := cfg.LoadSeedOptions()
		if err != nil {
			t.Fatalf("%s: LoadSeedOptions failed: %v", tt.nodeEnv, err)
		}
		if opts.Environment != tt.want {
			t.Errorf("%s: expected %s, got %s", tt.nodeEnv, tt.want, opts.Environment)
		}
		if opts.IncludeTestData != tt.testData || opts.IncludeSampleData != tt.sampleData {
			t.Errorf("%s: unexpected gating %+v", tt.nodeEnv, opts)
		}
	}
}

func TestLoadSeedOptionsRefusesProduction(t *testing.T) {
	clearSeedEnv(t)
	t.Setenv("NODE_ENV", "production")
	cfg := &Config{Seed: Seed{DefaultPassword: DefaultPassword}}

	if _, err := cfg.LoadSeedOptions(); !errors.Is(err, ErrProductionSeed) {
		t.Errorf("Expected ErrProductionSeed, got %v", err)
	}
}

func TestLoadSeedOptionsOverrides(t *testing.T) {
	clearSeedEnv(t)
	t.Setenv("NODE_ENV", "staging")
	t.Setenv("SEED_MODULES", " users, ,industries ")
	t.Setenv("SEED_INCLUDE_TEST_DATA", "true")
	t.Setenv("SEED_INCLUDE_SAMPLE_DATA", "false")
	t.Setenv("SEED_CLEANUP", "1")
	t.Setenv("SEED_DEFAULT_PASSWORD", "correct-horse")
	t.Setenv("SEED_CHUNK_TIMEOUT", "90s")
	cfg := &Config{Seed: Seed{DefaultPassword: DefaultPassword, Modules: []string{"templates"}}}

	opts, err := cfg.LoadSeedOptions()
	if err != nil {
		t.Fatalf("LoadSeedOptions failed: %v", err)
	}
	if !reflect.DeepEqual(opts.Modules, []string{"users", "industries"}) {
		t.Errorf("Unexpected modules %v", opts.Modules)
	}
	if !opts.IncludeTestData || opts.IncludeSampleData || !opts.CleanupBeforeSeed {
		t.Errorf("Env overrides not applied: %+v", opts)
	}
	if opts.DefaultPassword != "correct-horse" {
		t.Errorf("Expected password override, got %q", opts.DefaultPassword)
	}
	if opts.ChunkTimeout != 90*time.Second {
		t.Errorf("Expected 90s timeout, got %s", opts.ChunkTimeout)
	}
}

func TestLoadSeedOptionsRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"SEED_DEFAULT_PASSWORD":  "short",
		"SEED_INCLUDE_TEST_DATA": "maybe",
		"SEED_CHUNK_TIMEOUT":     "forever",
		"NODE_ENV":               "qa",
	}
	for key, value := range tests {
		clearSeedEnv(t)
		t.Setenv(key, value)
		cfg := &Config{Seed: Seed{DefaultPassword: DefaultPassword}}
		if _, err := cfg.LoadSeedOptions(); err == nil {
			t.Errorf("Expected error for %s=%q", key, value)
		}
	}
}

func TestSplitList(t *testing.T) {
	if got := SplitList(""); got != nil {
		t.Errorf("Expected nil, got %v", got)
	}
	got := SplitList("a, b ,,c")
	if !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("Unexpected split %v", got)
	}
}
