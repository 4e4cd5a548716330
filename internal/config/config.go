package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/capopt/platform/internal/seeder"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

const (
	DefaultPassword     = "password123"
	DefaultChunkTimeout = 5 * time.Minute
)

var ErrProductionSeed = errors.New("refusing to seed demo data into production")

type Config struct {
	Database Database `json:"database" mapstructure:"database"`
	Seed     Seed     `json:"seed" mapstructure:"seed"`
	Log      Log      `json:"log" mapstructure:"log"`
}

type Database struct {
	Provider string `json:"provider" mapstructure:"provider"`
	URLEnv   string `json:"url_env" mapstructure:"url_env"`
	// Driver selects the postgres client: pgx (default) or pq.
	Driver string `json:"driver,omitempty" mapstructure:"driver"`
}

type Seed struct {
	Modules         []string `json:"modules,omitempty" mapstructure:"modules"`
	ChunkTimeout    string   `json:"chunk_timeout,omitempty" mapstructure:"chunk_timeout"`
	DefaultPassword string   `json:"default_password,omitempty" mapstructure:"default_password"`
}

type Log struct {
	Format string `json:"format,omitempty" mapstructure:"format"` // console or json
}

func Load() (*Config, error) {
	var cfg Config

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.Provider == "" {
		cfg.Database.Provider = "postgresql"
	}
	if cfg.Database.URLEnv == "" {
		cfg.Database.URLEnv = "DATABASE_URL"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "pgx"
	}
	if cfg.Seed.ChunkTimeout == "" {
		cfg.Seed.ChunkTimeout = DefaultChunkTimeout.String()
	}
	if cfg.Seed.DefaultPassword == "" {
		cfg.Seed.DefaultPassword = DefaultPassword
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "console"
	}

	return &cfg, nil
}

func (c *Config) GetDatabaseURL() (string, error) {
	dbURL := os.Getenv(c.Database.URLEnv)
	if dbURL == "" {
		return "", fmt.Errorf("database URL not found in environment variable %s", c.Database.URLEnv)
	}
	return dbURL, nil
}

func (c *Config) Validate() error {
	supportedProviders := []string{"postgresql", "postgres", "mysql", "sqlite", "sqlite3"}
	supported := false
	for _, provider := range supportedProviders {
		if c.Database.Provider == provider {
			supported = true
			break
		}
	}
	if !supported {
		return fmt.Errorf("unsupported database provider: %s. Supported providers: %v", c.Database.Provider, supportedProviders)
	}

	switch c.Database.Driver {
	case "pgx":
	case "pq":
		if !c.IsPostgres() {
			return fmt.Errorf("driver pq requires a postgres provider, got %s", c.Database.Provider)
		}
	default:
		return fmt.Errorf("unsupported database driver: %s", c.Database.Driver)
	}

	if c.Log.Format != "console" && c.Log.Format != "json" {
		return fmt.Errorf("unsupported log format: %s", c.Log.Format)
	}

	if _, err := time.ParseDuration(c.Seed.ChunkTimeout); err != nil {
		return fmt.Errorf("invalid seed.chunk_timeout: %w", err)
	}

	return nil
}

func (c *Config) IsPostgres() bool {
	return c.Database.Provider == "postgresql" || c.Database.Provider == "postgres"
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadSeedOptions builds the run options from the config file and the
// SEED_* / NODE_ENV environment. Environment variables win.
func (c *Config) LoadSeedOptions() (*seeder.Options, error) {
	env, err := environment(os.Getenv("NODE_ENV"))
	if err != nil {
		return nil, err
	}

	opts := &seeder.Options{
		Environment:       env,
		IncludeTestData:   env == seeder.Development || env == seeder.Testing,
		IncludeSampleData: env == seeder.Development || env == seeder.Staging,
		DefaultPassword:   c.Seed.DefaultPassword,
		Modules:           c.Seed.Modules,
	}

	if opts.IncludeTestData, err = envBool("SEED_INCLUDE_TEST_DATA", opts.IncludeTestData); err != nil {
		return nil, err
	}
	if opts.IncludeSampleData, err = envBool("SEED_INCLUDE_SAMPLE_DATA", opts.IncludeSampleData); err != nil {
		return nil, err
	}
	if opts.CleanupBeforeSeed, err = envBool("SEED_CLEANUP", false); err != nil {
		return nil, err
	}

	if v := os.Getenv("SEED_DEFAULT_PASSWORD"); v != "" {
		opts.DefaultPassword = v
	}
	if v := os.Getenv("SEED_MODULES"); v != "" {
		opts.Modules = SplitList(v)
	}

	timeout := c.Seed.ChunkTimeout
	if v := os.Getenv("SEED_CHUNK_TIMEOUT"); v != "" {
		timeout = v
	}
	if timeout == "" {
		opts.ChunkTimeout = DefaultChunkTimeout
	} else if opts.ChunkTimeout, err = time.ParseDuration(timeout); err != nil {
		return nil, fmt.Errorf("invalid chunk timeout %q: %w", timeout, err)
	}

	if err := validate.Struct(opts); err != nil {
		return nil, fmt.Errorf("invalid seed options: %w", err)
	}
	return opts, nil
}

func environment(nodeEnv string) (seeder.Environment, error) {
	switch strings.ToLower(strings.TrimSpace(nodeEnv)) {
	case "", "dev", "development":
		return seeder.Development, nil
	case "test", "testing":
		return seeder.Testing, nil
	case "staging":
		return seeder.Staging, nil
	case "prod", "production":
		return "", ErrProductionSeed
	default:
		return "", fmt.Errorf("unknown NODE_ENV %q", nodeEnv)
	}
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}

// SplitList splits a comma separated list, trimming items and dropping
// empty ones.
func SplitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
