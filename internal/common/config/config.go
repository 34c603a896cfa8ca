package config

import "fmt"

// Policy values for how the fixture transport answers a request without a
// usable query parameter. The original fixture sets disagreed on this, so it
// stays configurable.
const (
	EmptyQueryBadRequest     = "bad_request"
	EmptyQueryDefaultFixture = "default_fixture"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Fixtures FixturesConfig `mapstructure:"fixtures"`
	API      APIConfig      `mapstructure:"api"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeoutMs   int    `mapstructure:"read_timeout"`   // milliseconds
	WriteTimeoutMs  int    `mapstructure:"write_timeout"`  // milliseconds
	ShutdownGraceMs int    `mapstructure:"shutdown_grace"` // milliseconds
}

// FixturesConfig controls the canned-response transport.
type FixturesConfig struct {
	Dir              string `mapstructure:"dir"`
	LatencyMs        int    `mapstructure:"latency"` // milliseconds
	EmptyQueryPolicy string `mapstructure:"empty_query_policy"`
	FoldQueryCase    bool   `mapstructure:"fold_query_case"`
	Validate         bool   `mapstructure:"validate"`
	SchemaDir        string `mapstructure:"schema_dir"`
}

// APIConfig configures the optional live transport. When BaseURL is empty
// the fixture transport is used instead.
type APIConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	TimeoutMs int    `mapstructure:"timeout"` // milliseconds
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "catalog-server"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeoutMs == 0 {
		cfg.Server.ReadTimeoutMs = 10000
	}
	if cfg.Server.WriteTimeoutMs == 0 {
		cfg.Server.WriteTimeoutMs = 10000
	}
	if cfg.Server.ShutdownGraceMs == 0 {
		cfg.Server.ShutdownGraceMs = 5000
	}
	if cfg.Fixtures.Dir == "" {
		cfg.Fixtures.Dir = "./fixtures"
	}
	if cfg.Fixtures.EmptyQueryPolicy == "" {
		cfg.Fixtures.EmptyQueryPolicy = EmptyQueryBadRequest
	}
	if cfg.Fixtures.SchemaDir == "" {
		cfg.Fixtures.SchemaDir = "./fixtures/schemas"
	}
	if cfg.API.TimeoutMs == 0 {
		cfg.API.TimeoutMs = 5000
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "console"
	}
}

func validateConfig(cfg *Config) error {
	switch cfg.Fixtures.EmptyQueryPolicy {
	case EmptyQueryBadRequest, EmptyQueryDefaultFixture:
	default:
		return fmt.Errorf("unknown fixtures.empty_query_policy %q", cfg.Fixtures.EmptyQueryPolicy)
	}
	if cfg.Fixtures.LatencyMs < 0 {
		return fmt.Errorf("fixtures.latency must not be negative")
	}
	return nil
}
