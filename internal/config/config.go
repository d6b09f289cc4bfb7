// Package config loads the service configuration from an optional config.toml,
// an optional config.<HARMONY_ENV>.toml overlay, and HARMONY_* environment
// variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/database"
)

const (
	BaseConfigFile       = "config.toml"
	OverlayConfigPattern = "config.%s.toml"

	EnvHarmonyEnv             = "HARMONY_ENV"
	EnvHarmonyShutdownTimeout = "HARMONY_SHUTDOWN_TIMEOUT"
	EnvHarmonyVersion         = "HARMONY_VERSION"
	EnvHarmonyLogLevel        = "HARMONY_LOG_LEVEL"
)

var databaseEnv = &database.Env{
	Enabled:         "HARMONY_DB_ENABLED",
	Host:            "HARMONY_DB_HOST",
	Port:            "HARMONY_DB_PORT",
	Name:            "HARMONY_DB_NAME",
	User:            "HARMONY_DB_USER",
	Password:        "HARMONY_DB_PASSWORD",
	SSLMode:         "HARMONY_DB_SSL_MODE",
	MaxOpenConns:    "HARMONY_DB_MAX_OPEN_CONNS",
	MaxIdleConns:    "HARMONY_DB_MAX_IDLE_CONNS",
	ConnMaxLifetime: "HARMONY_DB_CONN_MAX_LIFETIME",
	ConnTimeout:     "HARMONY_DB_CONN_TIMEOUT",
}

// Config is the root configuration for the harmony service.
type Config struct {
	Server          ServerConfig    `toml:"server"`
	Database        database.Config `toml:"database"`
	API             APIConfig       `toml:"api"`
	Web             WebConfig       `toml:"web"`
	ShutdownTimeout string          `toml:"shutdown_timeout"`
	Version         string          `toml:"version"`
	LogLevel        string          `toml:"log_level"`
}

// Env returns HARMONY_ENV, defaulting to "local".
func (c *Config) Env() string {
	if env := os.Getenv(EnvHarmonyEnv); env != "" {
		return env
	}
	return "local"
}

func (c *Config) ShutdownTimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.ShutdownTimeout)
	return d
}

// Level returns the configured slog level. Validation guarantees it parses.
func (c *Config) Level() slog.Level {
	var level slog.Level
	_ = level.UnmarshalText([]byte(c.LogLevel))
	return level
}

// Load reads the base config when present, merges the environment overlay,
// and finalizes every section. Without any file, defaults and environment
// variables supply the whole configuration.
func Load() (*Config, error) {
	return LoadFrom(BaseConfigFile)
}

// LoadFrom is Load with an explicit base file path. The overlay is looked up
// next to the base file.
func LoadFrom(base string) (*Config, error) {
	cfg := &Config{}

	if _, err := os.Stat(base); err == nil {
		loaded, err := load(base)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if path := overlayPath(base); path != "" {
		overlay, err := load(path)
		if err != nil {
			return nil, fmt.Errorf("load overlay %s: %w", path, err)
		}
		cfg.Merge(overlay)
	}

	if err := cfg.Finalize(); err != nil {
		return nil, fmt.Errorf("finalize config: %w", err)
	}

	return cfg, nil
}

// Merge overwrites non-zero fields from overlay across all sections.
func (c *Config) Merge(overlay *Config) {
	if overlay.ShutdownTimeout != "" {
		c.ShutdownTimeout = overlay.ShutdownTimeout
	}
	if overlay.Version != "" {
		c.Version = overlay.Version
	}
	if overlay.LogLevel != "" {
		c.LogLevel = overlay.LogLevel
	}
	c.Server.Merge(&overlay.Server)
	c.Database.Merge(&overlay.Database)
	c.API.Merge(&overlay.API)
	c.Web.Merge(&overlay.Web)
}

// Finalize applies defaults, environment overrides, and validation to the
// root values and then to each section.
func (c *Config) Finalize() error {
	c.loadDefaults()
	c.loadEnv()

	if err := c.validate(); err != nil {
		return err
	}
	if err := c.Server.Finalize(); err != nil {
		return fmt.Errorf("server: %w", err)
	}
	if err := c.Database.Finalize(databaseEnv); err != nil {
		return fmt.Errorf("database: %w", err)
	}
	if err := c.API.Finalize(); err != nil {
		return fmt.Errorf("api: %w", err)
	}
	if err := c.Web.Finalize(); err != nil {
		return fmt.Errorf("web: %w", err)
	}
	return nil
}

func (c *Config) loadDefaults() {
	if c.ShutdownTimeout == "" {
		c.ShutdownTimeout = "30s"
	}
	if c.Version == "" {
		c.Version = "0.1.0"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c *Config) loadEnv() {
	if v := os.Getenv(EnvHarmonyShutdownTimeout); v != "" {
		c.ShutdownTimeout = v
	}
	if v := os.Getenv(EnvHarmonyVersion); v != "" {
		c.Version = v
	}
	if v := os.Getenv(EnvHarmonyLogLevel); v != "" {
		c.LogLevel = v
	}
}

func (c *Config) validate() error {
	if _, err := time.ParseDuration(c.ShutdownTimeout); err != nil {
		return fmt.Errorf("invalid shutdown_timeout: %w", err)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}

func load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &cfg, nil
}

func overlayPath(base string) string {
	env := os.Getenv(EnvHarmonyEnv)
	if env == "" {
		return ""
	}

	path := filepath.Join(filepath.Dir(base), fmt.Sprintf(OverlayConfigPattern, env))
	if _, err := os.Stat(path); err == nil {
		return path
	}
	return ""
}
