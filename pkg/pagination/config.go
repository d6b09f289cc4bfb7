// Package pagination slices in-memory collections into numbered pages and
// parses page requests from query strings.
package pagination

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPageSize = 10
	defaultMaxSize  = 100
)

// Config bounds the page sizes JSON list endpoints accept. The dashboard
// case table pages at its own fixed size.
type Config struct {
	DefaultPageSize int `toml:"default_page_size"`
	MaxPageSize     int `toml:"max_page_size"`
}

// ConfigEnv names the environment variables read by Finalize. Empty names
// are skipped.
type ConfigEnv struct {
	DefaultPageSize string
	MaxPageSize     string
}

// Finalize fills zero sizes, applies env overrides, and checks that the
// default fits under the maximum. Non-numeric env values are errors.
func (c *Config) Finalize(env *ConfigEnv) error {
	if c.DefaultPageSize <= 0 {
		c.DefaultPageSize = defaultPageSize
	}
	if c.MaxPageSize <= 0 {
		c.MaxPageSize = defaultMaxSize
	}
	if env != nil {
		if err := errors.Join(
			envInt(env.DefaultPageSize, &c.DefaultPageSize),
			envInt(env.MaxPageSize, &c.MaxPageSize),
		); err != nil {
			return err
		}
	}

	switch {
	case c.DefaultPageSize < 1:
		return errors.New("default_page_size must be positive")
	case c.MaxPageSize < 1:
		return errors.New("max_page_size must be positive")
	case c.DefaultPageSize > c.MaxPageSize:
		return fmt.Errorf("default_page_size %d cannot exceed max_page_size %d", c.DefaultPageSize, c.MaxPageSize)
	}
	return nil
}

func (c *Config) Merge(overlay *Config) {
	if overlay.DefaultPageSize != 0 {
		c.DefaultPageSize = overlay.DefaultPageSize
	}
	if overlay.MaxPageSize != 0 {
		c.MaxPageSize = overlay.MaxPageSize
	}
}

func envInt(key string, dst *int) error {
	if key == "" {
		return nil
	}
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = n
	return nil
}
