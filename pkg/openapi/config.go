package openapi

import "os"

// Config holds the title and description of the generated API document.
type Config struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
}

// ConfigEnv names the environment variables that override Config fields.
type ConfigEnv struct {
	Title       string
	Description string
}

// Finalize applies defaults and environment variable overrides.
func (c *Config) Finalize(env *ConfigEnv) error {
	c.loadDefaults()
	if env != nil {
		c.loadEnv(env)
	}
	return nil
}

// Merge overwrites non-zero fields from overlay.
func (c *Config) Merge(overlay *Config) {
	if overlay.Title != "" {
		c.Title = overlay.Title
	}
	if overlay.Description != "" {
		c.Description = overlay.Description
	}
}

func (c *Config) loadDefaults() {
	if c.Title == "" {
		c.Title = "Law Harmony API"
	}
	if c.Description == "" {
		c.Description = "Review of contradiction, overlap, and gap cases between legal documents."
	}
}

func (c *Config) loadEnv(env *ConfigEnv) {
	for key, dst := range map[string]*string{
		env.Title:       &c.Title,
		env.Description: &c.Description,
	} {
		if key == "" {
			continue
		}
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
}
