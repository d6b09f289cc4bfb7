package config

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"time"
)

const (
	EnvServerHost            = "HARMONY_SERVER_HOST"
	EnvServerPort            = "HARMONY_SERVER_PORT"
	EnvServerReadTimeout     = "HARMONY_SERVER_READ_TIMEOUT"
	EnvServerWriteTimeout    = "HARMONY_SERVER_WRITE_TIMEOUT"
	EnvServerShutdownTimeout = "HARMONY_SERVER_SHUTDOWN_TIMEOUT"
)

// ServerConfig is the listener serving both the dashboard and the API.
// Timeouts are Go duration strings.
type ServerConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	ReadTimeout     string `toml:"read_timeout"`
	WriteTimeout    string `toml:"write_timeout"`
	ShutdownTimeout string `toml:"shutdown_timeout"`
}

func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

func (c *ServerConfig) ReadTimeoutDuration() time.Duration {
	return mustDuration(c.ReadTimeout)
}

func (c *ServerConfig) WriteTimeoutDuration() time.Duration {
	return mustDuration(c.WriteTimeout)
}

func (c *ServerConfig) ShutdownTimeoutDuration() time.Duration {
	return mustDuration(c.ShutdownTimeout)
}

func (c *ServerConfig) Finalize() error {
	c.defaults()
	if err := c.env(); err != nil {
		return err
	}
	return c.validate()
}

func (c *ServerConfig) Merge(overlay *ServerConfig) {
	if overlay.Port != 0 {
		c.Port = overlay.Port
	}
	for dst, src := range c.strings(overlay) {
		if src != "" {
			*dst = src
		}
	}
}

// strings pairs each string field of c with the same field of o.
func (c *ServerConfig) strings(o *ServerConfig) map[*string]string {
	return map[*string]string{
		&c.Host:            o.Host,
		&c.ReadTimeout:     o.ReadTimeout,
		&c.WriteTimeout:    o.WriteTimeout,
		&c.ShutdownTimeout: o.ShutdownTimeout,
	}
}

func (c *ServerConfig) defaults() {
	if c.Port == 0 {
		c.Port = 8080
	}
	for dst, def := range c.strings(&ServerConfig{
		Host:            "0.0.0.0",
		ReadTimeout:     "15s",
		WriteTimeout:    "30s",
		ShutdownTimeout: "10s",
	}) {
		if *dst == "" {
			*dst = def
		}
	}
}

func (c *ServerConfig) env() error {
	if v := os.Getenv(EnvServerPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvServerPort, err)
		}
		c.Port = port
	}
	for key, dst := range map[string]*string{
		EnvServerHost:            &c.Host,
		EnvServerReadTimeout:     &c.ReadTimeout,
		EnvServerWriteTimeout:    &c.WriteTimeout,
		EnvServerShutdownTimeout: &c.ShutdownTimeout,
	} {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	return nil
}

func (c *ServerConfig) validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	for name, v := range map[string]string{
		"read_timeout":     c.ReadTimeout,
		"write_timeout":    c.WriteTimeout,
		"shutdown_timeout": c.ShutdownTimeout,
	} {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		if d <= 0 {
			return fmt.Errorf("invalid %s: must be positive", name)
		}
	}
	return nil
}

// mustDuration parses a value validate has already accepted.
func mustDuration(v string) time.Duration {
	d, _ := time.ParseDuration(v)
	return d
}
