package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvWebDecisionRedirectDelay = "HARMONY_WEB_DECISION_REDIRECT_DELAY"
	EnvWebDefaultLanguage       = "HARMONY_WEB_DEFAULT_LANGUAGE"
	EnvWebTranslationsFile      = "HARMONY_WEB_TRANSLATIONS_FILE"
	EnvWebWatchTranslations     = "HARMONY_WEB_WATCH_TRANSLATIONS"
)

// WebConfig holds the dashboard settings.
type WebConfig struct {
	// DecisionRedirectDelay is how long the decision notification stays up
	// before the page returns to the case list.
	DecisionRedirectDelay string `toml:"decision_redirect_delay"`
	// DefaultLanguage is used until a visitor toggles the language.
	DefaultLanguage string `toml:"default_language"`
	// TranslationsFile optionally overrides catalog entries.
	TranslationsFile  string `toml:"translations_file"`
	WatchTranslations bool   `toml:"watch_translations"`
}

func (c *WebConfig) DecisionRedirectDelayDuration() time.Duration {
	d, _ := time.ParseDuration(c.DecisionRedirectDelay)
	return d
}

func (c *WebConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

func (c *WebConfig) Merge(overlay *WebConfig) {
	if overlay.DecisionRedirectDelay != "" {
		c.DecisionRedirectDelay = overlay.DecisionRedirectDelay
	}
	if overlay.DefaultLanguage != "" {
		c.DefaultLanguage = overlay.DefaultLanguage
	}
	if overlay.TranslationsFile != "" {
		c.TranslationsFile = overlay.TranslationsFile
	}
	if overlay.WatchTranslations {
		c.WatchTranslations = true
	}
}

func (c *WebConfig) loadDefaults() {
	if c.DecisionRedirectDelay == "" {
		c.DecisionRedirectDelay = "1500ms"
	}
	if c.DefaultLanguage == "" {
		c.DefaultLanguage = "en"
	}
}

func (c *WebConfig) loadEnv() {
	if v := os.Getenv(EnvWebDecisionRedirectDelay); v != "" {
		c.DecisionRedirectDelay = v
	}
	if v := os.Getenv(EnvWebDefaultLanguage); v != "" {
		c.DefaultLanguage = v
	}
	if v := os.Getenv(EnvWebTranslationsFile); v != "" {
		c.TranslationsFile = v
	}
	if v := os.Getenv(EnvWebWatchTranslations); v != "" {
		if watch, err := strconv.ParseBool(v); err == nil {
			c.WatchTranslations = watch
		}
	}
}

func (c *WebConfig) validate() error {
	d, err := time.ParseDuration(c.DecisionRedirectDelay)
	if err != nil {
		return fmt.Errorf("invalid decision_redirect_delay: %w", err)
	}
	if d < 0 {
		return fmt.Errorf("decision_redirect_delay must not be negative")
	}
	if c.DefaultLanguage != "en" && c.DefaultLanguage != "ar" {
		return fmt.Errorf("invalid default_language %q: want en or ar", c.DefaultLanguage)
	}
	if c.WatchTranslations && c.TranslationsFile == "" {
		return fmt.Errorf("watch_translations requires translations_file")
	}
	return nil
}
