package i18n

import (
	"fmt"
	"log/slog"
	"maps"
	"os"
	"slices"
	"sync"

	"github.com/pelletier/go-toml/v2"
)

// Entry is the pair of localized strings for one key.
type Entry struct {
	En string `toml:"en"`
	Ar string `toml:"ar"`
}

func (e Entry) get(lang Lang) string {
	if lang == Arabic {
		return e.Ar
	}
	return e.En
}

// Catalog maps string keys to localized text. Lookups never fail: a key
// missing from the table, or with no text for the language, renders as the
// key itself.
type Catalog struct {
	mu        sync.RWMutex
	base      map[string]Entry
	overrides map[string]Entry
	logger    *slog.Logger
}

// NewCatalog creates a Catalog holding the built-in table.
func NewCatalog(logger *slog.Logger) *Catalog {
	return &Catalog{
		base:      builtin,
		overrides: map[string]Entry{},
		logger:    logger.With("system", "i18n"),
	}
}

// T returns the text of key in lang, falling back to key.
func (c *Catalog) T(key string, lang Lang) string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if e, ok := c.overrides[key]; ok {
		if s := e.get(lang); s != "" {
			return s
		}
	}
	if e, ok := c.base[key]; ok {
		if s := e.get(lang); s != "" {
			return s
		}
	}
	return key
}

// Has reports whether key has text in either language.
func (c *Catalog) Has(key string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	_, inBase := c.base[key]
	_, inOverrides := c.overrides[key]
	return inBase || inOverrides
}

// Keys returns every known key in sorted order.
func (c *Catalog) Keys() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	keys := slices.Collect(maps.Keys(c.base))
	for k := range c.overrides {
		if _, ok := c.base[k]; !ok {
			keys = append(keys, k)
		}
	}
	slices.Sort(keys)
	return keys
}

// Table returns the resolved text of every key in lang.
func (c *Catalog) Table(lang Lang) map[string]string {
	keys := c.Keys()
	table := make(map[string]string, len(keys))
	for _, k := range keys {
		table[k] = c.T(k, lang)
	}
	return table
}

// LoadFile replaces the overrides with the entries in a TOML file of the form
//
//	[validate]
//	en = "Confirm Contradiction"
//	ar = "..."
//
// Empty fields keep the built-in text. On error the current overrides stay.
func (c *Catalog) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read translations %s: %w", path, err)
	}

	var entries map[string]Entry
	if err := toml.Unmarshal(data, &entries); err != nil {
		return fmt.Errorf("parse translations %s: %w", path, err)
	}

	c.mu.Lock()
	c.overrides = entries
	c.mu.Unlock()

	c.logger.Info("translations loaded", "path", path, "entries", len(entries))
	return nil
}
