// Package infrastructure provides core service initialization for application startup.
// It assembles the dependencies domain systems share: lifecycle coordination,
// logging, the optional journal database, and the translation catalog.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/database"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/lifecycle"
)

// Infrastructure holds the core systems required by all domain modules.
// Database is nil when the journal is kept in memory.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Catalog   *i18n.Catalog

	translationsFile  string
	watchTranslations bool
}

// New creates an Infrastructure from the application configuration.
// It initializes all systems but does not start them; call Start separately.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()}))

	infra := &Infrastructure{
		Lifecycle:         lifecycle.New(),
		Logger:            logger,
		Catalog:           i18n.NewCatalog(logger),
		translationsFile:  cfg.Web.TranslationsFile,
		watchTranslations: cfg.Web.WatchTranslations,
	}

	if cfg.Database.Enabled {
		db, err := database.New(&cfg.Database, logger)
		if err != nil {
			return nil, fmt.Errorf("database init failed: %w", err)
		}
		infra.Database = db
	}

	if infra.translationsFile != "" {
		if err := infra.Catalog.LoadFile(infra.translationsFile); err != nil {
			return nil, fmt.Errorf("translations init failed: %w", err)
		}
	}

	return infra, nil
}

// Start registers all infrastructure systems with the lifecycle coordinator.
func (i *Infrastructure) Start() error {
	if i.Database != nil {
		if err := i.Database.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("database start failed: %w", err)
		}
	}

	// The watcher returns once shutdown cancels the lifecycle context.
	if i.translationsFile != "" && i.watchTranslations {
		i.Lifecycle.OnShutdown(func() {
			if err := i.Catalog.Watch(i.Lifecycle.Context(), i.translationsFile); err != nil {
				i.Logger.Error("translations watch failed", "error", err)
			}
		})
	}

	return nil
}
