package api

import (
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

// Runtime extends Infrastructure with API-specific configuration.
type Runtime struct {
	*infrastructure.Infrastructure
	Pagination      pagination.Config
	DefaultLanguage i18n.Lang
}

// NewRuntime creates an API runtime with a module-scoped logger.
func NewRuntime(cfg *config.Config, infra *infrastructure.Infrastructure) *Runtime {
	lang, ok := i18n.ParseLang(cfg.Web.DefaultLanguage)
	if !ok {
		lang = i18n.English
	}

	return &Runtime{
		Infrastructure: &infrastructure.Infrastructure{
			Lifecycle: infra.Lifecycle,
			Logger:    infra.Logger.With("module", "api"),
			Database:  infra.Database,
			Catalog:   infra.Catalog,
		},
		Pagination:      cfg.API.Pagination,
		DefaultLanguage: lang,
	}
}
