package api

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

// TranslationsResponse is the resolved string table of one language.
type TranslationsResponse struct {
	Lang    i18n.Lang         `json:"lang"`
	Dir     string            `json:"dir"`
	Entries map[string]string `json:"entries"`
}

type translationsHandler struct {
	catalog  *i18n.Catalog
	fallback i18n.Lang
	logger   *slog.Logger
}

func newTranslationsHandler(catalog *i18n.Catalog, fallback i18n.Lang, logger *slog.Logger) *translationsHandler {
	return &translationsHandler{
		catalog:  catalog,
		fallback: fallback,
		logger:   logger.With("handler", "translations"),
	}
}

func (h *translationsHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/translations",
		Tags:   []string{"Translations"},
		Schemas: map[string]*openapi.Schema{
			"Translations": translationsSchema,
		},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.table, OpenAPI: translationsOp},
		},
	}
}

func (h *translationsHandler) table(w http.ResponseWriter, r *http.Request) {
	lang := h.fallback
	if v := r.URL.Query().Get("lang"); v != "" {
		parsed, ok := i18n.ParseLang(v)
		if !ok {
			handlers.RespondError(w, h.logger, http.StatusBadRequest, fmt.Errorf("unsupported language %q", v))
			return
		}
		lang = parsed
	}

	handlers.RespondJSON(w, http.StatusOK, TranslationsResponse{
		Lang:    lang,
		Dir:     lang.Dir(),
		Entries: h.catalog.Table(lang),
	})
}
