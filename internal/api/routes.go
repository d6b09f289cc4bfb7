package api

import (
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

func registerRoutes(
	mux *http.ServeMux,
	dom *domain.Domain,
	cfg *config.Config,
	runtime *Runtime,
) error {
	detail := newDetailHandler(dom, runtime.Logger)
	translations := newTranslationsHandler(runtime.Catalog, runtime.DefaultLanguage, runtime.Logger)

	groups := []routes.Group{
		dom.Cases.Handler().Routes(),
		detail.routes(),
		dom.Reviews.Handler().Routes(),
		dom.Documents.Handler(cfg.API.MaxUploadSizeBytes()).Routes(),
		dom.Subjects.Handler().Routes(),
		dom.Users.Handler().Routes(),
		translations.routes(),
	}

	routes.Register(mux, groups...)

	spec := openapi.FromConfig(cfg.API.OpenAPI, cfg.Version)
	spec.AddServer(cfg.API.BasePath)
	routes.Describe(spec, "", groups...)

	specBytes, err := openapi.MarshalJSON(spec)
	if err != nil {
		return err
	}
	mux.HandleFunc("GET /openapi.json", openapi.ServeSpec(specBytes))

	return nil
}
