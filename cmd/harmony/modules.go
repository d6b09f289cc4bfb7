package main

import (
	"encoding/json"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/api"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/ui"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/module"
)

// Modules holds the JSON API module and the dashboard that serves every
// path no module claims.
type Modules struct {
	API *module.Module
	UI  http.Handler
}

func NewModules(cfg *config.Config, infra *infrastructure.Infrastructure, dom *domain.Domain) (*Modules, error) {
	apiModule, err := api.NewModule(cfg, infra, dom)
	if err != nil {
		return nil, err
	}

	dashboard, err := ui.New(cfg, infra, dom)
	if err != nil {
		return nil, err
	}

	return &Modules{
		API: apiModule,
		UI:  dashboard,
	}, nil
}

func (m *Modules) Mount(router *module.Router) {
	router.Mount(m.API)
	router.SetFallback(m.UI)
}

func buildRouter(infra *infrastructure.Infrastructure) *module.Router {
	router := module.NewRouter()

	router.HandleNative("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	})

	router.HandleNative("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if !infra.Lifecycle.Ready() {
			w.WriteHeader(http.StatusServiceUnavailable)
			json.NewEncoder(w).Encode(map[string]string{"status": "not ready"})
			return
		}
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(map[string]string{"status": "ready"})
	})

	return router
}
