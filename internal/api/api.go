// Package api assembles the JSON API module with all domain systems and route registration.
package api

import (
	"fmt"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/middleware"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/module"
)

// NewModule creates the API module with all domain handlers and middleware.
func NewModule(cfg *config.Config, infra *infrastructure.Infrastructure, dom *domain.Domain) (*module.Module, error) {
	runtime := NewRuntime(cfg, infra)

	mux := http.NewServeMux()
	if err := registerRoutes(mux, dom, cfg, runtime); err != nil {
		return nil, fmt.Errorf("register api routes: %w", err)
	}

	m := module.New(cfg.API.BasePath, mux)
	m.Use(middleware.CORS(&cfg.API.CORS))
	m.Use(middleware.Logger(runtime.Logger))

	return m, nil
}
