package main

import (
	"context"
	"fmt"
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/module"
)

// Server is the composition root: infrastructure, the review domain, and
// the API and dashboard modules behind one router.
type Server struct {
	infra  *infrastructure.Infrastructure
	router *module.Router
	http   *httpServer
	grace  time.Duration
}

func NewServer(cfg *config.Config) (*Server, error) {
	infra, err := infrastructure.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("infrastructure: %w", err)
	}
	dom, err := domain.New(infra, cfg.API.Pagination)
	if err != nil {
		return nil, fmt.Errorf("domain: %w", err)
	}
	mods, err := NewModules(cfg, infra, dom)
	if err != nil {
		return nil, fmt.Errorf("modules: %w", err)
	}

	router := buildRouter(infra)
	mods.Mount(router)

	infra.Logger.Info("server initialized",
		"addr", cfg.Server.Addr(),
		"version", cfg.Version,
		"journal", journalBackend(infra),
	)

	return &Server{
		infra:  infra,
		router: router,
		http:   newHTTPServer(&cfg.Server, router, infra.Logger),
		grace:  cfg.ShutdownTimeoutDuration(),
	}, nil
}

// Run starts every subsystem and blocks until ctx ends, then shuts down
// within the configured grace period.
func (s *Server) Run(ctx context.Context) error {
	if err := s.infra.Start(); err != nil {
		return err
	}
	if err := s.http.Start(s.infra.Lifecycle); err != nil {
		return err
	}

	go func() {
		s.infra.Lifecycle.WaitForStartup()
		s.infra.Logger.Info("all subsystems ready")
	}()

	<-ctx.Done()
	s.infra.Logger.Info("initiating shutdown", "grace", s.grace)
	return s.infra.Lifecycle.Shutdown(s.grace)
}

func journalBackend(infra *infrastructure.Infrastructure) string {
	if infra.Database != nil {
		return "postgres"
	}
	return "memory"
}
