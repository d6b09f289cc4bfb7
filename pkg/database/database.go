// Package database owns the PostgreSQL pool that backs the review journal.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/lifecycle"
)

const pingAttempts = 3

// System exposes the pool and whether it has answered a ping.
type System interface {
	Connection() *sql.DB
	Start(lc *lifecycle.Coordinator) error
	Ready() bool
}

type pool struct {
	db      *sql.DB
	logger  *slog.Logger
	timeout time.Duration
	ready   atomic.Bool
}

// New configures a pgx-backed pool. sql.Open does not dial, so the first
// connection happens in the startup ping.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.Dsn())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &pool{
		db:      db,
		logger:  logger.With("system", "database", "host", cfg.Host, "name", cfg.Name),
		timeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (p *pool) Connection() *sql.DB { return p.db }

func (p *pool) Ready() bool { return p.ready.Load() }

// Start pings during startup, retrying with a linear backoff, and closes
// the pool once the lifecycle context ends. A failed ping leaves the pool
// not ready without aborting startup.
func (p *pool) Start(lc *lifecycle.Coordinator) error {
	lc.OnStartup(func() {
		if err := p.ping(lc.Context()); err != nil {
			p.logger.Error("database unreachable", "attempts", pingAttempts, "error", err)
			return
		}
		p.ready.Store(true)
		p.logger.Info("database ready")
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		p.ready.Store(false)
		if err := p.db.Close(); err != nil {
			p.logger.Error("database close failed", "error", err)
			return
		}
		p.logger.Info("database closed")
	})
	return nil
}

func (p *pool) ping(ctx context.Context) error {
	var err error
	for attempt := 1; attempt <= pingAttempts; attempt++ {
		pctx, cancel := context.WithTimeout(ctx, p.timeout)
		err = p.db.PingContext(pctx)
		cancel()
		if err == nil {
			return nil
		}
		p.logger.Warn("database ping failed", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
		}
	}
	return err
}
