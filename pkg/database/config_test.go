package database_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/database"
)

func TestFinalizeDisabledSkipsValidation(t *testing.T) {
	cfg := database.Config{}
	if err := cfg.Finalize(nil); err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if cfg.Enabled {
		t.Error("enabled should default to false")
	}
	if cfg.Host != "localhost" || cfg.Port != 5432 || cfg.Name != "harmony" {
		t.Errorf("defaults: got %s:%d/%s", cfg.Host, cfg.Port, cfg.Name)
	}
	if cfg.ConnTimeoutDuration() != 5*time.Second {
		t.Errorf("conn_timeout: got %v", cfg.ConnTimeoutDuration())
	}
}

func TestFinalizeEnabledValidation(t *testing.T) {
	tests := []struct {
		name    string
		cfg     database.Config
		wantErr string
	}{
		{"missing user", database.Config{Enabled: true}, "user required"},
		{"bad lifetime", database.Config{Enabled: true, User: "harmony", ConnMaxLifetime: "soon"}, "conn_max_lifetime"},
		{"valid", database.Config{Enabled: true, User: "harmony"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Finalize(nil)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error: got %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestFinalizeEnv(t *testing.T) {
	t.Setenv("HARMONY_TEST_DB_ENABLED", "true")
	t.Setenv("HARMONY_TEST_DB_USER", "reviewer")
	t.Setenv("HARMONY_TEST_DB_PORT", "6543")

	cfg := database.Config{}
	err := cfg.Finalize(&database.Env{
		Enabled: "HARMONY_TEST_DB_ENABLED",
		User:    "HARMONY_TEST_DB_USER",
		Port:    "HARMONY_TEST_DB_PORT",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if !cfg.Enabled || cfg.User != "reviewer" || cfg.Port != 6543 {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
	if !strings.Contains(cfg.Dsn(), "port=6543") {
		t.Errorf("dsn: %s", cfg.Dsn())
	}
	if want := "postgres://reviewer:@localhost:6543/harmony?sslmode=disable"; cfg.URL() != want {
		t.Errorf("url: got %s, want %s", cfg.URL(), want)
	}
}

func TestMerge(t *testing.T) {
	base := database.Config{Host: "db", Port: 5432, Name: "harmony"}
	base.Merge(&database.Config{Enabled: true, Port: 5433})

	if !base.Enabled || base.Port != 5433 || base.Host != "db" {
		t.Errorf("merge: got %+v", base)
	}
}
