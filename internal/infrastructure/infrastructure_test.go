package infrastructure_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/i18n"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
)

func finalized(t *testing.T, cfg *config.Config) *config.Config {
	t.Helper()
	if err := cfg.Finalize(); err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	return cfg
}

func TestNewInMemory(t *testing.T) {
	infra, err := infrastructure.New(finalized(t, &config.Config{}))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if infra.Lifecycle == nil {
		t.Error("Lifecycle is nil")
	}
	if infra.Logger == nil {
		t.Error("Logger is nil")
	}
	if infra.Catalog == nil {
		t.Error("Catalog is nil")
	}
	if infra.Database != nil {
		t.Error("Database should be nil when disabled")
	}
}

func TestNewDatabaseConnection(t *testing.T) {
	cfg := &config.Config{}
	cfg.Database.Enabled = true
	cfg.Database.User = "harmony"

	infra, err := infrastructure.New(finalized(t, cfg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if infra.Database == nil {
		t.Fatal("Database is nil")
	}

	conn := infra.Database.Connection()
	if conn == nil {
		t.Fatal("Database.Connection() returned nil")
	}
	conn.Close()
}

func writeTranslations(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "translations.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestNewLoadsTranslations(t *testing.T) {
	cfg := &config.Config{}
	cfg.Web.TranslationsFile = writeTranslations(t, "[dashboard]\nen = \"Overview\"\n")

	infra, err := infrastructure.New(finalized(t, cfg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if got := infra.Catalog.T("dashboard", i18n.English); got != "Overview" {
		t.Errorf("T(dashboard) = %q, want Overview", got)
	}
}

func TestNewInvalidTranslations(t *testing.T) {
	cfg := &config.Config{}
	cfg.Web.TranslationsFile = writeTranslations(t, "not = [valid")

	if _, err := infrastructure.New(finalized(t, cfg)); err == nil {
		t.Fatal("expected error for malformed translations file")
	}
}

func TestStartAndShutdownWithWatcher(t *testing.T) {
	cfg := &config.Config{}
	cfg.Web.TranslationsFile = writeTranslations(t, "[dashboard]\nen = \"Overview\"\n")
	cfg.Web.WatchTranslations = true

	infra, err := infrastructure.New(finalized(t, cfg))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := infra.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	infra.Lifecycle.WaitForStartup()

	if err := infra.Lifecycle.Shutdown(5 * time.Second); err != nil {
		t.Errorf("Shutdown() error = %v", err)
	}
}
