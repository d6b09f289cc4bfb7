package middleware_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/middleware"
)

func ok(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestApplyOrder(t *testing.T) {
	var order []string
	mark := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	sys := middleware.New()
	sys.Use(mark("outer"))
	sys.Use(mark("inner"))

	sys.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	})).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	if strings.Join(order, ",") != "outer,inner,handler" {
		t.Errorf("order: got %v", order)
	}
}

func TestLoggerRecordsStatus(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"ok", http.StatusOK, "level=INFO"},
		{"not found", http.StatusNotFound, "level=INFO"},
		{"server error", http.StatusBadGateway, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&buf, nil))

			h := middleware.Logger(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			}))
			h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/cases?page=2", nil))

			out := buf.String()
			if !strings.Contains(out, tt.wantLevel) {
				t.Errorf("log %q missing %s", out, tt.wantLevel)
			}
			if !strings.Contains(out, "uri=\"/cases?page=2\"") && !strings.Contains(out, "uri=/cases?page=2") {
				t.Errorf("log %q missing uri", out)
			}
		})
	}
}

func TestRecover(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	h := middleware.Recover(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
	if !strings.Contains(buf.String(), "panic recovered") {
		t.Errorf("log %q missing panic entry", buf.String())
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.RequestIDFrom(r.Context())
	}))

	t.Run("generated", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		if seen == "" {
			t.Fatal("request id not stored in context")
		}
		if got := rec.Header().Get(middleware.RequestIDHeader); got != seen {
			t.Errorf("header: got %q, want %q", got, seen)
		}
	})

	t.Run("propagated", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "abc-123")
		h.ServeHTTP(httptest.NewRecorder(), req)

		if seen != "abc-123" {
			t.Errorf("request id: got %q, want abc-123", seen)
		}
	})
}

func TestCORS(t *testing.T) {
	cfg := &middleware.CORSConfig{
		Enabled:          true,
		Origins:          []string{"http://portal.gov.qa"},
		AllowedMethods:   []string{"GET", "POST"},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
		MaxAge:           600,
	}
	wildcard := &middleware.CORSConfig{Enabled: true, Origins: []string{"*"}}

	tests := []struct {
		name       string
		cfg        *middleware.CORSConfig
		method     string
		origin     string
		wantOrigin string
		wantStatus int
	}{
		{"allowed", cfg, "GET", "http://portal.gov.qa", "http://portal.gov.qa", http.StatusOK},
		{"denied", cfg, "GET", "http://other.example", "", http.StatusOK},
		{"preflight", cfg, "OPTIONS", "http://portal.gov.qa", "http://portal.gov.qa", http.StatusNoContent},
		{"denied preflight", cfg, "OPTIONS", "http://other.example", "", http.StatusForbidden},
		{"wildcard", wildcard, "GET", "http://other.example", "*", http.StatusOK},
		{"disabled", &middleware.CORSConfig{Origins: cfg.Origins}, "GET", "http://portal.gov.qa", "", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", nil)
			req.Header.Set("Origin", tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", "POST")
			}
			rec := httptest.NewRecorder()

			middleware.CORS(tt.cfg)(http.HandlerFunc(ok)).ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status: got %d, want %d", rec.Code, tt.wantStatus)
			}
			if got := rec.Header().Get("Access-Control-Allow-Origin"); got != tt.wantOrigin {
				t.Errorf("allow-origin: got %q, want %q", got, tt.wantOrigin)
			}
		})
	}
}

func TestCORSConfigFinalize(t *testing.T) {
	t.Setenv("HARMONY_TEST_CORS_ENABLED", "true")
	t.Setenv("HARMONY_TEST_CORS_ORIGINS", "http://a.qa, ,http://b.qa")

	cfg := middleware.CORSConfig{}
	err := cfg.Finalize(&middleware.CORSEnv{
		Enabled: "HARMONY_TEST_CORS_ENABLED",
		Origins: "HARMONY_TEST_CORS_ORIGINS",
	})
	if err != nil {
		t.Fatalf("finalize: %v", err)
	}

	if !cfg.Enabled {
		t.Error("enabled should be true")
	}
	if len(cfg.Origins) != 2 || cfg.Origins[1] != "http://b.qa" {
		t.Errorf("origins: got %v", cfg.Origins)
	}
	if len(cfg.AllowedMethods) != 3 || cfg.MaxAge != 3600 {
		t.Errorf("defaults: methods %v max_age %d", cfg.AllowedMethods, cfg.MaxAge)
	}
}

func TestCORSConfigMerge(t *testing.T) {
	base := middleware.CORSConfig{Origins: []string{"http://base.qa"}, MaxAge: 3600}
	base.Merge(&middleware.CORSConfig{Enabled: true, MaxAge: 0})

	if !base.Enabled {
		t.Error("enabled should follow overlay")
	}
	if len(base.Origins) != 1 || base.MaxAge != 3600 {
		t.Errorf("unset overlay fields changed base: %+v", base)
	}
}
