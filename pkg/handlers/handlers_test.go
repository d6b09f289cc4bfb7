package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
)

func TestRespondJSON(t *testing.T) {
	tests := []struct {
		name   string
		status int
		data   any
		want   string
	}{
		{"map body", http.StatusOK, map[string]string{"status": "ok"}, `"status":"ok"`},
		{"struct body", http.StatusCreated, struct {
			ID string `json:"id"`
		}{ID: "1"}, `"id":"1"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handlers.RespondJSON(rec, tt.status, tt.data)

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content-type: got %q", ct)
			}
			if !strings.Contains(rec.Body.String(), tt.want) {
				t.Errorf("body %q does not contain %q", rec.Body.String(), tt.want)
			}
		})
	}
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantLevel string
	}{
		{"client error logs warn", http.StatusBadRequest, "level=WARN"},
		{"server error logs error", http.StatusInternalServerError, "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logs bytes.Buffer
			logger := slog.New(slog.NewTextHandler(&logs, nil))
			rec := httptest.NewRecorder()

			handlers.RespondError(rec, logger, tt.status, errors.New("case not found"))

			if rec.Code != tt.status {
				t.Errorf("status: got %d, want %d", rec.Code, tt.status)
			}

			body, _ := io.ReadAll(rec.Body)
			var parsed map[string]string
			if err := json.Unmarshal(body, &parsed); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if parsed["error"] != "case not found" {
				t.Errorf("error: got %q, want %q", parsed["error"], "case not found")
			}
			if !strings.Contains(logs.String(), tt.wantLevel) {
				t.Errorf("log %q does not contain %q", logs.String(), tt.wantLevel)
			}
		})
	}
}
