package openapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
)

func TestNewSpec(t *testing.T) {
	spec := openapi.NewSpec("Law Harmony API", "1.2.0")
	spec.AddServer("/api")
	spec.SetDescription("cases")

	if spec.OpenAPI != "3.1.0" {
		t.Errorf("openapi: got %s", spec.OpenAPI)
	}
	if spec.Info.Version != "1.2.0" || spec.Info.Description != "cases" {
		t.Errorf("info: %+v", spec.Info)
	}
	if len(spec.Servers) != 1 || spec.Servers[0].URL != "/api" {
		t.Errorf("servers: %+v", spec.Servers)
	}
	for _, name := range []string{"BadRequest", "NotFound"} {
		if _, ok := spec.Components.Responses[name]; !ok {
			t.Errorf("missing shared response %s", name)
		}
	}
}

func TestSchemaHelpers(t *testing.T) {
	if got := openapi.SchemaRef("Case").Ref; got != "#/components/schemas/Case" {
		t.Errorf("schema ref: %s", got)
	}
	if got := openapi.ResponseRef("NotFound").Ref; got != "#/components/responses/NotFound" {
		t.Errorf("response ref: %s", got)
	}

	arr := openapi.ArrayOf("Comment")
	if arr.Type != "array" || arr.Items.Ref != "#/components/schemas/Comment" {
		t.Errorf("array: %+v", arr)
	}

	enum := openapi.Enum("Decision", "validate", "reject")
	if len(enum.Enum) != 2 || enum.Enum[1] != "reject" {
		t.Errorf("enum: %+v", enum.Enum)
	}

	p := openapi.PathParam("id", "Case id")
	if p.In != "path" || !p.Required || p.Schema.Format != "" {
		t.Errorf("path param: %+v", p)
	}
}

func TestWriteAndServe(t *testing.T) {
	spec := openapi.NewSpec("Law Harmony API", "dev")
	spec.Paths["/cases"] = &openapi.PathItem{
		Get: &openapi.Operation{
			Summary:   "List cases",
			Responses: map[int]*openapi.Response{200: openapi.ResponseJSON("Cases", "CasePage")},
		},
	}

	file := filepath.Join(t.TempDir(), "openapi.json")
	if err := openapi.WriteJSON(spec, file); err != nil {
		t.Fatalf("write: %v", err)
	}

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, ok := doc["paths"].(map[string]any)["/cases"]; !ok {
		t.Error("paths missing /cases")
	}

	rec := httptest.NewRecorder()
	openapi.ServeSpec(data)(rec, httptest.NewRequest("GET", "/openapi.json", nil))
	if rec.Code != http.StatusOK || rec.Body.Len() != len(data) {
		t.Errorf("serve: status %d, %d bytes", rec.Code, rec.Body.Len())
	}
}

func TestConfigFinalize(t *testing.T) {
	t.Setenv("HARMONY_TEST_OPENAPI_TITLE", "Harmony")

	cfg := openapi.Config{}
	if err := cfg.Finalize(&openapi.ConfigEnv{Title: "HARMONY_TEST_OPENAPI_TITLE"}); err != nil {
		t.Fatalf("finalize: %v", err)
	}
	if cfg.Title != "Harmony" {
		t.Errorf("title: got %s", cfg.Title)
	}
	if cfg.Description == "" {
		t.Error("description default missing")
	}
}

func TestAddTag(t *testing.T) {
	spec := openapi.FromConfig(openapi.Config{Title: "Harmony", Description: "review"}, "dev")
	spec.AddTag("Cases", "")
	spec.AddTag("Cases", "Conflict cases")
	spec.AddTag("Cases", "ignored")
	spec.AddTag("Reviews", "")

	if spec.Info.Description != "review" {
		t.Errorf("description: got %q", spec.Info.Description)
	}
	if len(spec.Tags) != 2 {
		t.Fatalf("tags: got %d, want 2", len(spec.Tags))
	}
	if spec.Tags[0].Description != "Conflict cases" {
		t.Errorf("tag description: got %q", spec.Tags[0].Description)
	}
}

func TestServeSpecNotModified(t *testing.T) {
	handler := openapi.ServeSpec([]byte(`{"openapi":"3.1.0"}`))

	first := httptest.NewRecorder()
	handler(first, httptest.NewRequest("GET", "/openapi.json", nil))
	etag := first.Header().Get("ETag")
	if etag == "" {
		t.Fatal("missing etag")
	}

	req := httptest.NewRequest("GET", "/openapi.json", nil)
	req.Header.Set("If-None-Match", etag)
	second := httptest.NewRecorder()
	handler(second, req)
	if second.Code != http.StatusNotModified || second.Body.Len() != 0 {
		t.Errorf("conditional: status %d, %d bytes", second.Code, second.Body.Len())
	}
}
