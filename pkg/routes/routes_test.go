package routes_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

func okHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func caseGroup() routes.Group {
	return routes.Group{
		Prefix: "/cases",
		Tags:   []string{"Cases"},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: okHandler, OpenAPI: &openapi.Operation{Summary: "List cases"}},
			{Method: "GET", Pattern: "/{id}", Handler: okHandler, OpenAPI: &openapi.Operation{Summary: "Find case"}},
			{Method: "POST", Pattern: "/{id}/comments", Handler: okHandler},
		},
		Children: []routes.Group{
			{
				Prefix: "/{id}/audit",
				Routes: []routes.Route{
					{Method: "GET", Pattern: "", Handler: okHandler, OpenAPI: &openapi.Operation{Summary: "Audit", Tags: []string{"Audit"}}},
				},
			},
		},
		Schemas: map[string]*openapi.Schema{"Case": {Type: "object"}},
	}
}

func TestRegister(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, caseGroup())

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{"GET", "/cases", http.StatusOK},
		{"GET", "/cases/1", http.StatusOK},
		{"POST", "/cases/1/comments", http.StatusOK},
		{"GET", "/cases/1/audit", http.StatusOK},
		{"DELETE", "/cases/1", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.path, nil))
			if rec.Code != tt.want {
				t.Errorf("status: got %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	spec := openapi.NewSpec("Harmony", "test")
	routes.Describe(spec, "/api", caseGroup())

	list, ok := spec.Paths["/api/cases"]
	if !ok || list.Get == nil {
		t.Fatalf("missing GET /api/cases: %v", spec.Paths)
	}
	if len(list.Get.Tags) != 1 || list.Get.Tags[0] != "Cases" {
		t.Errorf("group tags not applied: %v", list.Get.Tags)
	}

	if item := spec.Paths["/api/cases/{id}/comments"]; item != nil {
		t.Error("undocumented route should be omitted")
	}

	audit := spec.Paths["/api/cases/{id}/audit"]
	if audit == nil || audit.Get.Tags[0] != "Audit" {
		t.Error("operation tags should take precedence over group tags")
	}

	if _, ok := spec.Components.Schemas["Case"]; !ok {
		t.Error("group schemas not merged")
	}
}

func TestDescribeRegistersTags(t *testing.T) {
	spec := openapi.NewSpec("Harmony", "test")
	routes.Describe(spec, "/api", caseGroup())

	names := make([]string, len(spec.Tags))
	for i, tag := range spec.Tags {
		names[i] = tag.Name
	}
	if len(names) != 2 || names[0] != "Cases" || names[1] != "Audit" {
		t.Errorf("tags: got %v, want [Cases Audit]", names)
	}
}
