package api_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/api"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/config"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/module"
)

func newRouter(t *testing.T) *module.Router {
	t.Helper()

	cfg := &config.Config{}
	require.NoError(t, cfg.Finalize())

	infra, err := infrastructure.New(cfg)
	require.NoError(t, err)

	dom, err := domain.New(infra, cfg.API.Pagination)
	require.NoError(t, err)

	m, err := api.NewModule(cfg, infra, dom)
	require.NoError(t, err)

	router := module.NewRouter()
	router.Mount(m)
	return router
}

func get(router http.Handler, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestCaseDetailNotFound(t *testing.T) {
	rec := get(newRouter(t), "/api/cases/999")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"error"`)
}

func TestCaseDetail(t *testing.T) {
	rec := get(newRouter(t), "/api/cases/1")
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp api.CaseDetailResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "1", resp.Case.ID)
	assert.Equal(t, "1", resp.Left.ID)
	assert.Equal(t, "2", resp.Right.ID)
	require.NotNil(t, resp.Subject)
	assert.Equal(t, "Civil Legislation", resp.Subject.NameEn)
	assert.Equal(t, "high", string(resp.ConfidenceLevel))
	assert.NotEmpty(t, resp.Narrative)
	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "Ahmed Al-Mansoori", resp.Comments[0].Author)
	assert.NotNil(t, resp.Decisions)
	assert.NotEmpty(t, resp.Audit)
}

func TestCaseList(t *testing.T) {
	rec := get(newRouter(t), "/api/cases?status=validated")
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data  []map[string]any `json:"data"`
		Total int              `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 1, page.Total)
	assert.Equal(t, "3", page.Data[0]["id"])
}

func TestTranslations(t *testing.T) {
	router := newRouter(t)

	rec := get(router, "/api/translations?lang=ar")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp api.TranslationsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "rtl", resp.Dir)
	assert.Equal(t, "الحالات", resp.Entries["cases"])

	rec = get(router, "/api/translations?lang=fr")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOpenAPIDocument(t *testing.T) {
	rec := get(newRouter(t), "/api/openapi.json")
	require.Equal(t, http.StatusOK, rec.Code)

	var doc struct {
		OpenAPI string                     `json:"openapi"`
		Paths   map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "3.1.0", doc.OpenAPI)

	for _, path := range []string{"/cases", "/cases/{id}", "/cases/{id}/comments", "/documents", "/translations"} {
		assert.Contains(t, doc.Paths, path)
	}
}
