package subjects_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

func newSystem() subjects.System {
	return subjects.New(mockdata.Subjects(), slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestSubjectNames(t *testing.T) {
	s := subjects.Subject{NameAr: "التشريعات المدنية", NameEn: "Civil Legislation"}
	assert.Equal(t, "Civil Legislation", s.Name(false))
	assert.Equal(t, "التشريعات المدنية", s.Name(true))
	assert.False(t, s.IsChild())

	s.ParentID = "1"
	assert.True(t, s.IsChild())
}

func TestListAndFind(t *testing.T) {
	sys := newSystem()
	ctx := context.Background()

	all, err := sys.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 5)

	s, err := sys.Find(ctx, "5")
	require.NoError(t, err)
	assert.Equal(t, "Labor Legislation", s.NameEn)

	_, err = sys.Find(ctx, "6")
	assert.ErrorIs(t, err, subjects.ErrNotFound)
}

func TestHandler(t *testing.T) {
	mux := http.NewServeMux()
	routes.Register(mux, newSystem().Handler().Routes())

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/subjects/2", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name_en":"Criminal Legislation"`)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/subjects/x", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
