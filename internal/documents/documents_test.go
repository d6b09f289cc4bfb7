package documents_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/documents"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

const maxSize = 50 << 20

func newSystem() documents.System {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return documents.New(mockdata.Documents(), logger, pagination.Config{DefaultPageSize: 20, MaxPageSize: 100})
}

func validCommand() documents.UploadCommand {
	return documents.UploadCommand{
		LawNumber:    "قانون رقم 5",
		Year:         "2020",
		TitleAr:      "قانون الشركات",
		TitleEn:      "Companies Law",
		Jurisdiction: "قطر",
		SubjectID:    "3",
		Filename:     "law-5-2020.PDF",
		Size:         1024,
	}
}

func TestValidateRequiredFieldsInOrder(t *testing.T) {
	tests := []struct {
		field string
		clear func(*documents.UploadCommand)
	}{
		{"law_number", func(c *documents.UploadCommand) { c.LawNumber = " " }},
		{"year", func(c *documents.UploadCommand) { c.Year = "" }},
		{"title_ar", func(c *documents.UploadCommand) { c.TitleAr = "" }},
		{"title_en", func(c *documents.UploadCommand) { c.TitleEn = "" }},
		{"jurisdiction", func(c *documents.UploadCommand) { c.Jurisdiction = "" }},
		{"subject_id", func(c *documents.UploadCommand) { c.SubjectID = "" }},
		{"file", func(c *documents.UploadCommand) { c.Filename = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			cmd := validCommand()
			tt.clear(&cmd)

			err := cmd.Validate(maxSize)
			require.ErrorIs(t, err, documents.ErrMissingField)
			assert.True(t, strings.HasSuffix(err.Error(), ": "+tt.field))
		})
	}

	empty := documents.UploadCommand{}
	assert.ErrorContains(t, empty.Validate(maxSize), "law_number")
}

func TestValidateValues(t *testing.T) {
	cmd := validCommand()
	require.NoError(t, cmd.Validate(maxSize))

	cmd.Year = "twenty"
	assert.ErrorIs(t, cmd.Validate(maxSize), documents.ErrInvalidYear)

	cmd = validCommand()
	cmd.Filename = "law.docx"
	assert.ErrorIs(t, cmd.Validate(maxSize), documents.ErrNotPDF)

	cmd = validCommand()
	cmd.Size = maxSize + 1
	assert.ErrorIs(t, cmd.Validate(maxSize), documents.ErrFileTooLarge)
	assert.NoError(t, cmd.Validate(0), "zero disables the size limit")
}

func TestMapHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, documents.MapHTTPStatus(documents.ErrNotFound))
	assert.Equal(t, http.StatusRequestEntityTooLarge, documents.MapHTTPStatus(documents.ErrFileTooLarge))
	assert.Equal(t, http.StatusBadRequest, documents.MapHTTPStatus(documents.ErrNotPDF))
	assert.Equal(t, http.StatusInternalServerError, documents.MapHTTPStatus(errors.New("boom")))
}

func TestSearch(t *testing.T) {
	sys := newSystem()
	ctx := context.Background()

	tests := []struct {
		name   string
		search string
		want   []string
	}{
		{"english title", "labor", []string{"2"}},
		{"arabic title", "التجار", []string{"1", "3"}},
		{"law number", "27", []string{"3"}},
		{"year", "2004", []string{"1"}},
		{"no match", "zzz", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			docs, err := sys.Search(ctx, documents.Filters{Search: tt.search})
			require.NoError(t, err)

			got := make([]string, len(docs))
			for i, d := range docs {
				got[i] = d.ID
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFindAndAccept(t *testing.T) {
	sys := newSystem()
	ctx := context.Background()

	d, err := sys.Find(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "Labor Law", d.TitleEn)

	_, err = sys.Find(ctx, "42")
	assert.ErrorIs(t, err, documents.ErrNotFound)

	doc, err := sys.Accept(ctx, validCommand(), maxSize)
	require.NoError(t, err)
	assert.Equal(t, documents.StatusProcessing, doc.Status)
	assert.Equal(t, 2020, doc.Year)
	assert.Equal(t, "/documents/"+doc.ID+".pdf", doc.FilePath)

	all, err := sys.Search(ctx, documents.Filters{})
	require.NoError(t, err)
	assert.Len(t, all, 3, "accepting does not add to the catalog")
}

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	mux := http.NewServeMux()
	routes.Register(mux, newSystem().Handler(maxSize).Routes())
	return mux
}

func multipartBody(t *testing.T, fields map[string]string, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		part, err := w.CreateFormFile("file", filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &body, w.FormDataContentType()
}

func TestUploadHandler(t *testing.T) {
	mux := newMux(t)
	fields := map[string]string{
		"law_number":   "5",
		"year":         "2020",
		"title_ar":     "قانون الشركات",
		"title_en":     "Companies Law",
		"jurisdiction": "قطر",
		"subject_id":   "3",
	}

	body, contentType := multipartBody(t, fields, "law.pdf", []byte("%PDF-1.7"))
	req := httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusAccepted, rec.Code, rec.Body.String())
	var doc documents.Document
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	assert.Equal(t, "Companies Law", doc.TitleEn)

	body, contentType = multipartBody(t, fields, "", nil)
	req = httptest.NewRequest(http.MethodPost, "/documents", body)
	req.Header.Set("Content-Type", contentType)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "file")
}

func TestListHandler(t *testing.T) {
	mux := newMux(t)

	req := httptest.NewRequest(http.MethodGet, "/documents?search=law&page_size=2", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pagination.PageResult[documents.Document]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, 3, page.Total)
	assert.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.TotalPages)

	req = httptest.NewRequest(http.MethodGet, "/documents/9", nil)
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
