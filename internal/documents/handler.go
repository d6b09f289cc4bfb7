package documents

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

const (
	formOverhead    = 1 << 20
	multipartMemory = 8 << 20
)

// Handler provides HTTP endpoints for document operations.
type Handler struct {
	sys           System
	logger        *slog.Logger
	pagination    pagination.Config
	maxUploadSize int64
}

// NewHandler creates a Handler with the given system, logger, pagination config, and upload size limit.
func NewHandler(
	sys System,
	logger *slog.Logger,
	pagination pagination.Config,
	maxUploadSize int64,
) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "documents"),
		pagination:    pagination,
		maxUploadSize: maxUploadSize,
	}
}

// Routes returns the route group definition for document endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:  "/documents",
		Tags:    []string{"Documents"},
		Schemas: schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "GET", Pattern: "/{id}", Handler: h.Find, OpenAPI: findOp},
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: uploadOp},
		},
	}
}

// List returns a paginated list of documents with optional query parameter filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	page := pagination.PageRequestFromQuery(r.URL.Query(), h.pagination)
	filters := FiltersFromQuery(r.URL.Query())

	result, err := h.sys.List(r.Context(), page, filters)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// Find returns a single document by its id path parameter.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	doc, err := h.sys.Find(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, doc)
}

// Upload accepts a multipart form with law metadata and a PDF file. The file
// is measured and discarded; the response describes the draft document.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	cmd, err := ParseUploadForm(w, r, h.maxUploadSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	doc, err := h.sys.Accept(r.Context(), cmd, h.maxUploadSize)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	handlers.RespondJSON(w, http.StatusAccepted, doc)
}

// ParseUploadForm reads the upload metadata form from r. The body is capped
// slightly above maxSize to leave room for the metadata fields; a missing
// file is left for Validate to report.
func ParseUploadForm(w http.ResponseWriter, r *http.Request, maxSize int64) (UploadCommand, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxSize+formOverhead)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return UploadCommand{}, ErrFileTooLarge
		}
		return UploadCommand{}, fmt.Errorf("%w: file", ErrMissingField)
	}

	cmd := UploadCommand{
		LawNumber:    r.FormValue("law_number"),
		Year:         r.FormValue("year"),
		TitleAr:      r.FormValue("title_ar"),
		TitleEn:      r.FormValue("title_en"),
		Jurisdiction: r.FormValue("jurisdiction"),
		SubjectID:    r.FormValue("subject_id"),
	}

	file, header, err := r.FormFile("file")
	if err == nil {
		file.Close()
		cmd.Filename = header.Filename
		cmd.Size = header.Size
	}

	return cmd, nil
}
