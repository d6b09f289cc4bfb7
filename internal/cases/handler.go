package cases

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

var errNoCases = errors.New("case_ids must not be empty")

// Handler provides HTTP endpoints for the case list.
type Handler struct {
	sys        System
	logger     *slog.Logger
	pagination pagination.Config
}

// AssignRequest is the body of a bulk assignment.
type AssignRequest struct {
	CaseIDs []string `json:"case_ids"`
}

func NewHandler(sys System, logger *slog.Logger, pagination pagination.Config) *Handler {
	return &Handler{
		sys:        sys,
		logger:     logger.With("handler", "cases"),
		pagination: pagination,
	}
}

// Routes returns the route group definition for case list endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:  "/cases",
		Tags:    []string{"Cases"},
		Schemas: schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "", Handler: h.List, OpenAPI: listOp},
			{Method: "POST", Pattern: "/assign", Handler: h.Assign, OpenAPI: assignOp},
		},
	}
}

// List returns one page of cases matching the query string filters.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	page := pagination.PageRequestFromQuery(values, h.pagination)
	state := ListStateFromQuery(values)

	listing, err := h.sys.List(r.Context(), state.Filters, page.Page, page.PageSize)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusInternalServerError, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, listing.Page)
}

// Assign accepts a bulk assignment request. Cases are left unchanged.
func (h *Handler) Assign(w http.ResponseWriter, r *http.Request) {
	var req AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	if len(req.CaseIDs) == 0 {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, errNoCases)
		return
	}

	if err := h.sys.Assign(r.Context(), req.CaseIDs); err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	w.WriteHeader(http.StatusAccepted)
}
