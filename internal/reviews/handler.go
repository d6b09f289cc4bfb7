package reviews

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

// Handler provides HTTP endpoints for the review journal of one case.
type Handler struct {
	sys    System
	logger *slog.Logger
}

func NewHandler(sys System, logger *slog.Logger) *Handler {
	return &Handler{
		sys:    sys,
		logger: logger.With("handler", "reviews"),
	}
}

// Routes returns the route group definition for journal endpoints.
func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:  "/cases/{id}",
		Tags:    []string{"Reviews"},
		Schemas: schemas,
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/comments", Handler: h.Comments, OpenAPI: commentsOp},
			{Method: "POST", Pattern: "/comments", Handler: h.AddComment, OpenAPI: addCommentOp},
			{Method: "GET", Pattern: "/decisions", Handler: h.Decisions, OpenAPI: decisionsOp},
			{Method: "POST", Pattern: "/decision", Handler: h.SubmitDecision, OpenAPI: submitDecisionOp},
			{Method: "GET", Pattern: "/audit", Handler: h.AuditLog, OpenAPI: auditOp},
		},
	}
}

func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Comments(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var cmd CommentCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	cmd.CaseID = r.PathValue("id")

	c, err := h.sys.AddComment(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, c)
}

func (h *Handler) Decisions(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.Decisions(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}

func (h *Handler) SubmitDecision(w http.ResponseWriter, r *http.Request) {
	var cmd DecisionCommand
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}
	cmd.CaseID = r.PathValue("id")

	d, err := h.sys.SubmitDecision(r.Context(), cmd)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusCreated, d)
}

func (h *Handler) AuditLog(w http.ResponseWriter, r *http.Request) {
	items, err := h.sys.AuditLog(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, items)
}
