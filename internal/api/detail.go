package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/documents"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/reviews"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/handlers"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/openapi"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/routes"
)

// CaseDetailResponse is everything the case detail view shows for one case.
// Subject is the category of the left document and is omitted when that
// document is not in the catalog.
type CaseDetailResponse struct {
	Case            cases.Case               `json:"case"`
	Subject         *subjects.Subject        `json:"subject,omitempty"`
	Left            cases.ComparisonDocument `json:"left"`
	Right           cases.ComparisonDocument `json:"right"`
	KeyDifferences  []string                 `json:"key_differences"`
	AIAnalysis      cases.AIAnalysis         `json:"ai_analysis"`
	ConfidenceLevel cases.Severity           `json:"confidence_level"`
	Impact          cases.ImpactAnalysis     `json:"impact"`
	Recommendation  cases.Recommendation     `json:"recommendation"`
	Narrative       string                   `json:"narrative"`
	Comments        []reviews.Comment        `json:"comments"`
	Decisions       []reviews.Decision       `json:"decisions"`
	Audit           []reviews.AuditEntry     `json:"audit"`
}

type detailHandler struct {
	dom    *domain.Domain
	logger *slog.Logger
}

func newDetailHandler(dom *domain.Domain, logger *slog.Logger) *detailHandler {
	return &detailHandler{
		dom:    dom,
		logger: logger.With("handler", "case-detail"),
	}
}

func (h *detailHandler) routes() routes.Group {
	return routes.Group{
		Prefix: "/cases",
		Tags:   []string{"Cases"},
		Schemas: map[string]*openapi.Schema{
			"CaseDetail": caseDetailSchema,
		},
		Routes: []routes.Route{
			{Method: "GET", Pattern: "/{id}", Handler: h.find, OpenAPI: detailOp},
		},
	}
}

func (h *detailHandler) find(w http.ResponseWriter, r *http.Request) {
	resp, err := h.assemble(r.Context(), r.PathValue("id"))
	if err != nil {
		handlers.RespondError(w, h.logger, cases.MapHTTPStatus(err), err)
		return
	}
	handlers.RespondJSON(w, http.StatusOK, resp)
}

// assemble composes the case and then loads its journal and subject
// concurrently.
func (h *detailHandler) assemble(ctx context.Context, id string) (*CaseDetailResponse, error) {
	detail, err := h.dom.Cases.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := &CaseDetailResponse{
		Case:            detail.Case,
		Left:            detail.Left,
		Right:           detail.Right,
		KeyDifferences:  detail.KeyDifferences,
		AIAnalysis:      detail.AI,
		ConfidenceLevel: cases.ConfidenceLevel(detail.AI.Confidence),
		Impact:          detail.Impact,
		Recommendation:  detail.Recommendation,
		Narrative:       detail.Recommendation.Narrative(),
	}

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		items, err := h.dom.Reviews.Comments(ctx, id)
		resp.Comments = items
		return err
	})

	g.Go(func() error {
		items, err := h.dom.Reviews.Decisions(ctx, id)
		resp.Decisions = items
		return err
	})

	g.Go(func() error {
		items, err := h.dom.Reviews.AuditLog(ctx, id)
		resp.Audit = items
		return err
	})

	g.Go(func() error {
		subject, err := h.subjectOf(ctx, detail.Left.ID)
		resp.Subject = subject
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return resp, nil
}

func (h *detailHandler) subjectOf(ctx context.Context, documentID string) (*subjects.Subject, error) {
	doc, err := h.dom.Documents.Find(ctx, documentID)
	if errors.Is(err, documents.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	subject, err := h.dom.Subjects.Find(ctx, doc.SubjectID)
	if errors.Is(err, subjects.ErrNotFound) {
		return nil, nil
	}
	return subject, err
}
