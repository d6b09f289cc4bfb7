package ui

import (
	"errors"
	"fmt"
	"math"
	"net/http"
	"time"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/reviews"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/web"
)

type decisionForm struct {
	Decision       string
	Recommendation string
}

type caseData struct {
	Detail     cases.Detail
	Panels     []cases.ComparisonDocument
	Subject    *subjects.Subject
	Reviewer   string
	Confidence cases.Severity
	Findings   []cases.Finding
	Paragraphs []cases.Paragraph
	Comments   []reviews.Comment
	Decisions  []reviews.Decision
	Audit      []reviews.AuditEntry
	Form       decisionForm

	// Refresh is the meta refresh content sending the reviewer back to the
	// case list after a decision. Empty otherwise.
	Refresh string
}

func (u *UI) caseDetail(w http.ResponseWriter, r *http.Request) {
	data, err := u.loadCase(r, r.PathValue("caseId"))
	if err != nil {
		u.caseError(w, r, err)
		return
	}
	u.render(w, r, http.StatusOK, caseView, data)
}

func (u *UI) addComment(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("caseId")

	_, err := u.dom.Reviews.AddComment(r.Context(), reviews.CommentCommand{
		CaseID: id,
		Text:   r.FormValue("text"),
	})

	switch {
	case errors.Is(err, reviews.ErrEmptyComment):
		u.flash(w, r, web.FlashError, "commentRequired")
	case err != nil:
		u.caseError(w, r, err)
		return
	default:
		u.flash(w, r, web.FlashSuccess, "commentAdded")
	}

	http.Redirect(w, r, "/cases/"+id, http.StatusSeeOther)
}

func (u *UI) submitDecision(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("caseId")
	form := decisionForm{
		Decision:       r.FormValue("decision"),
		Recommendation: r.FormValue("recommendation"),
	}

	decision, err := u.dom.Reviews.SubmitDecision(r.Context(), reviews.DecisionCommand{
		CaseID:         id,
		Decision:       form.Decision,
		Recommendation: form.Recommendation,
	})

	if err != nil && reviews.MapHTTPStatus(err) != http.StatusBadRequest {
		u.caseError(w, r, err)
		return
	}

	data, loadErr := u.loadCase(r, id)
	if loadErr != nil {
		u.caseError(w, r, loadErr)
		return
	}

	if err != nil {
		data.Form = form
		flash := &web.Flash{Kind: web.FlashError, Message: u.t(r, decisionErrorKey(err))}
		u.renderFlash(w, r, http.StatusUnprocessableEntity, caseView, flash, data)
		return
	}

	key := "caseValidated"
	if decision.Decision == reviews.DecisionReject {
		key = "caseRejected"
	}

	data.Refresh = refreshAfter(u.redirectDelay, "/cases")
	flash := &web.Flash{Kind: web.FlashSuccess, Message: u.t(r, key)}
	u.renderFlash(w, r, http.StatusOK, caseView, flash, data)
}

// refreshAfter builds a meta refresh value. Browsers read only whole
// seconds, so the delay is rounded up.
func refreshAfter(d time.Duration, target string) string {
	return fmt.Sprintf("%d;url=%s", int(math.Ceil(d.Seconds())), target)
}

func decisionErrorKey(err error) string {
	switch {
	case errors.Is(err, reviews.ErrRecommendationRequired):
		return "provideRecommendation"
	case errors.Is(err, reviews.ErrEmptyComment):
		return "commentRequired"
	default:
		return "selectDecision"
	}
}

// loadCase gathers everything the detail page shows for id.
func (u *UI) loadCase(r *http.Request, id string) (*caseData, error) {
	ctx := r.Context()

	detail, err := u.dom.Cases.Detail(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := u.dom.Reviews.Comments(ctx, id)
	if err != nil {
		return nil, err
	}
	decisions, err := u.dom.Reviews.Decisions(ctx, id)
	if err != nil {
		return nil, err
	}
	audit, err := u.dom.Reviews.AuditLog(ctx, id)
	if err != nil {
		return nil, err
	}

	row := u.row(r, detail.Case)

	return &caseData{
		Detail:     *detail,
		Panels:     []cases.ComparisonDocument{detail.Left, detail.Right},
		Subject:    row.Subject,
		Reviewer:   row.Reviewer,
		Confidence: cases.ConfidenceLevel(detail.AI.Confidence),
		Findings:   detail.AI.Findings(),
		Paragraphs: detail.Recommendation.Paragraphs(),
		Comments:   comments,
		Decisions:  decisions,
		Audit:      audit,
	}, nil
}

// caseError renders the not-found view for unknown cases and a 500 otherwise.
func (u *UI) caseError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, cases.ErrNotFound) || errors.Is(err, reviews.ErrCaseNotFound) {
		u.render(w, r, http.StatusNotFound, caseMissingView, nil)
		return
	}
	u.serverError(w, err)
}
