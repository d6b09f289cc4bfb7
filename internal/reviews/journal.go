package reviews

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
)

const commentIDAttempts = 5

// Defaults applied to anonymous submissions.
const (
	DefaultAuthor = "Current User"
	DefaultRole   = "Legal Analyst"
)

// CaseFinder resolves the case a journal entry refers to.
type CaseFinder interface {
	Find(ctx context.Context, id string) (*cases.Case, error)
}

type journal struct {
	store  Store
	cases  CaseFinder
	logger *slog.Logger
	now    func() time.Time
	lastID atomic.Int64
}

// New creates a journal System writing to store. Entries are only accepted
// for cases that finder knows.
func New(store Store, finder CaseFinder, logger *slog.Logger) System {
	return &journal{
		store:  store,
		cases:  finder,
		logger: logger.With("system", "reviews"),
		now:    time.Now,
	}
}

func (j *journal) Handler() *Handler {
	return NewHandler(j, j.logger)
}

func (j *journal) Comments(ctx context.Context, caseID string) ([]Comment, error) {
	if err := j.checkCase(ctx, caseID); err != nil {
		return nil, err
	}
	return j.store.Comments(ctx, caseID)
}

func (j *journal) AddComment(ctx context.Context, cmd CommentCommand) (*Comment, error) {
	if err := j.checkCase(ctx, cmd.CaseID); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := j.now()
	c := Comment{
		CaseID:    cmd.CaseID,
		Author:    orDefault(cmd.Author, DefaultAuthor),
		Role:      orDefault(cmd.Role, DefaultRole),
		Text:      strings.TrimSpace(cmd.Text),
		Timestamp: now,
	}

	// Ids are unique only within this process. Another instance or an
	// earlier run may already hold the same millisecond.
	var err error
	for range commentIDAttempts {
		c.ID = j.nextCommentID(now)
		audit := AuditEntry{
			ID:        uuid.NewString(),
			CaseID:    c.CaseID,
			UserName:  c.Author,
			Action:    ActionCommented,
			Timestamp: now,
			Details:   "Comment " + c.ID + " added",
		}
		if err = j.store.InsertComment(ctx, c, audit); !errors.Is(err, ErrDuplicate) {
			break
		}
		j.logger.Warn("comment id taken, retrying", "case_id", c.CaseID, "comment_id", c.ID)
	}
	if err != nil {
		return nil, err
	}

	j.logger.Info("comment added", "case_id", c.CaseID, "comment_id", c.ID)
	return &c, nil
}

func (j *journal) Decisions(ctx context.Context, caseID string) ([]Decision, error) {
	if err := j.checkCase(ctx, caseID); err != nil {
		return nil, err
	}
	return j.store.Decisions(ctx, caseID)
}

func (j *journal) SubmitDecision(ctx context.Context, cmd DecisionCommand) (*Decision, error) {
	if err := j.checkCase(ctx, cmd.CaseID); err != nil {
		return nil, err
	}
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	now := j.now()
	d := Decision{
		ID:             uuid.NewString(),
		CaseID:         cmd.CaseID,
		Decision:       DecisionKind(strings.TrimSpace(cmd.Decision)),
		Recommendation: strings.TrimSpace(cmd.Recommendation),
		SubmittedBy:    orDefault(cmd.SubmittedBy, DefaultAuthor),
		SubmittedAt:    now,
	}

	action := ActionValidated
	if d.Decision == DecisionReject {
		action = ActionRejected
	}

	audit := AuditEntry{
		ID:        uuid.NewString(),
		CaseID:    d.CaseID,
		UserName:  d.SubmittedBy,
		Action:    action,
		Timestamp: now,
		Details:   "Decision " + d.ID,
	}

	if err := j.store.InsertDecision(ctx, d, audit); err != nil {
		return nil, err
	}

	j.logger.Info(
		"decision submitted",
		"case_id", d.CaseID,
		"decision", d.Decision,
		"decision_id", d.ID,
	)
	return &d, nil
}

func (j *journal) AuditLog(ctx context.Context, caseID string) ([]AuditEntry, error) {
	if err := j.checkCase(ctx, caseID); err != nil {
		return nil, err
	}
	return j.store.AuditLog(ctx, caseID)
}

func (j *journal) checkCase(ctx context.Context, caseID string) error {
	if _, err := j.cases.Find(ctx, caseID); err != nil {
		if errors.Is(err, cases.ErrNotFound) {
			return fmt.Errorf("%w: %s", ErrCaseNotFound, caseID)
		}
		return err
	}
	return nil
}

func (j *journal) nextCommentID(t time.Time) string {
	for {
		last := j.lastID.Load()
		next := max(t.UnixMilli(), last+1)
		if j.lastID.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

func orDefault(v, fallback string) string {
	if v = strings.TrimSpace(v); v == "" {
		return fallback
	}
	return v
}
