package reviews

import "context"

// System defines the public contract for the review journal.
type System interface {
	Handler() *Handler

	Comments(ctx context.Context, caseID string) ([]Comment, error)
	// AddComment appends one comment. Its id is the current Unix millisecond
	// timestamp, bumped past the last issued id when two land in the same
	// millisecond.
	AddComment(ctx context.Context, cmd CommentCommand) (*Comment, error)

	Decisions(ctx context.Context, caseID string) ([]Decision, error)
	// SubmitDecision validates and records a decision and its audit entry.
	SubmitDecision(ctx context.Context, cmd DecisionCommand) (*Decision, error)

	AuditLog(ctx context.Context, caseID string) ([]AuditEntry, error)
}
