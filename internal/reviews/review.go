// Package reviews implements the review journal: the comments, decisions,
// and audit trail recorded against cases. Entries are append-only and keep
// their insertion order.
package reviews

import (
	"strings"
	"time"
)

// Comment is an annotation left on a case.
type Comment struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	Author    string    `json:"author"`
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type DecisionKind string

const (
	DecisionValidate DecisionKind = "validate"
	DecisionReject   DecisionKind = "reject"
)

// Decision is a reviewer's verdict on a case. Submitting one does not change
// the case status.
type Decision struct {
	ID             string       `json:"id"`
	CaseID         string       `json:"case_id"`
	Decision       DecisionKind `json:"decision"`
	Recommendation string       `json:"recommendation"`
	SubmittedBy    string       `json:"submitted_by"`
	SubmittedAt    time.Time    `json:"submitted_at"`
}

type Action string

const (
	ActionCreated   Action = "created"
	ActionAssigned  Action = "assigned"
	ActionViewed    Action = "viewed"
	ActionCommented Action = "commented"
	ActionValidated Action = "validated"
	ActionRejected  Action = "rejected"
)

type AuditEntry struct {
	ID        string    `json:"id"`
	CaseID    string    `json:"case_id"`
	UserName  string    `json:"user_name"`
	Action    Action    `json:"action"`
	Timestamp time.Time `json:"timestamp"`
	Details   string    `json:"details,omitempty"`
}

// CommentCommand carries a new comment.
type CommentCommand struct {
	CaseID string `json:"-"`
	Author string `json:"author"`
	Role   string `json:"role"`
	Text   string `json:"text"`
}

// Validate rejects comments whose text is blank after trimming.
func (c CommentCommand) Validate() error {
	if strings.TrimSpace(c.Text) == "" {
		return ErrEmptyComment
	}
	return nil
}

// DecisionCommand carries a decision submission. Decision is kept as
// submitted so an unset value can be told apart from an unknown one.
type DecisionCommand struct {
	CaseID         string `json:"-"`
	Decision       string `json:"decision"`
	Recommendation string `json:"recommendation"`
	SubmittedBy    string `json:"submitted_by"`
}

// Validate requires a decision first and a non-blank recommendation second.
func (c DecisionCommand) Validate() error {
	switch DecisionKind(strings.TrimSpace(c.Decision)) {
	case "":
		return ErrDecisionRequired
	case DecisionValidate, DecisionReject:
	default:
		return ErrInvalidDecision
	}

	if strings.TrimSpace(c.Recommendation) == "" {
		return ErrRecommendationRequired
	}
	return nil
}

// Seed is the journal content present before any user action.
type Seed struct {
	Comments []Comment
	Audit    []AuditEntry
}
