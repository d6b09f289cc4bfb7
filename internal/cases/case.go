// Package cases implements flagged contradiction, overlap, and gap cases:
// the filtered and paginated case list, bulk selection, and the composed
// detail view.
package cases

import "time"

type Type string

const (
	TypeContradiction Type = "contradiction"
	TypeOverlap       Type = "overlap"
	TypeGap           Type = "gap"
)

// Types lists case types in display order.
var Types = []Type{TypeContradiction, TypeOverlap, TypeGap}

type Status string

const (
	StatusNew         Status = "new"
	StatusUnderReview Status = "under_review"
	StatusValidated   Status = "validated"
	StatusRejected    Status = "rejected"
)

// Statuses lists case statuses in display order. No transition between them
// is enforced.
var Statuses = []Status{StatusNew, StatusUnderReview, StatusValidated, StatusRejected}

// Severity is the qualitative risk label of a case. It also grades impact
// entries in the detail view.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Case is a candidate conflict between documents awaiting review.
// Document ids are not checked against the document catalog.
type Case struct {
	ID                 string     `json:"id"`
	DocumentIDs        []string   `json:"document_ids"`
	CaseType           Type       `json:"case_type"`
	FlaggedBy          string     `json:"flagged_by"`
	FlaggedDate        time.Time  `json:"flagged_date"`
	Status             Status     `json:"status"`
	AssignedTo         string     `json:"assigned_to,omitempty"`
	ValidatedBy        string     `json:"validated_by,omitempty"`
	ValidationDate     *time.Time `json:"validation_date,omitempty"`
	RecommendationText string     `json:"recommendation_text,omitempty"`
	Severity           Severity   `json:"severity,omitempty"`
}

// Validated reports whether the case carries a validation record.
func (c Case) Validated() bool {
	return c.Status == StatusValidated && c.ValidatedBy != ""
}
