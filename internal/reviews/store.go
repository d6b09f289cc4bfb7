package reviews

import "context"

// Store persists journal entries. Reads return entries in insertion order.
type Store interface {
	Comments(ctx context.Context, caseID string) ([]Comment, error)
	Decisions(ctx context.Context, caseID string) ([]Decision, error)
	AuditLog(ctx context.Context, caseID string) ([]AuditEntry, error)

	// InsertComment stores c together with its audit entry.
	InsertComment(ctx context.Context, c Comment, audit AuditEntry) error
	// InsertDecision stores d together with its audit entry.
	InsertDecision(ctx context.Context, d Decision, audit AuditEntry) error

	// Seed adds entries whose ids are not yet present.
	Seed(ctx context.Context, seed Seed) error
}
