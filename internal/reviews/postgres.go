package reviews

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/query"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/repository"
)

var (
	commentProjection = query.
		NewProjectionMap("public", "case_comments", "c").
		Project("id", "ID").
		Project("case_id", "CaseID").
		Project("author", "Author").
		Project("role", "Role").
		Project("body", "Text").
		Project("created_at", "Timestamp")

	decisionProjection = query.
		NewProjectionMap("public", "case_decisions", "d").
		Project("id", "ID").
		Project("case_id", "CaseID").
		Project("decision", "Decision").
		Project("recommendation", "Recommendation").
		Project("submitted_by", "SubmittedBy").
		Project("submitted_at", "SubmittedAt")

	auditProjection = query.
		NewProjectionMap("public", "case_audit_entries", "a").
		Project("id", "ID").
		Project("case_id", "CaseID").
		Project("user_name", "UserName").
		Project("action", "Action").
		Project("created_at", "Timestamp").
		Project("details", "Details")
)

var journalErrors = repository.ErrorMap{
	NotFound:  ErrCaseNotFound,
	Duplicate: ErrDuplicate,
	Invalid:   ErrInvalidDecision,
}

const (
	insertComment = `INSERT INTO case_comments (id, case_id, author, role, body, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	seedComment = insertComment + ` ON CONFLICT (case_id, id) DO NOTHING`

	insertDecision = `INSERT INTO case_decisions (id, case_id, decision, recommendation, submitted_by, submitted_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	insertAudit = `INSERT INTO case_audit_entries (id, case_id, user_name, action, created_at, details)
VALUES ($1, $2, $3, $4, $5, $6)`

	seedAudit = insertAudit + ` ON CONFLICT (id) DO NOTHING`
)

type postgresStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresStore creates a Store backed by the review journal tables.
func NewPostgresStore(db *sql.DB, logger *slog.Logger) Store {
	return &postgresStore{
		db:     db,
		logger: logger.With("system", "reviews-postgres"),
	}
}

func (s *postgresStore) Comments(ctx context.Context, caseID string) ([]Comment, error) {
	q, args := query.
		NewBuilder(commentProjection, query.SortField{Field: "c.seq"}).
		WhereEquals("CaseID", caseID).
		Build()

	items, err := repository.QueryMany(ctx, s.db, q, args, scanComment)
	if err != nil {
		return nil, fmt.Errorf("query comments: %w", err)
	}
	return items, nil
}

func (s *postgresStore) Decisions(ctx context.Context, caseID string) ([]Decision, error) {
	q, args := query.
		NewBuilder(decisionProjection, query.SortField{Field: "d.seq"}).
		WhereEquals("CaseID", caseID).
		Build()

	items, err := repository.QueryMany(ctx, s.db, q, args, scanDecision)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}
	return items, nil
}

func (s *postgresStore) AuditLog(ctx context.Context, caseID string) ([]AuditEntry, error) {
	q, args := query.
		NewBuilder(auditProjection, query.SortField{Field: "a.seq"}).
		WhereEquals("CaseID", caseID).
		Build()

	items, err := repository.QueryMany(ctx, s.db, q, args, scanAudit)
	if err != nil {
		return nil, fmt.Errorf("query audit log: %w", err)
	}
	return items, nil
}

func (s *postgresStore) InsertComment(ctx context.Context, c Comment, audit AuditEntry) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(ctx, tx, insertComment,
			c.ID, c.CaseID, c.Author, c.Role, c.Text, c.Timestamp,
		); err != nil {
			return struct{}{}, journalErrors.Map(err)
		}
		return struct{}{}, execAudit(ctx, tx, insertAudit, audit)
	})
	if err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (s *postgresStore) InsertDecision(ctx context.Context, d Decision, audit AuditEntry) error {
	_, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (struct{}, error) {
		if err := repository.ExecExpectOne(ctx, tx, insertDecision,
			d.ID, d.CaseID, string(d.Decision), d.Recommendation, d.SubmittedBy, d.SubmittedAt,
		); err != nil {
			return struct{}{}, journalErrors.Map(err)
		}
		return struct{}{}, execAudit(ctx, tx, insertAudit, audit)
	})
	if err != nil {
		return fmt.Errorf("insert decision: %w", err)
	}
	return nil
}

func (s *postgresStore) Seed(ctx context.Context, seed Seed) error {
	inserted, err := repository.WithTx(ctx, s.db, func(tx *sql.Tx) (int64, error) {
		var n int64
		for _, c := range seed.Comments {
			res, err := tx.ExecContext(ctx, seedComment,
				c.ID, c.CaseID, c.Author, c.Role, c.Text, c.Timestamp,
			)
			if err != nil {
				return 0, err
			}
			n += repository.RowsAffected(res)
		}
		for _, a := range seed.Audit {
			res, err := tx.ExecContext(ctx, seedAudit,
				a.ID, a.CaseID, a.UserName, string(a.Action), a.Timestamp, nullable(a.Details),
			)
			if err != nil {
				return 0, err
			}
			n += repository.RowsAffected(res)
		}
		return n, nil
	})
	if err != nil {
		return fmt.Errorf("seed review journal: %w", err)
	}

	s.logger.Info("review journal seeded", "inserted", inserted)
	return nil
}

func execAudit(ctx context.Context, e repository.Executor, q string, a AuditEntry) error {
	err := repository.ExecExpectOne(ctx, e, q,
		a.ID, a.CaseID, a.UserName, string(a.Action), a.Timestamp, nullable(a.Details),
	)
	return journalErrors.Map(err)
}

func scanComment(s repository.Scanner) (Comment, error) {
	var c Comment
	err := s.Scan(&c.ID, &c.CaseID, &c.Author, &c.Role, &c.Text, &c.Timestamp)
	return c, err
}

func scanDecision(s repository.Scanner) (Decision, error) {
	var d Decision
	err := s.Scan(&d.ID, &d.CaseID, &d.Decision, &d.Recommendation, &d.SubmittedBy, &d.SubmittedAt)
	return d, err
}

func scanAudit(s repository.Scanner) (AuditEntry, error) {
	var (
		a       AuditEntry
		details sql.NullString
	)
	err := s.Scan(&a.ID, &a.CaseID, &a.UserName, &a.Action, &a.Timestamp, &details)
	a.Details = details.String
	return a, err
}

func nullable(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
