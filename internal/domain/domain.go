// Package domain constructs the domain systems shared by the JSON API, the
// dashboard, and the command line.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/documents"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/infrastructure"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/reviews"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/users"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

// Domain holds all domain systems.
type Domain struct {
	Users     users.System
	Subjects  subjects.System
	Documents documents.System
	Cases     cases.System
	Reviews   reviews.System
}

// New builds the catalogs from the bundled records and opens the review
// journal. With a database the journal is persistent and seeded once startup
// begins; otherwise it lives in memory and is seeded immediately.
func New(infra *infrastructure.Infrastructure, page pagination.Config) (*Domain, error) {
	logger := infra.Logger

	if infra.Database == nil {
		return NewInMemory(logger, page)
	}

	store := reviews.NewPostgresStore(infra.Database.Connection(), logger)
	seed := mockdata.ReviewSeed(mockdata.Cases())

	infra.Lifecycle.OnStartup(func() {
		if err := store.Seed(infra.Lifecycle.Context(), seed); err != nil {
			logger.Error("review journal seed failed", "error", err)
		}
	})

	return build(store, logger, page), nil
}

// NewInMemory builds a Domain whose journal lives in process memory.
func NewInMemory(logger *slog.Logger, page pagination.Config) (*Domain, error) {
	store := reviews.NewMemoryStore()
	if err := store.Seed(context.Background(), mockdata.ReviewSeed(mockdata.Cases())); err != nil {
		return nil, fmt.Errorf("seed review journal: %w", err)
	}
	return build(store, logger, page), nil
}

func build(store reviews.Store, logger *slog.Logger, page pagination.Config) *Domain {
	docs := mockdata.Documents()
	caseSys := cases.New(mockdata.Cases(), mockdata.Analysis(), SubjectLookup(docs), logger, page)

	return &Domain{
		Users:     users.New(mockdata.Users(), logger),
		Subjects:  subjects.New(mockdata.Subjects(), logger),
		Documents: documents.New(docs, logger, page),
		Cases:     caseSys,
		Reviews:   reviews.New(store, caseSys, logger),
	}
}

// SubjectLookup resolves a document id to its subject through docs.
func SubjectLookup(docs []documents.Document) cases.SubjectLookup {
	index := make(map[string]string, len(docs))
	for _, d := range docs {
		index[d.ID] = d.SubjectID
	}
	return func(documentID string) (string, bool) {
		s, ok := index[documentID]
		return s, ok
	}
}
