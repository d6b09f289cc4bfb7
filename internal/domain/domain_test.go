package domain_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/domain"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/mockdata"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/reviews"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

func TestSubjectLookup(t *testing.T) {
	lookup := domain.SubjectLookup(mockdata.Documents())

	s, ok := lookup("2")
	require.True(t, ok)
	assert.Equal(t, "5", s)

	_, ok = lookup("99")
	assert.False(t, ok)
}

func TestNewInMemorySharesJournal(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	d, err := domain.NewInMemory(logger, pagination.Config{DefaultPageSize: 10, MaxPageSize: 100})
	require.NoError(t, err)

	ctx := context.Background()
	_, err = d.Reviews.AddComment(ctx, reviews.CommentCommand{CaseID: "2", Text: "Overlap confirmed."})
	require.NoError(t, err)

	comments, err := d.Reviews.Comments(ctx, "2")
	require.NoError(t, err)
	assert.Len(t, comments, 2)

	all, err := d.Cases.All(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
