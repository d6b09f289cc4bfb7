package cases

import (
	"context"
	"log/slog"
	"slices"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

type catalog struct {
	items      []Case
	analysis   Analysis
	subjectOf  SubjectLookup
	logger     *slog.Logger
	pagination pagination.Config
}

// New creates a case System over a read-only catalog. subjectOf resolves
// the subject filter; analysis is composed into every detail.
func New(
	items []Case,
	analysis Analysis,
	subjectOf SubjectLookup,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &catalog{
		items:      slices.Clone(items),
		analysis:   analysis,
		subjectOf:  subjectOf,
		logger:     logger.With("system", "cases"),
		pagination: pagination,
	}
}

func (c *catalog) Handler() *Handler {
	return NewHandler(c, c.logger, c.pagination)
}

func (c *catalog) All(ctx context.Context) ([]Case, error) {
	return slices.Clone(c.items), nil
}

func (c *catalog) List(ctx context.Context, filters Filters, page, pageSize int) (*Listing, error) {
	listing := NewListing(c.items, filters, c.subjectOf, page, pageSize)
	return &listing, nil
}

func (c *catalog) Find(ctx context.Context, id string) (*Case, error) {
	i := slices.IndexFunc(c.items, func(item Case) bool { return item.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	found := c.items[i]
	return &found, nil
}

func (c *catalog) Detail(ctx context.Context, id string) (*Detail, error) {
	found, err := c.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	detail := Compose(*found, c.analysis)
	return &detail, nil
}

func (c *catalog) Assign(ctx context.Context, ids []string) error {
	c.logger.Info("bulk assign requested", "cases", ids, "count", len(ids))
	return nil
}
