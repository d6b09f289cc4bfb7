package subjects

import (
	"context"
	"log/slog"
	"slices"
)

type catalog struct {
	items  []Subject
	logger *slog.Logger
}

// New creates a read-only subject System over items.
func New(items []Subject, logger *slog.Logger) System {
	return &catalog{
		items:  slices.Clone(items),
		logger: logger.With("system", "subjects"),
	}
}

func (c *catalog) Handler() *Handler {
	return NewHandler(c, c.logger)
}

func (c *catalog) List(ctx context.Context) ([]Subject, error) {
	return slices.Clone(c.items), nil
}

func (c *catalog) Find(ctx context.Context, id string) (*Subject, error) {
	i := slices.IndexFunc(c.items, func(s Subject) bool { return s.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	s := c.items[i]
	return &s, nil
}
