package users

import (
	"context"
	"log/slog"
	"slices"
)

type catalog struct {
	items  []User
	logger *slog.Logger
}

// New creates a read-only user System over items.
func New(items []User, logger *slog.Logger) System {
	return &catalog{
		items:  slices.Clone(items),
		logger: logger.With("system", "users"),
	}
}

func (c *catalog) Handler() *Handler {
	return NewHandler(c, c.logger)
}

func (c *catalog) List(ctx context.Context) ([]User, error) {
	return slices.Clone(c.items), nil
}

func (c *catalog) Find(ctx context.Context, id string) (*User, error) {
	i := slices.IndexFunc(c.items, func(u User) bool { return u.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	u := c.items[i]
	return &u, nil
}
