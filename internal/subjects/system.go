package subjects

import "context"

// System defines the public contract for subject lookups.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]Subject, error)
	Find(ctx context.Context, id string) (*Subject, error)
}
