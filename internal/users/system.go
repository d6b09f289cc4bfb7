package users

import "context"

// System defines the public contract for user lookups.
type System interface {
	Handler() *Handler

	List(ctx context.Context) ([]User, error)
	Find(ctx context.Context, id string) (*User, error)
}
