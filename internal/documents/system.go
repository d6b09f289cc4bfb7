package documents

import (
	"context"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

// System defines the public contract for document domain operations.
type System interface {
	Handler(maxUploadSize int64) *Handler

	// Search returns every document matching filters in catalog order.
	Search(ctx context.Context, filters Filters) ([]Document, error)

	List(
		ctx context.Context,
		page pagination.PageRequest,
		filters Filters,
	) (*pagination.PageResult[Document], error)

	Find(ctx context.Context, id string) (*Document, error)

	// Accept validates an upload and returns the draft it would register.
	// The catalog itself is not modified.
	Accept(ctx context.Context, cmd UploadCommand, maxSize int64) (*Document, error)
}
