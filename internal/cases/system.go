package cases

import "context"

// System defines the public contract for case domain operations.
type System interface {
	Handler() *Handler

	// All returns every case in catalog order.
	All(ctx context.Context) ([]Case, error)

	// List filters the catalog and slices one page of pageSize rows.
	List(ctx context.Context, filters Filters, page, pageSize int) (*Listing, error)

	// Find looks a case up by id, returning ErrNotFound on a miss.
	Find(ctx context.Context, id string) (*Case, error)

	// Detail finds a case and composes it with the analysis content.
	Detail(ctx context.Context, id string) (*Detail, error)

	// Assign records a bulk assignment request. It changes nothing.
	Assign(ctx context.Context, ids []string) error
}

// Page lists the filters and page held in state at the table page size.
func Page(ctx context.Context, sys System, state ListState) (*Listing, error) {
	return sys.List(ctx, state.Filters, state.Page, PageSize)
}
