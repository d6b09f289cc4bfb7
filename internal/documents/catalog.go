package documents

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

type catalog struct {
	items      []Document
	logger     *slog.Logger
	pagination pagination.Config
	now        func() time.Time
}

// New creates a document System over a read-only catalog.
func New(
	items []Document,
	logger *slog.Logger,
	pagination pagination.Config,
) System {
	return &catalog{
		items:      slices.Clone(items),
		logger:     logger.With("system", "documents"),
		pagination: pagination,
		now:        time.Now,
	}
}

func (c *catalog) Handler(maxUploadSize int64) *Handler {
	return NewHandler(c, c.logger, c.pagination, maxUploadSize)
}

func (c *catalog) Search(ctx context.Context, filters Filters) ([]Document, error) {
	out := make([]Document, 0, len(c.items))
	for _, d := range c.items {
		if filters.Matches(d) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (c *catalog) List(
	ctx context.Context,
	page pagination.PageRequest,
	filters Filters,
) (*pagination.PageResult[Document], error) {
	page.Normalize(c.pagination)
	if page.Search != nil && filters.Search == "" {
		filters.Search = *page.Search
	}

	docs, err := c.Search(ctx, filters)
	if err != nil {
		return nil, err
	}

	result := pagination.Paginate(docs, page.Page, page.PageSize)
	return &result, nil
}

func (c *catalog) Find(ctx context.Context, id string) (*Document, error) {
	i := slices.IndexFunc(c.items, func(d Document) bool { return d.ID == id })
	if i < 0 {
		return nil, ErrNotFound
	}
	d := c.items[i]
	return &d, nil
}

func (c *catalog) Accept(ctx context.Context, cmd UploadCommand, maxSize int64) (*Document, error) {
	if err := cmd.Validate(maxSize); err != nil {
		return nil, err
	}

	year, _ := cmd.year()
	id := uuid.NewString()

	doc := &Document{
		ID:           id,
		LawNumber:    strings.TrimSpace(cmd.LawNumber),
		Year:         year,
		Jurisdiction: strings.TrimSpace(cmd.Jurisdiction),
		TitleAr:      strings.TrimSpace(cmd.TitleAr),
		TitleEn:      strings.TrimSpace(cmd.TitleEn),
		Version:      1,
		UploadDate:   c.now(),
		SubjectID:    cmd.SubjectID,
		FilePath:     "/documents/" + id + ".pdf",
		Status:       StatusProcessing,
	}

	c.logger.Info(
		"document accepted for processing",
		"id", doc.ID,
		"law_number", doc.LawNumber,
		"year", doc.Year,
		"filename", cmd.Filename,
		"size", cmd.Size,
	)

	return doc, nil
}
