package cases

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
)

// PageSize is the fixed number of rows on one page of the case table.
const PageSize = 10

// Query parameters understood by ListStateFromQuery.
const (
	ParamSearch     = "search"
	ParamCaseType   = "case_type"
	ParamStatus     = "status"
	ParamAssignedTo = "assigned_to"
	ParamSubject    = "subject"
	ParamPage       = "page"
	ParamSelected   = "selected"
)

// ListState is the state of the case list view: the active filters, the
// current page, and the bulk selection.
type ListState struct {
	Filters  Filters
	Page     int
	Selected Selection
}

func NewListState() ListState {
	return ListState{Page: 1}
}

// SetFilters replaces the filters and returns to the first page.
func (s *ListState) SetFilters(f Filters) {
	s.Filters = f
	s.Page = 1
}

// SetPage moves to page, leaving the filters untouched.
func (s *ListState) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.Page = page
}

// ClearFilters resets every criterion, including search.
func (s *ListState) ClearFilters() {
	s.SetFilters(Filters{})
}

// Listing is the result of applying a ListState to the case collection.
// Filtered holds the whole filtered result and Page its visible slice.
type Listing struct {
	Filtered []Case                      `json:"-"`
	Page     pagination.PageResult[Case] `json:"page"`
}

// NewListing filters all and slices the requested page of pageSize rows.
func NewListing(all []Case, f Filters, subjectOf SubjectLookup, page, pageSize int) Listing {
	filtered := Apply(all, f, subjectOf)
	return Listing{
		Filtered: filtered,
		Page:     pagination.Paginate(filtered, page, pageSize),
	}
}

// ListStateFromQuery decodes a ListState. Empty values and "all" leave a
// facet unset; a missing or malformed page means page 1.
func ListStateFromQuery(values url.Values) ListState {
	s := NewListState()

	s.Filters.Search = strings.TrimSpace(values.Get(ParamSearch))

	if v := facet(values, ParamCaseType); v != "" {
		t := Type(v)
		s.Filters.CaseType = &t
	}
	if v := facet(values, ParamStatus); v != "" {
		st := Status(v)
		s.Filters.Status = &st
	}
	if v := facet(values, ParamAssignedTo); v != "" {
		s.Filters.AssignedTo = &v
	}
	if v := facet(values, ParamSubject); v != "" {
		s.Filters.Subject = &v
	}

	if p, err := strconv.Atoi(values.Get(ParamPage)); err == nil {
		s.SetPage(p)
	}

	s.Selected = NewSelection(values[ParamSelected]...)
	return s
}

// Query encodes the state for ListStateFromQuery. Unset values are omitted.
func (s ListState) Query() url.Values {
	v := url.Values{}

	if s.Filters.Search != "" {
		v.Set(ParamSearch, s.Filters.Search)
	}
	if s.Filters.CaseType != nil {
		v.Set(ParamCaseType, string(*s.Filters.CaseType))
	}
	if s.Filters.Status != nil {
		v.Set(ParamStatus, string(*s.Filters.Status))
	}
	if s.Filters.AssignedTo != nil {
		v.Set(ParamAssignedTo, *s.Filters.AssignedTo)
	}
	if s.Filters.Subject != nil {
		v.Set(ParamSubject, *s.Filters.Subject)
	}
	if s.Page > 1 {
		v.Set(ParamPage, strconv.Itoa(s.Page))
	}
	for _, id := range s.Selected.IDs() {
		v.Add(ParamSelected, id)
	}

	return v
}

// Encode returns Query in URL-encoded form.
func (s ListState) Encode() string {
	return s.Query().Encode()
}

// WithPage returns a copy of s on page.
func (s ListState) WithPage(page int) ListState {
	s.Selected = NewSelection(s.Selected.IDs()...)
	s.SetPage(page)
	return s
}

func facet(values url.Values, key string) string {
	v := strings.TrimSpace(values.Get(key))
	if v == "all" {
		return ""
	}
	return v
}
