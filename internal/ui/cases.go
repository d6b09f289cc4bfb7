package ui

import (
	"net/http"
	"net/url"

	"github.com/mohannadkhirallah/qatar-law-harmony/internal/cases"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/subjects"
	"github.com/mohannadkhirallah/qatar-law-harmony/internal/users"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/pagination"
	"github.com/mohannadkhirallah/qatar-law-harmony/pkg/web"
)

type listRow struct {
	caseRow
	Selected bool
}

type casesData struct {
	State       cases.ListState
	Encoded     string
	ClearURL    string
	Page        pagination.PageResult[cases.Case]
	Rows        []listRow
	Pages       []int
	AllSelected bool

	Types     []cases.Type
	Statuses  []cases.Status
	Subjects  []subjects.Subject
	Reviewers []users.User

	Type       string
	Status     string
	AssignedTo string
	Subject    string
}

func (u *UI) cases(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state := cases.ListStateFromQuery(r.URL.Query())

	listing, err := cases.Page(ctx, u.dom.Cases, state)
	if err != nil {
		u.serverError(w, err)
		return
	}

	subs, err := u.dom.Subjects.List(ctx)
	if err != nil {
		u.serverError(w, err)
		return
	}

	reviewers, err := u.dom.Users.List(ctx)
	if err != nil {
		u.serverError(w, err)
		return
	}

	cleared := state
	cleared.ClearFilters()

	data := casesData{
		State:       state,
		Encoded:     state.Encode(),
		ClearURL:    pageURL(cleared, 1),
		Page:        listing.Page,
		Rows:        make([]listRow, 0, len(listing.Page.Data)),
		AllSelected: state.Selected.AllSelected(listing.Filtered),
		Types:       cases.Types,
		Statuses:    cases.Statuses,
		Subjects:    subs,
		Reviewers:   reviewers,
		Type:        deref(state.Filters.CaseType),
		Status:      deref(state.Filters.Status),
		AssignedTo:  deref(state.Filters.AssignedTo),
		Subject:     deref(state.Filters.Subject),
	}

	for _, c := range listing.Page.Data {
		data.Rows = append(data.Rows, listRow{
			caseRow:  u.row(r, c),
			Selected: state.Selected.Has(c.ID),
		})
	}

	for i := 1; i <= listing.Page.TotalPages; i++ {
		data.Pages = append(data.Pages, i)
	}

	u.render(w, r, http.StatusOK, casesView, data)
}

// selectCases applies one selection change to the list state carried in the
// form and returns to the list.
func (u *UI) selectCases(w http.ResponseWriter, r *http.Request) {
	state, err := formState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	switch {
	case r.PostForm.Has("toggle"):
		state.Selected.Toggle(r.PostForm.Get("toggle"))
	case r.PostForm.Has("select_all"):
		checked := r.PostForm.Get("select_all") == "true"
		listing, err := u.dom.Cases.List(r.Context(), state.Filters, 1, cases.PageSize)
		if err != nil {
			u.serverError(w, err)
			return
		}
		state.Selected.SelectAll(checked, listing.Filtered)
	case r.PostForm.Has("clear"):
		state.Selected.Clear()
	}

	http.Redirect(w, r, pageURL(state, state.Page), http.StatusSeeOther)
}

func (u *UI) assignCases(w http.ResponseWriter, r *http.Request) {
	state, err := formState(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := u.dom.Cases.Assign(r.Context(), state.Selected.IDs()); err != nil {
		u.serverError(w, err)
		return
	}

	u.flash(w, r, web.FlashSuccess, "assignRecorded")
	http.Redirect(w, r, pageURL(state, state.Page), http.StatusSeeOther)
}

// formState decodes the list state from the hidden "state" form field.
func formState(r *http.Request) (cases.ListState, error) {
	if err := r.ParseForm(); err != nil {
		return cases.ListState{}, err
	}
	values, err := url.ParseQuery(r.PostForm.Get("state"))
	if err != nil {
		return cases.ListState{}, err
	}
	return cases.ListStateFromQuery(values), nil
}

func deref[T ~string](v *T) string {
	if v == nil {
		return ""
	}
	return string(*v)
}
