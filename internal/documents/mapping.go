package documents

import (
	"net/url"
	"strconv"
	"strings"
)

// Filters contains optional filtering criteria for document listings.
// Search is a case-insensitive substring match against the law number, both
// titles, and the year. Nil fields are ignored.
type Filters struct {
	Search    string  `json:"search,omitempty"`
	SubjectID *string `json:"subject_id,omitempty"`
	Status    *Status `json:"status,omitempty"`
}

// Matches reports whether d satisfies every set criterion.
func (f Filters) Matches(d Document) bool {
	if f.Search != "" && !matchesSearch(d, f.Search) {
		return false
	}
	if f.SubjectID != nil && d.SubjectID != *f.SubjectID {
		return false
	}
	if f.Status != nil && d.Status != *f.Status {
		return false
	}
	return true
}

func matchesSearch(d Document, search string) bool {
	needle := strings.ToLower(search)
	for _, field := range []string{d.LawNumber, d.TitleAr, d.TitleEn, strconv.Itoa(d.Year)} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}

// FiltersFromQuery extracts filter values from URL query parameters.
func FiltersFromQuery(values url.Values) Filters {
	f := Filters{Search: strings.TrimSpace(values.Get("search"))}

	if s := values.Get("subject_id"); s != "" {
		f.SubjectID = &s
	}

	if s := values.Get("status"); s != "" {
		status := Status(s)
		f.Status = &status
	}

	return f
}
