package cases

import (
	"slices"
	"strings"
)

// SubjectLookup resolves the subject category of a document.
type SubjectLookup func(documentID string) (subjectID string, ok bool)

// Filters holds the case list criteria. Search is a case-insensitive
// substring match on the case id or any of its document ids. Each non-nil
// facet must equal the corresponding case field; Subject is compared with
// the subjects of the case's documents.
type Filters struct {
	Search     string  `json:"search,omitempty"`
	CaseType   *Type   `json:"case_type,omitempty"`
	Status     *Status `json:"status,omitempty"`
	AssignedTo *string `json:"assigned_to,omitempty"`
	Subject    *string `json:"subject,omitempty"`
}

// Matches reports whether c satisfies every active criterion.
func (f Filters) Matches(c Case, subjectOf SubjectLookup) bool {
	if f.Search != "" && !matchesSearch(c, f.Search) {
		return false
	}
	if f.CaseType != nil && c.CaseType != *f.CaseType {
		return false
	}
	if f.Status != nil && c.Status != *f.Status {
		return false
	}
	if f.AssignedTo != nil && c.AssignedTo != *f.AssignedTo {
		return false
	}
	if f.Subject != nil && !hasSubject(c, *f.Subject, subjectOf) {
		return false
	}
	return true
}

// ActiveCount returns the number of set facets. Search is not counted.
func (f Filters) ActiveCount() int {
	n := 0
	if f.CaseType != nil {
		n++
	}
	if f.Status != nil {
		n++
	}
	if f.AssignedTo != nil {
		n++
	}
	if f.Subject != nil {
		n++
	}
	return n
}

// IsZero reports whether no criterion is set.
func (f Filters) IsZero() bool {
	return f.Search == "" && f.ActiveCount() == 0
}

// Apply returns the cases in all that match f, in their original order.
func Apply(all []Case, f Filters, subjectOf SubjectLookup) []Case {
	out := make([]Case, 0, len(all))
	for _, c := range all {
		if f.Matches(c, subjectOf) {
			out = append(out, c)
		}
	}
	return out
}

func matchesSearch(c Case, search string) bool {
	needle := strings.ToLower(search)
	if strings.Contains(strings.ToLower(c.ID), needle) {
		return true
	}
	return slices.ContainsFunc(c.DocumentIDs, func(id string) bool {
		return strings.Contains(strings.ToLower(id), needle)
	})
}

func hasSubject(c Case, subject string, subjectOf SubjectLookup) bool {
	if subjectOf == nil {
		return false
	}
	for _, id := range c.DocumentIDs {
		if s, ok := subjectOf(id); ok && s == subject {
			return true
		}
	}
	return false
}
