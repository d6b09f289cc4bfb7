// Package subjects implements the legal subject taxonomy. Subjects form a
// shallow hierarchy through ParentID, though nothing traverses it.
package subjects

type Subject struct {
	ID          string `json:"id"`
	NameAr      string `json:"name_ar"`
	NameEn      string `json:"name_en"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color"`
	ParentID    string `json:"parent_id,omitempty"`
}

// IsChild reports whether the subject sits under a parent category.
func (s Subject) IsChild() bool {
	return s.ParentID != ""
}

// Name returns the Arabic name when arabic is set, the English name otherwise.
func (s Subject) Name(arabic bool) string {
	if arabic {
		return s.NameAr
	}
	return s.NameEn
}
