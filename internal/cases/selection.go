package cases

import "slices"

// Selection is an ordered set of case ids marked for a bulk action.
type Selection struct {
	ids []string
}

// NewSelection creates a Selection from ids, dropping blanks and duplicates.
func NewSelection(ids ...string) Selection {
	var s Selection
	for _, id := range ids {
		if id != "" && !s.Has(id) {
			s.ids = append(s.ids, id)
		}
	}
	return s
}

func (s Selection) Has(id string) bool {
	return slices.Contains(s.ids, id)
}

func (s Selection) Len() int {
	return len(s.ids)
}

// IDs returns the selected ids in selection order.
func (s Selection) IDs() []string {
	return slices.Clone(s.ids)
}

// Toggle adds id when absent and removes it when present.
func (s *Selection) Toggle(id string) {
	if i := slices.Index(s.ids, id); i >= 0 {
		s.ids = slices.Delete(s.ids, i, i+1)
		return
	}
	s.ids = append(s.ids, id)
}

// SelectAll replaces the selection with every id in filtered when checked,
// and clears it otherwise. filtered is the whole filtered result, not a page.
func (s *Selection) SelectAll(checked bool, filtered []Case) {
	if !checked {
		s.Clear()
		return
	}
	ids := make([]string, len(filtered))
	for i, c := range filtered {
		ids[i] = c.ID
	}
	s.ids = ids
}

func (s *Selection) Clear() {
	s.ids = nil
}

// AllSelected reports whether filtered is non-empty and the selection holds
// exactly its ids.
func (s Selection) AllSelected(filtered []Case) bool {
	if len(filtered) == 0 || len(s.ids) != len(filtered) {
		return false
	}
	for _, c := range filtered {
		if !s.Has(c.ID) {
			return false
		}
	}
	return true
}
