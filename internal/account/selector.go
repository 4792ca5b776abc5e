package account

// Selector owns the current account choice of a receive screen.
// The zero value has nothing selected.
type Selector struct {
	selected string
}

// NewSelector returns a selector seeded with a user-chosen account id.
// An empty id means no choice was made.
func NewSelector(id string) *Selector {
	return &Selector{selected: id}
}

// Selected returns the current account id
func (s *Selector) Selected() (string, bool) {
	return s.selected, s.selected != ""
}

// Select makes id the current account
func (s *Selector) Select(id string) {
	s.selected = id
}

// EnsureSelection makes sure the selection points at an account of reg.
// Nothing selected yet or a selection missing from reg (e.g. after a chain
// switch) falls back to the first account of reg. An empty registry leaves
// nothing selected.
func (s *Selector) EnsureSelection(reg *Registry) (string, bool) {
	if s.selected != "" {
		if _, ok := reg.Get(s.selected); ok {
			return s.selected, true
		}
		s.selected = ""
	}

	first, ok := reg.First()
	if !ok {
		return "", false
	}
	s.selected = first.ID
	return s.selected, true
}
