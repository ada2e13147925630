// Package accordion implements the single-selection toggle shared by the FAQ
// list and the package picker: at most one item is open at a time.
package accordion

// Selection holds the id of the open item, if any. The zero value has
// nothing open.
type Selection struct {
	id   int
	open bool
}

// Toggle closes id if it is open, otherwise opens it and closes whatever was
// open before.
func (s *Selection) Toggle(id int) {
	if s.open && s.id == id {
		s.Reset()
		return
	}
	s.id = id
	s.open = true
}

// IsOpen reports whether id is the open item.
func (s Selection) IsOpen(id int) bool {
	return s.open && s.id == id
}

// Selected returns the open id and true, or 0 and false when collapsed.
func (s Selection) Selected() (int, bool) {
	if !s.open {
		return 0, false
	}
	return s.id, true
}

// Reset collapses everything.
func (s *Selection) Reset() {
	s.id = 0
	s.open = false
}
