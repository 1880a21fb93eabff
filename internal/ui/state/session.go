package state

import "github.com/rilysh/emubox/internal/menu"

// State tracks the live position of one menu session: which entry is
// selected and which page of the entry set is on screen.
type State struct {
	Count     int
	Selection int
	PageStart int
	EndOfPage bool
}

// New returns the opening state for a session over count entries: first
// entry selected, first page shown.
func New(count int) *State {
	if count < 0 {
		count = 0
	}
	s := &State{Count: count}
	s.syncEndOfPage()
	return s
}

// Visible returns how many entries the current page holds.
func (s *State) Visible() int {
	remaining := s.Count - s.PageStart
	if remaining < 0 {
		return 0
	}
	if remaining > menu.PageSize {
		return menu.PageSize
	}
	return remaining
}

// syncPage snaps the page to the selection so the highlighted entry is
// always on screen.
func (s *State) syncPage() {
	s.PageStart = (s.Selection / menu.PageSize) * menu.PageSize
	s.syncEndOfPage()
}

// syncEndOfPage marks the page terminal when no entry exists past its
// last slot, including the case of a full final page.
func (s *State) syncEndOfPage() {
	s.EndOfPage = s.PageStart+menu.PageSize >= s.Count
}
