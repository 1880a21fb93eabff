package state

import "github.com/rilysh/emubox/internal/menu"

// MoveUp moves the selection one entry up, clamped at the first entry.
func (s *State) MoveUp() bool {
	if s.Count == 0 || s.Selection == 0 {
		return false
	}
	s.Selection--
	s.syncPage()
	return true
}

// MoveDown moves the selection one entry down, clamped at the last
// entry.
func (s *State) MoveDown() bool {
	if s.Count == 0 || s.Selection >= s.Count-1 {
		return false
	}
	s.Selection++
	s.syncPage()
	return true
}

// NextPage advances to the following page and snaps the selection to
// its first entry. On the last page it does nothing.
func (s *State) NextPage() bool {
	if s.EndOfPage {
		return false
	}
	s.PageStart += menu.PageSize
	s.Selection = s.PageStart
	s.syncEndOfPage()
	return true
}

// PrevPage goes back one page and snaps the selection to its first
// entry. On the first page it does nothing.
func (s *State) PrevPage() bool {
	if s.PageStart == 0 {
		return false
	}
	s.PageStart -= menu.PageSize
	s.Selection = s.PageStart
	s.EndOfPage = false
	return true
}
