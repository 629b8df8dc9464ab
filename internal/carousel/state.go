package carousel

// State is the mutable position state owned by the engine.
type State struct {
	Offset        int  // left edge of the visible window in the display sequence
	Transitioning bool // true while an animated move is in flight
	PerPage       int  // items per page currently in effect
	SlideWidth    int
}

// Bounds are the read-only inputs the transitions are evaluated against.
type Bounds struct {
	Total    int
	Scroll   int
	Infinite bool
}

// InitialOffset is where a freshly built carousel starts
func InitialOffset(perPage int, infinite bool) int {
	if infinite {
		return perPage
	}
	return 0
}

// Advance moves the window forward by Scroll items.
// Finite carousels stop once the last page is visible.
func Advance(s *State, b Bounds) bool {
	if b.Total == 0 {
		return false
	}
	if !b.Infinite && s.Offset >= b.Total-s.PerPage {
		return false
	}
	s.Transitioning = true
	s.Offset += b.Scroll
	return true
}

// Retreat moves the window back by Scroll items, never below zero.
// The floor also applies in infinite mode.
func Retreat(s *State, b Bounds) bool {
	if b.Total == 0 {
		return false
	}
	next := s.Offset - b.Scroll
	if next < 0 {
		next = 0
	}
	if next == s.Offset {
		// nothing moves, so no transition will ever settle
		return false
	}
	s.Transitioning = true
	s.Offset = next
	return true
}

// Settle ends the in-flight transition. In infinite mode an offset that has
// drifted into a clone region is rebased onto the real item it shows.
// The rebase is applied with Transitioning already false.
func Settle(s *State, b Bounds) (rebased bool) {
	s.Transitioning = false
	if !b.Infinite || b.Total == 0 {
		return false
	}
	switch {
	case s.Offset >= b.Total+s.PerPage:
		s.Offset -= b.Total
		return true
	case s.Offset <= 0:
		s.Offset = b.Total
		return true
	}
	return false
}

// PrevDisabled reports whether retreat has nowhere to go
func PrevDisabled(s State, b Bounds) bool {
	if b.Infinite {
		return false
	}
	return s.Offset == 0
}

// NextDisabled reports whether advance has nowhere to go
func NextDisabled(s State, b Bounds) bool {
	if b.Infinite {
		return false
	}
	return s.Offset+s.PerPage >= b.Total
}
