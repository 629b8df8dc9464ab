package state

import (
	"carousel/internal/carousel"
	"carousel/internal/domain"
)

// AppState contains all the application state
type AppState struct {
	// Slide data
	Slides  []domain.Slide // real slides in order
	Display []domain.Slide // slides including the wrap-around clones

	// Carousel position mirrored from the latest engine snapshot
	Position domain.Position
	Moving   bool // a transition is in flight

	// Timers. A message carrying an outdated sequence number is ignored.
	MoveSeq         int
	AutoPlayGen     int
	AutoPlayRunning bool

	// UI state
	Width         int
	Height        int
	SlideWidth    int
	Mounted       bool
	Ready         bool // first window size received
	ShowHelp      bool
	InPager       bool
	StatusMessage string
}

// NewAppState creates a new application state
func NewAppState(slides []domain.Slide) *AppState {
	return &AppState{
		Slides:   slides,
		Position: domain.Position{TotalSlides: len(slides)},
	}
}

// RebuildDisplay recomputes the display sequence for a page size
func (s *AppState) RebuildDisplay(perPage int, infinite bool) {
	s.Display = carousel.BuildDisplay(s.Slides, perPage, infinite)
}

// ApplySnapshot mirrors an engine snapshot into the state
func (s *AppState) ApplySnapshot(pos domain.Position) {
	s.Position = pos
}

// CurrentSlide returns the real slide at the left edge, if any
func (s *AppState) CurrentSlide() (domain.Slide, bool) {
	i := s.Position.ActiveIndex
	if i < 0 || i >= len(s.Slides) {
		return domain.Slide{}, false
	}
	return s.Slides[i], true
}
