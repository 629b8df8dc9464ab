package ui

import (
	"carousel/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// transitionSettledMsg fires when a slide move has finished animating.
// seq identifies the move; only the latest move may settle.
type transitionSettledMsg struct {
	id  string
	seq int
}

// autoPlayTickMsg drives auto-play. gen changes whenever the timer is
// restarted or stopped, which invalidates ticks already scheduled.
type autoPlayTickMsg struct {
	id  string
	gen int
}

// slidePagerMsg contains the result of showing a slide in the pager
type slidePagerMsg struct {
	title string
	err   error
}

// helpPagerMsg contains the result of a help pager command
type helpPagerMsg struct {
	err error
}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
