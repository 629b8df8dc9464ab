// Package carousel implements the position engine of a looping slide carousel:
// breakpoint resolution, clone padding for infinite looping, the offset state
// machine and throttled navigation commands. It knows nothing about rendering.
package carousel

import (
	"log"
)

// Engine owns the carousel position for one set of items.
// It is not safe for concurrent use; the host delivers triggers one at a time.
type Engine struct {
	opts       Options
	bounds     Bounds
	state      State
	resolver   *Resolver
	nextGate   *Throttle
	prevGate   *Throttle
	subscriber Subscriber
	closed     bool
}

// New creates an engine for total items and publishes the initial snapshot.
// subscriber and clock may be nil.
func New(total int, opts Options, subscriber Subscriber, clock Clock) *Engine {
	opts = opts.Normalize()
	if total < 0 {
		total = 0
	}

	e := &Engine{
		opts: opts,
		bounds: Bounds{
			Total:    total,
			Scroll:   opts.SlidesToScroll,
			Infinite: opts.Infinite,
		},
		resolver:   NewResolver(opts.Responsive, opts.Gap, opts.SlidesToShow),
		nextGate:   NewThrottle(opts.Cooldown, clock),
		prevGate:   NewThrottle(opts.Cooldown, clock),
		subscriber: subscriber,
	}
	e.state = State{
		Offset:  InitialOffset(opts.SlidesToShow, opts.Infinite),
		PerPage: opts.SlidesToShow,
	}

	e.publish()
	return e
}

// Advance is the throttled forward command. It reports whether the throttle
// accepted it; an accepted command may still be a no-op at the end of a
// finite carousel.
func (e *Engine) Advance() bool {
	if e.closed {
		return false
	}
	if !e.nextGate.Allow() {
		log.Printf("carousel: advance dropped by throttle")
		return false
	}
	e.step(Advance)
	return true
}

// Retreat is the throttled backward command
func (e *Engine) Retreat() bool {
	if e.closed {
		return false
	}
	if !e.prevGate.Allow() {
		log.Printf("carousel: retreat dropped by throttle")
		return false
	}
	e.step(Retreat)
	return true
}

// CanAdvance reports whether Advance would be accepted right now
func (e *Engine) CanAdvance() bool {
	return !e.closed && e.nextGate.Ready()
}

// CanRetreat reports whether Retreat would be accepted right now
func (e *Engine) CanRetreat() bool {
	return !e.closed && e.prevGate.Ready()
}

// TransitionSettled is called when the animated move has finished.
// It reports whether the offset was rebased out of a clone region.
func (e *Engine) TransitionSettled() bool {
	if e.closed {
		return false
	}
	before := e.state.Offset
	rebased := Settle(&e.state, e.bounds)
	if rebased {
		log.Printf("carousel: rebased offset %d -> %d", before, e.state.Offset)
		e.publish()
	}
	return rebased
}

// Resize re-resolves items-per-page for the viewport width and recomputes
// the slide width for the container. It reports whether items-per-page changed.
func (e *Engine) Resize(viewportWidth, containerWidth int) bool {
	if e.closed {
		return false
	}
	perPage, slideWidth := e.resolver.Resolve(viewportWidth, containerWidth)
	e.state.SlideWidth = slideWidth
	if perPage == e.state.PerPage {
		return false
	}

	old := e.state.PerPage
	e.state.PerPage = perPage
	log.Printf("carousel: breakpoint at width %d, items per page %d -> %d", viewportWidth, old, perPage)

	if e.opts.RenormalizeOnBreakpoint {
		e.renormalize(old)
	}
	e.publish()
	return true
}

// renormalize keeps the same real item at the left edge after a change of
// items-per-page.
func (e *Engine) renormalize(oldPerPage int) {
	total := e.bounds.Total
	if total == 0 {
		return
	}
	if e.bounds.Infinite {
		idx := RealIndex(e.state.Offset, total, oldPerPage, true)
		e.state.Offset = idx + e.state.PerPage
		return
	}
	maxOffset := total - e.state.PerPage
	if maxOffset < 0 {
		maxOffset = 0
	}
	e.state.Offset = clamp(e.state.Offset, 0, maxOffset)
}

func (e *Engine) step(transition func(*State, Bounds) bool) {
	before := e.state.Offset
	transition(&e.state, e.bounds)
	if e.state.Offset != before {
		e.publish()
	}
}

// Close tears the engine down. Later commands and notifications are ignored.
func (e *Engine) Close() {
	e.closed = true
	e.subscriber = nil
}

// Closed reports whether Close has been called
func (e *Engine) Closed() bool {
	return e.closed
}

// Snapshot returns the current snapshot without publishing it
func (e *Engine) Snapshot() Snapshot {
	return e.snapshot()
}

// State returns a copy of the position state
func (e *Engine) State() State {
	return e.state
}

// Options returns the normalized construction options
func (e *Engine) Options() Options {
	return e.opts
}

// DisplayLength is the length of the sequence the host should render
func (e *Engine) DisplayLength() int {
	return DisplayLength(e.bounds.Total, e.state.PerPage, e.bounds.Infinite)
}

// Window returns the half-open range of the display sequence that is visible.
func (e *Engine) Window() (start, end int) {
	n := e.DisplayLength()
	start = clamp(e.state.Offset, 0, n)
	end = clamp(e.state.Offset+e.state.PerPage, start, n)
	return start, end
}

// ActiveIndex returns the real item shown at the left edge of the window
func (e *Engine) ActiveIndex() int {
	return RealIndex(e.state.Offset, e.bounds.Total, e.state.PerPage, e.bounds.Infinite)
}

// Visible returns the visible part of display, which must have been built
// with BuildDisplay for the engine's current items-per-page.
func Visible[T any](e *Engine, display []T) []T {
	start, end := e.Window()
	if end > len(display) {
		end = len(display)
	}
	if start > end {
		start = end
	}
	return display[start:end]
}
