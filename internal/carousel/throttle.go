package carousel

import "time"

// DefaultCooldown is the throttle window applied to navigation commands
const DefaultCooldown = 500 * time.Millisecond

// Clock abstracts time so throttling can be driven by tests
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the wall clock
func SystemClock() Clock { return systemClock{} }

// Throttle drops invocations that arrive less than Cooldown after the last
// accepted one. Dropped invocations are not queued.
type Throttle struct {
	cooldown time.Duration
	clock    Clock
	last     time.Time
	accepted bool
}

// NewThrottle creates a throttle. A nil clock means the wall clock.
func NewThrottle(cooldown time.Duration, clock Clock) *Throttle {
	if clock == nil {
		clock = SystemClock()
	}
	if cooldown < 0 {
		cooldown = 0
	}
	return &Throttle{cooldown: cooldown, clock: clock}
}

// Allow reports whether an invocation at the current time is accepted, and
// records it if so.
func (t *Throttle) Allow() bool {
	now := t.clock.Now()
	if t.accepted && now.Sub(t.last) < t.cooldown {
		return false
	}
	t.last = now
	t.accepted = true
	return true
}

// Wrap returns fn gated by the throttle. The returned func reports whether
// fn was invoked.
func (t *Throttle) Wrap(fn func()) func() bool {
	return func() bool {
		if !t.Allow() {
			return false
		}
		fn()
		return true
	}
}

// Ready reports whether Allow would accept an invocation now, without
// recording one.
func (t *Throttle) Ready() bool {
	return !t.accepted || t.clock.Now().Sub(t.last) >= t.cooldown
}
