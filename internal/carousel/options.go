package carousel

import "time"

// Defaults applied to construction options
const (
	DefaultSlidesToShow   = 1
	DefaultSlidesToScroll = 1
	DefaultAutoPlaySpeed  = 5000 * time.Millisecond
	DefaultGap            = 10
)

// Options configures an Engine at construction time.
type Options struct {
	SlidesToShow   int
	SlidesToScroll int
	Responsive     Breakpoints // nil disables breakpoint resolution
	AutoPlay       bool
	AutoPlaySpeed  time.Duration
	Gap            int
	Infinite       bool

	// Cooldown is the throttle window for Advance and Retreat. Zero means DefaultCooldown.
	Cooldown time.Duration

	// RenormalizeOnBreakpoint keeps the same real item at the left edge when a
	// breakpoint changes items-per-page. Off by default: the offset is left as is.
	RenormalizeOnBreakpoint bool
}

// DefaultOptions returns the documented defaults
func DefaultOptions() Options {
	return Options{
		SlidesToShow:   DefaultSlidesToShow,
		SlidesToScroll: DefaultSlidesToScroll,
		AutoPlaySpeed:  DefaultAutoPlaySpeed,
		Gap:            DefaultGap,
		Cooldown:       DefaultCooldown,
	}
}

// Normalize replaces out-of-range values with usable ones.
func (o Options) Normalize() Options {
	if o.SlidesToShow < 1 {
		o.SlidesToShow = DefaultSlidesToShow
	}
	if o.SlidesToScroll < 1 {
		o.SlidesToScroll = DefaultSlidesToScroll
	}
	if o.AutoPlaySpeed <= 0 {
		o.AutoPlaySpeed = DefaultAutoPlaySpeed
	}
	if o.Gap < 0 {
		o.Gap = 0
	}
	if o.Cooldown <= 0 {
		o.Cooldown = DefaultCooldown
	}
	return o
}
