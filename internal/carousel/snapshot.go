package carousel

// Snapshot is the state published to the host every time the offset changes.
// The Advance and Retreat funcs are the throttled commands of the engine that
// produced it.
type Snapshot struct {
	Advance      func() bool
	Retreat      func() bool
	CurrentSlide int
	TotalSlides  int
	ItemsPerPage int
	PrevDisabled bool
	NextDisabled bool
}

// Subscriber receives snapshots. It is optional.
type Subscriber func(Snapshot)

func (e *Engine) snapshot() Snapshot {
	return Snapshot{
		Advance:      e.Advance,
		Retreat:      e.Retreat,
		CurrentSlide: e.state.Offset,
		TotalSlides:  e.bounds.Total,
		ItemsPerPage: e.state.PerPage,
		PrevDisabled: PrevDisabled(e.state, e.bounds),
		NextDisabled: NextDisabled(e.state, e.bounds),
	}
}

func (e *Engine) publish() {
	if e.subscriber == nil {
		return
	}
	e.subscriber(e.snapshot())
}
