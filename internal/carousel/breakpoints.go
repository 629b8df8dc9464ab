package carousel

// Breakpoints maps a minimum viewport width to the number of items shown per page.
type Breakpoints map[int]int

// Resolve returns the items-per-page of the largest threshold that is <= width.
// It returns 1 when no threshold applies.
func (b Breakpoints) Resolve(width int) int {
	perPage := 1
	best := -1
	for threshold, items := range b {
		if threshold <= width && threshold > best {
			best = threshold
			perPage = items
		}
	}
	if perPage < 1 {
		perPage = 1
	}
	return perPage
}

// Resolver turns viewport and container widths into layout values.
// A nil table leaves itemsPerPage at the fallback.
type Resolver struct {
	table    Breakpoints
	gap      int
	fallback int
}

// NewResolver creates a resolver for the given table
func NewResolver(table Breakpoints, gap, fallback int) *Resolver {
	if fallback < 1 {
		fallback = 1
	}
	return &Resolver{table: table, gap: gap, fallback: fallback}
}

// Active reports whether a breakpoint table is configured
func (r *Resolver) Active() bool {
	return len(r.table) > 0
}

// Resolve returns itemsPerPage for the viewport and the derived slide width
// for the container.
func (r *Resolver) Resolve(viewportWidth, containerWidth int) (perPage, slideWidth int) {
	perPage = r.fallback
	if r.Active() {
		perPage = r.table.Resolve(viewportWidth)
	}
	return perPage, SlideWidth(containerWidth, perPage, r.gap)
}

// SlideWidth computes containerWidth / perPage - gap, never below zero.
func SlideWidth(containerWidth, perPage, gap int) int {
	if perPage < 1 {
		perPage = 1
	}
	w := containerWidth/perPage - gap
	if w < 0 {
		return 0
	}
	return w
}
