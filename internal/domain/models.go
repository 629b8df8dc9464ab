package domain

// Slide is one unit of carousel content
type Slide struct {
	Title  string
	Body   string
	Source string // file the slide was read from ("" for inline slides)
}

// Label returns the text used to identify the slide in compact views
func (s Slide) Label() string {
	if s.Title != "" {
		return s.Title
	}
	return s.Body
}

// Position describes where the carousel currently is
type Position struct {
	CurrentSlide int // offset into the display sequence
	ActiveIndex  int // real slide at the left edge
	TotalSlides  int
	ItemsPerPage int
	PrevDisabled bool
	NextDisabled bool
}
