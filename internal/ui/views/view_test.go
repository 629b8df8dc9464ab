package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"carousel/internal/domain"
)

func baseState() ViewState {
	return ViewState{
		Width:       80,
		Height:      24,
		Title:       "deck",
		Slides:      []domain.Slide{{Title: "Alpha", Body: "first"}, {Title: "Bravo"}},
		SlideWidth:  30,
		Gap:         4,
		Position:    domain.Position{ActiveIndex: 1, TotalSlides: 5, ItemsPerPage: 2},
		ShowDots:    true,
		ShowCounter: true,
	}
}

func TestRenderShowsVisibleSlidesAndCounter(t *testing.T) {
	out := StripANSI(NewRenderer().Render(baseState()))

	assert.Contains(t, out, "deck")
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "Bravo")
	assert.Contains(t, out, "2/5")
	assert.Contains(t, out, "‹")
	assert.Contains(t, out, "›")
	assert.Contains(t, out, "Press ? for help")
}

func TestRenderEmpty(t *testing.T) {
	s := baseState()
	s.Slides = nil
	s.Position = domain.Position{}

	out := StripANSI(NewRenderer().Render(s))
	assert.Contains(t, out, "No slides.")
	assert.NotContains(t, out, "0/0")
}

func TestRenderAutoPlayIndicator(t *testing.T) {
	s := baseState()
	s.AutoPlay = true
	s.AutoPlayRunning = true
	assert.Contains(t, StripANSI(NewRenderer().Render(s)), "▶ auto")

	s.AutoPlayRunning = false
	assert.Contains(t, StripANSI(NewRenderer().Render(s)), "⏸ paused")
}

func TestRenderFitsHeight(t *testing.T) {
	out := NewRenderer().Render(baseState())
	assert.LessOrEqual(t, lipgloss.Height(out), 24)
}

func TestSlideCardWidth(t *testing.T) {
	sr := NewSlideRenderer(NewStyles())

	card := sr.RenderSlide(domain.Slide{Title: "A very long slide title that will not fit"}, 20, 3, false)
	for _, line := range strings.Split(card, "\n") {
		assert.Equal(t, 20, lipgloss.Width(line))
	}
	assert.Contains(t, StripANSI(card), "…")

	assert.Empty(t, sr.RenderSlide(domain.Slide{Title: "x"}, 0, 3, false))
	assert.Equal(t, 2, lipgloss.Width(sr.RenderSlide(domain.Slide{Title: "x"}, 2, 3, false)))
}

func TestContainerWidth(t *testing.T) {
	assert.Equal(t, 70, ContainerWidth(80))
	assert.Equal(t, 0, ContainerWidth(5))
	assert.Equal(t, 3, SlideHeight(10))
	assert.Equal(t, 12, SlideHeight(100))
}
