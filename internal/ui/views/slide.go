package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"carousel/internal/domain"
)

// SlideRenderer draws individual slide cards
type SlideRenderer struct {
	styles *Styles
}

// NewSlideRenderer creates a new slide renderer
func NewSlideRenderer(styles *Styles) *SlideRenderer {
	return &SlideRenderer{styles: styles}
}

// frame is the horizontal space taken by border and padding
const frame = 4

// RenderSlide draws one card occupying exactly width cells (border included)
// and height content lines. Cards too narrow for a frame collapse to a bar.
func (sr *SlideRenderer) RenderSlide(slide domain.Slide, width, height int, moving bool) string {
	if width <= 0 {
		return ""
	}
	if width <= frame {
		bar := strings.Repeat("▏", width)
		lines := make([]string, height+2)
		for i := range lines {
			lines[i] = bar
		}
		return sr.styles.Dim.Render(strings.Join(lines, "\n"))
	}

	inner := width - frame
	title := sr.styles.SlideTitle.Render(truncate(slide.Label(), inner))

	var body string
	if slide.Title != "" && slide.Body != "" {
		body = sr.styles.SlideBody.Render(wrapLines(slide.Body, inner, height-2))
	}

	content := title
	if body != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, title, "", body)
	}

	style := sr.styles.Slide
	if moving {
		style = sr.styles.SlideMoving
	}
	return style.
		Width(width - 2).
		Height(height).
		MaxHeight(height + 2).
		Render(content)
}

// truncate shortens s to at most n cells, marking the cut with an ellipsis
func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	r := []rune(s)
	for len(r) > 0 && lipgloss.Width(string(r))+1 > n {
		r = r[:len(r)-1]
	}
	return string(r) + "…"
}

// wrapLines truncates every line of body to width and keeps at most max lines
func wrapLines(body string, width, max int) string {
	if max <= 0 {
		return ""
	}
	lines := strings.Split(body, "\n")
	if len(lines) > max {
		lines = append(lines[:max-1], "…")
	}
	for i, l := range lines {
		lines[i] = truncate(l, width)
	}
	return strings.Join(lines, "\n")
}
