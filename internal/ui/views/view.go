package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/lipgloss"

	"carousel/internal/domain"
)

// ChromeWidth is the horizontal space around the slide strip: the main
// container padding plus the two navigation buttons.
const ChromeWidth = 4 + 2*3

// ContainerWidth returns the width available to slides in a terminal
func ContainerWidth(termWidth int) int {
	if termWidth <= ChromeWidth {
		return 0
	}
	return termWidth - ChromeWidth
}

// SlideHeight returns the number of content lines a card gets
func SlideHeight(termHeight int) int {
	h := termHeight - 14
	if h < 3 {
		h = 3
	}
	if h > 12 {
		h = 12
	}
	return h
}

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width           int
	Height          int
	Title           string
	Slides          []domain.Slide // visible window, left to right
	SlideWidth      int
	Gap             int
	Moving          bool
	Position        domain.Position
	ShowDots        bool
	ShowCounter     bool
	AutoPlay        bool
	AutoPlayRunning bool
	StatusMessage   string
	ShowHelp        bool
	HelpModel       help.Model
	Keys            help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	slideRender *SlideRenderer
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:      styles,
		slideRender: NewSlideRenderer(styles),
		popupRender: NewPopupRenderer(styles),
	}
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	if state.ShowHelp {
		return r.popupRender.RenderPopup(r.renderHelpContent(state), state.Height, state.Width, r.styles.HelpBox)
	}

	content := &strings.Builder{}
	content.WriteString(r.renderTitleLine(state))
	content.WriteString("\n")

	if state.Position.TotalSlides == 0 {
		content.WriteString(r.styles.Dim.Render("No slides."))
	} else {
		content.WriteString(r.renderStrip(state))
		if ind := r.renderIndicators(state); ind != "" {
			content.WriteString("\n\n")
			content.WriteString(ind)
		}
	}

	if state.StatusMessage != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
	}

	helpText := ""
	if state.Keys != nil {
		helpText = state.HelpModel.ShortHelpView(state.Keys.ShortHelp())
	} else {
		helpText = r.styles.Help.Render("Press ? for help")
	}

	// push the help line to the bottom
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := state.Height - 2
	if availableLines <= 0 {
		availableLines = 22
	}
	if pad := availableLines - currentLines - 1; pad > 0 {
		content.WriteString(strings.Repeat("\n", pad))
	}
	content.WriteString("\n")
	content.WriteString(helpText)

	mainStyle := r.styles.Main
	if state.Height > 0 {
		mainStyle = mainStyle.MaxHeight(state.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitleLine renders the title with the auto-play indicator right-aligned
func (r *Renderer) renderTitleLine(state ViewState) string {
	logo := r.styles.Title.Render(state.Title)
	if !state.AutoPlay {
		return logo
	}

	right := r.styles.Paused.Render("⏸ paused")
	if state.AutoPlayRunning {
		right = r.styles.AutoPlay.Render("▶ auto")
	}

	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, strings.Repeat(" ", padding), right)
}

// renderStrip renders the visible slides between the two buttons
func (r *Renderer) renderStrip(state ViewState) string {
	height := SlideHeight(state.Height)
	margin := state.Gap / 2

	cards := make([]string, 0, len(state.Slides)+2)
	cards = append(cards, r.renderButton("‹", state.Position.PrevDisabled))
	for _, s := range state.Slides {
		card := r.slideRender.RenderSlide(s, state.SlideWidth, height, state.Moving)
		if card == "" {
			continue
		}
		cards = append(cards, lipgloss.NewStyle().Margin(0, margin).Render(card))
	}
	cards = append(cards, r.renderButton("›", state.Position.NextDisabled))

	return lipgloss.JoinHorizontal(lipgloss.Center, cards...)
}

func (r *Renderer) renderButton(label string, disabled bool) string {
	if disabled {
		return r.styles.ButtonDisabled.Render(label)
	}
	return r.styles.Button.Render(label)
}

// renderIndicators renders the dots and the n/total counter
func (r *Renderer) renderIndicators(state ViewState) string {
	var parts []string
	total := state.Position.TotalSlides

	// dots only while they fit on one line
	if state.ShowDots && total*2 < ContainerWidth(state.Width) {
		p := paginator.New()
		p.Type = paginator.Dots
		p.PerPage = 1
		p.SetTotalPages(total)
		p.Page = state.Position.ActiveIndex
		p.ActiveDot = r.styles.DotActive.Render("•")
		p.InactiveDot = r.styles.DotInactive.Render("•")
		parts = append(parts, p.View())
	}
	if state.ShowCounter {
		parts = append(parts, r.styles.Counter.Render(fmt.Sprintf("%d/%d", state.Position.ActiveIndex+1, total)))
	}
	return strings.Join(parts, "  ")
}

// renderHelpContent renders the full key help for the popup
func (r *Renderer) renderHelpContent(state ViewState) string {
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(state.Title + " help"))
	b.WriteString("\n")
	if state.Keys != nil {
		b.WriteString(state.HelpModel.FullHelpView(state.Keys.FullHelp()))
	}
	b.WriteString("\n\n")
	b.WriteString(r.styles.Dim.Render("press any key to close"))
	return b.String()
}
