package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title          lipgloss.Style
	Dim            lipgloss.Style
	Status         lipgloss.Style
	Help           lipgloss.Style
	Main           lipgloss.Style
	Slide          lipgloss.Style
	SlideMoving    lipgloss.Style
	SlideTitle     lipgloss.Style
	SlideBody      lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Counter        lipgloss.Style
	DotActive      lipgloss.Style
	DotInactive    lipgloss.Style
	AutoPlay       lipgloss.Style
	Paused         lipgloss.Style
	HelpBox        lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			MarginTop(1),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2).
			MaxHeight(100), // adjusted per render
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("241")).
			Padding(0, 1),
		SlideMoving: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("99")).
			Padding(0, 1),
		SlideTitle:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226")),
		SlideBody:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button:         lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).Padding(0, 1),
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Padding(0, 1),
		Counter:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		DotActive:      lipgloss.NewStyle().Foreground(lipgloss.Color("99")),
		DotInactive:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		AutoPlay:       lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Paused:         lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // yellow
		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
	}
}
