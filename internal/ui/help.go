package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"carousel/internal/ui/input"
)

// HelpRenderer handles help content rendering
type HelpRenderer struct{}

// NewHelpRenderer creates a new help renderer
func NewHelpRenderer() *HelpRenderer {
	return &HelpRenderer{}
}

// RenderHelpContent renders the key reference shown in the pager
func (r *HelpRenderer) RenderHelpContent(title string, keys input.KeyMap) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("99")).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("39")).
		MarginTop(1)

	keyStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("220"))

	descStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("252"))

	line := func(b key.Binding) string {
		h := b.Help()
		return fmt.Sprintf("  %s  %s\n", keyStyle.Render(fmt.Sprintf("%-8s", h.Key)), descStyle.Render(h.Desc))
	}

	var help strings.Builder

	help.WriteString(titleStyle.Render(title + " help"))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Navigation"))
	help.WriteString("\n")
	help.WriteString(line(keys.Prev))
	help.WriteString(line(keys.Next))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Slides"))
	help.WriteString("\n")
	help.WriteString(line(keys.AutoPlay))
	help.WriteString(line(keys.Open))
	help.WriteString("\n")

	help.WriteString(sectionStyle.Render("Other"))
	help.WriteString("\n")
	help.WriteString(line(keys.Help))
	help.WriteString(line(keys.HelpPager))
	help.WriteString(strings.TrimSuffix(line(keys.Quit), "\n"))

	return help.String()
}
