package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"

	"carousel/internal/domain"
)

// PagerOps shows long content in ov while the TUI is suspended
type PagerOps struct {
	program *tea.Program // reference to Bubble Tea program for terminal management
}

// NewPagerOps creates a new pager operations instance
func NewPagerOps(program *tea.Program) *PagerOps {
	return &PagerOps{program: program}
}

// SetProgram sets the program reference for terminal management
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowSlideInPager pages a slide's full text
func (p *PagerOps) ShowSlideInPager(slide domain.Slide) error {
	return p.run(strings.NewReader(SlideDocument(slide)))
}

// ShowHelpInPager shows help content using ov pager
func (p *PagerOps) ShowHelpInPager(helpContent string) error {
	return p.run(strings.NewReader(helpContent))
}

// run releases the terminal to ov and restores it afterwards
func (p *PagerOps) run(r io.Reader) error {
	if p.program == nil {
		return fmt.Errorf("program not set")
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return err
	}
	defer func() {
		// give ov time to leave the alternate screen
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOriginal = false
	configureVimKeyBindings(&config)
	root.SetConfig(config)

	return root.Run()
}

// configureVimKeyBindings adds j/k style movement on top of ov's defaults
func configureVimKeyBindings(config *oviewer.Config) {
	if config.Keybind == nil {
		config.Keybind = make(map[string][]string)
	}
	config.Keybind["exit"] = []string{"Escape", "q"}
	config.Keybind["down"] = []string{"Enter", "Down", "ctrl+N", "j"}
	config.Keybind["up"] = []string{"Up", "ctrl+P", "k"}
	config.Keybind["top"] = []string{"Home", "g"}
	config.Keybind["bottom"] = []string{"End", "G"}
	config.Keybind["page_down"] = []string{"PageDown", "ctrl+V", "ctrl+F", " "}
	config.Keybind["page_up"] = []string{"PageUp", "ctrl+B"}
}

// SlideDocument is the plain text shown when a slide is opened
func SlideDocument(slide domain.Slide) string {
	var b strings.Builder
	b.WriteString(slide.Label())
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", len([]rune(slide.Label()))))
	b.WriteString("\n\n")
	if slide.Title != "" && slide.Body != "" {
		b.WriteString(slide.Body)
		b.WriteString("\n")
	}
	if slide.Source != "" {
		b.WriteString("\n-- ")
		b.WriteString(slide.Source)
		b.WriteString("\n")
	}
	return b.String()
}
