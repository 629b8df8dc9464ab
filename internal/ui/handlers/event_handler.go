package handlers

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/eventbus"
	"carousel/internal/ui/state"
)

// StatusTimeout is how long a status message stays on screen
const StatusTimeout = 3 * time.Second

// ClearStatusMsg clears the status line once a message has expired
type ClearStatusMsg struct {
	Text string // the message being cleared; a newer one is kept
}

// EventHandler handles domain events and updates state
type EventHandler struct {
	state *state.AppState
}

// NewEventHandler creates a new event handler
func NewEventHandler(appState *state.AppState) *EventHandler {
	return &EventHandler{state: appState}
}

// HandleEvent processes domain events and returns any necessary commands
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case eventbus.ErrorEvent:
		if e.Err != nil {
			return h.SetStatus(fmt.Sprintf("Error: %s: %v", e.Message, e.Err))
		}
		return h.SetStatus("Error: " + e.Message)

	case eventbus.ConfigSavedEvent:
		return h.SetStatus("Wrote " + e.Path)

	case eventbus.SlidesLoadedEvent:
		return h.SetStatus(fmt.Sprintf("Loaded %d slides from %s", e.Count, e.Source))
	}
	return nil
}

// SetStatus shows text on the status line and schedules its removal
func (h *EventHandler) SetStatus(text string) tea.Cmd {
	h.state.StatusMessage = text
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg { return ClearStatusMsg{Text: text} })
}

// ClearStatus removes the status message if it is still the one in msg
func (h *EventHandler) ClearStatus(msg ClearStatusMsg) {
	if h.state.StatusMessage == msg.Text {
		h.state.StatusMessage = ""
	}
}
