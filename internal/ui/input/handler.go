package input

import (
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/ui/input/modes"
	"carousel/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        KeyMap
}

func New() *Handler {
	return NewWithKeys(DefaultKeyMap())
}

// NewWithKeys builds a handler around a custom key map
func NewWithKeys(keys KeyMap) *Handler {
	b := modes.Bindings{
		Prev:      keys.Prev,
		Next:      keys.Next,
		AutoPlay:  keys.AutoPlay,
		Open:      keys.Open,
		Help:      keys.Help,
		HelpPager: keys.HelpPager,
		Quit:      keys.Quit,
	}

	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}
	h.modes[types.ModeNormal] = modes.NewNormalMode(b)
	h.modes[types.ModeHelp] = modes.NewHelpMode(b)
	return h
}

// HandleKey maps a key press to actions. Mode changes are applied here and
// still returned so the model can react to them.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) []types.Action {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil
	}

	actions, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil
	}

	for _, action := range actions {
		if change, ok := action.(types.ChangeModeAction); ok {
			h.currentMode = change.Mode
		}
	}
	return actions
}

func (h *Handler) CurrentMode() types.Mode {
	return h.currentMode
}

// SetMode forces a mode, e.g. when the model closes help on its own
func (h *Handler) SetMode(mode types.Mode) {
	if _, ok := h.modes[mode]; ok {
		h.currentMode = mode
	}
}

// Keys returns the key map for help rendering
func (h *Handler) Keys() KeyMap {
	return h.keys
}
