package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/ui/input/types"
)

// HelpMode is active while the full key help is expanded. Quit still
// works; every other key just collapses the help.
type HelpMode struct {
	keys Bindings
}

func NewHelpMode(keys Bindings) *HelpMode {
	return &HelpMode{keys: keys}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if key.Matches(msg, m.keys.Quit) {
		return []types.Action{types.QuitAction{}}, true
	}
	return []types.Action{
		types.ToggleHelpAction{},
		types.ChangeModeAction{Mode: types.ModeNormal},
	}, true
}
