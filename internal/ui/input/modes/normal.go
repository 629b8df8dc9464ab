package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/ui/input/types"
)

// Bindings is the subset of the key map the modes need
type Bindings struct {
	Prev, Next, AutoPlay, Open, Help, HelpPager, Quit key.Binding
}

type NormalMode struct {
	keys Bindings
}

func NewNormalMode(keys Bindings) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if msg.Type == tea.KeyCtrlC {
		return []types.Action{types.QuitAction{Force: true}}, true
	}

	switch {
	case key.Matches(msg, m.keys.Prev):
		return []types.Action{types.NavigateAction{Direction: types.DirectionPrev}}, true

	case key.Matches(msg, m.keys.Next):
		return []types.Action{types.NavigateAction{Direction: types.DirectionNext}}, true

	case key.Matches(msg, m.keys.AutoPlay):
		if !ctx.AutoPlayEnabled() {
			return nil, false
		}
		return []types.Action{types.ToggleAutoPlayAction{}}, true

	case key.Matches(msg, m.keys.Open):
		if ctx.TotalSlides() == 0 {
			return nil, false
		}
		return []types.Action{types.OpenSlideAction{Index: ctx.ActiveSlide()}}, true

	case key.Matches(msg, m.keys.Help):
		return []types.Action{
			types.ToggleHelpAction{},
			types.ChangeModeAction{Mode: types.ModeHelp},
		}, true

	case key.Matches(msg, m.keys.HelpPager):
		return []types.Action{types.ShowHelpPagerAction{}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{}}, true
	}

	return nil, false
}
