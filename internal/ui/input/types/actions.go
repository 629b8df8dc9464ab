package types

// Direction of a carousel move
type Direction string

const (
	DirectionNext Direction = "next"
	DirectionPrev Direction = "prev"
)

// NavigateAction moves the carousel one scroll step
type NavigateAction struct {
	Direction Direction
}

func (a NavigateAction) Type() string { return "navigate" }

// ChangeModeAction switches the input handler to another mode
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

type ToggleAutoPlayAction struct{}

func (a ToggleAutoPlayAction) Type() string { return "toggle_autoplay" }

// OpenSlideAction shows the slide at Index in the pager
type OpenSlideAction struct {
	Index int
}

func (a OpenSlideAction) Type() string { return "open_slide" }

type ToggleHelpAction struct{}

func (a ToggleHelpAction) Type() string { return "toggle_help" }

type ShowHelpPagerAction struct{}

func (a ShowHelpPagerAction) Type() string { return "show_help_pager" }

type QuitAction struct {
	Force bool
}

func (a QuitAction) Type() string { return "quit" }
