package ui

import (
	"fmt"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/domain"
	"carousel/internal/eventbus"
	"carousel/internal/ui/handlers"
	"carousel/internal/ui/input"
	inputtypes "carousel/internal/ui/input/types"
	"carousel/internal/ui/state"
	"carousel/internal/ui/views"
)

// Model hosts one carousel engine in a Bubble Tea program
type Model struct {
	id     string // distinguishes this instance's timers from any other
	bus    eventbus.EventBus
	config *config.Config
	opts   carousel.Options
	state  *state.AppState // centralized state

	engine *carousel.Engine
	clock  carousel.Clock

	help         help.Model
	renderer     *views.Renderer
	helpRenderer *HelpRenderer
	eventHandler *handlers.EventHandler
	inputHandler *input.Handler
	pager        *PagerOps

	unsubscribe []func()
	inPagerMode bool // tracks if we're currently in pager mode

	// Program reference for terminal management
	program *tea.Program
}

// Option customises a Model
type Option func(*Model)

// WithClock replaces the clock used by the navigation throttles
func WithClock(clock carousel.Clock) Option {
	return func(m *Model) { m.clock = clock }
}

// NewModel creates a new UI model for the given slides
func NewModel(bus eventbus.EventBus, cfg *config.Config, slides []domain.Slide, options ...Option) *Model {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	m := &Model{
		id:           uuid.NewString(),
		bus:          bus,
		config:       cfg,
		opts:         cfg.Carousel.Options(),
		state:        state.NewAppState(slides),
		help:         help.New(),
		renderer:     views.NewRenderer(),
		helpRenderer: NewHelpRenderer(),
		inputHandler: input.New(),
		pager:        NewPagerOps(nil),
	}
	for _, o := range options {
		o(m)
	}
	m.eventHandler = handlers.NewEventHandler(m.state)

	m.engine = carousel.New(len(slides), m.opts, m.onSnapshot, m.clock)
	m.state.RebuildDisplay(m.engine.State().PerPage, m.opts.Infinite)
	return m
}

// ID returns the instance id carried by this model's timer messages
func (m *Model) ID() string {
	return m.id
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(program *tea.Program) {
	m.program = program
	m.pager.SetProgram(program)
}

// onSnapshot receives every engine snapshot. It runs inside carousel.New,
// so it must not touch m.engine.
func (m *Model) onSnapshot(s carousel.Snapshot) {
	pos := domain.Position{
		CurrentSlide: s.CurrentSlide,
		ActiveIndex:  carousel.RealIndex(s.CurrentSlide, s.TotalSlides, s.ItemsPerPage, m.opts.Infinite),
		TotalSlides:  s.TotalSlides,
		ItemsPerPage: s.ItemsPerPage,
		PrevDisabled: s.PrevDisabled,
		NextDisabled: s.NextDisabled,
	}
	m.state.ApplySnapshot(pos)
	m.publish(eventbus.SnapshotPublishedEvent{Position: pos})
}

func (m *Model) publish(event eventbus.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(event)
	}
}

// Init mounts the carousel and starts auto-play
func (m *Model) Init() tea.Cmd {
	m.mount()
	return m.startAutoPlay()
}

// mount attaches the snapshot logger and replays the current position to it
func (m *Model) mount() {
	if m.state.Mounted {
		return
	}
	m.state.Mounted = true

	if m.bus == nil {
		return
	}
	id := m.id
	m.unsubscribe = append(m.unsubscribe, m.bus.Subscribe(eventbus.EventSnapshotPublished, func(e eventbus.DomainEvent) {
		ev, ok := e.(eventbus.SnapshotPublishedEvent)
		if !ok {
			return
		}
		p := ev.Position
		log.Printf("carousel %s: slide %d/%d offset=%d perPage=%d prevDisabled=%t nextDisabled=%t",
			id[:8], p.ActiveIndex+1, p.TotalSlides, p.CurrentSlide, p.ItemsPerPage, p.PrevDisabled, p.NextDisabled)
	}))
	m.publish(eventbus.SnapshotPublishedEvent{Position: m.state.Position})
}

// unmount stops every timer and detaches from the engine and the bus
func (m *Model) unmount() {
	if !m.state.Mounted {
		return
	}
	m.state.Mounted = false
	m.stopAutoPlay()
	m.state.MoveSeq++
	m.engine.Close()
	for _, unsubscribe := range m.unsubscribe {
		unsubscribe()
	}
	m.unsubscribe = nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		if m.inPagerMode {
			return m, nil
		}
		var cmds []tea.Cmd
		for _, action := range m.inputHandler.HandleKey(msg, m) {
			if cmd := m.handleAction(action); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case transitionSettledMsg:
		if msg.id != m.id || msg.seq != m.state.MoveSeq || !m.state.Moving {
			return m, nil
		}
		m.settle()
		return m, nil

	case autoPlayTickMsg:
		if msg.id != m.id || msg.gen != m.state.AutoPlayGen || !m.state.AutoPlayRunning {
			return m, nil
		}
		if m.inPagerMode {
			return m, m.scheduleAutoPlay()
		}
		return m, tea.Batch(m.navigate(inputtypes.DirectionNext), m.scheduleAutoPlay())

	case slidePagerMsg:
		if msg.err != nil {
			log.Printf("pager for %q failed: %v", msg.title, msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open %q: %v", msg.title, msg.err))
		}
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("help pager failed: %v", msg.err)
			return m, m.setStatus(fmt.Sprintf("Could not open help: %v", msg.err))
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		m.state.InPager = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		m.state.InPager = false
		return m, nil

	case handlers.ClearStatusMsg:
		m.eventHandler.ClearStatus(msg)
		return m, nil

	case EventMsg:
		return m, m.eventHandler.HandleEvent(msg.Event)
	}

	return m, nil
}

// resize feeds the terminal size to the engine and rebuilds the display
// sequence when the breakpoint changes items-per-page
func (m *Model) resize(width, height int) {
	m.state.Width = width
	m.state.Height = height
	m.state.Ready = true
	m.help.Width = width

	changed := m.engine.Resize(width, views.ContainerWidth(width))
	st := m.engine.State()
	m.state.SlideWidth = st.SlideWidth
	if changed {
		m.state.RebuildDisplay(st.PerPage, m.opts.Infinite)
		m.publish(eventbus.BreakpointChangedEvent{Width: width, ItemsPerPage: st.PerPage})
	}
}

func (m *Model) handleAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.NavigateAction:
		cmd := m.navigate(a.Direction)
		if cmd != nil && m.state.AutoPlayRunning {
			// a manual move restarts the auto-play countdown
			return tea.Batch(cmd, m.restartAutoPlay())
		}
		return cmd

	case inputtypes.ToggleAutoPlayAction:
		if m.state.AutoPlayRunning {
			m.stopAutoPlay()
			m.publish(eventbus.AutoPlayToggledEvent{Running: false})
			return m.setStatus("Auto-play paused")
		}
		cmd := m.startAutoPlay()
		if cmd == nil {
			return nil
		}
		m.publish(eventbus.AutoPlayToggledEvent{Running: true})
		return tea.Batch(cmd, m.setStatus("Auto-play resumed"))

	case inputtypes.OpenSlideAction:
		if a.Index < 0 || a.Index >= len(m.state.Slides) {
			return nil
		}
		return m.showSlideInPager(m.state.Slides[a.Index])

	case inputtypes.ToggleHelpAction:
		m.state.ShowHelp = !m.state.ShowHelp
		return nil

	case inputtypes.ShowHelpPagerAction:
		return m.showHelpInPager()

	case inputtypes.QuitAction:
		m.unmount()
		return tea.Quit
	}
	return nil
}

// navigate issues one throttled move. A move still animating is settled
// first when the new one will be accepted, so offsets never drift more than
// one step past the clone region.
func (m *Model) navigate(dir inputtypes.Direction) tea.Cmd {
	if m.state.Moving && m.canMove(dir) {
		m.settle()
	}

	var accepted bool
	switch dir {
	case inputtypes.DirectionNext:
		accepted = m.engine.Advance()
	case inputtypes.DirectionPrev:
		accepted = m.engine.Retreat()
	}
	if !accepted || !m.engine.State().Transitioning {
		return nil
	}

	m.state.Moving = true
	m.state.MoveSeq++
	id, seq := m.id, m.state.MoveSeq
	return tea.Tick(m.config.Carousel.Transition(), func(time.Time) tea.Msg {
		return transitionSettledMsg{id: id, seq: seq}
	})
}

func (m *Model) canMove(dir inputtypes.Direction) bool {
	switch dir {
	case inputtypes.DirectionNext:
		return m.engine.CanAdvance()
	case inputtypes.DirectionPrev:
		return m.engine.CanRetreat()
	}
	return false
}

func (m *Model) settle() {
	m.state.Moving = false
	m.engine.TransitionSettled()
}

func (m *Model) startAutoPlay() tea.Cmd {
	if !m.opts.AutoPlay || len(m.state.Slides) == 0 || !m.state.Mounted {
		return nil
	}
	m.state.AutoPlayGen++
	m.state.AutoPlayRunning = true
	return m.scheduleAutoPlay()
}

func (m *Model) restartAutoPlay() tea.Cmd {
	m.state.AutoPlayGen++
	return m.scheduleAutoPlay()
}

func (m *Model) stopAutoPlay() {
	m.state.AutoPlayGen++
	m.state.AutoPlayRunning = false
}

func (m *Model) scheduleAutoPlay() tea.Cmd {
	id, gen := m.id, m.state.AutoPlayGen
	return tea.Tick(m.opts.AutoPlaySpeed, func(time.Time) tea.Msg {
		return autoPlayTickMsg{id: id, gen: gen}
	})
}

func (m *Model) setStatus(text string) tea.Cmd {
	return m.eventHandler.SetStatus(text)
}

// showSlideInPager returns a command that pages a slide, pausing and resuming rendering
func (m *Model) showSlideInPager(slide domain.Slide) tea.Cmd {
	return func() tea.Msg {
		if m.program == nil {
			return slidePagerMsg{title: slide.Label(), err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowSlideInPager(slide)
		m.program.Send(resumeRenderingMsg{})
		return slidePagerMsg{title: slide.Label(), err: err}
	}
}

// showHelpInPager returns a command that shows the key reference in ov
func (m *Model) showHelpInPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent(m.config.UI.Title, m.inputHandler.Keys())
	return func() tea.Msg {
		if m.program == nil {
			return helpPagerMsg{err: fmt.Errorf("program not set")}
		}
		m.program.Send(pauseRenderingMsg{})
		err := m.pager.ShowHelpInPager(content)
		m.program.Send(resumeRenderingMsg{})
		return helpPagerMsg{err: err}
	}
}

// View renders the model
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	return m.renderer.Render(views.ViewState{
		Width:           m.state.Width,
		Height:          m.state.Height,
		Title:           m.config.UI.Title,
		Slides:          carousel.Visible(m.engine, m.state.Display),
		SlideWidth:      m.state.SlideWidth,
		Gap:             m.opts.Gap,
		Moving:          m.state.Moving,
		Position:        m.state.Position,
		ShowDots:        m.config.UI.ShowDots,
		ShowCounter:     m.config.UI.ShowCounter,
		AutoPlay:        m.opts.AutoPlay,
		AutoPlayRunning: m.state.AutoPlayRunning,
		StatusMessage:   m.state.StatusMessage,
		ShowHelp:        m.state.ShowHelp,
		HelpModel:       m.help,
		Keys:            m.inputHandler.Keys(),
	})
}

// TotalSlides implements the input context
func (m *Model) TotalSlides() int {
	return len(m.state.Slides)
}

// ActiveSlide implements the input context
func (m *Model) ActiveSlide() int {
	return m.state.Position.ActiveIndex
}

// AutoPlayEnabled implements the input context
func (m *Model) AutoPlayEnabled() bool {
	return m.opts.AutoPlay
}
