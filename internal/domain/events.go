package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSlidesLoaded      EventType = "SlidesLoaded"
	EventLoadStarted       EventType = "LoadStarted"
	EventSnapshotPublished EventType = "SnapshotPublished"
	EventBreakpointChanged EventType = "BreakpointChanged"
	EventAutoPlayToggled   EventType = "AutoPlayToggled"
	EventError             EventType = "Error"
	EventConfigLoaded      EventType = "ConfigLoaded"
	EventConfigSaved       EventType = "ConfigSaved"
	EventAppReady          EventType = "AppReady"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// LoadStartedEvent is emitted when slide loading begins
type LoadStartedEvent struct {
	Source string
}

func (e LoadStartedEvent) Type() EventType { return EventLoadStarted }

// SlidesLoadedEvent is emitted when a slide source has been read
type SlidesLoadedEvent struct {
	Source string
	Count  int
}

func (e SlidesLoadedEvent) Type() EventType { return EventSlidesLoaded }

// SnapshotPublishedEvent carries a carousel position change
type SnapshotPublishedEvent struct {
	Position Position
}

func (e SnapshotPublishedEvent) Type() EventType { return EventSnapshotPublished }

// BreakpointChangedEvent is emitted when items per page changes on resize
type BreakpointChangedEvent struct {
	Width        int
	ItemsPerPage int
}

func (e BreakpointChangedEvent) Type() EventType { return EventBreakpointChanged }

// AutoPlayToggledEvent is emitted when auto-play is paused or resumed
type AutoPlayToggledEvent struct {
	Running bool
}

func (e AutoPlayToggledEvent) Type() EventType { return EventAutoPlayToggled }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// AppReadyEvent is emitted when the UI has mounted the carousel
type AppReadyEvent struct {
	HasExistingConfig bool
}

func (e AppReadyEvent) Type() EventType { return EventAppReady }
