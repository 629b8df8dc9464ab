package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"

	"carousel/internal/carousel"
	"carousel/internal/eventbus"
)

// DefaultFileName is the config file looked up in the working directory
const DefaultFileName = ".carousel.toml"

// EnvPrefix prefixes environment overrides, e.g. CAROUSEL_CAROUSEL_INFINITE=true
const EnvPrefix = "CAROUSEL"

// ErrConfigNotFound is returned when an explicit config path does not exist
var ErrConfigNotFound = errors.New("config file not found")

// Config represents the application configuration
type Config struct {
	Version  int            `toml:"version" mapstructure:"version"`
	Slides   SlidesConfig   `toml:"slides" mapstructure:"slides"`
	Carousel CarouselConfig `toml:"carousel" mapstructure:"carousel"`
	UI       UISettings     `toml:"ui" mapstructure:"ui"`
}

// SlidesConfig says where slide content comes from
type SlidesConfig struct {
	Dir   string   `toml:"dir" mapstructure:"dir"`
	File  string   `toml:"file" mapstructure:"file"`
	Items []string `toml:"items" mapstructure:"items"`
}

// Breakpoint maps a minimum terminal width to items per page
type Breakpoint struct {
	MinWidth int `toml:"min_width" mapstructure:"min_width"`
	Items    int `toml:"items" mapstructure:"items"`
}

// CarouselConfig holds the engine settings
type CarouselConfig struct {
	SlidesToShow            int          `toml:"slides_to_show" mapstructure:"slides_to_show"`
	SlidesToScroll          int          `toml:"slides_to_scroll" mapstructure:"slides_to_scroll"`
	AutoPlay                bool         `toml:"auto_play" mapstructure:"auto_play"`
	AutoPlaySpeedMS         int          `toml:"auto_play_speed_ms" mapstructure:"auto_play_speed_ms"`
	Gap                     int          `toml:"gap" mapstructure:"gap"`
	Infinite                bool         `toml:"infinite" mapstructure:"infinite"`
	TransitionMS            int          `toml:"transition_ms" mapstructure:"transition_ms"`
	ThrottleMS              int          `toml:"throttle_ms" mapstructure:"throttle_ms"`
	RenormalizeOnBreakpoint bool         `toml:"renormalize_on_breakpoint" mapstructure:"renormalize_on_breakpoint"`
	Breakpoints             []Breakpoint `toml:"breakpoints" mapstructure:"breakpoints"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	Title       string `toml:"title" mapstructure:"title"`
	ShowDots    bool   `toml:"show_dots" mapstructure:"show_dots"`
	ShowCounter bool   `toml:"show_counter" mapstructure:"show_counter"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

// configService is the concrete implementation
type configService struct {
	bus      eventbus.EventBus
	filePath string
}

// NewConfigService creates a config service for the given file.
// An empty path means DefaultFileName in the working directory.
func NewConfigService(path string) ConfigService {
	if path == "" {
		path = DefaultFileName
	}
	return &configService{filePath: path}
}

// NewConfigServiceWithBus creates a config service with event bus support
func NewConfigServiceWithBus(path string, bus eventbus.EventBus) ConfigService {
	cs := NewConfigService(path).(*configService)
	cs.bus = bus
	return cs
}

// Path returns the file the service loads from and saves to
func (cs *configService) Path() string {
	return cs.filePath
}

// Load loads the configuration from the service's file. A missing file
// yields the defaults, still subject to environment overrides.
func (cs *configService) Load() (*Config, error) {
	path := cs.filePath
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = ""
	}

	cfg, err := read(path)
	if err != nil {
		return nil, err
	}

	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigLoadedEvent{Path: path})
	}
	return cfg, nil
}

// Save saves the configuration to the service's file
func (cs *configService) Save(config *Config) error {
	if err := cs.SaveToPath(config, cs.filePath); err != nil {
		return err
	}
	if cs.bus != nil {
		cs.bus.Publish(eventbus.ConfigSavedEvent{Path: cs.filePath})
	}
	return nil
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	return read(path)
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("# carousel configuration\n")
	buf.WriteString("# environment overrides: " + EnvPrefix + "_<SECTION>_<KEY>, e.g. " + EnvPrefix + "_CAROUSEL_INFINITE=true\n\n")
	buf.Write(data)

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// read merges defaults, the TOML file at path (if any) and the environment
func read(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetConfigType("toml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.Normalize()
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d *Config) {
	v.SetDefault("version", d.Version)
	v.SetDefault("slides.dir", d.Slides.Dir)
	v.SetDefault("slides.file", d.Slides.File)
	v.SetDefault("slides.items", d.Slides.Items)
	v.SetDefault("carousel.slides_to_show", d.Carousel.SlidesToShow)
	v.SetDefault("carousel.slides_to_scroll", d.Carousel.SlidesToScroll)
	v.SetDefault("carousel.auto_play", d.Carousel.AutoPlay)
	v.SetDefault("carousel.auto_play_speed_ms", d.Carousel.AutoPlaySpeedMS)
	v.SetDefault("carousel.gap", d.Carousel.Gap)
	v.SetDefault("carousel.infinite", d.Carousel.Infinite)
	v.SetDefault("carousel.transition_ms", d.Carousel.TransitionMS)
	v.SetDefault("carousel.throttle_ms", d.Carousel.ThrottleMS)
	v.SetDefault("carousel.renormalize_on_breakpoint", d.Carousel.RenormalizeOnBreakpoint)
	v.SetDefault("ui.title", d.UI.Title)
	v.SetDefault("ui.show_dots", d.UI.ShowDots)
	v.SetDefault("ui.show_counter", d.UI.ShowCounter)
}

// Normalize replaces unusable values with defaults
func (c *Config) Normalize() {
	d := DefaultConfig()
	if c.Version == 0 {
		c.Version = d.Version
	}
	cc := &c.Carousel
	if cc.SlidesToShow < 1 {
		cc.SlidesToShow = 1
	}
	if cc.SlidesToScroll < 1 {
		cc.SlidesToScroll = 1
	}
	if cc.Gap < 0 {
		cc.Gap = 0
	}
	if cc.AutoPlaySpeedMS <= 0 {
		cc.AutoPlaySpeedMS = d.Carousel.AutoPlaySpeedMS
	}
	if cc.TransitionMS <= 0 {
		cc.TransitionMS = d.Carousel.TransitionMS
	}
	if cc.ThrottleMS <= 0 {
		cc.ThrottleMS = d.Carousel.ThrottleMS
	}
	if c.UI.Title == "" {
		c.UI.Title = d.UI.Title
	}
}

// Options converts the engine settings into carousel options
func (cc CarouselConfig) Options() carousel.Options {
	opts := carousel.Options{
		SlidesToShow:            cc.SlidesToShow,
		SlidesToScroll:          cc.SlidesToScroll,
		AutoPlay:                cc.AutoPlay,
		AutoPlaySpeed:           time.Duration(cc.AutoPlaySpeedMS) * time.Millisecond,
		Gap:                     cc.Gap,
		Infinite:                cc.Infinite,
		Cooldown:                time.Duration(cc.ThrottleMS) * time.Millisecond,
		RenormalizeOnBreakpoint: cc.RenormalizeOnBreakpoint,
	}
	if len(cc.Breakpoints) > 0 {
		opts.Responsive = make(carousel.Breakpoints, len(cc.Breakpoints))
		for _, bp := range cc.Breakpoints {
			opts.Responsive[bp.MinWidth] = bp.Items
		}
	}
	return opts.Normalize()
}

// Transition is how long a slide move is animated
func (cc CarouselConfig) Transition() time.Duration {
	return time.Duration(cc.TransitionMS) * time.Millisecond
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Slides:  SlidesConfig{},
		Carousel: CarouselConfig{
			SlidesToShow:    carousel.DefaultSlidesToShow,
			SlidesToScroll:  carousel.DefaultSlidesToScroll,
			AutoPlaySpeedMS: int(carousel.DefaultAutoPlaySpeed / time.Millisecond),
			Gap:             carousel.DefaultGap,
			TransitionMS:    500,
			ThrottleMS:      int(carousel.DefaultCooldown / time.Millisecond),
		},
		UI: UISettings{
			Title:       "carousel",
			ShowDots:    true,
			ShowCounter: true,
		},
	}
}
