package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carousel/internal/carousel"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	svc := NewConfigService(filepath.Join(t.TempDir(), DefaultFileName))

	cfg, err := svc.Load()
	require.NoError(t, err)
	d := DefaultConfig()
	assert.Equal(t, d.Version, cfg.Version)
	assert.Equal(t, d.UI, cfg.UI)
	assert.Equal(t, d.Carousel.SlidesToShow, cfg.Carousel.SlidesToShow)
	assert.Equal(t, d.Carousel.Gap, cfg.Carousel.Gap)
	assert.Equal(t, d.Carousel.AutoPlaySpeedMS, cfg.Carousel.AutoPlaySpeedMS)
	assert.False(t, cfg.Carousel.Infinite)
	assert.Empty(t, cfg.Carousel.Breakpoints)
	assert.Empty(t, cfg.Slides.Items)
}

func TestLoadFromPathMissing(t *testing.T) {
	svc := NewConfigService("")
	_, err := svc.LoadFromPath(filepath.Join(t.TempDir(), "nope.toml"))
	require.ErrorIs(t, err, ErrConfigNotFound)
}

func TestLoadFromPathParsesBreakpoints(t *testing.T) {
	path := filepath.Join(t.TempDir(), DefaultFileName)
	data := `version = 1

[slides]
items = ["one", "two", "three"]

[carousel]
slides_to_show = 3
slides_to_scroll = 3
infinite = true
gap = 20

[[carousel.breakpoints]]
min_width = 0
items = 1

[[carousel.breakpoints]]
min_width = 600
items = 3
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	cfg, err := NewConfigService(path).LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"one", "two", "three"}, cfg.Slides.Items)
	assert.True(t, cfg.Carousel.Infinite)
	assert.Equal(t, 20, cfg.Carousel.Gap)
	assert.Equal(t, 5000, cfg.Carousel.AutoPlaySpeedMS, "unset keys keep defaults")

	opts := cfg.Carousel.Options()
	assert.Equal(t, carousel.Breakpoints{0: 1, 600: 3}, opts.Responsive)
	assert.Equal(t, 3, opts.SlidesToScroll)
	assert.Equal(t, 500*time.Millisecond, opts.Cooldown)
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", DefaultFileName)
	svc := NewConfigService(path)

	cfg := DefaultConfig()
	cfg.Carousel.Infinite = true
	cfg.Carousel.Breakpoints = []Breakpoint{{MinWidth: 0, Items: 1}, {MinWidth: 100, Items: 2}}
	cfg.Slides.Dir = "/tmp/slides"
	cfg.Slides.Items = []string{"a", "b"}
	require.NoError(t, svc.Save(cfg))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "version = 1")
	assert.Contains(t, string(raw), "[[carousel.breakpoints]]")

	loaded, err := svc.Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("CAROUSEL_CAROUSEL_INFINITE", "true")
	t.Setenv("CAROUSEL_CAROUSEL_SLIDES_TO_SHOW", "2")
	t.Setenv("CAROUSEL_UI_TITLE", "deck")

	cfg, err := NewConfigService(filepath.Join(t.TempDir(), DefaultFileName)).Load()
	require.NoError(t, err)
	assert.True(t, cfg.Carousel.Infinite)
	assert.Equal(t, 2, cfg.Carousel.SlidesToShow)
	assert.Equal(t, "deck", cfg.UI.Title)
}

func TestNormalizeRepairsInvalidValues(t *testing.T) {
	cfg := &Config{Carousel: CarouselConfig{SlidesToShow: -1, Gap: -4, ThrottleMS: -1}}
	cfg.Normalize()

	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, 1, cfg.Carousel.SlidesToShow)
	assert.Equal(t, 1, cfg.Carousel.SlidesToScroll)
	assert.Equal(t, 0, cfg.Carousel.Gap)
	assert.Equal(t, 500, cfg.Carousel.ThrottleMS)
	assert.Equal(t, 500*time.Millisecond, cfg.Carousel.Transition())
	assert.Equal(t, "carousel", cfg.UI.Title)
}
