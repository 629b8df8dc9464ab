// Command carousel-demo drives a carousel engine without a terminal UI and
// prints every snapshot it publishes. It starts from an eight slide looping
// carousel that shows and scrolls three slides, one below 600 columns.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"carousel/internal/carousel"
	"carousel/internal/config"
	"carousel/internal/slides"
)

// stepClock moves forward by a fixed step on every reading, so each command
// lands outside the previous one's throttle window
type stepClock struct {
	now  time.Time
	step time.Duration
}

func (c *stepClock) Now() time.Time {
	c.now = c.now.Add(c.step)
	return c.now
}

func main() {
	var (
		width      int
		forward    int
		backward   int
		configPath string
		verbose    bool
	)
	flag.IntVar(&width, "width", 1024, "Viewport width fed to the breakpoint table")
	flag.IntVar(&forward, "next", 4, "Number of forward moves")
	flag.IntVar(&backward, "prev", 4, "Number of backward moves after the forward ones")
	flag.StringVar(&configPath, "c", "", "Optional config file with [carousel] settings")
	flag.BoolVar(&verbose, "v", false, "Log engine decisions to stderr")
	flag.Parse()

	if !verbose {
		log.SetOutput(io.Discard)
	}

	cfg := config.DefaultConfig()
	cfg.Carousel.Infinite = true
	cfg.Carousel.SlidesToShow = 3
	cfg.Carousel.SlidesToScroll = 3
	cfg.Carousel.Gap = 20
	cfg.Carousel.Breakpoints = []config.Breakpoint{{MinWidth: 0, Items: 1}, {MinWidth: 600, Items: 3}}
	if configPath != "" {
		loaded, err := config.NewConfigService(configPath).LoadFromPath(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	deck := slides.Defaults()
	labels := make([]string, len(deck))
	for i, s := range deck {
		labels[i] = s.Label()
	}

	opts := cfg.Carousel.Options()
	clock := &stepClock{now: time.Unix(0, 0), step: opts.Cooldown}

	var engine *carousel.Engine
	var display []string
	show := func(event string, s carousel.Snapshot) {
		line := fmt.Sprintf("%-9s offset=%-2d slide=%d/%d perPage=%d prevDisabled=%-5t nextDisabled=%-5t",
			event, s.CurrentSlide,
			carousel.RealIndex(s.CurrentSlide, s.TotalSlides, s.ItemsPerPage, opts.Infinite)+1, s.TotalSlides,
			s.ItemsPerPage, s.PrevDisabled, s.NextDisabled)
		if engine != nil && len(display) == engine.DisplayLength() {
			line += "  [" + strings.Join(carousel.Visible(engine, display), " | ") + "]"
		}
		fmt.Println(line)
	}

	event := "mount"
	engine = carousel.New(len(deck), opts, func(s carousel.Snapshot) {
		show(event, s)
	}, clock)
	display = carousel.BuildDisplay(labels, engine.State().PerPage, opts.Infinite)

	event = "resize"
	if engine.Resize(width, width) {
		display = carousel.BuildDisplay(labels, engine.State().PerPage, opts.Infinite)
	}
	show("layout", engine.Snapshot())

	run := func(name string, n int, cmd func() bool) {
		for i := 0; i < n; i++ {
			event = name
			cmd()
			event = "settle"
			engine.TransitionSettled()
		}
	}
	run("next", forward, engine.Advance)
	run("prev", backward, engine.Retreat)

	engine.Close()
}
