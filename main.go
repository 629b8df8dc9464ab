package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"

	"carousel/internal/config"
	"carousel/internal/eventbus"
	"carousel/internal/slides"
	"carousel/internal/ui"
)

func main() {
	// Parse command line arguments
	var slideDir, slideFile, configPath string
	flag.StringVar(&slideDir, "dir", "", "Directory with one slide per file")
	flag.StringVar(&slideDir, "d", "", "Directory with one slide per file (shorthand)")
	flag.StringVar(&slideFile, "file", "", "File with slides separated by --- lines")
	flag.StringVar(&slideFile, "f", "", "File with slides separated by --- lines (shorthand)")
	flag.StringVar(&configPath, "config", "", "Config file (default "+config.DefaultFileName+")")
	flag.StringVar(&configPath, "c", "", "Config file (shorthand)")
	flag.Parse()

	// A bare argument is a slide directory or a slide file
	if slideDir == "" && slideFile == "" && flag.NArg() > 0 {
		arg := flag.Arg(0)
		info, err := os.Stat(arg)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		if info.IsDir() {
			slideDir = arg
		} else {
			slideFile = arg
		}
	}

	// Set up logging
	logFile, err := os.OpenFile("carousel.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	configSvc := config.NewConfigServiceWithBus(configPath, bus)
	cfg, existed := loadOrCreateConfig(configSvc)

	// Flags win over the config file
	src := slides.Source{Dir: cfg.Slides.Dir, File: cfg.Slides.File, Items: cfg.Slides.Items}
	if slideDir != "" || slideFile != "" {
		src = slides.Source{Dir: slideDir, File: slideFile}
	}

	deck, err := slides.NewLoader(bus).Load(ctx, src)
	if err != nil {
		log.Printf("Failed to load slides: %v", err)
		fmt.Printf("Error loading slides: %v\n", err)
		os.Exit(1)
	}

	log.Printf("Creating UI model with %d slides...", len(deck))
	uiModel := ui.NewModel(bus, cfg, deck)

	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithContext(ctx))
	uiModel.SetProgram(p)

	// Forward events the UI reports on
	forward := func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	}
	bus.Subscribe(eventbus.EventError, forward)
	bus.Subscribe(eventbus.EventConfigSaved, forward)

	bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: existed})

	// Run the UI
	log.Printf("Starting UI...")
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		log.Printf("Error running program: %v", err)
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// loadOrCreateConfig loads the config file, writing the defaults first when
// it does not exist yet. It reports whether the file was already there.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, bool) {
	path := configSvc.Path()

	existed := true
	if _, err := os.Stat(path); err != nil {
		existed = false
		log.Printf("Creating new config at %s", path)
		if err := configSvc.Save(config.DefaultConfig()); err != nil {
			log.Printf("Failed to save config: %v", err)
		}
	}

	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Failed to load config from %s, using defaults: %v", path, err)
		return config.DefaultConfig(), existed
	}
	log.Printf("Loaded config from %s", path)
	return cfg, existed
}
