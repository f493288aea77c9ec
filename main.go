package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"quicklip/internal/clipboard"
	"quicklip/internal/config"
	"quicklip/internal/eventbus"
	"quicklip/internal/search"
	"quicklip/internal/storage"
	"quicklip/internal/store"
	"quicklip/internal/tracker"
	"quicklip/internal/ui"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the config file")
	flag.StringVar(&configPath, "c", "", "Path to the config file (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("quicklip.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
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

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	var cfg *config.Config
	if configPath != "" {
		cfg, err = configSvc.LoadFromPath(configPath)
	} else {
		cfg, err = configSvc.Load()
	}
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Open the persistence backend
	backend, err := storage.NewBoltBackend(cfg.DatabasePath)
	if err != nil {
		fmt.Printf("Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	// Initialize services
	itemStore := store.New(backend, bus)
	clipTracker := tracker.New(bus)
	searchSvc := search.NewService(itemStore, clipTracker)

	// Start watching the system clipboard
	monitor := clipboard.NewMonitor(clipTracker,
		time.Duration(cfg.PollIntervalMs)*time.Millisecond, cfg.MaxClipLength)
	monitor.Start(ctx)

	// Create event channel for UI
	eventChan := make(chan eventbus.DomainEvent, 100)

	// Forward events to the event channel
	forwardEvent := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	bus.Subscribe(eventbus.EventClipRecorded, forwardEvent)
	bus.Subscribe(eventbus.EventItemAdded, forwardEvent)
	bus.Subscribe(eventbus.EventItemUpdated, forwardEvent)
	bus.Subscribe(eventbus.EventItemDeleted, forwardEvent)

	// Create UI model and Bubble Tea program
	uiModel := ui.NewModel(cfg, itemStore, searchSvc, eventChan)
	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	// Stop the program when the context is cancelled
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	log.Printf("Starting quicklip")
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}
