package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"lotview/internal/analytics"
	"lotview/internal/checkpoint"
	"lotview/internal/config"
	"lotview/internal/domain"
	"lotview/internal/eventbus"
	"lotview/internal/logic"
	"lotview/internal/platform/logger"
	"lotview/internal/session"
	redisstore "lotview/internal/storage/redis"
	"lotview/internal/storage/sqlite"
	"lotview/internal/ui"
	"lotview/internal/ui/coordinator"
	"lotview/internal/ui/services/events"
	"lotview/internal/ui/services/history"
	"lotview/internal/ui/services/paging"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "Path to the configuration file")
	flag.StringVar(&configPath, "c", "", "Path to the configuration file (shorthand)")
	flag.Parse()

	// Load configuration
	configSvc := config.NewConfigService()
	if configPath != "" {
		configSvc = config.NewConfigServiceWithPath(configPath)
	}
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Set up logging; the TUI owns the terminal so logs go to a file
	log, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
		log = logger.NewNop()
	}
	defer func() { _ = log.Sync() }()

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listingType, _ := domain.ParseListingType(cfg.Listing.Type) // validated by Load
	sess := session.New(cfg.User.Login, cfg.User.ID)

	historyRepo, closeHistory := openHistory(cfg.Storage, log)
	defer closeHistory()

	checkpoints := checkpoint.NewManager(openCheckpointStore(ctx, cfg.Checkpoint, log), log)

	sink, closeSink := openSink(cfg.Analytics, log)
	defer closeSink()

	// Create event buses
	domainBus := eventbus.New(log)
	defer domainBus.Close()
	uiBus := events.NewBus()

	// The demo catalog answers refresh requests in the background
	catalog := paging.NewDemoCatalog(cfg.Listing.MethodServer, cfg.Listing.ObjServer)
	dispatcher := paging.NewDispatcher(catalog, domainBus, log, 0)
	dispatcher.Start()
	defer dispatcher.Stop()

	coord := coordinator.New(coordinator.Deps{
		Type:        listingType,
		Session:     sess,
		Bus:         uiBus,
		DomainBus:   domainBus,
		HistoryRepo: historyRepo,
		HistoryConfig: history.Config{
			Timeout: cfg.Storage.Timeout.Duration,
			Limit:   cfg.Search.HistoryLimit,
		},
		Categories:  catalog,
		Sink:        sink,
		Checkpoints: checkpoints,
		Log:         log,
	})

	// Create UI model
	uiModel := ui.NewModel(coord, cfg, sess, log)
	uiModel.SetReadyMarker(os.Getenv("LOTVIEW_E2E_TEST") == "1")

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen(), tea.WithReportFocus())
	uiModel.SetProgram(p)

	// Handle termination signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM)
	go func() {
		select {
		case <-sigChan:
			p.Quit()
		case <-ctx.Done():
		}
	}()

	// Set up event forwarding to UI; services only run on the UI loop
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Warn("event channel full, dropping event")
		}
	}
	unsubscribeCount := domainBus.Subscribe(eventbus.EventTotalCountUpdated, forward)
	unsubscribeError := domainBus.Subscribe(eventbus.EventError, forward)

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	log.Infof("starting %s listing for %s", listingType, sess.HistoryOwner())

	// Run the UI
	if _, err := p.Run(); err != nil {
		log.Errorf("program failed: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	unsubscribeCount()
	unsubscribeError()
	close(eventChan)
}

func newLogger(cfg config.LogSettings) (logger.Logger, error) {
	if cfg.Path != "" && cfg.Path != "stderr" && cfg.Path != "stdout" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, err
		}
	}
	return logger.NewZapLogger(logger.ZapLoggerConfig{
		Level:      cfg.Level,
		Encoding:   cfg.Encoding,
		OutputPath: cfg.Path,
	})
}

// openHistory opens the SQLite history, falling back to memory so the panel keeps working
func openHistory(cfg config.StorageSettings, log logger.Logger) (logic.HistoryRepository, func()) {
	if err := os.MkdirAll(filepath.Dir(cfg.HistoryPath), 0755); err != nil {
		log.Warnf("history directory: %v", err)
	}
	store, err := sqlite.Open(cfg.HistoryPath)
	if err != nil {
		log.Warnf("history database unavailable, keeping history in memory: %v", err)
		return logic.NewMemoryHistoryRepository(), func() {}
	}
	return store, func() {
		if err := store.Close(); err != nil {
			log.Warnf("close history database: %v", err)
		}
	}
}

func openCheckpointStore(ctx context.Context, cfg config.CheckpointSettings, log logger.Logger) logic.CheckpointStore {
	switch cfg.Backend {
	case "redis":
		connectCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		client, err := redisstore.NewClient(connectCtx, cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Warnf("redis checkpoints unavailable, using memory: %v", err)
			return logic.NewMemoryCheckpointStore()
		}
		return redisstore.NewCheckpointStore(client, cfg.TTL.Duration)
	case "memory":
		return logic.NewMemoryCheckpointStore()
	default:
		return checkpoint.NewFileStore(cfg.Dir)
	}
}

func openSink(cfg config.AnalyticsSettings, log logger.Logger) (analytics.Sink, func()) {
	switch cfg.Backend {
	case "nats":
		sink, err := analytics.NewNATSSink(cfg.NATSURL, cfg.SubjectPrefix, log)
		if err != nil {
			log.Warnf("nats analytics unavailable, logging events instead: %v", err)
			return analytics.NewLogSink(log), func() {}
		}
		return sink, func() { _ = sink.Close() }
	case "noop":
		return analytics.NoopSink{}, func() {}
	default:
		return analytics.NewLogSink(log), func() {}
	}
}
