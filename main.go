package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/charmbracelet/log"

	"tilde/internal/config"
	"tilde/internal/document"
	"tilde/internal/eventbus"
	"tilde/internal/terminal"
	"tilde/internal/ui"
	"tilde/internal/ui/keys"
	"tilde/internal/ui/views"
)

const productName = "Tilde"

// version is set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	// Load configuration before logging; the log file location lives in it
	configSvc := config.NewConfigService()
	cfg, cfgErr := loadOrCreateConfig(configSvc)

	// Set up logging
	logFile, err := setupLogging(cfg)
	if err == nil {
		defer logFile.Close()
	}
	if cfgErr != nil {
		log.Warn("Error loading config, using defaults", "path", configSvc.Path(), "err", cfgErr)
	}

	styles := views.NewStyles(cfg.Theme)
	keyMap := keys.New(cfg.Keys)

	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, styles.RenderUsage(filepath.Base(os.Args[0]), keyMap.HelpView(80)))
		return 2
	}

	var path string
	if len(args) == 1 {
		path = args[0]
	}
	doc := openDocument(path, cfg.Editor.TabWidth)

	screen, err := terminal.NewScreen(themeFromConfig(cfg.Theme))
	if err != nil {
		log.Error("Could not set up terminal", "err", err)
		fmt.Fprintln(os.Stderr, styles.RenderError(err))
		return 1
	}
	defer screen.Close()

	// Restore the terminal when killed; the session then fails its next read
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigChan)
	go func() {
		if sig, ok := <-sigChan; ok {
			log.Warn("Received signal, restoring terminal", "signal", sig)
			screen.Close()
		}
	}()

	// Create event bus
	bus := eventbus.New()
	subscribeEventLog(bus)

	renderer := views.NewRenderer(productName, version, cfg.ShowLineNumbers())
	session := ui.NewSession(screen, doc, renderer, keyMap, bus)

	log.Info("Starting session", "document", doc.Name(), "version", version)
	runErr := session.Run()
	screen.Close()

	if runErr != nil {
		log.Error("Session ended with error", "err", runErr)
		fmt.Fprintln(os.Stderr, styles.RenderError(runErr))
		return 1
	}
	log.Info("Session exited normally")
	fmt.Println(styles.RenderFarewell())
	return 0
}

// loadOrCreateConfig loads the user's config, writing the defaults on first
// run. On error the defaults are returned along with it.
func loadOrCreateConfig(configSvc config.ConfigService) (*config.Config, error) {
	configPath := configSvc.Path()

	if _, err := os.Stat(configPath); errors.Is(err, os.ErrNotExist) {
		cfg := config.DefaultConfig()
		if err := configSvc.SaveToPath(cfg, configPath); err != nil {
			return cfg, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}

	cfg, err := configSvc.LoadFromPath(configPath)
	if err != nil {
		return config.DefaultConfig(), err
	}
	return cfg, nil
}

// setupLogging points the default logger at the log file. Logging is
// discarded if the file cannot be opened; the screen must stay clean.
func setupLogging(cfg *config.Config) (io.Closer, error) {
	log.SetDefault(log.New(io.Discard))

	path := cfg.LogFile()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetDefault(log.NewWithOptions(logFile, log.Options{
		Level:           level,
		Prefix:          "tilde",
		ReportTimestamp: true,
	}))
	return logFile, nil
}

// openDocument opens path, falling back to an empty document named after it
func openDocument(path string, tabWidth int) *document.Document {
	if path == "" {
		return document.Empty("", tabWidth)
	}

	doc, err := document.Open(path, tabWidth)
	if err != nil {
		log.Warn("Could not open document, starting empty", "path", path, "err", err)
		return document.Empty(path, tabWidth)
	}
	log.Info("Opened document", "path", path, "lines", doc.LineCount())
	return doc
}

func themeFromConfig(theme config.ThemeSettings) terminal.Theme {
	return terminal.Theme{
		terminal.RoleLineNumber: terminal.Foreground(theme.LineNumber),
		terminal.RoleBanner:     terminal.Foreground(theme.Banner),
		terminal.RoleTilde:      terminal.Foreground(theme.Tilde),
		terminal.RoleMessage:    terminal.Foreground(theme.Message),
	}
}

// subscribeEventLog logs every session transition at debug level
func subscribeEventLog(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventModeChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ModeChangedEvent); ok {
			log.Debug("Mode changed", "from", event.From, "to", event.To)
		}
	})
	bus.Subscribe(eventbus.EventCursorMoved, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.CursorMovedEvent); ok {
			log.Debug("Cursor moved", "x", event.To.X, "y", event.To.Y)
		}
	})
	bus.Subscribe(eventbus.EventQuitRequested, func(e eventbus.DomainEvent) {
		log.Debug("Quit requested")
	})
}
