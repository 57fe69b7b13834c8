package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/ticknote/internal/app"
	"github.com/marcus/ticknote/internal/config"
	"github.com/marcus/ticknote/internal/event"
	"github.com/marcus/ticknote/internal/keymap"
	"github.com/marcus/ticknote/internal/notes"
	"github.com/marcus/ticknote/internal/state"
)

// Version is set at build time via ldflags
var Version = ""

var (
	configPath   = flag.String("config", "", "path to config file")
	dbPath       = flag.String("db", "", "path to notes database (overrides config)")
	debugFlag    = flag.Bool("debug", false, "enable debug logging")
	versionFlag  = flag.Bool("version", false, "print version and exit")
	shortVersion = flag.Bool("v", false, "print version and exit (short)")
)

func main() {
	flag.Parse()

	if *versionFlag || *shortVersion {
		fmt.Printf("ticknote version %s\n", effectiveVersion(Version))
		os.Exit(0)
	}

	// Setup logging
	logLevel := slog.LevelInfo
	if *debugFlag {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Notes.DBPath = config.ExpandPath(*dbPath)
	}

	// Load persistent state (ignore errors - state is optional)
	_ = state.Init()

	store, err := notes.NewStore(cfg.Notes.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open notes database: %v\n", err)
		os.Exit(1)
	}

	// External-change watcher is optional; the app works without it.
	watcher, err := notes.NewWatcher(cfg.Notes.DBPath)
	if err != nil {
		logger.Warn("store watcher unavailable", "error", err)
		watcher = nil
	}

	bus := event.NewWithLogger(logger)

	km := keymap.NewRegistry()
	km.ApplyOverrides(cfg.Keymap.Overrides)

	model := app.New(app.Options{
		Config:  cfg,
		Store:   store,
		Watcher: watcher,
		Bus:     bus,
		Keymap:  km,
		Logger:  logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, runErr := p.Run()

	model.Close()
	bus.Close()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", runErr)
		os.Exit(1)
	}
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadFrom(path)
	}
	return config.Load()
}

// effectiveVersion returns the version string, with fallback to build info.
func effectiveVersion(v string) string {
	if v != "" {
		return v
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}

	if info.Main.Version != "" && info.Main.Version != "(devel)" {
		return info.Main.Version
	}

	var revision string
	var dirty bool
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			revision = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}

	if revision != "" {
		ver := "devel+" + revision
		if len(ver) > 20 {
			ver = ver[:20]
		}
		if dirty {
			ver += "+dirty"
		}
		return ver
	}

	return "devel"
}
