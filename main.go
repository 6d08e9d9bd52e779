package main

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fatih/color"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/joho/godotenv"
	"github.com/sadopc/gpacalc/internal/config"
	"github.com/sadopc/gpacalc/internal/logging"
	"github.com/sadopc/gpacalc/internal/state"
	"github.com/sadopc/gpacalc/internal/store"
	"github.com/sadopc/gpacalc/internal/tui"
)

var errColor = color.New(color.FgRed, color.Bold)

func fail(format string, args ...any) {
	errColor.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}

func main() {
	// A missing .env is fine.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fail("error loading config: %v", err)
	}

	logger, logFile, err := logging.New(cfg.Log.Path, cfg.Log.Level)
	if err != nil {
		fail("error opening log: %v", err)
	}
	defer logFile.Close()

	s, err := store.New(cfg.Database.Path)
	if err != nil {
		fail("error opening database: %v", err)
	}
	defer s.Close()

	if ts, err := s.UpdatedAt(state.StorageKey); err == nil {
		level.Debug(logger).Log("msg", "found saved data", "updated_at", ts)
	}

	st, persister := state.Open(s, log.With(logger, "component", "state"))
	defer persister.Close()

	level.Info(logger).Log("msg", "starting", "db", cfg.Database.Path, "export_dir", cfg.Export.Dir)

	app := tui.NewApp(st, cfg.Export.Dir, log.With(logger, "component", "tui"))
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		// Deferred closes are skipped by os.Exit; flush pending writes first.
		persister.Close()
		fail("error: %v", err)
	}
}
