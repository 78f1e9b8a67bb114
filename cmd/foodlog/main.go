package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rsoares/foodlog/internal/app"
	"github.com/rsoares/foodlog/internal/config"
	"github.com/rsoares/foodlog/internal/estimate"
	"github.com/rsoares/foodlog/internal/journal"
	"github.com/rsoares/foodlog/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "foodlog: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.LogPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "foodlog: open log: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()
	log := logger.Sugar()

	backend, err := journal.OpenSQLite(cfg.DBPath(), cfg.SlotName)
	if err != nil {
		log.Errorw("open journal", "path", cfg.DBPath(), "error", err)
		fmt.Fprintf(os.Stderr, "foodlog: open journal: %v\n", err)
		os.Exit(1)
	}
	defer backend.Close()

	store := journal.NewStore(backend, log)
	store.SetCap(cfg.JournalCap)

	m := app.New(store, estimate.NewStub(), cfg.AnalysisDelay, log)

	log.Infow("starting", "db", cfg.DBPath(), "cap", cfg.JournalCap)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Errorw("program exited", "error", err)
		fmt.Fprintf(os.Stderr, "foodlog: %v\n", err)
		os.Exit(1)
	}
}
