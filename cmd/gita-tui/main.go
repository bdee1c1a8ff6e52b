package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"gita-tui/internal/assets"
	"gita-tui/internal/config"
	"gita-tui/internal/content"
	"gita-tui/internal/prefs"
	"gita-tui/internal/state"
	"gita-tui/internal/ui"
)

const downloadTimeout = 2 * time.Minute

func main() {
	configDir := flag.String("config", "", "directory holding config.{yaml,toml,json} (default: user config dir)")
	flag.Parse()

	if err := run(*configDir); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}
}

func run(configDir string) error {
	cfg, err := config.Load(configDir)
	if err != nil {
		return err
	}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "gita")
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	backend, closer, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	defer closer.Close()

	appState := state.Load(prefs.New(backend), cfg.UI.Theme)
	index := loadContent(cfg.Assets)

	p := tea.NewProgram(
		ui.NewModel(ui.Options{Index: index, State: appState}),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err = p.Run()
	return err
}

type noClose struct{}

func (noClose) Close() error { return nil }

func openStore(cfg config.Store) (prefs.Backend, io.Closer, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		db, err := prefs.OpenSQLite(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case config.BackendMemory:
		return prefs.NewMemory(), noClose{}, nil
	default:
		f, err := prefs.OpenFile(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		return f, noClose{}, nil
	}
}

// loadContent never fails: anything that goes wrong leaves the affected
// collections empty so bookmarks and settings stay usable.
func loadContent(cfg config.Assets) *content.Index {
	if cfg.URL != "" && cfg.Bundle != "" {
		ctx, cancel := context.WithTimeout(context.Background(), downloadTimeout)
		defer cancel()
		if err := assets.NewDownloader().Fetch(ctx, cfg.URL, cfg.Bundle); err != nil {
			log.Printf("assets: download %s: %v", cfg.URL, err)
		}
	}

	fsys, closer, err := assets.Open(cfg.Dir, cfg.Bundle)
	if err != nil {
		log.Printf("assets: %v", err)
		return content.NewIndex(nil, nil, nil, nil)
	}
	defer closer.Close()

	return assets.Load(fsys).Index()
}
