// Command bookfinder is a terminal browser for the Google Books catalog.
//
// Usage:
//
//	bookfinder                 Open the catalog
//	bookfinder /book/<id>      Open one book directly
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/abelbrown/bookfinder/internal/config"
	"github.com/abelbrown/bookfinder/internal/fetch"
	"github.com/abelbrown/bookfinder/internal/logging"
	"github.com/abelbrown/bookfinder/internal/route"
	"github.com/abelbrown/bookfinder/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logging.Init(cfg.LogDir(), cfg.Log.Level); err != nil {
		log.Fatalf("Failed to initialize logging: %v", err)
	}
	defer logging.Close()

	start := route.Home
	if len(os.Args) > 1 {
		start, err = route.Parse(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "bookfinder: %v\n", err)
			logging.Close()
			os.Exit(1)
		}
	}

	fetcher := fetch.NewFetcher(fetch.Options{
		Endpoint:          cfg.API.Endpoint,
		APIKey:            cfg.API.APIKey,
		Timeout:           cfg.Timeout(),
		RequestsPerSecond: cfg.API.RequestsPerSecond,
	})

	app := ui.NewApp(ui.AppConfig{
		// LoadCatalog: one batch for the wildcard query
		LoadCatalog: func(viewID int) tea.Cmd {
			return func() tea.Msg {
				began := time.Now()
				entries, err := fetcher.Search(ctx, cfg.API.Query, cfg.API.BatchSize)
				return ui.CatalogLoaded{ViewID: viewID, Entries: entries, Took: time.Since(began), Err: err}
			}
		},
		// LoadVolume: a single record by ID
		LoadVolume: func(viewID int, bookID string) tea.Cmd {
			return func() tea.Msg {
				began := time.Now()
				entry, err := fetcher.Volume(ctx, bookID)
				return ui.VolumeLoaded{ViewID: viewID, Entry: entry, Took: time.Since(began), Err: err}
			}
		},
		GridSize:        cfg.UI.GridSize,
		SuggestionLimit: cfg.UI.SuggestionLimit,
		ToggleThreshold: cfg.UI.ToggleThreshold,
		ClampLines:      cfg.UI.ClampLines,
		Start:           start,
	})

	logging.Info("Starting UI", "route", start.Path(), "endpoint", cfg.API.Endpoint)

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("UI exited with error", "err", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		cancel()
		logging.Close()
		os.Exit(1)
	}
}
