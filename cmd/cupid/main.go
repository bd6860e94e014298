package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/abelbrown/cupid/internal/catalog"
	"github.com/abelbrown/cupid/internal/config"
	"github.com/abelbrown/cupid/internal/engine"
	"github.com/abelbrown/cupid/internal/logging"
	"github.com/abelbrown/cupid/internal/owned"
	"github.com/abelbrown/cupid/internal/shuffle"
	"github.com/abelbrown/cupid/internal/store"
	"github.com/abelbrown/cupid/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
)

func main() {
	configPath := flag.String("config", config.ConfigPath(), "path to config.json")
	source := flag.String("catalog", "", "catalog file or URL (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *source != "" {
		cfg.CatalogSource = *source
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	// The TUI owns stdout, so logs go to a file
	if err := logging.Init(cfg.DataDir, logging.ParseLevel(cfg.LogLevel)); err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Close()

	runID, err := uuid.NewV7()
	if err != nil {
		runID = uuid.New()
	}
	logging.Logger = logging.With("run", runID.String())
	logging.Info("starting", "catalog", cfg.CatalogSource, "data_dir", cfg.DataDir, "seed", cfg.Seed)

	st, err := store.Open(cfg.DBPath())
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	adapter := owned.NewAdapter(st, owned.DefaultKey)
	saver := owned.NewSaver(adapter)
	reducer := engine.NewReducer(shuffle.NewRandom(cfg.Seed))
	state := owned.Hydrate(reducer, engine.NewState(), adapter.Load())
	logging.Info("owned selection restored", "count", state.Owned().Len())

	loader := catalog.NewLoader(30*time.Second, 2*time.Second)

	app := ui.NewApp(ui.AppConfig{
		Reducer: reducer,
		State:   state,
		LoadCatalog: func() tea.Cmd {
			return func() tea.Msg {
				ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
				defer cancel()
				items, err := loader.Load(ctx, cfg.CatalogSource)
				return ui.CatalogLoaded{Items: items, Err: err}
			}
		},
		SaveOwned:   ui.SaveWith(saver),
		BrowseLimit: cfg.BrowseLimit,
		SearchLimit: cfg.SearchLimit,
	})

	program := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logging.Error("program exited", "err", err)
		log.Printf("Error running program: %v", err)
	}

	// Save commands still in flight are abandoned by the program
	if n, ok := saver.Flush(); ok {
		logging.Info("owned selection flushed", "count", n)
	}
	logging.Info("bye")
}
