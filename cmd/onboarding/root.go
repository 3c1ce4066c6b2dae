package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jask/onboarding/internal/config"
	"github.com/jask/onboarding/internal/database"
	"github.com/jask/onboarding/internal/database/repository"
	"github.com/jask/onboarding/internal/logging"
	"github.com/jask/onboarding/internal/slides"
)

// app is what every command needs after flags are parsed.
type app struct {
	configPath string
	deckFile   string
	noLog      bool

	cfg config.Config
	log *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "onboarding",
		Short:         "Walk through the onboarding slides in the terminal",
		Long:          `Shows the onboarding slides as a swipeable carousel. Press enter on the last slide to finish.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runScreen(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $ONBOARDING_CONFIG or ~/.config/onboarding/config.toml)")
	root.PersistentFlags().StringVar(&a.deckFile, "deck-file", "", "TOML or YAML deck to show instead of the catalog deck")
	root.PersistentFlags().BoolVar(&a.noLog, "no-log", false, "do not write the log file")

	root.AddCommand(a.slidesCmd(), a.configCmd())
	return root
}

func (a *app) setup() error {
	cfg, err := config.LoadFrom(a.configPath)
	if err != nil {
		return err
	}
	if a.noLog {
		cfg.Log.Path = ""
	}
	log, err := logging.New(cfg.Log)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// openCatalog opens, migrates and seeds the slide catalog.
func (a *app) openCatalog(ctx context.Context) (*sql.DB, *repository.SlideRepo, error) {
	db, err := database.Open(a.cfg.Catalog.Path)
	if err != nil {
		return nil, nil, fmt.Errorf("open catalog: %w", err)
	}
	if err := database.RunMigrations(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	if err := database.SeedDefaults(ctx, db); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("seed catalog: %w", err)
	}
	return db, repository.NewSlideRepo(db), nil
}

// loadDeck picks the deck to show: --deck-file, then slides.file, then the
// catalog deck.
func (a *app) loadDeck(ctx context.Context) ([]slides.Slide, string, error) {
	for _, path := range []string{a.deckFile, a.cfg.Slides.File} {
		if path == "" {
			continue
		}
		deck, err := slides.LoadFile(path)
		if err != nil {
			return nil, "", err
		}
		return deck, path, nil
	}

	db, repo, err := a.openCatalog(ctx)
	if err != nil {
		return nil, "", err
	}
	defer db.Close()
	deck, err := repo.LoadDeck(ctx, a.cfg.Catalog.Deck)
	if err != nil {
		return nil, "", err
	}
	return deck, "catalog:" + a.cfg.Catalog.Deck, nil
}
