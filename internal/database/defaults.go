package database

import (
	"context"
	"database/sql"

	"github.com/jask/onboarding/internal/database/repository"
	"github.com/jask/onboarding/internal/slides"
)

// DefaultDeck is the catalog deck seeded on first start.
const DefaultDeck = "default"

// SeedDefaults stores the built-in deck when the catalog has none.
// It is idempotent and safe to run on every startup.
func SeedDefaults(ctx context.Context, db *sql.DB) error {
	repo := repository.NewSlideRepo(db)
	existing, err := repo.ListDeck(ctx, DefaultDeck)
	if err == nil && len(existing) > 0 {
		return nil
	}
	return repo.ReplaceDeck(ctx, DefaultDeck, slides.Default())
}
