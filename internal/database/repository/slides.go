package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/jask/onboarding/internal/slides"
)

// SlideRepo stores slide decks.
type SlideRepo struct {
	db *sql.DB
}

func NewSlideRepo(db *sql.DB) *SlideRepo {
	return &SlideRepo{db: db}
}

// SlideID is stable for a deck position so re-imports keep ids.
func SlideID(deck string, position int) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("slide:"+deck+":"+strconv.Itoa(position))).String()
}

func (r *SlideRepo) ListDeck(ctx context.Context, deck string) ([]SlideRow, error) {
	rows, err := r.db.QueryContext(ctx, `
	SELECT id, deck, position, title, subtitle, image_id, created_at
	FROM slides WHERE deck = ? ORDER BY position
	`, deck)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []SlideRow
	for rows.Next() {
		var s SlideRow
		if err := rows.Scan(&s.ID, &s.Deck, &s.Position, &s.Title, &s.Subtitle, &s.ImageID, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// LoadDeck returns the deck as slides, failing when it is empty or invalid.
func (r *SlideRepo) LoadDeck(ctx context.Context, deck string) ([]slides.Slide, error) {
	rows, err := r.ListDeck(ctx, deck)
	if err != nil {
		return nil, err
	}
	out := make([]slides.Slide, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.Slide())
	}
	if err := slides.Validate(out); err != nil {
		return nil, fmt.Errorf("deck %q: %w", deck, err)
	}
	return out, nil
}

// ReplaceDeck swaps the whole deck in one transaction.
func (r *SlideRepo) ReplaceDeck(ctx context.Context, deck string, deckSlides []slides.Slide) error {
	if err := slides.Validate(deckSlides); err != nil {
		return err
	}
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM slides WHERE deck = ?`, deck); err != nil {
		_ = tx.Rollback()
		return err
	}
	for i, s := range deckSlides {
		_, err := tx.ExecContext(ctx, `
		INSERT INTO slides(id, deck, position, title, subtitle, image_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		`, SlideID(deck, i), deck, i, s.Title, s.Subtitle, s.ImageID)
		if err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

func (r *SlideRepo) Decks(ctx context.Context) ([]DeckSummary, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT deck, COUNT(*) FROM slides GROUP BY deck ORDER BY deck`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []DeckSummary
	for rows.Next() {
		var d DeckSummary
		if err := rows.Scan(&d.Name, &d.Slides); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
