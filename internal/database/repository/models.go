package repository

import (
	"time"

	"github.com/jask/onboarding/internal/slides"
)

// SlideRow represents a slides row.
type SlideRow struct {
	ID        string
	Deck      string
	Position  int
	Title     string
	Subtitle  string
	ImageID   string
	CreatedAt time.Time
}

// Slide converts the row to the value the screen shows.
func (r SlideRow) Slide() slides.Slide {
	return slides.Slide{Title: r.Title, Subtitle: r.Subtitle, ImageID: r.ImageID}
}

// DeckSummary is one line of the deck listing.
type DeckSummary struct {
	Name   string
	Slides int
}
