// Package slides defines onboarding slides and loads decks of them from
// TOML or YAML files.
package slides

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyDeck    = errors.New("deck has no slides")
	ErrInvalidSlide = errors.New("invalid slide")
)

// Slide is a single onboarding page. It is a value and never mutated after
// the deck is built.
type Slide struct {
	Title    string `toml:"title" yaml:"title"`
	Subtitle string `toml:"subtitle" yaml:"subtitle"`
	ImageID  string `toml:"image" yaml:"image"`
}

// Validate checks that deck is usable as an onboarding sequence.
func Validate(deck []Slide) error {
	if len(deck) == 0 {
		return ErrEmptyDeck
	}
	for i, s := range deck {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("%w: slide %d has no title", ErrInvalidSlide, i)
		}
	}
	return nil
}

// Clone returns a copy of deck so callers cannot mutate a shared backing array.
func Clone(deck []Slide) []Slide {
	out := make([]Slide, len(deck))
	copy(out, deck)
	return out
}
