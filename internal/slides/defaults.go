package slides

// Default returns the built-in deck shown when no deck file or catalog deck
// is configured.
func Default() []Slide {
	return []Slide{
		{
			Title:    "Welcome aboard",
			Subtitle: "A quick tour before you start. It only takes **three** pages.",
			ImageID:  "welcome",
		},
		{
			Title:    "Swipe or press",
			Subtitle: "Use `←` `→` or the mouse wheel to swipe, `n` and `p` to step through.",
			ImageID:  "swipe",
		},
		{
			Title:    "You're all set",
			Subtitle: "Press `enter` on this page to finish onboarding.",
			ImageID:  "done",
		},
	}
}
