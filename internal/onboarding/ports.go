package onboarding

import "github.com/jask/onboarding/internal/geometry"

// ScrollCommandSink is the part of the pager the controller drives.
type ScrollCommandSink interface {
	ScrollTo(index int, align geometry.Alignment, animated bool)
	InvalidateLayout()
}

// Presenter receives the indicator state after every state change.
type Presenter interface {
	Present(IndicatorState)
}

// Scheduler runs fn on a later turn of the UI event loop, never inline.
type Scheduler interface {
	Defer(fn func())
}

// PresenterFunc adapts a function to Presenter.
type PresenterFunc func(IndicatorState)

func (f PresenterFunc) Present(st IndicatorState) { f(st) }
