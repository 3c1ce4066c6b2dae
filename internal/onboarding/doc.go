// Package onboarding contains the paging state machine behind the onboarding
// carousel.
//
// A Controller owns the current page and the scroll phase. It answers the
// pager's data-source questions (item count, item data, item size), turns
// next/previous presses into programmatic scroll commands, and tracks the
// page the user swipes to. Scroll notifications that arrive while one of its
// own programmatic scrolls is animating are ignored, so the widget's replay
// of that animation can never be read back as a user gesture.
//
// Allowed here:
// - paging state, the indicator render rule, the data-source contract
//
// Not allowed here:
// - terminal rendering, key handling, animation physics
//
// A Controller is not safe for concurrent use; every method must be called
// from the single UI event loop.
package onboarding
