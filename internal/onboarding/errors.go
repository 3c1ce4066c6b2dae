package onboarding

import "errors"

var (
	// ErrConfiguration means the screen cannot exist, e.g. the deck is empty.
	ErrConfiguration = errors.New("onboarding configuration")
	// ErrIndexOutOfRange means the pager and the controller disagree about
	// the deck. It signals a bug, not a user-facing condition.
	ErrIndexOutOfRange = errors.New("item index out of range")
)
