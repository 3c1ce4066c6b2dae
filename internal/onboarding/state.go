package onboarding

// ScrollPhase says who is currently moving the pager.
type ScrollPhase int

const (
	// PhaseIdle means scroll notifications come from the user.
	PhaseIdle ScrollPhase = iota
	// PhaseAnimatingProgrammaticScroll means the controller issued a scroll
	// and has not yet seen its completion.
	PhaseAnimatingProgrammaticScroll
)

func (p ScrollPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseAnimatingProgrammaticScroll:
		return "animating"
	default:
		return "unknown"
	}
}

// PagingState is a snapshot of the controller's mutable state.
type PagingState struct {
	CurrentPage int
	Phase       ScrollPhase
}

// Glyph names the artwork of the previous control.
type Glyph string

const (
	GlyphRetreatActive   Glyph = "chevron.backward.circle.fill"
	GlyphRetreatInactive Glyph = "chevron.left.circle"
)

// IndicatorState is everything the chrome around the pager shows.
type IndicatorState struct {
	Selected       int
	PageCount      int
	RetreatEnabled bool
	RetreatGlyph   Glyph
	LastPage       bool
}

// Render derives the indicator state for page. It depends on nothing else.
func Render(page, pageCount int) IndicatorState {
	st := IndicatorState{
		Selected:  page,
		PageCount: pageCount,
		LastPage:  page == pageCount-1,
	}
	if page != 0 {
		st.RetreatEnabled = true
		st.RetreatGlyph = GlyphRetreatActive
	} else {
		st.RetreatGlyph = GlyphRetreatInactive
	}
	return st
}
