// Package tui hosts the onboarding carousel in a Bubble Tea program.
//
// Screen wires the onboarding controller to the pager widget and draws the
// page indicator and key help below it. Host wraps a Screen and ends the
// program when onboarding finishes.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/jask/onboarding/internal/config"
	"github.com/jask/onboarding/internal/geometry"
	"github.com/jask/onboarding/internal/onboarding"
	"github.com/jask/onboarding/internal/pager"
	"github.com/jask/onboarding/internal/slides"
)

// FinishedMsg is sent when next is pressed on the last slide.
type FinishedMsg struct{}

// deferredMsg runs the work the controller deferred to a later turn.
type deferredMsg struct{}

// chromeHeight is the rows below the pager: indicator and help.
const chromeHeight = 2

var glyphSymbols = map[onboarding.Glyph]string{
	onboarding.GlyphRetreatActive:   "●‹",
	onboarding.GlyphRetreatInactive: "○‹",
}

// Screen is the onboarding screen model.
type Screen struct {
	ctrl  *onboarding.Controller
	pager *pager.Model
	dots  paginator.Model
	help  help.Model
	keys  keyMap
	log   *zap.Logger

	queue          onboarding.Queue
	drainScheduled bool
	finishPending  bool

	indicator onboarding.IndicatorState
	debounce  bool
	mouse     bool

	width, height int
	sized         bool
	dragging      bool
	dragX         int
}

// Option configures a Screen.
type Option func(*Screen)

func WithLogger(l *zap.Logger) Option {
	return func(s *Screen) {
		if l != nil {
			s.log = l
		}
	}
}

// NewScreen builds the screen for deck. Images are resolved through images.
func NewScreen(deck []slides.Slide, images imageResolver, ui config.UIConfig, opts ...Option) (*Screen, error) {
	s := &Screen{
		keys:     newKeyMap(),
		log:      zap.NewNop(),
		debounce: ui.DebounceNavigation,
		mouse:    ui.Mouse,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.dots = paginator.New()
	s.dots.Type = paginator.Dots
	s.dots.PerPage = 1
	s.dots.TotalPages = len(deck)
	s.dots.ActiveDot = activeDotStyle.Render("•")
	s.dots.InactiveDot = inactiveDotStyle.Render("•")

	s.help = help.New()
	s.help.Styles.ShortKey = keyStyle
	s.help.Styles.ShortDesc = helpDescStyle
	s.help.Styles.ShortSeparator = helpSepStyle

	cells := newSlideCells(images, ui.GlamourStyle, s.log.Named("cells"))
	s.pager = pager.New(cells,
		pager.WithOptions(pager.Options{
			FPS:       ui.AnimationFPS,
			Frequency: ui.SpringFrequency,
			Damping:   ui.SpringDamping,
		}),
		pager.WithLogger(s.log),
	)
	ctrl, err := onboarding.New(deck, s.pager, s,
		onboarding.WithPresenter(s),
		onboarding.WithFinishHandler(func() { s.finishPending = true }),
		onboarding.WithLogger(s.log),
	)
	if err != nil {
		return nil, err
	}
	s.ctrl = ctrl
	cells.source = ctrl
	s.pager.Attach(ctrl, ctrl)
	return s, nil
}

// Present shows the controller's indicator state.
func (s *Screen) Present(st onboarding.IndicatorState) {
	s.indicator = st
	s.dots.Page = st.Selected
	s.keys.Prev.SetEnabled(st.RetreatEnabled)
	s.keys.setLastPage(st.LastPage)
}

// Defer queues fn until the next turn of the event loop.
func (s *Screen) Defer(fn func()) {
	s.queue.Defer(fn)
}

// Controller exposes the controller for callers that report on progress.
func (s *Screen) Controller() *onboarding.Controller {
	return s.ctrl
}

func (s *Screen) Init() tea.Cmd {
	return s.pending()
}

func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
	case deferredMsg:
		s.drainScheduled = false
		n := s.queue.Drain()
		s.log.Debug("ran deferred work", zap.Int("count", n))
	case pager.FrameMsg:
		cmds = append(cmds, s.pager.Update(msg))
	case tea.KeyMsg:
		if cmd := s.handleKey(msg); cmd != nil {
			return s, cmd
		}
	case tea.MouseMsg:
		if s.mouse {
			s.handleMouse(msg)
		}
	}

	cmds = append(cmds, s.pending())
	return s, tea.Batch(cmds...)
}

func (s *Screen) resize(width, height int) {
	s.width, s.height = width, height
	s.help.Width = width
	s.pager.SetSize(geometry.Size{Width: width, Height: max(height-chromeHeight, 0)})
	if !s.sized {
		s.sized = true
		return
	}
	s.ctrl.HandleLayoutChange()
}

func (s *Screen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, s.keys.Quit):
		return tea.Quit
	case key.Matches(msg, s.keys.Next):
		if s.navigationLocked() {
			s.log.Debug("next ignored while scrolling")
			return nil
		}
		s.ctrl.Advance()
	case key.Matches(msg, s.keys.Prev):
		if s.navigationLocked() {
			s.log.Debug("back ignored while scrolling")
			return nil
		}
		s.ctrl.Retreat()
	case key.Matches(msg, s.keys.Left):
		s.pager.Flick(-1)
	case key.Matches(msg, s.keys.Right):
		s.pager.Flick(1)
	}
	return nil
}

func (s *Screen) handleMouse(msg tea.MouseMsg) {
	switch msg.Button {
	case tea.MouseButtonWheelUp, tea.MouseButtonWheelLeft:
		if msg.Action == tea.MouseActionPress {
			s.pager.Flick(-1)
		}
		return
	case tea.MouseButtonWheelDown, tea.MouseButtonWheelRight:
		if msg.Action == tea.MouseActionPress {
			s.pager.Flick(1)
		}
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && msg.Y < s.pager.Size().Height {
			s.dragging = true
			s.dragX = msg.X
		}
	case tea.MouseActionMotion:
		if s.dragging {
			// Content follows the pointer, so moving left scrolls forward.
			s.pager.ScrollBy(s.dragX - msg.X)
			s.dragX = msg.X
		}
	case tea.MouseActionRelease:
		if s.dragging {
			s.dragging = false
			s.pager.Release()
		}
	}
}

// navigationLocked reports whether next/back presses are dropped because a
// programmatic scroll is still running.
func (s *Screen) navigationLocked() bool {
	return s.debounce && s.ctrl.Animating()
}

// pending collects the follow-up work of a turn: frame ticks, deferred
// controller work and the finish notification.
func (s *Screen) pending() tea.Cmd {
	var cmds []tea.Cmd
	cmds = append(cmds, s.pager.Flush())
	if s.queue.Len() > 0 && !s.drainScheduled {
		s.drainScheduled = true
		cmds = append(cmds, func() tea.Msg { return deferredMsg{} })
	}
	if s.finishPending {
		s.finishPending = false
		cmds = append(cmds, func() tea.Msg { return FinishedMsg{} })
	}
	return tea.Batch(cmds...)
}

func (s *Screen) View() string {
	if !s.sized {
		return ""
	}
	var b strings.Builder
	b.WriteString(s.pager.View())
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, s.indicatorView()))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(s.width, lipgloss.Center, s.help.View(s.keys)))
	return b.String()
}

func (s *Screen) indicatorView() string {
	back := glyphSymbols[s.indicator.RetreatGlyph]
	if s.indicator.RetreatEnabled {
		back = retreatActiveStyle.Render(back)
	} else {
		back = retreatInactiveStyle.Render(back)
	}
	next := nextStyle.Render("›")
	if s.indicator.LastPage {
		next = finishStyle.Render("finish ›")
	}
	return back + "  " + s.dots.View() + "  " + next
}
