package onboarding

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/jask/onboarding/internal/geometry"
	"github.com/jask/onboarding/internal/slides"
)

// Controller drives the onboarding carousel.
type Controller struct {
	deck      []slides.Slide
	sink      ScrollCommandSink
	scheduler Scheduler
	presenter Presenter
	onFinish  func()
	log       *zap.Logger

	current        int
	phase          ScrollPhase
	rescrollQueued bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithPresenter sets the receiver of indicator updates.
func WithPresenter(p Presenter) Option {
	return func(c *Controller) { c.presenter = p }
}

// WithFinishHandler sets the func called when next is pressed on the last page.
func WithFinishHandler(fn func()) Option {
	return func(c *Controller) { c.onFinish = fn }
}

func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// New builds a controller positioned on the first slide and presents its
// indicator state. The deck is copied.
func New(deck []slides.Slide, sink ScrollCommandSink, scheduler Scheduler, opts ...Option) (*Controller, error) {
	if len(deck) == 0 {
		return nil, fmt.Errorf("%w: no slides", ErrConfiguration)
	}
	if sink == nil {
		return nil, fmt.Errorf("%w: no scroll command sink", ErrConfiguration)
	}
	if scheduler == nil {
		return nil, fmt.Errorf("%w: no scheduler", ErrConfiguration)
	}
	c := &Controller{
		deck:      slides.Clone(deck),
		sink:      sink,
		scheduler: scheduler,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.Named("onboarding")
	c.render()
	return c, nil
}

// Advance handles the next control. On the last page it signals completion
// and leaves the state alone.
func (c *Controller) Advance() {
	if c.current == c.lastIndex() {
		c.log.Debug("next pressed on last page", zap.Int("page", c.current))
		if c.onFinish != nil {
			c.onFinish()
		}
		return
	}
	c.current++
	c.scrollToCurrent()
	c.render()
}

// Retreat handles the previous control. It does nothing on the first page.
func (c *Controller) Retreat() {
	if c.current == 0 {
		return
	}
	c.current--
	c.scrollToCurrent()
	c.render()
}

// HandleScroll receives the pager's visible index whenever its offset moves.
// Indexes the pager could not resolve fall back to the first page.
func (c *Controller) HandleScroll(visibleIndex int) {
	if c.phase == PhaseAnimatingProgrammaticScroll {
		return
	}
	page := visibleIndex
	if page < 0 || page >= len(c.deck) {
		page = 0
	}
	if page != c.current {
		c.log.Debug("user scrolled", zap.Int("from", c.current), zap.Int("to", page))
	}
	c.current = page
	c.render()
}

// HandleScrollAnimationCompleted re-arms user scroll tracking.
func (c *Controller) HandleScrollAnimationCompleted() {
	if c.phase != PhaseIdle {
		c.log.Debug("programmatic scroll completed", zap.Int("page", c.current))
	}
	c.phase = PhaseIdle
}

// HandleLayoutChange invalidates the pager layout and, on a later turn,
// scrolls back to the current page. Changes that arrive before that turn
// share one scroll.
func (c *Controller) HandleLayoutChange() {
	c.sink.InvalidateLayout()
	if c.rescrollQueued {
		return
	}
	c.rescrollQueued = true
	c.scheduler.Defer(func() {
		c.rescrollQueued = false
		c.log.Debug("re-scrolling after layout change", zap.Int("page", c.current))
		c.scrollToCurrent()
	})
}

// ItemCount is the number of slides.
func (c *Controller) ItemCount() int {
	return len(c.deck)
}

// ItemAt returns the slide at index. An out-of-range index means the pager
// and the controller disagree, which is a bug: it is logged at DPanic level.
func (c *Controller) ItemAt(index int) (slides.Slide, error) {
	if index < 0 || index >= len(c.deck) {
		c.log.DPanic("item requested outside deck", zap.Int("index", index), zap.Int("count", len(c.deck)))
		return slides.Slide{}, fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfRange, index, len(c.deck))
	}
	return c.deck[index], nil
}

// ItemSize makes every slide fill the viewport.
func (c *Controller) ItemSize(container geometry.Size) geometry.Size {
	return container
}

func (c *Controller) CurrentPage() int {
	return c.current
}

func (c *Controller) Phase() ScrollPhase {
	return c.phase
}

// Animating reports whether a programmatic scroll is in flight.
func (c *Controller) Animating() bool {
	return c.phase == PhaseAnimatingProgrammaticScroll
}

func (c *Controller) State() PagingState {
	return PagingState{CurrentPage: c.current, Phase: c.phase}
}

// Indicator is the render rule applied to the current page.
func (c *Controller) Indicator() IndicatorState {
	return Render(c.current, len(c.deck))
}

func (c *Controller) lastIndex() int {
	return len(c.deck) - 1
}

// scrollToCurrent marks the phase before the command goes out so that the
// pager's synchronous notifications are already suppressed.
func (c *Controller) scrollToCurrent() {
	c.phase = PhaseAnimatingProgrammaticScroll
	c.sink.ScrollTo(c.current, geometry.AlignCenteredHorizontally, true)
}

func (c *Controller) render() {
	if c.presenter != nil {
		c.presenter.Present(c.Indicator())
	}
}
