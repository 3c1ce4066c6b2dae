package pager

import (
	"math"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"go.uber.org/zap"

	"github.com/jask/onboarding/internal/geometry"
)

// NoIndex is reported when no item lies under the viewport midpoint, for
// example while the user drags past either end.
const NoIndex = -1

// ItemSource answers how many items there are and how large each one is.
type ItemSource interface {
	ItemCount() int
	ItemSize(container geometry.Size) geometry.Size
}

// CellRenderer draws the item at index into a cell of the given size.
type CellRenderer interface {
	RenderCell(index int, size geometry.Size) string
}

// CellRendererFunc adapts a function to CellRenderer.
type CellRendererFunc func(index int, size geometry.Size) string

func (f CellRendererFunc) RenderCell(index int, size geometry.Size) string { return f(index, size) }

// Observer is notified about offset changes and finished programmatic scrolls.
type Observer interface {
	HandleScroll(visibleIndex int)
	HandleScrollAnimationCompleted()
}

// FrameMsg advances the animation of the pager with the matching id.
type FrameMsg struct {
	id int64
}

type motion int

const (
	motionNone motion = iota
	motionProgrammatic
	motionDeceleration
)

func (m motion) String() string {
	switch m {
	case motionProgrammatic:
		return "programmatic"
	case motionDeceleration:
		return "deceleration"
	default:
		return "none"
	}
}

const (
	settleDistance = 0.001
	settleVelocity = 0.01
	flickVelocity  = 3.0

	// A drag that moves further than this fraction of a page turns the page
	// on release.
	pageTurnThreshold = 0.2

	// Resistance applied to drags beyond either end.
	rubberBand = 0.35
)

var lastID int64

func nextID() int64 {
	return atomic.AddInt64(&lastID, 1)
}

// Options tune the scroll animation.
type Options struct {
	FPS       int
	Frequency float64
	Damping   float64
}

// DefaultOptions returns a quick, barely overshooting spring at 60 fps.
func DefaultOptions() Options {
	return Options{FPS: 60, Frequency: 7.0, Damping: 0.9}
}

// Option configures a Model.
type Option func(*Model)

func WithOptions(o Options) Option {
	return func(m *Model) {
		if o.FPS > 0 {
			m.opts.FPS = o.FPS
		}
		if o.Frequency > 0 {
			m.opts.Frequency = o.Frequency
		}
		if o.Damping > 0 {
			m.opts.Damping = o.Damping
		}
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// Model is the pager widget. It is used through a pointer and mutated in
// place; Update and Flush return the frame ticks it needs.
type Model struct {
	id       int64
	source   ItemSource
	cells    CellRenderer
	observer Observer
	log      *zap.Logger
	opts     Options
	spring   harmonica.Spring

	viewport    geometry.Size
	item        geometry.Size
	layoutValid bool
	cache       map[int][]string

	// Positions are in pages: 1.0 is one item width.
	pos       float64
	vel       float64
	target    float64
	motion    motion
	dragging  bool
	dragStart float64
	ticking   bool
}

// New builds a pager that draws cells with cells. Attach must be called
// before the pager is shown.
func New(cells CellRenderer, opts ...Option) *Model {
	m := &Model{
		id:    nextID(),
		cells: cells,
		log:   zap.NewNop(),
		opts:  DefaultOptions(),
		cache: make(map[int][]string),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.log = m.log.Named("pager")
	m.spring = harmonica.NewSpring(harmonica.FPS(m.opts.FPS), m.opts.Frequency, m.opts.Damping)
	return m
}

// Attach connects the data source and the observer.
func (m *Model) Attach(source ItemSource, observer Observer) {
	m.source = source
	m.observer = observer
	m.layoutValid = false
}

// SetSize resizes the viewport. The cached layout is dropped; the position
// in pages is kept.
func (m *Model) SetSize(size geometry.Size) {
	if size == m.viewport {
		return
	}
	m.log.Debug("viewport resized", zap.Stringer("from", m.viewport), zap.Stringer("to", size))
	m.viewport = size
	m.layoutValid = false
}

func (m *Model) Size() geometry.Size {
	return m.viewport
}

// InvalidateLayout drops cached item sizes and cells. They are rebuilt from
// the source on next use.
func (m *Model) InvalidateLayout() {
	m.layoutValid = false
}

// ScrollTo moves to the item at index. An animated scroll reports completion
// on the frame it settles, even when it does not have to move; a jump
// reports completion at once.
func (m *Model) ScrollTo(index int, align geometry.Alignment, animated bool) {
	m.ensureLayout()
	count := m.count()
	if count == 0 {
		m.notifyCompleted()
		return
	}
	index = clampInt(index, 0, count-1)
	m.dragging = false
	m.target = m.targetFor(index, align)
	if !animated {
		m.pos, m.vel = m.target, 0
		m.motion = motionNone
		m.notifyScroll()
		m.notifyCompleted()
		return
	}
	m.log.Debug("scroll", zap.Int("index", index), zap.Stringer("align", align), zap.Float64("from", m.pos))
	m.motion = motionProgrammatic
}

// ScrollBy moves the content by cols as the user drags it. Positive values
// move towards later items.
func (m *Model) ScrollBy(cols int) {
	m.ensureLayout()
	if m.count() == 0 || cols == 0 {
		return
	}
	if !m.dragging {
		m.interrupt()
		m.dragging = true
		m.dragStart = math.Round(m.pos)
	}
	delta := float64(cols) / float64(m.itemWidth())
	if m.pos < 0 || m.pos > m.maxPos() {
		delta *= rubberBand
	}
	m.pos += delta
	m.notifyScroll()
}

// Release ends a drag and lets the content settle on a page.
func (m *Model) Release() {
	if !m.dragging {
		return
	}
	m.dragging = false
	dest := m.dragStart
	switch moved := m.pos - m.dragStart; {
	case moved > pageTurnThreshold:
		dest = m.dragStart + 1
	case moved < -pageTurnThreshold:
		dest = m.dragStart - 1
	}
	m.decelerateTo(dest, 0)
}

// Flick is a whole-page swipe by the user, dir < 0 towards earlier items.
func (m *Model) Flick(dir int) {
	m.ensureLayout()
	if m.count() == 0 || dir == 0 {
		return
	}
	base := math.Round(m.pos)
	if m.motion == motionDeceleration {
		base = m.target
	}
	m.interrupt()
	m.dragging = false
	step := 1.0
	if dir < 0 {
		step = -1
	}
	m.decelerateTo(base+step, step*flickVelocity)
}

// Update advances the animation on this pager's frames.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	f, ok := msg.(FrameMsg)
	if !ok || f.id != m.id {
		return nil
	}
	m.ticking = false
	m.step()
	return m.Flush()
}

// Flush returns the frame tick the pager needs, if it is moving and no tick
// is already pending.
func (m *Model) Flush() tea.Cmd {
	if m.motion == motionNone || m.ticking {
		return nil
	}
	m.ticking = true
	id := m.id
	return tea.Tick(time.Second/time.Duration(m.opts.FPS), func(time.Time) tea.Msg {
		return FrameMsg{id: id}
	})
}

// Frame returns the message that advances this pager by one frame. Hosts
// that drive time themselves, such as tests, feed it to Update.
func (m *Model) Frame() FrameMsg {
	return FrameMsg{id: m.id}
}

// Moving reports whether an animation or deceleration is running.
func (m *Model) Moving() bool {
	return m.motion != motionNone
}

// Dragging reports whether a user drag is in progress.
func (m *Model) Dragging() bool {
	return m.dragging
}

// Position is the scroll offset in pages.
func (m *Model) Position() float64 {
	return m.pos
}

// VisibleIndex is the item under the horizontal midpoint of the viewport,
// or NoIndex.
func (m *Model) VisibleIndex() int {
	m.ensureLayout()
	w := float64(m.itemWidth())
	mid := m.pos*w + float64(m.viewportWidth())/2
	idx := int(math.Floor(mid / w))
	if idx < 0 || idx >= m.count() {
		return NoIndex
	}
	return idx
}

// View draws the visible part of the strip of cells.
func (m *Model) View() string {
	m.ensureLayout()
	if m.viewport.Empty() {
		return ""
	}
	itemW := m.itemWidth()
	left := int(math.Round(m.pos * float64(itemW)))
	first := floorDiv(left, itemW)
	last := floorDiv(left+m.viewport.Width-1, itemW)
	skip := left - first*itemW

	blank := strings.Repeat(" ", itemW)
	rows := make([]string, m.viewport.Height)
	var b strings.Builder
	for r := range rows {
		b.Reset()
		for i := first; i <= last; i++ {
			cell := m.cell(i)
			if r < len(cell) {
				b.WriteString(cell[r])
			} else {
				b.WriteString(blank)
			}
		}
		rows[r] = window(b.String(), skip, m.viewport.Width)
	}
	return strings.Join(rows, "\n")
}

func (m *Model) step() {
	if m.motion == motionNone {
		return
	}
	m.pos, m.vel = m.spring.Update(m.pos, m.vel, m.target)
	settled := math.Abs(m.pos-m.target) < settleDistance && math.Abs(m.vel) < settleVelocity
	kind := m.motion
	if settled {
		m.pos, m.vel = m.target, 0
		m.motion = motionNone
	}
	m.notifyScroll()
	if settled {
		m.log.Debug("settled", zap.Stringer("motion", kind), zap.Float64("pos", m.pos))
		if kind == motionProgrammatic {
			m.notifyCompleted()
		}
	}
}

func (m *Model) decelerateTo(dest, vel float64) {
	m.target = clampFloat(dest, 0, m.maxPos())
	m.vel = vel
	m.motion = motionDeceleration
}

// interrupt stops any running motion before the user takes over. A cut-short
// programmatic animation still reports completion so the observer does not
// wait for it forever.
func (m *Model) interrupt() {
	kind := m.motion
	m.motion = motionNone
	m.vel = 0
	if kind == motionProgrammatic {
		m.log.Debug("programmatic scroll interrupted by user", zap.Float64("pos", m.pos))
		m.notifyCompleted()
	}
}

func (m *Model) targetFor(index int, align geometry.Alignment) float64 {
	itemW := float64(m.itemWidth())
	left := float64(index) * itemW
	if align == geometry.AlignCenteredHorizontally {
		left += itemW/2 - float64(m.viewportWidth())/2
	}
	return clampFloat(left/itemW, 0, m.maxPos())
}

// maxPos is the last position that still fills the viewport with content.
func (m *Model) maxPos() float64 {
	itemW := float64(m.itemWidth())
	content := float64(m.count()) * itemW
	return math.Max(0, (content-float64(m.viewportWidth()))/itemW)
}

func (m *Model) ensureLayout() {
	if m.layoutValid {
		return
	}
	m.item = geometry.Size{}
	if m.source != nil && !m.viewport.Empty() {
		m.item = m.source.ItemSize(m.viewport)
	}
	clear(m.cache)
	m.layoutValid = true
}

func (m *Model) cell(index int) []string {
	if index < 0 || index >= m.count() {
		return nil
	}
	if lines, ok := m.cache[index]; ok {
		return lines
	}
	size := m.item
	if size.Empty() {
		size = m.viewport
	}
	var content string
	if m.cells != nil {
		content = m.cells.RenderCell(index, size)
	}
	lines := fitBlock(content, m.itemWidth(), size.Height)
	m.cache[index] = lines
	return lines
}

func (m *Model) count() int {
	if m.source == nil {
		return 0
	}
	return m.source.ItemCount()
}

// itemWidth never returns less than one cell so positions stay defined
// before the first layout.
func (m *Model) itemWidth() int {
	if m.item.Width > 0 {
		return m.item.Width
	}
	return max(m.viewport.Width, 1)
}

func (m *Model) viewportWidth() int {
	return max(m.viewport.Width, 1)
}

func (m *Model) notifyScroll() {
	if m.observer != nil {
		m.observer.HandleScroll(m.VisibleIndex())
	}
}

func (m *Model) notifyCompleted() {
	if m.observer != nil {
		m.observer.HandleScrollAnimationCompleted()
	}
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
