package pager

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/onboarding/internal/geometry"
)

type fixedSource struct {
	count int
	sized []geometry.Size
}

func (s *fixedSource) ItemCount() int { return s.count }

func (s *fixedSource) ItemSize(c geometry.Size) geometry.Size {
	s.sized = append(s.sized, c)
	return c
}

type recorder struct {
	scrolls   []int
	completed int
}

func (r *recorder) HandleScroll(i int)              { r.scrolls = append(r.scrolls, i) }
func (r *recorder) HandleScrollAnimationCompleted() { r.completed++ }

func (r *recorder) lastScroll() int {
	if len(r.scrolls) == 0 {
		return -100
	}
	return r.scrolls[len(r.scrolls)-1]
}

// letterCells fills cell i with the i-th letter so views show which cell is where.
func letterCells(renders *int) CellRenderer {
	return CellRendererFunc(func(index int, size geometry.Size) string {
		if renders != nil {
			*renders++
		}
		line := strings.Repeat(string(rune('A'+index)), size.Width)
		lines := make([]string, size.Height)
		for i := range lines {
			lines[i] = line
		}
		return strings.Join(lines, "\n")
	})
}

func newTestPager(t *testing.T, count int, size geometry.Size) (*Model, *fixedSource, *recorder) {
	t.Helper()
	src := &fixedSource{count: count}
	obs := &recorder{}
	m := New(letterCells(nil), WithLogger(zaptest.NewLogger(t)))
	m.Attach(src, obs)
	m.SetSize(size)
	return m, src, obs
}

// settle runs frames until the pager stops, failing after limit frames.
func settle(t *testing.T, m *Model, limit int) int {
	t.Helper()
	frames := 0
	for m.Moving() {
		m.Update(m.Frame())
		frames++
		require.Less(t, frames, limit, "pager did not settle")
	}
	return frames
}

func TestAnimatedScrollToSettlesAndCompletes(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 3, geometry.Size{Width: 10, Height: 2})
	m.ScrollTo(2, geometry.AlignCenteredHorizontally, true)
	require.True(t, m.Moving())
	require.Zero(t, obs.completed)

	frames := settle(t, m, 1000)
	require.Greater(t, frames, 1)
	require.Equal(t, 1, obs.completed)
	require.InDelta(t, 2.0, m.Position(), 1e-9)
	require.Equal(t, 2, obs.lastScroll())
	require.Equal(t, 2, m.VisibleIndex())

	// Intermediate frames passed through page 1.
	require.Contains(t, obs.scrolls, 1)
}

func TestZeroDistanceScrollStillCompletes(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 3, geometry.Size{Width: 10, Height: 2})
	m.ScrollTo(0, geometry.AlignCenteredHorizontally, true)
	require.True(t, m.Moving())
	settle(t, m, 10)
	require.Equal(t, 1, obs.completed)
	require.Equal(t, []int{0}, obs.scrolls)
}

func TestJumpCompletesImmediately(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 4, geometry.Size{Width: 10, Height: 2})
	m.ScrollTo(3, geometry.AlignLeading, false)
	require.False(t, m.Moving())
	require.Equal(t, 1, obs.completed)
	require.Equal(t, []int{3}, obs.scrolls)
	require.Nil(t, m.Flush())
}

func TestScrollToClampsIndex(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 2, geometry.Size{Width: 8, Height: 1})
	m.ScrollTo(7, geometry.AlignCenteredHorizontally, false)
	require.InDelta(t, 1.0, m.Position(), 1e-9)
	m.ScrollTo(-3, geometry.AlignCenteredHorizontally, false)
	require.InDelta(t, 0.0, m.Position(), 1e-9)
	require.Equal(t, 2, obs.completed)
}

func TestDragReportsMidpointAndOverscroll(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 3, geometry.Size{Width: 10, Height: 1})

	m.ScrollBy(4)
	require.True(t, m.Dragging())
	require.Equal(t, 0, obs.lastScroll())
	m.ScrollBy(2)
	require.Equal(t, 1, obs.lastScroll(), "midpoint crossed into the second item")

	m.Release()
	require.False(t, m.Dragging())
	settle(t, m, 1000)
	require.InDelta(t, 1.0, m.Position(), 1e-9)
	require.Zero(t, obs.completed, "user decelerations do not report completion")

	m.ScrollTo(0, geometry.AlignLeading, false)
	obs.scrolls = nil
	m.ScrollBy(-30)
	require.Equal(t, NoIndex, obs.lastScroll())
	m.Release()
	settle(t, m, 1000)
	require.InDelta(t, 0.0, m.Position(), 1e-9)
	require.Equal(t, 0, obs.lastScroll())
}

func TestShortDragSnapsBack(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestPager(t, 3, geometry.Size{Width: 20, Height: 1})
	m.ScrollBy(3)
	m.Release()
	settle(t, m, 1000)
	require.InDelta(t, 0.0, m.Position(), 1e-9)
}

func TestFlickTurnsOnePageAndAccumulates(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 4, geometry.Size{Width: 10, Height: 1})
	m.Flick(1)
	m.Flick(1)
	settle(t, m, 1000)
	require.InDelta(t, 2.0, m.Position(), 1e-9)
	require.Equal(t, 2, obs.lastScroll())

	m.Flick(-1)
	settle(t, m, 1000)
	require.InDelta(t, 1.0, m.Position(), 1e-9)

	m.Flick(-1)
	m.Flick(-1)
	m.Flick(-1)
	settle(t, m, 1000)
	require.InDelta(t, 0.0, m.Position(), 1e-9)
	require.Zero(t, obs.completed)
}

func TestUserInterruptsProgrammaticScroll(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 3, geometry.Size{Width: 10, Height: 1})
	m.ScrollTo(2, geometry.AlignCenteredHorizontally, true)
	m.Update(m.Frame())
	require.Zero(t, obs.completed)

	m.ScrollBy(1)
	require.Equal(t, 1, obs.completed)
	require.True(t, m.Dragging())
	require.False(t, m.Moving())
}

func TestResizeKeepsPageInView(t *testing.T) {
	t.Parallel()

	m, src, _ := newTestPager(t, 3, geometry.Size{Width: 12, Height: 2})
	m.ScrollTo(1, geometry.AlignCenteredHorizontally, false)
	require.Equal(t, "BBBBBBBBBBBB\nBBBBBBBBBBBB", m.View())

	m.SetSize(geometry.Size{Width: 5, Height: 3})
	m.InvalidateLayout()
	require.Equal(t, "BBBBB\nBBBBB\nBBBBB", m.View())
	require.Equal(t, 1, m.VisibleIndex())
	require.Equal(t, geometry.Size{Width: 5, Height: 3}, src.sized[len(src.sized)-1])
}

func TestViewShowsNeighboursMidScroll(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestPager(t, 3, geometry.Size{Width: 4, Height: 1})
	m.ScrollBy(2)
	require.Equal(t, "AABB", m.View())
	m.ScrollBy(-4)
	view := m.View()
	require.Equal(t, 4, ansi.StringWidth(view))
	require.True(t, strings.HasSuffix(view, "A"), "overscroll shows blank space before the first item: %q", view)
}

func TestCellsAreCachedUntilInvalidated(t *testing.T) {
	t.Parallel()

	renders := 0
	m := New(letterCells(&renders))
	m.Attach(&fixedSource{count: 2}, nil)
	m.SetSize(geometry.Size{Width: 6, Height: 2})

	m.View()
	m.View()
	require.Equal(t, 1, renders)

	m.InvalidateLayout()
	m.View()
	require.Equal(t, 2, renders)
}

func TestFlushSchedulesOneTickAtATime(t *testing.T) {
	t.Parallel()

	m, _, _ := newTestPager(t, 3, geometry.Size{Width: 10, Height: 1})
	require.Nil(t, m.Flush())

	m.ScrollTo(1, geometry.AlignCenteredHorizontally, true)
	require.NotNil(t, m.Flush())
	require.Nil(t, m.Flush(), "tick already pending")

	require.NotNil(t, m.Update(m.Frame()), "still moving after one frame")
	require.Nil(t, m.Update(FrameMsg{}), "frames for other pagers are ignored")
	require.Nil(t, m.Update(tea.KeyMsg{}))
}

func TestEmptySourceCompletesScrollsWithoutMoving(t *testing.T) {
	t.Parallel()

	m, _, obs := newTestPager(t, 0, geometry.Size{Width: 10, Height: 1})
	m.ScrollTo(1, geometry.AlignCenteredHorizontally, true)
	require.False(t, m.Moving())
	require.Equal(t, 1, obs.completed)
	require.Equal(t, NoIndex, m.VisibleIndex())
	require.Equal(t, strings.Repeat(" ", 10), m.View())
}

func TestFloorDiv(t *testing.T) {
	for _, tc := range []struct{ a, b, want int }{
		{7, 3, 2}, {-1, 3, -1}, {-3, 3, -1}, {-4, 3, -2}, {0, 5, 0},
	} {
		require.Equal(t, tc.want, floorDiv(tc.a, tc.b), fmt.Sprintf("%d/%d", tc.a, tc.b))
	}
}
