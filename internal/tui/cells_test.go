package tui

import (
	"errors"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/jask/onboarding/internal/geometry"
	"github.com/jask/onboarding/internal/slides"
)

type deckSource []slides.Slide

func (d deckSource) ItemAt(i int) (slides.Slide, error) {
	if i < 0 || i >= len(d) {
		return slides.Slide{}, errors.New("out of range")
	}
	return d[i], nil
}

func newTestCells(t *testing.T, deck []slides.Slide) (*slideCells, *stubImages) {
	images := &stubImages{}
	c := newSlideCells(images, "ascii", zaptest.NewLogger(t))
	c.source = deckSource(deck)
	return c, images
}

func TestSlideCellDrawsTitleImageAndMarkdown(t *testing.T) {
	t.Parallel()

	c, images := newTestCells(t, slides.Default())
	out := ansi.Strip(c.RenderCell(0, geometry.Size{Width: 60, Height: 20}))
	require.Contains(t, out, "Welcome aboard")
	require.Contains(t, out, "[img:welcome]")
	require.Contains(t, out, "quick tour")
	require.Equal(t, []string{"welcome"}, images.resolved)

	for _, line := range splitLines(out) {
		require.LessOrEqual(t, ansi.StringWidth(line), 60)
	}
}

func TestSlideCellSkipsImageWithoutRoom(t *testing.T) {
	t.Parallel()

	c, images := newTestCells(t, []slides.Slide{{Title: "Tight", ImageID: "welcome"}})
	out := ansi.Strip(c.RenderCell(0, geometry.Size{Width: 30, Height: 2}))
	require.Contains(t, out, "Tight")
	require.Empty(t, images.resolved)
}

func TestSlideCellWithoutImageOrSubtitle(t *testing.T) {
	t.Parallel()

	c, images := newTestCells(t, []slides.Slide{{Title: "Plain"}})
	out := ansi.Strip(c.RenderCell(0, geometry.Size{Width: 30, Height: 10}))
	require.Contains(t, out, "Plain")
	require.Empty(t, images.resolved)
}

func TestSlideCellOutOfRangeIsBlank(t *testing.T) {
	t.Parallel()

	c, _ := newTestCells(t, slides.Default())
	require.Empty(t, c.RenderCell(7, geometry.Size{Width: 30, Height: 10}))
	require.Empty(t, c.RenderCell(0, geometry.Size{}))
}

func TestSlideCellReusesRendererPerWidth(t *testing.T) {
	t.Parallel()

	c, _ := newTestCells(t, slides.Default())
	c.RenderCell(0, geometry.Size{Width: 40, Height: 12})
	c.RenderCell(1, geometry.Size{Width: 40, Height: 12})
	require.Len(t, c.renderers, 1)
	c.RenderCell(1, geometry.Size{Width: 50, Height: 12})
	require.Len(t, c.renderers, 2)
}

func TestTidyMarkdown(t *testing.T) {
	t.Parallel()

	require.Equal(t, "  hello\n  world", tidyMarkdown("\n   \n  hello   \n  world\n\n"))
	require.Empty(t, tidyMarkdown("\n\n"))
}

func TestResolveGlamourStyle(t *testing.T) {
	t.Parallel()

	require.Equal(t, "dracula", resolveGlamourStyle(" Dracula "))
	require.Equal(t, "ascii", resolveGlamourStyle("ascii"))
}

func splitLines(s string) []string {
	var out []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
