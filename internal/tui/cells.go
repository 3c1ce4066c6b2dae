package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"go.uber.org/zap"

	"github.com/jask/onboarding/internal/geometry"
	"github.com/jask/onboarding/internal/slides"
)

type slideSource interface {
	ItemAt(index int) (slides.Slide, error)
}

type imageResolver interface {
	Resolve(id string, box geometry.Size) string
}

// slideCells draws one slide per pager cell: title, image and a markdown
// subtitle, centered in the cell.
type slideCells struct {
	source    slideSource
	images    imageResolver
	style     string
	log       *zap.Logger
	renderers map[int]*glamour.TermRenderer
}

func newSlideCells(images imageResolver, style string, log *zap.Logger) *slideCells {
	return &slideCells{
		images:    images,
		style:     resolveGlamourStyle(style),
		log:       log,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// resolveGlamourStyle turns "auto" into a concrete style once, at startup.
func resolveGlamourStyle(style string) string {
	style = strings.ToLower(strings.TrimSpace(style))
	if style == "" || style == "auto" {
		if termenv.HasDarkBackground() {
			return "dark"
		}
		return "light"
	}
	return style
}

func (c *slideCells) RenderCell(index int, size geometry.Size) string {
	if c.source == nil || size.Empty() {
		return ""
	}
	s, err := c.source.ItemAt(index)
	if err != nil {
		c.log.Warn("render cell", zap.Int("index", index), zap.Error(err))
		return ""
	}

	inner := max(size.Width-4, 1)
	title := titleStyle.Render(truncateLine(s.Title, inner))
	body := c.markdown(s.Subtitle, inner)

	used := 1
	if body != "" {
		used += 1 + lipgloss.Height(body)
	}
	parts := []string{title}
	if box := (geometry.Size{Width: inner, Height: size.Height - used - 1}); s.ImageID != "" && box.Height > 0 {
		if art := c.images.Resolve(s.ImageID, box); art != "" {
			parts = []string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, art), "", title}
		}
	}
	if body != "" {
		parts = append(parts, "", body)
	}
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	return lipgloss.Place(size.Width, size.Height, lipgloss.Center, lipgloss.Center, content)
}

// markdown renders a subtitle wrapped to width, falling back to plain text.
func (c *slideCells) markdown(src string, width int) string {
	src = strings.TrimSpace(src)
	if src == "" {
		return ""
	}
	r, err := c.renderer(width)
	if err == nil {
		var out string
		out, err = r.Render(src)
		if err == nil {
			return tidyMarkdown(out)
		}
	}
	c.log.Warn("markdown render failed, using plain text", zap.String("style", c.style), zap.Error(err))
	return bodyStyle.Width(width).Render(src)
}

func (c *slideCells) renderer(width int) (*glamour.TermRenderer, error) {
	if r, ok := c.renderers[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(c.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	c.renderers[width] = r
	return r, nil
}

// tidyMarkdown drops the blank margin lines and trailing padding glamour adds.
func tidyMarkdown(s string) string {
	lines := strings.Split(s, "\n")
	blank := func(line string) bool { return strings.TrimSpace(ansi.Strip(line)) == "" }
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func truncateLine(s string, width int) string {
	return ansi.Truncate(strings.ReplaceAll(s, "\n", " "), width, "…")
}
