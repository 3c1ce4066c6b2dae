package pager

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// splitLines splits a string on newlines, returning at least one element.
func splitLines(s string) []string {
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// fitLine pads or truncates s so its visual width equals width.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	w := ansi.StringWidth(s)
	switch {
	case w > width:
		return ansi.Truncate(s, width, "")
	case w < width:
		return s + strings.Repeat(" ", width-w)
	default:
		return s
	}
}

// fitBlock turns rendered cell content into exactly height lines of width
// columns each.
func fitBlock(s string, width, height int) []string {
	lines := splitLines(s)
	out := make([]string, height)
	blank := strings.Repeat(" ", max(width, 0))
	for i := range out {
		if i < len(lines) {
			out[i] = fitLine(lines[i], width)
		} else {
			out[i] = blank
		}
	}
	return out
}

// window cuts the columns [left, left+width) out of a row of ANSI text.
func window(row string, left, width int) string {
	if left > 0 {
		row = ansi.TruncateLeft(row, left, "")
	}
	return fitLine(row, width)
}
