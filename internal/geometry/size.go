// Package geometry holds the cell-based sizes shared by the controller, the
// pager widget and slide cells.
package geometry

import "fmt"

// Size is a width/height pair measured in terminal cells.
type Size struct {
	Width  int
	Height int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Alignment positions a target item inside a viewport.
type Alignment int

const (
	AlignCenteredHorizontally Alignment = iota
	AlignLeading
)

func (a Alignment) String() string {
	if a == AlignLeading {
		return "leading"
	}
	return "centered-horizontally"
}
