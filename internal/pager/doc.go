// Package pager is a horizontally paged list widget for the terminal.
//
// The widget pulls its item count and item size from an ItemSource and the
// content of each cell from a CellRenderer. It reports every change of its
// scroll offset to an Observer as the index under the viewport's horizontal
// midpoint, whether the change came from the user or from a programmatic
// ScrollTo, and tells the Observer when a programmatic animation settles.
// Telling those two apart is the Observer's job.
//
// Scroll positions are kept in pages rather than cells, so a resize never
// shifts which item is on screen.
package pager
