package logic

import "math"

// Default scroll-window geometry: a fixed number of fixed-height rows,
// with the scroll offset tracked in pixels the way the host surface
// reports it.
const (
	RowHeightRem = 1.5
	VisibleRows  = 10

	// A row whose top edge is within this fraction of a row boundary counts
	// as fully visible; anything past it pushes the last visible row up one.
	fractionEpsilon = 0.001
)

// Navigator is a single-cursor state machine over an externally supplied,
// already-ranked result list. It owns only the cursor and the scroll
// offset; the list itself is never stored here.
type Navigator struct {
	length       int
	cursor       int
	scrollOffset float64 // px
	visibleRows  int
	rowHeightRem float64
}

// NewNavigator creates a new navigator with no results and the default
// window geometry.
func NewNavigator() *Navigator {
	return &Navigator{
		visibleRows:  VisibleRows,
		rowHeightRem: RowHeightRem,
	}
}

// SetViewport overrides the window geometry. Non-positive values are
// ignored, leaving the corresponding dimension unchanged.
func (n *Navigator) SetViewport(rows int, rowHeightRem float64) {
	if rows > 0 {
		n.visibleRows = rows
	}
	if rowHeightRem > 0 {
		n.rowHeightRem = rowHeightRem
	}
}

// VisibleRows returns the number of fully-visible rows in the window.
func (n *Navigator) VisibleRows() int {
	return n.visibleRows
}

// SetResults installs a new result list length, unconditionally resetting
// cursor and scroll position. Lists are never diffed against the previous
// one.
func (n *Navigator) SetResults(length int) {
	n.length = length
	n.cursor = 0
	n.scrollOffset = 0
}

// Length returns the current result list length.
func (n *Navigator) Length() int {
	return n.length
}

// Cursor returns the current cursor index. Meaningless when Length is 0.
func (n *Navigator) Cursor() int {
	return n.cursor
}

// ScrollOffset returns the current scroll offset in pixels.
func (n *Navigator) ScrollOffset() float64 {
	return n.scrollOffset
}

// MoveDown advances the cursor, wrapping past the end to 0.
func (n *Navigator) MoveDown() {
	n.move(1)
}

// MoveUp retreats the cursor, wrapping before the start to the last row.
func (n *Navigator) MoveUp() {
	n.move(-1)
}

func (n *Navigator) move(step int) {
	if n.length == 0 {
		return
	}
	n.cursor = (n.cursor + step + n.length) % n.length
	n.ensureVisible()
}

// FirstVisibleRow returns the index of the first fully-visible row for the
// current scroll offset.
func (n *Navigator) FirstVisibleRow() int {
	first, _ := n.visibleRange()
	return first
}

// visibleRange computes the first and last fully-visible row indices. A row
// only fractionally visible at the top shrinks the window by one at the
// bottom.
func (n *Navigator) visibleRange() (int, int) {
	firstFloat := PxToRem(n.scrollOffset) / n.rowHeightRem
	first := int(math.Ceil(firstFloat))

	last := first + n.visibleRows - 1
	if math.Abs(firstFloat-float64(first)) > fractionEpsilon {
		last--
	}
	return first, last
}

// ensureVisible snaps the scroll offset so the cursor row is inside the
// visible window: to the top when the cursor moved above it, to the bottom
// when it moved below. Offsets jump immediately; there is no animation.
func (n *Navigator) ensureVisible() {
	first, last := n.visibleRange()

	if n.cursor < first {
		offset := RemToPx(float64(n.cursor) * n.rowHeightRem)
		if offset < 0 {
			offset = 0
		}
		n.scrollOffset = offset
	}
	if n.cursor > last {
		n.scrollOffset = RemToPx(float64(n.cursor-n.visibleRows+1) * n.rowHeightRem)
	}
}
