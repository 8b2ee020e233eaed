// Package geometry describes where rows and columns sit in content space.
// The engine never derives these values itself; it asks a Provider.
package geometry

// Rows supplies vertical geometry per logical row.
type Rows interface {
	RowHeight(row int) int
	SubRowHeight(row int) int
	RowOffset(row int) int
}

// Columns supplies horizontal geometry per logical column of a group.
type Columns interface {
	ColumnOffset(column int) int
}

// Provider is the full geometry contract. Implementations must be pure and
// cheap: every resolved index is looked up once per pass.
type Provider interface {
	Rows
	Columns
}

// Viewport is the visible rectangle and scroll position, owned by the host
// and read-only to the engine.
type Viewport struct {
	Width, Height         int
	ScrollLeft, ScrollTop int
	// Origin of the viewport on the paint surface.
	OffsetLeft, OffsetTop int
}

// Axis is one dimension of a visibility window: content starting at Scroll
// and spanning Size units is on screen.
type Axis struct {
	Scroll int
	Size   int
}

// Overlaps reports whether [pos, pos+size) is on screen. The leading edge is
// inclusive (a span ending exactly at Scroll still counts) and the trailing
// edge exclusive (a span starting exactly at Scroll+Size does not).
func (a Axis) Overlaps(pos, size int) bool {
	return pos+size >= a.Scroll && pos-a.Scroll < a.Size
}

// Horizontal returns the viewport's horizontal axis.
func (v Viewport) Horizontal() Axis {
	return Axis{Scroll: v.ScrollLeft, Size: v.Width}
}

// Vertical returns the viewport's vertical axis.
func (v Viewport) Vertical() Axis {
	return Axis{Scroll: v.ScrollTop, Size: v.Height}
}

// Rect is a cell rectangle in content coordinates.
type Rect struct {
	Left, Top     int
	Width, Height int
}
