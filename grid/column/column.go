// Package column holds the per-column configuration the placement resolver
// consults and the grouping of columns into fixed and scrollable zones.
package column

import "github.com/hnimtadd/gridview/grid/geometry"

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Column is the host's configuration of one column.
type Column struct {
	Key      string
	Header   string
	Width    int
	MinWidth int
	MaxWidth int
	Align    Align

	// Recyclable allows the engine to skip cells of this column that are
	// outside the viewport.
	Recyclable  bool
	Resizable   bool
	Reorderable bool
}

// Zone identifies which band of a row a group occupies.
type Zone int

const (
	ZoneFixedLeft Zone = iota
	ZoneScrollable
	ZoneFixedRight
)

func (z Zone) String() string {
	switch z {
	case ZoneFixedLeft:
		return "fixed-left"
	case ZoneScrollable:
		return "scrollable"
	case ZoneFixedRight:
		return "fixed-right"
	default:
		return "unknown"
	}
}

// ReorderState describes an in-progress column drag.
type ReorderState struct {
	Active    bool
	ColumnKey string
}

// Group is an ordered set of columns rendered together. Logical column
// indices are positions within Columns.
type Group struct {
	Zone    Zone
	Columns []Column

	offsets *geometry.Offsets
}

// NewGroup builds a group and precomputes its column offsets.
func NewGroup(zone Zone, columns ...Column) *Group {
	widths := make([]int, len(columns))
	for i, c := range columns {
		widths[i] = c.Width
	}
	return &Group{
		Zone:    zone,
		Columns: columns,
		offsets: geometry.NewOffsets(widths),
	}
}

// Len returns the number of columns.
func (g *Group) Len() int {
	if g == nil {
		return 0
	}
	return len(g.Columns)
}

// Width is the sum of all column widths in the group.
func (g *Group) Width() int {
	if g == nil {
		return 0
	}
	return g.offsets.Total()
}

// Column returns the definition for logical index i, or false when the
// group has no such column.
func (g *Group) Column(i int) (Column, bool) {
	if g == nil || i < 0 || i >= len(g.Columns) {
		return Column{}, false
	}
	return g.Columns[i], true
}

// ColumnOffset implements geometry.Columns.
func (g *Group) ColumnOffset(i int) int {
	return g.offsets.ColumnOffset(i)
}

// Offsets exposes the group's prefix sums.
func (g *Group) Offsets() *geometry.Offsets {
	if g == nil {
		return nil
	}
	return g.offsets
}

// IsReordering reports whether the column being dragged belongs to this
// group.
func (g *Group) IsReordering(state ReorderState) bool {
	if g == nil || !state.Active {
		return false
	}
	for _, c := range g.Columns {
		if c.Key == state.ColumnKey {
			return true
		}
	}
	return false
}

// Layout splits a table's columns into its three zones.
type Layout struct {
	Left       *Group
	Scrollable *Group
	Right      *Group
}

// NewLayout groups columns by zone, keeping their relative order.
func NewLayout(left, scrollable, right []Column) Layout {
	return Layout{
		Left:       NewGroup(ZoneFixedLeft, left...),
		Scrollable: NewGroup(ZoneScrollable, scrollable...),
		Right:      NewGroup(ZoneFixedRight, right...),
	}
}

// Groups returns the non-empty groups in paint order.
func (l Layout) Groups() []*Group {
	groups := make([]*Group, 0, 3)
	for _, g := range []*Group{l.Left, l.Scrollable, l.Right} {
		if g.Len() > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Width is the total width of every zone.
func (l Layout) Width() int {
	return l.Left.Width() + l.Scrollable.Width() + l.Right.Width()
}
