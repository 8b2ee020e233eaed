package cellwin

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type rc struct{ Row, Column int }

func positions(cells []cell.Descriptor) []rc {
	out := make([]rc, len(cells))
	for i, c := range cells {
		out[i] = rc{c.Row, c.Column}
	}
	return out
}

func newPass(rows, cols []slot.Index, scrolling bool, recyclable bool) Pass {
	defs := make([]column.Column, 4)
	widths := make([]int, 4)
	for i := range defs {
		defs[i] = column.Column{Key: string(rune('a' + i)), Width: 10, Recyclable: recyclable}
		widths[i] = 10
	}
	return Pass{
		Rows:      rows,
		Columns:   cols,
		Scrolling: scrolling,
		Group:     column.NewGroup(column.ZoneScrollable, defs...),
		Geometry:  geometry.Uniform{Height: 1, Widths: geometry.NewOffsets(widths)},
		Viewport:  geometry.Viewport{Width: 20, Height: 2},
	}
}

func TestPosition(t *testing.T) {
	col, row := Position(7, 3)
	assert.Equal(t, 1, col)
	assert.Equal(t, 2, row)
}

func TestManager_Flattening(t *testing.T) {
	m := NewManager(Options{})
	cells := m.Compute(newPass(slot.List(0, 1), slot.List(0, 1), false, false))

	want := []rc{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	if diff := cmp.Diff(want, positions(cells)); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 4, m.Len())
	assert.Equal(t, 10, cells[1].Left)
	assert.Equal(t, 1, cells[2].Top)
}

func TestManager_AxesFallBackIndependently(t *testing.T) {
	m := NewManager(Options{})
	m.Compute(newPass(slot.List(0, 1), slot.List(0, 1), false, false))

	// row 0 scrolled away, column list unchanged
	rows := []slot.Index{slot.None, slot.Some(1)}
	cells := m.Compute(newPass(rows, slot.List(0, 1), true, false))
	require.Len(t, cells, 4)
	assert.Equal(t, rc{0, 0}, rc{cells[0].Row, cells[0].Column})
	assert.Equal(t, rc{0, 1}, rc{cells[1].Row, cells[1].Column})
}

func TestManager_GrowAndShrink(t *testing.T) {
	m := NewManager(Options{})
	m.Compute(newPass(slot.List(0, 1, 2), slot.List(0, 1), true, false))
	assert.Equal(t, 6, m.Len())

	m.Compute(newPass(slot.List(0), slot.List(0, 1), true, false))
	assert.Equal(t, 6, m.Len(), "no shrink mid-scroll")

	m.Compute(newPass(slot.List(0), slot.List(0, 1), false, false))
	assert.Equal(t, 2, m.Len())
}

func TestManager_RecyclesOffscreenCells(t *testing.T) {
	m := NewManager(Options{})
	cells := m.Compute(newPass(slot.List(0, 5), slot.List(0, 3), false, true))

	// only (0,0) is inside the 20x2 viewport
	opts := cmpopts.IgnoreFields(cell.Descriptor{}, "Resize", "Reorder")
	want := []cell.Descriptor{{
		Row: 0, Column: 0, Key: "a", Zone: column.ZoneScrollable, Width: 10, Height: 1, Visible: true, GroupWidth: 40,
		Clip: geometry.Rect{Width: 20, Height: 2},
	}}
	if diff := cmp.Diff(want, cells, opts); diff != "" {
		t.Errorf("cells mismatch (-want +got):\n%s", diff)
	}
}

func TestManager_NoColumns(t *testing.T) {
	m := NewManager(Options{})
	m.Compute(newPass(slot.List(0), slot.List(0), false, false))
	assert.Empty(t, m.Compute(newPass(slot.List(0), nil, true, false)))
	assert.Equal(t, 1, m.Len())
	m.Compute(newPass(slot.List(0), nil, false, false))
	assert.Equal(t, 0, m.Len())
	m.Close()
}

func TestManager_MissingColumnDefinition(t *testing.T) {
	var buf bytes.Buffer
	m := NewManager(Options{Logger: logger.New(logger.Options{Buffer: &buf, Level: logger.ErrorLevel})})

	var cells []cell.Descriptor
	require.NotPanics(t, func() {
		cells = m.Compute(newPass(slot.List(0), slot.List(0, 7), false, false))
	})
	assert.Equal(t, []rc{{0, 0}}, positions(cells))
	assert.Contains(t, buf.String(), "column definition missing")
}
