package gridview

import (
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/render"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTable(r render.Renderer, rows int) *Table {
	return NewTable(TableOptions{
		Options: Options{
			Layout:            testLayout(),
			Geometry:          geometry.Uniform{Height: 1},
			Renderer:          r,
			RowCount:          rows,
			VirtualizeColumns: true,
		},
		Overscan:     1,
		HeaderHeight: 1,
		FooterHeight: 1,
	})
}

func TestTable_Draw(t *testing.T) {
	rec := &render.Recorder{}
	table := newTestTable(rec, 100)

	frame := table.Draw(geometry.Viewport{Width: 24, Height: 6}, false, column.ReorderState{})
	require.Len(t, rec.Bands, 3, "body, header and footer")
	assert.Equal(t, geometry.Viewport{Width: 24, Height: 4, OffsetTop: 1}, rec.Bands[0].Viewport)
	assert.Equal(t, geometry.Viewport{Width: 24, Height: 1, OffsetTop: 5}, rec.Bands[2].Viewport)

	// body is 4 rows tall, plus one row of overscan
	require.Len(t, frame.Rows, 5)
	for i, row := range frame.Rows {
		assert.Equal(t, slot.Some(i), row.Index)
		assert.Equal(t, i < 4, row.Visible)
	}

	for i, row := range []int{cell.HeaderRow, cell.FooterRow} {
		band := rec.Bands[i+1]
		require.NotEmpty(t, band.Cells)
		for _, d := range band.Cells {
			assert.Equal(t, row, d.Row)
		}
	}
}

func TestTable_ScrollReusesSlots(t *testing.T) {
	table := newTestTable(nil, 100)
	vp := geometry.Viewport{Width: 24, Height: 6}

	table.Draw(vp, false, column.ReorderState{})

	vp.ScrollTop = 1
	frame := table.Draw(vp, true, column.ReorderState{})
	require.Len(t, frame.Rows, 6)
	assert.Equal(t, slot.Some(0), frame.Rows[0].Index, "row 0 stays in the overscan")
	assert.Equal(t, slot.Some(5), frame.Rows[5].Index)

	vp.ScrollTop = 10
	frame = table.Draw(vp, true, column.ReorderState{})
	require.Len(t, frame.Rows, 6)
	for i, row := range frame.Rows {
		assert.Equal(t, slot.Some(9+i), row.Index)
	}

	// settling keeps the planned list length
	frame = table.Draw(vp, false, column.ReorderState{})
	assert.Len(t, frame.Rows, 6)
}

func TestTable_Clamp(t *testing.T) {
	table := newTestTable(nil, 100)
	assert.Equal(t, 100, table.ContentHeight())

	vp := table.Clamp(geometry.Viewport{Width: 24, Height: 6, ScrollTop: 500, ScrollLeft: 100})
	assert.Equal(t, 96, vp.ScrollTop)
	assert.Equal(t, 16, vp.ScrollLeft)

	vp = table.Clamp(geometry.Viewport{Width: 24, Height: 6, ScrollTop: -3})
	assert.Equal(t, 0, vp.ScrollTop)

	table.SetRowCount(0)
	assert.Equal(t, 0, table.ContentHeight())
	assert.Equal(t, 0, table.Clamp(geometry.Viewport{Width: 24, Height: 6, ScrollTop: 5}).ScrollTop)
}

func TestTable_Close(t *testing.T) {
	table := newTestTable(nil, 100)
	vp := geometry.Viewport{Width: 24, Height: 6, ScrollTop: 20}
	table.Draw(vp, false, column.ReorderState{})
	table.Close()

	frame := table.Draw(vp, false, column.ReorderState{})
	require.Len(t, frame.Rows, 6)
	assert.Equal(t, slot.Some(19), frame.Rows[0].Index)
}

func TestTable_PaintsScreen(t *testing.T) {
	s := tcell.NewSimulationScreen("")
	require.NoError(t, s.Init())
	defer s.Fini()
	s.SetSize(24, 6)

	table := newTestTable(render.NewScreen(render.ScreenOptions{
		Screen: s,
		Content: func(d cell.Descriptor) string {
			if d.Row < 0 {
				return d.Key
			}
			return fmt.Sprintf("%s%d", d.Key, d.Row)
		},
	}), 100)
	table.Draw(geometry.Viewport{Width: 24, Height: 6}, false, column.ReorderState{})

	row := func(y int) string {
		out := make([]rune, 0, 24)
		for x := range 24 {
			r, _, _, _ := s.GetContent(x, y)
			out = append(out, r)
		}
		return string(out)
	}
	assert.Equal(t, "id  a         b   sum   ", row(0))
	assert.Equal(t, "id0 a0        b0  sum0  ", row(1))
	assert.Equal(t, "id  a         b   sum   ", row(5))
}
