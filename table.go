package gridview

import (
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/rowwin"
	"github.com/hnimtadd/gridview/grid/schedule"
	"github.com/hnimtadd/gridview/grid/utils"
)

// Table drives an Engine from a scroll position: it plans the row and column
// lists, then renders the header, body and footer bands.
type Table struct {
	engine   *Engine
	geometry geometry.Rows
	rows     schedule.Rows
	columns  schedule.Columns
	rowCount int

	headerHeight int
	footerHeight int
}

type TableOptions struct {
	Options
	// Overscan is the number of extra rows and columns rendered beyond each
	// edge of the viewport.
	Overscan     int
	HeaderHeight int
	FooterHeight int
}

func NewTable(opts TableOptions) *Table {
	return &Table{
		engine:   NewEngine(opts.Options),
		geometry: opts.Geometry,
		rows: schedule.Rows{
			Planner:  schedule.Planner{Overscan: opts.Overscan},
			Geometry: opts.Geometry,
		},
		columns: schedule.Columns{
			Planner: schedule.Planner{Overscan: opts.Overscan},
			Offsets: opts.Layout.Scrollable.Offsets(),
		},
		rowCount:     opts.RowCount,
		headerHeight: opts.HeaderHeight,
		footerHeight: opts.FooterHeight,
	}
}

// Engine returns the underlying engine.
func (t *Table) Engine() *Engine {
	return t.engine
}

// SetRowCount changes the size of the data set.
func (t *Table) SetRowCount(n int) {
	t.rowCount = n
	t.engine.SetRowCount(n)
}

// RowCount returns the size of the data set.
func (t *Table) RowCount() int {
	return t.rowCount
}

// ContentHeight is the height of every row stacked.
func (t *Table) ContentHeight() int {
	if t.rowCount == 0 {
		return 0
	}
	last := t.rowCount - 1
	return t.geometry.RowOffset(last) + t.geometry.RowHeight(last)
}

// Clamp bounds the scroll offsets of vp to the content.
func (t *Table) Clamp(vp geometry.Viewport) geometry.Viewport {
	body := t.body(vp)
	layout := t.engine.Layout()
	scrollWidth := max(0, vp.Width-layout.Left.Width()-layout.Right.Width())

	vp.ScrollTop = utils.Clamp(vp.ScrollTop, 0, schedule.MaxScroll(t.ContentHeight(), body.Height))
	vp.ScrollLeft = utils.Clamp(vp.ScrollLeft, 0, schedule.MaxScroll(layout.Scrollable.Width(), scrollWidth))
	return vp
}

func (t *Table) body(vp geometry.Viewport) geometry.Viewport {
	body := vp
	body.OffsetTop += t.headerHeight
	body.Height = max(0, vp.Height-t.headerHeight-t.footerHeight)
	return body
}

// Draw renders one full pass for the table area vp.
func (t *Table) Draw(vp geometry.Viewport, scrolling bool, reorder column.ReorderState) Frame {
	layout := t.engine.Layout()
	scrollWidth := max(0, vp.Width-layout.Left.Width()-layout.Right.Width())
	columns := t.columns.Plan(vp.ScrollLeft, scrollWidth)

	body := t.body(vp)
	rows := t.rows.Plan(body.ScrollTop, body.Height, t.rowCount)

	frame := t.engine.Render(Pass{
		Viewport:  body,
		Rows:      rows.List,
		Window:    rowwin.Window{First: rows.First, End: rows.End},
		Columns:   columns.List,
		Scrolling: scrolling,
		Reorder:   reorder,
	})

	if t.headerHeight > 0 {
		header := vp
		header.Height = t.headerHeight
		header.ScrollTop = 0
		t.engine.RenderHeader(Pass{
			Viewport:  header,
			Columns:   columns.List,
			Scrolling: scrolling,
			Reorder:   reorder,
		})
	}
	if t.footerHeight > 0 {
		footer := vp
		footer.OffsetTop += vp.Height - t.footerHeight
		footer.Height = t.footerHeight
		footer.ScrollTop = 0
		t.engine.RenderFooter(Pass{
			Viewport:  footer,
			Columns:   columns.List,
			Scrolling: scrolling,
			Reorder:   reorder,
		})
	}
	return frame
}

// Close tears the engine down and forgets every planned position.
func (t *Table) Close() {
	t.engine.Close()
	t.rows.Reset()
	t.columns.Reset()
}
