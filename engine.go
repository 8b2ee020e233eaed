package gridview

import (
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/render"
	"github.com/hnimtadd/gridview/grid/rowwin"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/grid/utils"
	"github.com/hnimtadd/gridview/logger"
)

// Engine is the render-buffer engine of one table body. It owns the row
// slot buffer and, per row slot, one column buffer per zone. All of it
// persists across passes so already rendered units are reused.
//
// An Engine is driven by one host render loop; passes must be applied in
// scroll order and never concurrently.
type Engine struct {
	layout     column.Layout
	virtualize bool

	rows     *rowwin.Manager
	slots    []*zoneCells
	header   *zoneCells
	footer   *zoneCells
	resolver *cell.Resolver
	renderer render.Renderer

	logger     logger.Logger
	rootLogger logger.Logger
}

type Options struct {
	Layout   column.Layout
	Geometry geometry.Rows
	Renderer render.Renderer
	Handlers cell.Handlers
	// RowKey derives row render keys; the slot position is used when nil.
	RowKey   func(row int) string
	RowCount int
	// VirtualizeColumns windows the scrollable zone over the pass's column
	// list. When false every scrollable column is resolved on every pass.
	VirtualizeColumns bool
	Logger            logger.Logger
}

// Pass holds the scheduler inputs of one body render pass.
type Pass struct {
	Viewport geometry.Viewport
	// Rows is the logical row list, positionally aligned with the row
	// slots. Holes keep whatever the slot rendered before.
	Rows   []slot.Index
	Window rowwin.Window
	// Columns is the logical list of scrollable columns to render.
	Columns   []slot.Index
	Scrolling bool
	Reorder   column.ReorderState
}

// Frame is the result of a body pass.
type Frame struct {
	Rows  []rowwin.Row
	Cells []cell.Descriptor
}

func NewEngine(opts Options) *Engine {
	utils.Assert(opts.Geometry != nil, "row geometry provider is required")
	log := logger.OrStderr(opts.Logger)
	renderer := opts.Renderer
	if renderer == nil {
		renderer = render.Func(func(cell.Descriptor) {})
	}
	resolver := cell.NewResolver(cell.Options{Handlers: opts.Handlers, Logger: log})
	e := &Engine{
		layout:     opts.Layout,
		virtualize: opts.VirtualizeColumns,
		rows: rowwin.NewManager(rowwin.Options{
			Geometry: opts.Geometry,
			KeyFunc:  opts.RowKey,
			RowCount: opts.RowCount,
			Logger:   log,
		}),
		resolver:   resolver,
		renderer:   renderer,
		logger:     log.With("component", "engine"),
		rootLogger: log,
	}
	e.header = e.newZoneCells()
	e.footer = e.newZoneCells()
	return e
}

// SetRowCount updates the size of the logical row space.
func (e *Engine) SetRowCount(n int) {
	e.rows.SetRowCount(n)
}

// SetVirtualizeColumns toggles column windowing for later passes.
func (e *Engine) SetVirtualizeColumns(v bool) {
	e.virtualize = v
}

// Layout returns the engine's column layout.
func (e *Engine) Layout() column.Layout {
	return e.layout
}

// Render runs one body pass: rows first, then the zones of every resolved
// row, handing each cell to the renderer.
func (e *Engine) Render(p Pass) Frame {
	e.begin(p.Viewport)
	defer e.end()

	rows := e.rows.Compute(p.Rows, p.Scrolling, p.Window)
	e.resizeSlots(len(rows))

	frame := Frame{Rows: rows}
	zones := e.zones(p.Viewport)
	vertical := p.Viewport.Vertical()

	for i, row := range rows {
		if row.Fake {
			continue
		}
		b := band{
			row:        row.Index,
			top:        row.Top,
			height:     row.Height,
			rowVisible: row.Visible,
			vertical:   vertical,
			shiftY:     -p.Viewport.ScrollTop,
		}
		frame.Cells = e.slots[i].render(e, zones, b, p, frame.Cells)
	}

	e.logger.Debug("body pass",
		"scrolling", p.Scrolling,
		"slots", len(rows),
		"cells", len(frame.Cells),
	)
	return frame
}

// RenderHeader renders the header band. The band sits at the top of vp and
// does not scroll vertically.
func (e *Engine) RenderHeader(p Pass) []cell.Descriptor {
	return e.renderBand(e.header, cell.HeaderRow, p)
}

// RenderFooter renders the footer band.
func (e *Engine) RenderFooter(p Pass) []cell.Descriptor {
	return e.renderBand(e.footer, cell.FooterRow, p)
}

func (e *Engine) renderBand(zc *zoneCells, row int, p Pass) []cell.Descriptor {
	e.begin(p.Viewport)
	defer e.end()

	b := band{
		row:        slot.Some(row),
		height:     p.Viewport.Height,
		rowVisible: true,
		vertical:   geometry.Axis{Scroll: 0, Size: p.Viewport.Height},
	}
	return zc.render(e, e.zones(p.Viewport), b, p, nil)
}

// Close releases every buffer. The engine can be reused afterwards but
// nothing survives to fall back to.
func (e *Engine) Close() {
	e.rows.Close()
	e.resizeSlots(0)
	e.header.close()
	e.footer.close()
}

func (e *Engine) begin(vp geometry.Viewport) {
	if f, ok := e.renderer.(render.Framer); ok {
		f.BeginFrame(vp)
	}
}

func (e *Engine) end() {
	if f, ok := e.renderer.(render.Framer); ok {
		f.EndFrame()
	}
}

// resizeSlots keeps one zoneCells per row slot.
func (e *Engine) resizeSlots(n int) {
	for i := n; i < len(e.slots); i++ {
		e.slots[i].close()
		e.slots[i] = nil
	}
	if n <= len(e.slots) {
		e.slots = e.slots[:n]
		return
	}
	for len(e.slots) < n {
		e.slots = append(e.slots, e.newZoneCells())
	}
}
