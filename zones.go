package gridview

import (
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/colwin"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
)

// zone is where one column group lands inside the viewport for a pass.
type zone struct {
	group      *column.Group
	left       int
	horizontal geometry.Axis
	shiftX     int
	scrolls    bool
}

// zones lays the layout out across vp in paint order. The scrollable zone
// is painted first so the fixed zones cover anything scrolled beneath them.
func (e *Engine) zones(vp geometry.Viewport) []zone {
	leftWidth := e.layout.Left.Width()
	rightWidth := e.layout.Right.Width()
	scrollWidth := max(0, vp.Width-leftWidth-rightWidth)
	// Pin the right zone to the viewport edge, or to the end of the content
	// when the content is narrower.
	rightLeft := leftWidth + min(scrollWidth, e.layout.Scrollable.Width())

	zones := make([]zone, 0, 3)
	if e.layout.Scrollable.Len() > 0 {
		zones = append(zones, zone{
			group:      e.layout.Scrollable,
			left:       leftWidth,
			horizontal: geometry.Axis{Scroll: vp.ScrollLeft + leftWidth, Size: scrollWidth},
			shiftX:     -vp.ScrollLeft,
			scrolls:    true,
		})
	}
	if e.layout.Left.Len() > 0 {
		zones = append(zones, zone{
			group:      e.layout.Left,
			horizontal: geometry.Axis{Scroll: 0, Size: min(leftWidth, vp.Width)},
		})
	}
	if e.layout.Right.Len() > 0 {
		zones = append(zones, zone{
			group:      e.layout.Right,
			left:       rightLeft,
			horizontal: geometry.Axis{Scroll: rightLeft, Size: rightWidth},
		})
	}
	return zones
}

// band is the vertical placement shared by every cell of one row.
type band struct {
	row        slot.Index
	top        int
	height     int
	rowVisible bool
	vertical   geometry.Axis
	shiftY     int
}

// zoneCells holds the column buffers of one row slot, one per zone.
type zoneCells struct {
	managers [3]*colwin.Manager
}

func (e *Engine) newZoneCells() *zoneCells {
	zc := &zoneCells{}
	for i := range zc.managers {
		zc.managers[i] = colwin.NewManager(colwin.Options{
			Resolver: e.resolver,
			Logger:   e.rootLogger,
		})
	}
	return zc
}

func (zc *zoneCells) render(e *Engine, zones []zone, b band, p Pass, out []cell.Descriptor) []cell.Descriptor {
	for _, z := range zones {
		m := zc.managers[z.group.Zone]
		cells := m.Compute(colwin.Pass{
			Row:        b.row,
			Top:        b.top,
			Height:     b.height,
			RowVisible: b.rowVisible,
			Group:      z.group,
			Columns:    p.Columns,
			Scrolling:  p.Scrolling,
			Reorder:    p.Reorder,
			ZoneLeft:   z.left,
			Horizontal: z.horizontal,
			Vertical:   b.vertical,
			ShiftX:     z.shiftX,
			ShiftY:     b.shiftY,
		}, z.scrolls && e.virtualize)

		for _, d := range cells {
			e.renderer.RenderCell(d)
		}
		out = append(out, cells...)
	}
	return out
}

func (zc *zoneCells) close() {
	for _, m := range zc.managers {
		m.Close()
	}
}
