// Package cellwin virtualizes rows and columns jointly in a single slot
// buffer. Slot i stands for column position i mod C and row position i / C of
// the two logical lists, C being the length of the column list.
package cellwin

import (
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/logger"
)

type Pass struct {
	Rows      []slot.Index
	Columns   []slot.Index
	Scrolling bool

	Group    *column.Group
	Geometry geometry.Provider
	Reorder  column.ReorderState
	Viewport geometry.Viewport
}

type Options struct {
	Resolver *cell.Resolver
	Logger   logger.Logger
}

// Manager owns the flattened cell buffer.
type Manager struct {
	buf      slot.Buffer[cell.Descriptor]
	resolver *cell.Resolver
	logger   logger.Logger
}

func NewManager(opts Options) *Manager {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = cell.NewResolver(cell.Options{Logger: opts.Logger})
	}
	return &Manager{
		resolver: resolver,
		logger:   logger.OrStderr(opts.Logger).With("component", "cellwin"),
	}
}

// Position returns the (column, row) positions slot i maps to.
func Position(i, columnCount int) (col, row int) {
	return i % columnCount, i / columnCount
}

// Compute runs one pass and returns the rendered cells in slot order.
func (m *Manager) Compute(p Pass) []cell.Descriptor {
	columnCount := len(p.Columns)
	if columnCount == 0 {
		// Without columns no slot maps anywhere.
		if !p.Scrolling {
			m.buf.Clear()
		}
		return nil
	}

	n := slot.TargetLength(p.Scrolling, m.buf.Len(), len(p.Rows)*columnCount)
	m.buf.Resize(n)

	groupWidth := p.Group.Width()
	reordering := p.Group.IsReordering(p.Reorder)
	horizontal := p.Viewport.Horizontal()
	vertical := p.Viewport.Vertical()

	for i := range n {
		colPos, rowPos := Position(i, columnCount)

		priorRow, priorCol := slot.None, slot.None
		if d, ok := m.buf.At(i); ok {
			priorRow, priorCol = slot.Some(d.Row), slot.Some(d.Column)
		}
		rowIndex := slot.Resolve(slot.At(p.Rows, rowPos), priorRow)
		columnIndex := slot.Resolve(slot.At(p.Columns, colPos), priorCol)

		placement := cell.Placement{
			Row:        rowIndex,
			Column:     columnIndex,
			Slot:       i,
			Group:      p.Group,
			GroupWidth: groupWidth,
			Reordering: reordering,
			Scrolling:  p.Scrolling,
			Horizontal: horizontal,
			Vertical:   vertical,
			RowVisible: true,
			ShiftX:     -p.Viewport.ScrollLeft,
			ShiftY:     -p.Viewport.ScrollTop,
		}
		if c, ok := columnIndex.Get(); ok {
			if def, ok := p.Group.Column(c); ok {
				placement.Left = p.Geometry.ColumnOffset(c)
				placement.Recyclable = def.Recyclable
			}
		}
		if r, ok := rowIndex.Get(); ok {
			placement.Top = p.Geometry.RowOffset(r)
			placement.Height = p.Geometry.RowHeight(r)
		}

		d, ok := m.resolver.Resolve(placement)
		if !ok {
			m.buf.Empty(i)
			continue
		}
		m.buf.Put(i, d)
	}

	m.logger.Debug("cell pass",
		"scrolling", p.Scrolling,
		"slots", n,
		"cells", m.buf.Occupied(),
	)
	return m.buf.Values()
}

// Len returns the buffer capacity.
func (m *Manager) Len() int {
	return m.buf.Len()
}

// Close forces the buffer length to zero.
func (m *Manager) Close() {
	m.buf.Clear()
}
