// Package colwin windows the columns of one row (or header/footer band)
// within a single column group.
package colwin

import (
	"github.com/hnimtadd/gridview/grid/cell"
	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/logger"
)

// Pass is the input of one column pass for one row and one group.
type Pass struct {
	Row        slot.Index
	Top        int
	Height     int
	RowVisible bool

	Group *column.Group
	// Offsets overrides the group's own column offsets when set.
	Offsets geometry.Columns
	// Columns is the logical column list to render in windowed mode. It may
	// contain holes.
	Columns   []slot.Index
	Scrolling bool
	Reorder   column.ReorderState

	// ZoneLeft is where the group starts in content coordinates.
	ZoneLeft   int
	Horizontal geometry.Axis
	Vertical   geometry.Axis
	ShiftX     int
	ShiftY     int
}

func (p Pass) columnOffset(i int) int {
	if p.Offsets != nil {
		return p.Offsets.ColumnOffset(i)
	}
	return p.Group.ColumnOffset(i)
}

// Env is the per-pass context shared by every cell of a group.
type Env struct {
	Resolver   *cell.Resolver
	GroupWidth int
	Reordering bool
}

// Strategy renders the cells of one group for one pass.
type Strategy interface {
	Compute(p Pass, env Env) []cell.Descriptor
}

func placement(p Pass, env Env, staticIndex int, columnIndex slot.Index, recyclable bool) cell.Placement {
	left := p.ZoneLeft
	if i, ok := columnIndex.Get(); ok {
		// An undefined column has no offset; Resolve reports it.
		if _, defined := p.Group.Column(i); defined {
			left += p.columnOffset(i)
		}
	}
	return cell.Placement{
		Row:        p.Row,
		Column:     columnIndex,
		Slot:       staticIndex,
		Group:      p.Group,
		GroupWidth: env.GroupWidth,
		Reordering: env.Reordering,
		Recyclable: recyclable,
		Scrolling:  p.Scrolling,
		Left:       left,
		Top:        p.Top,
		Height:     p.Height,
		Horizontal: p.Horizontal,
		Vertical:   p.Vertical,
		RowVisible: p.RowVisible,
		ShiftX:     p.ShiftX,
		ShiftY:     p.ShiftY,
	}
}

// Windowed keeps a persisted slot buffer of cells and remaps it onto the
// logical column list each pass.
type Windowed struct {
	buf slot.Buffer[cell.Descriptor]
}

// Compute grows the buffer while scrolling, snaps it to the list once
// settled, and lets slots without a fresh column keep their previous one.
func (w *Windowed) Compute(p Pass, env Env) []cell.Descriptor {
	n := slot.TargetLength(p.Scrolling, w.buf.Len(), len(p.Columns))
	w.buf.Resize(n)

	for i := range n {
		prior := slot.None
		if d, ok := w.buf.At(i); ok {
			prior = slot.Some(d.Column)
		}
		columnIndex := slot.Resolve(slot.At(p.Columns, i), prior)

		// The window bounds the set already; buffered cells stay mounted.
		d, ok := env.Resolver.Resolve(placement(p, env, i, columnIndex, false))
		if !ok {
			w.buf.Empty(i)
			continue
		}
		w.buf.Put(i, d)
	}
	return w.buf.Values()
}

// Len returns the buffer capacity.
func (w *Windowed) Len() int {
	return w.buf.Len()
}

// Reset drops the buffer.
func (w *Windowed) Reset() {
	w.buf.Clear()
}

// FullScan resolves every column of the group on every pass, recycling per
// column. It keeps no state.
type FullScan struct{}

func (FullScan) Compute(p Pass, env Env) []cell.Descriptor {
	cells := make([]cell.Descriptor, 0, p.Group.Len())
	for i, c := range p.Group.Columns {
		d, ok := env.Resolver.Resolve(placement(p, env, i, slot.Some(i), c.Recyclable))
		if ok {
			cells = append(cells, d)
		}
	}
	return cells
}

type Options struct {
	Resolver *cell.Resolver
	Logger   logger.Logger
}

// Manager is the Column Window Manager for one row slot and one group.
type Manager struct {
	resolver *cell.Resolver
	windowed Windowed
	logger   logger.Logger
}

func NewManager(opts Options) *Manager {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = cell.NewResolver(cell.Options{Logger: opts.Logger})
	}
	return &Manager{
		resolver: resolver,
		logger:   logger.OrStderr(opts.Logger).With("component", "colwin"),
	}
}

// Strategy selects the strategy for a pass. Switching to full scan drops
// the windowed buffer.
func (m *Manager) Strategy(virtualized bool) Strategy {
	if virtualized {
		return &m.windowed
	}
	if m.windowed.Len() > 0 {
		m.windowed.Reset()
	}
	return FullScan{}
}

// Compute renders the group's cells for one row.
func (m *Manager) Compute(p Pass, virtualized bool) []cell.Descriptor {
	env := Env{
		Resolver:   m.resolver,
		GroupWidth: p.Group.Width(),
		Reordering: p.Group.IsReordering(p.Reorder),
	}
	cells := m.Strategy(virtualized).Compute(p, env)
	m.logger.Debug("column pass",
		"row", p.Row,
		"zone", p.Group.Zone,
		"virtualized", virtualized,
		"slots", m.windowed.Len(),
		"cells", len(cells),
	)
	return cells
}

// Len returns the windowed buffer capacity.
func (m *Manager) Len() int {
	return m.windowed.Len()
}

// Close clears the buffer.
func (m *Manager) Close() {
	m.windowed.Reset()
}
