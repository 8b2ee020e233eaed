// Package rowwin maps a logical row list onto a persisted buffer of row
// slots, reusing slots across scroll deltas.
package rowwin

import (
	"strconv"

	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/grid/utils"
	"github.com/hnimtadd/gridview/logger"
)

// Window is the half-open range of logical rows inside the viewport.
type Window struct {
	First int
	End   int
}

// Contains reports whether row lies in [First, End).
func (w Window) Contains(row int) bool {
	return utils.InRange(row, w.First, w.End)
}

// Row is the descriptor held by one row slot.
type Row struct {
	Slot  int
	Index slot.Index
	Key   string
	// Fake rows occupy a slot whose index could not be resolved. They carry
	// no geometry and render nothing.
	Fake bool

	Height       int
	SubRowHeight int
	Top          int
	// Visible is forwarded to the row's cells; it never unmounts the row.
	Visible   bool
	Last      bool
	Scrolling bool
}

type Options struct {
	Geometry geometry.Rows
	// KeyFunc derives a render key from a logical row. When nil the slot
	// position is the key.
	KeyFunc func(row int) string
	// RowCount is the size of the logical row space, used to flag the last
	// row. Zero disables the flag.
	RowCount int
	Logger   logger.Logger
}

// Manager is the Row Window Manager. It owns its slot buffer exclusively.
type Manager struct {
	geometry geometry.Rows
	keyFunc  func(int) string
	rowCount int

	buf slot.Buffer[Row]

	logger logger.Logger
}

func NewManager(opts Options) *Manager {
	utils.Assert(opts.Geometry != nil, "row geometry provider is required")
	return &Manager{
		geometry: opts.Geometry,
		keyFunc:  opts.KeyFunc,
		rowCount: opts.RowCount,
		logger:   logger.OrStderr(opts.Logger).With("component", "rowwin"),
	}
}

// SetRowCount updates the size of the logical row space.
func (m *Manager) SetRowCount(n int) {
	m.rowCount = n
}

// Compute runs one pass and returns the new buffer, one Row per slot.
func (m *Manager) Compute(list []slot.Index, scrolling bool, window Window) []Row {
	prior := m.buf.Len()
	n := slot.TargetLength(scrolling, prior, len(list))
	m.buf.Resize(n)

	rows := make([]Row, n)
	for i := range n {
		previous := slot.None
		if r, ok := m.buf.At(i); ok {
			previous = r.Index
		}
		row := m.row(i, slot.Resolve(slot.At(list, i), previous), scrolling, window)
		m.buf.Put(i, row)
		rows[i] = row
	}

	m.logger.Debug("row pass",
		"scrolling", scrolling,
		"prior", prior,
		"slots", n,
		"list", len(list),
	)
	return rows
}

func (m *Manager) row(staticIndex int, index slot.Index, scrolling bool, window Window) Row {
	rowIndex, ok := index.Get()
	if !ok {
		return Row{Slot: staticIndex, Key: strconv.Itoa(staticIndex), Fake: true, Scrolling: scrolling}
	}
	key := strconv.Itoa(staticIndex)
	if m.keyFunc != nil {
		key = m.keyFunc(rowIndex)
	}
	return Row{
		Slot:         staticIndex,
		Index:        index,
		Key:          key,
		Height:       m.geometry.RowHeight(rowIndex),
		SubRowHeight: m.geometry.SubRowHeight(rowIndex),
		Top:          m.geometry.RowOffset(rowIndex),
		Visible:      window.Contains(rowIndex),
		Last:         m.rowCount > 0 && rowIndex == m.rowCount-1,
		Scrolling:    scrolling,
	}
}

// Len returns the buffer capacity.
func (m *Manager) Len() int {
	return m.buf.Len()
}

// Close forces the buffer length to zero.
func (m *Manager) Close() {
	m.buf.Clear()
}
