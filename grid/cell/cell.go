// Package cell decides, for one (slot, row, column) triple, where the cell
// sits, whether it is on screen, whether it can be skipped, and which
// interactions it exposes.
package cell

import (
	"fmt"
	"strconv"

	"github.com/hnimtadd/gridview/grid/column"
	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/grid/utils"
	"github.com/hnimtadd/gridview/logger"
	"github.com/mitchellh/hashstructure/v2"
)

// Row sentinels for bands. Hosts pass these explicitly when rendering a
// header or footer band; they never occur as data row indices.
const (
	HeaderRow = -1
	FooterRow = -2
)

// IsHeader reports whether row is the header band.
func IsHeader(row int) bool {
	return row == HeaderRow
}

// ResizeEvent is delivered when the user drags a resizable header cell.
type ResizeEvent struct {
	ColumnKey string
	Left      int
	Width     int
	MinWidth  int
	MaxWidth  int
}

type ResizeFunc func(ResizeEvent)

// ReorderHandlers receive a column drag from start to end.
type ReorderHandlers struct {
	Start func(columnKey string)
	Move  func(columnKey string, delta int)
	End   func(columnKey string)
}

// Handlers are the interaction callbacks wired by the host. A nil field
// means the interaction is not available.
type Handlers struct {
	Resize  ResizeFunc
	Reorder *ReorderHandlers
}

// Placement is the input to Resolve.
type Placement struct {
	Row    slot.Index
	Column slot.Index
	Slot   int

	Group      *column.Group
	GroupWidth int
	Reordering bool
	// Recyclable is the column's recycling policy as seen by the caller's
	// strategy; windowed column buffers never recycle.
	Recyclable bool
	Scrolling  bool

	// Position in content coordinates, tested against the two axes.
	Left, Top int
	Height    int

	Horizontal geometry.Axis
	Vertical   geometry.Axis
	// RowVisible gates the cell on its row's own visibility.
	RowVisible bool

	// Translation from content coordinates to viewport-relative paint
	// coordinates.
	ShiftX, ShiftY int
}

// Descriptor is everything the Cell Renderer receives for one cell.
type Descriptor struct {
	Row    int
	Column int
	Slot   int
	Key    string
	Zone   column.Zone

	Left, Top     int
	X, Y          int
	Width, Height int
	MinWidth      int
	MaxWidth      int
	Align         column.Align

	Visible    bool
	Scrolling  bool
	Reordering bool
	GroupWidth int
	// Clip is the viewport-relative area of the cell's zone and band. Paint
	// outside it belongs to another zone. A zero Clip does not clip.
	Clip geometry.Rect

	Resize  ResizeFunc       `hash:"ignore"`
	Reorder *ReorderHandlers `hash:"ignore"`
}

// Resizable reports whether a resize handler is attached.
func (d Descriptor) Resizable() bool {
	return d.Resize != nil
}

// Reorderable reports whether reorder handlers are attached.
func (d Descriptor) Reorderable() bool {
	return d.Reorder != nil
}

// Rect returns the cell's content rectangle.
func (d Descriptor) Rect() geometry.Rect {
	return geometry.Rect{Left: d.Left, Top: d.Top, Width: d.Width, Height: d.Height}
}

// Hash fingerprints the descriptor's paintable state. Handlers are not part
// of it.
func (d Descriptor) Hash() uint64 {
	hashed, err := hashstructure.Hash(d, hashstructure.FormatV2, nil)
	utils.Assert(err == nil, fmt.Sprintf("failed to hash cell descriptor: %v", err))
	return hashed
}

// Visible is the rectangle overlap test on both axes.
func Visible(r geometry.Rect, horizontal, vertical geometry.Axis) bool {
	return horizontal.Overlaps(r.Left, r.Width) && vertical.Overlaps(r.Top, r.Height)
}

// Suppressed reports whether a cell produces no render unit.
func Suppressed(recyclable, reordering, visible bool) bool {
	return recyclable && !reordering && !visible
}

// ResizeEligible reports whether the column exposes a resize handle.
func ResizeEligible(c column.Column, h Handlers) bool {
	return c.Resizable && h.Resize != nil
}

// ReorderEligible reports whether the column exposes reorder handles. Only
// header cells of a group with more than the one column's width qualify.
func ReorderEligible(c column.Column, row, groupWidth int, h Handlers) bool {
	return c.Reorderable && h.Reorder != nil && IsHeader(row) && groupWidth != c.Width
}

type Options struct {
	Handlers Handlers
	Logger   logger.Logger
}

// Resolver turns placements into descriptors. It holds no per-pass state.
type Resolver struct {
	handlers Handlers
	logger   logger.Logger
}

func NewResolver(opts Options) *Resolver {
	return &Resolver{
		handlers: opts.Handlers,
		logger:   logger.OrStderr(opts.Logger).With("component", "cell"),
	}
}

// Handlers returns the wired interaction callbacks.
func (r *Resolver) Handlers() Handlers {
	return r.handlers
}

// Resolve returns the descriptor for p, or false when the cell is
// unresolvable or suppressed.
func (r *Resolver) Resolve(p Placement) (Descriptor, bool) {
	rowIndex, ok := p.Row.Get()
	if !ok {
		return Descriptor{}, false
	}
	columnIndex, ok := p.Column.Get()
	if !ok {
		return Descriptor{}, false
	}

	col, ok := p.Group.Column(columnIndex)
	if !ok {
		// The host's column set and its logical index space disagree.
		r.logger.Error("column definition missing",
			"column", columnIndex,
			"row", rowIndex,
			"slot", p.Slot,
			"columns", p.Group.Len(),
		)
		return Descriptor{}, false
	}

	rect := geometry.Rect{Left: p.Left, Top: p.Top, Width: col.Width, Height: p.Height}
	visible := p.RowVisible && Visible(rect, p.Horizontal, p.Vertical)
	if Suppressed(p.Recyclable, p.Reordering, visible) {
		return Descriptor{}, false
	}

	key := col.Key
	if key == "" {
		key = strconv.Itoa(columnIndex)
	}

	d := Descriptor{
		Row:        rowIndex,
		Column:     columnIndex,
		Slot:       p.Slot,
		Key:        key,
		Zone:       p.Group.Zone,
		Left:       p.Left,
		Top:        p.Top,
		X:          p.Left + p.ShiftX,
		Y:          p.Top + p.ShiftY,
		Width:      col.Width,
		Height:     p.Height,
		MinWidth:   col.MinWidth,
		MaxWidth:   col.MaxWidth,
		Align:      col.Align,
		Visible:    visible,
		Scrolling:  p.Scrolling,
		Reordering: p.Reordering,
		GroupWidth: p.GroupWidth,
		Clip: geometry.Rect{
			Left:   p.Horizontal.Scroll + p.ShiftX,
			Top:    p.Vertical.Scroll + p.ShiftY,
			Width:  p.Horizontal.Size,
			Height: p.Vertical.Size,
		},
	}
	if ResizeEligible(col, r.handlers) {
		d.Resize = r.handlers.Resize
	}
	if ReorderEligible(col, rowIndex, p.GroupWidth, r.handlers) {
		d.Reorder = r.handlers.Reorder
	}
	return d, true
}
