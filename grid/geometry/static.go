package geometry

import (
	"sort"

	"github.com/hnimtadd/gridview/grid/utils"
)

// Uniform is a Provider for rows of one fixed height. Column offsets are
// taken from Widths when set.
type Uniform struct {
	Height    int
	SubHeight int
	Widths    *Offsets
}

func (u Uniform) RowHeight(int) int      { return u.Height }
func (u Uniform) SubRowHeight(int) int   { return u.SubHeight }
func (u Uniform) RowOffset(row int) int  { return row * u.Height }
func (u Uniform) ColumnOffset(c int) int { return u.Widths.ColumnOffset(c) }

// Offsets holds prefix sums over a list of sizes: element i starts at the
// sum of sizes [0, i).
type Offsets struct {
	sizes  []int
	starts []int
}

// NewOffsets builds prefix sums over sizes.
func NewOffsets(sizes []int) *Offsets {
	o := &Offsets{
		sizes:  append([]int(nil), sizes...),
		starts: make([]int, len(sizes)+1),
	}
	for i, s := range sizes {
		utils.Assertf(s >= 0, "negative size %d at %d", s, i)
		o.starts[i+1] = o.starts[i] + s
	}
	return o
}

// Len returns the number of elements.
func (o *Offsets) Len() int {
	if o == nil {
		return 0
	}
	return len(o.sizes)
}

// Size returns the size of element i.
func (o *Offsets) Size(i int) int {
	return o.sizes[i]
}

// Start returns the offset of element i. i may equal Len, in which case the
// total is returned.
func (o *Offsets) Start(i int) int {
	if o == nil {
		return 0
	}
	return o.starts[i]
}

// Total returns the sum of all sizes.
func (o *Offsets) Total() int {
	if o == nil {
		return 0
	}
	return o.starts[len(o.starts)-1]
}

// ColumnOffset implements Columns.
func (o *Offsets) ColumnOffset(c int) int {
	return o.Start(c)
}

// Find returns the element covering offset pos, clamped to [0, Len).
func (o *Offsets) Find(pos int) int {
	n := o.Len()
	if n == 0 {
		return 0
	}
	// first element whose end is past pos
	i := sort.Search(n, func(i int) bool { return o.starts[i+1] > pos })
	return utils.Clamp(i, 0, n-1)
}

// Variable is a Provider for rows of differing heights.
type Variable struct {
	Heights    *Offsets
	SubHeights []int
	Widths     *Offsets
}

// NewVariable builds a Variable provider from per-row heights and per-column
// widths.
func NewVariable(heights, widths []int) *Variable {
	return &Variable{
		Heights: NewOffsets(heights),
		Widths:  NewOffsets(widths),
	}
}

func (v *Variable) RowHeight(row int) int { return v.Heights.Size(row) }
func (v *Variable) RowOffset(row int) int { return v.Heights.Start(row) }
func (v *Variable) SubRowHeight(row int) int {
	if row < len(v.SubHeights) {
		return v.SubHeights[row]
	}
	return 0
}
func (v *Variable) ColumnOffset(c int) int { return v.Widths.ColumnOffset(c) }
