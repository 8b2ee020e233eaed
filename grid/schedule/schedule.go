package schedule

import (
	"sort"

	"github.com/hnimtadd/gridview/grid/geometry"
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/grid/utils"
)

// Plan is the scheduler output for one axis.
type Plan struct {
	// List maps buffer positions to logical indices; positions whose index
	// is outside the render range are holes.
	List []slot.Index
	// First and End bound the indices inside the viewport, half-open.
	First, End int
}

type extent interface {
	start(i int) int
	size(i int) int
}

// window finds the indices of [0, n) overlapping [scroll, scroll+size).
func window(e extent, n, scroll, size int) (first, end int) {
	first = sort.Search(n, func(i int) bool { return e.start(i)+e.size(i) > scroll })
	end = sort.Search(n, func(i int) bool { return e.start(i) >= scroll+size })
	return first, max(first, end)
}

// Planner turns a window into a positional list. It persists positions
// across passes and must be fed passes in scroll order.
type Planner struct {
	// Overscan is the number of extra indices rendered on each side of the
	// viewport.
	Overscan int

	set *BufferSet
}

func (p *Planner) plan(e extent, n, scroll, size int) Plan {
	if p.set == nil {
		p.set = NewBufferSet()
	}
	first, end := window(e, n, scroll, size)
	lo := utils.Clamp(first-p.Overscan, 0, n)
	hi := utils.Clamp(end+p.Overscan, lo, n)

	for i := lo; i < hi; i++ {
		p.set.Acquire(i, lo, hi)
	}

	list := make([]slot.Index, p.set.Size())
	last := 0
	for pos := range list {
		v, ok := p.set.Value(pos).Get()
		if ok && utils.InRange(v, lo, hi) {
			list[pos] = slot.Some(v)
			last = pos + 1
		}
	}
	return Plan{List: list[:last], First: first, End: end}
}

// Reset drops every persisted position.
func (p *Planner) Reset() {
	if p.set != nil {
		p.set.Reset()
	}
}

type rowExtent struct{ geometry.Rows }

func (r rowExtent) start(i int) int { return r.RowOffset(i) }
func (r rowExtent) size(i int) int  { return r.RowHeight(i) }

// Rows plans the row axis.
type Rows struct {
	Planner
	Geometry geometry.Rows
}

// Plan computes the rows to render for a viewport of the given height
// scrolled to scrollTop over count rows.
func (r *Rows) Plan(scrollTop, height, count int) Plan {
	return r.plan(rowExtent{r.Geometry}, count, scrollTop, height)
}

type offsetExtent struct{ *geometry.Offsets }

func (o offsetExtent) start(i int) int { return o.Start(i) }
func (o offsetExtent) size(i int) int  { return o.Size(i) }

// Columns plans the scrollable column axis.
type Columns struct {
	Planner
	Offsets *geometry.Offsets
}

// Plan computes the scrollable columns to render for a zone of the given
// width scrolled to scrollLeft.
func (c *Columns) Plan(scrollLeft, width int) Plan {
	return c.plan(offsetExtent{c.Offsets}, c.Offsets.Len(), scrollLeft, width)
}

// MaxScroll is the largest scroll offset that still fills the viewport.
func MaxScroll(total, viewport int) int {
	return max(0, total-viewport)
}
