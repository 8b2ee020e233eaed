package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAxis_Boundaries(t *testing.T) {
	a := Axis{Scroll: 10, Size: 20}

	assert.True(t, a.Overlaps(10, 5), "leading edge at scroll is visible")
	assert.True(t, a.Overlaps(2, 8), "span ending exactly at scroll is visible")
	assert.False(t, a.Overlaps(1, 8), "span ending before scroll is not visible")
	assert.True(t, a.Overlaps(29, 5))
	assert.False(t, a.Overlaps(30, 5), "span starting at scroll+size is not visible")
}

func TestViewport_Axes(t *testing.T) {
	vp := Viewport{Width: 80, Height: 24, ScrollLeft: 3, ScrollTop: 7}
	assert.Equal(t, Axis{Scroll: 3, Size: 80}, vp.Horizontal())
	assert.Equal(t, Axis{Scroll: 7, Size: 24}, vp.Vertical())
}

func TestOffsets(t *testing.T) {
	o := NewOffsets([]int{4, 6, 10})
	assert.Equal(t, 3, o.Len())
	assert.Equal(t, 0, o.Start(0))
	assert.Equal(t, 4, o.Start(1))
	assert.Equal(t, 10, o.Start(2))
	assert.Equal(t, 20, o.Total())

	assert.Equal(t, 0, o.Find(0))
	assert.Equal(t, 0, o.Find(3))
	assert.Equal(t, 1, o.Find(4))
	assert.Equal(t, 2, o.Find(19))
	assert.Equal(t, 2, o.Find(500), "clamped to last")

	var empty *Offsets
	assert.Equal(t, 0, empty.Total())
	assert.Equal(t, 0, empty.Len())
}

func TestProviders(t *testing.T) {
	u := Uniform{Height: 2, SubHeight: 1, Widths: NewOffsets([]int{5, 5})}
	assert.Equal(t, 14, u.RowOffset(7))
	assert.Equal(t, 2, u.RowHeight(7))
	assert.Equal(t, 1, u.SubRowHeight(7))
	assert.Equal(t, 5, u.ColumnOffset(1))

	v := NewVariable([]int{1, 3, 2}, []int{8})
	assert.Equal(t, 4, v.RowOffset(2))
	assert.Equal(t, 3, v.RowHeight(1))
	assert.Equal(t, 0, v.SubRowHeight(1))
	assert.Equal(t, 0, v.ColumnOffset(0))
}
