// Package schedule is the host side of a render pass: it turns a scroll
// position into the logical index lists the window managers consume.
package schedule

import (
	"github.com/hnimtadd/gridview/grid/slot"
	"github.com/hnimtadd/gridview/grid/utils"
)

// BufferSet gives every logical index a stable buffer position. A position
// whose index has left the render range is handed to the next index that
// needs one, so a slot keeps rendering the same index until it is reused.
type BufferSet struct {
	positions map[int]int
	values    []slot.Index
}

func NewBufferSet() *BufferSet {
	return &BufferSet{positions: make(map[int]int)}
}

// Size returns the number of allocated positions.
func (b *BufferSet) Size() int {
	return len(b.values)
}

// Position returns the position held by value.
func (b *BufferSet) Position(value int) (int, bool) {
	pos, ok := b.positions[value]
	return pos, ok
}

// Value returns the index held at pos.
func (b *BufferSet) Value(pos int) slot.Index {
	return slot.At(b.values, pos)
}

// Acquire returns the position of value, assigning one if needed. The
// position of an index outside [lo, hi) is reused before a new position is
// allocated.
func (b *BufferSet) Acquire(value, lo, hi int) int {
	if pos, ok := b.positions[value]; ok {
		return pos
	}
	for pos, held := range b.values {
		v, ok := held.Get()
		if ok && utils.InRange(v, lo, hi) {
			continue
		}
		if ok {
			delete(b.positions, v)
		}
		b.values[pos] = slot.Some(value)
		b.positions[value] = pos
		return pos
	}
	b.values = append(b.values, slot.Some(value))
	b.positions[value] = len(b.values) - 1
	return len(b.values) - 1
}

// Reset forgets every position.
func (b *BufferSet) Reset() {
	clear(b.positions)
	b.values = b.values[:0]
}
