package slot

import "github.com/hnimtadd/gridview/grid/utils"

type entry[T any] struct {
	value T
	ok    bool
}

// Buffer is the persisted slot buffer owned by a window manager. Capacity
// changes only through Resize; a slot is either empty or holds one value.
//
// Buffer is not safe for concurrent use. It is owned by exactly one manager
// and mutated only from that manager's render pass.
type Buffer[T any] struct {
	slots []entry[T]
}

// Len returns the current capacity of the buffer.
func (b *Buffer[T]) Len() int {
	return len(b.slots)
}

// Resize sets the buffer capacity to n. Growing appends empty slots,
// shrinking drops the tail and zeroes it so dropped values can be collected.
func (b *Buffer[T]) Resize(n int) {
	utils.Assertf(n >= 0, "negative slot buffer capacity %d", n)
	if n <= len(b.slots) {
		clear(b.slots[n:])
		b.slots = b.slots[:n]
		return
	}
	if n > cap(b.slots) {
		slots := make([]entry[T], len(b.slots), n)
		copy(slots, b.slots)
		b.slots = slots
	}
	old := len(b.slots)
	b.slots = b.slots[:n]
	clear(b.slots[old:])
}

// At returns the value held by slot i, if any. Out-of-range slots are empty.
func (b *Buffer[T]) At(i int) (T, bool) {
	if i < 0 || i >= len(b.slots) {
		var zero T
		return zero, false
	}
	e := b.slots[i]
	return e.value, e.ok
}

// Put stores v in slot i.
func (b *Buffer[T]) Put(i int, v T) {
	utils.Assertf(i >= 0 && i < len(b.slots), "slot %d out of range [0, %d)", i, len(b.slots))
	b.slots[i] = entry[T]{value: v, ok: true}
}

// Empty marks slot i as holding nothing.
func (b *Buffer[T]) Empty(i int) {
	utils.Assertf(i >= 0 && i < len(b.slots), "slot %d out of range [0, %d)", i, len(b.slots))
	b.slots[i] = entry[T]{}
}

// Occupied counts the non-empty slots.
func (b *Buffer[T]) Occupied() int {
	n := 0
	for _, e := range b.slots {
		if e.ok {
			n++
		}
	}
	return n
}

// Values returns the held values in slot order, skipping empty slots.
func (b *Buffer[T]) Values() []T {
	values := make([]T, 0, len(b.slots))
	for _, e := range b.slots {
		if e.ok {
			values = append(values, e.value)
		}
	}
	return values
}

// Clear forces the buffer length to zero. Used on teardown.
func (b *Buffer[T]) Clear() {
	b.Resize(0)
}
