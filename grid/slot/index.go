// Package slot holds the persisted render buffer shared by the window
// managers and the pure functions that decide how it grows, shrinks, and
// falls back to what a slot rendered on the previous pass.
package slot

import "strconv"

// Index is an optional logical index. The zero value is None, which marks a
// hole in a logical index list or a slot that resolved to nothing.
type Index struct {
	value int
	ok    bool
}

// None is the absent Index.
var None = Index{}

// Some wraps a logical index.
func Some(i int) Index {
	return Index{value: i, ok: true}
}

// Get returns the index and whether it is present.
func (x Index) Get() (int, bool) {
	return x.value, x.ok
}

// Valid reports whether x holds an index.
func (x Index) Valid() bool {
	return x.ok
}

// Or returns the wrapped index, or def when absent.
func (x Index) Or(def int) int {
	if !x.ok {
		return def
	}
	return x.value
}

func (x Index) String() string {
	if !x.ok {
		return "none"
	}
	return strconv.Itoa(x.value)
}

// List converts a dense slice of indices into a logical index list.
func List(indices ...int) []Index {
	list := make([]Index, len(indices))
	for i, v := range indices {
		list[i] = Some(v)
	}
	return list
}

// At returns list[i], or None when i is past the end of the list.
func At(list []Index, i int) Index {
	if i < 0 || i >= len(list) {
		return None
	}
	return list[i]
}

// Resolve picks the logical index a slot represents this pass: the fresh
// list wins, otherwise the slot keeps whatever it represented on the prior
// pass. A None result means the slot renders a placeholder.
func Resolve(fresh Index, prior Index) Index {
	if fresh.ok {
		return fresh
	}
	return prior
}

// TargetLength is the buffer length for a pass. While a scroll gesture is in
// progress the buffer only grows; once it settles it snaps to the fresh list.
func TargetLength(scrolling bool, prior, fresh int) int {
	if scrolling {
		return max(prior, fresh)
	}
	return fresh
}
