package utils

import (
	"math/bits"
)

const bitSetSize = 64 // Number of bits in a uint64

// BitSet is a resizable bit set. Slot buffers use it to mark the slots whose
// content changed during the last render pass.
type BitSet struct {
	words []uint64
	size  int
}

// NewBitSet creates a new BitSet with the given size.
func NewBitSet(size int) *BitSet {
	Assert(size >= 0, "negative bit set size")
	set := &BitSet{size: size}
	set.words = make([]uint64, wordsFor(size))
	return set
}

func wordsFor(size int) int {
	return (size + bitSetSize - 1) / bitSetSize
}

// addr returns the word holding the bit at idx and the offset of the bit
// within that word.
func (s *BitSet) addr(idx int) (int, int) {
	return idx / bitSetSize, idx % bitSetSize
}

// Len returns the number of addressable bits.
func (s *BitSet) Len() int {
	return s.size
}

// Resize changes the number of addressable bits. Bits below the new size keep
// their value, bits past it are cleared.
func (s *BitSet) Resize(size int) {
	Assert(size >= 0, "negative bit set size")
	n := wordsFor(size)
	switch {
	case n > cap(s.words):
		words := make([]uint64, n)
		copy(words, s.words)
		s.words = words
	default:
		old := len(s.words)
		s.words = s.words[:n]
		for i := old; i < n; i++ {
			s.words[i] = 0
		}
	}
	// Clear the tail of the last word so a later grow does not resurrect
	// stale bits.
	if size%bitSetSize != 0 && n > 0 {
		s.words[n-1] &= (1 << (size % bitSetSize)) - 1
	}
	s.size = size
}

// Set sets the bit at the given idx to 1
func (s *BitSet) Set(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	w, offset := s.addr(idx)
	s.words[w] |= 1 << offset
}

// Unset clears the bit at the given idx
func (s *BitSet) Unset(idx int) {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	w, offset := s.addr(idx)
	s.words[w] &^= 1 << offset
}

// IsSet returns if bit at given idx is set
func (s *BitSet) IsSet(idx int) bool {
	Assert(idx >= 0 && idx < s.size, "Index out of bounds")
	w, offset := s.addr(idx)
	return s.words[w]&(1<<offset) != 0
}

// Count counts the number of bits set
func (s *BitSet) Count() int {
	total := 0
	for _, w := range s.words {
		total += bits.OnesCount64(w)
	}
	return total
}

// Each calls fn with the index of every set bit in ascending order.
func (s *BitSet) Each(fn func(idx int)) {
	for i, w := range s.words {
		for w != 0 {
			offset := bits.TrailingZeros64(w)
			fn(i*bitSetSize + offset)
			w &= w - 1
		}
	}
}

// Clear clears the bits set
func (s *BitSet) Clear() {
	for i := range s.words {
		s.words[i] = 0
	}
}
