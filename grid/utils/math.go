package utils

import "cmp"

// Clamp restricts v to [lo, hi].
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// InRange reports whether start <= v < end.
func InRange(v, start, end int) bool {
	return start <= v && v < end
}
