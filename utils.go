package datakit

import "math/bits"

// NextPowerOf2 rounds v up to the nearest power of two. Containers
// keep whatever capacity they are constructed with, so callers that
// want power-of-two sizing apply this before the constructor call.
func NextPowerOf2(v uint32) uint32 {
	return uint32(1) << min(bits.Len32(v-1), 31)
}

// grow returns a copy of s with double the capacity. The input slice is
// never mutated, so a failed or interrupted growth cannot leave a
// container half-resized.
func grow[T any](s []T) []T {
	next := make([]T, 2*len(s))
	copy(next, s)
	return next
}
