package datakit

import "golang.org/x/exp/constraints"

type HashFunc[K any] func(K) uint64

// Mix64 is a splitmix64-style avalanche mix: two xor-shift-multiply
// rounds plus a final xor-shift. Not cryptographic.
func Mix64(x uint64) uint64 {
	x = (x>>30 ^ x) * 0xbf58476d1ce4e5b9
	x = (x>>27 ^ x) * 0x94d049bb133111eb
	return x>>31 ^ x
}

// IntHash returns the default hash function for integer keys.
func IntHash[K constraints.Integer]() HashFunc[K] {
	return func(k K) uint64 {
		return Mix64(uint64(k))
	}
}
