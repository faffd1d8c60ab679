package datakit

import "fmt"

// Vector is a growable sequence backed by a contiguous slice. When an
// append would exceed capacity, the backing store is doubled, so n
// appends cost amortized O(n). Indices stay valid across growth; raw
// references into Values() do not.
//
// Vector is not safe for concurrent use.
type Vector[T comparable] struct {
	data []T
	size int
}

func NewVector[T comparable](capacity int) (*Vector[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Vector[T]{data: make([]T, capacity)}, nil
}

// Append adds v at the end of the sequence, doubling the backing store
// first if it is full.
func (vec *Vector[T]) Append(v T) {
	if vec.size == len(vec.data) {
		vec.data = grow(vec.data)
	}

	vec.data[vec.size] = v
	vec.size++
}

func (vec *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= vec.size {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrNotFound, i, vec.size)
	}

	return vec.data[i], nil
}

// Find returns the index of the first occurrence of v.
func (vec *Vector[T]) Find(v T) (int, bool) {
	for i := 0; i < vec.size; i++ {
		if vec.data[i] == v {
			return i, true
		}
	}

	return 0, false
}

// Delete removes the first occurrence of v, shifting every later
// element left by one. Always O(n).
func (vec *Vector[T]) Delete(v T) error {
	i, ok := vec.Find(v)
	if !ok {
		return ErrNotFound
	}

	copy(vec.data[i:vec.size-1], vec.data[i+1:vec.size])
	vec.size--

	// Drop the reference left in the vacated slot.
	var zero T
	vec.data[vec.size] = zero

	return nil
}

// Values returns a view of the live elements. The view is invalidated
// by the next growth.
func (vec *Vector[T]) Values() []T {
	return vec.data[:vec.size]
}

func (vec *Vector[T]) Size() int {
	return vec.size
}

func (vec *Vector[T]) Capacity() int {
	return len(vec.data)
}
