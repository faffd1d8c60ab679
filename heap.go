package datakit

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// MaxHeap is an array-backed binary max-heap: for every index i with a
// child c inside the heap, data[i] >= data[c]. Equal keys carry no
// ordering guarantee relative to each other.
//
// MaxHeap is not safe for concurrent use.
type MaxHeap[T constraints.Ordered] struct {
	data []T
	size int
}

func NewMaxHeap[T constraints.Ordered](capacity int) (*MaxHeap[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &MaxHeap[T]{data: make([]T, capacity)}, nil
}

// Push appends v at the end of the backing array and sifts it up until
// its parent is no smaller.
func (h *MaxHeap[T]) Push(v T) {
	if h.size == len(h.data) {
		h.data = grow(h.data)
	}

	h.data[h.size] = v
	h.size++
	h.siftUp(h.size - 1)
}

// Pop removes and returns the maximum: the last element moves into the
// root slot and sifts down, swapping with the larger child each step.
func (h *MaxHeap[T]) Pop() (T, error) {
	var zero T
	if h.size == 0 {
		return zero, ErrEmpty
	}

	root := h.data[0]
	h.size--
	h.data[0] = h.data[h.size]
	h.data[h.size] = zero
	if h.size > 0 {
		h.siftDown(0)
	}

	return root, nil
}

func (h *MaxHeap[T]) Peek() (T, error) {
	if h.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return h.data[0], nil
}

func (h *MaxHeap[T]) Len() int {
	return h.size
}

func (h *MaxHeap[T]) IsEmpty() bool {
	return h.size == 0
}

func (h *MaxHeap[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if h.data[parent] >= h.data[i] {
			break
		}

		h.data[parent], h.data[i] = h.data[i], h.data[parent]
		i = parent
	}
}

func (h *MaxHeap[T]) siftDown(i int) {
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i

		if left < h.size && h.data[left] > h.data[largest] {
			largest = left
		}
		if right < h.size && h.data[right] > h.data[largest] {
			largest = right
		}
		if largest == i {
			break
		}

		h.data[i], h.data[largest] = h.data[largest], h.data[i]
		i = largest
	}
}
