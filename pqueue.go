package datakit

import "fmt"

// CompareFunc orders two values: negative when a ranks below b, zero
// when they rank equally, positive when a ranks above b.
type CompareFunc[T any] func(a, b T) int

// PriorityQueue is a binary max-heap ordered by a caller-supplied
// CompareFunc: Pop returns the highest-ranked element first. Elements
// that compare equal come out in arbitrary relative order.
//
// PriorityQueue is not safe for concurrent use.
type PriorityQueue[T any] struct {
	data []T
	size int
	cmp  CompareFunc[T]
}

func NewPriorityQueue[T any](capacity int, cmp CompareFunc[T]) (*PriorityQueue[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if cmp == nil {
		return nil, ErrNilCompare
	}

	return &PriorityQueue[T]{data: make([]T, capacity), cmp: cmp}, nil
}

func (pq *PriorityQueue[T]) Push(v T) {
	if pq.size == len(pq.data) {
		pq.data = grow(pq.data)
	}

	pq.data[pq.size] = v
	pq.size++
	pq.siftUp(pq.size - 1)
}

func (pq *PriorityQueue[T]) Pop() (T, error) {
	var zero T
	if pq.size == 0 {
		return zero, ErrEmpty
	}

	root := pq.data[0]
	pq.size--
	pq.data[0] = pq.data[pq.size]
	pq.data[pq.size] = zero
	if pq.size > 0 {
		pq.siftDown(0)
	}

	return root, nil
}

func (pq *PriorityQueue[T]) Peek() (T, error) {
	if pq.size == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return pq.data[0], nil
}

func (pq *PriorityQueue[T]) Len() int {
	return pq.size
}

func (pq *PriorityQueue[T]) IsEmpty() bool {
	return pq.size == 0
}

func (pq *PriorityQueue[T]) siftUp(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if pq.cmp(pq.data[parent], pq.data[i]) >= 0 {
			break
		}

		pq.data[parent], pq.data[i] = pq.data[i], pq.data[parent]
		i = parent
	}
}

func (pq *PriorityQueue[T]) siftDown(i int) {
	for {
		left := 2*i + 1
		right := 2*i + 2
		largest := i

		if left < pq.size && pq.cmp(pq.data[left], pq.data[largest]) > 0 {
			largest = left
		}
		if right < pq.size && pq.cmp(pq.data[right], pq.data[largest]) > 0 {
			largest = right
		}
		if largest == i {
			break
		}

		pq.data[i], pq.data[largest] = pq.data[largest], pq.data[i]
		i = largest
	}
}
