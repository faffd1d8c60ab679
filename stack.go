package datakit

import "fmt"

// Stack is an array-backed LIFO with the same doubling growth as
// Vector. Not safe for concurrent use.
type Stack[T any] struct {
	data []T
	top  int
}

func NewStack[T any](capacity int) (*Stack[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}

	return &Stack[T]{data: make([]T, capacity)}, nil
}

func (s *Stack[T]) Push(v T) {
	if s.top == len(s.data) {
		s.data = grow(s.data)
	}

	s.data[s.top] = v
	s.top++
}

// Pop removes and returns the top element. The vacated slot is zeroed
// so the stack does not keep the popped value reachable.
func (s *Stack[T]) Pop() (T, error) {
	var zero T
	if s.top == 0 {
		return zero, ErrEmpty
	}

	s.top--
	v := s.data[s.top]
	s.data[s.top] = zero

	return v, nil
}

func (s *Stack[T]) Peek() (T, error) {
	if s.top == 0 {
		var zero T
		return zero, ErrEmpty
	}

	return s.data[s.top-1], nil
}

func (s *Stack[T]) Size() int {
	return s.top
}

func (s *Stack[T]) Capacity() int {
	return len(s.data)
}

func (s *Stack[T]) IsEmpty() bool {
	return s.top == 0
}
