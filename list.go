package datakit

type ListNode[T comparable] struct {
	Value T
	next  *ListNode[T]
}

// Next returns the following node, or nil at the end of the chain.
func (n *ListNode[T]) Next() *ListNode[T] {
	return n.next
}

// List is a singly-linked sequence with O(1) append and linear search.
// Equality defaults to == and can be overridden with WithEquals; an
// optional release callback set with WithRelease is invoked exactly
// once for every value the list lets go of (Remove, Clear), and never
// for values still reachable through the list.
//
// List is not safe for concurrent use.
type List[T comparable] struct {
	head *ListNode[T]
	tail *ListNode[T]
	size int

	equals  func(a, b T) bool
	release func(T)
}

type ListOption[T comparable] func(l *List[T])

// Override the default == equality used by Find and Remove.
func WithEquals[T comparable](eq func(a, b T) bool) ListOption[T] {
	return func(l *List[T]) {
		l.equals = eq
	}
}

// WithRelease registers a destructor invoked on every value removed
// from the list.
func WithRelease[T comparable](release func(T)) ListOption[T] {
	return func(l *List[T]) {
		l.release = release
	}
}

func NewList[T comparable](opts ...ListOption[T]) *List[T] {
	l := &List[T]{}

	for _, opt := range opts {
		opt(l)
	}

	if l.equals == nil {
		l.equals = func(a, b T) bool { return a == b }
	}

	return l
}

// Append adds v at the end of the list and returns its node.
func (l *List[T]) Append(v T) *ListNode[T] {
	node := &ListNode[T]{Value: v}

	if l.head == nil {
		l.head = node
		l.tail = node
	} else {
		l.tail.next = node
		l.tail = node
	}

	l.size++

	return node
}

// Find returns the first node whose value equals target.
func (l *List[T]) Find(target T) (*ListNode[T], bool) {
	for current := l.head; current != nil; current = current.next {
		if l.equals(current.Value, target) {
			return current, true
		}
	}

	return nil, false
}

// Remove unlinks the first node whose value equals target and releases
// its value. The search is O(n); the unlink itself is O(1).
func (l *List[T]) Remove(target T) error {
	var previous *ListNode[T]

	current := l.head
	for current != nil && !l.equals(current.Value, target) {
		previous = current
		current = current.next
	}

	if current == nil {
		return ErrNotFound
	}

	if previous == nil {
		l.head = current.next
	} else {
		previous.next = current.next
	}
	if current == l.tail {
		l.tail = previous
	}

	l.size--

	if l.release != nil {
		l.release(current.Value)
	}

	return nil
}

// Clear releases every value and resets the list to empty.
func (l *List[T]) Clear() {
	for current := l.head; current != nil; current = current.next {
		if l.release != nil {
			l.release(current.Value)
		}
	}

	l.head = nil
	l.tail = nil
	l.size = 0
}

func (l *List[T]) Front() *ListNode[T] {
	return l.head
}

func (l *List[T]) Len() int {
	return l.size
}
