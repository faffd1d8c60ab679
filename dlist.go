package datakit

// DNode is a handle into a DList. A handle obtained from PushFront or
// PushBack stays valid until the node is removed.
type DNode[T any] struct {
	Value T

	prev *DNode[T]
	next *DNode[T]
	list *DList[T]
}

func (n *DNode[T]) Next() *DNode[T] {
	return n.next
}

func (n *DNode[T]) Prev() *DNode[T] {
	return n.prev
}

// DList is a doubly-linked sequence: O(1) insertion at both ends and
// O(1) removal given a node handle. Not safe for concurrent use.
type DList[T any] struct {
	head *DNode[T]
	tail *DNode[T]
	size int
}

func NewDList[T any]() *DList[T] {
	return &DList[T]{}
}

func (l *DList[T]) PushFront(v T) *DNode[T] {
	node := &DNode[T]{Value: v, list: l}

	node.next = l.head
	if l.head != nil {
		l.head.prev = node
	} else {
		l.tail = node
	}

	l.head = node
	l.size++

	return node
}

func (l *DList[T]) PushBack(v T) *DNode[T] {
	node := &DNode[T]{Value: v, list: l}

	node.prev = l.tail
	if l.tail != nil {
		l.tail.next = node
	} else {
		l.head = node
	}

	l.tail = node
	l.size++

	return node
}

// Remove unlinks the node in O(1). Removing the only node leaves the
// list in the empty state. A nil handle, a handle from another list or
// an already-removed handle yields ErrForeignNode.
func (l *DList[T]) Remove(node *DNode[T]) error {
	if node == nil || node.list != l {
		return ErrForeignNode
	}

	if node.prev != nil {
		node.prev.next = node.next
	} else {
		l.head = node.next
	}
	if node.next != nil {
		node.next.prev = node.prev
	} else {
		l.tail = node.prev
	}

	node.prev = nil
	node.next = nil
	node.list = nil

	l.size--

	return nil
}

func (l *DList[T]) Front() *DNode[T] {
	return l.head
}

func (l *DList[T]) Back() *DNode[T] {
	return l.tail
}

func (l *DList[T]) Len() int {
	return l.size
}
