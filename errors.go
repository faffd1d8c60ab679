package datakit

import "errors"

var (
	// ErrEmpty is returned by pop/peek/extract operations on a container
	// that holds zero elements. The container is left unchanged.
	ErrEmpty = errors.New("container is empty")

	// ErrNotFound is returned when a value or key is absent. It is a
	// normal negative result, not a fault.
	ErrNotFound = errors.New("value not found")

	// ErrDuplicate is returned by set inserts when the key is already
	// present.
	ErrDuplicate = errors.New("key already present")

	// ErrFull is returned by a fixed-capacity set once size reaches
	// capacity. Tombstones do not count as free room.
	ErrFull = errors.New("container is full")

	// ErrInvalidCapacity is returned by constructors given a capacity
	// below one.
	ErrInvalidCapacity = errors.New("capacity must be greater than zero")

	// ErrInvalidLoadFactor is returned by constructors given a load
	// factor outside (0, 1).
	ErrInvalidLoadFactor = errors.New("load factor must be in (0, 1)")

	// ErrNilCompare is returned when a priority queue is constructed
	// without a compare function.
	ErrNilCompare = errors.New("compare function must not be nil")

	// ErrForeignNode is returned when a node handle does not belong to
	// the list it was passed to, or was already removed.
	ErrForeignNode = errors.New("node does not belong to this list")
)
