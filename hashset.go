package datakit

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

type setSlot[K constraints.Integer] struct {
	key   K
	state slotState
}

// SetStats describes the occupancy of a HashSet.
type SetStats struct {
	Size                    int
	Capacity                int
	Tombstones              int
	TombstonesCapacityRatio float32
}

// HashSet is an open-addressing set over integer keys with linear
// probing. A removed key leaves a DELETED tombstone so later probe
// sequences keep walking past it; probing stops only at an EMPTY slot,
// a matching key, or after a full wrap of the table.
//
// By default the set grows: once (size+1)/capacity would exceed the
// load factor, capacity doubles and every OCCUPIED slot is re-probed
// into a fresh slot array, dropping tombstones. Built with Fixed, the
// set keeps the capacity it was given and Insert reports ErrFull once
// size reaches capacity, tombstones notwithstanding.
//
// HashSet is not safe for concurrent use.
type HashSet[K constraints.Integer] struct {
	slots      []setSlot[K]
	size       int
	tombstones int
	loadFactor float64
	fixed      bool

	hashFunc HashFunc[K]
}

type SetOption[K constraints.Integer] func(s *HashSet[K])

// Override the default Mix64-based hash function.
func WithHashFunc[K constraints.Integer](f HashFunc[K]) SetOption[K] {
	return func(s *HashSet[K]) {
		s.hashFunc = f
	}
}

// Fixed disables growth: the set retains the capacity it was
// initialized with and Insert fails with ErrFull once it is saturated.
func Fixed[K constraints.Integer]() SetOption[K] {
	return func(s *HashSet[K]) {
		s.fixed = true
	}
}

func NewHashSet[K constraints.Integer](capacity int, loadFactor float64, opts ...SetOption[K]) (*HashSet[K], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCapacity, capacity)
	}
	if loadFactor <= 0 || loadFactor >= 1 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidLoadFactor, loadFactor)
	}

	s := &HashSet[K]{
		slots:      make([]setSlot[K], capacity),
		loadFactor: loadFactor,
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.hashFunc == nil {
		s.hashFunc = IntHash[K]()
	}

	return s, nil
}

// Insert adds key to the set. The first non-OCCUPIED slot on the probe
// sequence takes the key, reusing tombstones; ErrDuplicate is returned
// when a matching OCCUPIED slot is seen first.
func (s *HashSet[K]) Insert(key K) error {
	if s.fixed {
		if s.size == len(s.slots) {
			return ErrFull
		}
	} else if float64(s.size+1)/float64(len(s.slots)) > s.loadFactor {
		s.resize(2 * len(s.slots))
	}

	home := int(s.hashFunc(key) % uint64(len(s.slots)))
	for i := 0; i < len(s.slots); i++ {
		probe := (home + i) % len(s.slots)
		slot := &s.slots[probe]

		if slot.state != slotOccupied {
			if slot.state == slotDeleted {
				s.tombstones--
			}
			slot.key = key
			slot.state = slotOccupied
			s.size++

			return nil
		}
		if slot.key == key {
			return ErrDuplicate
		}
	}

	return ErrFull
}

// Remove marks the key's slot DELETED, preserving the probe chain for
// keys inserted past it.
func (s *HashSet[K]) Remove(key K) error {
	home := int(s.hashFunc(key) % uint64(len(s.slots)))
	for i := 0; i < len(s.slots); i++ {
		probe := (home + i) % len(s.slots)
		slot := &s.slots[probe]

		if slot.state == slotEmpty {
			return ErrNotFound
		}
		if slot.state == slotOccupied && slot.key == key {
			slot.state = slotDeleted
			s.size--
			s.tombstones++

			return nil
		}
	}

	return ErrNotFound
}

func (s *HashSet[K]) Contains(key K) bool {
	home := int(s.hashFunc(key) % uint64(len(s.slots)))
	for i := 0; i < len(s.slots); i++ {
		probe := (home + i) % len(s.slots)
		slot := &s.slots[probe]

		if slot.state == slotEmpty {
			return false
		}
		if slot.state == slotOccupied && slot.key == key {
			return true
		}
	}

	return false
}

func (s *HashSet[K]) Len() int {
	return s.size
}

func (s *HashSet[K]) Capacity() int {
	return len(s.slots)
}

func (s *HashSet[K]) Stats() SetStats {
	return SetStats{
		Size:                    s.size,
		Capacity:                len(s.slots),
		Tombstones:              s.tombstones,
		TombstonesCapacityRatio: float32(s.tombstones) / float32(len(s.slots)),
	}
}

// resize re-probes every OCCUPIED slot into a fresh slot array.
// Tombstones are dropped, reclaiming their space. The old array stays
// intact until the rehash completes.
func (s *HashSet[K]) resize(newCapacity int) {
	newSlots := make([]setSlot[K], newCapacity)

	for _, slot := range s.slots {
		if slot.state != slotOccupied {
			continue
		}

		home := int(s.hashFunc(slot.key) % uint64(newCapacity))
		for i := 0; i < newCapacity; i++ {
			probe := (home + i) % newCapacity
			if newSlots[probe].state != slotOccupied {
				newSlots[probe].key = slot.key
				newSlots[probe].state = slotOccupied
				break
			}
		}
	}

	s.slots = newSlots
	s.tombstones = 0
}
