package datakit

import "golang.org/x/exp/constraints"

const (
	defaultMapCapacity     = 16
	mapLoadFactorThreshold = 0.75
)

type mapEntry[K constraints.Signed, V any] struct {
	key   K
	value V
	next  *mapEntry[K, V]
}

// HashMap is a separate-chaining map: an array of bucket heads, each
// bucket a chain of entries. The bucket count doubles and every entry
// is rehashed once the resident load (size+1)/capacity would exceed
// 0.75. Chain order within a bucket is not guaranteed across a resize.
//
// The hash folds negative keys to their magnitude before taking the
// bucket index, so k and -k alias to the same bucket. That is fine for
// a chained table but makes the hash collision-prone on adversarial
// input; do not treat it as cryptographic.
//
// HashMap is not safe for concurrent use.
type HashMap[K constraints.Signed, V any] struct {
	buckets []*mapEntry[K, V]
	size    int
}

func NewHashMap[K constraints.Signed, V any]() *HashMap[K, V] {
	return &HashMap[K, V]{
		buckets: make([]*mapEntry[K, V], defaultMapCapacity),
	}
}

// bucketIndex folds the sign in uint64 space: two's-complement
// negation is defined in Go, so the minimum signed value folds to its
// own bit pattern (1<<63) instead of overflowing.
func (m *HashMap[K, V]) bucketIndex(key K, capacity int) int {
	folded := uint64(key)
	if key < 0 {
		folded = -folded
	}

	return int(folded % uint64(capacity))
}

// Set inserts key with value, overwriting the value in place when key
// is already present.
func (m *HashMap[K, V]) Set(key K, value V) {
	if float64(m.size+1)/float64(len(m.buckets)) > mapLoadFactorThreshold {
		m.resize()
	}

	index := m.bucketIndex(key, len(m.buckets))

	for entry := m.buckets[index]; entry != nil; entry = entry.next {
		if entry.key == key {
			entry.value = value
			return
		}
	}

	m.buckets[index] = &mapEntry[K, V]{
		key:   key,
		value: value,
		next:  m.buckets[index],
	}
	m.size++
}

func (m *HashMap[K, V]) Get(key K) (V, bool) {
	index := m.bucketIndex(key, len(m.buckets))

	for entry := m.buckets[index]; entry != nil; entry = entry.next {
		if entry.key == key {
			return entry.value, true
		}
	}

	var zero V
	return zero, false
}

// Delete unlinks the entry for key from its chain. Reports whether the
// key was present.
func (m *HashMap[K, V]) Delete(key K) bool {
	index := m.bucketIndex(key, len(m.buckets))

	var previous *mapEntry[K, V]
	for entry := m.buckets[index]; entry != nil; entry = entry.next {
		if entry.key == key {
			if previous == nil {
				m.buckets[index] = entry.next
			} else {
				previous.next = entry.next
			}

			m.size--

			return true
		}

		previous = entry
	}

	return false
}

func (m *HashMap[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, head := range m.buckets {
		for entry := head; entry != nil; entry = entry.next {
			keys = append(keys, entry.key)
		}
	}

	return keys
}

// Clear drops every entry, keeping the current bucket count.
func (m *HashMap[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}

	m.size = 0
}

func (m *HashMap[K, V]) Len() int {
	return m.size
}

func (m *HashMap[K, V]) Capacity() int {
	return len(m.buckets)
}

// resize doubles the bucket count and relinks every existing entry
// head-first into its new bucket. Entry nodes are reused, not copied.
func (m *HashMap[K, V]) resize() {
	newBuckets := make([]*mapEntry[K, V], 2*len(m.buckets))

	for _, head := range m.buckets {
		entry := head
		for entry != nil {
			next := entry.next
			index := m.bucketIndex(entry.key, len(newBuckets))
			entry.next = newBuckets[index]
			newBuckets[index] = entry
			entry = next
		}
	}

	m.buckets = newBuckets
}
