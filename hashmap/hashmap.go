// Package hashmap implements the chained hash table declared in types.go.
package hashmap

import (
	"hash/maphash"
	"reflect"
)

// pair is one key→value mapping stored inside a bucket chain.
type pair[K comparable, V any] struct {
	key   K
	value V
}

// Map is a generic hash-indexed associative container with chained collision
// resolution and automatic growth.
//
// The zero value is not usable; construct with New.
type Map[K comparable, V any] struct {
	seed    maphash.Seed   // per-map hash seed; stable across rehashes
	buckets [][]pair[K, V] // bucket array; each bucket is an ordered chain
	size    int            // current number of stored pairs
}

// New creates an empty Map with DefaultCapacity buckets, or with the
// capacity given via WithCapacity.
//
// Complexity: O(capacity)
func New[K comparable, V any](opts ...Option) *Map[K, V] {
	cfg := defaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Map[K, V]{
		seed:    maphash.MakeSeed(),
		buckets: make([][]pair[K, V], cfg.capacity),
	}
}

// Put adds a new key→value mapping.
//
// Returns ErrNilKey if key is nil, or ErrDuplicateKey if key already maps to
// a value (the prior mapping is left unchanged). A nil (zero) value is
// permitted and is distinguishable from "key not present".
//
// When the load factor reaches LoadFactorLimit after the insertion, the
// bucket array doubles and every pair is reinserted at its recomputed index,
// so the observed load factor stays strictly below the limit.
//
// Complexity: O(1) expected; O(n) when a rehash triggers.
func (m *Map[K, V]) Put(key K, value V) error {
	// 1) Reject nil keys up front; they are never stored.
	if isNilKey(key) {
		return ErrNilKey
	}

	// 2) Locate the target bucket and reject duplicates.
	idx := m.bucketIndex(key)
	if m.chainIndex(m.buckets[idx], key) >= 0 {
		return ErrDuplicateKey
	}

	// 3) Append the new pair to the chain and account for it.
	m.buckets[idx] = append(m.buckets[idx], pair[K, V]{key: key, value: value})
	m.size++

	// 4) Grow when the load factor reaches the limit.
	if float64(m.size)/float64(len(m.buckets)) >= LoadFactorLimit {
		m.rehash()
	}

	return nil
}

// Get returns the value that key maps to.
// Returns ErrKeyNotFound if the key is absent (including nil keys).
//
// Complexity: O(1) expected.
func (m *Map[K, V]) Get(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrKeyNotFound
	}

	bucket := m.buckets[m.bucketIndex(key)]
	if i := m.chainIndex(bucket, key); i >= 0 {
		return bucket[i].value, nil
	}

	return zero, ErrKeyNotFound
}

// ContainsKey reports whether key maps to a value.
// Total by design: never errors, and reports false for nil keys.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) ContainsKey(key K) bool {
	if isNilKey(key) {
		return false
	}

	return m.chainIndex(m.buckets[m.bucketIndex(key)], key) >= 0
}

// Remove deletes the mapping for key and returns the removed value.
// Returns ErrKeyNotFound if the key is absent (including nil keys).
// Capacity is never shrunk on removal.
//
// Complexity: O(1) expected.
func (m *Map[K, V]) Remove(key K) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrKeyNotFound
	}

	idx := m.bucketIndex(key)
	bucket := m.buckets[idx]
	i := m.chainIndex(bucket, key)
	if i < 0 {
		return zero, ErrKeyNotFound
	}

	// Splice the pair out of the chain, preserving chain order.
	removed := bucket[i].value
	m.buckets[idx] = append(bucket[:i], bucket[i+1:]...)
	m.size--

	return removed, nil
}

// Clear removes all mappings. Capacity is preserved.
//
// Complexity: O(capacity)
func (m *Map[K, V]) Clear() {
	for i := range m.buckets {
		m.buckets[i] = nil
	}
	m.size = 0
}

// Len returns the number of stored key→value pairs.
func (m *Map[K, V]) Len() int { return m.size }

// Capacity returns the current bucket count.
func (m *Map[K, V]) Capacity() int { return len(m.buckets) }

// Keys returns every stored key in bucket-major, then chain order.
// The order is an implementation detail, not a guarantee.
//
// Complexity: O(capacity + n)
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for _, bucket := range m.buckets {
		for _, p := range bucket {
			keys = append(keys, p.key)
		}
	}

	return keys
}

// bucketIndex maps key to a bucket via a deterministic hash reduced modulo
// the current capacity. The unsigned modulo keeps the index non-negative.
func (m *Map[K, V]) bucketIndex(key K) int {
	return int(maphash.Comparable(m.seed, key) % uint64(len(m.buckets)))
}

// chainIndex returns the position of key within a bucket chain, or -1.
// Equality is by key value, not pointer identity.
func (m *Map[K, V]) chainIndex(bucket []pair[K, V], key K) int {
	for i := range bucket {
		if bucket[i].key == key {
			return i
		}
	}

	return -1
}

// rehash doubles the bucket array and reinserts every pair at the index
// recomputed against the new capacity. Reinsertion order does not matter;
// the final state holds every pair at capacity = 2× old.
func (m *Map[K, V]) rehash() {
	old := m.buckets
	m.buckets = make([][]pair[K, V], len(old)*2)
	for _, bucket := range old {
		for _, p := range bucket {
			idx := m.bucketIndex(p.key)
			m.buckets[idx] = append(m.buckets[idx], p)
		}
	}
}

// isNilKey reports whether key is a nil pointer, nil interface, nil chan,
// nil func, or nil unsafe pointer. Value-typed keys are never nil.
func isNilKey[K comparable](key K) bool {
	v := reflect.ValueOf(key)
	if !v.IsValid() {
		// reflect.ValueOf(nil interface) yields the invalid Value.
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Chan, reflect.Func, reflect.UnsafePointer, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
