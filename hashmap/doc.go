// Package hashmap provides a generic, chained hash table with automatic
// growth, used throughout pathfind as the graph's node index and as the
// Dijkstra engine's settled set.
//
// Overview:
//
//   - Map[K, V] stores key→value pairs in a fixed-length bucket array;
//     each bucket holds an ordered chain of pairs, so colliding keys
//     coexist and remain independently retrievable and removable.
//   - When the load factor (size/capacity) reaches 0.80 after an insertion,
//     the bucket array doubles and every pair is reinserted at its
//     recomputed index. Capacity never shrinks.
//   - Keys are hashed with hash/maphash, reduced modulo the current
//     capacity; the result is non-negative by construction.
//
// Key contract:
//
//   - Every present key maps to exactly one value; a second Put of the same
//     key fails with ErrDuplicateKey and leaves the prior mapping intact.
//   - Nil keys (nil pointers, nil interfaces, nil chans/funcs) are rejected:
//     Put returns ErrNilKey, Get and Remove return ErrKeyNotFound, and
//     ContainsKey reports false. Value-typed keys have no nil form and are
//     always accepted, including their zero value.
//   - Nil (zero) values are permitted and distinguishable from "key absent":
//     Get on a stored nil value succeeds and returns it.
//
// Error handling (sentinel errors):
//
//   - ErrNilKey       — Put received a nil key.
//   - ErrDuplicateKey — Put received a key that is already present.
//   - ErrKeyNotFound  — Get or Remove referenced an absent key.
//   - ErrBadCapacity  — (via panic) WithCapacity received a value < 1.
//
// Complexity:
//
//   - Put/Get/ContainsKey/Remove: O(1) expected, O(n) worst case within a
//     single chain.
//   - Rehash: O(n) — every pair is reinserted once.
//
// Thread safety: none. Callers must serialize concurrent mutation; a rehash
// rebuilds the entire bucket array.
package hashmap
