// Package core provides the directed, weighted, in-memory Graph that the
// pathfind engines operate on.
//
// Overview:
//
//   - Graph[K] stores uniquely labeled nodes of any comparable type and
//     directed edges carrying float64 weights.
//   - The node index is a hashmap.Map, giving O(1) expected lookup for
//     every existence check.
//   - Each node record owns its outgoing and incoming edge lists, so
//     removing a node cascades removal of every edge touching it in
//     either direction.
//
// Edge semantics:
//
//   - At most one edge exists per ordered (from, to) pair. InsertEdge on an
//     existing pair overwrites the weight rather than failing, so reloading
//     the same description is harmless.
//   - Both endpoints of every stored edge exist as nodes; InsertEdge fails
//     with ErrNodeNotFound (naming the missing endpoint) otherwise.
//   - Negative weights are storable; shortest-path correctness on
//     non-negative weights is a precondition of the dijkstra package, not
//     a storage rule.
//
// Error handling (sentinel errors):
//
//   - ErrNilLabel      — InsertNode received a nil label.
//   - ErrDuplicateNode — InsertNode received a label that already exists.
//   - ErrNodeNotFound  — an operation referenced an absent node.
//   - ErrEdgeNotFound  — an operation referenced an absent edge.
//
// Thread safety: none. The graph is plain mutable state; a single logical
// owner must serialize structural mutation against queries.
package core
