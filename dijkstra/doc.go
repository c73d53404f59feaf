// Package dijkstra implements exact shortest-path queries over a
// core.Graph using Dijkstra's algorithm with predecessor-chain path
// reconstruction.
//
// Overview:
//
//   - A query progresses Initialize → Explore (repeated) → Found or
//     Exhausted. The frontier is a min-heap ordered by accumulated cost;
//     the settled set is a hashmap.Map.
//   - Duplicate frontier entries are handled lazily: instead of a
//     decrease-key operation, a fresh entry is pushed for every improvement
//     and stale entries are discarded on extraction when their node is
//     already settled. The first time a node is settled, it is settled via
//     its minimum-cost path — valid only for non-negative weights.
//   - Each explored path is a searchNode chain: node label, accumulated
//     cost, and a reference to the predecessor searchNode (nil for the
//     start). Reconstruction walks the chain back to the start and reverses
//     it.
//
// Operations:
//
//   - Path:           ordered labels of the shortest path, start→end.
//   - Cost:           accumulated cost of the shortest path.
//   - Route:          both of the above from a single computation.
//   - SegmentWeights: the per-hop edge weights along the shortest path.
//   - Furthest:       the most expensive reachable node from a start.
//
// Path and Cost recompute the search independently per call; callers that
// need both should use Route.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph       — a nil graph was supplied.
//   - ErrStartNotFound  — the start label is not a node of the graph.
//   - ErrEndNotFound    — the end label is not a node of the graph.
//   - ErrNegativeWeight — a negative stored weight was detected by the
//     upfront O(E) scan; Dijkstra's correctness requires non-negative
//     weights, so the query fails fast.
//   - ErrNoPath         — both endpoints exist but no route connects them,
//     or (for Furthest) nothing is reachable from the start.
//
// Results are never partial: a failed query returns only its error.
//
// Complexity: O((V + E) log V) time per query, O(V + E) space — each node
// is settled at most once and each edge pushes at most one frontier entry.
//
// Thread safety: none. Do not mutate the graph while a query runs.
package dijkstra
