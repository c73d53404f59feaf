// Package pathfind is a compact in-memory toolkit for answering exact
// shortest-path queries over weighted, directed graphs with arbitrary
// labeled nodes.
//
// 🚀 What is pathfind?
//
//	A small, focused library that brings together:
//		• hashmap  — a generic chained hash table with automatic growth,
//		             used as the graph's node index
//		• core     — a directed, weighted graph keyed by any comparable label
//		• dijkstra — an exact Dijkstra engine with predecessor-chain
//		             path reconstruction
//
// ✨ Why choose pathfind?
//
//   - Minimal API – populate the graph, then ask for a path or a cost
//   - Exact answers – Dijkstra only; no heuristics, no approximation
//   - Pure Go – no cgo, the only dependency is testify (tests only)
//   - Honest errors – every failure mode is a distinct sentinel error
//
// A caller populates the graph (InsertNode, InsertEdge), then queries it:
//
//	g := core.NewGraph[string]()
//	_ = g.InsertNode("A")
//	_ = g.InsertNode("B")
//	_ = g.InsertEdge("A", "B", 4)
//	route, cost, err := dijkstra.Route(g, "A", "B")
//
// Thread safety: the graph and map are plain mutable state with no internal
// locking. A single logical owner must serialize structural mutation against
// queries; see each package's doc for details.
//
//	go get github.com/katalvlaran/pathfind
package pathfind
