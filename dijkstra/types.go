// Package dijkstra declares the sentinel errors shared by all query
// operations.
package dijkstra

import "errors"

// Sentinel errors returned by shortest-path queries.
var (
	// ErrNilGraph indicates that a nil *core.Graph was supplied.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start label does not identify a
	// node of the graph. Distinct from ErrEndNotFound so callers can tell
	// which endpoint was missing.
	ErrStartNotFound = errors.New("dijkstra: start node not found in graph")

	// ErrEndNotFound indicates that the end label does not identify a node
	// of the graph.
	ErrEndNotFound = errors.New("dijkstra: end node not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected
	// in the graph. Dijkstra requires non-negative weights.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that both endpoints exist but the frontier was
	// exhausted without reaching the end node.
	ErrNoPath = errors.New("dijkstra: no path between start and end")
)
