// Package core declares the Graph type, its internal node and edge records,
// sentinel errors, and construction options.
package core

import (
	"errors"

	"github.com/katalvlaran/pathfind/hashmap"
)

// Sentinel errors for core graph operations.
var (
	// ErrNilLabel indicates that InsertNode received a nil label
	// (nil pointer, nil interface, nil chan, or nil func).
	ErrNilLabel = errors.New("core: node label is nil")

	// ErrDuplicateNode indicates that InsertNode received a label that
	// already identifies a node. The existing node is left unchanged.
	ErrDuplicateNode = errors.New("core: node already present")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadIndexCapacity indicates that WithIndexCapacity was given a
	// value < 1.
	ErrBadIndexCapacity = errors.New("core: index capacity must be at least 1")
)

// Edge is an immutable snapshot of one directed, weighted connection.
// Snapshots are returned by query methods; mutating one has no effect on
// the graph.
type Edge[K comparable] struct {
	// From is the label of the predecessor node.
	From K

	// To is the label of the successor node.
	To K

	// Weight is the cost of traversing this edge.
	Weight float64
}

// node is the internal per-label record. It owns the ordered lists of
// outgoing and incoming edge records; the incoming list exists to support
// reverse traversal and cascading node removal.
type node[K comparable] struct {
	label    K
	edgesOut []*edgeRec[K]
	edgesIn  []*edgeRec[K]
}

// edgeRec is the single shared record for one directed edge. It appears in
// exactly two lists: from.edgesOut and to.edgesIn (once in each for a
// self-loop's single node).
type edgeRec[K comparable] struct {
	from   *node[K]
	to     *node[K]
	weight float64
}

// graphOptions collects construction-time configuration for a Graph.
type graphOptions struct {
	indexCapacity int // initial bucket count of the node index
}

// GraphOption configures a Graph at construction time.
type GraphOption func(*graphOptions)

// WithIndexCapacity sets the initial bucket count of the node index.
// Must be ≥ 1; smaller values cause a panic with ErrBadIndexCapacity.
// Useful when the expected node count is known up front.
func WithIndexCapacity(capacity int) GraphOption {
	return func(o *graphOptions) {
		if capacity < 1 {
			panic(ErrBadIndexCapacity.Error())
		}
		o.indexCapacity = capacity
	}
}

// Graph is a directed, weighted graph keyed by comparable node labels.
//
// The zero value is not usable; construct with NewGraph.
type Graph[K comparable] struct {
	nodes     *hashmap.Map[K, *node[K]] // label → node record
	edgeCount int                       // number of stored directed edges
}

// NewGraph creates an empty Graph. The node index starts at
// hashmap.DefaultCapacity buckets unless WithIndexCapacity overrides it.
//
// Complexity: O(index capacity)
func NewGraph[K comparable](opts ...GraphOption) *Graph[K] {
	cfg := graphOptions{indexCapacity: hashmap.DefaultCapacity}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[K]{
		nodes: hashmap.New[K, *node[K]](hashmap.WithCapacity(cfg.indexCapacity)),
	}
}
