// Package core implements the Graph methods declared in types.go.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/pathfind/hashmap"
)

// InsertNode adds a node identified by label.
// Returns ErrNilLabel for nil labels or ErrDuplicateNode if the label is
// already present; neither failure mutates the graph.
//
// Complexity: O(1) expected.
func (g *Graph[K]) InsertNode(label K) error {
	if err := g.nodes.Put(label, &node[K]{label: label}); err != nil {
		switch {
		case errors.Is(err, hashmap.ErrNilKey):
			return ErrNilLabel
		case errors.Is(err, hashmap.ErrDuplicateKey):
			return fmt.Errorf("%w: %v", ErrDuplicateNode, label)
		default:
			return err
		}
	}

	return nil
}

// RemoveNode deletes the node identified by label together with every edge
// touching it, incoming and outgoing.
// Returns ErrNodeNotFound if the label is absent.
//
// Complexity: O(deg(label) × max chain length of touched nodes).
func (g *Graph[K]) RemoveNode(label K) error {
	n, err := g.nodes.Remove(label)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrNodeNotFound, label)
	}

	// Detach outgoing edges from their successors' incoming lists.
	for _, e := range n.edgesOut {
		if e.to != n {
			e.to.edgesIn = dropEdge(e.to.edgesIn, e)
		}
		g.edgeCount--
	}
	// Detach incoming edges from their predecessors' outgoing lists.
	// A self-loop was already counted above.
	for _, e := range n.edgesIn {
		if e.from == n {
			continue
		}
		e.from.edgesOut = dropEdge(e.from.edgesOut, e)
		g.edgeCount--
	}

	return nil
}

// InsertEdge creates a directed edge from→to with the given weight, or
// overwrites the weight when that edge already exists. Overwriting does not
// change EdgeCount.
// Returns ErrNodeNotFound naming the missing endpoint if either node is
// absent; the graph is not mutated on failure.
//
// Complexity: O(out-degree of from) for the overwrite scan.
func (g *Graph[K]) InsertEdge(from, to K, weight float64) error {
	fromNode, err := g.nodes.Get(from)
	if err != nil {
		return fmt.Errorf("%w: source %v", ErrNodeNotFound, from)
	}
	toNode, err := g.nodes.Get(to)
	if err != nil {
		return fmt.Errorf("%w: target %v", ErrNodeNotFound, to)
	}

	// At most one edge per ordered pair: overwrite the weight if present.
	for _, e := range fromNode.edgesOut {
		if e.to == toNode {
			e.weight = weight

			return nil
		}
	}

	e := &edgeRec[K]{from: fromNode, to: toNode, weight: weight}
	fromNode.edgesOut = append(fromNode.edgesOut, e)
	toNode.edgesIn = append(toNode.edgesIn, e)
	g.edgeCount++

	return nil
}

// RemoveEdge deletes the directed edge from→to.
// Returns ErrNodeNotFound if either endpoint is absent, or ErrEdgeNotFound
// if the endpoints exist but the edge does not.
//
// Complexity: O(deg(from) + deg(to)).
func (g *Graph[K]) RemoveEdge(from, to K) error {
	fromNode, err := g.nodes.Get(from)
	if err != nil {
		return fmt.Errorf("%w: source %v", ErrNodeNotFound, from)
	}
	toNode, err := g.nodes.Get(to)
	if err != nil {
		return fmt.Errorf("%w: target %v", ErrNodeNotFound, to)
	}

	for _, e := range fromNode.edgesOut {
		if e.to == toNode {
			fromNode.edgesOut = dropEdge(fromNode.edgesOut, e)
			toNode.edgesIn = dropEdge(toNode.edgesIn, e)
			g.edgeCount--

			return nil
		}
	}

	return fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// ContainsNode reports whether a node with the given label exists.
// Total: reports false for nil labels.
//
// Complexity: O(1) expected.
func (g *Graph[K]) ContainsNode(label K) bool {
	return g.nodes.ContainsKey(label)
}

// HasEdge reports whether the directed edge from→to exists.
// Total: reports false when either endpoint is absent.
//
// Complexity: O(out-degree of from).
func (g *Graph[K]) HasEdge(from, to K) bool {
	fromNode, err := g.nodes.Get(from)
	if err != nil {
		return false
	}
	for _, e := range fromNode.edgesOut {
		if e.to.label == to {
			return true
		}
	}

	return false
}

// Nodes returns an unordered snapshot of all node labels.
//
// Complexity: O(V)
func (g *Graph[K]) Nodes() []K {
	return g.nodes.Keys()
}

// EdgeWeight returns the weight of the directed edge from→to.
// Returns ErrNodeNotFound if either endpoint is absent, or ErrEdgeNotFound
// if the endpoints exist but the edge does not.
//
// Complexity: O(out-degree of from).
func (g *Graph[K]) EdgeWeight(from, to K) (float64, error) {
	fromNode, err := g.nodes.Get(from)
	if err != nil {
		return 0, fmt.Errorf("%w: source %v", ErrNodeNotFound, from)
	}
	if !g.nodes.ContainsKey(to) {
		return 0, fmt.Errorf("%w: target %v", ErrNodeNotFound, to)
	}

	for _, e := range fromNode.edgesOut {
		if e.to.label == to {
			return e.weight, nil
		}
	}

	return 0, fmt.Errorf("%w: %v→%v", ErrEdgeNotFound, from, to)
}

// OutgoingEdges returns snapshots of every edge leaving the given node, in
// insertion order.
// Returns ErrNodeNotFound if the label is absent.
//
// Complexity: O(out-degree).
func (g *Graph[K]) OutgoingEdges(label K) ([]Edge[K], error) {
	n, err := g.nodes.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, label)
	}

	return snapshotEdges(n.edgesOut), nil
}

// IncomingEdges returns snapshots of every edge entering the given node, in
// insertion order.
// Returns ErrNodeNotFound if the label is absent.
//
// Complexity: O(in-degree).
func (g *Graph[K]) IncomingEdges(label K) ([]Edge[K], error) {
	n, err := g.nodes.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNodeNotFound, label)
	}

	return snapshotEdges(n.edgesIn), nil
}

// Edges returns snapshots of every directed edge in the graph, unordered.
//
// Complexity: O(V + E)
func (g *Graph[K]) Edges() []Edge[K] {
	out := make([]Edge[K], 0, g.edgeCount)
	for _, label := range g.nodes.Keys() {
		n, err := g.nodes.Get(label)
		if err != nil {
			continue
		}
		out = append(out, snapshotEdges(n.edgesOut)...)
	}

	return out
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph[K]) NodeCount() int { return g.nodes.Len() }

// EdgeCount returns the number of directed edges in the graph.
func (g *Graph[K]) EdgeCount() int { return g.edgeCount }

// snapshotEdges copies internal edge records into caller-owned Edge values.
func snapshotEdges[K comparable](recs []*edgeRec[K]) []Edge[K] {
	out := make([]Edge[K], len(recs))
	for i, e := range recs {
		out[i] = Edge[K]{From: e.from.label, To: e.to.label, Weight: e.weight}
	}

	return out
}

// dropEdge splices target out of list by record identity, preserving order.
func dropEdge[K comparable](list []*edgeRec[K], target *edgeRec[K]) []*edgeRec[K] {
	for i, e := range list {
		if e == target {
			return append(list[:i], list[i+1:]...)
		}
	}

	return list
}
