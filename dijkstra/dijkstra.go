// Package dijkstra implements the query operations declared in doc.go.
package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/pathfind/core"
	"github.com/katalvlaran/pathfind/hashmap"
)

// Path returns the ordered node labels of the shortest path from start to
// end, beginning with start and ending with end.
//
// Returns ErrNilGraph, ErrStartNotFound, ErrEndNotFound, ErrNegativeWeight,
// or ErrNoPath; never a partial path.
//
// Complexity: O((V + E) log V)
func Path[K comparable](g *core.Graph[K], start, end K) ([]K, error) {
	goal, err := compute(g, start, end)
	if err != nil {
		return nil, err
	}

	return reconstruct(goal), nil
}

// Cost returns the accumulated cost (sum of edge weights) of the shortest
// path from start to end.
//
// Returns the same errors as Path.
//
// Complexity: O((V + E) log V)
func Cost[K comparable](g *core.Graph[K], start, end K) (float64, error) {
	goal, err := compute(g, start, end)
	if err != nil {
		return 0, err
	}

	return goal.cost, nil
}

// Route returns both the ordered path and its cost from a single
// computation. Preferred over calling Path and Cost separately for the same
// endpoint pair.
//
// Returns the same errors as Path.
//
// Complexity: O((V + E) log V)
func Route[K comparable](g *core.Graph[K], start, end K) ([]K, float64, error) {
	goal, err := compute(g, start, end)
	if err != nil {
		return nil, 0, err
	}

	return reconstruct(goal), goal.cost, nil
}

// SegmentWeights returns the per-hop edge weights along the shortest path
// from start to end, in traversal order. The result has len(path)-1
// entries; it is empty when start equals end.
//
// Returns the same errors as Path.
//
// Complexity: O((V + E) log V)
func SegmentWeights[K comparable](g *core.Graph[K], start, end K) ([]float64, error) {
	route, err := Path(g, start, end)
	if err != nil {
		return nil, err
	}

	weights := make([]float64, 0, len(route)-1)
	for i := 0; i+1 < len(route); i++ {
		w, err := g.EdgeWeight(route[i], route[i+1])
		if err != nil {
			// Every consecutive pair on a found path is an existing edge;
			// reaching here means the graph was mutated mid-query.
			return nil, fmt.Errorf("dijkstra: path edge vanished: %w", err)
		}
		weights = append(weights, w)
	}

	return weights, nil
}

// Furthest returns the node whose shortest path from start is the most
// expensive among all reachable nodes, together with that cost.
//
// Returns ErrNilGraph, ErrStartNotFound, ErrNegativeWeight, or ErrNoPath
// when nothing besides start itself is reachable.
//
// Nodes settle in nondecreasing cost order, so a single exhaustive run
// answers the query: the last settled node is the furthest.
//
// Complexity: O((V + E) log V)
func Furthest[K comparable](g *core.Graph[K], start K) (K, float64, error) {
	var zero K
	if g == nil {
		return zero, 0, ErrNilGraph
	}
	if !g.ContainsNode(start) {
		return zero, 0, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if err := scanWeights(g); err != nil {
		return zero, 0, err
	}

	last, err := explore(g, start, nil)
	if err != nil {
		return zero, 0, err
	}
	if last.label == start {
		return zero, 0, fmt.Errorf("%w: nothing reachable from %v", ErrNoPath, start)
	}

	return last.label, last.cost, nil
}

// searchNode represents one explored path: the node reached, the
// accumulated cost from the query's start, and the searchNode for its
// predecessor on that path (nil for the start). The chain is walked only
// during final reconstruction; it lives for one computation and is never
// persisted.
type searchNode[K comparable] struct {
	label K
	cost  float64
	prev  *searchNode[K]
}

// compute validates the query and runs the search until end is settled.
// It returns the searchNode that settled end; its predecessor chain is the
// shortest path.
func compute[K comparable](g *core.Graph[K], start, end K) (*searchNode[K], error) {
	// 1) Validate the graph and both endpoints, naming the missing one.
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.ContainsNode(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartNotFound, start)
	}
	if !g.ContainsNode(end) {
		return nil, fmt.Errorf("%w: %v", ErrEndNotFound, end)
	}

	// 2) Fail fast on negative stored weights.
	if err := scanWeights(g); err != nil {
		return nil, err
	}

	// 3) Explore until end settles or the frontier empties.
	goal, err := explore(g, start, &end)
	if err != nil {
		return nil, err
	}
	if goal.label != end {
		return nil, fmt.Errorf("%w: %v to %v", ErrNoPath, start, end)
	}

	return goal, nil
}

// explore runs the main Dijkstra loop from start. When end is non-nil the
// loop stops as soon as *end settles and returns its searchNode. When end
// is nil the loop runs the frontier dry and returns the last settled
// searchNode, which has the maximum finalized cost.
func explore[K comparable](g *core.Graph[K], start K, end *K) (*searchNode[K], error) {
	// The settled set marks nodes whose minimum cost is finalized.
	settled := hashmap.New[K, bool](hashmap.WithCapacity(max(g.NodeCount(), 1)))

	// Seed the frontier with the start node at cost 0, no predecessor.
	pq := make(frontier[K], 0, g.NodeCount())
	heap.Init(&pq)
	heap.Push(&pq, &searchNode[K]{label: start})

	var last *searchNode[K]
	for pq.Len() > 0 {
		// Extract the minimum-cost entry.
		current := heap.Pop(&pq).(*searchNode[K])

		// Lazy deletion: a settled node means this entry is stale.
		if settled.ContainsKey(current.label) {
			continue
		}
		if err := settled.Put(current.label, true); err != nil {
			return nil, fmt.Errorf("dijkstra: settled set rejected %v: %w", current.label, err)
		}
		last = current

		// Target reached: the chain behind current is the shortest path.
		if end != nil && current.label == *end {
			return current, nil
		}

		// Push one frontier entry per outgoing edge to an unsettled
		// successor. No eager relaxation: priority order plus the
		// skip-if-settled rule above guarantees minimal settling cost.
		outgoing, err := g.OutgoingEdges(current.label)
		if err != nil {
			return nil, fmt.Errorf("dijkstra: adjacency of settled node %v: %w", current.label, err)
		}
		for _, e := range outgoing {
			if settled.ContainsKey(e.To) {
				continue
			}
			heap.Push(&pq, &searchNode[K]{
				label: e.To,
				cost:  current.cost + e.Weight,
				prev:  current,
			})
		}
	}

	return last, nil
}

// scanWeights checks every stored edge for a negative weight. O(E).
func scanWeights[K comparable](g *core.Graph[K]) error {
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return fmt.Errorf("%w: edge %v→%v weight=%v", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	return nil
}

// reconstruct walks the predecessor chain from goal back to the start and
// reverses it, producing labels in start→end order.
func reconstruct[K comparable](goal *searchNode[K]) []K {
	var route []K
	for sn := goal; sn != nil; sn = sn.prev {
		route = append(route, sn.label)
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}

	return route
}

// frontier is a min-heap of *searchNode ordered by accumulated cost. Stale
// duplicates are permitted; extraction discards them via the settled set.
type frontier[K comparable] []*searchNode[K]

// Len returns the number of entries in the heap.
func (pq frontier[K]) Len() int { return len(pq) }

// Less orders entries by ascending cost. Ties extract in unspecified order.
func (pq frontier[K]) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two entries.
func (pq frontier[K]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends x; called by heap.Push, x must be a *searchNode.
func (pq *frontier[K]) Push(x interface{}) { *pq = append(*pq, x.(*searchNode[K])) }

// Pop removes and returns the last entry; called by heap.Pop.
func (pq *frontier[K]) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
