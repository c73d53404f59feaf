package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathfind/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph[string]
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph[string]()
}

// insertNodes is a helper to populate labels, failing the test on error.
func (s *GraphSuite) insertNodes(labels ...string) {
	for _, l := range labels {
		require.NoError(s.T(), s.g.InsertNode(l))
	}
}

func (s *GraphSuite) TestInsertAndContainsNode() {
	require := require.New(s.T())

	require.False(s.g.ContainsNode("A"), "empty graph should not contain A")
	require.NoError(s.g.InsertNode("A"))
	require.True(s.g.ContainsNode("A"))
	require.Equal(1, s.g.NodeCount())
}

func (s *GraphSuite) TestInsertDuplicateNodeFails() {
	require := require.New(s.T())

	s.insertNodes("A")
	require.ErrorIs(s.g.InsertNode("A"), core.ErrDuplicateNode)
	require.Equal(1, s.g.NodeCount(), "duplicate insertion must not corrupt state")
}

func (s *GraphSuite) TestInsertNilLabelFails() {
	require := require.New(s.T())

	pg := core.NewGraph[*string]()
	require.ErrorIs(pg.InsertNode(nil), core.ErrNilLabel)
	require.Equal(0, pg.NodeCount())
}

func (s *GraphSuite) TestRemoveNodeCascadesEdges() {
	require := require.New(s.T())

	s.insertNodes("A", "B", "C")
	require.NoError(s.g.InsertEdge("A", "B", 1))
	require.NoError(s.g.InsertEdge("B", "C", 2))
	require.NoError(s.g.InsertEdge("C", "B", 3))
	require.Equal(3, s.g.EdgeCount())

	// Removing B drops A→B, B→C, and C→B.
	require.NoError(s.g.RemoveNode("B"))
	require.False(s.g.ContainsNode("B"))
	require.Equal(0, s.g.EdgeCount())
	require.False(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("C", "B"))

	// The untouched nodes survive with empty adjacency.
	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.Empty(out)
	in, err := s.g.IncomingEdges("C")
	require.NoError(err)
	require.Empty(in)
}

func (s *GraphSuite) TestRemoveNodeMissingFails() {
	require := require.New(s.T())

	require.ErrorIs(s.g.RemoveNode("ghost"), core.ErrNodeNotFound)
}

func (s *GraphSuite) TestInsertEdgeRequiresEndpoints() {
	require := require.New(s.T())

	s.insertNodes("A")

	err := s.g.InsertEdge("A", "missing", 1)
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.ErrorContains(err, "target")

	err = s.g.InsertEdge("missing", "A", 1)
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.ErrorContains(err, "source")

	require.Equal(0, s.g.EdgeCount(), "failed insertion must not mutate the graph")
}

func (s *GraphSuite) TestInsertEdgeOverwritesWeight() {
	require := require.New(s.T())

	s.insertNodes("A", "B")
	require.NoError(s.g.InsertEdge("A", "B", 4))
	require.NoError(s.g.InsertEdge("A", "B", 9))

	w, err := s.g.EdgeWeight("A", "B")
	require.NoError(err)
	require.Equal(9.0, w)
	require.Equal(1, s.g.EdgeCount(), "overwrite must not add a second edge")
}

func (s *GraphSuite) TestEdgesAreDirected() {
	require := require.New(s.T())

	s.insertNodes("A", "B")
	require.NoError(s.g.InsertEdge("A", "B", 4))

	require.True(s.g.HasEdge("A", "B"))
	require.False(s.g.HasEdge("B", "A"), "no mirror edge in a directed graph")
	_, err := s.g.EdgeWeight("B", "A")
	require.ErrorIs(err, core.ErrEdgeNotFound)
}

func (s *GraphSuite) TestRemoveEdge() {
	require := require.New(s.T())

	s.insertNodes("A", "B")
	require.NoError(s.g.InsertEdge("A", "B", 4))

	require.NoError(s.g.RemoveEdge("A", "B"))
	require.False(s.g.HasEdge("A", "B"))
	require.Equal(0, s.g.EdgeCount())

	// A second removal fails, as does removal between missing endpoints.
	require.ErrorIs(s.g.RemoveEdge("A", "B"), core.ErrEdgeNotFound)
	require.ErrorIs(s.g.RemoveEdge("A", "ghost"), core.ErrNodeNotFound)
}

func (s *GraphSuite) TestAdjacencyLists() {
	require := require.New(s.T())

	s.insertNodes("A", "B", "C")
	require.NoError(s.g.InsertEdge("A", "B", 1))
	require.NoError(s.g.InsertEdge("A", "C", 2))
	require.NoError(s.g.InsertEdge("C", "A", 3))

	out, err := s.g.OutgoingEdges("A")
	require.NoError(err)
	require.Equal([]core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "A", To: "C", Weight: 2},
	}, out, "outgoing edges keep insertion order")

	in, err := s.g.IncomingEdges("A")
	require.NoError(err)
	require.Equal([]core.Edge[string]{{From: "C", To: "A", Weight: 3}}, in)

	_, err = s.g.OutgoingEdges("ghost")
	require.ErrorIs(err, core.ErrNodeNotFound)
}

func (s *GraphSuite) TestNodesAndEdgesSnapshots() {
	require := require.New(s.T())

	s.insertNodes("A", "B", "C")
	require.NoError(s.g.InsertEdge("A", "B", 1))
	require.NoError(s.g.InsertEdge("B", "C", 2))

	require.ElementsMatch([]string{"A", "B", "C"}, s.g.Nodes())
	require.ElementsMatch([]core.Edge[string]{
		{From: "A", To: "B", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	}, s.g.Edges())
}

func (s *GraphSuite) TestSelfLoop() {
	require := require.New(s.T())

	s.insertNodes("X")
	require.NoError(s.g.InsertEdge("X", "X", 5))
	require.Equal(1, s.g.EdgeCount())
	require.True(s.g.HasEdge("X", "X"))

	// Cascading removal counts the loop exactly once.
	require.NoError(s.g.RemoveNode("X"))
	require.Equal(0, s.g.EdgeCount())
	require.Equal(0, s.g.NodeCount())
}

func (s *GraphSuite) TestNegativeWeightIsStorable() {
	require := require.New(s.T())

	// Storage does not forbid negative weights; the dijkstra package
	// enforces non-negativity as its own precondition.
	s.insertNodes("A", "B")
	require.NoError(s.g.InsertEdge("A", "B", -2))
	w, err := s.g.EdgeWeight("A", "B")
	require.NoError(err)
	require.Equal(-2.0, w)
}

func (s *GraphSuite) TestWithIndexCapacityPanicsOnZero() {
	require := require.New(s.T())

	require.Panics(func() { core.NewGraph[string](core.WithIndexCapacity(0)) })
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
