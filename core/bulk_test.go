package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ouroboroslib/ouroboros/core"
)

func TestClear(t *testing.T) {
	require := require.New(t)

	g := newUndirected()
	addNodes(g, NodeA, NodeB)
	require.NoError(g.AddEdge(NodeA, NodeB, Payload1))

	g.Clear()
	require.Zero(g.Size())
	require.Zero(g.NumEdges())
	require.Empty(g.Nodes())
	require.Empty(g.Edges())
	require.False(g.Contains(NodeA))

	// The cleared graph is fully usable and keeps its orientation.
	require.False(g.Directed())
	require.NoError(g.AddNode(NodeA))
	require.Equal(1, g.Size())
}

func TestOverwriteGraphRoundTrip(t *testing.T) {
	require := require.New(t)

	nodes := []string{NodeA, NodeB, NodeC, NodeD}
	edges := []core.Edge[string, int]{
		{Start: NodeA, End: NodeB, Payload: Payload1},
		{Start: NodeB, End: NodeC, Payload: Payload2},
		{Start: NodeC, End: NodeD, Payload: Payload5},
	}

	g := newDirected()
	require.NoError(g.OverwriteGraph(nodes, edges))

	require.ElementsMatch(nodes, g.Nodes())
	require.Equal(triples(edges), triples(g.Edges()))
	require.Equal(len(edges), g.NumEdges())
}

func TestOverwriteGraphReplacesExistingState(t *testing.T) {
	require := require.New(t)

	g := newUndirected()
	addNodes(g, NodeX, NodeY)
	require.NoError(g.AddEdge(NodeX, NodeY, Payload5))

	require.NoError(g.OverwriteGraph(
		[]string{NodeA, NodeB},
		[]core.Edge[string, int]{{Start: NodeA, End: NodeB, Payload: Payload1}},
	))

	require.False(g.Contains(NodeX), "previous state must be wiped")
	require.ElementsMatch([]string{NodeA, NodeB}, g.Nodes())
	require.Equal(1, g.NumEdges())
}

func TestOverwriteGraphEmptyInputs(t *testing.T) {
	require := require.New(t)

	g := newUndirected()
	addNodes(g, NodeA)
	require.NoError(g.OverwriteGraph(nil, nil))
	require.Zero(g.Size())
	require.Empty(g.Edges())
}

// TestOverwriteGraphPartialFailure locks in the documented non-atomicity:
// a failing insertion leaves the graph in the partially rebuilt state, not
// the pre-call state.
func TestOverwriteGraphPartialFailure(t *testing.T) {
	require := require.New(t)

	g := newUndirected()
	addNodes(g, NodeX)

	// Duplicate node list: the second A fails exactly as a standalone
	// AddNode would.
	err := g.OverwriteGraph([]string{NodeA, NodeA}, nil)
	require.ErrorIs(err, core.ErrDuplicateNode)
	require.True(g.Contains(NodeA), "first insertion survives")
	require.False(g.Contains(NodeX), "Clear already happened")
	require.Equal(1, g.Size())

	// Edge referencing a missing node: nodes are in, the bad edge is not.
	err = g.OverwriteGraph(
		[]string{NodeA, NodeB},
		[]core.Edge[string, int]{
			{Start: NodeA, End: NodeB, Payload: Payload1},
			{Start: NodeA, End: NodeD, Payload: Payload2},
		},
	)
	require.ErrorIs(err, core.ErrNodeNotFound)
	require.Equal(2, g.Size())
	require.Equal(1, g.NumEdges(), "edges before the failure survive")
}

func TestCloneIndependence(t *testing.T) {
	require := require.New(t)

	g := newDirected()
	addNodes(g, NodeA, NodeB, NodeC)
	require.NoError(g.AddEdge(NodeA, NodeB, Payload1))
	require.NoError(g.AddEdge(NodeB, NodeC, Payload2))

	c := g.Clone()
	require.True(c.Directed())
	require.ElementsMatch(g.Nodes(), c.Nodes())
	require.Equal(triples(g.Edges()), triples(c.Edges()))
	require.Equal(g.NumEdges(), c.NumEdges())

	// Mutating the clone leaves the original untouched, and vice versa.
	require.NoError(c.DeleteNode(NodeA))
	require.True(g.Contains(NodeA))
	require.Len(g.Edges(), 2)

	require.NoError(g.AddEdge(NodeC, NodeA, Payload5))
	require.False(c.Contains(NodeA))
}

func TestCloneEmpty(t *testing.T) {
	require := require.New(t)

	g := newUndirected()
	addNodes(g, NodeA, NodeB)
	require.NoError(g.AddEdge(NodeA, NodeB, Payload1))

	c := g.CloneEmpty()
	require.ElementsMatch(g.Nodes(), c.Nodes())
	require.Empty(c.Edges())
	require.Zero(c.NumEdges())

	// The copied nodes are immediately connectable.
	require.NoError(c.AddEdge(NodeB, NodeA, Payload2))
}
