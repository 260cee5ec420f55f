// Package core: whole-graph operations (reset, rebuild, clone).

package core

import "fmt"

// Clear resets the graph to the empty state: no nodes, no edges, counters
// zeroed, handle generator rewound. Directedness is preserved.
// Complexity: O(1) (old maps are released to the garbage collector).
func (g *Graph[N, P]) Clear() {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.outgoing = make(map[N]map[N]edgeID)
	g.incoming = make(map[N]map[N]edgeID)
	g.edges = make(map[edgeID]edgeRecord[N, P])
	g.numEdges = 0
	g.nextEdge = 0
}

// OverwriteGraph replaces the whole graph: Clear, then AddNode for each
// listed node in order, then AddEdge for each listed triple in order.
//
// Each insertion may fail exactly as the standalone call would (duplicate
// node, missing endpoint, ...); there is no implicit deduplication. The
// sequence is explicitly non-atomic: on error the graph is left in the
// partially rebuilt state reached after Clear.
// Complexity: O(len(nodes) + len(edges)).
func (g *Graph[N, P]) OverwriteGraph(nodes []N, edges []Edge[N, P]) error {
	g.Clear()

	for i, x := range nodes {
		if err := g.AddNode(x); err != nil {
			return fmt.Errorf("OverwriteGraph: node %d: %w", i, err)
		}
	}
	for i, e := range edges {
		if err := g.AddEdge(e.Start, e.End, e.Payload); err != nil {
			return fmt.Errorf("OverwriteGraph: edge %d: %w", i, err)
		}
	}

	return nil
}

// CloneEmpty returns a new Graph with the same directedness and node set,
// but no edges.
// Complexity: O(V)
func (g *Graph[N, P]) CloneEmpty() *Graph[N, P] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	clone := NewGraph[N, P](WithDirected(g.directed))
	for x := range g.outgoing {
		clone.outgoing[x] = make(map[N]edgeID)
		clone.incoming[x] = make(map[N]edgeID)
	}

	return clone
}

// Clone returns a deep copy: directedness, nodes, edges, adjacency, and
// counters. Records are values, so handles can be carried over verbatim;
// mutating the clone never touches the original.
// Complexity: O(V + E)
func (g *Graph[N, P]) Clone() *Graph[N, P] {
	clone := g.CloneEmpty()

	g.mu.RLock()
	defer g.mu.RUnlock()

	for eid, rec := range g.edges {
		clone.edges[eid] = rec
	}
	for x, m := range g.outgoing {
		for y, eid := range m {
			clone.outgoing[x][y] = eid
		}
	}
	for x, m := range g.incoming {
		for y, eid := range m {
			clone.incoming[x][y] = eid
		}
	}
	clone.numEdges = g.numEdges
	clone.nextEdge = g.nextEdge

	return clone
}
