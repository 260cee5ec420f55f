// Package core_test contains shared fixtures for core.Graph tests.
//
// Policy:
//   - Named constants instead of magic literals in test bodies.
//   - Fixtures build the smallest graph that exercises the contract.

package core_test

import (
	"sort"

	"github.com/ouroboroslib/ouroboros/core"
)

// Common node IDs used across core tests.
const (
	NodeA = "A"
	NodeB = "B"
	NodeC = "C"
	NodeD = "D"

	NodeX = "X"
	NodeY = "Y"
)

// Common payloads used across core tests.
const (
	Payload0 = 0
	Payload1 = 1
	Payload2 = 2
	Payload5 = 5
)

// newUndirected returns an empty undirected string/int graph.
func newUndirected() *core.Graph[string, int] {
	return core.NewGraph[string, int]()
}

// newDirected returns an empty directed string/int graph.
func newDirected() *core.Graph[string, int] {
	return core.NewGraph[string, int](core.WithDirected(true))
}

// addNodes registers ids in order, panicking on error; for fixtures only.
func addNodes(g *core.Graph[string, int], ids ...string) {
	for _, id := range ids {
		if err := g.AddNode(id); err != nil {
			panic(err)
		}
	}
}

// sorted returns a sorted copy for order-independent assertions.
func sorted(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)

	return out
}

// triples converts edges into a comparable set for assertions.
func triples(edges []core.Edge[string, int]) map[core.Edge[string, int]]struct{} {
	set := make(map[core.Edge[string, int]]struct{}, len(edges))
	for _, e := range edges {
		set[e] = struct{}{}
	}

	return set
}
