// Package ouroboros is a small, generic, in-memory graph abstract data
// type for Go: directed or undirected graphs over arbitrary comparable
// node identities, with optional opaque edge payloads.
//
// What you get:
//
//	• Core primitives: register nodes, connect them, query adjacency,
//	  tear pieces down again; every precondition violation surfaces
//	  as a sentinel error instead of a silent no-op
//	• Dual adjacency indices: O(degree) outgoing and incoming lookups
//	• One record per logical edge: an undirected edge occupies four index
//	  slots but exists exactly once
//	• Bulk operations: Clear, OverwriteGraph, Clone
//	• Deterministic fixtures: the builder subpackage assembles standard
//	  topologies (path, cycle, complete, star) on top of the core
//
// Everything is organized under two subpackages:
//
//	core/    — the generic Graph engine and its mutation/query surface
//	builder/ — deterministic topology constructors over core.Graph
//
// Quick ASCII example:
//
//	A───B
//	│
//	C
//
//	g := core.NewGraph[string, int]()
//	_ = g.AddNode("A")
//	_ = g.AddNode("B")
//	_ = g.AddNode("C")
//	_ = g.AddEdge("A", "B", 0)
//	_ = g.AddEdge("A", "C", 0)
//	ok, _ := g.ContainsEdge("B", "A") // true: undirected edges mirror
//
// Pure Go, no cgo, no hidden dependencies beyond test assertions.
package ouroboros
