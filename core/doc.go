// Package core provides a generic, in-memory graph abstract data type
// with a minimal, strict API surface.
//
// The Graph G = (V,E) is parameterized over two comparable types:
//
//   - N, the node identity (any type usable as a map key)
//   - P, the opaque edge payload (zero value = "no payload")
//
// Internally the graph keeps two synchronized indices plus one arena:
//
//	outgoing[x][y] → handle    // edges leaving x
//	incoming[y][x] → handle    // edges arriving at y
//	edges[handle]  → record    // the one record per logical edge
//
// A directed edge occupies two index slots; an undirected edge occupies
// four, all referencing the same handle. Enumeration (Edges) walks the
// arena, so a logical edge is always reported exactly once.
//
// Why use core.Graph?
//
//   - Strict contracts — every precondition violation returns a sentinel
//     error (errors.Is-friendly); no silent no-ops, no partial mutation
//     outside the documented OverwriteGraph exception.
//   - O(degree) mutation — adding or deleting a node/edge touches only the
//     slots of the nodes involved, never the whole graph.
//   - Generic identity — nodes and payloads are caller-supplied comparable
//     types; the graph never interprets their contents.
//
// Core methods:
//
//	// Node lifecycle
//	AddNode(x N) error                       // O(1)
//	DeleteNode(x N) error                    // O(deg(x))
//	Contains(x N) bool                       // O(1)
//
//	// Edge lifecycle
//	AddEdge(x, y N, payload P) error         // O(1)
//	DeleteEdge(x, y N) error                 // O(1)
//	ContainsEdge(x, y N) (bool, error)       // O(1)
//
//	// Query
//	Nodes() []N                              // O(V)
//	Edges() []Edge[N, P]                     // O(E)
//	AdjacentNodes(x N) ([]N, error)          // O(deg(x))
//	IsAdjacent(x, y N) (bool, error)         // O(1)
//	InDegree / OutDegree / Degree(x N)       // O(1)
//
//	// Counts
//	Size() int                               // O(1)
//	NumEdges() int                           // O(1), see method doc for the counting protocol
//
//	// Maintenance
//	Clear()                                  // O(1)
//	OverwriteGraph(nodes, edges) error       // O(V+E), non-atomic by contract
//	CloneEmpty() / Clone()                   // O(V) / O(V+E)
//
// Errors:
//
//	ErrNodeNotFound  – missing node
//	ErrDuplicateNode – node already registered
//	ErrDuplicateEdge – ordered pair already connected
//	ErrEdgeNotFound  – missing edge
//	ErrInvalidKey    – value not usable as a map key (interface instantiations only)
//
// The structure assumes exclusive access. Its internal lock keeps single
// operations race-free, but sequences of operations are not transactional.
package core
