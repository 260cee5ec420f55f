// Package core defines the generic Graph type and provides primitives
// for building, querying, and rebuilding in-memory graphs.
//
// This file declares the Graph and Edge types, the edge arena plumbing,
// GraphOption, sentinel errors, and the NewGraph constructor.
//
// Errors:
//
//	ErrNodeNotFound  - operation referenced an unregistered node.
//	ErrDuplicateNode - node is already registered.
//	ErrDuplicateEdge - a direct edge between the endpoints already exists.
//	ErrEdgeNotFound  - requested edge does not exist.
//	ErrInvalidKey    - node or payload value cannot be used as a map key.
package core

import (
	"errors"
	"reflect"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrDuplicateNode indicates AddNode was called with an already registered node.
	ErrDuplicateNode = errors.New("core: node already exists")

	// ErrDuplicateEdge indicates AddEdge was called for an already connected pair.
	ErrDuplicateEdge = errors.New("core: edge already exists")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrInvalidKey indicates a node or payload value is not usable as a map key.
	// Reachable only when the graph is instantiated with an interface type whose
	// dynamic value is not comparable; concrete key types rule this out at compile time.
	ErrInvalidKey = errors.New("core: value is not usable as a map key")
)

// Edge is the caller-visible value of one logical edge: a connection from
// Start to End carrying an opaque Payload. The zero value of P plays the
// role of "no payload".
//
// Edges() returns one Edge per logical edge using its stored orientation;
// an undirected edge yields a single triple, never its mirror.
type Edge[N comparable, P comparable] struct {
	// Start is the node the edge was inserted from.
	Start N

	// End is the node the edge was inserted to.
	End N

	// Payload is the opaque value attached at insertion time. Immutable:
	// there is no edge-update operation, only delete and re-add.
	Payload P
}

// edgeID is the opaque arena handle of one logical edge. Handle equality is
// the identity relation between index slots: an undirected edge stores the
// same edgeID in all four of its slots, a directed edge in exactly two.
type edgeID uint64

// edgeRecord is the single owned representation of a logical edge inside
// the arena. Index maps never hold records, only handles.
type edgeRecord[N comparable, P comparable] struct {
	start   N
	end     N
	payload P
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time flags; Graph copies it and never
// exposes it, so directedness cannot change after NewGraph.
type graphConfig struct {
	directed bool
}

// WithDirected sets the orientation semantics for the whole graph
// (true = directed, false = undirected). Default is undirected.
func WithDirected(directed bool) GraphOption {
	return func(c *graphConfig) { c.directed = directed }
}

// Graph is a generic in-memory graph over comparable node identities N and
// comparable edge payloads P.
//
// It owns two synchronized indices plus one edge arena:
//
//	outgoing[x][y] = handle of the edge reachable from x towards y
//	incoming[y][x] = handle of the edge arriving at y from x
//	edges[handle]  = the one record of that logical edge
//
// Invariants held after every exported operation:
//
//   - a node registered in outgoing is registered in incoming, and vice versa;
//   - a directed edge x→y occupies outgoing[x][y] and incoming[y][x], nowhere else;
//   - an undirected edge x~y occupies outgoing[x][y], incoming[y][x],
//     outgoing[y][x] and incoming[x][y], all four slots sharing one handle;
//   - no node's adjacency references a deleted node;
//   - no two logical edges share the same ordered (start, end) pair.
//
// The structure assumes exclusive access; the internal mutex makes
// individual operations safe to interleave from multiple goroutines, but no
// richer concurrency contract is promised.
type Graph[N comparable, P comparable] struct {
	mu sync.RWMutex

	directed bool

	nextEdge edgeID // monotonic handle generator, reset by Clear
	numEdges int    // see NumEdges for the exact counting protocol

	outgoing map[N]map[N]edgeID
	incoming map[N]map[N]edgeID
	edges    map[edgeID]edgeRecord[N, P]
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is undirected.
// Complexity: O(1)
func NewGraph[N comparable, P comparable](opts ...GraphOption) *Graph[N, P] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[N, P]{
		directed: cfg.directed,
		outgoing: make(map[N]map[N]edgeID),
		incoming: make(map[N]map[N]edgeID),
		edges:    make(map[edgeID]edgeRecord[N, P]),
	}
}

// Directed reports whether edges are directed. Fixed at construction.
// Complexity: O(1)
func (g *Graph[N, P]) Directed() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.directed
}

// usableKey reports whether v can be inserted into a map without panicking.
// For concrete comparable types this is always true; for interface-typed
// instantiations it rejects dynamic values such as slices and maps.
func usableKey(v any) bool {
	rv := reflect.ValueOf(v)

	return !rv.IsValid() || rv.Comparable()
}
