// Package core: node lifecycle and node-level queries.
//
// All mutations acquire the write lock; queries acquire the read lock.
// Node membership is defined by the outgoing index; the incoming index
// mirrors the same key set at all times.

package core

// AddNode registers x as a node with empty adjacency in both indices.
// Returns ErrInvalidKey if x cannot be used as a map key,
// ErrDuplicateNode if x is already registered.
// Complexity: O(1) amortized.
func (g *Graph[N, P]) AddNode(x N) error {
	if !usableKey(x) {
		return ErrInvalidKey
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.outgoing[x]; exists {
		return ErrDuplicateNode
	}
	g.outgoing[x] = make(map[N]edgeID)
	g.incoming[x] = make(map[N]edgeID)

	return nil
}

// DeleteNode unregisters x, removing every edge incident to it from both
// indices and from the arena. Returns ErrNodeNotFound if x is unregistered.
//
// Note: the NumEdges counter is intentionally not adjusted here; see NumEdges.
// Complexity: O(deg(x)).
func (g *Graph[N, P]) DeleteNode(x N) error {
	if !usableKey(x) {
		return ErrNodeNotFound
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	out, ok := g.outgoing[x]
	if !ok {
		return ErrNodeNotFound
	}

	// Drop outgoing edges: each lives at incoming[y][x] too.
	for y, eid := range out {
		delete(g.incoming[y], x)
		delete(g.edges, eid)
	}
	delete(g.outgoing, x)

	// Drop incoming edges: each lives at outgoing[y][x] too. For an
	// undirected edge this pass visits the mirror slot left by the first
	// loop, completing the four-slot teardown; the arena delete is then
	// a no-op.
	for y, eid := range g.incoming[x] {
		delete(g.outgoing[y], x)
		delete(g.edges, eid)
	}
	delete(g.incoming, x)

	return nil
}

// Contains reports whether x is a registered node.
// Complexity: O(1)
func (g *Graph[N, P]) Contains(x N) bool {
	if !usableKey(x) {
		return false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()
	_, ok := g.outgoing[x]

	return ok
}

// Nodes returns a snapshot of all registered nodes.
// Order is unspecified: N is only comparable, so sorting is the caller's
// concern.
// Complexity: O(V)
func (g *Graph[N, P]) Nodes() []N {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]N, 0, len(g.outgoing))
	for x := range g.outgoing {
		out = append(out, x)
	}

	return out
}

// Size returns the number of registered nodes.
// Complexity: O(1)
func (g *Graph[N, P]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.outgoing)
}

// InDegree returns the number of direct edges arriving at x.
// Returns ErrNodeNotFound if x is unregistered.
// Complexity: O(1)
func (g *Graph[N, P]) InDegree(x N) (int, error) {
	if !usableKey(x) {
		return 0, ErrNodeNotFound
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	in, ok := g.incoming[x]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(in), nil
}

// OutDegree returns the number of direct edges leaving x.
// Returns ErrNodeNotFound if x is unregistered.
// Complexity: O(1)
func (g *Graph[N, P]) OutDegree(x N) (int, error) {
	if !usableKey(x) {
		return 0, ErrNodeNotFound
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.outgoing[x]
	if !ok {
		return 0, ErrNodeNotFound
	}

	return len(out), nil
}

// Degree returns the degree of x: in-degree plus out-degree for a directed
// graph, out-degree alone for an undirected one (where the two coincide by
// construction). Returns ErrNodeNotFound if x is unregistered.
// Complexity: O(1)
func (g *Graph[N, P]) Degree(x N) (int, error) {
	if !usableKey(x) {
		return 0, ErrNodeNotFound
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.outgoing[x]
	if !ok {
		return 0, ErrNodeNotFound
	}
	if g.directed {
		return len(g.incoming[x]) + len(out), nil
	}

	return len(out), nil
}
