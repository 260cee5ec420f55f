// Package core: edge lifecycle and adjacency queries.
//
// Every logical edge lives exactly once in the arena (g.edges); adjacency
// maps store only handles. Installing or removing an edge therefore means
// touching the arena once and the index slots two or four times, depending
// on directedness.

package core

// AddEdge creates one logical edge from x to y carrying payload and
// installs its handle into both indices (all four slots when undirected).
//
// Returns ErrNodeNotFound if x or y is unregistered,
// ErrDuplicateEdge if a direct edge x→y already exists,
// ErrInvalidKey if payload cannot be used as a map key.
// No partial mutation occurs on any error path.
// Complexity: O(1) amortized.
func (g *Graph[N, P]) AddEdge(x, y N, payload P) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Both endpoints must be registered. A value that cannot be a map
	//    key can never have been registered, so it fails the same way.
	if !usableKey(x) || !usableKey(y) {
		return ErrNodeNotFound
	}
	out, ok := g.outgoing[x]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok = g.outgoing[y]; !ok {
		return ErrNodeNotFound
	}

	// 2) No parallel edges. For undirected graphs the mirror slot makes
	//    this also reject y→x after x→y.
	if _, ok = out[y]; ok {
		return ErrDuplicateEdge
	}

	// 3) Payload must satisfy the map-key contract callers rely on when
	//    collecting Edge triples into sets.
	if !usableKey(payload) {
		return ErrInvalidKey
	}

	// 4) Allocate the one record in the arena.
	g.nextEdge++
	eid := g.nextEdge
	g.edges[eid] = edgeRecord[N, P]{start: x, end: y, payload: payload}

	// 5) Install the handle: two slots for directed, four for undirected
	//    (a self-loop's mirror slots coincide, so the writes are idempotent).
	out[y] = eid
	g.incoming[y][x] = eid
	if !g.directed {
		g.outgoing[y][x] = eid
		g.incoming[x][y] = eid
	}
	g.numEdges++

	return nil
}

// DeleteEdge removes the direct edge x→y from both indices and the arena
// (both orientations when undirected).
//
// Returns ErrNodeNotFound if x or y is unregistered,
// ErrEdgeNotFound if no direct edge x→y exists.
// Complexity: O(1)
func (g *Graph[N, P]) DeleteEdge(x, y N) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if !usableKey(x) || !usableKey(y) {
		return ErrNodeNotFound
	}
	out, ok := g.outgoing[x]
	if !ok {
		return ErrNodeNotFound
	}
	if _, ok = g.outgoing[y]; !ok {
		return ErrNodeNotFound
	}
	eid, ok := out[y]
	if !ok {
		return ErrEdgeNotFound
	}

	delete(out, y)
	delete(g.incoming[y], x)
	if !g.directed {
		delete(g.outgoing[y], x)
		delete(g.incoming[x], y)
	}
	delete(g.edges, eid)
	g.numEdges--

	return nil
}

// ContainsEdge reports whether a direct edge x→y exists.
// Returns ErrNodeNotFound if x is unregistered: asking about an
// unregistered node's adjacency is a contract violation, not a false.
// Complexity: O(1)
func (g *Graph[N, P]) ContainsEdge(x, y N) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.containsEdgeLocked(x, y)
}

// containsEdgeLocked is ContainsEdge without locking, for reuse by
// IsAdjacent. Callers must hold at least the read lock.
func (g *Graph[N, P]) containsEdgeLocked(x, y N) (bool, error) {
	if !usableKey(x) {
		return false, ErrNodeNotFound
	}
	out, ok := g.outgoing[x]
	if !ok {
		return false, ErrNodeNotFound
	}
	if !usableKey(y) {
		return false, nil
	}
	_, ok = out[y]

	return ok, nil
}

// IsAdjacent reports whether y is immediately reachable by a direct
// outgoing edge from x. Returns ErrNodeNotFound if x is unregistered.
// Complexity: O(1)
func (g *Graph[N, P]) IsAdjacent(x, y N) (bool, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.containsEdgeLocked(x, y)
}

// AdjacentNodes returns a snapshot of every node reachable from x by a
// direct outgoing edge. Returns ErrNodeNotFound if x is unregistered.
// Order is unspecified.
// Complexity: O(deg(x))
func (g *Graph[N, P]) AdjacentNodes(x N) ([]N, error) {
	if !usableKey(x) {
		return nil, ErrNodeNotFound
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out, ok := g.outgoing[x]
	if !ok {
		return nil, ErrNodeNotFound
	}
	nbrs := make([]N, 0, len(out))
	for y := range out {
		nbrs = append(nbrs, y)
	}

	return nbrs, nil
}

// Edges returns a snapshot of all logical edges, one triple per edge using
// its stored orientation. An undirected edge appears once despite occupying
// four index slots: the arena, not the indices, is the unit of enumeration.
// Order is unspecified.
// Complexity: O(E)
func (g *Graph[N, P]) Edges() []Edge[N, P] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge[N, P], 0, len(g.edges))
	for _, rec := range g.edges {
		out = append(out, Edge[N, P]{Start: rec.start, End: rec.end, Payload: rec.payload})
	}

	return out
}

// NumEdges returns the running edge counter: edges added via AddEdge minus
// edges removed via DeleteEdge. Edges removed implicitly by DeleteNode are
// deliberately not subtracted, so after node deletions the counter can
// exceed the true census; use len(Edges()) for an exact count.
// Complexity: O(1)
func (g *Graph[N, P]) NumEdges() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.numEdges
}
