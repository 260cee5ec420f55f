// Package builder: complete topology K_n.

package builder

import (
	"fmt"

	"github.com/ouroboroslib/ouroboros/core"
)

// Complete returns a Constructor emitting the complete graph K_n: one edge
// per unordered pair, oriented low index → high index, emitted in
// lexicographic (i, j) order with payload on every edge. Requires n ≥ 2.
//
// On a directed graph this yields the transitive tournament orientation;
// add the reverse pairs yourself if you need a complete digraph.
//
// Complexity: O(n²).
func Complete[N comparable, P comparable](n int, payload P) Constructor[N, P] {
	return func(g *core.Graph[N, P], cfg builderConfig[N]) error {
		if n < 2 {
			return fmt.Errorf("Complete(%d): %w", n, ErrTooFewNodes)
		}
		ids, err := mintNodes(g, cfg, "Complete", n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = g.AddEdge(ids[i], ids[j], payload); err != nil {
					return fmt.Errorf("Complete: AddEdge(%d,%d): %w", i, j, err)
				}
			}
		}

		return nil
	}
}
