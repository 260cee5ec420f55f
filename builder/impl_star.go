// Package builder: star topology S_n.

package builder

import (
	"fmt"

	"github.com/ouroboroslib/ouroboros/core"
)

// Star returns a Constructor emitting the star graph with the given number
// of leaves: center idFn(0), leaves idFn(1)..idFn(leaves), edges
// (center → leaf) in ascending leaf order with payload on every edge.
// Requires leaves ≥ 1.
//
//	    1
//	    │
//	4───0───2
//	    │
//	    3
//
// Complexity: O(leaves).
func Star[N comparable, P comparable](leaves int, payload P) Constructor[N, P] {
	return func(g *core.Graph[N, P], cfg builderConfig[N]) error {
		if leaves < 1 {
			return fmt.Errorf("Star(%d): %w", leaves, ErrTooFewNodes)
		}
		ids, err := mintNodes(g, cfg, "Star", leaves+1)
		if err != nil {
			return err
		}
		for i := 1; i <= leaves; i++ {
			if err = g.AddEdge(ids[0], ids[i], payload); err != nil {
				return fmt.Errorf("Star: AddEdge(0,%d): %w", i, err)
			}
		}

		return nil
	}
}
