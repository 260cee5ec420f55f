// Package builder: cycle topology C_n.

package builder

import (
	"fmt"

	"github.com/ouroboroslib/ouroboros/core"
)

// Cycle returns a Constructor emitting the cycle graph C_n: the path edges
// (i → i+1) followed by the closing edge (n-1 → 0), every edge carrying
// payload. Requires n ≥ 3 so the closing edge is neither a loop nor a
// duplicate of a path edge.
//
//	0───1
//	│   │
//	3───2
//
// Complexity: O(n).
func Cycle[N comparable, P comparable](n int, payload P) Constructor[N, P] {
	return func(g *core.Graph[N, P], cfg builderConfig[N]) error {
		if n < 3 {
			return fmt.Errorf("Cycle(%d): %w", n, ErrTooFewNodes)
		}
		ids, err := mintNodes(g, cfg, "Cycle", n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = g.AddEdge(ids[i], ids[i+1], payload); err != nil {
				return fmt.Errorf("Cycle: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}
		if err = g.AddEdge(ids[n-1], ids[0], payload); err != nil {
			return fmt.Errorf("Cycle: AddEdge(%d,0): %w", n-1, err)
		}

		return nil
	}
}
