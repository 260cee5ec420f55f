// Package builder: path topology P_n.

package builder

import (
	"fmt"

	"github.com/ouroboroslib/ouroboros/core"
)

// Path returns a Constructor emitting the path graph P_n:
// nodes idFn(0)..idFn(n-1), edges (i → i+1) in ascending order, every edge
// carrying payload. Requires n ≥ 2.
//
//	0───1───2───...───n-1
//
// Complexity: O(n).
func Path[N comparable, P comparable](n int, payload P) Constructor[N, P] {
	return func(g *core.Graph[N, P], cfg builderConfig[N]) error {
		if n < 2 {
			return fmt.Errorf("Path(%d): %w", n, ErrTooFewNodes)
		}
		ids, err := mintNodes(g, cfg, "Path", n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = g.AddEdge(ids[i], ids[i+1], payload); err != nil {
				return fmt.Errorf("Path: AddEdge(%d,%d): %w", i, i+1, err)
			}
		}

		return nil
	}
}
