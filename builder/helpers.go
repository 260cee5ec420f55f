// Package builder: shared constructor plumbing.

package builder

import (
	"fmt"

	"github.com/ouroboroslib/ouroboros/core"
)

// mintNodes registers n nodes minted by cfg.idFn in index order and returns
// their identities. op labels the calling constructor for error context.
func mintNodes[N comparable, P comparable](g *core.Graph[N, P], cfg builderConfig[N], op string, n int) ([]N, error) {
	if cfg.idFn == nil {
		return nil, fmt.Errorf("%s: %w", op, ErrNilIDFn)
	}
	ids := make([]N, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddNode(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddNode(%d): %w", op, i, err)
		}
	}

	return ids, nil
}
