// Package builder: thin public entry-point.
//
// All public factories are declared in impl_*.go; Build is the one
// orchestrator, ensuring consistent option resolution and error wrapping.

package builder

import (
	"fmt"

	"github.com/ouroboroslib/ouroboros/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builder configuration. Constructors must validate parameters early,
// return sentinel errors (no panics), and emit nodes and edges in a
// stable, documented order.
type Constructor[N comparable, P comparable] func(g *core.Graph[N, P], cfg builderConfig[N]) error

// Build creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "Build: %w" and returned
// immediately; no partial cleanup is attempted by design.
//
// Complexity: O(len(bopts)) resolution plus the cost of each constructor.
func Build[N comparable, P comparable](gopts []core.GraphOption, bopts []Option[N], cons ...Constructor[N, P]) (*core.Graph[N, P], error) {
	g := core.NewGraph[N, P](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: constructor at index %d: %w", i, ErrNilConstructor)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}

	return g, nil
}
