// Package builder: configuration and deterministic defaults.
//
// builderConfig is the single source of truth for all builder knobs; it is
// resolved once per Build call by applying options in order (later
// overrides earlier) and passed to constructors by value.

package builder

import "strconv"

// Option configures the builder before constructors run.
type Option[N comparable] func(*builderConfig[N])

// builderConfig aggregates the knobs used by constructors.
type builderConfig[N comparable] struct {
	// idFn mints the identity of the i-th node (deterministic).
	idFn func(int) N
}

// WithIDFn sets the node identity scheme: index → N.
func WithIDFn[N comparable](fn func(int) N) Option[N] {
	return func(c *builderConfig[N]) { c.idFn = fn }
}

// DecimalIDs is the canonical ID scheme for string graphs: "0", "1", ...
func DecimalIDs(i int) string { return strconv.Itoa(i) }

// newBuilderConfig applies all options in order.
// Complexity: O(len(opts)).
func newBuilderConfig[N comparable](opts ...Option[N]) builderConfig[N] {
	var cfg builderConfig[N]
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}
