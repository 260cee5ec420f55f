// Package builder assembles standard graph topologies on top of
// core.Graph, deterministically.
//
// Design contract:
//
//   - One orchestrator: Build(gopts, bopts, cons...). Creates the graph,
//     resolves the builder configuration, applies constructors in order.
//   - Factories (Path, Cycle, Complete, Star) return Constructor closures;
//     same inputs, options, and constructor order ⇒ identical graphs.
//   - Constructors validate parameters early and return sentinel errors;
//     they never panic.
//
// Node identities are produced by an ID function (index → N) supplied via
// WithIDFn. For string graphs, DecimalIDs yields "0", "1", "2", ...
//
// Example:
//
//	g, err := builder.Build(
//		nil,
//		[]builder.Option[string]{builder.WithIDFn(builder.DecimalIDs)},
//		builder.Cycle[string, int](4, 0),
//	)
//
// Errors:
//
//	ErrTooFewNodes    – size parameter below the topology's minimum
//	ErrNilIDFn        – no ID function resolved
//	ErrNilConstructor – nil Constructor passed to Build
package builder
