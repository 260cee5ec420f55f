// Package builder: sentinel errors.
//
// Error policy (explicit and strict):
//   - Only package-level sentinels are exposed.
//   - Callers branch with errors.Is(err, ErrX); never compare strings.
//   - Sentinels are never wrapped with formatted strings at definition
//     site; implementations attach context via %w.

package builder

import "errors"

// ErrTooFewNodes indicates a size parameter (n, leaves) is smaller than the
// minimum the requested topology needs (Path: 2, Cycle: 3, Complete: 2,
// Star: 1 leaf).
var ErrTooFewNodes = errors.New("builder: too few nodes")

// ErrNilIDFn indicates that no ID function was resolved; every constructor
// needs WithIDFn to mint node identities.
var ErrNilIDFn = errors.New("builder: id function is required")

// ErrNilConstructor indicates a nil Constructor was passed to Build
// (programmer error surfaced as an error, not a panic).
var ErrNilConstructor = errors.New("builder: nil constructor")
