package reduce

import "errors"

// MaxRewriteIterations bounds the rewrite loop. The bound is far above any
// reachable circuit size; hitting it indicates livelock, not scale.
const MaxRewriteIterations = 10_000

// Sentinel errors for reduction and conversion.
var (
	// ErrNotReducible indicates the graph is not series/parallel with respect
	// to the chosen terminals.
	ErrNotReducible = errors.New("reduce: not reducible by series/parallel")

	// ErrRewriteLimit indicates the rewrite loop hit MaxRewriteIterations.
	ErrRewriteLimit = errors.New("reduce: rewrite iteration limit reached")

	// ErrNilItem indicates a nil tree item was passed to a conversion.
	ErrNilItem = errors.New("reduce: nil tree item")
)
