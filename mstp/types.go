package mstp

import (
	"context"
	"errors"
)

// Sentinel errors returned by the DM-MSTP implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Compute.
	ErrNilGraph = errors.New("mstp: graph is nil")

	// ErrDisconnected indicates that selection was about to choose a
	// sentinel-weight ("no edge") entry: the remaining unmarked columns have
	// no genuine edges left. Disconnected inputs always end here; sparse
	// connected inputs can too, when row masking consumes their last usable
	// edges (complete graphs never do). Returned only under the default
	// masking policy; faithful masking emits the sentinel edge as data.
	ErrDisconnected = errors.New("mstp: graph is disconnected")

	// ErrCanceled indicates the run was stopped by the WithContext context.
	// The underlying context error is attached via %w.
	ErrCanceled = errors.New("mstp: run canceled")
)

// panicNilContext is the stable message for the WithContext programmer error.
const panicNilContext = "mstp: WithContext: nil context"

// Edge is one selected step of the spanning sequence, expressed in the
// caller's vertex identifiers. From is the selected row's vertex, To the
// selected column's. Order within the slice is selection order.
type Edge[K comparable] struct {
	From   K       // vertex of the selected row
	To     K       // vertex of the selected column
	Weight float64 // matrix weight at the moment of selection
}

// Options configures a DM-MSTP run. Use DefaultOptions as the baseline;
// public entry points accept ...Option and resolve them internally.
type Options struct {
	// Faithful restores the legacy masking behavior: the sentinel doubles as
	// "column consumed", so consumed columns re-enter selection as maximal
	// candidates and disconnected inputs produce infinite-weight edges
	// instead of ErrDisconnected. Off by default.
	Faithful bool

	// Ctx, when non-nil, is polled between outer-loop iterations — the only
	// natural suspension boundary, since each iteration is an indivisible
	// O(N²) step.
	Ctx context.Context
}

// Option mutates Options. Safe to apply repeatedly; last-writer-wins.
type Option func(*Options)

// WithFaithfulMasking preserves the historical sentinel-overload behavior
// (see package documentation). Intended for compatibility testing against
// recorded legacy outputs, not for production runs.
func WithFaithfulMasking() Option {
	return func(o *Options) { o.Faithful = true }
}

// WithContext attaches a context checked between iterations; an expired
// context aborts the run with ErrCanceled. Panics on a nil context
// (programmer error).
func WithContext(ctx context.Context) Option {
	if ctx == nil {
		panic(panicNilContext)
	}

	return func(o *Options) { o.Ctx = ctx }
}

// DefaultOptions returns the documented defaults: hardened masking, no
// cancellation context.
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Faithful: false,
		Ctx:      nil,
	}
}

// gatherOptions applies user setters on top of DefaultOptions.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
