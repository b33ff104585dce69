// Package network defines the Node and Constraint value types and the
// functional options accepted by New.
package network

import (
	"github.com/rs/zerolog"

	"github.com/katalvlaran/allen/relset"
)

// defaultStride is the initial matrix side capacity when no
// WithCapacity option is given; growth doubles from here.
const defaultStride = 4

// Node is a registered interval: the caller-chosen identifier plus the
// dense internal index assigned at registration. Indices run 0..n-1 in
// registration order and are never reused.
type Node[ID comparable] struct {
	// ID is the caller-chosen identifier, opaque to the network.
	ID ID

	// Index is the dense internal index of this node.
	Index int
}

// Constraint asserts that the relation from interval From to interval
// To lies within Rels. Constraints are recorded exactly as asserted;
// the matrix holds the tightened form.
type Constraint[ID comparable] struct {
	// From is the source interval identifier.
	From ID

	// To is the destination interval identifier.
	To ID

	// Rels is the asserted set of admissible relations From→To.
	Rels relset.Set
}

// TightenFunc observes a strict tightening of one matrix entry during
// propagation: entry (i,j) shrank from old to tightened. Indices are
// internal node indices. The mirror entry (j,i) is updated to the
// inverse in the same step but reported only once, for (i,j).
type TightenFunc func(i, j int, old, tightened relset.Set)

// options holds the tunable parameters applied by New.
type options struct {
	// capacity pre-reserves the registry and matrix for this many nodes.
	capacity int

	// logger receives debug-level mutation and propagation events.
	logger zerolog.Logger

	// onTighten, if non-nil, is invoked on every strict tightening.
	onTighten TightenFunc
}

// Option configures a Network at construction time.
type Option func(*options)

// defaultOptions returns the configuration used when no Option is given:
// minimal initial capacity, a no-op logger, no tightening hook.
func defaultOptions() options {
	return options{
		capacity:  defaultStride,
		logger:    zerolog.Nop(),
		onTighten: nil,
	}
}

// WithCapacity pre-reserves internal storage for n nodes, avoiding
// matrix reallocation while the network stays at or below that size.
// Values below the default minimum are ignored.
func WithCapacity(n int) Option {
	return func(o *options) {
		if n > o.capacity {
			o.capacity = n
		}
	}
}

// WithLogger routes debug-level events (node registration, constraint
// assertion and removal, propagation verdicts) to l. The default is
// zerolog.Nop(), keeping the core free of I/O.
func WithLogger(l zerolog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithOnTighten registers a hook observing every strict matrix
// tightening during propagation. Useful for tracing and tests; the
// hook must not mutate the network.
func WithOnTighten(fn TightenFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.onTighten = fn
		}
	}
}
