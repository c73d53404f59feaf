// Package hashmap defines the sentinel errors, tuning constants, and
// functional options shared by the Map implementation.
package hashmap

import "errors"

// Sentinel errors returned by Map operations.
var (
	// ErrNilKey indicates that Put received a nil key (nil pointer,
	// nil interface, nil chan, or nil func). Nil keys are never stored.
	ErrNilKey = errors.New("hashmap: key is nil")

	// ErrDuplicateKey indicates that Put received a key that already maps
	// to a value. The prior mapping is left unchanged.
	ErrDuplicateKey = errors.New("hashmap: key already present")

	// ErrKeyNotFound indicates that Get or Remove referenced a key that is
	// not stored in the map (including nil keys, which are never stored).
	ErrKeyNotFound = errors.New("hashmap: key not found")

	// ErrBadCapacity indicates that WithCapacity was given a value < 1.
	// A zero-capacity table cannot index any bucket.
	ErrBadCapacity = errors.New("hashmap: capacity must be at least 1")
)

const (
	// DefaultCapacity is the bucket count used by New when WithCapacity
	// is not supplied.
	DefaultCapacity = 64

	// LoadFactorLimit is the size/capacity ratio at which the bucket array
	// doubles. Insertions keep the observed load factor strictly below
	// this limit.
	LoadFactorLimit = 0.80
)

// options collects construction-time configuration for a Map.
type options struct {
	capacity int // initial bucket count; must be ≥ 1
}

// Option is a functional option for configuring a Map at construction time.
type Option func(*options)

// WithCapacity sets the initial bucket count of the Map.
// Must be ≥ 1; smaller values cause a panic with ErrBadCapacity.
// Small capacities are useful in tests to force bucket collisions.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity < 1 {
			panic(ErrBadCapacity.Error())
		}
		o.capacity = capacity
	}
}

// defaultOptions returns the options New starts from before applying
// caller-supplied Option values.
func defaultOptions() options {
	return options{capacity: DefaultCapacity}
}
