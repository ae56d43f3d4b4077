// Package vector defines options, statistics, resize events and sentinel
// errors for the capacity-policy-driven dynamic array.
package vector

import (
	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/core"
)

// Sentinel errors re-exported from core so callers may match either name.
var (
	// ErrOutOfRange is returned by At, Set, Insert and Remove for a rank
	// outside the accepted interval.
	ErrOutOfRange = core.ErrOutOfRange

	// ErrUnderflow is returned by Remove, PopBack, PopFront, Front and Back
	// on an empty vector.
	ErrUnderflow = core.ErrUnderflow
)

// NotFound is returned by Find and IndexFunc when no element matches.
const NotFound = core.NotFound

// Panic messages for nonsensical option values (programmer error).
const (
	panicNilPolicy        = "vector: WithPolicy: policy must not be nil"
	panicNegativeCapacity = "vector: WithCapacity: capacity must be ≥ 0"
)

// ResizeEvent describes one buffer reallocation.
type ResizeEvent struct {
	Action capacity.Action // Grow or Shrink
	From   int             // capacity before
	To     int             // capacity after
	Size   int             // live elements relocated
}

// Stats counts the element movement a vector has performed since creation
// (or since the last Clear). They make the amortized cost of each capacity
// policy observable without a timer.
type Stats struct {
	// Reallocations is the number of buffer replacements (grow or shrink).
	Reallocations int

	// Relocated is the number of elements copied into a new buffer.
	Relocated int

	// Shifted is the number of elements moved one slot by Insert/Remove.
	Shifted int
}

// Option configures a Vector at construction time.
type Option func(*Options)

// Options holds the construction parameters of a Vector.
type Options struct {
	// Policy decides every grow and shrink. Defaults to capacity.Default().
	Policy capacity.Policy

	// Capacity pre-sizes the buffer. Default 0 (no allocation).
	Capacity int

	// OnResize, if non-nil, is called after every reallocation.
	OnResize func(ResizeEvent)
}

// DefaultOptions returns Options with the geometric default policy, an
// empty buffer and no resize hook.
func DefaultOptions() Options {
	return Options{
		Policy:   capacity.Default(),
		Capacity: 0,
		OnResize: nil,
	}
}

// WithPolicy sets the capacity policy. Panics if p is nil.
func WithPolicy(p capacity.Policy) Option {
	if p == nil {
		panic(panicNilPolicy)
	}

	return func(o *Options) {
		o.Policy = p
	}
}

// WithCapacity pre-sizes the buffer to n slots. Panics if n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return func(o *Options) {
		o.Capacity = n
	}
}

// WithOnResize installs fn as the reallocation hook.
func WithOnResize(fn func(ResizeEvent)) Option {
	return func(o *Options) {
		o.OnResize = fn
	}
}
