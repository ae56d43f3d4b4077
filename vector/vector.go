package vector

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/core"
)

// Vector is a rank-indexed sequence over a buffer whose length is managed by
// a capacity.Policy.
//
// Invariants:
//   - len(buf) is the capacity; live elements occupy buf[0:size].
//   - Cap() ≥ Len() after every public call.
//   - slots buf[size:] hold the zero value, so removed elements are released.
//
// The zero value is an empty vector using capacity.Default().
type Vector[T any] struct {
	buf      []T
	size     int
	policy   capacity.Policy
	onResize func(ResizeEvent)
	stats    Stats
}

// New returns an empty Vector configured by opts.
// Complexity: O(Capacity) for the optional pre-allocation.
func New[T any](opts ...Option) *Vector[T] {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := &Vector[T]{
		policy:   o.Policy,
		onResize: o.OnResize,
	}
	if o.Capacity > 0 {
		v.buf = make([]T, o.Capacity)
	}

	return v
}

// From returns a Vector holding a copy of values, in order. The buffer is
// sized to max(len(values), Capacity option). The caller keeps ownership of
// values.
func From[T any](values []T, opts ...Option) *Vector[T] {
	v := New[T](opts...)
	if len(values) > len(v.buf) {
		v.buf = make([]T, len(values))
	}
	copy(v.buf, values)
	v.size = len(values)

	return v
}

// Len returns the number of live elements. Complexity: O(1).
func (v *Vector[T]) Len() int { return v.size }

// Cap returns the buffer length. Complexity: O(1).
func (v *Vector[T]) Cap() int { return len(v.buf) }

// Empty reports whether Len() == 0.
func (v *Vector[T]) Empty() bool { return v.size == 0 }

// Policy returns the capacity policy in effect.
func (v *Vector[T]) Policy() capacity.Policy {
	if v.policy == nil {
		v.policy = capacity.Default()
	}

	return v.policy
}

// Stats returns the movement counters accumulated so far.
func (v *Vector[T]) Stats() Stats { return v.stats }

// At returns the element at rank. Requires 0 ≤ rank < Len().
// Complexity: O(1).
func (v *Vector[T]) At(rank int) (T, error) {
	if err := core.CheckRank(rank, v.size); err != nil {
		var zero T
		return zero, fmt.Errorf("vector: At: %w", err)
	}

	return v.buf[rank], nil
}

// Set overwrites the element at rank. Requires 0 ≤ rank < Len().
// Complexity: O(1).
func (v *Vector[T]) Set(rank int, value T) error {
	if err := core.CheckRank(rank, v.size); err != nil {
		return fmt.Errorf("vector: Set: %w", err)
	}
	v.buf[rank] = value

	return nil
}

// Insert places value at rank, shifting ranks [rank, Len()) one slot right.
// Requires 0 ≤ rank ≤ Len(); otherwise ErrOutOfRange and nothing changes.
//
// Implementation:
//   - Stage 1: validate rank against [0, size].
//   - Stage 2: if the buffer is full, ask the policy for a Grow decision and
//     relocate every element into the new buffer.
//   - Stage 3: shift the tail right and write value.
//
// Complexity: O(Len()-rank) plus the relocation cost on growth.
func (v *Vector[T]) Insert(rank int, value T) error {
	if err := core.CheckRank(rank, v.size+1); err != nil {
		return fmt.Errorf("vector: Insert: %w", err)
	}
	v.ensure(v.size + 1)

	copy(v.buf[rank+1:v.size+1], v.buf[rank:v.size]) // shift right
	v.stats.Shifted += v.size - rank
	v.buf[rank] = value
	v.size++

	return nil
}

// Remove deletes and returns the element at rank, shifting ranks
// (rank, Len()) one slot left, then lets the policy shrink the buffer.
//
// Errors:
//   - ErrUnderflow   the vector is empty
//   - ErrOutOfRange  rank outside [0, Len())
//
// Complexity: O(Len()-rank) plus the relocation cost on shrink.
func (v *Vector[T]) Remove(rank int) (T, error) {
	var zero T
	if v.size == 0 {
		return zero, fmt.Errorf("vector: Remove: %w", ErrUnderflow)
	}
	if err := core.CheckRank(rank, v.size); err != nil {
		return zero, fmt.Errorf("vector: Remove: %w", err)
	}

	out := v.buf[rank]
	copy(v.buf[rank:v.size-1], v.buf[rank+1:v.size]) // shift left
	v.size--
	v.stats.Shifted += v.size - rank
	v.buf[v.size] = zero // release the vacated slot
	v.maybeShrink()

	return out, nil
}

// PushBack appends value. Amortized O(1) under a geometric policy.
func (v *Vector[T]) PushBack(value T) {
	_ = v.Insert(v.size, value) // rank == size is always valid
}

// PopBack removes and returns the last element.
// Returns ErrUnderflow on an empty vector.
func (v *Vector[T]) PopBack() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("vector: PopBack: %w", ErrUnderflow)
	}

	return v.Remove(v.size - 1)
}

// PushFront inserts value at rank 0. O(Len()): every element shifts.
func (v *Vector[T]) PushFront(value T) {
	_ = v.Insert(0, value)
}

// PopFront removes and returns the element at rank 0. O(Len()).
// Returns ErrUnderflow on an empty vector.
func (v *Vector[T]) PopFront() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("vector: PopFront: %w", ErrUnderflow)
	}

	return v.Remove(0)
}

// Front returns the element at rank 0 without removing it.
func (v *Vector[T]) Front() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("vector: Front: %w", ErrUnderflow)
	}

	return v.buf[0], nil
}

// Back returns the last element without removing it.
func (v *Vector[T]) Back() (T, error) {
	if v.size == 0 {
		var zero T
		return zero, fmt.Errorf("vector: Back: %w", ErrUnderflow)
	}

	return v.buf[v.size-1], nil
}

// IndexFunc returns the rank of the first element satisfying pred,
// or NotFound. Complexity: O(n).
func (v *Vector[T]) IndexFunc(pred func(T) bool) int {
	for i := 0; i < v.size; i++ {
		if pred(v.buf[i]) {
			return i
		}
	}

	return NotFound
}

// Find returns the rank of the first element equal to value, or NotFound
// (never a valid rank and never Len()). Complexity: O(n).
func Find[T comparable](v *Vector[T], value T) int {
	return v.IndexFunc(func(x T) bool { return x == value })
}

// Reserve grows the buffer to at least n slots without consulting the
// policy. It never shrinks.
func (v *Vector[T]) Reserve(n int) {
	if n > len(v.buf) {
		v.realloc(capacity.Grow, n)
	}
}

// Clear drops every element and releases the buffer. Stats are reset.
func (v *Vector[T]) Clear() {
	v.buf = nil
	v.size = 0
	v.stats = Stats{}
}

// Clone returns a deep copy: a new buffer of the same capacity holding the
// same elements (copied by value), the same policy and hook, fresh stats.
// Complexity: O(Cap()).
func (v *Vector[T]) Clone() *Vector[T] {
	c := &Vector[T]{
		size:     v.size,
		policy:   v.policy,
		onResize: v.onResize,
	}
	if v.buf != nil {
		c.buf = make([]T, len(v.buf))
		copy(c.buf, v.buf[:v.size])
	}

	return c
}

// Values yields the live elements from rank 0 upward.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// All yields (rank, element) pairs from rank 0 upward.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.size; i++ {
			if !yield(i, v.buf[i]) {
				return
			}
		}
	}
}

// Backward yields the live elements from the last rank down to 0.
func (v *Vector[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := v.size - 1; i >= 0; i-- {
			if !yield(v.buf[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the live elements.
func (v *Vector[T]) Slice() []T {
	out := make([]T, v.size)
	copy(out, v.buf[:v.size])

	return out
}

// String renders the live elements as "[a b c]".
func (v *Vector[T]) String() string {
	return core.Render(v.Values())
}

// ensure makes room for need elements, asking the policy for a Grow.
func (v *Vector[T]) ensure(need int) {
	if need <= len(v.buf) {
		return
	}
	d := v.Policy().Decide(len(v.buf), need)
	target := max(d.Capacity, need) // the container owns capacity ≥ size
	v.realloc(capacity.Grow, target)
}

// maybeShrink lets the policy reclaim slack after a removal.
func (v *Vector[T]) maybeShrink() {
	d := v.Policy().Decide(len(v.buf), v.size)
	if d.Action != capacity.Shrink || d.Capacity < v.size || d.Capacity >= len(v.buf) {
		return
	}
	v.realloc(capacity.Shrink, d.Capacity)
}

// realloc moves the live elements into a fresh buffer of length n.
func (v *Vector[T]) realloc(action capacity.Action, n int) {
	from := len(v.buf)
	nb := make([]T, n)
	copy(nb, v.buf[:v.size])
	v.buf = nb
	v.stats.Reallocations++
	v.stats.Relocated += v.size
	if v.onResize != nil {
		v.onResize(ResizeEvent{Action: action, From: from, To: n, Size: v.size})
	}
}
