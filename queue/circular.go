// File: circular.go
// Role: fixed-capacity ring queue.
// Full and empty are told apart by count, never by comparing head and tail.

package queue

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlinear/core"
)

const panicNegativeCapacity = "queue: NewCircular: capacity must be ≥ 0"

// Circular is a FIFO ring of fixed capacity.
type Circular[T any] struct {
	buf   []T
	head  int // slot of the front element
	count int
}

// NewCircular returns an empty ring holding at most n elements.
// Panics if n < 0. A ring of capacity 0 rejects every Enqueue.
func NewCircular[T any](n int) *Circular[T] {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return &Circular[T]{buf: make([]T, n)}
}

// Enqueue stores value at the tail slot (head+count) mod Cap().
// Returns ErrOverflow when the ring is full. Complexity: O(1).
func (q *Circular[T]) Enqueue(value T) error {
	if q.count == len(q.buf) {
		return fmt.Errorf("queue: Enqueue: %w: capacity %d", ErrOverflow, len(q.buf))
	}
	q.buf[(q.head+q.count)%len(q.buf)] = value
	q.count++

	return nil
}

// Dequeue removes and returns the front element. Complexity: O(1).
func (q *Circular[T]) Dequeue() (T, error) {
	var zero T
	if q.count == 0 {
		return zero, fmt.Errorf("queue: Dequeue: %w", ErrUnderflow)
	}
	x := q.buf[q.head]
	q.buf[q.head] = zero
	q.head = (q.head + 1) % len(q.buf)
	q.count--

	return x, nil
}

// Front returns the element Dequeue would return.
func (q *Circular[T]) Front() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, fmt.Errorf("queue: Front: %w", ErrUnderflow)
	}

	return q.buf[q.head], nil
}

// Back returns the most recently enqueued element.
func (q *Circular[T]) Back() (T, error) {
	if q.count == 0 {
		var zero T
		return zero, fmt.Errorf("queue: Back: %w", ErrUnderflow)
	}

	return q.buf[(q.head+q.count-1)%len(q.buf)], nil
}

func (q *Circular[T]) Len() int    { return q.count }
func (q *Circular[T]) Cap() int    { return len(q.buf) }
func (q *Circular[T]) Empty() bool { return q.count == 0 }
func (q *Circular[T]) Full() bool  { return q.count == len(q.buf) }

// Values yields the live elements front to back, wrapping around the buffer.
func (q *Circular[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for k := 0; k < q.count; k++ {
			if !yield(q.buf[(q.head+k)%len(q.buf)]) {
				return
			}
		}
	}
}

// String renders the live elements front to back.
func (q *Circular[T]) String() string { return core.Render(q.Values()) }
