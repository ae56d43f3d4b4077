package queue

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlinear/core"
	"github.com/katalvlaran/lvlinear/list"
	"github.com/katalvlaran/lvlinear/vector"
)

// Sentinel errors re-exported from core.
var (
	ErrUnderflow = core.ErrUnderflow
	ErrOverflow  = core.ErrOverflow
)

// Queue is a FIFO queue over a vector.Vector. The zero value is an empty
// queue using the default capacity policy.
type Queue[T any] struct {
	v vector.Vector[T]
}

// New returns an empty queue; opts configure the underlying vector.
func New[T any](opts ...vector.Option) *Queue[T] {
	return &Queue[T]{v: *vector.New[T](opts...)}
}

// Enqueue appends value at the back. Complexity: amortized O(1).
func (q *Queue[T]) Enqueue(value T) { q.v.PushBack(value) }

// Dequeue removes and returns the front element. Complexity: O(n).
func (q *Queue[T]) Dequeue() (T, error) {
	x, err := q.v.PopFront()
	if err != nil {
		return x, fmt.Errorf("queue: Dequeue: %w", ErrUnderflow)
	}

	return x, nil
}

// Front returns the element Dequeue would return.
func (q *Queue[T]) Front() (T, error) {
	x, err := q.v.Front()
	if err != nil {
		return x, fmt.Errorf("queue: Front: %w", ErrUnderflow)
	}

	return x, nil
}

// Back returns the most recently enqueued element.
func (q *Queue[T]) Back() (T, error) {
	x, err := q.v.Back()
	if err != nil {
		return x, fmt.Errorf("queue: Back: %w", ErrUnderflow)
	}

	return x, nil
}

// Len returns the number of elements.
func (q *Queue[T]) Len() int { return q.v.Len() }

// Empty reports whether the queue holds no element.
func (q *Queue[T]) Empty() bool { return q.v.Empty() }

// Stats exposes the element-movement counters of the underlying vector.
func (q *Queue[T]) Stats() vector.Stats { return q.v.Stats() }

// Values yields the elements front to back.
func (q *Queue[T]) Values() iter.Seq[T] { return q.v.Values() }

// String renders the elements front to back.
func (q *Queue[T]) String() string { return q.v.String() }

// Linked is a FIFO queue over a singly-linked list: enqueue at the cached
// tail, dequeue at the head.
type Linked[T any] struct {
	l *list.Singly[T]
}

// NewLinked returns an empty list-backed queue.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{l: list.NewSingly[T]()}
}

// Enqueue appends value at the back. Complexity: O(1).
func (q *Linked[T]) Enqueue(value T) { q.l.PushBack(value) }

// Dequeue removes and returns the front element. Complexity: O(1).
func (q *Linked[T]) Dequeue() (T, error) {
	x, err := q.l.PopFront()
	if err != nil {
		return x, fmt.Errorf("queue: Dequeue: %w", ErrUnderflow)
	}

	return x, nil
}

// Front returns the element Dequeue would return.
func (q *Linked[T]) Front() (T, error) {
	x, err := q.l.Front()
	if err != nil {
		return x, fmt.Errorf("queue: Front: %w", ErrUnderflow)
	}

	return x, nil
}

// Back returns the most recently enqueued element.
func (q *Linked[T]) Back() (T, error) {
	x, err := q.l.Back()
	if err != nil {
		return x, fmt.Errorf("queue: Back: %w", ErrUnderflow)
	}

	return x, nil
}

// Len returns the number of elements.
func (q *Linked[T]) Len() int { return q.l.Len() }

// Empty reports whether the queue holds no element.
func (q *Linked[T]) Empty() bool { return q.l.Empty() }

// Values yields the elements front to back.
func (q *Linked[T]) Values() iter.Seq[T] { return q.l.Values() }

// String renders the elements front to back.
func (q *Linked[T]) String() string { return q.l.String() }
