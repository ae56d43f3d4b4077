package stack

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlinear/core"
	"github.com/katalvlaran/lvlinear/list"
	"github.com/katalvlaran/lvlinear/vector"
)

// ErrUnderflow is returned by Pop and Top on an empty stack.
var ErrUnderflow = core.ErrUnderflow

// Stack is a LIFO stack over a vector.Vector. The zero value is an empty
// stack using the default capacity policy.
type Stack[T any] struct {
	v vector.Vector[T]
}

// New returns an empty stack. opts configure the underlying vector
// (capacity policy, initial capacity, resize hook).
func New[T any](opts ...vector.Option) *Stack[T] {
	return &Stack[T]{v: *vector.New[T](opts...)}
}

// Push places value on top. Complexity: amortized O(1) under a geometric policy.
func (s *Stack[T]) Push(value T) { s.v.PushBack(value) }

// Pop removes and returns the top element.
func (s *Stack[T]) Pop() (T, error) {
	x, err := s.v.PopBack()
	if err != nil {
		return x, fmt.Errorf("stack: Pop: %w", ErrUnderflow)
	}

	return x, nil
}

// Top returns the top element without removing it.
func (s *Stack[T]) Top() (T, error) {
	x, err := s.v.Back()
	if err != nil {
		return x, fmt.Errorf("stack: Top: %w", ErrUnderflow)
	}

	return x, nil
}

// Len returns the number of elements.
func (s *Stack[T]) Len() int { return s.v.Len() }

// Empty reports whether the stack holds no element.
func (s *Stack[T]) Empty() bool { return s.v.Empty() }

// Cap returns the capacity of the underlying buffer.
func (s *Stack[T]) Cap() int { return s.v.Cap() }

// Stats exposes the relocation counters of the underlying vector.
func (s *Stack[T]) Stats() vector.Stats { return s.v.Stats() }

// Values yields the elements bottom to top.
func (s *Stack[T]) Values() iter.Seq[T] { return s.v.Values() }

// String renders the elements bottom to top, e.g. "[1 2 3]" after pushing 1, 2, 3.
func (s *Stack[T]) String() string { return s.v.String() }

// Linked is a LIFO stack whose top is the head of a singly-linked list.
type Linked[T any] struct {
	l *list.Singly[T]
}

// NewLinked returns an empty list-backed stack.
func NewLinked[T any]() *Linked[T] {
	return &Linked[T]{l: list.NewSingly[T]()}
}

// Push places value on top. Complexity: O(1).
func (s *Linked[T]) Push(value T) { s.l.PushFront(value) }

// Pop removes and returns the top element. Complexity: O(1).
func (s *Linked[T]) Pop() (T, error) {
	x, err := s.l.PopFront()
	if err != nil {
		return x, fmt.Errorf("stack: Pop: %w", ErrUnderflow)
	}

	return x, nil
}

// Top returns the top element without removing it.
func (s *Linked[T]) Top() (T, error) {
	x, err := s.l.Front()
	if err != nil {
		return x, fmt.Errorf("stack: Top: %w", ErrUnderflow)
	}

	return x, nil
}

// Len returns the number of elements.
func (s *Linked[T]) Len() int { return s.l.Len() }

// Empty reports whether the stack holds no element.
func (s *Linked[T]) Empty() bool { return s.l.Empty() }

// Values yields the elements bottom to top. Complexity: O(n) extra space,
// the list is walked top-down.
func (s *Linked[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		top := s.l.Slice()
		for i := len(top) - 1; i >= 0; i-- {
			if !yield(top[i]) {
				return
			}
		}
	}
}

// String renders the elements bottom to top.
func (s *Linked[T]) String() string { return core.Render(s.Values()) }
