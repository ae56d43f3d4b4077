package sharedstack

import (
	"fmt"
	"iter"
	"strings"

	"github.com/katalvlaran/lvlinear/core"
)

// Sentinel errors re-exported from core.
var (
	ErrOverflow  = core.ErrOverflow
	ErrUnderflow = core.ErrUnderflow
)

const panicNegativeCapacity = "sharedstack: New: capacity must be ≥ 0"

// SideID names one of the two stacks.
type SideID int

const (
	// LeftSide (S0) grows from slot 0 upward.
	LeftSide SideID = iota
	// RightSide (S1) grows from slot N-1 downward.
	RightSide
)

// String returns "left" or "right".
func (id SideID) String() string {
	switch id {
	case LeftSide:
		return "left"
	case RightSide:
		return "right"
	default:
		return fmt.Sprintf("side(%d)", int(id))
	}
}

// SharedStack holds two stacks in one buffer of fixed capacity.
type SharedStack[T any] struct {
	buf  []T
	top0 int // last occupied slot of the left stack; -1 when empty
	top1 int // last occupied slot of the right stack; len(buf) when empty
}

// New returns an empty shared stack with capacity n. Panics if n < 0.
func New[T any](n int) *SharedStack[T] {
	if n < 0 {
		panic(panicNegativeCapacity)
	}

	return &SharedStack[T]{buf: make([]T, n), top0: -1, top1: n}
}

// Left returns the view of S0.
func (s *SharedStack[T]) Left() Side[T] { return Side[T]{owner: s, id: LeftSide} }

// Right returns the view of S1.
func (s *SharedStack[T]) Right() Side[T] { return Side[T]{owner: s, id: RightSide} }

// Cap returns the capacity shared by both sides.
func (s *SharedStack[T]) Cap() int { return len(s.buf) }

// Free returns the number of slots still available to either side.
func (s *SharedStack[T]) Free() int { return s.top1 - s.top0 - 1 }

// Snapshot copies the whole buffer. Slots between the two tops hold the zero
// value.
func (s *SharedStack[T]) Snapshot() []T {
	out := make([]T, len(s.buf))
	copy(out, s.buf)

	return out
}

// String renders both sides bottom to top, e.g. "left=[1 2] right=[9]".
func (s *SharedStack[T]) String() string {
	var sb strings.Builder
	sb.WriteString("left=")
	sb.WriteString(s.Left().String())
	sb.WriteString(" right=")
	sb.WriteString(s.Right().String())

	return sb.String()
}

func (s *SharedStack[T]) push(id SideID, value T) error {
	if s.top0+1 >= s.top1 {
		return fmt.Errorf("sharedstack: Push(%s): %w: capacity %d", id, ErrOverflow, len(s.buf))
	}
	if id == LeftSide {
		s.top0++
		s.buf[s.top0] = value
	} else {
		s.top1--
		s.buf[s.top1] = value
	}

	return nil
}

func (s *SharedStack[T]) pop(id SideID) (T, error) {
	var zero T
	if s.size(id) == 0 {
		return zero, fmt.Errorf("sharedstack: Pop(%s): %w", id, ErrUnderflow)
	}
	var x T
	if id == LeftSide {
		x, s.buf[s.top0] = s.buf[s.top0], zero
		s.top0--
	} else {
		x, s.buf[s.top1] = s.buf[s.top1], zero
		s.top1++
	}

	return x, nil
}

func (s *SharedStack[T]) top(id SideID) (T, error) {
	if s.size(id) == 0 {
		var zero T
		return zero, fmt.Errorf("sharedstack: Top(%s): %w", id, ErrUnderflow)
	}
	if id == LeftSide {
		return s.buf[s.top0], nil
	}

	return s.buf[s.top1], nil
}

func (s *SharedStack[T]) size(id SideID) int {
	if id == LeftSide {
		return s.top0 + 1
	}

	return len(s.buf) - s.top1
}

// Side is a view of one stack of a SharedStack. The zero Side has no owner
// and must not be used.
type Side[T any] struct {
	owner *SharedStack[T]
	id    SideID
}

// ID reports which side the view addresses.
func (v Side[T]) ID() SideID { return v.id }

// Push places value on top of this side. Returns ErrOverflow when the two
// tops would meet. Complexity: O(1).
func (v Side[T]) Push(value T) error { return v.owner.push(v.id, value) }

// Pop removes and returns the top of this side. Complexity: O(1).
func (v Side[T]) Pop() (T, error) { return v.owner.pop(v.id) }

// Top returns the top of this side without removing it.
func (v Side[T]) Top() (T, error) { return v.owner.top(v.id) }

// Len returns the number of elements on this side.
func (v Side[T]) Len() int { return v.owner.size(v.id) }

// Empty reports whether this side holds no element.
func (v Side[T]) Empty() bool { return v.Len() == 0 }

// Values yields this side's elements bottom to top.
func (v Side[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		s := v.owner
		if v.id == LeftSide {
			for i := 0; i <= s.top0; i++ {
				if !yield(s.buf[i]) {
					return
				}
			}
			return
		}
		for i := len(s.buf) - 1; i >= s.top1; i-- {
			if !yield(s.buf[i]) {
				return
			}
		}
	}
}

// String renders this side bottom to top.
func (v Side[T]) String() string { return core.Render(v.Values()) }
