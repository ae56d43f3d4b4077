// File: chain.go
// Role: operations shared by Singly, Doubly and Circular.
// A chain is a sentinel-rooted sequence of arena slots with a cached tail.
// Non-circular traversal stops when the forward link returns to the sentinel.

package list

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/lvlinear/core"
)

// chain is embedded by every list type. doubly selects whether back links
// are maintained; without them predecessor lookup is a scan from the head.
type chain[T any] struct {
	a      *arena[T]
	tail   int // last element's slot; sentinel when empty
	doubly bool
	name   string // error prefix: "list.Singly", "list.Doubly", ...
}

// newChain returns an empty chain whose errors are prefixed with name.
func newChain[T any](name string, doubly bool, hint int) chain[T] {
	return chain[T]{a: newArena[T](hint), tail: sentinel, doubly: doubly, name: name}
}

// Len returns the number of elements. Complexity: O(1).
func (c *chain[T]) Len() int {
	if c.a == nil {
		return 0
	}

	return c.a.len
}

// Empty reports whether Len() == 0.
func (c *chain[T]) Empty() bool { return c.Len() == 0 }

// Head returns the handle of the sentinel head. It is valid for
// InsertAfter (insert at the front) and Next (first element), and is what
// Next returns after the last element of a non-circular list.
func (c *chain[T]) Head() Position[T] {
	return Position[T]{owner: c.a, slot: sentinel}
}

// Valid reports whether p designates a live element (or the head) of this list.
func (c *chain[T]) Valid(p Position[T]) bool {
	return c.check(p, true) == nil
}

// Front returns the first element. Complexity: O(1).
func (c *chain[T]) Front() (T, error) {
	if c.Len() == 0 {
		var zero T
		return zero, c.errorf("Front", ErrUnderflow)
	}

	return c.a.nodes[c.a.nodes[sentinel].next].value, nil
}

// Back returns the last element using the cached tail. Complexity: O(1).
func (c *chain[T]) Back() (T, error) {
	if c.Len() == 0 {
		var zero T
		return zero, c.errorf("Back", ErrUnderflow)
	}

	return c.a.nodes[c.tail].value, nil
}

// First returns the handle of the first element.
func (c *chain[T]) First() (Position[T], error) {
	if c.Len() == 0 {
		return Position[T]{}, c.errorf("First", ErrUnderflow)
	}

	return c.pos(c.a.nodes[sentinel].next), nil
}

// Last returns the handle of the last element.
func (c *chain[T]) Last() (Position[T], error) {
	if c.Len() == 0 {
		return Position[T]{}, c.errorf("Last", ErrUnderflow)
	}

	return c.pos(c.tail), nil
}

// Value returns the element designated by p.
func (c *chain[T]) Value(p Position[T]) (T, error) {
	if err := c.check(p, false); err != nil {
		var zero T
		return zero, c.errorf("Value", err)
	}

	return c.a.nodes[p.slot].value, nil
}

// SetValue overwrites the element designated by p.
func (c *chain[T]) SetValue(p Position[T], value T) error {
	if err := c.check(p, false); err != nil {
		return c.errorf("SetValue", err)
	}
	c.a.nodes[p.slot].value = value

	return nil
}

// Next returns the handle following p; after the last element it returns
// Head(). Complexity: O(1).
func (c *chain[T]) Next(p Position[T]) (Position[T], error) {
	if err := c.check(p, true); err != nil {
		return Position[T]{}, c.errorf("Next", err)
	}

	return c.pos(c.a.nodes[p.slot].next), nil
}

// PushFront inserts value before the first element. Complexity: O(1).
func (c *chain[T]) PushFront(value T) Position[T] {
	return c.pos(c.link(sentinel, value))
}

// PushBack appends value after the cached tail. Complexity: O(1).
func (c *chain[T]) PushBack(value T) Position[T] {
	return c.pos(c.link(c.tail, value))
}

// PopFront removes and returns the first element. Complexity: O(1).
func (c *chain[T]) PopFront() (T, error) {
	if c.Len() == 0 {
		var zero T
		return zero, c.errorf("PopFront", ErrUnderflow)
	}

	return c.unlinkAfter(sentinel), nil
}

// PopBack removes and returns the last element. O(1) with back links,
// O(n) otherwise: the tail's predecessor must be found by scanning.
func (c *chain[T]) PopBack() (T, error) {
	if c.Len() == 0 {
		var zero T
		return zero, c.errorf("PopBack", ErrUnderflow)
	}

	return c.unlinkAfter(c.predecessor(c.tail)), nil
}

// InsertAfter inserts value right after p (p may be Head()) and returns the
// new element's handle. Complexity: O(1).
func (c *chain[T]) InsertAfter(p Position[T], value T) (Position[T], error) {
	if err := c.check(p, true); err != nil {
		return Position[T]{}, c.errorf("InsertAfter", err)
	}

	return c.pos(c.link(p.slot, value)), nil
}

// RemoveAfter removes and returns the element right after p (p may be
// Head()). Returns ErrOutOfRange when p is the last element.
// Complexity: O(1).
func (c *chain[T]) RemoveAfter(p Position[T]) (T, error) {
	var zero T
	if err := c.check(p, true); err != nil {
		return zero, c.errorf("RemoveAfter", err)
	}
	if c.a.nodes[p.slot].next == sentinel {
		return zero, c.errorf("RemoveAfter", fmt.Errorf("%w: no element after position", ErrOutOfRange))
	}

	return c.unlinkAfter(p.slot), nil
}

// At returns the element at rank. Complexity: O(rank).
func (c *chain[T]) At(rank int) (T, error) {
	if err := core.CheckRank(rank, c.Len()); err != nil {
		var zero T
		return zero, c.errorf("At", err)
	}

	return c.a.nodes[c.slotAt(rank)].value, nil
}

// PositionAt returns the handle of the element at rank. Complexity: O(rank).
func (c *chain[T]) PositionAt(rank int) (Position[T], error) {
	if err := core.CheckRank(rank, c.Len()); err != nil {
		return Position[T]{}, c.errorf("PositionAt", err)
	}

	return c.pos(c.slotAt(rank)), nil
}

// InsertAt inserts value so that it ends up at rank; 0 ≤ rank ≤ Len().
// Complexity: O(rank); O(1) for rank 0 and rank Len().
func (c *chain[T]) InsertAt(rank int, value T) (Position[T], error) {
	if err := core.CheckRank(rank, c.Len()+1); err != nil {
		return Position[T]{}, c.errorf("InsertAt", err)
	}

	return c.pos(c.link(c.slotAt(rank-1), value)), nil
}

// RemoveAt removes and returns the element at rank.
// Returns ErrUnderflow on an empty list and ErrOutOfRange for a bad rank.
// Complexity: O(rank).
func (c *chain[T]) RemoveAt(rank int) (T, error) {
	var zero T
	if c.Len() == 0 {
		return zero, c.errorf("RemoveAt", ErrUnderflow)
	}
	if err := core.CheckRank(rank, c.Len()); err != nil {
		return zero, c.errorf("RemoveAt", err)
	}

	return c.unlinkAfter(c.slotAt(rank - 1)), nil
}

// IndexFunc returns the rank of the first element satisfying pred, or NotFound.
func (c *chain[T]) IndexFunc(pred func(T) bool) int {
	rank := 0
	for v := range c.Values() {
		if pred(v) {
			return rank
		}
		rank++
	}

	return NotFound
}

// Values yields every element once, front to back, stopping at the sentinel.
func (c *chain[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		if c.a == nil {
			return
		}
		for i := c.a.nodes[sentinel].next; i != sentinel; i = c.a.nodes[i].next {
			if !yield(c.a.nodes[i].value) {
				return
			}
		}
	}
}

// Positions yields the handle of every element, front to back.
func (c *chain[T]) Positions() iter.Seq[Position[T]] {
	return func(yield func(Position[T]) bool) {
		if c.a == nil {
			return
		}
		for i := c.a.nodes[sentinel].next; i != sentinel; i = c.a.nodes[i].next {
			if !yield(c.pos(i)) {
				return
			}
		}
	}
}

// Slice returns the elements front to back in a new slice.
func (c *chain[T]) Slice() []T {
	return core.Collect(c.Values(), c.Len())
}

// String renders the elements front to back as "[a b c]".
func (c *chain[T]) String() string {
	return core.Render(c.Values())
}

// Clear releases every node by replacing the node table. All handles issued
// so far become invalid because they reference the old table.
func (c *chain[T]) Clear() {
	c.a = newArena[T](0)
	c.tail = sentinel
}

//----------------------------------------------------------------------------//
// internals
//----------------------------------------------------------------------------//

// pos issues a handle for slot i.
func (c *chain[T]) pos(i int) Position[T] {
	return Position[T]{owner: c.a, slot: i, gen: c.a.nodes[i].gen}
}

// check validates p against this list. allowHead admits the sentinel.
func (c *chain[T]) check(p Position[T], allowHead bool) error {
	switch {
	case p.owner == nil:
		return fmt.Errorf("%w: zero position", ErrInvalidPosition)
	case p.owner != c.a:
		return fmt.Errorf("%w: position belongs to another list", ErrInvalidPosition)
	case p.slot < 0 || p.slot >= len(c.a.nodes):
		return fmt.Errorf("%w: slot %d", ErrInvalidPosition, p.slot)
	case p.slot == sentinel:
		if !allowHead {
			return fmt.Errorf("%w: head holds no element", ErrInvalidPosition)
		}
		return nil
	}
	n := &c.a.nodes[p.slot]
	if !n.live || n.gen != p.gen {
		return fmt.Errorf("%w: element was removed", ErrInvalidPosition)
	}

	return nil
}

// link inserts value after slot `after` and returns the new slot.
func (c *chain[T]) link(after int, value T) int {
	a := c.a
	i := a.alloc(value) // may grow a.nodes: use indices only from here
	next := a.nodes[after].next
	a.nodes[i].next = next
	a.nodes[after].next = i
	if c.doubly {
		a.nodes[i].prev = after
		a.nodes[next].prev = i
	}
	if after == c.tail {
		c.tail = i
	}
	a.len++

	return i
}

// unlinkAfter detaches the slot following prev and returns its value.
// The caller guarantees that slot exists.
func (c *chain[T]) unlinkAfter(prev int) T {
	a := c.a
	i := a.nodes[prev].next
	next := a.nodes[i].next
	a.nodes[prev].next = next
	if c.doubly {
		a.nodes[next].prev = prev
	}
	if i == c.tail {
		c.tail = prev
	}
	a.len--

	return a.release(i)
}

// predecessor returns the slot linking to i.
func (c *chain[T]) predecessor(i int) int {
	if c.doubly {
		return c.a.nodes[i].prev
	}
	p := sentinel
	for c.a.nodes[p].next != i {
		p = c.a.nodes[p].next
	}

	return p
}

// slotAt returns the slot at rank, with rank -1 meaning the sentinel.
// Back links allow walking from the nearer end.
func (c *chain[T]) slotAt(rank int) int {
	n := c.Len()
	switch {
	case rank < 0:
		return sentinel
	case rank == n-1:
		return c.tail
	case c.doubly && rank > n/2:
		i := c.tail
		for r := n - 1; r > rank; r-- {
			i = c.a.nodes[i].prev
		}
		return i
	}
	i := c.a.nodes[sentinel].next
	for r := 0; r < rank; r++ {
		i = c.a.nodes[i].next
	}

	return i
}

// errorf prefixes err with the list kind and operation.
func (c *chain[T]) errorf(op string, err error) error {
	return fmt.Errorf("%s: %s: %w", c.name, op, err)
}
