package list

import "iter"

// Doubly is a doubly-linked list. Every mutation keeps the back links
// consistent, so Prev, InsertBefore, Remove and PopBack are O(1), and rank
// lookups walk from the nearer end.
//
// Handles survive insertions and removals of other elements; removing a
// handle's own element invalidates that handle only.
// The zero value is not ready for use; create lists with NewDoubly.
type Doubly[T any] struct {
	chain[T]
}

// NewDoubly returns a list holding values front to back.
func NewDoubly[T any](values ...T) *Doubly[T] {
	l := &Doubly[T]{chain: newChain[T]("list.Doubly", true, len(values))}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}

// Prev returns the handle preceding p. The first element's predecessor is
// Head(), and Head()'s predecessor is the last element (or Head() itself on
// an empty list). Complexity: O(1).
func (l *Doubly[T]) Prev(p Position[T]) (Position[T], error) {
	if err := l.check(p, true); err != nil {
		return Position[T]{}, l.errorf("Prev", err)
	}

	return l.pos(l.a.nodes[p.slot].prev), nil
}

// InsertBefore inserts value right before p and returns the new handle.
// Inserting before Head() appends. Complexity: O(1).
func (l *Doubly[T]) InsertBefore(p Position[T], value T) (Position[T], error) {
	if err := l.check(p, true); err != nil {
		return Position[T]{}, l.errorf("InsertBefore", err)
	}

	return l.pos(l.link(l.a.nodes[p.slot].prev, value)), nil
}

// Remove unlinks the element designated by p and returns its value.
// p becomes invalid; every other handle stays valid. Complexity: O(1).
func (l *Doubly[T]) Remove(p Position[T]) (T, error) {
	if err := l.check(p, false); err != nil {
		var zero T
		return zero, l.errorf("Remove", err)
	}

	return l.unlinkAfter(l.a.nodes[p.slot].prev), nil
}

// Backward yields every element once, back to front.
func (l *Doubly[T]) Backward() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := l.tail; i != sentinel; i = l.a.nodes[i].prev {
			if !yield(l.a.nodes[i].value) {
				return
			}
		}
	}
}
