// File: circular.go
// Role: singly-linked ring. The last element's successor is the first one:
// the ring closes by skipping the sentinel in Next and Cycle, so no slot
// ever links back into the chain.

package list

import "iter"

// Circular is a singly-linked ring. Values and String make one lap; Cycle
// goes around forever. The zero value is not ready for use; create rings
// with NewCircular.
type Circular[T any] struct {
	chain[T]
}

// NewCircular returns a ring holding values in order, values[0] first.
func NewCircular[T any](values ...T) *Circular[T] {
	r := &Circular[T]{chain: newChain[T]("list.Circular", false, len(values))}
	for _, v := range values {
		r.PushBack(v)
	}

	return r
}

// Next returns the handle following p. The last element wraps to the first;
// Head() leads to the first element (or Head() itself on an empty ring).
// Complexity: O(1).
func (r *Circular[T]) Next(p Position[T]) (Position[T], error) {
	if err := r.check(p, true); err != nil {
		return Position[T]{}, r.errorf("Next", err)
	}

	return r.pos(r.succ(p.slot)), nil
}

// RemoveAfter removes and returns the ring successor of p. The successor of
// the last element is the first one, and a one-element ring removes its only
// element. Complexity: O(1).
func (r *Circular[T]) RemoveAfter(p Position[T]) (T, error) {
	if err := r.check(p, true); err != nil {
		var zero T
		return zero, r.errorf("RemoveAfter", err)
	}
	if p.slot != sentinel && p.slot == r.tail {
		return r.unlinkAfter(sentinel), nil
	}

	return r.chain.RemoveAfter(p)
}

// Cycle yields the ring forever starting at rank start: the k-th yielded
// value is element (start+k) mod Len(). start is reduced modulo Len(), so
// negative values count from the back. An empty ring yields nothing.
//
// The sequence is lazy and restartable: every range over it starts afresh.
// It ends early if the ring is cleared or the element it is about to leave
// is removed while iterating, even when a later push recycles its slot.
func (r *Circular[T]) Cycle(start int) iter.Seq[T] {
	return func(yield func(T) bool) {
		n := r.Len()
		if n == 0 {
			return
		}
		r.lap(r.slotAt(mod(start, n)), yield)
	}
}

// CycleFrom is Cycle starting at the element designated by p.
// An invalid handle yields nothing.
func (r *Circular[T]) CycleFrom(p Position[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		if r.check(p, false) != nil {
			return
		}
		r.lap(p.slot, yield)
	}
}

// Take returns the first m values of Cycle(start). m ≤ 0 or an empty ring
// gives an empty slice.
func (r *Circular[T]) Take(start, m int) []T {
	if m <= 0 || r.Len() == 0 {
		return []T{}
	}
	out := make([]T, 0, m)
	for v := range r.Cycle(start) {
		out = append(out, v)
		if len(out) == m {
			break
		}
	}

	return out
}

// Rotate advances the head by k elements, so the element at rank k becomes
// the first one. k is reduced modulo Len(); negative k rotates backwards.
// Handles stay valid. Complexity: O(k mod Len()).
func (r *Circular[T]) Rotate(k int) {
	n := r.Len()
	if n < 2 {
		return
	}
	k = mod(k, n)
	if k == 0 {
		return
	}
	nodes := r.a.nodes
	newTail := r.slotAt(k - 1)
	newHead := nodes[newTail].next
	nodes[r.tail].next = nodes[sentinel].next // close the ring
	nodes[sentinel].next = newHead
	nodes[newTail].next = sentinel
	r.tail = newTail
}

// lap yields from slot i around the ring until yield refuses, the ring is
// cleared, or the element just yielded was removed. The slot generation is
// captured before each yield so a removal followed by a push that recycles
// the slot is still seen as a removal.
func (r *Circular[T]) lap(i int, yield func(T) bool) {
	a := r.a
	for {
		gen := a.nodes[i].gen
		if !yield(a.nodes[i].value) {
			return
		}
		if r.a != a || a.len == 0 || !a.nodes[i].live || a.nodes[i].gen != gen {
			return
		}
		i = r.succ(i)
	}
}

// succ returns the ring successor of slot i, skipping the sentinel.
func (r *Circular[T]) succ(i int) int {
	next := r.a.nodes[i].next
	if next == sentinel {
		return r.a.nodes[sentinel].next
	}

	return next
}

// mod returns k mod n in [0, n).
func mod(k, n int) int {
	k %= n
	if k < 0 {
		k += n
	}

	return k
}
