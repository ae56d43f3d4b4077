// File: arena.go
// Role: slot table backing every list in this package.
// Links are slot indices, never pointers: the forward link of a slot is the
// single owning reference to the next slot, the back link is a plain index
// the doubly-linked operations keep consistent. Slot 0 is the sentinel.

package list

// sentinel is the slot index of the head node in every arena.
const sentinel = 0

// detached marks the links of a released slot.
const detached = -1

// node is the shared node shape of the singly, doubly and circular lists.
type node[T any] struct {
	value T
	next  int    // forward link (owning)
	prev  int    // back link (non-owning, maintained by Doubly only)
	gen   uint32 // bumped on release; stale Positions stop matching
	live  bool
}

// arena owns every node of one list. Released slots are recycled through
// free; their generation is bumped so old handles are rejected.
type arena[T any] struct {
	nodes []node[T]
	free  []int
	len   int
}

// newArena returns an arena holding only the sentinel, linked to itself.
func newArena[T any](hint int) *arena[T] {
	a := &arena[T]{nodes: make([]node[T], 1, hint+1)}
	a.nodes[sentinel] = node[T]{next: sentinel, prev: sentinel, live: true}

	return a
}

// alloc stores v in a fresh or recycled slot and returns its index.
// The caller links it. Complexity: amortized O(1).
func (a *arena[T]) alloc(v T) int {
	if n := len(a.free); n > 0 {
		i := a.free[n-1]
		a.free = a.free[:n-1]
		a.nodes[i].value = v
		a.nodes[i].live = true

		return i
	}
	a.nodes = append(a.nodes, node[T]{value: v, live: true})

	return len(a.nodes) - 1
}

// release clears slot i, bumps its generation and recycles it.
func (a *arena[T]) release(i int) T {
	n := &a.nodes[i]
	v := n.value
	var zero T
	n.value = zero
	n.next, n.prev = detached, detached
	n.live = false
	n.gen++
	a.free = append(a.free, i)

	return v
}
