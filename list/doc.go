// Package list provides linked lists whose nodes live in a per-list slot
// table: Singly, Doubly and the ring Circular.
//
// What:
//
//   - Singly    sentinel head + cached tail; O(1) push front/back, pop front
//   - Doubly    back links on top; O(1) Prev, InsertBefore, Remove, PopBack
//   - Circular  singly-linked ring; Cycle(start) iterates forever, Next and
//               RemoveAfter wrap from the last element to the first
//
// Every list shares the rank API (At, InsertAt, RemoveAt, PositionAt), the
// handle API (First, Last, Next, Value, SetValue, InsertAfter, RemoveAfter),
// range-over-func iteration (Values, Positions) and Find/IndexFunc.
//
// Why:
//
//   - Links are slot indices, not pointers. The forward link of a slot is the
//     only owning reference; back links are plain indices. A ring is closed
//     by arithmetic (skip the sentinel) rather than by a reference cycle.
//   - Position[T] carries the owning table, the slot and its generation.
//     Every call validates it, so a handle from another list, a removed
//     element or a cleared list is reported as ErrInvalidPosition instead of
//     reading a recycled slot.
//
// Errors:
//
//   - ErrOutOfRange       bad rank, or RemoveAfter on the last element of a
//                         Singly/Doubly list
//   - ErrUnderflow        Front/Back/Pop*/First/Last/RemoveAt on an empty list
//   - ErrInvalidPosition  zero, foreign or stale handle
//
// Example:
//
//	l := list.NewDoubly("a", "c")
//	first, _ := l.First()
//	l.InsertAfter(first, "b")
//	fmt.Println(l) // [a b c]
//
// Lists are not safe for concurrent use.
package list
