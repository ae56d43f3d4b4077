// Package queue provides FIFO containers.
//
// What:
//
//   - Queue[T]     over vector.Vector: Enqueue at the back, Dequeue from the
//     front. Dequeue shifts every remaining element, O(n); Stats().Shifted
//     makes that cost visible next to the O(1) alternatives below.
//   - Circular[T]  fixed-capacity ring. It keeps a head index and an explicit
//     count, so a full ring and an empty ring are never confused:
//     tail = (head + count) mod Cap(). Enqueue on a full ring returns
//     ErrOverflow.
//   - Linked[T]    over list.Singly with its cached tail: O(1) both ends.
//
// Errors:
//
//   - ErrUnderflow  Dequeue/Front/Back on an empty queue
//   - ErrOverflow   Enqueue on a full Circular
//
// String renders the elements front to back. Queues are not safe for
// concurrent use.
package queue
