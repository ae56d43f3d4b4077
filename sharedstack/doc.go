// Package sharedstack implements two LIFO stacks growing toward each other
// inside one fixed buffer.
//
// The left stack (S0) grows from slot 0 upward, the right stack (S1) from
// slot N-1 downward. With top0 starting at -1 and top1 at N, a push
// overflows exactly when it would make top0 ≥ top1, so every slot of the
// buffer is usable by either side and neither side has a private quota.
//
// Sides are reached through Left() and Right(). A Side is a small view that
// holds the owning SharedStack and the side id; it owns nothing itself.
//
// Example (N = 10):
//
//	s := sharedstack.New[int](10)
//	l, r := s.Left(), s.Right()
//	// 3 pushes on l, 7 on r fill the buffer; the next push on either
//	// side returns ErrOverflow.
//
// Errors:
//
//   - ErrOverflow   push with no free slot between the two tops
//   - ErrUnderflow  pop/top on an empty side
package sharedstack
