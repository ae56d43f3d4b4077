// Package lvlinear is a small library of linear containers built around one
// idea: how a container grows and shrinks is a policy you plug in, not a
// constant baked into the type.
//
// What is inside?
//
//	core/        error kinds, rank checks, NotFound, "[a b c]" rendering
//	capacity/    Policy: FixedIncrement, Geometric, Hysteresis
//	vector/      Vector[T]: rank access, policy-driven resizing, Stats
//	list/        Singly, Doubly and Circular lists over a slot table,
//	             with generation-checked Position handles
//	stack/       Stack (vector) and Linked (list) LIFO adapters
//	queue/       Queue (vector), Circular (fixed ring), Linked FIFO adapters
//	sharedstack/ two stacks growing toward each other in one buffer
//
// Why policies?
//
//   - Fixed increments make n appends cost Θ(n²/step) element moves.
//   - Geometric growth brings that down to fewer than 2n.
//   - Hysteresis adds shrinking, with the shrink threshold kept strictly
//     above the expand ratio so alternating push/pop at a boundary never
//     reallocates.
//
// Every Vector exposes Stats, so these claims are checked by tests rather
// than by timers.
//
// Quick example:
//
//	pol, _ := capacity.NewHysteresis(2, 2, 4, 4)
//	v := vector.New[int](vector.WithPolicy(pol))
//	for i := 0; i < 100; i++ {
//		v.PushBack(i)
//	}
//	fmt.Println(v.Cap(), v.Stats().Reallocations) // 128 8
//
// The cmd/lvlinear binary replays container scripts and prints capacity
// reports; examples/ holds a few runnable scenarios.
//
// Containers are single-threaded: none of them is safe for concurrent use.
package lvlinear
