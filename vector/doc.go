// Package vector implements Vector[T], a resizable rank-indexed sequence
// whose buffer length is decided by a pluggable capacity.Policy.
//
// What:
//
//   - At / Set                  O(1) rank access
//   - Insert / Remove           O(n) shifting, policy-driven grow/shrink
//   - PushBack / PopBack        amortized O(1) under a geometric policy
//   - PushFront / PopFront      Insert(0, ·) / Remove(0): O(n) by design
//   - Find / IndexFunc          linear scan, NotFound (-1) when absent
//   - Values / All / Backward   range-over-func iterators
//   - Clone / Clear / Reserve   ownership helpers
//   - Stats                     reallocation and element-move counters
//
// Why:
//
//   - The policy is injected (WithPolicy) rather than inherited, so the same
//     container can demonstrate additive, geometric and hysteresis growth.
//   - Stats turn the amortized-cost argument into numbers a test can check:
//     n pushes under geometric(2) relocate fewer than 2n elements, under
//     fixed(step) they relocate Θ(n²/step).
//   - The asymmetry between the back (amortized O(1)) and the front (O(n))
//     is observable through Stats().Shifted.
//
// Errors:
//
//   - ErrOutOfRange  rank outside [0, Len()) for At/Set/Remove, [0, Len()] for Insert
//   - ErrUnderflow   Remove/PopBack/PopFront/Front/Back on an empty vector
//
// A failing call never mutates the vector. Vector is not safe for
// concurrent use.
//
// Options:
//
//   - WithPolicy(p)     capacity policy (default geometric, ratio 2)
//   - WithCapacity(n)   pre-size the buffer
//   - WithOnResize(fn)  observe every reallocation
package vector
