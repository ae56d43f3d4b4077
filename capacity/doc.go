// Package capacity implements the capacity-management strategies that decide
// when and how far a dynamic array reallocates its buffer.
//
// What:
//
//   - FixedIncrement(step): capacity += step until it covers the size.
//   - Geometric(ratio):     capacity *= ratio until it covers the size.
//   - Hysteresis(expand, shrink, threshold, min): geometric growth plus
//     shrinking once size < capacity/threshold.
//
// Why:
//
//   - FixedIncrement demonstrates the quadratic total copy cost of additive
//     growth: n appends relocate Θ(n²/step) elements.
//   - Geometric gives amortized O(1) appends: each relocation is paid for by
//     the pushes that filled the previous buffer.
//   - Hysteresis reclaims memory after bulk removals without oscillating:
//     the distinct grow and shrink thresholds mean a push/pop pair at the
//     boundary never reallocates twice.
//
// Policies are pure values. A container passes its current capacity and the
// size it needs; the policy answers with a Decision{Action, Capacity}. The
// container owns the buffer and performs the move.
//
// Errors:
//
//   - ErrInvalidPolicy   non-positive step, ratio ≤ 1, negative minimum
//   - ErrThrash          Hysteresis with shrinkThreshold ≤ expandRatio
//   - ErrUnknownPolicy   Parse with an unknown name
//
// Example capacity sequences pushing 5 elements into an empty buffer:
//
//	fixed(step=2):      2 2 4 4 6
//	geometric(ratio=2): 1 2 4 4 8
package capacity
