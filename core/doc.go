// Package core holds what every lvlinear container shares: the error kinds,
// rank validation, the NotFound marker and the "[a b c]" rendering.
//
// What:
//
//   - ErrOutOfRange, ErrUnderflow, ErrOverflow, ErrInvalidPosition,
//     ErrInvalidPolicy: sentinel errors, re-exported by each container
//     package under the same names
//   - CheckRank / RankError: half-open interval check with context
//   - NotFound: the rank returned by Find-style lookups on a miss
//   - Sequence, Render, Collect: iteration helpers behind String and Slice
//
// Errors:
//
// Containers wrap a sentinel with the operation and detail, e.g.
//
//	vector: Insert: core: rank out of range: rank 7 not in [0, 4)
//
// so errors.Is(err, core.ErrOutOfRange) and errors.Is(err,
// vector.ErrOutOfRange) both match. A call that fails never leaves a
// partial mutation behind.
//
// Complexity: every helper here is O(1) except Render and Collect, which are
// O(n) in the number of yielded elements.
package core
