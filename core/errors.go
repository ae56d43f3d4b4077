// SPDX-License-Identifier: MIT
// File: errors.go
// Role: error kinds shared by every container package.
// Container packages re-export these values under their own names so callers
// can write errors.Is(err, vector.ErrOutOfRange) or errors.Is(err,
// core.ErrOutOfRange) interchangeably. Contextual detail (rank, size, side)
// is attached by wrapping with fmt.Errorf("%w: ...").

package core

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange indicates a rank outside the valid bounds for At, Set,
	// Insert or Remove.
	ErrOutOfRange = errors.New("core: rank out of range")

	// ErrUnderflow indicates Pop, Top, Dequeue or Remove on an empty container.
	ErrUnderflow = errors.New("core: container is empty")

	// ErrOverflow indicates a push into a container with no free slot
	// (shared stack collision, full circular queue).
	ErrOverflow = errors.New("core: container is full")

	// ErrInvalidPosition indicates a position handle that does not belong to
	// the container, or whose element has already been removed.
	ErrInvalidPosition = errors.New("core: invalid position")

	// ErrInvalidPolicy indicates capacity-policy parameters that cannot
	// satisfy the policy contract.
	ErrInvalidPolicy = errors.New("core: invalid capacity policy")
)

// RankError wraps ErrOutOfRange with the offending rank and the accepted
// half-open interval [0, limit).
func RankError(rank, limit int) error {
	return fmt.Errorf("%w: rank %d not in [0, %d)", ErrOutOfRange, rank, limit)
}

// CheckRank returns nil when 0 ≤ rank < limit and a RankError otherwise.
// Insert-style callers pass limit = size+1 to accept the one-past-end rank.
// Complexity: O(1).
func CheckRank(rank, limit int) error {
	if rank < 0 || rank >= limit {
		return RankError(rank, limit)
	}

	return nil
}
