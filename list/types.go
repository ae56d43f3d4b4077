// File: types.go
// Role: position handle and sentinel errors shared by every list kind.

package list

import "github.com/katalvlaran/lvlinear/core"

// Sentinel errors re-exported from core.
var (
	// ErrOutOfRange is returned for a rank outside the accepted interval, and
	// by RemoveAfter when the position has no successor.
	ErrOutOfRange = core.ErrOutOfRange

	// ErrUnderflow is returned by Pop*/Front/Back/First/Last on an empty list.
	ErrUnderflow = core.ErrUnderflow

	// ErrInvalidPosition is returned for a handle from another list, a zero
	// handle, or a handle whose element was removed.
	ErrInvalidPosition = core.ErrInvalidPosition
)

// NotFound is returned by IndexFunc and Find when no element matches.
const NotFound = core.NotFound

// Position is an opaque handle to one node of a list: the owning list's
// node table, the slot, and the slot generation at the time the handle was
// issued. Handles are compared with ==.
//
// A handle stays valid until its own element is removed or the list is
// cleared; mutations elsewhere in the list do not affect it. Every
// position-taking method validates the handle and returns
// ErrInvalidPosition instead of touching a stale slot.
type Position[T any] struct {
	owner *arena[T]
	slot  int
	gen   uint32
}

// IsHead reports whether p designates the sentinel head (see Head).
func (p Position[T]) IsHead() bool {
	return p.owner != nil && p.slot == sentinel
}

// IsZero reports whether p is the zero handle, which is never valid.
func (p Position[T]) IsZero() bool {
	return p.owner == nil
}

// indexer is satisfied by every list type in this package.
type indexer[T any] interface {
	IndexFunc(pred func(T) bool) int
}

// Find returns the rank of the first element equal to value in l, or
// NotFound. Complexity: O(n).
func Find[T comparable](l indexer[T], value T) int {
	return l.IndexFunc(func(x T) bool { return x == value })
}
