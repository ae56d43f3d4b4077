// SPDX-License-Identifier: MIT

package core

import (
	"fmt"
	"iter"
	"strings"
)

// NotFound is the rank returned by Find-style lookups when no element
// matches. It is negative, so it never equals a valid rank (including 0) nor
// the one-past-the-end rank Len() used by Insert.
const NotFound = -1

// Sequence is implemented by every container in this module: a live element
// count plus a finite traversal in logical order.
type Sequence[T any] interface {
	Len() int
	Values() iter.Seq[T]
}

// Render formats the elements produced by seq as "[a b c]", each element
// exactly once and in traversal order. The output is deterministic as long as
// the element type's %v formatting is.
// Complexity: O(n).
func Render[T any](seq iter.Seq[T]) string {
	var sb strings.Builder
	sb.WriteByte('[')
	first := true
	for v := range seq {
		if !first {
			sb.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&sb, "%v", v)
	}
	sb.WriteByte(']')

	return sb.String()
}

// Collect drains a finite sequence into a new slice sized by hint.
func Collect[T any](seq iter.Seq[T], hint int) []T {
	out := make([]T, 0, hint)
	for v := range seq {
		out = append(out, v)
	}

	return out
}
