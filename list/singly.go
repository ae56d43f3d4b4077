package list

// Singly is a singly-linked list with a sentinel head and a cached tail.
//
// PushFront, PushBack, PopFront, InsertAfter and RemoveAfter are O(1).
// PopBack and every rank operation walk from the head.
// The zero value is not ready for use; create lists with NewSingly.
type Singly[T any] struct {
	chain[T]
}

// NewSingly returns a list holding values front to back.
func NewSingly[T any](values ...T) *Singly[T] {
	l := &Singly[T]{chain: newChain[T]("list.Singly", false, len(values))}
	for _, v := range values {
		l.PushBack(v)
	}

	return l
}
