package queue_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/queue"
)

// BenchmarkSteadyState keeps 256 elements queued and cycles one in, one out.
func BenchmarkSteadyState(b *testing.B) {
	const depth = 256
	b.Run("Vector", func(b *testing.B) {
		q := queue.New[int]()
		for i := 0; i < depth; i++ {
			q.Enqueue(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q.Enqueue(i)
			_, _ = q.Dequeue()
		}
	})
	b.Run("Circular", func(b *testing.B) {
		q := queue.NewCircular[int](depth + 1)
		for i := 0; i < depth; i++ {
			_ = q.Enqueue(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = q.Enqueue(i)
			_, _ = q.Dequeue()
		}
	})
	b.Run("Linked", func(b *testing.B) {
		q := queue.NewLinked[int]()
		for i := 0; i < depth; i++ {
			q.Enqueue(i)
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			q.Enqueue(i)
			_, _ = q.Dequeue()
		}
	})
}
