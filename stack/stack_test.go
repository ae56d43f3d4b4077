package stack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/core"
	"github.com/katalvlaran/lvlinear/stack"
	"github.com/katalvlaran/lvlinear/vector"
)

// lifo is the contract both stack kinds satisfy.
type lifo interface {
	Push(int)
	Pop() (int, error)
	Top() (int, error)
	Len() int
	Empty() bool
	String() string
}

func TestStack_LIFO(t *testing.T) {
	cases := map[string]lifo{
		"Vector": stack.New[int](),
		"Linked": stack.NewLinked[int](),
		"Zero":   &stack.Stack[int]{},
	}
	for name, s := range cases {
		t.Run(name, func(t *testing.T) {
			assert.True(t, s.Empty())
			_, err := s.Pop()
			assert.ErrorIs(t, err, stack.ErrUnderflow)
			_, err = s.Top()
			assert.ErrorIs(t, err, core.ErrUnderflow)

			for i := 1; i <= 3; i++ {
				s.Push(i)
			}
			assert.Equal(t, "[1 2 3]", s.String(), "bottom to top")
			top, err := s.Top()
			require.NoError(t, err)
			assert.Equal(t, 3, top)
			assert.Equal(t, 3, s.Len())

			for want := 3; want >= 1; want-- {
				got, err := s.Pop()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
			assert.True(t, s.Empty())
			assert.Equal(t, "[]", s.String())
		})
	}
}

func TestStack_PolicyShrinks(t *testing.T) {
	hyst, err := capacity.NewHysteresis(2, 2, 4, 2)
	require.NoError(t, err)
	s := stack.New[int](vector.WithPolicy(hyst))
	for i := 0; i < 32; i++ {
		s.Push(i)
	}
	require.Equal(t, 32, s.Cap())
	for s.Len() > 2 {
		_, err := s.Pop()
		require.NoError(t, err)
	}
	assert.Less(t, s.Cap(), 32)
	assert.GreaterOrEqual(t, s.Cap(), s.Len())
	assert.Positive(t, s.Stats().Reallocations)
}
