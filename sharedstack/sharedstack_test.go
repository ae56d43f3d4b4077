package sharedstack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/core"
	"github.com/katalvlaran/lvlinear/sharedstack"
)

// TestSharedStack_Collision fills a 10-slot buffer 3 left / 7 right and
// checks that the next push on either side overflows.
func TestSharedStack_Collision(t *testing.T) {
	s := sharedstack.New[int](10)
	l, r := s.Left(), s.Right()

	for i := 0; i < 3; i++ {
		require.NoError(t, l.Push(i))
	}
	for i := 0; i < 3; i++ {
		require.NoError(t, r.Push(100+i))
	}
	for i := 3; i < 7; i++ {
		require.NoError(t, r.Push(100+i), "right push %d", i)
	}
	assert.Zero(t, s.Free())

	err := l.Push(99)
	assert.ErrorIs(t, err, sharedstack.ErrOverflow)
	err = r.Push(99)
	assert.ErrorIs(t, err, core.ErrOverflow)

	assert.Equal(t, 3, l.Len())
	assert.Equal(t, 7, r.Len())
	assert.Equal(t, []int{0, 1, 2, 106, 105, 104, 103, 102, 101, 100}, s.Snapshot())
	assert.Equal(t, "left=[0 1 2] right=[100 101 102 103 104 105 106]", s.String())
}

func TestSharedStack_EitherSideCanUseEverySlot(t *testing.T) {
	for _, id := range []sharedstack.SideID{sharedstack.LeftSide, sharedstack.RightSide} {
		t.Run(id.String(), func(t *testing.T) {
			s := sharedstack.New[int](5)
			side, other := s.Left(), s.Right()
			if id == sharedstack.RightSide {
				side, other = other, side
			}
			assert.Equal(t, id, side.ID())
			for i := 0; i < 5; i++ {
				require.NoError(t, side.Push(i))
			}
			assert.ErrorIs(t, side.Push(5), sharedstack.ErrOverflow)
			assert.ErrorIs(t, other.Push(5), sharedstack.ErrOverflow)
			assert.True(t, other.Empty())

			for want := 4; want >= 0; want-- {
				got, err := side.Pop()
				require.NoError(t, err)
				assert.Equal(t, want, got)
			}
			assert.Equal(t, 5, s.Free())
		})
	}
}

func TestSharedStack_Underflow(t *testing.T) {
	s := sharedstack.New[string](4)
	l, r := s.Left(), s.Right()
	_, err := l.Pop()
	assert.ErrorIs(t, err, sharedstack.ErrUnderflow)
	_, err = r.Top()
	assert.ErrorIs(t, err, sharedstack.ErrUnderflow)

	require.NoError(t, r.Push("x"))
	_, err = l.Top()
	assert.ErrorIs(t, err, sharedstack.ErrUnderflow, "sides are independent")
	top, err := r.Top()
	require.NoError(t, err)
	assert.Equal(t, "x", top)
}

func TestSharedStack_SidesInterleave(t *testing.T) {
	s := sharedstack.New[int](6)
	l, r := s.Left(), s.Right()
	require.NoError(t, l.Push(1))
	require.NoError(t, r.Push(-1))
	require.NoError(t, l.Push(2))
	require.NoError(t, r.Push(-2))

	got, err := l.Pop()
	require.NoError(t, err)
	assert.Equal(t, 2, got)
	got, err = r.Pop()
	require.NoError(t, err)
	assert.Equal(t, -2, got)

	assert.Equal(t, 4, s.Free())
	assert.Equal(t, 6, s.Cap())
	assert.Equal(t, []int{1, 0, 0, 0, 0, -1}, s.Snapshot(), "popped slots are zeroed")
}

func TestSharedStack_Degenerate(t *testing.T) {
	s := sharedstack.New[int](0)
	assert.ErrorIs(t, s.Left().Push(1), sharedstack.ErrOverflow)
	assert.ErrorIs(t, s.Right().Push(1), sharedstack.ErrOverflow)
	assert.Equal(t, "left=[] right=[]", s.String())
	assert.Panics(t, func() { sharedstack.New[int](-1) })
	assert.Equal(t, "side(7)", sharedstack.SideID(7).String())
}
