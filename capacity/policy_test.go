package capacity_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/core"
)

// pushSequence simulates n appends into an empty buffer governed by p and
// returns the capacity observed after each append.
func pushSequence(p capacity.Policy, n int) []int {
	c := 0
	out := make([]int, 0, n)
	for size := 1; size <= n; size++ {
		d := p.Decide(c, size)
		if d.Action == capacity.Grow {
			c = d.Capacity
		}
		out = append(out, c)
	}

	return out
}

//----------------------------------------------------------------------------//
// Construction
//----------------------------------------------------------------------------//

func TestConstructors_Errors(t *testing.T) {
	_, err := capacity.NewFixedIncrement(0)
	assert.ErrorIs(t, err, capacity.ErrInvalidPolicy)

	_, err = capacity.NewFixedIncrement(-3)
	assert.ErrorIs(t, err, core.ErrInvalidPolicy)

	_, err = capacity.NewGeometric(1)
	assert.ErrorIs(t, err, capacity.ErrInvalidPolicy)

	_, err = capacity.NewGeometric(math.NaN())
	assert.ErrorIs(t, err, capacity.ErrInvalidPolicy)

	_, err = capacity.NewHysteresis(2, 2, 4, -1)
	assert.ErrorIs(t, err, capacity.ErrInvalidPolicy)

	_, err = capacity.NewHysteresis(2, 1, 4, 0)
	assert.ErrorIs(t, err, capacity.ErrInvalidPolicy)
}

// TestHysteresis_RejectsThrash verifies the shrinkThreshold > expandRatio precondition.
func TestHysteresis_RejectsThrash(t *testing.T) {
	cases := []struct {
		name              string
		expand, threshold float64
	}{
		{"Equal", 2, 2},
		{"Below", 2, 1.5},
		{"FractionalEqual", 1.5, 1.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := capacity.NewHysteresis(tc.expand, 2, tc.threshold, 0)
			assert.ErrorIs(t, err, capacity.ErrThrash)
			assert.ErrorIs(t, err, core.ErrInvalidPolicy)
		})
	}

	_, err := capacity.NewHysteresis(2, 2, 2.01, 0)
	assert.NoError(t, err)
}

//----------------------------------------------------------------------------//
// Growth sequences
//----------------------------------------------------------------------------//

func TestFixedIncrement_Sequence(t *testing.T) {
	p, err := capacity.NewFixedIncrement(2)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 2, 4, 4, 6}, pushSequence(p, 5))
}

func TestGeometric_Sequence(t *testing.T) {
	p, err := capacity.NewGeometric(2)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 4, 4, 8}, pushSequence(p, 5))
}

// TestGeometric_FractionalRatio checks that ratio 1.5 still advances on tiny buffers.
func TestGeometric_FractionalRatio(t *testing.T) {
	p, err := capacity.NewGeometric(1.5)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 6, 6, 9}, pushSequence(p, 7))
}

func TestDecide_JumpCoversSize(t *testing.T) {
	fixed, _ := capacity.NewFixedIncrement(3)
	geo, _ := capacity.NewGeometric(2)
	hyst, _ := capacity.NewHysteresis(2, 2, 4, 0)

	for _, p := range []capacity.Policy{fixed, geo, hyst} {
		t.Run(p.String(), func(t *testing.T) {
			d := p.Decide(4, 100)
			assert.Equal(t, capacity.Grow, d.Action)
			assert.GreaterOrEqual(t, d.Capacity, 100)

			d = p.Decide(10, 10)
			assert.Equal(t, capacity.NoAction, d.Action)
			assert.Equal(t, 10, d.Capacity)
		})
	}
}

func TestFixedAndGeometric_NeverShrink(t *testing.T) {
	fixed, _ := capacity.NewFixedIncrement(2)
	geo, _ := capacity.NewGeometric(2)
	for _, p := range []capacity.Policy{fixed, geo} {
		d := p.Decide(1024, 0)
		assert.Equal(t, capacity.NoAction, d.Action, p.String())
		assert.Equal(t, 1024, d.Capacity, p.String())
	}
}

//----------------------------------------------------------------------------//
// Hysteresis shrink
//----------------------------------------------------------------------------//

// TestHysteresis_ShrinkBoundary pins the equality case: size == capacity/threshold keeps the buffer.
func TestHysteresis_ShrinkBoundary(t *testing.T) {
	p, err := capacity.NewHysteresis(2, 2, 4, 0)
	require.NoError(t, err)

	d := p.Decide(16, 4) // 4 == 16/4
	assert.Equal(t, capacity.NoAction, d.Action)
	assert.Equal(t, 16, d.Capacity)

	d = p.Decide(16, 3) // 3 < 16/4
	assert.Equal(t, capacity.Shrink, d.Action)
	assert.Equal(t, 8, d.Capacity)
}

func TestHysteresis_ShrinkFloors(t *testing.T) {
	p, err := capacity.NewHysteresis(2, 2, 4, 6)
	require.NoError(t, err)

	// capacity/shrinkRatio = 4, floored to minCapacity = 6
	d := p.Decide(8, 1)
	assert.Equal(t, capacity.Shrink, d.Action)
	assert.Equal(t, 6, d.Capacity)

	// already at the floor
	d = p.Decide(6, 0)
	assert.Equal(t, capacity.NoAction, d.Action)

	// aggressive shrink ratio is clamped to size+1
	aggressive, err := capacity.NewHysteresis(2, 16, 4, 0)
	require.NoError(t, err)
	d = aggressive.Decide(16, 3)
	assert.Equal(t, capacity.Shrink, d.Action)
	assert.Equal(t, 4, d.Capacity)
}

// TestHysteresis_NoThrash fills the buffer exactly to a growth boundary, crosses it once,
// then alternates pop and push: capacity must never change again.
func TestHysteresis_NoThrash(t *testing.T) {
	for _, params := range [][3]float64{{2, 2, 4}, {1.5, 1.5, 1.6}, {2, 8, 2.5}} {
		p, err := capacity.NewHysteresis(params[0], params[1], params[2], 0)
		require.NoError(t, err)

		for fill := 1; fill <= 40; fill++ {
			c, size := 0, 0
			push := func() {
				size++
				if d := p.Decide(c, size); d.Action == capacity.Grow {
					c = d.Capacity
				}
			}
			pop := func() {
				size--
				if d := p.Decide(c, size); d.Action == capacity.Shrink {
					c = d.Capacity
				}
			}
			for size < fill {
				push()
			}
			if size != c {
				continue // not a growth boundary
			}
			push() // crosses the boundary once
			settled := c
			for i := 0; i < 50; i++ {
				pop()
				push()
				if c != settled {
					t.Fatalf("%s fill=%d: capacity moved from %d to %d", p, fill, settled, c)
				}
			}
		}
	}
}

//----------------------------------------------------------------------------//
// Parse
//----------------------------------------------------------------------------//

func TestParse(t *testing.T) {
	params := capacity.DefaultParams()

	p, err := capacity.Parse("FIXED", params)
	require.NoError(t, err)
	assert.IsType(t, capacity.FixedIncrement{}, p)

	p, err = capacity.Parse("", params)
	require.NoError(t, err)
	assert.IsType(t, capacity.Geometric{}, p)

	p, err = capacity.Parse("hysteresis", params)
	require.NoError(t, err)
	assert.IsType(t, capacity.Hysteresis{}, p)

	p, err = capacity.Parse("fibonacci", params)
	assert.Nil(t, p)
	assert.True(t, errors.Is(err, capacity.ErrUnknownPolicy))

	params.Ratio = 3
	params.ShrinkThreshold = 3
	_, err = capacity.Parse("hysteresis", params)
	assert.ErrorIs(t, err, capacity.ErrThrash)
}

func TestAction_String(t *testing.T) {
	assert.Equal(t, "grow", capacity.Grow.String())
	assert.Equal(t, "shrink", capacity.Shrink.String())
	assert.Equal(t, "none", capacity.NoAction.String())
	assert.Equal(t, "action(9)", capacity.Action(9).String())
}
