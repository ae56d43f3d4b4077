package capacity_test

import (
	"testing"

	"github.com/katalvlaran/lvlinear/capacity"
)

// BenchmarkDecide_Append replays 4096 appends from empty through each policy.
// Only the decision function is measured; no buffer is allocated.
func BenchmarkDecide_Append(b *testing.B) {
	fixed, _ := capacity.NewFixedIncrement(16)
	geo, _ := capacity.NewGeometric(2)
	hyst, _ := capacity.NewHysteresis(2, 2, 4, 4)

	for _, p := range []capacity.Policy{fixed, geo, hyst} {
		b.Run(p.String(), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				c := 0
				for size := 1; size <= 4096; size++ {
					if d := p.Decide(c, size); d.Action == capacity.Grow {
						c = d.Capacity
					}
				}
			}
		})
	}
}
