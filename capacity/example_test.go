package capacity_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/capacity"
)

// ExampleGeometric traces the buffer length while pushing five elements
// into an empty array that doubles on overflow.
func ExampleGeometric() {
	p, err := capacity.NewGeometric(2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c := 0
	for size := 1; size <= 5; size++ {
		if d := p.Decide(c, size); d.Action == capacity.Grow {
			c = d.Capacity
		}
		fmt.Print(c, " ")
	}
	fmt.Println()

	// Output:
	// 1 2 4 4 8
}

// ExampleNewHysteresis shows the construction-time guard against thrashing
// and a shrink decision after a bulk removal.
func ExampleNewHysteresis() {
	_, err := capacity.NewHysteresis(2, 2, 2, 0)
	fmt.Println(err != nil)

	p, _ := capacity.NewHysteresis(2, 2, 4, 0)
	d := p.Decide(64, 10)
	fmt.Println(d.Action, d.Capacity)

	// Output:
	// true
	// shrink 32
}
