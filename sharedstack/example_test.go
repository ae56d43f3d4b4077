package sharedstack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/sharedstack"
)

func ExampleNew() {
	s := sharedstack.New[int](4)
	l, r := s.Left(), s.Right()
	_ = l.Push(1)
	_ = r.Push(9)
	_ = r.Push(8)
	_ = l.Push(2)
	fmt.Println(s, s.Free())
	fmt.Println(l.Push(3))
	// Output:
	// left=[1 2] right=[9 8] 0
	// sharedstack: Push(left): core: container is full: capacity 4
}
