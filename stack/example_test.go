package stack_test

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/stack"
)

func ExampleLinked() {
	s := stack.NewLinked[string]()
	s.Push("a")
	s.Push("b")
	fmt.Println(s)
	top, _ := s.Pop()
	fmt.Println(top, s)
	_, err := stack.New[int]().Pop()
	fmt.Println(err)
	// Output:
	// [a b]
	// b [a]
	// stack: Pop: core: container is empty
}
