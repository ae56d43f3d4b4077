// Package stack provides LIFO adapters over the vector and list containers.
//
//   - Stack[T]   top is the vector's back: amortized O(1) Push/Pop under a
//     geometric policy, policy-driven shrink under hysteresis
//   - Linked[T]  top is the head of a list.Singly: O(1) Push/Pop, no resizing
//
// Pop and Top on an empty stack return ErrUnderflow. String renders the
// elements bottom to top. Stacks are not safe for concurrent use.
package stack
