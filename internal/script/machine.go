// File: machine.go
// Role: per-container operation tables. Every container kind is wrapped in a
// machine mapping operation names to an arity and a closure; results are
// mo.Option[int] because most mutators return nothing.

package script

import (
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/samber/mo"

	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/list"
	"github.com/katalvlaran/lvlinear/queue"
	"github.com/katalvlaran/lvlinear/sharedstack"
	"github.com/katalvlaran/lvlinear/stack"
	"github.com/katalvlaran/lvlinear/vector"
)

// defaultFixedSize sizes the circular queue and the shared stack when the
// script gives no capacity.
const defaultFixedSize = 8

type op struct {
	arity int
	fn    func(args []int) (mo.Option[int], error)
}

type machine struct {
	ops    map[string]op
	render func() string
}

// env carries what a machine is built from.
type env struct {
	policy   capacity.Policy
	capacity int
	onResize func(vector.ResizeEvent)
}

func (e env) vectorOptions() []vector.Option {
	opts := []vector.Option{vector.WithPolicy(e.policy), vector.WithCapacity(e.capacity)}
	if e.onResize != nil {
		opts = append(opts, vector.WithOnResize(e.onResize))
	}

	return opts
}

func (e env) fixedSize() int {
	return lo.Ternary(e.capacity > 0, e.capacity, defaultFixedSize)
}

var kinds = map[string]func(env) *machine{
	"vector":         vectorMachine,
	"stack":          stackMachine,
	"stack.linked":   linkedStackMachine,
	"queue":          queueMachine,
	"queue.linked":   linkedQueueMachine,
	"queue.circular": circularQueueMachine,
	"list.singly":    func(env) *machine { return listMachine(list.NewSingly[int]()) },
	"list.doubly":    func(env) *machine { return listMachine(list.NewDoubly[int]()) },
	"list.circular":  circularListMachine,
	"sharedstack":    sharedStackMachine,
}

// Kinds returns the known container kinds, sorted.
func Kinds() []string {
	k := lo.Keys(kinds)
	slices.Sort(k)

	return k
}

func some(v int, err error) (mo.Option[int], error) {
	if err != nil {
		return mo.None[int](), err
	}

	return mo.Some(v), nil
}

func none(err error) (mo.Option[int], error) { return mo.None[int](), err }

// effect adapts an operation that returns nothing.
func effect(f func(args []int)) func([]int) (mo.Option[int], error) {
	return func(args []int) (mo.Option[int], error) {
		f(args)
		return mo.None[int](), nil
	}
}

func boolean(b bool) (mo.Option[int], error) { return mo.Some(lo.Ternary(b, 1, 0)), nil }

func vectorMachine(e env) *machine {
	v := vector.New[int](e.vectorOptions()...)

	return &machine{
		render: func() string { return fmt.Sprintf("%s cap=%d", v, v.Cap()) },
		ops: map[string]op{
			"push_back":  {1, effect(func(a []int) { v.PushBack(a[0]) })},
			"push_front": {1, effect(func(a []int) { v.PushFront(a[0]) })},
			"pop_back":   {0, func([]int) (mo.Option[int], error) { return some(v.PopBack()) }},
			"pop_front":  {0, func([]int) (mo.Option[int], error) { return some(v.PopFront()) }},
			"insert":     {2, func(a []int) (mo.Option[int], error) { return none(v.Insert(a[0], a[1])) }},
			"remove":     {1, func(a []int) (mo.Option[int], error) { return some(v.Remove(a[0])) }},
			"at":         {1, func(a []int) (mo.Option[int], error) { return some(v.At(a[0])) }},
			"set":        {2, func(a []int) (mo.Option[int], error) { return none(v.Set(a[0], a[1])) }},
			"find":       {1, func(a []int) (mo.Option[int], error) { return some(vector.Find(v, a[0]), nil) }},
			"front":      {0, func([]int) (mo.Option[int], error) { return some(v.Front()) }},
			"back":       {0, func([]int) (mo.Option[int], error) { return some(v.Back()) }},
			"len":        {0, func([]int) (mo.Option[int], error) { return some(v.Len(), nil) }},
			"cap":        {0, func([]int) (mo.Option[int], error) { return some(v.Cap(), nil) }},
			"reserve":    {1, effect(func(a []int) { v.Reserve(a[0]) })},
			"clear":      {0, effect(func([]int) { v.Clear() })},
		},
	}
}

// lifo is satisfied by stack.Stack and stack.Linked.
type lifo interface {
	Push(int)
	Pop() (int, error)
	Top() (int, error)
	Len() int
	String() string
}

func lifoOps(s lifo) map[string]op {
	return map[string]op{
		"push": {1, effect(func(a []int) { s.Push(a[0]) })},
		"pop":  {0, func([]int) (mo.Option[int], error) { return some(s.Pop()) }},
		"top":  {0, func([]int) (mo.Option[int], error) { return some(s.Top()) }},
		"len":  {0, func([]int) (mo.Option[int], error) { return some(s.Len(), nil) }},
	}
}

func stackMachine(e env) *machine {
	s := stack.New[int](e.vectorOptions()...)

	return &machine{
		ops:    lifoOps(s),
		render: func() string { return fmt.Sprintf("%s cap=%d", s, s.Cap()) },
	}
}

func linkedStackMachine(env) *machine {
	s := stack.NewLinked[int]()

	return &machine{ops: lifoOps(s), render: s.String}
}

// fifo is satisfied by queue.Queue and queue.Linked.
type fifo interface {
	Enqueue(int)
	Dequeue() (int, error)
	Front() (int, error)
	Back() (int, error)
	Len() int
	String() string
}

func fifoOps(q fifo) map[string]op {
	return map[string]op{
		"enqueue": {1, effect(func(a []int) { q.Enqueue(a[0]) })},
		"dequeue": {0, func([]int) (mo.Option[int], error) { return some(q.Dequeue()) }},
		"front":   {0, func([]int) (mo.Option[int], error) { return some(q.Front()) }},
		"back":    {0, func([]int) (mo.Option[int], error) { return some(q.Back()) }},
		"len":     {0, func([]int) (mo.Option[int], error) { return some(q.Len(), nil) }},
	}
}

func queueMachine(e env) *machine {
	q := queue.New[int](e.vectorOptions()...)

	return &machine{ops: fifoOps(q), render: q.String}
}

func linkedQueueMachine(env) *machine {
	q := queue.NewLinked[int]()

	return &machine{ops: fifoOps(q), render: q.String}
}

func circularQueueMachine(e env) *machine {
	q := queue.NewCircular[int](e.fixedSize())

	return &machine{
		render: func() string { return fmt.Sprintf("%s %d/%d", q, q.Len(), q.Cap()) },
		ops: map[string]op{
			"enqueue": {1, func(a []int) (mo.Option[int], error) { return none(q.Enqueue(a[0])) }},
			"dequeue": {0, func([]int) (mo.Option[int], error) { return some(q.Dequeue()) }},
			"front":   {0, func([]int) (mo.Option[int], error) { return some(q.Front()) }},
			"back":    {0, func([]int) (mo.Option[int], error) { return some(q.Back()) }},
			"len":     {0, func([]int) (mo.Option[int], error) { return some(q.Len(), nil) }},
			"full":    {0, func([]int) (mo.Option[int], error) { return boolean(q.Full()) }},
		},
	}
}

// linked is the rank and end API shared by every list kind.
type linked interface {
	PushFront(int) list.Position[int]
	PushBack(int) list.Position[int]
	PopFront() (int, error)
	PopBack() (int, error)
	InsertAt(rank, value int) (list.Position[int], error)
	RemoveAt(rank int) (int, error)
	At(rank int) (int, error)
	Front() (int, error)
	Back() (int, error)
	IndexFunc(func(int) bool) int
	Len() int
	Clear()
	String() string
}

func listOps(l linked) map[string]op {
	return map[string]op{
		"push_front": {1, effect(func(a []int) { l.PushFront(a[0]) })},
		"push_back":  {1, effect(func(a []int) { l.PushBack(a[0]) })},
		"pop_front":  {0, func([]int) (mo.Option[int], error) { return some(l.PopFront()) }},
		"pop_back":   {0, func([]int) (mo.Option[int], error) { return some(l.PopBack()) }},
		"insert": {2, func(a []int) (mo.Option[int], error) {
			_, err := l.InsertAt(a[0], a[1])
			return none(err)
		}},
		"remove": {1, func(a []int) (mo.Option[int], error) { return some(l.RemoveAt(a[0])) }},
		"at":     {1, func(a []int) (mo.Option[int], error) { return some(l.At(a[0])) }},
		"find":   {1, func(a []int) (mo.Option[int], error) { return some(list.Find[int](l, a[0]), nil) }},
		"front":  {0, func([]int) (mo.Option[int], error) { return some(l.Front()) }},
		"back":   {0, func([]int) (mo.Option[int], error) { return some(l.Back()) }},
		"len":    {0, func([]int) (mo.Option[int], error) { return some(l.Len(), nil) }},
		"clear":  {0, effect(func([]int) { l.Clear() })},
	}
}

func listMachine(l linked) *machine {
	return &machine{ops: listOps(l), render: l.String}
}

func circularListMachine(env) *machine {
	r := list.NewCircular[int]()
	ops := listOps(r)
	ops["rotate"] = op{1, effect(func(a []int) { r.Rotate(a[0]) })}
	// nth yields the element reached after a[1] steps of Cycle(a[0]).
	ops["nth"] = op{2, func(a []int) (mo.Option[int], error) {
		got := r.Take(a[0], a[1]+1)
		if len(got) == 0 {
			return none(fmt.Errorf("script: nth: %w", list.ErrUnderflow))
		}
		return some(got[len(got)-1], nil)
	}}

	return &machine{ops: ops, render: r.String}
}

func sharedStackMachine(e env) *machine {
	s := sharedstack.New[int](e.fixedSize())
	sides := map[string]sharedstack.Side[int]{"left": s.Left(), "right": s.Right()}
	ops := map[string]op{
		"free": {0, func([]int) (mo.Option[int], error) { return some(s.Free(), nil) }},
	}
	for name, side := range sides {
		ops["push_"+name] = op{1, func(a []int) (mo.Option[int], error) { return none(side.Push(a[0])) }}
		ops["pop_"+name] = op{0, func([]int) (mo.Option[int], error) { return some(side.Pop()) }}
		ops["top_"+name] = op{0, func([]int) (mo.Option[int], error) { return some(side.Top()) }}
		ops["len_"+name] = op{0, func([]int) (mo.Option[int], error) { return some(side.Len(), nil) }}
	}

	return &machine{ops: ops, render: s.String}
}
