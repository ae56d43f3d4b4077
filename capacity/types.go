// Package capacity defines the capacity-management policies consumed by
// vector.Vector, the Action/Decision pair they return, and sentinel errors.
package capacity

import (
	"fmt"

	"github.com/katalvlaran/lvlinear/core"
)

// Action is the structural change a Policy asks its container to perform.
type Action int

const (
	NoAction Action = iota // NoAction: keep the current buffer.
	Grow                   // Grow: reallocate to a larger buffer.
	Shrink                 // Shrink: reallocate to a smaller buffer.
)

// String returns the lower-case action name used in logs and reports.
func (a Action) String() string {
	switch a {
	case NoAction:
		return "none"
	case Grow:
		return "grow"
	case Shrink:
		return "shrink"
	default:
		return fmt.Sprintf("action(%d)", int(a))
	}
}

// Decision is the result of Policy.Decide.
// Capacity is the buffer length the container must end up with; for
// NoAction it equals the capacity passed in.
type Decision struct {
	Action   Action
	Capacity int
}

// Policy maps (current capacity, required size) to a Decision.
// Implementations are stateless values and safe to share between containers.
//
// Contract:
//   - size > capacity ⇒ Action == Grow and Capacity ≥ size.
//   - Action == Shrink ⇒ size ≤ Capacity < capacity and Capacity ≥ the
//     policy's minimum capacity.
//   - otherwise Action == NoAction and Capacity == capacity.
type Policy interface {
	Decide(capacity, size int) Decision
	fmt.Stringer
}

// Sentinel errors for policy construction. All of them match
// core.ErrInvalidPolicy under errors.Is.
var (
	// ErrInvalidPolicy re-exports core.ErrInvalidPolicy.
	ErrInvalidPolicy = core.ErrInvalidPolicy

	// ErrThrash is returned by NewHysteresis when shrinkThreshold ≤ expandRatio:
	// a push followed by a pop at the growth boundary would grow and then
	// shrink forever.
	ErrThrash = fmt.Errorf("%w: shrink threshold must exceed expand ratio", core.ErrInvalidPolicy)

	// ErrUnknownPolicy is returned by Parse for an unrecognised policy name.
	ErrUnknownPolicy = fmt.Errorf("%w: unknown policy name", core.ErrInvalidPolicy)
)

// Policy names understood by Parse.
const (
	NameFixed      = "fixed"
	NameGeometric  = "geometric"
	NameHysteresis = "hysteresis"
)

// Defaults used by Default and DefaultParams.
const (
	DefaultStep            = 8
	DefaultRatio           = 2.0
	DefaultShrinkRatio     = 2.0
	DefaultShrinkThreshold = 4.0
	DefaultMinCapacity     = 4
)

// Params carries the numeric parameters of every policy kind. Parse reads
// only the fields relevant to the requested kind.
type Params struct {
	Step            int     // FixedIncrement step
	Ratio           float64 // Geometric ratio, Hysteresis expand ratio
	ShrinkRatio     float64 // Hysteresis divisor applied on shrink
	ShrinkThreshold float64 // Hysteresis: shrink when size < capacity/ShrinkThreshold
	MinCapacity     int     // Hysteresis floor on shrink
}

// DefaultParams returns Params populated with the package defaults.
func DefaultParams() Params {
	return Params{
		Step:            DefaultStep,
		Ratio:           DefaultRatio,
		ShrinkRatio:     DefaultShrinkRatio,
		ShrinkThreshold: DefaultShrinkThreshold,
		MinCapacity:     DefaultMinCapacity,
	}
}
