package capacity

import (
	"fmt"
	"strings"
)

// FixedIncrement grows the buffer by a constant number of slots.
//
// Appending n elements from empty costs Θ(n²/step) element copies in total:
// every step-th push relocates the whole buffer. The policy never shrinks.
type FixedIncrement struct {
	step int
}

// NewFixedIncrement returns a FixedIncrement with the given step.
// Returns ErrInvalidPolicy if step ≤ 0.
func NewFixedIncrement(step int) (FixedIncrement, error) {
	if step <= 0 {
		return FixedIncrement{}, fmt.Errorf("%w: fixed step %d must be > 0", ErrInvalidPolicy, step)
	}

	return FixedIncrement{step: step}, nil
}

// Step returns the configured increment.
func (p FixedIncrement) Step() int { return p.step }

// Decide adds step to capacity until it covers size.
// Complexity: O(1).
func (p FixedIncrement) Decide(capacity, size int) Decision {
	if size <= capacity {
		return Decision{Action: NoAction, Capacity: capacity}
	}
	missing := size - capacity
	steps := (missing + p.step - 1) / p.step // ceil(missing/step)

	return Decision{Action: Grow, Capacity: capacity + steps*p.step}
}

func (p FixedIncrement) String() string {
	return fmt.Sprintf("fixed(step=%d)", p.step)
}

// Geometric multiplies the buffer length by ratio on every growth,
// giving amortized O(1) appends. It never shrinks.
type Geometric struct {
	ratio float64
}

// NewGeometric returns a Geometric policy. Returns ErrInvalidPolicy if
// ratio ≤ 1.
func NewGeometric(ratio float64) (Geometric, error) {
	if !(ratio > 1) { // also rejects NaN
		return Geometric{}, fmt.Errorf("%w: geometric ratio %g must be > 1", ErrInvalidPolicy, ratio)
	}

	return Geometric{ratio: ratio}, nil
}

// Ratio returns the growth factor.
func (p Geometric) Ratio() float64 { return p.ratio }

// Decide scales capacity by ratio until it covers size.
// Complexity: O(log_ratio(size/capacity)).
func (p Geometric) Decide(capacity, size int) Decision {
	if size <= capacity {
		return Decision{Action: NoAction, Capacity: capacity}
	}

	return Decision{Action: Grow, Capacity: scaleUp(capacity, size, p.ratio)}
}

func (p Geometric) String() string {
	return fmt.Sprintf("geometric(ratio=%g)", p.ratio)
}

// scaleUp multiplies c by ratio until c ≥ size. An empty buffer starts at one
// slot; each step advances by at least one slot so ratios close to 1 still
// terminate.
func scaleUp(c, size int, ratio float64) int {
	if c < 1 {
		c = 1
	}
	for c < size {
		next := int(float64(c) * ratio)
		if next <= c {
			next = c + 1
		}
		c = next
	}

	return c
}

// Hysteresis grows geometrically and shrinks once occupancy falls under
// 1/shrinkThreshold of the buffer.
//
// Growth uses expandRatio exactly like Geometric. Shrink triggers when
// size < capacity/shrinkThreshold (strictly: size == capacity/shrinkThreshold
// keeps the buffer) and sets capacity to
// max(capacity/shrinkRatio, minCapacity, size+1). The size+1 floor keeps the
// next push from growing straight back.
//
// shrinkThreshold > expandRatio is a hard precondition: it guarantees that
// the pop following a growth can never fall under the shrink line.
type Hysteresis struct {
	expandRatio     float64
	shrinkRatio     float64
	shrinkThreshold float64
	minCapacity     int
}

// NewHysteresis validates the parameters and returns the policy.
//
// Errors:
//   - ErrThrash         shrinkThreshold ≤ expandRatio
//   - ErrInvalidPolicy  expandRatio ≤ 1, shrinkRatio ≤ 1 or minCapacity < 0
func NewHysteresis(expandRatio, shrinkRatio, shrinkThreshold float64, minCapacity int) (Hysteresis, error) {
	switch {
	case !(expandRatio > 1):
		return Hysteresis{}, fmt.Errorf("%w: expand ratio %g must be > 1", ErrInvalidPolicy, expandRatio)
	case !(shrinkRatio > 1):
		return Hysteresis{}, fmt.Errorf("%w: shrink ratio %g must be > 1", ErrInvalidPolicy, shrinkRatio)
	case minCapacity < 0:
		return Hysteresis{}, fmt.Errorf("%w: min capacity %d must be ≥ 0", ErrInvalidPolicy, minCapacity)
	case !(shrinkThreshold > expandRatio):
		return Hysteresis{}, fmt.Errorf("%w (threshold=%g, expand=%g)", ErrThrash, shrinkThreshold, expandRatio)
	}

	return Hysteresis{
		expandRatio:     expandRatio,
		shrinkRatio:     shrinkRatio,
		shrinkThreshold: shrinkThreshold,
		minCapacity:     minCapacity,
	}, nil
}

// MinCapacity returns the floor applied on shrink.
func (p Hysteresis) MinCapacity() int { return p.minCapacity }

// Decide grows when size exceeds capacity and shrinks when occupancy drops
// strictly below capacity/shrinkThreshold.
func (p Hysteresis) Decide(capacity, size int) Decision {
	if size > capacity {
		return Decision{Action: Grow, Capacity: scaleUp(capacity, size, p.expandRatio)}
	}
	if float64(size) >= float64(capacity)/p.shrinkThreshold {
		return Decision{Action: NoAction, Capacity: capacity}
	}

	target := int(float64(capacity) / p.shrinkRatio)
	target = max(target, p.minCapacity, size+1)
	if target >= capacity {
		return Decision{Action: NoAction, Capacity: capacity}
	}

	return Decision{Action: Shrink, Capacity: target}
}

func (p Hysteresis) String() string {
	return fmt.Sprintf("hysteresis(expand=%g, shrink=%g, threshold=%g, min=%d)",
		p.expandRatio, p.shrinkRatio, p.shrinkThreshold, p.minCapacity)
}

// Default returns the policy used when a container is built without one:
// Geometric with DefaultRatio.
func Default() Policy {
	return Geometric{ratio: DefaultRatio}
}

// Parse builds the policy named by name ("fixed", "geometric" or
// "hysteresis", case-insensitive) from p.
// An empty name selects geometric.
func Parse(name string, p Params) (Policy, error) {
	var (
		pol Policy
		err error
	)
	switch strings.ToLower(strings.TrimSpace(name)) {
	case NameFixed:
		pol, err = NewFixedIncrement(p.Step)
	case NameGeometric, "":
		pol, err = NewGeometric(p.Ratio)
	case NameHysteresis:
		pol, err = NewHysteresis(p.Ratio, p.ShrinkRatio, p.ShrinkThreshold, p.MinCapacity)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	if err != nil {
		return nil, err
	}

	return pol, nil
}
