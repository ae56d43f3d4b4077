// Package script loads and replays container scripts: a YAML document naming
// a container kind, its capacity policy and a list of operations. Every step
// is printed with its result and the container rendering that follows it.
//
// Example document:
//
//	container: vector
//	policy:
//	  name: hysteresis
//	  ratio: 2
//	  threshold: 4
//	capacity: 2
//	steps:
//	  - op: push_back
//	    args: [1]
//	  - op: remove
//	    args: [0]
package script

import (
	"errors"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlinear/capacity"
)

// Script errors.
var (
	ErrUnknownContainer = errors.New("script: unknown container")
	ErrUnknownOp        = errors.New("script: unknown operation")
	ErrArity            = errors.New("script: wrong number of arguments")
)

// Step is one operation with its integer arguments.
type Step struct {
	Op   string `mapstructure:"op"`
	Args []int  `mapstructure:"args"`
}

// String renders the step as "op(a, b)".
func (s Step) String() string {
	args := lo.Map(s.Args, func(a int, _ int) string { return fmt.Sprint(a) })

	return s.Op + "(" + strings.Join(args, ", ") + ")"
}

// PolicyConfig names a capacity policy. Absent fields take the capacity
// package defaults; present fields are passed on unchanged, so an invalid
// value is rejected by Validate rather than replaced.
type PolicyConfig struct {
	Name        string   `mapstructure:"name"`
	Step        *int     `mapstructure:"step"`
	Ratio       *float64 `mapstructure:"ratio"`
	ShrinkRatio *float64 `mapstructure:"shrink_ratio"`
	Threshold   *float64 `mapstructure:"threshold"`
	Min         *int     `mapstructure:"min"`
}

// Params fills the absent fields of p from capacity.DefaultParams.
func (p PolicyConfig) Params() capacity.Params {
	d := capacity.DefaultParams()

	return capacity.Params{
		Step:            lo.FromPtrOr(p.Step, d.Step),
		Ratio:           lo.FromPtrOr(p.Ratio, d.Ratio),
		ShrinkRatio:     lo.FromPtrOr(p.ShrinkRatio, d.ShrinkRatio),
		ShrinkThreshold: lo.FromPtrOr(p.Threshold, d.ShrinkThreshold),
		MinCapacity:     lo.FromPtrOr(p.Min, d.MinCapacity),
	}
}

// Policy builds the named policy.
func (p PolicyConfig) Policy() (capacity.Policy, error) {
	return capacity.Parse(p.Name, p.Params())
}

// Script is a decoded script document.
type Script struct {
	Name      string       `mapstructure:"name"`
	Container string       `mapstructure:"container"`
	Policy    PolicyConfig `mapstructure:"policy"`
	Capacity  int          `mapstructure:"capacity"`
	Steps     []Step       `mapstructure:"steps"`
}

// Load reads a script from path on fs. The format follows the file
// extension (yaml, json, toml). The container kind and every operation are
// validated before anything runs.
func Load(fs afero.Fs, path string) (*Script, error) {
	v := viper.New()
	v.SetFs(fs)
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("script: read %q: %w", path, err)
	}

	var s Script
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("script: decode %q: %w", path, err)
	}
	if s.Name == "" {
		s.Name = path
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &s, nil
}

// Validate checks the container kind, the policy and every step's
// operation and arity.
func (s *Script) Validate() error {
	build, ok := kinds[strings.ToLower(s.Container)]
	if !ok {
		return fmt.Errorf("%w: %q (known: %s)", ErrUnknownContainer, s.Container, strings.Join(Kinds(), ", "))
	}
	if _, err := s.Policy.Policy(); err != nil {
		return fmt.Errorf("script: policy: %w", err)
	}
	if s.Capacity < 0 {
		return fmt.Errorf("script: capacity %d must be ≥ 0", s.Capacity)
	}
	m := build(env{policy: capacity.Default()})
	for i, st := range s.Steps {
		o, ok := m.ops[st.Op]
		if !ok {
			return fmt.Errorf("step %d: %w: %q for %s", i+1, ErrUnknownOp, st.Op, s.Container)
		}
		if len(st.Args) != o.arity {
			return fmt.Errorf("step %d: %s: %w: want %d, got %d", i+1, st.Op, ErrArity, o.arity, len(st.Args))
		}
	}

	return nil
}
