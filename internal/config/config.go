// Package config provides the lvlinear CLI settings: a defaults table, the
// LVLINEAR_ environment bindings and an optional lvlinear.yaml file, all
// resolved through one viper instance.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlinear/capacity"
)

// AppName is the config file base name and the environment prefix.
const AppName = "lvlinear"

// Keys of every setting.
const (
	KeyLogLevel              = "log.level"
	KeyLogJSON               = "log.json"
	KeyPolicy                = "capacity.policy"
	KeyPolicyStep            = "capacity.step"
	KeyPolicyRatio           = "capacity.ratio"
	KeyPolicyShrinkRatio     = "capacity.shrink_ratio"
	KeyPolicyShrinkThreshold = "capacity.shrink_threshold"
	KeyPolicyMinCapacity     = "capacity.min"
	KeyReportN               = "report.n"
)

// EnvKeyReplacer maps a key to its environment variable suffix:
// capacity.shrink_ratio → LVLINEAR_CAPACITY_SHRINK_RATIO.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Field is one setting with its factory default.
type Field struct {
	Key         string
	Value       any
	Description string
}

// Env returns the environment variable that overrides the field.
func (f Field) Env() string {
	return strings.ToUpper(AppName + "_" + EnvKeyReplacer.Replace(f.Key))
}

// Default holds every registered field by key.
var Default = make(map[string]Field)

func init() {
	register := func(k string, v any, desc string) {
		if _, exists := Default[k]; exists {
			panic("config: duplicate key " + k)
		}
		Default[k] = Field{Key: k, Value: v, Description: desc}
	}

	d := capacity.DefaultParams()
	register(KeyLogLevel, "info", "panic, fatal, error, warn, info, debug or trace")
	register(KeyLogJSON, false, "Emit logs as JSON")
	register(KeyPolicy, capacity.NameGeometric, "Capacity policy: fixed, geometric or hysteresis")
	register(KeyPolicyStep, d.Step, "Slots added per grow by the fixed policy")
	register(KeyPolicyRatio, d.Ratio, "Grow ratio of the geometric and hysteresis policies")
	register(KeyPolicyShrinkRatio, d.ShrinkRatio, "Divisor applied to capacity on a hysteresis shrink")
	register(KeyPolicyShrinkThreshold, d.ShrinkThreshold, "Hysteresis shrinks when size < capacity/threshold")
	register(KeyPolicyMinCapacity, d.MinCapacity, "Capacity floor of the hysteresis policy")
	register(KeyReportN, 1000, "Default number of pushes for the capacity report")
}

// Load returns a viper instance holding defaults, environment overrides and,
// when present, the config file.
//
// With file == "" Load looks for lvlinear.yaml in the working directory and a
// missing file is not an error. An explicit file must exist.
func Load(fs afero.Fs, file string) (*viper.Viper, error) {
	v := viper.New()
	v.SetFs(fs)

	v.SetEnvPrefix(AppName)
	v.SetEnvKeyReplacer(EnvKeyReplacer)
	v.AutomaticEnv()

	v.SetTypeByDefaultValue(true)
	for name, field := range Default {
		v.SetDefault(name, field.Value)
	}

	if file != "" {
		v.SetConfigFile(file)
	} else {
		v.SetConfigName(AppName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if file == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("config: read %q: %w", file, err)
	}

	return v, nil
}

// Params collects the policy parameters from v.
func Params(v *viper.Viper) capacity.Params {
	return capacity.Params{
		Step:            v.GetInt(KeyPolicyStep),
		Ratio:           v.GetFloat64(KeyPolicyRatio),
		ShrinkRatio:     v.GetFloat64(KeyPolicyShrinkRatio),
		ShrinkThreshold: v.GetFloat64(KeyPolicyShrinkThreshold),
		MinCapacity:     v.GetInt(KeyPolicyMinCapacity),
	}
}

// Policy builds the configured capacity policy.
func Policy(v *viper.Viper) (capacity.Policy, error) {
	p, err := capacity.Parse(v.GetString(KeyPolicy), Params(v))
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", KeyPolicy, err)
	}

	return p, nil
}
