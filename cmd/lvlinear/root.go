package main

import (
	"fmt"
	"os"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvlinear/internal/config"
	"github.com/katalvlaran/lvlinear/internal/logging"
)

// app holds what PersistentPreRunE resolves for every subcommand.
var app struct {
	fs  afero.Fs
	cfg *viper.Viper
	log *logrus.Entry
}

// flagConfig is set by --config.
var flagConfig string

// boundFlags maps config keys to the flags that override them.
var boundFlags = map[string]string{
	config.KeyLogLevel:              "log-level",
	config.KeyLogJSON:               "log-json",
	config.KeyPolicy:                "policy",
	config.KeyPolicyStep:            "step",
	config.KeyPolicyRatio:           "ratio",
	config.KeyPolicyShrinkRatio:     "shrink-ratio",
	config.KeyPolicyShrinkThreshold: "threshold",
	config.KeyPolicyMinCapacity:     "min",
	config.KeyReportN:               "n",
}

var rootCmd = &cobra.Command{
	Use:           "lvlinear",
	Short:         "Linear containers with pluggable capacity policies",
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if app.fs == nil {
			app.fs = afero.NewOsFs()
		}
		v, err := config.Load(app.fs, flagConfig)
		if err != nil {
			return err
		}
		for key, name := range boundFlags {
			if f := cmd.Flags().Lookup(name); f != nil {
				lo.Must0(v.BindPFlag(key, f))
			}
		}
		app.cfg = v
		app.log = logging.WithRun(logging.New(v, os.Stderr))
		app.log.WithField("command", cmd.Name()).Debug("start")

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "config file (default: ./lvlinear.yaml when present)")
	rootCmd.PersistentFlags().String("log-level", "info", "panic, fatal, error, warn, info, debug or trace")
	rootCmd.PersistentFlags().Bool("log-json", false, "emit logs as JSON")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(capacityCmd)
	rootCmd.AddCommand(versionCmd)
}

// policyFlags registers the capacity policy flags on cmd.
func policyFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("policy", "geometric", "capacity policy: fixed, geometric or hysteresis")
	f.Int("step", 8, "fixed: slots added per grow")
	f.Float64("ratio", 2, "geometric/hysteresis: grow ratio")
	f.Float64("shrink-ratio", 2, "hysteresis: divisor applied on shrink")
	f.Float64("threshold", 4, "hysteresis: shrink when size < capacity/threshold")
	f.Int("min", 4, "hysteresis: capacity floor")
}

func errorf(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%s: %w", cmd.Name(), err)
}
