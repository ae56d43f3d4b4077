package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/internal/script"
)

var flagStrict bool

var runCmd = &cobra.Command{
	Use:   "run <script>",
	Short: "Replay a container script, printing the container after every step",
	Long: `Replay a container script (YAML, JSON or TOML).

A script names a container kind, an optional capacity policy and initial
capacity, and a list of steps. Failing steps are reported and the replay
continues; --strict turns any failing step into a non-zero exit.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := script.Load(app.fs, args[0])
		if err != nil {
			return errorf(cmd, err)
		}
		out := cmd.OutOrStdout()
		sum, err := script.Run(out, s, app.log)
		if err != nil {
			return errorf(cmd, err)
		}
		fmt.Fprintf(out, "%d steps, %d failed\n", sum.Steps, sum.Failed)
		if flagStrict && sum.Failed > 0 {
			return errorf(cmd, fmt.Errorf("%d failing steps", sum.Failed))
		}

		return nil
	},
}

func init() {
	runCmd.Flags().BoolVar(&flagStrict, "strict", false, "exit non-zero when a step fails")
}
