package main

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinear/capacity"
	"github.com/katalvlaran/lvlinear/internal/config"
	"github.com/katalvlaran/lvlinear/internal/logging"
	"github.com/katalvlaran/lvlinear/vector"
)

var flagPop bool

var capacityCmd = &cobra.Command{
	Use:   "capacity",
	Short: "Push n values under a capacity policy and report every reallocation",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pol, err := config.Policy(app.cfg)
		if err != nil {
			return errorf(cmd, err)
		}
		n := app.cfg.GetInt(config.KeyReportN)
		if n < 0 {
			return errorf(cmd, fmt.Errorf("--n must be ≥ 0, got %d", n))
		}
		report(cmd.OutOrStdout(), pol, n, flagPop, logging.ResizeHook(app.log))

		return nil
	},
}

func init() {
	policyFlags(capacityCmd)
	capacityCmd.Flags().Int("n", 1000, "number of values to push")
	capacityCmd.Flags().BoolVar(&flagPop, "pop", false, "pop every value afterwards")
}

// report pushes n values into a vector governed by pol (and pops them again
// when pop is set), printing every reallocation and the final counters.
func report(w io.Writer, pol capacity.Policy, n int, pop bool, hook func(vector.ResizeEvent)) vector.Stats {
	fmt.Fprintf(w, "policy %s\n", pol)
	v := vector.New[int](vector.WithPolicy(pol), vector.WithOnResize(func(e vector.ResizeEvent) {
		fmt.Fprintf(w, "  %-6s %8s -> %-8s size %s\n", e.Action,
			humanize.Comma(int64(e.From)), humanize.Comma(int64(e.To)), humanize.Comma(int64(e.Size)))
		if hook != nil {
			hook(e)
		}
	}))

	for i := 0; i < n; i++ {
		v.PushBack(i)
	}
	fmt.Fprintf(w, "pushed %s: capacity %s\n", humanize.Comma(int64(n)), humanize.Comma(int64(v.Cap())))
	if pop {
		for !v.Empty() {
			_, _ = v.PopBack()
		}
		fmt.Fprintf(w, "popped %s: capacity %s\n", humanize.Comma(int64(n)), humanize.Comma(int64(v.Cap())))
	}

	st := v.Stats()
	fmt.Fprintf(w, "reallocations %s, relocated %s, shifted %s\n",
		humanize.Comma(int64(st.Reallocations)), humanize.Comma(int64(st.Relocated)), humanize.Comma(int64(st.Shifted)))

	return st
}
