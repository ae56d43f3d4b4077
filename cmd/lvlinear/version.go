package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// version is overridden at link time by the mage Build target.
var version = "0.1.0-dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the lvlinear version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintln(cmd.OutOrStdout(), "lvlinear", version)
	},
}
