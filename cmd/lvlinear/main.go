// Package main provides the lvlinear CLI: replay container scripts and
// report capacity-policy behaviour.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if app.log != nil {
			app.log.WithError(err).Error("command failed")
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
