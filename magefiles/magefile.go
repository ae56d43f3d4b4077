//go:build mage

// SPDX-License-Identifier: MIT

package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binLint    = "golangci-lint"
	binaryName = "lvlinear"
	binaryDir  = "bin"
	cmdDir     = "./cmd/lvlinear"
	version    = "0.1.0"
)

// Default target when mage runs without arguments.
var Default = Build

// Build compiles the lvlinear binary to bin/ with the version stamped in.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	ldflags := "-X main.version=" + version

	return sh.RunV(binGo, "build", "-ldflags", ldflags, "-o", filepath.Join(binaryDir, binaryName), cmdDir)
}

// Test runs every package test with the race detector.
func Test() error {
	return sh.RunV(binGo, "test", "-race", "./...")
}

// Bench runs the container benchmarks.
func Bench() error {
	return sh.RunV(binGo, "test", "-run", "^$", "-bench", ".", "-benchmem", "./capacity/...", "./vector/...", "./list/...", "./queue/...")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV(binLint, "run", "./...")
}

// Check runs lint and tests.
func Check() {
	mg.SerialDeps(Lint, Test)
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}
