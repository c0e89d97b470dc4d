//go:build mage

package main

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/magefile/mage/mg"
)

// Parse builds the binary and runs the extraction stage with defaults.
func Parse() error {
	mg.Deps(Build)
	return runBinary("parse")
}

// Analyze builds the binary and renders the parity report with defaults.
func Analyze() error {
	mg.Deps(Build)
	return runBinary("analyze")
}

// Pipeline runs parse then analyze.
func Pipeline() error {
	mg.SerialDeps(Parse, Analyze)
	return nil
}

func runBinary(args ...string) error {
	cmd := exec.Command(filepath.Join(binDir, binName), args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
