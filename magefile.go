//go:build mage

package main

import (
	"fmt"
	"os"
	"os/exec"
	"time"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the benchgate binary with version metadata.
func Build() error {
	rev, _ := sh.Output("git", "rev-parse", "--short", "HEAD")
	if rev == "" {
		rev = "unknown"
	}
	ldflags := fmt.Sprintf(
		"-X github.com/dkoosis/benchgate/internal/version.CommitHash=%s "+
			"-X github.com/dkoosis/benchgate/internal/version.BuildDate=%s",
		rev, time.Now().UTC().Format(time.RFC3339))
	return sh.Run("go", "build", "-ldflags", ldflags, "-o", "bin/benchgate", "./cmd/benchgate")
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Lint runs go vet and, if installed, staticcheck.
func Lint() error {
	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return err
	}
	if _, err := exec.LookPath("staticcheck"); err != nil {
		fmt.Fprintln(os.Stderr, "staticcheck not found, skipping (install: go install honnef.co/go/tools/cmd/staticcheck@latest)")
		return nil
	}
	return sh.RunV("staticcheck", "./...")
}

// QA runs lint and tests.
func QA() error {
	mg.Deps(Lint)
	return Test()
}

// Clean removes build artifacts.
func Clean() error {
	return sh.Rm("bin")
}
