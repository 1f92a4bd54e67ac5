// Package testutil contains common test utilities.
package testutil

import (
	"os"
	"testing"
)

// Cleanuper wraps the Cleanup method. It is a subset of [testing.TB], thus
// satisfied by [*testing.T] and [*testing.B].
type Cleanuper interface {
	Cleanup(func())
}

// InTempDir creates a temporary directory, changes the working directory into
// it for the duration of the test, and returns its path.
//
// Tests using this cannot be run in parallel.
func InTempDir(tb testing.TB) string {
	tb.Helper()
	dir := tb.TempDir()
	old, err := os.Getwd()
	if err != nil {
		tb.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		tb.Fatal(err)
	}
	tb.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			tb.Errorf("restoring working directory: %v", err)
		}
	})
	return dir
}
