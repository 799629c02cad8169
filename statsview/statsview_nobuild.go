//go:build !statsview
// +build !statsview

// Package statsview offers an optional HTTP server with runtime statistics
// for long verification runs. It is only built when the statsview build
// constraint is present; without it, launching is a no-op.
package statsview

import "io"

// Launch does nothing unless the statsview build constraint is present.
func Launch(output io.Writer) {
}

// Available returns true if a statsview is available to launch.
func Available() bool {
	return false
}
