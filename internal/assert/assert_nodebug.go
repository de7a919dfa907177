//go:build !debug

// Package assert holds development-time checks that compile to nothing
// unless the module is built with `-tags debug`.
package assert

const Enabled = false

// That is a no-op outside debug builds.
func That(cond bool, msg string) {}
