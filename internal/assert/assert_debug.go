//go:build debug

package assert

// Enabled is true when built with the debug tag.
const Enabled = true

// That panics with msg if cond is false.
func That(cond bool, msg string) {
	if !cond {
		panic("assertion failed: " + msg)
	}
}
