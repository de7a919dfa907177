// Package xorshift implements small pseudo-random number generators based on
// George Marsaglia's XorShift recurrence.
//
// Every generator is a plain value: copying it forks the sequence, and two
// generators holding equal state produce equal output forever. None of them
// are safe for concurrent use, and none are suitable for cryptography.
//
// The pure XorShift generators treat the all-zero state as absorbing, so their
// checked constructors report false for a zero seed. The Xyza8 generators
// tolerate a zero state.
//
// See https://en.wikipedia.org/wiki/Xorshift
package xorshift
