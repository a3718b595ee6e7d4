// Package tss is the root of a threshold secret-sharing library: classical
// (t, n) Shamir sharing and its packed (ramp) generalization, built on a set
// of interchangeable prime-field backends and the number-theoretic
// primitives (FFT, Newton and Lagrange interpolation) needed to run the
// packed variant in quasilinear time.
//
// The field backends live in package field, the number theory in package
// numtheory, classical sharing in package shamir, and packed/ramp sharing
// in package packed. Parameter search is the optional package paramgen.
package tss

import "errors"

// Error taxonomy shared by every package in this module. Call sites wrap
// these with fmt.Errorf("%s: %w", ...) to add context; callers can still
// errors.Is against the sentinel.
var (
	// ErrPreconditionViolation covers wrong input lengths, share counts
	// below the reconstruction limit, and configurations whose sizes are
	// not the radix power the scheme requires.
	ErrPreconditionViolation = errors.New("tss: precondition violation")

	// ErrInverseOfZero is returned when a modular inverse is requested for
	// the additive identity.
	ErrInverseOfZero = errors.New("tss: inverse of zero")

	// ErrDuplicatePoints is returned when interpolation is attempted over
	// a multiset of x-coordinates containing a repeat.
	ErrDuplicatePoints = errors.New("tss: duplicate interpolation points")

	// ErrRootOfUnityInvalid is returned when a supplied root of unity is
	// not primitive of the required order.
	ErrRootOfUnityInvalid = errors.New("tss: root of unity is not primitive of the required order")

	// ErrParameterSearchExhausted is returned when parameter generation
	// finds no matching prime within the scanned range.
	ErrParameterSearchExhausted = errors.New("tss: parameter search exhausted scan range")

	// ErrRngFailure is returned when the caller-supplied randomness source
	// fails to produce bytes.
	ErrRngFailure = errors.New("tss: randomness source failed")
)
