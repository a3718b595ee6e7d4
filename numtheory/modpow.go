// Package numtheory provides the generic number-theoretic primitives that
// sit above the field backends: modular exponentiation over an arbitrary
// Field[E], Horner polynomial evaluation, weighted sums, FFTs over roots
// of unity, and Newton and Lagrange interpolation.
//
// The plain int64 modular arithmetic (GCD, binary EGCD, ModInverse,
// non-generic ModPow) lives in internal/modarith and is re-exported here
// under the names this package's callers expect, so that this package can
// both depend on field.Field and expose the non-generic primitives at its
// own surface without creating an import cycle between field and
// numtheory.
package numtheory

import (
	"github.com/luxfi/tss/field"
	"github.com/luxfi/tss/internal/modarith"
)

// ModPow computes x^e mod prime for plain int64 residues.
func ModPow(x int64, e uint32, prime int64) int64 {
	return modarith.ModPow(x, e, prime)
}

// GenericModPow computes a^e within the field f, by square-and-multiply.
// It wastes one squaring on the final iteration in exchange for a simpler
// loop body, matching the non-generic ModPow's shape.
func GenericModPow[E any](f field.Field[E], a E, e uint32) E {
	x := a
	acc := f.One()
	for e > 0 {
		if e&1 == 1 {
			acc = f.Mul(acc, x)
		}
		x = f.Mul(x, x)
		e >>= 1
	}
	return acc
}

// EvaluatePolynomial evaluates the polynomial given by coefficients
// (lowest degree first) at point, via Horner's rule.
func EvaluatePolynomial[E any](f field.Field[E], coefficients []E, point E) E {
	acc := f.Zero()
	for i := len(coefficients) - 1; i >= 0; i-- {
		acc = f.Add(f.Mul(acc, point), coefficients[i])
	}
	return acc
}

// WeightedSum computes sum_i values[i] * weights[i] within f. values and
// weights must have equal length.
func WeightedSum[E any](f field.Field[E], values, weights []E) E {
	sum := f.Zero()
	for i := range values {
		sum = f.Add(sum, f.Mul(values[i], weights[i]))
	}
	return sum
}
