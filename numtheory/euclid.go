package numtheory

import "github.com/luxfi/tss/internal/modarith"

// GCD is the recursive extended Euclidean algorithm, re-exported from
// internal/modarith at this package's public surface. It returns (g, s, t)
// such that s*a + t*b == g == gcd(a, b).
func GCD(a, b int64) (g, s, t int64) {
	return modarith.GCD(a, b)
}

// BinaryEGCD is the binary (shift-based) extended GCD, kept for
// benchmarking against GCD.
func BinaryEGCD(a, b int64) (g, s, t int64) {
	return modarith.BinaryEGCD(a, b)
}

// ModInverse returns the multiplicative inverse of k modulo prime.
func ModInverse(k, prime int64) int64 {
	return modarith.ModInverse(k, prime)
}
