// Package modarith provides the plain signed-64-bit modular arithmetic
// primitives shared by the field backends and by package numtheory: the
// recursive extended Euclidean algorithm, a binary (Stein's-algorithm
// style) extended GCD kept for benchmarking, modular inversion, and
// square-and-multiply modular exponentiation. None of these depend on the
// Field abstraction - they operate directly on int64 residues, which is
// what lets both package field and package numtheory import them without
// creating an import cycle between those two packages.
package modarith

// GCD is the canonical correctness path: the recursive Euclidean
// algorithm. It returns (g, s, t) such that s*a + t*b == g == gcd(a, b).
func GCD(a, b int64) (g, s, t int64) {
	if b == 0 {
		return a, 1, 0
	}
	n := a / b
	c := a % b
	g, s2, t2 := GCD(b, c)
	return g, t2, s2 - t2*n
}

// BinaryEGCD is a binary (shift-based) extended GCD, provided for
// benchmarking against the recursive Euclidean path. It returns (g, s, t)
// such that s*a + t*b == g == gcd(a, b), for a, b >= 0 not both zero.
//
// Re-derived from HAC Algorithm 14.61 / Shoup Exercise 4.10: the source
// this was ported from had a swap bug ("a = b; b = a" followed by
// reassigning both (u, v) to the just-overwritten (s, t)), which silently
// discarded the old value of a on every swap and produced wrong Bezout
// coefficients whenever the loop actually took the swap branch. This
// version swaps (a, b) and their coefficient pairs (u, v)/(s, t)
// simultaneously via Go's multi-assignment, which is the form Shoup's
// exercise asks for.
func BinaryEGCD(a, b int64) (g, s, t int64) {
	if a == 0 {
		return b, 0, 1
	}
	if b == 0 {
		return a, 1, 0
	}

	shift := 0
	for a&1 == 0 && b&1 == 0 {
		a >>= 1
		b >>= 1
		shift++
	}

	alpha, beta := a, b
	// invariant: u*alpha + v*beta == a
	u, v := int64(1), int64(0)
	for a&1 == 0 {
		a >>= 1
		if u&1 == 0 && v&1 == 0 {
			u >>= 1
			v >>= 1
		} else {
			u = (u + beta) >> 1
			v = (v - alpha) >> 1
		}
	}

	// invariant: p*alpha + q*beta == b
	p, q := int64(0), int64(1)
	for a != b {
		if b&1 == 0 {
			b >>= 1
			if p&1 == 0 && q&1 == 0 {
				p >>= 1
				q >>= 1
			} else {
				p = (p + beta) >> 1
				q = (q - alpha) >> 1
			}
		} else if b < a {
			a, b = b, a
			u, p = p, u
			v, q = q, v
		} else {
			b -= a
			p -= u
			q -= v
		}
	}

	return a << uint(shift), u, v
}

// ModInverse returns the multiplicative inverse of k modulo prime, as a
// canonical value in [0, prime).
func ModInverse(k, prime int64) int64 {
	k2 := k % prime
	var r int64
	if k2 < 0 {
		_, _, t := GCD(prime, -k2)
		r = -t
	} else {
		_, _, t := GCD(prime, k2)
		r = t
	}
	return (prime + r%prime) % prime
}

// ModPow computes x^e mod prime by square-and-multiply, right-to-left.
// It does not canonicalize its result into [0, prime): callers that need
// a canonical residue must do so themselves, matching the naive backend's
// contract of returning possibly non-canonical intermediate values.
func ModPow(x int64, e uint32, prime int64) int64 {
	acc := int64(1)
	for e > 0 {
		if e&1 == 1 {
			acc = (acc * x) % prime
		}
		x = (x * x) % prime
		e >>= 1
	}
	return acc
}
