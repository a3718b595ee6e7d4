// Package paramgen searches for packed-secret-sharing parameters: a prime
// p of a shape compatible with the radix-2/radix-3 FFTs packed sharing
// needs, a generator of Z_p^*, and the two roots of unity the scheme uses.
package paramgen

import (
	"fmt"
	"math/big"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/numtheory"
)

// Params holds a complete, consistent set of packed-sharing parameters.
type Params struct {
	Prime        int64
	Generator    int64
	OmegaSecrets int64
	OmegaShares  int64
}

// Generate searches for parameters supporting SecretCount secrets shared
// with privacy threshold Threshold into ShareCount shares, using a prime
// field no smaller than minSize. n = Threshold+SecretCount+1 must be a
// power of two and m = ShareCount+1 must be a power of three; Generate
// panics-free-returns ErrPreconditionViolation otherwise.
func Generate(threshold, secretCount, shareCount, minSize int) (Params, error) {
	n := threshold + secretCount + 1
	m := shareCount + 1
	if !numtheory.IsPowerOf(n, 2) {
		return Params{}, fmt.Errorf("paramgen: threshold+secretCount+1 = %d is not a power of 2: %w", n, tss.ErrPreconditionViolation)
	}
	if !numtheory.IsPowerOf(m, 3) {
		return Params{}, fmt.Errorf("paramgen: shareCount+1 = %d is not a power of 3: %w", m, tss.ErrPreconditionViolation)
	}
	required := shareCount + secretCount + threshold + 1
	if minSize < required {
		minSize = required
	}

	return findParams(minSize, n, m)
}

// findParams finds the smallest prime p >= minSize such that p-1 is
// divisible by n*m but p-1/(n*m) is not itself divisible by either n or
// m (so the n-th and m-th roots of unity are genuinely distinct orders),
// a generator of Z_p^*, and the resulting roots of unity.
func findParams(minSize, n, m int) (Params, error) {
	const scanLimit = 1 << 24

	for p := int64(minSize); p < int64(minSize)+scanLimit; p++ {
		if !checkPrimeForm(int64(minSize), int64(n), int64(m), p) {
			continue
		}
		g, ok := findGenerator(p)
		if !ok {
			continue
		}
		omegaSecrets := numtheory.ModPow(g, uint32((p-1)/int64(n)), p)
		omegaShares := numtheory.ModPow(g, uint32((p-1)/int64(m)), p)
		return Params{Prime: p, Generator: g, OmegaSecrets: omegaSecrets, OmegaShares: omegaShares}, nil
	}
	return Params{}, fmt.Errorf("paramgen: no prime of the required form found below %d: %w", minSize+scanLimit, tss.ErrParameterSearchExhausted)
}

func checkPrimeForm(minP, n, m, p int64) bool {
	if p < minP {
		return false
	}
	if !big.NewInt(p).ProbablyPrime(20) {
		return false
	}
	q := p - 1
	if q%n != 0 {
		return false
	}
	if q%m != 0 {
		return false
	}
	k := q / (n * m)
	if k%n == 0 {
		return false
	}
	if k%m == 0 {
		return false
	}
	return true
}

// factor returns the proper divisors of p-1 relevant to a generator test:
// for every prime-ish factor f up to sqrt(p-1), both f and (p-1)/f.
func factor(p int64) []int64 {
	var factors []int64
	bound := int64(1)
	for bound*bound <= p {
		bound++
	}
	for f := int64(2); f <= bound; f++ {
		if p%f == 0 {
			factors = append(factors, f, p/f)
		}
	}
	return factors
}

// findGenerator finds a generator of the multiplicative group Z_p^*, by
// testing candidates against every factor of p-1: g is a generator iff
// g^((p-1)/f) != 1 for every prime factor f of p-1.
func findGenerator(p int64) (int64, bool) {
	factors := factor(p - 1)
	for g := int64(2); g < p; g++ {
		isGenerator := true
		for _, f := range factors {
			e := (p - 1) / f
			if numtheory.ModPow(g, uint32(e), p) == 1 {
				isGenerator = false
				break
			}
		}
		if isGenerator {
			return g, true
		}
	}
	return 0, false
}
