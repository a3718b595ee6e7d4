// Package shamir implements standard (t, n) Shamir secret sharing for a
// single secret: https://en.wikipedia.org/wiki/Shamir%27s_Secret_Sharing.
package shamir

import (
	"fmt"
	"io"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/field"
	"github.com/luxfi/tss/numtheory"
)

// Config holds the parameters of a Shamir scheme: the privacy threshold,
// the total number of shares, and the field computation takes place in.
//
// There are very few constraints beyond the obvious ones: the field's
// prime must be large enough to hold the secrets being shared, and
// ShareCount must be at least ReconstructLimit().
type Config[E any] struct {
	// Threshold is the maximum number of shares that can be known
	// without exposing the secret.
	Threshold int
	// ShareCount is the number of shares to split the secret into.
	ShareCount int
	// Field is the finite field computation takes place in.
	Field field.Field[E]
}

// NewShamirConfig validates and constructs a Config: ShareCount must be
// at least ReconstructLimit() (Threshold + 1), or reconstruction could
// never succeed for any subset of shares.
func NewShamirConfig[E any](threshold, shareCount int, f field.Field[E]) (Config[E], error) {
	if shareCount < threshold+1 {
		return Config[E]{}, fmt.Errorf("shamir: shareCount %d is below threshold+1 (%d): %w", shareCount, threshold+1, tss.ErrPreconditionViolation)
	}
	return Config[E]{Threshold: threshold, ShareCount: shareCount, Field: f}, nil
}

// ReconstructLimit returns the minimum number of shares required to
// reconstruct the secret: always Threshold + 1.
func (c Config[E]) ReconstructLimit() int {
	return c.Threshold + 1
}

// Share generates ShareCount shares from secret, sampling the polynomial's
// remaining Threshold coefficients from rng.
func (c Config[E]) Share(secret E, rng io.Reader) ([]E, error) {
	poly, err := c.samplePolynomial(secret, rng)
	if err != nil {
		return nil, err
	}
	return c.evaluatePolynomial(poly), nil
}

func (c Config[E]) samplePolynomial(zeroValue E, rng io.Reader) ([]E, error) {
	coefficients := make([]E, 0, c.Threshold+1)
	coefficients = append(coefficients, zeroValue)
	random, err := c.Field.Sample(c.Threshold, rng)
	if err != nil {
		return nil, fmt.Errorf("shamir: %w", err)
	}
	coefficients = append(coefficients, random...)
	return coefficients, nil
}

func (c Config[E]) evaluatePolynomial(coefficients []E) []E {
	shares := make([]E, c.ShareCount)
	for i := 0; i < c.ShareCount; i++ {
		point := c.Field.Encode(uint32(i + 1))
		shares[i] = numtheory.EvaluatePolynomial(c.Field, coefficients, point)
	}
	return shares
}

// Reconstruct recovers the secret from a large enough subset of shares.
// indices are the zero-based ranks of the known shares as produced by
// Share; shares are the corresponding values. Both slices must have equal
// length, at least ReconstructLimit().
func (c Config[E]) Reconstruct(indices []int, shares []E) (E, error) {
	var zero E
	if len(indices) != len(shares) {
		return zero, fmt.Errorf("shamir: %d indices but %d shares: %w", len(indices), len(shares), tss.ErrPreconditionViolation)
	}
	if len(shares) < c.ReconstructLimit() {
		return zero, fmt.Errorf("shamir: %d shares is below the reconstruction limit %d: %w", len(shares), c.ReconstructLimit(), tss.ErrPreconditionViolation)
	}

	points := make([]E, len(indices))
	for i, idx := range indices {
		points[i] = c.Field.Add(c.Field.Encode(uint32(idx)), c.Field.One())
	}

	secret, err := numtheory.LagrangeInterpolationAtZero(c.Field, points, shares)
	if err != nil {
		return zero, fmt.Errorf("shamir: %w", err)
	}
	return secret, nil
}
