// Package packed implements the packed (ramp) variant of Shamir secret
// sharing: sharing several secrets together at the expense of a gap
// between the privacy threshold and the reconstruction limit. The Fast
// Fourier Transform is used to keep most operations in quasilinear time
// O(n log n) in ShareCount - which is what constrains secrets and shares
// to sit on powers of, respectively, an n-th and m-th principal root of
// unity, where n is a power of 2 and m a power of 3.
package packed

import (
	"fmt"
	"io"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/field"
	"github.com/luxfi/tss/numtheory"
)

// Debug enables runtime invariant checks that are too expensive (or too
// revealing of supposedly-secret values) to run unconditionally: the
// probabilistic "first two random coefficients differ" sanity check, and
// an assertion that the share polynomial's removed leading value really
// is field-zero. Tests that want these checks should set Debug to true.
var Debug = false

// Config holds the parameters of a packed secret sharing scheme:
//
//   - Prime must be large enough to hold the secrets being shared.
//   - ShareCount must be at least SecretCount + Threshold (the
//     reconstruction limit).
//   - SecretCount + Threshold + 1 must be a power of two.
//   - ShareCount + 1 must be a power of three.
//   - OmegaSecrets must be a (SecretCount + Threshold + 1)-th principal
//     root of unity in the field.
//   - OmegaShares must be a (ShareCount + 1)-th principal root of unity
//     in the field.
//
// Package paramgen provides a search procedure for finding parameters
// that satisfy these constraints.
type Config[E any] struct {
	// Threshold is the privacy threshold: the maximum number of shares
	// that can be known without exposing the secrets.
	Threshold int
	// ShareCount is the number of shares to split the secrets into.
	ShareCount int
	// SecretCount is the number of secrets shared together.
	SecretCount int

	// Field is the finite field computation takes place in.
	Field field.Field[E]
	// OmegaSecrets is an m-th principal root of unity, m = SecretCount +
	// Threshold + 1, a power of two.
	OmegaSecrets E
	// OmegaShares is an n-th principal root of unity, n = ShareCount + 1,
	// a power of three.
	OmegaShares E
}

// NewPackedConfig validates and constructs a Config, checking every
// invariant documented on Config: the power-of-two/power-of-three share
// shaping, ShareCount sitting at or above the reconstruction limit, and
// OmegaSecrets/OmegaShares actually being principal roots of unity of the
// required orders. Package paramgen computes parameters that pass these
// checks; NewPackedConfig is what guards against passing it mismatched
// ones by hand.
func NewPackedConfig[E any](threshold, secretCount, shareCount int, f field.Field[E], omegaSecrets, omegaShares E) (Config[E], error) {
	m := threshold + secretCount + 1
	n := shareCount + 1
	if !numtheory.IsPowerOf(m, 2) {
		return Config[E]{}, fmt.Errorf("packed: threshold+secretCount+1 = %d is not a power of 2: %w", m, tss.ErrPreconditionViolation)
	}
	if !numtheory.IsPowerOf(n, 3) {
		return Config[E]{}, fmt.Errorf("packed: shareCount+1 = %d is not a power of 3: %w", n, tss.ErrPreconditionViolation)
	}
	if shareCount < threshold+secretCount {
		return Config[E]{}, fmt.Errorf("packed: shareCount %d is below threshold+secretCount (%d): %w", shareCount, threshold+secretCount, tss.ErrPreconditionViolation)
	}
	if !isPrimitiveRootOfUnity(f, omegaSecrets, m, 2) {
		return Config[E]{}, fmt.Errorf("packed: omegaSecrets is not a primitive %d-th root of unity: %w", m, tss.ErrRootOfUnityInvalid)
	}
	if !isPrimitiveRootOfUnity(f, omegaShares, n, 3) {
		return Config[E]{}, fmt.Errorf("packed: omegaShares is not a primitive %d-th root of unity: %w", n, tss.ErrRootOfUnityInvalid)
	}
	return Config[E]{
		Threshold:    threshold,
		ShareCount:   shareCount,
		SecretCount:  secretCount,
		Field:        f,
		OmegaSecrets: omegaSecrets,
		OmegaShares:  omegaShares,
	}, nil
}

// isPrimitiveRootOfUnity reports whether omega is a principal order-th
// root of unity, given that order is already known (by IsPowerOf) to be
// base^k for some k: the only prime factor of such an order is base
// itself, so primitivity reduces to the two checks below rather than a
// general factorization.
func isPrimitiveRootOfUnity[E any](f field.Field[E], omega E, order, base int) bool {
	if !f.Eq(f.Pow(omega, uint32(order)), f.One()) {
		return false
	}
	return !f.Eq(f.Pow(omega, uint32(order/base)), f.One())
}

// ReconstructLimit returns the minimum number of shares required to
// reconstruct the secrets: always Threshold + SecretCount.
func (c Config[E]) ReconstructLimit() int {
	return c.Threshold + c.SecretCount
}

// Share generates ShareCount shares for secrets, sampling the scheme's
// Threshold random coefficients from rng. len(secrets) must equal
// SecretCount.
func (c Config[E]) Share(secrets []E, rng io.Reader) ([]E, error) {
	if len(secrets) != c.SecretCount {
		return nil, fmt.Errorf("packed: got %d secrets, want %d: %w", len(secrets), c.SecretCount, tss.ErrPreconditionViolation)
	}
	poly, err := c.samplePolynomial(secrets, rng)
	if err != nil {
		return nil, err
	}
	return c.sharesFromPolynomial(poly)
}

// DeterministicShare generates shares from an explicit (secrets ||
// randomness) vector, skipping RNG sampling entirely. It exists to make
// the scheme's output reproducible in tests, and to let a caller supply
// its own entropy source outside the io.Reader contract (e.g. values
// derived from another protocol run).
func (c Config[E]) DeterministicShare(secretsAndRandomness []E) ([]E, error) {
	if len(secretsAndRandomness) != c.ReconstructLimit() {
		return nil, fmt.Errorf("packed: got %d secrets+randomness, want %d: %w", len(secretsAndRandomness), c.ReconstructLimit(), tss.ErrPreconditionViolation)
	}
	values := make([]E, 0, c.ReconstructLimit()+1)
	values = append(values, c.Field.Zero())
	values = append(values, secretsAndRandomness...)
	if err := numtheory.FFT2Inverse(c.Field, values, c.OmegaSecrets); err != nil {
		return nil, fmt.Errorf("packed: %w", err)
	}
	return c.sharesFromPolynomial(values)
}

func (c Config[E]) samplePolynomial(secrets []E, rng io.Reader) ([]E, error) {
	randomness, err := c.Field.Sample(c.Threshold, rng)
	if err != nil {
		return nil, fmt.Errorf("packed: %w", err)
	}
	if Debug && c.Threshold >= 2 && c.Field.Eq(randomness[0], randomness[1]) {
		return nil, fmt.Errorf("packed: degenerate randomness draw (first two coefficients equal)")
	}
	return c.recoverPolynomial(secrets, randomness)
}

func (c Config[E]) recoverPolynomial(secrets, randomness []E) ([]E, error) {
	values := make([]E, 0, c.ReconstructLimit()+1)
	values = append(values, c.Field.Zero())
	values = append(values, secrets...)
	values = append(values, randomness...)
	if err := numtheory.FFT2Inverse(c.Field, values, c.OmegaSecrets); err != nil {
		return nil, fmt.Errorf("packed: %w", err)
	}
	return values, nil
}

// sharesFromPolynomial extends coefficients to ShareCount+1 points with
// zeroes, evaluates via the radix-3 FFT, and drops the leading share
// (which always corresponds to the fixed zero point and is not a usable
// share).
func (c Config[E]) sharesFromPolynomial(coefficients []E) ([]E, error) {
	poly := make([]E, c.ShareCount+1)
	copy(poly, coefficients)
	for i := len(coefficients); i < len(poly); i++ {
		poly[i] = c.Field.Zero()
	}

	numtheory.FFT3(c.Field, poly, c.OmegaShares)

	if Debug && !c.Field.Eq(poly[0], c.Field.Zero()) {
		return nil, fmt.Errorf("packed: leading share is not zero, parameters are inconsistent")
	}
	return poly[1:], nil
}

// Reconstruct recovers the SecretCount secrets from a large enough subset
// of shares. indices are the zero-based ranks of the known shares as
// produced by Share; shares are the corresponding values. Both slices
// must have equal length, at least ReconstructLimit().
//
// When len(shares) == ShareCount, reconstruction uses the inverse radix-3
// and forward radix-2 FFTs and runs in quasilinear time; otherwise it
// falls back to general Newton interpolation.
func (c Config[E]) Reconstruct(indices []int, shares []E) ([]E, error) {
	coefficients, err := c.reconstructCoefficients(indices, shares)
	if err != nil {
		return nil, err
	}
	secrets := coefficients[1:]
	if len(secrets) > c.SecretCount {
		secrets = secrets[:c.SecretCount]
	}
	return secrets, nil
}

// FullyReconstruct recovers the full coefficient vector (the fixed leading
// zero dropped, but the random padding coefficients retained) rather than
// just the SecretCount secrets that Reconstruct returns.
func (c Config[E]) FullyReconstruct(indices []int, shares []E) ([]E, error) {
	coefficients, err := c.reconstructCoefficients(indices, shares)
	if err != nil {
		return nil, err
	}
	return coefficients[1:], nil
}

func (c Config[E]) reconstructCoefficients(indices []int, shares []E) ([]E, error) {
	if len(shares) != len(indices) {
		return nil, fmt.Errorf("packed: %d indices but %d shares: %w", len(indices), len(shares), tss.ErrPreconditionViolation)
	}
	if len(shares) < c.ReconstructLimit() {
		return nil, fmt.Errorf("packed: %d shares is below the reconstruction limit %d: %w", len(shares), c.ReconstructLimit(), tss.ErrPreconditionViolation)
	}

	if len(shares) == c.ShareCount {
		return c.reconstructViaFFT(shares)
	}
	return c.reconstructViaNewton(indices, shares)
}

func (c Config[E]) reconstructViaFFT(shares []E) ([]E, error) {
	values := make([]E, 0, len(shares)+1)
	values = append(values, c.Field.Zero())
	values = append(values, shares...)

	if err := numtheory.FFT3Inverse(c.Field, values, c.OmegaShares); err != nil {
		return nil, fmt.Errorf("packed: %w", err)
	}

	coefficients := make([]E, c.ReconstructLimit()+1)
	copy(coefficients, values[:c.ReconstructLimit()+1])

	numtheory.FFT2(c.Field, coefficients, c.OmegaSecrets)
	return coefficients, nil
}

func (c Config[E]) reconstructViaNewton(indices []int, shares []E) ([]E, error) {
	points := make([]E, 0, len(indices)+1)
	points = append(points, c.Field.One())
	for _, idx := range indices {
		points = append(points, c.Field.Pow(c.OmegaShares, uint32(idx+1)))
	}

	values := make([]E, 0, len(shares)+1)
	values = append(values, c.Field.Zero())
	values = append(values, shares...)

	poly, err := numtheory.NewNewtonPolynomial(c.Field, points, values)
	if err != nil {
		return nil, fmt.Errorf("packed: %w", err)
	}

	coefficients := make([]E, c.ReconstructLimit()+1)
	coefficients[0] = c.Field.Zero()
	for e := 1; e <= c.ReconstructLimit(); e++ {
		point := c.Field.Pow(c.OmegaSecrets, uint32(e))
		coefficients[e] = numtheory.Evaluate(c.Field, poly, point)
	}
	return coefficients, nil
}
