package packed

import (
	"fmt"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/field"
)

// AddShares combines two share vectors pointwise under field addition,
// producing the shares of the secrets' pointwise sum - the additive
// homomorphism the packed scheme gets for free from Shamir sharing being
// linear. Both vectors must have the same length.
func AddShares[E any](f field.Field[E], a, b []E) ([]E, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("packed: share vectors of length %d and %d: %w", len(a), len(b), tss.ErrPreconditionViolation)
	}
	out := make([]E, len(a))
	for i := range a {
		out[i] = f.Add(a[i], b[i])
	}
	return out, nil
}

// MulShares combines two share vectors pointwise under field
// multiplication, producing the shares of the secrets' pointwise product -
// valid at double the reconstruction limit, since multiplying two degree-d
// polynomials yields a degree-2d polynomial.
func MulShares[E any](f field.Field[E], a, b []E) ([]E, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("packed: share vectors of length %d and %d: %w", len(a), len(b), tss.ErrPreconditionViolation)
	}
	out := make([]E, len(a))
	for i := range a {
		out[i] = f.Mul(a[i], b[i])
	}
	return out, nil
}
