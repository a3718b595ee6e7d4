package numtheory

import (
	"errors"
	"fmt"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/field"
)

// LagrangeConstants holds the Lagrange interpolation weights for a fixed
// evaluation point and a fixed set of x-coordinates, so the same weights
// can be reused against many different y-values sharing one set of
// x-coordinates.
type LagrangeConstants[E any] struct {
	constants []E
}

// NewLagrangeConstants computes the Lagrange basis weights for evaluating
// at point, given the x-coordinates in points.
func NewLagrangeConstants[E any](f field.Field[E], point E, points []E) (LagrangeConstants[E], error) {
	constants := make([]E, len(points))
	for i := range points {
		xi := points[i]
		num := f.One()
		denom := f.One()
		for j := range points {
			if j == i {
				continue
			}
			xj := points[j]
			num = f.Mul(num, f.Sub(xj, point))
			denom = f.Mul(denom, f.Sub(xj, xi))
		}
		denomInv, err := f.Inv(denom)
		if err != nil {
			if errors.Is(err, tss.ErrInverseOfZero) {
				return LagrangeConstants[E]{}, fmt.Errorf("numtheory: %w", tss.ErrDuplicatePoints)
			}
			return LagrangeConstants[E]{}, err
		}
		constants[i] = f.Mul(num, denomInv)
	}
	return LagrangeConstants[E]{constants: constants}, nil
}

// Interpolate computes the weighted sum of values against the precomputed
// constants. Care must be taken to pass the same field used to compute the
// constants; values must have the same length as the constants.
func (c LagrangeConstants[E]) Interpolate(f field.Field[E], values []E) E {
	return WeightedSum(f, values, c.constants)
}

// LagrangeInterpolationAtPoint interpolates the polynomial defined by
// (points[i], values[i]) and evaluates it at point.
func LagrangeInterpolationAtPoint[E any](f field.Field[E], point E, points, values []E) (E, error) {
	constants, err := NewLagrangeConstants(f, point, points)
	if err != nil {
		var zero E
		return zero, err
	}
	return constants.Interpolate(f, values), nil
}

// LagrangeInterpolationAtZero interpolates the polynomial defined by
// (points[i], values[i]) and evaluates it at the field's zero element -
// the standard way a Shamir-shared secret is recovered.
func LagrangeInterpolationAtZero[E any](f field.Field[E], points, values []E) (E, error) {
	return LagrangeInterpolationAtPoint(f, f.Zero(), points, values)
}
