package numtheory

import (
	"errors"
	"fmt"

	"github.com/luxfi/tss"
	"github.com/luxfi/tss/field"
)

// NewtonPolynomial holds the points and divided-difference coefficients
// produced by NewNewtonPolynomial, so that repeated evaluation at new
// points doesn't redo the O(n^2) coefficient computation.
type NewtonPolynomial[E any] struct {
	points       []E
	coefficients []E
}

// NewNewtonPolynomial computes the Newton divided-difference coefficients
// for the polynomial that interpolates (points[i], values[i]) for all i.
// It fails with tss.ErrDuplicatePoints if points contains a repeat.
func NewNewtonPolynomial[E any](f field.Field[E], points, values []E) (NewtonPolynomial[E], error) {
	coefficients, err := computeNewtonCoefficients(f, points, values)
	if err != nil {
		return NewtonPolynomial[E]{}, err
	}
	pts := make([]E, len(points))
	copy(pts, points)
	return NewtonPolynomial[E]{points: pts, coefficients: coefficients}, nil
}

// Evaluate evaluates poly at point: it builds the Newton basis products
// prod_{j<i} (point - x_j) and returns their sum weighted by the
// coefficients.
func Evaluate[E any](f field.Field[E], poly NewtonPolynomial[E], point E) E {
	newtonPoints := make([]E, len(poly.points))
	newtonPoints[0] = f.One()
	for i := 0; i < len(poly.points)-1; i++ {
		diff := f.Sub(point, poly.points[i])
		newtonPoints[i+1] = f.Mul(newtonPoints[i], diff)
	}

	acc := f.Zero()
	for i, coef := range poly.coefficients {
		acc = f.Add(acc, f.Mul(coef, newtonPoints[i]))
	}
	return acc
}

// computeNewtonCoefficients fills in the divided-difference table via the
// standard O(n^2) recurrence, keeping only the diagonal entries it needs
// rather than materializing the full triangular table.
func computeNewtonCoefficients[E any](f field.Field[E], points, values []E) ([]E, error) {
	store := make([]E, len(values))
	copy(store, values)

	for j := 1; j < len(store); j++ {
		for i := len(store) - 1; i >= j; i-- {
			pointDiff := f.Sub(points[i], points[i-j])
			pointDiffInv, err := f.Inv(pointDiff)
			if err != nil {
				if errors.Is(err, tss.ErrInverseOfZero) {
					return nil, fmt.Errorf("numtheory: %w", tss.ErrDuplicatePoints)
				}
				return nil, err
			}
			coefDiff := f.Sub(store[i], store[i-1])
			store[i] = f.Mul(coefDiff, pointDiffInv)
		}
	}
	return store, nil
}
