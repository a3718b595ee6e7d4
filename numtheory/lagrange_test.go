package numtheory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tss/field"
)

func TestLagrangeInterpolationAtZero(t *testing.T) {
	f := field.NewNaive(17)

	poly := field.EncodeSlice[int64](f, []uint32{4, 3, 2, 1})
	points := field.EncodeSlice[int64](f, []uint32{5, 6, 7, 8, 9})
	values := make([]int64, len(points))
	for i, p := range points {
		values[i] = EvaluatePolynomial[int64](f, poly, p)
	}
	require.Equal(t, []uint32{7, 4, 7, 5, 4}, field.DecodeSlice[int64](f, values))

	got, err := LagrangeInterpolationAtZero[int64](f, points, values)
	require.NoError(t, err)
	require.Equal(t, uint32(4), f.Decode(got))
}

func TestLagrangeDuplicatePoints(t *testing.T) {
	f := field.NewNaive(17)
	points := field.EncodeSlice[int64](f, []uint32{5, 5})
	values := field.EncodeSlice[int64](f, []uint32{1, 2})
	_, err := LagrangeInterpolationAtZero[int64](f, points, values)
	require.Error(t, err)
}
