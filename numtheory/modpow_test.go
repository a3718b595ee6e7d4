package numtheory

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tss/field"
)

func TestEvaluatePolynomial(t *testing.T) {
	f := field.NewNaive(17)
	poly := []int64{1, 2, 3, 4, 5, 6}
	got := EvaluatePolynomial[int64](f, poly, 5)
	require.True(t, f.Eq(got, 4))
}

func TestGenericModPow(t *testing.T) {
	f := field.NewNaive(17)
	got := GenericModPow[int64](f, 2, 6)
	require.True(t, f.Eq(got, 13))
}
