package field

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNaiveFieldIdentities(t *testing.T) {
	f := NewNaive(17)
	a, b := int64(5), int64(11)

	require.True(t, f.Eq(f.Add(a, f.Zero()), a))
	require.True(t, f.Eq(f.Mul(a, f.One()), a))
	require.True(t, f.Eq(f.Sub(a, a), f.Zero()))
	require.True(t, f.Eq(f.Add(a, b), f.Add(b, a)))
	require.True(t, f.Eq(f.Mul(a, b), f.Mul(b, a)))
}

func TestNaiveFieldInverse(t *testing.T) {
	f := NewNaive(17)
	inv, err := f.Inv(5)
	require.NoError(t, err)
	require.True(t, f.Eq(f.Mul(5, inv), f.One()))

	_, err = f.Inv(0)
	require.Error(t, err)
}

func TestNaiveFieldPow(t *testing.T) {
	f := NewNaive(17)
	require.True(t, f.Eq(f.Pow(2, 0), 1))
	require.True(t, f.Eq(f.Pow(2, 3), 8))
	require.True(t, f.Eq(f.Pow(2, 6), 13))
}

func TestNaiveFieldEncodeDecodeRoundTrip(t *testing.T) {
	f := NewNaive(41)
	for _, x := range []uint32{0, 1, 17, 40} {
		require.Equal(t, x, f.Decode(f.Encode(x)))
	}
}

func TestNaiveFieldSample(t *testing.T) {
	f := NewNaive(1613)
	values, err := f.Sample(100, rand.Reader)
	require.NoError(t, err)
	require.Len(t, values, 100)
	for _, v := range values {
		require.True(t, v >= 0 && v < 1613)
	}
}

func TestPositivise(t *testing.T) {
	got := Positivise([]int64{-1, 0, 16, 17}, 17)
	require.Equal(t, []int64{16, 0, 16, 0}, got)
}
