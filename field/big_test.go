package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBigFieldIdentities(t *testing.T) {
	f := NewBig(big.NewInt(1613))
	a, b := f.Encode(1234), f.Encode(166)

	require.True(t, f.Eq(f.Add(a, f.Zero()), a))
	require.True(t, f.Eq(f.Mul(a, f.One()), a))
	require.True(t, f.Eq(f.Sub(a, a), f.Zero()))
	require.True(t, f.Eq(f.Add(a, b), f.Add(b, a)))
	require.True(t, f.Eq(f.Mul(a, b), f.Mul(b, a)))
}

func TestBigFieldInverse(t *testing.T) {
	f := NewBig(big.NewInt(1613))
	a := f.Encode(94)
	inv, err := f.Inv(a)
	require.NoError(t, err)
	require.True(t, f.Eq(f.Mul(a, inv), f.One()))

	_, err = f.Inv(f.Zero())
	require.Error(t, err)
}

func TestBigFieldEncodeDecodeRoundTrip(t *testing.T) {
	f := NewBig(big.NewInt(41))
	for _, x := range []uint32{0, 1, 17, 40} {
		require.Equal(t, x, f.Decode(f.Encode(x)))
	}
}

func TestBigFieldSample(t *testing.T) {
	f := NewBig(big.NewInt(1613))
	values, err := f.Sample(50, rand.Reader)
	require.NoError(t, err)
	require.Len(t, values, 50)
	for _, v := range values {
		require.True(t, v.Sign() >= 0 && v.Cmp(big.NewInt(1613)) < 0)
	}
}
