package packed

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/luxfi/tss/field"
)

func pss4_8_3(f field.Naive) Config[int64] {
	cfg, err := NewPackedConfig[int64](4, 3, 8, f, f.Encode(354), f.Encode(150))
	if err != nil {
		panic(err)
	}
	return cfg
}

func pss4_26_3(f field.Naive) Config[int64] {
	cfg, err := NewPackedConfig[int64](4, 3, 26, f, f.Encode(354), f.Encode(17))
	if err != nil {
		panic(err)
	}
	return cfg
}

func TestRecoverPolynomial(t *testing.T) {
	f := field.NewNaive(433)
	cfg := pss4_8_3(f)

	secrets := field.EncodeSlice[int64](f, []uint32{1, 2, 3})
	randomness := field.EncodeSlice[int64](f, []uint32{8, 8, 8, 8})
	poly, err := cfg.recoverPolynomial(secrets, randomness)
	require.NoError(t, err)
	require.Equal(t, []uint32{113, 51, 261, 267, 108, 432, 388, 112}, field.DecodeSlice[int64](f, poly))
}

func TestEvaluatePolynomial(t *testing.T) {
	f := field.NewNaive(433)
	cfg := pss4_26_3(f)

	poly := field.EncodeSlice[int64](f, []uint32{
		113, 51, 261, 267, 108, 432, 388, 112, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0, 0,
	})
	shares, err := cfg.sharesFromPolynomial(poly)
	require.NoError(t, err)
	want := []uint32{
		77, 230, 91, 286, 179, 337, 83, 212,
		88, 406, 58, 425, 345, 350, 336, 430, 404,
		51, 60, 305, 395, 84, 156, 160, 112, 422,
	}
	require.Equal(t, want, field.DecodeSlice[int64](f, shares))
}

func TestShareReconstructRoundTrip(t *testing.T) {
	f := field.NewNaive(433)
	cfg := pss4_26_3(f)
	secrets := []uint32{5, 6, 7}
	encoded := field.EncodeSlice[int64](f, secrets)

	shares, err := cfg.DeterministicShare(append(append([]int64{}, encoded...), field.EncodeSlice[int64](f, []uint32{8, 8, 8, 8})...))
	require.NoError(t, err)
	require.Len(t, shares, cfg.ShareCount)

	indices := make([]int, len(shares))
	for i := range indices {
		indices[i] = i
	}
	recovered, err := cfg.Reconstruct(indices, shares)
	require.NoError(t, err)
	require.Equal(t, secrets, field.DecodeSlice[int64](f, recovered))

	limitIndices := make([]int, cfg.ReconstructLimit())
	for i := range limitIndices {
		limitIndices[i] = i
	}
	recovered2, err := cfg.Reconstruct(limitIndices, shares[:cfg.ReconstructLimit()])
	require.NoError(t, err)
	require.Equal(t, secrets, field.DecodeSlice[int64](f, recovered2))
}

func TestReconstructDuplicateIndicesNewtonFallback(t *testing.T) {
	f := field.NewNaive(433)
	cfg := pss4_26_3(f)
	secrets := []uint32{5, 6, 7}
	encoded := field.EncodeSlice[int64](f, secrets)

	shares, err := cfg.DeterministicShare(append(append([]int64{}, encoded...), field.EncodeSlice[int64](f, []uint32{8, 8, 8, 8})...))
	require.NoError(t, err)

	// len(indices) == ReconstructLimit() < ShareCount, so Reconstruct takes
	// the Newton fallback path rather than the FFT fast path.
	limit := cfg.ReconstructLimit()
	indices := make([]int, limit)
	for i := range indices {
		indices[i] = i
	}
	indices[limit-1] = indices[0] // duplicate an index

	picked := make([]int64, limit)
	for i, idx := range indices {
		picked[i] = shares[idx]
	}

	_, err = cfg.Reconstruct(indices, picked)
	require.Error(t, err)
}

func TestShareAdditiveHomomorphism(t *testing.T) {
	f := field.NewNaive(433)
	cfg := pss4_26_3(f)

	shares1, err := cfg.DeterministicShare(append(field.EncodeSlice[int64](f, []uint32{1, 2, 3}), field.EncodeSlice[int64](f, []uint32{9, 9, 9, 9})...))
	require.NoError(t, err)
	shares2, err := cfg.DeterministicShare(append(field.EncodeSlice[int64](f, []uint32{4, 5, 6}), field.EncodeSlice[int64](f, []uint32{3, 3, 3, 3})...))
	require.NoError(t, err)

	sum, err := AddShares[int64](f, shares1, shares2)
	require.NoError(t, err)

	limit := cfg.ReconstructLimit()
	indices := make([]int, limit)
	for i := range indices {
		indices[i] = i
	}
	recovered, err := cfg.Reconstruct(indices, sum[:limit])
	require.NoError(t, err)
	require.Equal(t, []uint32{5, 7, 9}, field.DecodeSlice[int64](f, recovered))
}

func TestShareMultiplicativeHomomorphism(t *testing.T) {
	f := field.NewNaive(433)
	cfg := pss4_26_3(f)

	shares1, err := cfg.DeterministicShare(append(field.EncodeSlice[int64](f, []uint32{1, 2, 3}), field.EncodeSlice[int64](f, []uint32{9, 9, 9, 9})...))
	require.NoError(t, err)
	shares2, err := cfg.DeterministicShare(append(field.EncodeSlice[int64](f, []uint32{4, 5, 6}), field.EncodeSlice[int64](f, []uint32{3, 3, 3, 3})...))
	require.NoError(t, err)

	product, err := MulShares[int64](f, shares1, shares2)
	require.NoError(t, err)

	limit := cfg.ReconstructLimit() * 2
	indices := make([]int, limit)
	for i := range indices {
		indices[i] = i
	}
	recovered, err := cfg.Reconstruct(indices, product[:limit])
	require.NoError(t, err)
	require.Equal(t, []uint32{4, 10, 18}, field.DecodeSlice[int64](f, recovered))
}
