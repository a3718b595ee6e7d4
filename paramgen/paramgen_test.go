package paramgen

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	// threshold=4, secretCount=3 -> n=8=2^3; shareCount=8 -> m=9=3^2.
	params, err := Generate(4, 3, 8, 200)
	require.NoError(t, err)
	require.Equal(t, int64(433), params.Prime)
	require.Equal(t, int64(354), params.OmegaSecrets)
	require.Equal(t, int64(150), params.OmegaShares)
}

func TestGenerateShareCount26(t *testing.T) {
	// threshold=4, secretCount=3 -> n=8=2^3; shareCount=26 -> m=27=3^3.
	params, err := Generate(4, 3, 26, 200)
	require.NoError(t, err)
	require.Equal(t, int64(433), params.Prime)
	require.Equal(t, int64(354), params.OmegaSecrets)
	require.Equal(t, int64(17), params.OmegaShares)
}

func TestGenerateRejectsBadShape(t *testing.T) {
	_, err := Generate(4, 3, 9, 200) // shareCount+1=10, not a power of 3
	require.Error(t, err)
}
