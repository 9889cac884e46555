package sampling_test

import (
	"testing"

	"github.com/mpcith/banquet/utils/sampling"
	"github.com/stretchr/testify/require"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("Keyed", func(t *testing.T) {

		Ha, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)
		Hb, err := sampling.NewKeyedPRNG(key)
		require.NoError(t, err)

		// Reading in one call or in chunks gives the same stream.
		sum0 := make([]byte, 512)
		_, err = Ha.Read(sum0)
		require.NoError(t, err)

		sum1 := make([]byte, 512)
		for i := 0; i < len(sum1); i += 64 {
			_, err = Hb.Read(sum1[i : i+64])
			require.NoError(t, err)
		}
		require.Equal(t, sum0, sum1)

		other := append([]byte{}, key...)
		other[0] ^= 1
		Hc, err := sampling.NewKeyedPRNG(other)
		require.NoError(t, err)
		sum2 := make([]byte, 512)
		_, err = Hc.Read(sum2)
		require.NoError(t, err)
		require.NotEqual(t, sum0, sum2)

		_, err = sampling.NewKeyedPRNG(make([]byte, 65))
		require.Error(t, err)
	})

	t.Run("DeriveKey", func(t *testing.T) {
		k0 := sampling.DeriveKey("shares", []byte("seed"))
		k1 := sampling.DeriveKey("shares", []byte("seed"))
		k2 := sampling.DeriveKey("challenge", []byte("seed"))

		require.Len(t, k0, sampling.KeySize)
		require.Equal(t, k0, k1)
		require.NotEqual(t, k0, k2)
	})

	t.Run("Seeded", func(t *testing.T) {
		Ha, err := sampling.NewSeededPRNG("shares", []byte("seed"))
		require.NoError(t, err)
		Hb, err := sampling.NewSeededPRNG("shares", []byte("seed"))
		require.NoError(t, err)

		sum0 := make([]byte, 64)
		sum1 := make([]byte, 64)
		_, err = Ha.Read(sum0)
		require.NoError(t, err)
		_, err = Hb.Read(sum1)
		require.NoError(t, err)
		require.Equal(t, sum0, sum1)
	})

	t.Run("ThreadSafe", func(t *testing.T) {
		prng, err := sampling.NewPRNG()
		require.NoError(t, err)
		buf := make([]byte, 32)
		n, err := prng.Read(buf)
		require.NoError(t, err)
		require.Equal(t, 32, n)
	})
}
