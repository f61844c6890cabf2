package aes_test

import (
	"bytes"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ny0m/ctaes/aes"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

// FIPS-197 Appendix B/C known-answer vectors for AES-128/192/256.
var fipsVectors = []struct {
	name       string
	key        string
	plaintext  string
	ciphertext string
}{
	{
		name:       "AES-128",
		key:        "000102030405060708090a0b0c0d0e0f",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "69c4e0d86a7b0430d8cdb78070b4c55a",
	},
	{
		name:       "AES-192",
		key:        "000102030405060708090a0b0c0d0e0f1011121314151617",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "dda97ca4864cdfe06eaf70a0ec0d7191",
	},
	{
		name:       "AES-256",
		key:        "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f",
		plaintext:  "00112233445566778899aabbccddeeff",
		ciphertext: "8ea2b7ca516745bfeafc49904b496089",
	},
}

func TestFIPSKnownAnswerVectors(t *testing.T) {
	for _, tc := range fipsVectors {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			key := hexBytes(t, tc.key)
			plaintext := hexBytes(t, tc.plaintext)
			want := hexBytes(t, tc.ciphertext)

			enc, err := aes.NewEncrypter(key)
			require.NoError(t, err)
			got := make([]byte, aes.BlockSize)
			enc.EncryptBlock(got, plaintext)
			require.Equal(t, want, got)

			dec, err := aes.NewDecrypter(key)
			require.NoError(t, err)
			back := make([]byte, aes.BlockSize)
			dec.DecryptBlock(back, got)
			require.Equal(t, plaintext, back)
		})
	}
}

func TestRoundTripAllKeySizes(t *testing.T) {
	keySizes := []int{16, 24, 32}
	plaintext := []byte("yellow submarine")

	for _, n := range keySizes {
		key := bytes.Repeat([]byte{0x42}, n)
		enc, err := aes.NewEncrypter(key)
		require.NoError(t, err)
		dec, err := aes.NewDecrypter(key)
		require.NoError(t, err)

		ct := make([]byte, aes.BlockSize)
		enc.EncryptBlock(ct, plaintext)
		require.NotEqual(t, plaintext, ct)

		pt := make([]byte, aes.BlockSize)
		dec.DecryptBlock(pt, ct)
		require.Equal(t, plaintext, pt)
	}
}

// EncryptBlock must tolerate dst and src being the exact same buffer.
func TestEncryptInPlace(t *testing.T) {
	key := bytes.Repeat([]byte{0x11}, 16)
	enc, err := aes.NewEncrypter(key)
	require.NoError(t, err)
	dec, err := aes.NewDecrypter(key)
	require.NoError(t, err)

	buf := []byte("0123456789abcdef")
	want := make([]byte, aes.BlockSize)
	enc.EncryptBlock(want, buf)

	buf = []byte("0123456789abcdef")
	enc.EncryptBlock(buf, buf)
	require.Equal(t, want, buf)

	dec.DecryptBlock(buf, buf)
	require.Equal(t, []byte("0123456789abcdef"), buf)
}

func TestInvalidKeyLengths(t *testing.T) {
	for _, n := range []int{0, 15, 17, 23, 25, 31, 33} {
		_, err := aes.NewEncrypter(make([]byte, n))
		require.ErrorIs(t, err, aes.ErrInvalidKeyLength, "length %d", n)

		_, err = aes.NewDecrypter(make([]byte, n))
		require.ErrorIs(t, err, aes.ErrInvalidKeyLength, "length %d", n)

		_, err = aes.NewEncrypterX8(make([]byte, n))
		require.ErrorIs(t, err, aes.ErrInvalidKeyLength, "length %d", n)
	}
}

func TestValidKeyLengthsConstruct(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		_, err := aes.NewEncrypter(make([]byte, n))
		require.NoError(t, err)
		_, err = aes.NewDecrypter(make([]byte, n))
		require.NoError(t, err)
	}
}

// The wide backend on eight copies of the same block must produce eight
// copies of the narrow backend's single-block output.
func TestWideBackendMatchesNarrowAcrossLanes(t *testing.T) {
	key := bytes.Repeat([]byte{0x5a}, 24)
	block := []byte("sixteen byte!!!!")

	enc, err := aes.NewEncrypter(key)
	require.NoError(t, err)
	want := make([]byte, aes.BlockSize)
	enc.EncryptBlock(want, block)

	encX8, err := aes.NewEncrypterX8(key)
	require.NoError(t, err)
	in := bytes.Repeat(block, 8)
	out := make([]byte, aes.BlockSize*8)
	encX8.EncryptBlockX8(out, in)

	for i := 0; i < 8; i++ {
		require.Equal(t, want, out[i*aes.BlockSize:(i+1)*aes.BlockSize], "lane %d", i)
	}

	decX8, err := aes.NewDecrypterX8(key)
	require.NoError(t, err)
	back := make([]byte, aes.BlockSize*8)
	decX8.DecryptBlockX8(back, out)
	require.Equal(t, in, back)
}

// Eight distinct blocks through the wide backend must each independently
// round-trip and must match the narrow backend's per-block result.
func TestWideBackendDistinctBlocks(t *testing.T) {
	key := bytes.Repeat([]byte{0x99}, 32)
	enc, err := aes.NewEncrypter(key)
	require.NoError(t, err)
	encX8, err := aes.NewEncrypterX8(key)
	require.NoError(t, err)
	decX8, err := aes.NewDecrypterX8(key)
	require.NoError(t, err)

	in := make([]byte, aes.BlockSize*8)
	want := make([]byte, aes.BlockSize*8)
	for i := 0; i < 8; i++ {
		block := bytes.Repeat([]byte{byte(i)}, aes.BlockSize)
		copy(in[i*aes.BlockSize:], block)
		wantBlock := make([]byte, aes.BlockSize)
		enc.EncryptBlock(wantBlock, block)
		copy(want[i*aes.BlockSize:], wantBlock)
	}

	out := make([]byte, aes.BlockSize*8)
	encX8.EncryptBlockX8(out, in)
	require.Equal(t, want, out)

	back := make([]byte, aes.BlockSize*8)
	decX8.DecryptBlockX8(back, out)
	require.Equal(t, in, back)
}
