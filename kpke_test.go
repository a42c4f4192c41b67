// kpke_test.go - K-PKE KeyGen/Encrypt/Decrypt property tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestKPKERoundTrip covers spec.md §8's end-to-end scenario: for every
// parameter set, KeyGen followed by Encrypt followed by Decrypt must
// recover the original message for random seeds, coins, and messages.
func TestKPKERoundTrip(t *testing.T) {
	require := require.New(t)

	for _, p := range allParams {
		t.Run(p.Name(), func(t *testing.T) {
			for i := 0; i < 20; i++ {
				var d, coins, m [SymSize]byte
				_, err := rand.Read(d[:])
				require.NoError(err)
				_, err = rand.Read(coins[:])
				require.NoError(err)
				_, err = rand.Read(m[:])
				require.NoError(err)

				ek, dk := p.kpkeKeyGen(d[:])
				require.Len(ek, p.ekSize)
				require.Len(dk, p.dkSize)

				ct, err := p.kpkeEncrypt(ek, m[:], coins[:])
				require.NoError(err)
				require.Len(ct, p.ctSize)

				got, err := p.kpkeDecrypt(dk, ct)
				require.NoError(err)
				require.Equal(m[:], got, "decrypted message must match original")
			}
		})
	}
}

// TestKPKEWireSizes pins the byte sizes spec.md §3 names for every
// parameter set: ek = 384*K+32, dk = 384*K, ct = 32*(du*K+dv).
func TestKPKEWireSizes(t *testing.T) {
	require := require.New(t)

	cases := []struct {
		p             *ParameterSet
		ek, dk, ctLen int
	}{
		{MLKEM512, 800, 768, 768},
		{MLKEM768, 1184, 1152, 1088},
		{MLKEM1024, 1568, 1536, 1568},
	}

	for _, c := range cases {
		require.Equal(c.ek, c.p.EncryptionKeySize(), c.p.Name())
		require.Equal(c.dk, c.p.DecryptionKeySize(), c.p.Name())
		require.Equal(c.ctLen, c.p.CipherTextSize(), c.p.Name())
	}
}

// TestKPKEDistinctKeysDistinctCiphertexts checks that two independently
// generated key pairs, even encrypting the same message with the same
// coins, produce different ciphertexts (the matrix A and public key t
// differ per key pair).
func TestKPKEDistinctKeysDistinctCiphertexts(t *testing.T) {
	require := require.New(t)

	p := MLKEM768
	var d1, d2, coins, m [SymSize]byte
	_, err := rand.Read(d1[:])
	require.NoError(err)
	_, err = rand.Read(d2[:])
	require.NoError(err)
	_, err = rand.Read(coins[:])
	require.NoError(err)
	_, err = rand.Read(m[:])
	require.NoError(err)

	ek1, _ := p.kpkeKeyGen(d1[:])
	ek2, _ := p.kpkeKeyGen(d2[:])
	require.NotEqual(ek1, ek2)

	ct1, err := p.kpkeEncrypt(ek1, m[:], coins[:])
	require.NoError(err)
	ct2, err := p.kpkeEncrypt(ek2, m[:], coins[:])
	require.NoError(err)
	require.NotEqual(ct1, ct2)
}
