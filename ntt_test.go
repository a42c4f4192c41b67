// ntt_test.go - NTT round-trip and multiplication identity tests.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

func randomPoly(rng *rand.Rand) [kyberN]uint16 {
	var p [kyberN]uint16
	for i := range p {
		p[i] = uint16(rng.Intn(kyberQ))
	}
	return p
}

func TestNTTRoundTrip(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(1))

	for i := 0; i < 20; i++ {
		p := randomPoly(rng)
		got := p
		nttRef(&got)
		invnttRef(&got)
		require.Equal(p, got, "invnttRef(nttRef(p)) should recover p")
	}
}

// TestNTTMultiplyIdentity checks that pointwise multiplication in the NTT
// domain matches schoolbook negacyclic multiplication in the coefficient
// domain, i.e. invNTT(multiplyNTT(NTT(a), NTT(b))) == a*b mod (X^n+1).
func TestNTTMultiplyIdentity(t *testing.T) {
	require := require.New(t)
	rng := rand.New(rand.NewSource(2))

	for trial := 0; trial < 10; trial++ {
		a := randomPoly(rng)
		b := randomPoly(rng)

		want := schoolbookMultiply(a, b)

		na, nb := a, b
		nttRef(&na)
		nttRef(&nb)

		var nc [kyberN]uint16
		multiplyNTTRef(&nc, &na, &nb)
		invnttRef(&nc)

		require.Equal(want, nc, "trial %d", trial)
	}
}

// schoolbookMultiply computes a*b mod (X^256+1, q) the naive way, used only
// to cross-check the NTT-domain multiplication.
func schoolbookMultiply(a, b [kyberN]uint16) [kyberN]uint16 {
	var prod [2 * kyberN]uint32
	for i, av := range a {
		for j, bv := range b {
			prod[i+j] = (prod[i+j] + uint32(av)*uint32(bv)) % kyberQ
		}
	}

	var out [kyberN]uint16
	for i := 0; i < kyberN; i++ {
		v := prod[i]
		if i+kyberN < len(prod) {
			v = (v + kyberQ - prod[i+kyberN]%kyberQ) % kyberQ
		}
		out[i] = uint16(v)
	}
	return out
}
