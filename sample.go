// sample.go - XOF-driven uniform sampling and matrix generation.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

const shake128Rate = 168 // xof.BlockSize() is not a constant.

// sampleNTT deterministically samples an NTT-domain polynomial that looks
// uniformly random from rho and the two index bytes, by rejection sampling
// 12-bit values off a SHAKE-128 stream, per spec.md §4.2 (FIPS 203
// Algorithm 7). It reads the stream incrementally, one block at a time,
// rather than the teacher's fixed 4-block scratch buffer, per spec.md §9's
// note that rejection sampling must not assume a bounded number of blocks
// suffices.
func sampleNTT(rho []byte, i, j byte, transposed bool) *poly {
	var p poly

	extSeed := make([]byte, 0, SymSize+2)
	extSeed = append(extSeed, rho...)
	if transposed {
		extSeed = append(extSeed, i, j)
	} else {
		extSeed = append(extSeed, j, i)
	}

	xof := sha3.NewShake128()
	xof.Write(extSeed)

	buf := make([]byte, shake128Rate)
	pos := shake128Rate // force an initial read

	ctr := 0
	for ctr < kyberN {
		if pos == shake128Rate {
			xof.Read(buf)
			pos = 0
		}

		d1 := uint16(buf[pos]) | (uint16(buf[pos+1]&0x0f) << 8)
		d2 := uint16(buf[pos+1]>>4) | (uint16(buf[pos+2]) << 4)
		pos += 3

		if d1 < kyberQ {
			p.coeffs[ctr] = d1
			ctr++
		}
		if d2 < kyberQ && ctr < kyberN {
			p.coeffs[ctr] = d2
			ctr++
		}
	}

	return &p
}

// genMatrix deterministically expands rho into the K*K matrix A (or its
// transpose A^T), entry (i,j) sampled via sampleNTT, per spec.md §4.3.
// Keeps the teacher's indcpa.go convention of baking the transpose into the
// domain-separator byte order instead of transposing after the fact.
func genMatrix(rho []byte, k int, transposed bool) [][]poly {
	a := make([][]poly, k)
	for i := range a {
		a[i] = make([]poly, k)
		for j := range a[i] {
			a[i][j] = *sampleNTT(rho, byte(i), byte(j), transposed)
		}
	}
	return a
}
