// poly.go - ML-KEM polynomial.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// Elements of R_q = Z_q[X]/(X^n + 1). Represents polynomial coeffs[0] +
// X*coeffs[1] + X^2*coeffs[2] + ... + X^{n-1}*coeffs[n-1].
type poly struct {
	coeffs [kyberN]uint16
}

// ntt computes the forward NTT of p in place; see ntt.go.
func (p *poly) ntt() {
	nttFn(&p.coeffs)
}

// invntt computes the inverse NTT of p in place; see ntt.go.
func (p *poly) invntt() {
	invnttFn(&p.coeffs)
}

// add sets p = a + b.
func (p *poly) add(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = fieldAdd(a.coeffs[i], b.coeffs[i])
	}
}

// sub sets p = a - b.
func (p *poly) sub(a, b *poly) {
	for i := range p.coeffs {
		p.coeffs[i] = fieldSub(a.coeffs[i], b.coeffs[i])
	}
}

// fromMsg converts a 32-byte message to a polynomial, each bit becoming a
// coefficient of either 0 or decompress_1(1) = ceil(q/2).
func (p *poly) fromMsg(msg []byte) {
	for i, v := range msg[:SymSize] {
		for j := 0; j < 8; j++ {
			bit := (v >> uint(j)) & 1
			p.coeffs[8*i+j] = decompressD(uint16(bit), 1)
		}
	}
}

// toMsg converts a polynomial back to a 32-byte message; approximate
// inverse of fromMsg.
func (p *poly) toMsg(msg []byte) {
	for i := 0; i < SymSize; i++ {
		msg[i] = 0
		for j := 0; j < 8; j++ {
			bit := compressD(freeze(p.coeffs[8*i+j]), 1)
			msg[i] |= byte(bit << uint(j))
		}
	}
}

// getNoise samples p from the centered binomial distribution with
// parameter eta, via the pseudorandom function PRF(sigma, nonce) =
// SHAKE-256(sigma || nonce, 64*eta bytes).
func (p *poly) getNoise(sigma []byte, nonce byte, eta int) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, sigma...)
	extSeed = append(extSeed, nonce)

	buf := make([]byte, 64*eta)
	sha3.ShakeSum256(buf, extSeed)

	*p = *samplePolyCBD(buf, eta)
}
