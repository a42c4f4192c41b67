// kpke.go - K-PKE: the IND-CPA-secure public-key encryption scheme
// underlying ML-KEM.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "golang.org/x/crypto/sha3"

// packEK serializes an encryption key as the byte_encode_12 of each
// coefficient of t, followed by the public seed rho.
func packEK(t []poly, rho []byte) []byte {
	out := make([]byte, 0, 384*len(t)+SymSize)
	for i := range t {
		out = append(out, byteEncode(&t[i], 12)...)
	}
	out = append(out, rho...)
	return out
}

// unpackEK is the inverse of packEK. It rejects an ek whose packed
// coefficients don't decode to valid field elements (spec.md §7's
// InvalidCoefficient case), which byteEncode's own output can never
// produce but a corrupted or adversarially supplied ek byte string can.
func unpackEK(ek []byte, k int) (t []poly, rho []byte, err error) {
	t = make([]poly, k)
	for i := 0; i < k; i++ {
		p, err := byteDecode(ek[384*i:384*(i+1)], 12)
		if err != nil {
			return nil, nil, err
		}
		t[i] = *p
	}
	rho = ek[384*k : 384*k+SymSize]
	return t, rho, nil
}

// packDK serializes a decryption key as the byte_encode_12 of each
// coefficient of s.
func packDK(s []poly) []byte {
	out := make([]byte, 0, 384*len(s))
	for i := range s {
		out = append(out, byteEncode(&s[i], 12)...)
	}
	return out
}

// unpackDK is the inverse of packDK. Like unpackEK, it rejects coefficients
// that don't decode to valid field elements.
func unpackDK(dk []byte, k int) ([]poly, error) {
	s := make([]poly, k)
	for i := 0; i < k; i++ {
		p, err := byteDecode(dk[384*i:384*(i+1)], 12)
		if err != nil {
			return nil, err
		}
		s[i] = *p
	}
	return s, nil
}

// packCiphertext serializes a ciphertext as the compressed-and-encoded u
// vector followed by the compressed-and-encoded v polynomial.
func packCiphertext(p *ParameterSet, u []poly, v *poly) []byte {
	out := make([]byte, 0, p.ctSize)
	for i := range u {
		out = append(out, byteEncode(compressPoly(&u[i], p.du), p.du)...)
	}
	out = append(out, byteEncode(compressPoly(v, p.dv), p.dv)...)
	return out
}

// unpackCiphertext is the approximate inverse of packCiphertext. du and dv
// are always well under 12 bits, so byteDecode's InvalidCoefficient check
// never fires here; the error is discarded rather than threaded through
// every caller for a case that can't occur.
func unpackCiphertext(p *ParameterSet, c []byte) (u []poly, v *poly) {
	u = make([]poly, p.k)
	uCoeffSize := 32 * p.du
	for i := 0; i < p.k; i++ {
		cu, _ := byteDecode(c[i*uCoeffSize:(i+1)*uCoeffSize], p.du)
		u[i] = *decompressPoly(cu, p.du)
	}

	off := p.k * uCoeffSize
	vCoeffSize := 32 * p.dv
	cv, _ := byteDecode(c[off:off+vCoeffSize], p.dv)
	v = decompressPoly(cv, p.dv)

	return u, v
}

// kpkeKeyGen generates a K-PKE key pair from the 32-byte seed d, per
// spec.md §4.4 (FIPS 203 Algorithm 13). d || K is hashed through G to
// separate the public seed rho (matrix A) from the noise seed sigma (s, e);
// appending the module rank K as a domain-separator byte stops the same d
// from producing related keys across parameter sets.
func (p *ParameterSet) kpkeKeyGen(d []byte) (ek, dk []byte) {
	extSeed := make([]byte, 0, SymSize+1)
	extSeed = append(extSeed, d...)
	extSeed = append(extSeed, byte(p.k))

	g := sha3.Sum512(extSeed)
	rho, sigma := g[:SymSize], g[SymSize:]

	a := genMatrix(rho, p.k, false)

	s := p.allocVec()
	var nonce byte
	for i := range s {
		s[i].getNoise(sigma, nonce, p.eta1)
		nonce++
	}

	e := p.allocVec()
	for i := range e {
		e[i].getNoise(sigma, nonce, p.eta1)
		nonce++
	}

	vecNTT(s)
	vecNTT(e)

	t := p.allocVec()
	matvec(t, a, s)
	vecAdd(t, t, e)

	return packEK(t, rho), packDK(s)
}

// kpkeEncrypt encrypts the 32-byte message m under ek using the 32-byte
// randomness coins, per spec.md §4.4 (FIPS 203 Algorithm 14). Noise for
// s/e/y-equivalents (r here) is sampled with eta1; noise for e1/e2 is
// sampled with eta2, per spec.md §3's per-parameter-set eta1/eta2 split.
func (p *ParameterSet) kpkeEncrypt(ek, m, coins []byte) ([]byte, error) {
	t, rho, err := unpackEK(ek, p.k)
	if err != nil {
		return nil, err
	}

	at := genMatrix(rho, p.k, true)

	r := p.allocVec()
	var nonce byte
	for i := range r {
		r[i].getNoise(coins, nonce, p.eta1)
		nonce++
	}

	e1 := p.allocVec()
	for i := range e1 {
		e1[i].getNoise(coins, nonce, p.eta2)
		nonce++
	}

	var e2 poly
	e2.getNoise(coins, nonce, p.eta2)

	vecNTT(r)

	u := p.allocVec()
	matvec(u, at, r)
	vecInvNTT(u)
	vecAdd(u, u, e1)

	var v poly
	dot(&v, t, r)
	v.invntt()
	v.add(&v, &e2)

	var mu poly
	mu.fromMsg(m)
	v.add(&v, &mu)

	return packCiphertext(p, u, &v), nil
}

// kpkeDecrypt recovers the 32-byte message encrypted into c under the
// decryption key dk, per spec.md §4.4 (FIPS 203 Algorithm 15).
func (p *ParameterSet) kpkeDecrypt(dk, c []byte) ([]byte, error) {
	s, err := unpackDK(dk, p.k)
	if err != nil {
		return nil, err
	}
	u, v := unpackCiphertext(p, c)

	vecNTT(u)

	var mp poly
	dot(&mp, s, u)
	mp.invntt()

	mp.sub(v, &mp)

	m := make([]byte, SymSize)
	mp.toMsg(m)

	return m, nil
}
