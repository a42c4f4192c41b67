// polyvec.go - Vector and matrix arithmetic over ML-KEM polynomials.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// vecNTT applies the forward NTT to every element of v in place.
func vecNTT(v []poly) {
	for i := range v {
		v[i].ntt()
	}
}

// vecInvNTT applies the inverse NTT to every element of v in place.
func vecInvNTT(v []poly) {
	for i := range v {
		v[i].invntt()
	}
}

// vecAdd sets r = a + b, element-wise.
func vecAdd(r, a, b []poly) {
	for i := range r {
		r[i].add(&a[i], &b[i])
	}
}

// dot computes the pointwise-multiply-and-accumulate inner product of a and
// b (both in NTT domain) into p, generalizing the teacher's
// poly.pointwiseAcc to a free function operating on plain []poly vectors.
func dot(p *poly, a, b []poly) {
	var acc, t [kyberN]uint16
	for i := range a {
		multiplyNTTFn(&t, &a[i].coeffs, &b[i].coeffs)
		for x := range acc {
			acc[x] = fieldAdd(acc[x], t[x])
		}
	}
	p.coeffs = acc
}

// matvec computes r = M*s (all operands in NTT domain), row i of r being
// dot(M[i], s). Used for both A*s (KeyGen) and A^T*r (Encrypt): the teacher
// already bakes the transpose into genMatrix's domain-separator order (see
// sample.go) rather than transposing the matrix after the fact, so a single
// row-times-vector helper serves both directions.
func matvec(r []poly, m [][]poly, s []poly) {
	for i := range r {
		dot(&r[i], m[i], s)
	}
}
