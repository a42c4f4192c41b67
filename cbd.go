// cbd.go - Centered binomial distribution.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// bytesToBits unpacks a byte string into its individual bits, LSB-first per
// byte, the same order FIPS 203 Algorithm 3 (BytesToBits) and this module's
// byteDecode use.
func bytesToBits(b []byte) []byte {
	bits := make([]byte, 8*len(b))
	for i, v := range b {
		for j := 0; j < 8; j++ {
			bits[8*i+j] = (v >> uint(j)) & 1
		}
	}
	return bits
}

// samplePolyCBD samples a polynomial with coefficients distributed according
// to a centered binomial distribution with parameter eta, consuming
// 64*eta bytes of input, per spec.md §4.2 (FIPS 203 Algorithm 8). Unlike the
// teacher's packed-bitmask trick (tuned for eta in {3,4,5}, with d always
// odd), this sums individual bits directly: eta is always in {2,3} here and
// the bit count per call is small enough that the straightforward loop costs
// nothing worth hiding behind a mask trick.
func samplePolyCBD(buf []byte, eta int) *poly {
	var p poly

	bits := bytesToBits(buf)
	for i := 0; i < kyberN; i++ {
		var x, y int
		base := 2 * i * eta
		for j := 0; j < eta; j++ {
			x += int(bits[base+j])
		}
		for j := 0; j < eta; j++ {
			y += int(bits[base+eta+j])
		}
		p.coeffs[i] = uint16((x - y + kyberQ) % kyberQ)
	}

	return &p
}
