// field.go - Modular arithmetic mod q=3329.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

// Division-free Barrett reduction, in two flavors: a wide one for the
// product of two field elements (multiplyReduce), and a narrow one for
// sums/differences of a handful of field elements (addReduce). Both are
// exact on their stated input ranges; there is no partial/lazy variant,
// unlike the teacher's mixed Montgomery/Barrett approach, since this
// module reduces fully after every operation rather than threading a
// Montgomery domain through the NTT.
const (
	// mulBarrettV = floor(2^32 / q); valid for products of two values in
	// [0, q).
	mulBarrettV = 1290167

	// addBarrettV = floor(2^26 / q) + 1; valid for sums in [0, 4*q).
	addBarrettV = 20159
)

// multiplyReduce computes a*b mod q for a, b in [0, q).
func multiplyReduce(a, b uint16) uint16 {
	p := uint32(a) * uint32(b)
	t := uint32((uint64(p) * mulBarrettV) >> 32)
	r := p - t*kyberQ
	if r >= kyberQ {
		r -= kyberQ
	}
	return uint16(r)
}

// addReduce reduces a value in [0, 4*q) to [0, q).
func addReduce(a uint16) uint16 {
	t := (uint32(a) * addBarrettV) >> 26
	return uint16(uint32(a) - t*kyberQ)
}

// fieldAdd computes a+b mod q for a, b in [0, q).
func fieldAdd(a, b uint16) uint16 {
	return addReduce(a + b)
}

// fieldSub computes a-b mod q for a, b in [0, q).
func fieldSub(a, b uint16) uint16 {
	return addReduce(a + 2*kyberQ - b)
}

// freeze computes the canonical representative of a in [0, q), where a may
// be as large as addReduce's domain allows.
func freeze(a uint16) uint16 {
	return addReduce(a)
}
