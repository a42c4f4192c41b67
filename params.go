// params.go - ML-KEM parameterization.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

const (
	// SymSize is the size of the shared key (and certain internal parameters
	// such as hashes and seeds) in bytes.
	SymSize = 32

	kyberN = 256
	kyberQ = 3329
)

var (
	// MLKEM512 is the ML-KEM-512 parameter set, which aims to provide
	// security equivalent to AES-128.
	//
	// This parameter set has a 768 byte decryption key, 800 byte
	// encryption key, and a 768 byte cipher text.
	MLKEM512 = newParameterSet("ML-KEM-512", 2, 3, 2, 10, 4)

	// MLKEM768 is the ML-KEM-768 parameter set, which aims to provide
	// security equivalent to AES-192.
	//
	// This parameter set has a 1152 byte decryption key, 1184 byte
	// encryption key, and a 1088 byte cipher text.
	MLKEM768 = newParameterSet("ML-KEM-768", 3, 2, 2, 10, 4)

	// MLKEM1024 is the ML-KEM-1024 parameter set, which aims to provide
	// security equivalent to AES-256.
	//
	// This parameter set has a 1536 byte decryption key, 1568 byte
	// encryption key, and a 1568 byte cipher text.
	MLKEM1024 = newParameterSet("ML-KEM-1024", 4, 2, 2, 11, 5)
)

// ParameterSet is an ML-KEM parameter set (FIPS 203), parameterizing the
// K-PKE core it wraps.
type ParameterSet struct {
	name string

	k    int
	eta1 int
	eta2 int
	du   int
	dv   int

	ekSize int
	dkSize int
	ctSize int
}

// Name returns the name of a given ParameterSet.
func (p *ParameterSet) Name() string {
	return p.name
}

// K returns the module rank of the parameter set.
func (p *ParameterSet) K() int {
	return p.k
}

// EncryptionKeySize returns the size in bytes of a K-PKE encryption key
// (ek), 384*K+32.
func (p *ParameterSet) EncryptionKeySize() int {
	return p.ekSize
}

// DecryptionKeySize returns the size in bytes of a K-PKE decryption key
// (dk), 384*K.
func (p *ParameterSet) DecryptionKeySize() int {
	return p.dkSize
}

// CipherTextSize returns the size in bytes of a K-PKE ciphertext,
// 32*(du*K+dv).
func (p *ParameterSet) CipherTextSize() int {
	return p.ctSize
}

// KEMPublicKeySize returns the size in bytes of the outer KEM's public key,
// which is identical to the K-PKE encryption key.
func (p *ParameterSet) KEMPublicKeySize() int {
	return p.ekSize
}

// KEMPrivateKeySize returns the size in bytes of the outer KEM's private
// key: the K-PKE decryption key, the encryption key, H(ek), and the
// implicit-rejection value z.
func (p *ParameterSet) KEMPrivateKeySize() int {
	return p.dkSize + p.ekSize + 2*SymSize
}

// KEMCipherTextSize returns the size in bytes of the outer KEM's
// ciphertext, identical to the K-PKE ciphertext.
func (p *ParameterSet) KEMCipherTextSize() int {
	return p.ctSize
}

func newParameterSet(name string, k, eta1, eta2, du, dv int) *ParameterSet {
	if k != 2 && k != 3 && k != 4 {
		panic("mlkem: k must be in {2,3,4}")
	}

	var p ParameterSet

	p.name = name
	p.k = k
	p.eta1 = eta1
	p.eta2 = eta2
	p.du = du
	p.dv = dv

	p.ekSize = 384*k + SymSize
	p.dkSize = 384 * k
	p.ctSize = 32 * (du*k + dv)

	return &p
}

func (p *ParameterSet) allocVec() []poly {
	return make([]poly, p.k)
}

// validate reports whether p is one of the well-formed parameter sets this
// package knows how to operate on, rejecting a nil pointer or a zero-value
// ParameterSet{} a caller might construct directly instead of using
// MLKEM512/768/1024.
func (p *ParameterSet) validate() error {
	if p == nil || (p.k != 2 && p.k != 3 && p.k != 4) {
		return ErrInvalidParameter
	}
	return nil
}
