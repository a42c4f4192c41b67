// kem.go - ML-KEM key encapsulation mechanism.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import (
	"crypto/subtle"
	"io"

	"golang.org/x/crypto/sha3"
)

// PublicKey is an ML-KEM encapsulation key.
type PublicKey struct {
	p  *ParameterSet
	ek []byte
	h  [32]byte
}

// Bytes returns the byte serialization of a PublicKey.
func (pk *PublicKey) Bytes() []byte {
	return pk.ek
}

// PublicKeyFromBytes deserializes a byte serialized PublicKey.
func (p *ParameterSet) PublicKeyFromBytes(b []byte) (*PublicKey, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(b) != p.ekSize {
		return nil, ErrInvalidLength
	}
	if _, _, err := unpackEK(b, p.k); err != nil {
		return nil, err
	}

	pk := &PublicKey{
		p:  p,
		ek: make([]byte, len(b)),
	}
	copy(pk.ek, b)
	pk.h = sha3.Sum256(b)

	return pk, nil
}

// PrivateKey is an ML-KEM decapsulation key.
type PrivateKey struct {
	PublicKey
	dk []byte
	z  []byte
}

// Bytes returns the byte serialization of a PrivateKey: dk || ek || H(ek)
// || z, per spec.md §6's decapsulation key layout.
func (sk *PrivateKey) Bytes() []byte {
	p := sk.PublicKey.p

	b := make([]byte, 0, p.KEMPrivateKeySize())
	b = append(b, sk.dk...)
	b = append(b, sk.PublicKey.ek...)
	b = append(b, sk.PublicKey.h[:]...)
	b = append(b, sk.z...)

	return b
}

// PrivateKeyFromBytes deserializes a byte serialized PrivateKey.
func (p *ParameterSet) PrivateKeyFromBytes(b []byte) (*PrivateKey, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	if len(b) != p.KEMPrivateKeySize() {
		return nil, ErrInvalidLength
	}

	sk := &PrivateKey{
		dk: make([]byte, p.dkSize),
		z:  make([]byte, SymSize),
	}
	sk.PublicKey.p = p

	if _, err := unpackDK(b[:p.dkSize], p.k); err != nil {
		return nil, err
	}
	copy(sk.dk, b[:p.dkSize])

	off := p.dkSize
	ekBytes := b[off : off+p.ekSize]
	off += p.ekSize
	h := b[off : off+SymSize]
	off += SymSize
	copy(sk.z, b[off:])

	pk, err := p.PublicKeyFromBytes(ekBytes)
	if err != nil {
		return nil, err
	}
	if subtle.ConstantTimeCompare(pk.h[:], h) != 1 {
		return nil, ErrInvalidPrivateKey
	}
	sk.PublicKey = *pk

	return sk, nil
}

// GenerateKeyPair generates a private and public key parameterized with the
// given ParameterSet, per spec.md §1's KEM wrapper (ML-KEM.KeyGen).
func (p *ParameterSet) GenerateKeyPair(rng io.Reader) (*PublicKey, *PrivateKey, error) {
	if err := p.validate(); err != nil {
		return nil, nil, err
	}

	var d [SymSize]byte
	if _, err := io.ReadFull(rng, d[:]); err != nil {
		return nil, nil, err
	}

	ek, dk := p.kpkeKeyGen(d[:])

	kp := &PrivateKey{dk: dk, z: make([]byte, SymSize)}
	kp.PublicKey.p = p
	kp.PublicKey.ek = ek
	kp.PublicKey.h = sha3.Sum256(ek)

	if _, err := io.ReadFull(rng, kp.z); err != nil {
		return nil, nil, err
	}

	return &kp.PublicKey, kp, nil
}

// Encapsulate generates a ciphertext and shared secret via the CCA-secure
// ML-KEM key encapsulation mechanism: an Fujisaki-Okamoto-style transform
// that derives the K-PKE encryption coins from a hash of the message and
// the public key, binding the ciphertext to the key that produced it.
func (pk *PublicKey) Encapsulate(rng io.Reader) (cipherText, sharedSecret []byte, err error) {
	var m [SymSize]byte
	if _, err = io.ReadFull(rng, m[:]); err != nil {
		return nil, nil, err
	}
	m = sha3.Sum256(m[:]) // Don't release raw system RNG output.

	hKr := sha3.New512()
	hKr.Write(m[:])
	hKr.Write(pk.h[:]) // Multitarget countermeasure for coins + contributory KEM.
	kr := hKr.Sum(nil)
	k, coins := kr[:SymSize], kr[SymSize:]

	cipherText, err = pk.p.kpkeEncrypt(pk.ek, m[:], coins)
	if err != nil {
		return nil, nil, err
	}

	hSs := sha3.New256()
	hSs.Write(k)
	hc := sha3.Sum256(cipherText)
	hSs.Write(hc[:])
	sharedSecret = hSs.Sum(nil)

	return cipherText, sharedSecret, nil
}

// Decapsulate recovers the shared secret for a given ciphertext via the
// CCA-secure ML-KEM key encapsulation mechanism.
//
// On decryption failure (a ciphertext that doesn't re-encrypt to itself),
// sharedSecret contains a pseudorandom value derived from z instead of
// panicking or returning an error, per spec.md §7's implicit-rejection
// contract; this keeps Decapsulate's control flow and timing identical on
// the success and failure paths. Passing a ciphertext of the wrong length
// is a caller bug, not an implicit-rejection case, and panics.
func (sk *PrivateKey) Decapsulate(cipherText []byte) (sharedSecret []byte) {
	p := sk.PublicKey.p
	if len(cipherText) != p.ctSize {
		panic(ErrInvalidLength)
	}

	// sk.dk and sk.PublicKey.ek were already validated by PrivateKeyFromBytes
	// (or produced internally by GenerateKeyPair), so unpacking them here
	// only fails if a caller corrupts a PrivateKey's fields directly after
	// construction. Decapsulate must never panic or return an error on bad
	// input, per its implicit-rejection contract, so a decode failure is
	// folded into the same reject path as a ciphertext that fails to
	// re-encrypt to itself rather than treated as a distinct error case.
	m, decErr := sk.p.kpkeDecrypt(sk.dk, cipherText)
	if decErr != nil {
		m = make([]byte, SymSize)
	}

	hKr := sha3.New512()
	hKr.Write(m)
	hKr.Write(sk.PublicKey.h[:])
	kr := hKr.Sum(nil)
	k, coins := kr[:SymSize], kr[SymSize:]

	cmp, encErr := sk.p.kpkeEncrypt(sk.PublicKey.ek, m, coins)
	if encErr != nil {
		cmp = nil
	}

	fail := subtle.ConstantTimeCompare(cipherText, cmp) ^ 1

	kPrime := make([]byte, SymSize)
	subtle.ConstantTimeCopy(1-fail, kPrime, k)
	subtle.ConstantTimeCopy(fail, kPrime, sk.z)

	hSs := sha3.New256()
	hSs.Write(kPrime)
	hc := sha3.Sum256(cipherText)
	hSs.Write(hc[:])

	return hSs.Sum(nil)
}
