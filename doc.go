// doc.go - mlkem godoc extras.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

// Package mlkem implements K-PKE, the IND-CPA-secure public-key encryption
// scheme underlying ML-KEM (FIPS 203), the NIST-standardized post-quantum
// key encapsulation mechanism based on the hardness of the module learning
// with errors (LWE) problem over module lattices.
//
// It also provides a thin CCA-secure key encapsulation wrapper
// (GenerateKeyPair/Encapsulate/Decapsulate) built atop K-PKE via a
// Fujisaki-Okamoto-style transform, parameterized for ML-KEM-512,
// ML-KEM-768, and ML-KEM-1024. The transform has the CRYSTALS-Kyber shape:
// the random message is hashed before use and the shared secret is
// H(K || H(c)), so its shared secrets differ from those of FIPS 203's
// ML-KEM.Encaps/ML-KEM.Decaps.
//
// For more information, see https://csrc.nist.gov/pubs/fips/203/final.
package mlkem
