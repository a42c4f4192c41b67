// errors.go - Sentinel errors.
//
// To the extent possible under law, Yawning Angel has waived all copyright
// and related or neighboring rights to the software, using the Creative
// Commons "CC0" public domain dedication. See LICENSE or
// <http://creativecommons.org/publicdomain/zero/1.0/> for full details.

package mlkem

import "errors"

var (
	// ErrInvalidLength is the error returned when a byte serialized key is
	// an invalid size. Decapsulate panics with it when given a ciphertext
	// of the wrong size.
	ErrInvalidLength = errors.New("mlkem: invalid length")

	// ErrInvalidCoefficient is the error returned when a decoded
	// polynomial coefficient falls outside its expected range.
	ErrInvalidCoefficient = errors.New("mlkem: invalid coefficient")

	// ErrInvalidParameter is the error returned when a parameter set is
	// misconfigured, such as an unsupported module rank K.
	ErrInvalidParameter = errors.New("mlkem: invalid parameter")

	// ErrInvalidPrivateKey is the error returned when a byte serialized
	// private key is malformed.
	ErrInvalidPrivateKey = errors.New("mlkem: invalid private key")
)
