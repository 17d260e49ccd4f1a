package types

import (
	"fmt"
	"math/big"
)

// ScalarSize is the length of a serialized private scalar in bytes.
const ScalarSize = 32

// Scalar is a 256-bit unsigned integer in big-endian byte order. Whether it is
// a usable secp256k1 private key is checked where it enters the curve.
type Scalar [ScalarSize]byte

// ScalarFromBig converts n to a Scalar. n must fit in 256 bits.
func ScalarFromBig(n *big.Int) (Scalar, error) {
	b, err := IntToBytes(n, ScalarSize)
	if err != nil {
		return Scalar{}, err
	}
	var s Scalar
	copy(s[:], b)
	return s, nil
}

// ScalarFromBytes copies a 32-byte big-endian value into a Scalar.
func ScalarFromBytes(b []byte) (Scalar, error) {
	if len(b) != ScalarSize {
		return Scalar{}, fmt.Errorf("%w: scalar must be %d bytes, got %d", ErrEncoding, ScalarSize, len(b))
	}
	var s Scalar
	copy(s[:], b)
	return s, nil
}

// Big returns the scalar as an integer.
func (s Scalar) Big() *big.Int {
	return IntFromBytes(s[:])
}

// IsZero returns true if the scalar is zero.
func (s Scalar) IsZero() bool {
	return s == Scalar{}
}

// Bytes returns a copy of the scalar bytes.
func (s Scalar) Bytes() []byte {
	b := make([]byte, ScalarSize)
	copy(b, s[:])
	return b
}

// Hex returns the 64-character lowercase hex form of the scalar.
func (s Scalar) Hex() string {
	return EncodeHex(s[:])
}

// Zero overwrites the scalar in place.
func (s *Scalar) Zero() {
	for i := range s {
		s[i] = 0
	}
}
