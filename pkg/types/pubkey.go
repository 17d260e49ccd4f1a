package types

import "fmt"

// SEC1 uncompressed point layout.
const (
	PublicKeySize     = 65
	UncompressedTag   = 0x04
	coordinateSize    = 32
	compressedKeySize = 33
)

// PublicKey is a SEC1 uncompressed secp256k1 point: 0x04 || X || Y.
type PublicKey [PublicKeySize]byte

// PublicKeyFromBytes checks the length and format tag of b and copies it.
// It does not check that the point lies on the curve.
func PublicKeyFromBytes(b []byte) (PublicKey, error) {
	if len(b) != PublicKeySize {
		if len(b) == compressedKeySize {
			return PublicKey{}, fmt.Errorf("%w: compressed public keys are not supported", ErrEncoding)
		}
		return PublicKey{}, fmt.Errorf("%w: public key must be %d bytes, got %d", ErrEncoding, PublicKeySize, len(b))
	}
	if b[0] != UncompressedTag {
		return PublicKey{}, fmt.Errorf("%w: public key tag 0x%02x, want 0x%02x", ErrEncoding, b[0], UncompressedTag)
	}
	var pk PublicKey
	copy(pk[:], b)
	return pk, nil
}

// ParsePublicKeyHex decodes a hex-encoded SEC1 uncompressed public key.
func ParsePublicKeyHex(s string) (PublicKey, error) {
	b, err := DecodeHex(s)
	if err != nil {
		return PublicKey{}, err
	}
	return PublicKeyFromBytes(b)
}

// X returns the big-endian x coordinate.
func (pk PublicKey) X() []byte {
	return pk[1 : 1+coordinateSize]
}

// Y returns the big-endian y coordinate.
func (pk PublicKey) Y() []byte {
	return pk[1+coordinateSize:]
}

// Bytes returns a copy of the encoded point.
func (pk PublicKey) Bytes() []byte {
	b := make([]byte, PublicKeySize)
	copy(b, pk[:])
	return b
}

// Hex returns the lowercase hex encoding of the point.
func (pk PublicKey) Hex() string {
	return EncodeHex(pk[:])
}

// String returns the lowercase hex encoding of the point.
func (pk PublicKey) String() string {
	return pk.Hex()
}
