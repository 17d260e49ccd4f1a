package types

import (
	"encoding/hex"
	"fmt"
	"math/big"
)

// IntToBytes encodes a non-negative integer as exactly size big-endian bytes,
// left-padded with zeros.
func IntToBytes(n *big.Int, size int) ([]byte, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative integer", ErrEncoding)
	}
	if (n.BitLen()+7)/8 > size {
		return nil, fmt.Errorf("%w: integer needs %d bytes, have %d", ErrEncoding, (n.BitLen()+7)/8, size)
	}
	return n.FillBytes(make([]byte, size)), nil
}

// IntFromBytes interprets b as a big-endian unsigned integer.
func IntFromBytes(b []byte) *big.Int {
	return new(big.Int).SetBytes(b)
}

// EncodeHex returns the lowercase hex encoding of b.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

// DecodeHex decodes a hex string. Upper and lower case digits are accepted;
// odd lengths and non-hex characters are rejected.
func DecodeHex(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hex: %v", ErrEncoding, err)
	}
	return b, nil
}
