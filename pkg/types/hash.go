// Package types defines the value types that flow through the key derivation
// pipeline, together with their byte and text encodings.
package types

import "encoding/hex"

// HashSize is the length of a SHA-256 digest in bytes.
const HashSize = 32

// Hash160Size is the length of a RIPEMD-160(SHA-256(x)) digest in bytes.
const Hash160Size = 20

// Hash represents a 256-bit digest.
type Hash [HashSize]byte

// String returns the hex-encoded hash.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}
