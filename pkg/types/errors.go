package types

import "errors"

// Error kinds shared by every stage of the derivation pipeline.
var (
	// ErrEncoding reports text or bytes that cannot be represented in the
	// expected encoding: non-ASCII seed words, malformed hex, wrong lengths.
	ErrEncoding = errors.New("encoding error")

	// ErrInvalidScalar reports a private scalar outside [1, n-1].
	ErrInvalidScalar = errors.New("invalid private scalar")

	// ErrChecksum reports a base58check payload whose checksum does not match.
	ErrChecksum = errors.New("checksum mismatch")

	// ErrFormat reports a malformed table row or range.
	ErrFormat = errors.New("format error")
)
