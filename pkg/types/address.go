package types

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// Address is a pay-to-pubkey-hash address: base58check(version || hash160).
type Address struct {
	Version byte
	Hash    [Hash160Size]byte
}

// NewAddress builds an address from a 20-byte public key hash.
func NewAddress(hash160 []byte, net Network) (Address, error) {
	if len(hash160) != Hash160Size {
		return Address{}, fmt.Errorf("%w: address hash must be %d bytes, got %d", ErrEncoding, Hash160Size, len(hash160))
	}
	a := Address{Version: net.PubKeyHashAddrID}
	copy(a.Hash[:], hash160)
	return a, nil
}

// String returns the base58check-encoded address.
func (a Address) String() string {
	return base58.CheckEncode(a.Hash[:], a.Version)
}

// IsForNet reports whether the address version byte matches the network.
func (a Address) IsForNet(net Network) bool {
	return a.Version == net.PubKeyHashAddrID
}

// ParseAddress decodes a base58check P2PKH address and verifies its checksum.
func ParseAddress(s string) (Address, error) {
	if s == "" {
		return Address{}, fmt.Errorf("%w: empty address", ErrEncoding)
	}
	body, version, err := base58.CheckDecode(s)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return Address{}, fmt.Errorf("%w: address", ErrChecksum)
		}
		return Address{}, fmt.Errorf("%w: address: %v", ErrEncoding, err)
	}
	if len(body) != Hash160Size {
		return Address{}, fmt.Errorf("%w: address body is %d bytes, want %d", ErrEncoding, len(body), Hash160Size)
	}
	a := Address{Version: version}
	copy(a.Hash[:], body)
	return a, nil
}
