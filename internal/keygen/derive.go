package keygen

import (
	"fmt"

	"github.com/Klingon-tech/airgap/pkg/crypto"
	"github.com/Klingon-tech/airgap/pkg/types"
)

// Keys is every artifact derived for one index.
type Keys struct {
	Index     uint64
	Scalar    types.Scalar
	WIF       types.WIF
	PublicKey types.PublicKey
	Address   types.Address
}

// Scalar hashes the seed phrase for index with SHA-256 and returns the digest
// as a big-endian 256-bit integer. The result is not range checked; see
// crypto.ValidateScalar.
func (s Seed) Scalar(index uint64) types.Scalar {
	return types.Scalar(crypto.Hash(s.Phrase(index)))
}

// DeriveScalar parses seedText and derives the private scalar for index.
func DeriveScalar(seedText string, index uint64) (types.Scalar, error) {
	seed, err := ParseSeed(seedText)
	if err != nil {
		return types.Scalar{}, err
	}
	return seed.Scalar(index), nil
}

// DerivePublicKey returns the SEC1 uncompressed public key for scalar.
// Scalars outside [1, n-1] yield types.ErrInvalidScalar.
func DerivePublicKey(scalar types.Scalar) (types.PublicKey, error) {
	return crypto.PublicKeyFromScalar(scalar)
}

// EncodePrivateKey returns the uncompressed-key WIF text for scalar.
func EncodePrivateKey(scalar types.Scalar, net types.Network) (string, error) {
	if err := crypto.ValidateScalar(scalar); err != nil {
		return "", err
	}
	return types.NewWIF(scalar, net).String(), nil
}

// DeriveAddress returns the P2PKH address for a 65-byte uncompressed public key.
func DeriveAddress(pub []byte, net types.Network) (string, error) {
	addr, err := crypto.AddressFromPubKeyBytes(pub, net)
	if err != nil {
		return "", err
	}
	return addr.String(), nil
}

// Derive runs the whole pipeline for one index.
func (s Seed) Derive(index uint64, net types.Network) (Keys, error) {
	scalar := s.Scalar(index)
	key, err := crypto.PrivateKeyFromScalar(scalar)
	if err != nil {
		return Keys{}, fmt.Errorf("index %d: %w", index, err)
	}
	defer key.Zero()

	pub := key.PublicKey()
	addr, err := crypto.AddressFromPubKey(pub, net)
	if err != nil {
		return Keys{}, fmt.Errorf("index %d: %w", index, err)
	}
	return Keys{
		Index:     index,
		Scalar:    scalar,
		WIF:       types.NewWIF(scalar, net),
		PublicKey: pub,
		Address:   addr,
	}, nil
}

// KeysFromWIF rebuilds the public artifacts of a decoded WIF. Compressed WIFs
// are rejected since only uncompressed public keys are produced.
func KeysFromWIF(w types.WIF, net types.Network) (Keys, error) {
	if w.Compressed {
		return Keys{}, fmt.Errorf("%w: compressed wif", types.ErrEncoding)
	}
	if !w.IsForNet(net) {
		return Keys{}, fmt.Errorf("%w: wif version 0x%02x is not %s", types.ErrEncoding, w.Version, net)
	}
	pub, err := crypto.PublicKeyFromScalar(w.Scalar)
	if err != nil {
		return Keys{}, err
	}
	addr, err := crypto.AddressFromPubKey(pub, net)
	if err != nil {
		return Keys{}, err
	}
	return Keys{Scalar: w.Scalar, WIF: w, PublicKey: pub, Address: addr}, nil
}
