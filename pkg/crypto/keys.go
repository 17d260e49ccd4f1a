package crypto

import (
	"fmt"

	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// PrivateKey wraps a secp256k1 private key whose scalar is known to lie in
// [1, n-1].
type PrivateKey struct {
	key *secp256k1.PrivateKey
}

// ValidateScalar returns types.ErrInvalidScalar unless 1 <= s <= n-1.
func ValidateScalar(s types.Scalar) error {
	var k secp256k1.ModNScalar
	defer k.Zero()
	return validateModN(&k, s)
}

func validateModN(k *secp256k1.ModNScalar, s types.Scalar) error {
	if overflow := k.SetByteSlice(s[:]); overflow {
		return fmt.Errorf("%w: scalar is not below the curve order", types.ErrInvalidScalar)
	}
	if k.IsZero() {
		return fmt.Errorf("%w: scalar is zero", types.ErrInvalidScalar)
	}
	return nil
}

// PrivateKeyFromScalar creates a PrivateKey from a 256-bit scalar. Unlike
// secp256k1.PrivKeyFromBytes it never reduces the input modulo n; values
// outside [1, n-1] are rejected.
func PrivateKeyFromScalar(s types.Scalar) (*PrivateKey, error) {
	var k secp256k1.ModNScalar
	defer k.Zero()
	if err := validateModN(&k, s); err != nil {
		return nil, err
	}
	return &PrivateKey{key: secp256k1.NewPrivateKey(&k)}, nil
}

// PublicKey returns the SEC1 uncompressed public key k*G.
func (pk *PrivateKey) PublicKey() types.PublicKey {
	var out types.PublicKey
	copy(out[:], pk.key.PubKey().SerializeUncompressed())
	return out
}

// Scalar returns the 32-byte private scalar.
func (pk *PrivateKey) Scalar() types.Scalar {
	var s types.Scalar
	copy(s[:], pk.key.Serialize())
	return s
}

// Zero securely zeroes the private key memory.
func (pk *PrivateKey) Zero() {
	pk.key.Zero()
}

// PublicKeyFromScalar derives the SEC1 uncompressed public key for s.
func PublicKeyFromScalar(s types.Scalar) (types.PublicKey, error) {
	key, err := PrivateKeyFromScalar(s)
	if err != nil {
		return types.PublicKey{}, err
	}
	defer key.Zero()
	return key.PublicKey(), nil
}

// ValidatePublicKey checks that pub is a point on secp256k1.
func ValidatePublicKey(pub types.PublicKey) error {
	if _, err := secp256k1.ParsePubKey(pub[:]); err != nil {
		return fmt.Errorf("%w: public key: %v", types.ErrEncoding, err)
	}
	return nil
}
