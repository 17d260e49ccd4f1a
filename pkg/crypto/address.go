package crypto

import "github.com/Klingon-tech/airgap/pkg/types"

// AddressFromPubKey derives the P2PKH address of an uncompressed public key.
// Address = base58check(version || RIPEMD-160(SHA-256(0x04 || X || Y))).
func AddressFromPubKey(pub types.PublicKey, net types.Network) (types.Address, error) {
	if err := ValidatePublicKey(pub); err != nil {
		return types.Address{}, err
	}
	h := Hash160(pub[:])
	return types.NewAddress(h[:], net)
}

// AddressFromPubKeyBytes is AddressFromPubKey for raw bytes. Anything other
// than a 65-byte 0x04-tagged point is rejected with types.ErrEncoding.
func AddressFromPubKeyBytes(b []byte, net types.Network) (types.Address, error) {
	pub, err := types.PublicKeyFromBytes(b)
	if err != nil {
		return types.Address{}, err
	}
	return AddressFromPubKey(pub, net)
}
