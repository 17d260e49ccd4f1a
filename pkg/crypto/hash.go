// Package crypto provides the hashing and secp256k1 primitives used to turn a
// private scalar into a public key and a pay-to-pubkey-hash address.
package crypto

import (
	"github.com/Klingon-tech/airgap/pkg/types"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160" //nolint:staticcheck // RIPEMD-160 is fixed by the address format.
)

// Hash computes a SHA-256 hash of the input data.
func Hash(data []byte) types.Hash {
	return types.Hash(chainhash.HashH(data))
}

// Hash160 computes RIPEMD-160(SHA-256(data)).
func Hash160(data []byte) [types.Hash160Size]byte {
	sha := Hash(data)
	r := ripemd160.New()
	r.Write(sha[:])
	var out [types.Hash160Size]byte
	copy(out[:], r.Sum(nil))
	return out
}
