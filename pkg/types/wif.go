package types

import (
	"errors"
	"fmt"

	"github.com/btcsuite/btcd/btcutil/base58"
)

// compressMagic is the suffix byte that marks a WIF whose public key is to be
// serialized in compressed form. Uncompressed WIFs carry no suffix.
const compressMagic = 0x01

// WIF is a private scalar in Wallet Import Format:
// base58check(version || scalar [|| 0x01]).
type WIF struct {
	Version    byte
	Scalar     Scalar
	Compressed bool
}

// NewWIF returns an uncompressed-key WIF for the given network.
func NewWIF(s Scalar, net Network) WIF {
	return WIF{Version: net.PrivateKeyID, Scalar: s}
}

// String returns the base58check text form.
func (w WIF) String() string {
	body := w.Scalar[:]
	if w.Compressed {
		body = append(w.Scalar.Bytes(), compressMagic)
	}
	return base58.CheckEncode(body, w.Version)
}

// DecodeWIF parses a base58check WIF string. Both the 32-byte (uncompressed)
// and 33-byte with 0x01 suffix (compressed) bodies are accepted. The scalar
// range is not checked here.
func DecodeWIF(s string) (WIF, error) {
	body, version, err := base58.CheckDecode(s)
	if err != nil {
		if errors.Is(err, base58.ErrChecksum) {
			return WIF{}, fmt.Errorf("%w: wif", ErrChecksum)
		}
		return WIF{}, fmt.Errorf("%w: wif: %v", ErrEncoding, err)
	}

	var w WIF
	w.Version = version
	switch {
	case len(body) == ScalarSize:
	case len(body) == ScalarSize+1 && body[ScalarSize] == compressMagic:
		w.Compressed = true
	default:
		return WIF{}, fmt.Errorf("%w: wif body is %d bytes", ErrEncoding, len(body))
	}
	copy(w.Scalar[:], body[:ScalarSize])
	return w, nil
}

// IsForNet reports whether the WIF version byte matches the network.
func (w WIF) IsForNet(net Network) bool {
	return w.Version == net.PrivateKeyID
}
