package types

import (
	"testing"

	"github.com/btcsuite/btcd/btcutil/base58"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hash160FromHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := DecodeHex(s)
	require.NoError(t, err)
	return b
}

func TestAddress_String(t *testing.T) {
	tests := []struct {
		name string
		hash string
		net  Network
		want string
	}{
		{"generator mainnet", "91b24bf9f5288532960ac687abb035127b1d28a5", Mainnet, "1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm"},
		{"generator testnet", "91b24bf9f5288532960ac687abb035127b1d28a5", Testnet, "mtoKs9V381UAhUia3d7Vb9GNak8Qvmcsme"},
		{"seed index 0 mainnet", "796234a21b15f96ac11532663aa0c16d500869d2", Mainnet, "1C4pQf465WoT5xMEJSJ5HdceCuAAQeZ6rv"},
		{"seed index 0 regtest", "796234a21b15f96ac11532663aa0c16d500869d2", Regtest, "mramhi94tYEhs4pr21GT7Ypy4tksFdBeQe"},
		{"zero hash", "0000000000000000000000000000000000000000", Mainnet, "1111111111111111111114oLvT2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewAddress(hash160FromHex(t, tt.hash), tt.net)
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
			assert.True(t, a.IsForNet(tt.net))

			parsed, err := ParseAddress(tt.want)
			require.NoError(t, err)
			assert.Equal(t, a, parsed)
		})
	}
}

func TestNewAddress_WrongLength(t *testing.T) {
	_, err := NewAddress(make([]byte, 19), Mainnet)
	assert.ErrorIs(t, err, ErrEncoding)
}

func TestParseAddress_Errors(t *testing.T) {
	_, err := ParseAddress("")
	assert.ErrorIs(t, err, ErrEncoding)

	_, err = ParseAddress("1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZn")
	assert.ErrorIs(t, err, ErrChecksum)

	raw := base58.Decode("1EHNa6Q4Jz2uvNExL497mE43ikXhwF6kZm")
	for i := range raw {
		corrupt := append([]byte(nil), raw...)
		corrupt[i] ^= 0x80
		_, err := ParseAddress(base58.Encode(corrupt))
		assert.ErrorIs(t, err, ErrChecksum, "flipped byte %d", i)
	}

	_, err = ParseAddress(base58.CheckEncode(make([]byte, 32), 0x00))
	assert.ErrorIs(t, err, ErrEncoding)
}
