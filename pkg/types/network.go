package types

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
)

// Network carries the version bytes that tag WIF keys and P2PKH addresses.
type Network struct {
	Name             string
	PrivateKeyID     byte
	PubKeyHashAddrID byte
}

// Supported networks. Version bytes are taken from the btcd chain parameters.
var (
	Mainnet = networkFromParams("mainnet", &chaincfg.MainNetParams)
	Testnet = networkFromParams("testnet", &chaincfg.TestNet3Params)
	Regtest = networkFromParams("regtest", &chaincfg.RegressionNetParams)
)

func networkFromParams(name string, p *chaincfg.Params) Network {
	return Network{
		Name:             name,
		PrivateKeyID:     p.PrivateKeyID,
		PubKeyHashAddrID: p.PubKeyHashAddrID,
	}
}

// NetworkByName returns the network with the given name.
func NetworkByName(name string) (Network, error) {
	switch name {
	case Mainnet.Name:
		return Mainnet, nil
	case Testnet.Name:
		return Testnet, nil
	case Regtest.Name:
		return Regtest, nil
	default:
		return Network{}, fmt.Errorf("unknown network %q", name)
	}
}

// String returns the network name.
func (n Network) String() string {
	return n.Name
}
