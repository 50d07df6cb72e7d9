package chain

import (
	"fmt"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"

	"github.com/lockdapp/lockdex-backend/internal/decoder"
	"github.com/lockdapp/lockdex-backend/internal/model"
)

// ParamsForNetwork maps a network name onto chain parameters. The
// scaling testnet shares testnet address encoding.
func ParamsForNetwork(network model.Network) (*chaincfg.Params, error) {
	switch network {
	case model.Mainnet, "main", "livenet":
		return &chaincfg.MainNetParams, nil
	case model.Testnet:
		return &chaincfg.TestNet3Params, nil
	case model.STN:
		return &chaincfg.TestNet3Params, nil
	case model.Regtest:
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, fmt.Errorf("unsupported network %q", network)
	}
}

// AuthorAddress returns the address of the first standard output,
// skipping data carriers. Empty when no output decodes to an address.
func AuthorAddress(outputs [][]byte, params *chaincfg.Params) string {
	for _, script := range outputs {
		if len(script) == 0 || decoder.IsDataCarrier(script) {
			continue
		}
		_, addrs, _, err := txscript.ExtractPkScriptAddrs(script, params)
		if err != nil || len(addrs) == 0 {
			continue
		}
		return addrs[0].EncodeAddress()
	}
	return ""
}
