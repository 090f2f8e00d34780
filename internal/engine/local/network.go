package local

import (
	"strings"

	"github.com/btcsuite/btcd/chaincfg"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// Network names accepted by the engine.
const (
	NetworkBitcoin = "bitcoin"
	NetworkTestnet = "testnet"
	NetworkSignet  = "signet"
	NetworkRegtest = "regtest"
)

// Params returns the chain parameters for a network name. "mainnet" is
// accepted as an alias for bitcoin.
func Params(network string) (*chaincfg.Params, error) {
	switch strings.ToLower(strings.TrimSpace(network)) {
	case NetworkBitcoin, "mainnet":
		return &chaincfg.MainNetParams, nil
	case NetworkTestnet:
		return &chaincfg.TestNet3Params, nil
	case NetworkSignet:
		return &chaincfg.SigNetParams, nil
	case NetworkRegtest:
		return &chaincfg.RegressionNetParams, nil
	default:
		return nil, bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrInvalidInput, map[string]string{"network": network}),
			"use one of bitcoin, testnet, signet, regtest",
		)
	}
}

// coinType is the BIP-44 coin type used in default derivation paths.
func coinType(params *chaincfg.Params) uint32 {
	if params.Net == chaincfg.MainNetParams.Net {
		return 0
	}
	return 1
}

// networkName returns the engine's name for params.
func networkName(params *chaincfg.Params) string {
	switch params.Net {
	case chaincfg.MainNetParams.Net:
		return NetworkBitcoin
	case chaincfg.TestNet3Params.Net:
		return NetworkTestnet
	case chaincfg.SigNetParams.Net:
		return NetworkSignet
	default:
		return NetworkRegtest
	}
}
