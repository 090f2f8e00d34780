// Package local provides an in-process wallet engine. It covers the
// capabilities that need no chain backend: mnemonic generation, extended
// key derivation, and receive address derivation for single-key segwit
// wallets. Chain-backed capabilities report NOT_SUPPORTED.
package local

import (
	"context"
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/shopspring/decimal"
	"github.com/tyler-smith/go-bip39"

	"github.com/coreyphillips/bdk-rn/internal/securemem"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

var _ bdk.Engine = (*Engine)(nil)

// Engine is the in-process wallet engine. It holds at most one wallet,
// replaced by every CreateWallet call.
type Engine struct {
	mu        sync.Mutex
	wallet    *wallet
	nextIndex uint32
}

type wallet struct {
	handle  bdk.WalletHandle
	chain   *receiveChain
	backend backendSettings
}

// backendSettings are recorded for inspection; the local engine never dials.
type backendSettings struct {
	URL, Proxy, RetryCount, TimeoutSeconds, Name string
}

// New creates an engine with no wallet.
func New() *Engine {
	return &Engine{}
}

// GenerateMnemonic returns a new English BIP-39 phrase. The network is only
// checked for validity.
func (e *Engine) GenerateMnemonic(ctx context.Context, wordCount int, network string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if network != "" {
		if _, err := Params(network); err != nil {
			return "", err
		}
	}
	return newMnemonic(wordCount)
}

// GetExtendedKeyInfo derives the BIP-32 root key pair for mnemonic.
func (e *Engine) GetExtendedKeyInfo(ctx context.Context, network, mnemonic, password string) (*bdk.ExtendedKeyInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	master, normalized, err := masterKey(network, mnemonic, password)
	if err != nil {
		return nil, err
	}

	pub, err := master.Neuter()
	if err != nil {
		return nil, err
	}
	fingerprint, err := keyFingerprint(master)
	if err != nil {
		return nil, err
	}

	return &bdk.ExtendedKeyInfo{
		Fingerprint: fingerprint,
		Mnemonic:    normalized,
		Xprv:        master.String(),
		Xpub:        pub.String(),
	}, nil
}

func masterKey(network, mnemonic, password string) (*hdkeychain.ExtendedKey, string, error) {
	params, err := Params(network)
	if err != nil {
		return nil, "", err
	}
	if err := ValidateMnemonic(mnemonic); err != nil {
		return nil, "", err
	}

	normalized := NormalizeMnemonic(mnemonic)
	seed := securemem.From(bip39.NewSeed(normalized, password))
	defer seed.Destroy()

	master, err := hdkeychain.NewMaster(seed.Bytes(), params)
	if err != nil {
		return nil, "", err
	}
	return master, normalized, nil
}

func keyFingerprint(key *hdkeychain.ExtendedKey) (string, error) {
	pub, err := key.ECPubKey()
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(btcutil.Hash160(pub.SerializeCompressed())[:4]), nil
}

// CreateWallet replaces the current wallet. Mnemonic wallets get a BIP-84
// receive chain; descriptor wallets must be wpkh with an extended key.
// Backend settings are recorded but never used.
func (e *Engine) CreateWallet(
	ctx context.Context,
	mnemonic, password, network, backendURL, proxy,
	retryCount, timeoutSeconds, backendName, descriptor string,
) (*bdk.WalletHandle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if network == "" {
		network = NetworkTestnet
	}
	params, err := Params(network)
	if err != nil {
		return nil, err
	}

	if descriptor == "" {
		master, _, err := masterKey(network, mnemonic, password)
		if err != nil {
			return nil, err
		}
		descriptor = fmt.Sprintf("wpkh(%s/84'/%d'/0'/0/*)", master.String(), coinType(params))
	}

	chain, err := parseWpkh(descriptor, params)
	if err != nil {
		return nil, err
	}
	first, err := chain.address(0)
	if err != nil {
		return nil, err
	}

	public := chain.String()
	w := &wallet{
		handle: bdk.WalletHandle{
			ID:         hex.EncodeToString(chainhash.HashB([]byte(public))[:8]),
			Network:    networkName(params),
			Descriptor: public,
			Address:    first,
		},
		chain: chain,
		backend: backendSettings{
			URL:            backendURL,
			Proxy:          proxy,
			RetryCount:     retryCount,
			TimeoutSeconds: timeoutSeconds,
			Name:           backendName,
		},
	}

	e.mu.Lock()
	e.wallet = w
	e.nextIndex = 0
	e.mu.Unlock()

	handle := w.handle
	return &handle, nil
}

// GetNewAddress returns the next receive address, starting at index 0.
func (e *Engine) GetNewAddress(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if e.wallet == nil {
		return "", errNoWallet
	}
	addr, err := e.wallet.chain.address(e.nextIndex)
	if err != nil {
		return "", err
	}
	if e.wallet.chain.wildcard {
		e.nextIndex++
	}
	return addr, nil
}

// SyncWallet is not supported without a chain backend.
func (e *Engine) SyncWallet(context.Context) (string, error) {
	return "", notSupported("syncWallet")
}

// GetBalance is not supported without a chain backend.
func (e *Engine) GetBalance(context.Context) (string, error) {
	return "", notSupported("getBalance")
}

// BroadcastTx is not supported without a chain backend.
func (e *Engine) BroadcastTx(context.Context, string, decimal.Decimal) (*bdk.TxResult, error) {
	return nil, notSupported("broadcastTx")
}

// GetPendingTransactions is not supported without a chain backend.
func (e *Engine) GetPendingTransactions(context.Context) ([]bdk.PendingTransaction, error) {
	return nil, notSupported("getPendingTransactions")
}

// GetConfirmedTransactions is not supported without a chain backend.
func (e *Engine) GetConfirmedTransactions(context.Context) ([]bdk.ConfirmedTransaction, error) {
	return nil, notSupported("getConfirmedTransactions")
}

//nolint:gochecknoglobals // sentinel
var errNoWallet = bdkerr.WithSuggestion(bdkerr.ErrInvalidInput, "create a wallet before requesting addresses")

func notSupported(capability string) error {
	return bdkerr.WithSuggestion(
		bdkerr.WithDetails(bdkerr.ErrNotSupported, map[string]string{"capability": capability}),
		"the local engine has no chain backend",
	)
}
