package bdk

// Descriptor types accepted by CreateDescriptor.
const (
	DescriptorTypeDefault    = "default"
	DescriptorTypeP2WPKH     = "p2wpkh"
	DescriptorTypeWPKH       = "wpkh"
	DescriptorTypeP2PKH      = "p2pkh"
	DescriptorTypePKH        = "pkh"
	DescriptorTypeSHP2WPKH   = "shp2wpkh"
	DescriptorTypeP2SHP2WPKH = "p2shp2wpkh"
	DescriptorTypeMulti      = "MULTI"
)

// DefaultDerivationPath is the BIP-84 testnet external chain with a
// wildcard index.
const DefaultDerivationPath = "/84'/1'/0'/0/*"

// NetworkTestnet is the network name forced onto mnemonic generation
// requests that carry a network.
const NetworkTestnet = "testnet"

// GenerateMnemonicRequest contains parameters for generating a seed phrase.
type GenerateMnemonicRequest struct {
	EntropyBits *int   `json:"entropy,omitempty"`
	WordCount   *int   `json:"length,omitempty"`
	Network     string `json:"network,omitempty"`
}

// ExtendedKeyRequest contains parameters for deriving extended keys.
type ExtendedKeyRequest struct {
	Network  string `json:"network"`
	Mnemonic string `json:"mnemonic"`
	Password string `json:"password,omitempty"`
}

// DescriptorRequest contains parameters for building an output descriptor.
// Exactly one of Xprv or Mnemonic must be set.
type DescriptorRequest struct {
	Type       string   `json:"type,omitempty"`
	Mnemonic   string   `json:"mnemonic,omitempty"`
	Password   string   `json:"password,omitempty"`
	Network    string   `json:"network,omitempty"`
	Xprv       string   `json:"xprv,omitempty"`
	Path       string   `json:"path,omitempty"`
	PublicKeys []string `json:"publicKeys,omitempty"`
	Threshold  *int     `json:"threshold,omitempty"`
}

// WalletInitRequest contains parameters for initializing the engine wallet.
// Exactly one of Descriptor or Mnemonic must be set.
type WalletInitRequest struct {
	Mnemonic       string `json:"mnemonic,omitempty"`
	Descriptor     string `json:"descriptor,omitempty"`
	Password       string `json:"password,omitempty"`
	Network        string `json:"network,omitempty"`
	BackendURL     string `json:"blockChainConfigUrl,omitempty"`
	Socks5Proxy    string `json:"blockChainSocket5,omitempty"`
	RetryCount     *int   `json:"retry,omitempty"`
	TimeoutSeconds *int   `json:"timeOut,omitempty"`
	BackendName    string `json:"blockChainName,omitempty"`
}

// BroadcastRequest contains parameters for a payment broadcast.
type BroadcastRequest struct {
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// ExtendedKeyInfo is the engine's extended key derivation result. The
// façade only consumes Xprv.
type ExtendedKeyInfo struct {
	Fingerprint string `json:"fingerprint,omitempty"`
	Mnemonic    string `json:"mnemonic,omitempty"`
	Xprv        string `json:"xprv"`
	Xpub        string `json:"xpub,omitempty"`
}

// WalletHandle is the engine's wallet construction result.
type WalletHandle struct {
	ID         string `json:"id,omitempty"`
	Network    string `json:"network,omitempty"`
	Descriptor string `json:"descriptor,omitempty"`
	Address    string `json:"address,omitempty"`
}

// TxResult is the engine's broadcast result.
type TxResult struct {
	Txid string `json:"txid"`
	Fee  uint64 `json:"fee,omitempty"`
}

// PendingTransaction is an unconfirmed wallet transaction.
type PendingTransaction struct {
	Txid     string `json:"txid"`
	Received uint64 `json:"received"`
	Sent     uint64 `json:"sent"`
	Fees     uint64 `json:"fees"`
}

// ConfirmedTransaction is a wallet transaction included in a block.
type ConfirmedTransaction struct {
	Txid           string `json:"txid"`
	BlockTimestamp uint64 `json:"block_timestamp"`
	BlockHeight    uint32 `json:"block_height"`
	Received       uint64 `json:"received"`
	Sent           uint64 `json:"sent"`
	Fees           uint64 `json:"fees"`
}

// Transactions combines confirmed and pending wallet transactions.
type Transactions struct {
	Confirmed []ConfirmedTransaction `json:"confirmed"`
	Pending   []PendingTransaction   `json:"pending"`
}
