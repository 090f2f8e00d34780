package bdk

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Engine is the external wallet engine the façade forwards to. It owns key
// derivation, chain sync, UTXO tracking and broadcast. Implementations
// receive arguments that already passed the façade's validation.
type Engine interface {
	// GenerateMnemonic returns a new seed phrase of wordCount words.
	GenerateMnemonic(ctx context.Context, wordCount int, network string) (string, error)

	// GetExtendedKeyInfo derives the root extended key pair for a seed phrase.
	GetExtendedKeyInfo(ctx context.Context, network, mnemonic, password string) (*ExtendedKeyInfo, error)

	// CreateWallet initializes the engine's wallet. Every slot is always
	// present; absent values are passed as empty strings.
	CreateWallet(
		ctx context.Context,
		mnemonic, password, network, backendURL, proxy,
		retryCount, timeoutSeconds, backendName, descriptor string,
	) (*WalletHandle, error)

	// SyncWallet synchronizes the wallet with its chain backend.
	SyncWallet(ctx context.Context) (string, error)

	// GetNewAddress returns the next unused receive address.
	GetNewAddress(ctx context.Context) (string, error)

	// GetBalance returns the wallet balance.
	GetBalance(ctx context.Context) (string, error)

	// BroadcastTx builds, signs and broadcasts a payment of amount to address.
	BroadcastTx(ctx context.Context, address string, amount decimal.Decimal) (*TxResult, error)

	// GetPendingTransactions lists unconfirmed wallet transactions.
	GetPendingTransactions(ctx context.Context) ([]PendingTransaction, error)

	// GetConfirmedTransactions lists confirmed wallet transactions.
	GetConfirmedTransactions(ctx context.Context) ([]ConfirmedTransaction, error)
}

// LogWriter provides logging capabilities.
type LogWriter interface {
	Debug(format string, args ...any)
	Error(format string, args ...any)
}

// MetricsRecorder receives operation and engine call counters.
type MetricsRecorder interface {
	RecordOperation(name string, err error)
	RecordEngineCall(capability string, duration time.Duration, err error)
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...any) {}
func (nopLogger) Error(string, ...any) {}

type nopMetrics struct{}

func (nopMetrics) RecordOperation(string, error)                 {}
func (nopMetrics) RecordEngineCall(string, time.Duration, error) {}
