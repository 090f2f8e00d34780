package bdk

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var errEngineDown = errors.New("electrum: connection refused")

// mockEngine records every capability call in order and returns canned values.
type mockEngine struct {
	mu    sync.Mutex
	calls []string

	mnemonic     string
	keyInfo      *ExtendedKeyInfo
	wallet       *WalletHandle
	address      string
	balance      string
	syncStatus   string
	txResult     *TxResult
	pending      []PendingTransaction
	confirmed    []ConfirmedTransaction
	errs         map[string]error
	panicOn      string
	lastWordCnt  int
	lastNetwork  string
	lastKeyArgs  [3]string
	lastSlots    [9]string
	lastAddress  string
	lastAmount   decimal.Decimal
	pendingCalls int
}

func newMockEngine() *mockEngine {
	return &mockEngine{
		mnemonic: "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about",
		keyInfo: &ExtendedKeyInfo{
			Fingerprint: "73c5da0a",
			Xprv:        "tprv8ZgxMBicQKsPe5YMU9gHen4Ez3ApihUfykaqUorj9t6FDqy3nP6eoXiAo2ssvpAjoLroQxHqr3R5nE3a5dU3DHTjTgJDd7zrbniJr6nrCzd",
		},
		wallet:     &WalletHandle{ID: "wallet-1", Network: "testnet"},
		address:    "tb1qcr8te4kr609gcawutmrza0j4xv80jy8zmfp6l0",
		balance:    "0",
		syncStatus: "synced",
		txResult:   &TxResult{Txid: "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16"},
		errs:       map[string]error{},
	}
}

func (m *mockEngine) record(name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls = append(m.calls, name)
	if m.panicOn == name {
		panic(fmt.Sprintf("%s exploded", name))
	}
	return m.errs[name]
}

func (m *mockEngine) callLog() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.calls))
	copy(out, m.calls)
	return out
}

func (m *mockEngine) GenerateMnemonic(_ context.Context, wordCount int, network string) (string, error) {
	m.lastWordCnt = wordCount
	m.lastNetwork = network
	if err := m.record("generateMnemonic"); err != nil {
		return "", err
	}
	return m.mnemonic, nil
}

func (m *mockEngine) GetExtendedKeyInfo(_ context.Context, network, mnemonic, password string) (*ExtendedKeyInfo, error) {
	m.lastKeyArgs = [3]string{network, mnemonic, password}
	if err := m.record("getExtendedKeyInfo"); err != nil {
		return nil, err
	}
	return m.keyInfo, nil
}

func (m *mockEngine) CreateWallet(
	_ context.Context,
	mnemonic, password, network, backendURL, proxy,
	retryCount, timeoutSeconds, backendName, descriptor string,
) (*WalletHandle, error) {
	m.lastSlots = [9]string{
		mnemonic, password, network, backendURL, proxy,
		retryCount, timeoutSeconds, backendName, descriptor,
	}
	if err := m.record("createWallet"); err != nil {
		return nil, err
	}
	return m.wallet, nil
}

func (m *mockEngine) SyncWallet(_ context.Context) (string, error) {
	if err := m.record("syncWallet"); err != nil {
		return "", err
	}
	return m.syncStatus, nil
}

func (m *mockEngine) GetNewAddress(_ context.Context) (string, error) {
	if err := m.record("getNewAddress"); err != nil {
		return "", err
	}
	return m.address, nil
}

func (m *mockEngine) GetBalance(_ context.Context) (string, error) {
	if err := m.record("getBalance"); err != nil {
		return "", err
	}
	return m.balance, nil
}

func (m *mockEngine) BroadcastTx(_ context.Context, address string, amount decimal.Decimal) (*TxResult, error) {
	m.lastAddress = address
	m.lastAmount = amount
	if err := m.record("broadcastTx"); err != nil {
		return nil, err
	}
	return m.txResult, nil
}

func (m *mockEngine) GetPendingTransactions(_ context.Context) ([]PendingTransaction, error) {
	m.pendingCalls++
	if err := m.record("getPendingTransactions"); err != nil {
		return nil, err
	}
	return m.pending, nil
}

func (m *mockEngine) GetConfirmedTransactions(_ context.Context) ([]ConfirmedTransaction, error) {
	if err := m.record("getConfirmedTransactions"); err != nil {
		return nil, err
	}
	return m.confirmed, nil
}

// mockLogger captures log lines.
type mockLogger struct {
	mu     sync.Mutex
	debugs []string
	errors []string
}

func (l *mockLogger) Debug(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.debugs = append(l.debugs, fmt.Sprintf(format, args...))
}

func (l *mockLogger) Error(format string, args ...any) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

// mockMetrics counts recorded operations and engine calls.
type mockMetrics struct {
	mu          sync.Mutex
	operations  map[string]int
	opErrors    int
	engineCalls map[string]int
}

func newMockMetrics() *mockMetrics {
	return &mockMetrics{
		operations:  map[string]int{},
		engineCalls: map[string]int{},
	}
}

func (m *mockMetrics) RecordOperation(name string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.operations[name]++
	if err != nil {
		m.opErrors++
	}
}

func (m *mockMetrics) RecordEngineCall(capability string, _ time.Duration, _ error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.engineCalls[capability]++
}

func newTestService(engine Engine) (*Service, *mockLogger, *mockMetrics) {
	logger := &mockLogger{}
	metrics := newMockMetrics()
	svc := NewService(&Config{
		Engine:  engine,
		Logger:  logger,
		Metrics: metrics,
	})
	return svc, logger, metrics
}

func intPtr(n int) *int {
	return &n
}
