package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/coreyphillips/bdk-rn/internal/config"
	"github.com/coreyphillips/bdk-rn/internal/engine/local"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

const testMnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

// stubEngine is the local engine with canned chain-backed capabilities.
type stubEngine struct {
	*local.Engine

	mu        sync.Mutex
	balance   string
	pending   []bdk.PendingTransaction
	confirmed []bdk.ConfirmedTransaction
	txid      string
	broadcast []string
}

func newStubEngine() *stubEngine {
	return &stubEngine{
		Engine:  local.New(),
		balance: "1500",
		txid:    "f4184fc596403b9d638783cf57adfe4c75c605f6356fbc91338530e9831e9e16",
	}
}

func (s *stubEngine) factory(*config.Config) bdk.Engine { return s }

func (s *stubEngine) SyncWallet(context.Context) (string, error) { return "synced", nil }

func (s *stubEngine) GetBalance(context.Context) (string, error) { return s.balance, nil }

func (s *stubEngine) BroadcastTx(_ context.Context, address string, amount decimal.Decimal) (*bdk.TxResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.broadcast = append(s.broadcast, address+" "+amount.String())
	return &bdk.TxResult{Txid: s.txid, Fee: 141}, nil
}

func (s *stubEngine) GetPendingTransactions(context.Context) ([]bdk.PendingTransaction, error) {
	return s.pending, nil
}

func (s *stubEngine) GetConfirmedTransactions(context.Context) ([]bdk.ConfirmedTransaction, error) {
	return s.confirmed, nil
}

// envelope is a decoded JSON result.
type envelope struct {
	OK    bool              `json:"ok"`
	Data  json.RawMessage   `json:"data"`
	Error *result.ErrorInfo `json:"error"`
}

// runCLI executes args against a fresh command tree rooted at home and
// returns stdout.
func runCLI(t *testing.T, factory EngineFactory, home string, args ...string) (string, error) {
	t.Helper()
	if factory == nil {
		factory = LocalEngine
	}

	root, cc := NewRootCmd(factory)
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"--home", home}, args...))

	err := executeRoot(context.Background(), root, cc)
	return stdout.String(), err
}

// runJSON runs args with JSON output and decodes the envelope.
func runJSON(t *testing.T, factory EngineFactory, home string, args ...string) (envelope, error) {
	t.Helper()
	stdout, err := runCLI(t, factory, home, append([]string{"-o", "json"}, args...)...)

	var env envelope
	require.NoError(t, json.Unmarshal([]byte(stdout), &env), "stdout: %q", stdout)
	return env, err
}

func decodeData[T any](t *testing.T, env envelope) T {
	t.Helper()
	require.True(t, env.OK, "unexpected failure: %+v", env.Error)
	var v T
	require.NoError(t, json.Unmarshal(env.Data, &v))
	return v
}

// withPrompts answers secret prompts from answers, keyed by prompt text,
// and restores the real prompts on cleanup.
func withPrompts(t *testing.T, answers map[string]string) {
	t.Helper()
	orig := promptPasswordFn
	origNew := promptNewPassphraseFn
	origWork := exportWorkFactor
	t.Cleanup(func() {
		promptPasswordFn = orig
		promptNewPassphraseFn = origNew
		exportWorkFactor = origWork
	})

	promptPasswordFn = func(prompt string) ([]byte, error) {
		v, ok := answers[prompt]
		if !ok {
			t.Fatalf("unexpected prompt %q", prompt)
		}
		return []byte(v), nil
	}
	promptNewPassphraseFn = promptNewPassphrase
	exportWorkFactor = 10
}
