package bdk

import (
	"context"
	"strconv"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// CreateWallet validates a wallet initialization request and hands it to
// the engine. The wallet is defined by exactly one of a descriptor or a
// seed phrase.
func (s *Service) CreateWallet(ctx context.Context, req WalletInitRequest) result.Result[*WalletHandle] {
	return run(s, "createWallet", func() (*WalletHandle, error) {
		return s.createWallet(ctx, req)
	})
}

func (s *Service) createWallet(ctx context.Context, req WalletInitRequest) (*WalletHandle, error) {
	hasDescriptor := Exists(req.Descriptor)
	hasMnemonic := Exists(req.Mnemonic)

	switch {
	case !hasDescriptor && !hasMnemonic:
		return nil, bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "descriptor or mnemonic"}),
			"pass either a descriptor or a mnemonic",
		)
	case hasDescriptor && hasMnemonic:
		return nil, bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrConflictingParameters, map[string]string{"params": "descriptor, mnemonic"}),
			"pass either a descriptor or a mnemonic, not both",
		)
	}

	if hasDescriptor && strings.IndexFunc(req.Descriptor, unicode.IsSpace) >= 0 {
		return nil, bdkerr.WithSuggestion(bdkerr.ErrInvalidDescriptor, "descriptor must not contain whitespace")
	}

	if hasMnemonic && !Exists(req.Network) {
		return nil, bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "network"})
	}

	return call(ctx, s, "createWallet", func(ctx context.Context) (*WalletHandle, error) {
		return s.engine.CreateWallet(
			ctx,
			req.Mnemonic,
			req.Password,
			req.Network,
			req.BackendURL,
			req.Socks5Proxy,
			intSlot(req.RetryCount),
			intSlot(req.TimeoutSeconds),
			req.BackendName,
			req.Descriptor,
		)
	})
}

// intSlot renders an optional number for a positional engine slot.
func intSlot(n *int) string {
	if !ExistsInt(n) {
		return ""
	}
	return strconv.Itoa(*n)
}

// SyncWallet synchronizes the engine wallet with its backend.
func (s *Service) SyncWallet(ctx context.Context) result.Result[string] {
	return run(s, "syncWallet", func() (string, error) {
		return call(ctx, s, "syncWallet", func(ctx context.Context) (string, error) {
			return s.engine.SyncWallet(ctx)
		})
	})
}

// GetNewAddress returns the next receive address.
func (s *Service) GetNewAddress(ctx context.Context) result.Result[string] {
	return run(s, "getNewAddress", func() (string, error) {
		return call(ctx, s, "getNewAddress", func(ctx context.Context) (string, error) {
			return s.engine.GetNewAddress(ctx)
		})
	})
}

// GetBalance returns the wallet balance.
func (s *Service) GetBalance(ctx context.Context) result.Result[string] {
	return run(s, "getBalance", func() (string, error) {
		return call(ctx, s, "getBalance", func(ctx context.Context) (string, error) {
			return s.engine.GetBalance(ctx)
		})
	})
}

// BroadcastTx sends amount to address once both are present and the
// amount is numeric.
func (s *Service) BroadcastTx(ctx context.Context, req BroadcastRequest) result.Result[*TxResult] {
	return run(s, "broadcastTx", func() (*TxResult, error) {
		return s.broadcastTx(ctx, req)
	})
}

func (s *Service) broadcastTx(ctx context.Context, req BroadcastRequest) (*TxResult, error) {
	if !Exists(req.Address) || !Exists(req.Amount) {
		return nil, bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "address and amount"})
	}

	amount, err := ParseAmount(req.Amount)
	if err != nil {
		return nil, err
	}

	return call(ctx, s, "broadcastTx", func(ctx context.Context) (*TxResult, error) {
		return s.engine.BroadcastTx(ctx, req.Address, amount)
	})
}

// ParseAmount parses a numeric amount string.
func ParseAmount(amount string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return decimal.Zero, bdkerr.WithDetails(bdkerr.ErrInvalidAmount, map[string]string{"amount": amount})
	}
	return d, nil
}
