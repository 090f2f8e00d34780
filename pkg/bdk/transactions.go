package bdk

import (
	"context"

	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// GetPendingTransactions lists unconfirmed wallet transactions.
func (s *Service) GetPendingTransactions(ctx context.Context) result.Result[[]PendingTransaction] {
	return run(s, "getPendingTransactions", func() ([]PendingTransaction, error) {
		return s.pendingTransactions(ctx)
	})
}

// GetConfirmedTransactions lists confirmed wallet transactions.
func (s *Service) GetConfirmedTransactions(ctx context.Context) result.Result[[]ConfirmedTransaction] {
	return run(s, "getConfirmedTransactions", func() ([]ConfirmedTransaction, error) {
		return s.confirmedTransactions(ctx)
	})
}

// GetTransactions returns confirmed and pending transactions together.
// The two engine calls are made one after the other, confirmed first, and
// the whole operation fails if either does.
func (s *Service) GetTransactions(ctx context.Context) result.Result[*Transactions] {
	return run(s, "getTransactions", func() (*Transactions, error) {
		confirmed, err := s.confirmedTransactions(ctx)
		if err != nil {
			return nil, err
		}

		pending, err := s.pendingTransactions(ctx)
		if err != nil {
			return nil, err
		}

		return &Transactions{Confirmed: confirmed, Pending: pending}, nil
	})
}

func (s *Service) pendingTransactions(ctx context.Context) ([]PendingTransaction, error) {
	txs, err := call(ctx, s, "getPendingTransactions", func(ctx context.Context) ([]PendingTransaction, error) {
		return s.engine.GetPendingTransactions(ctx)
	})
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []PendingTransaction{}
	}
	return txs, nil
}

func (s *Service) confirmedTransactions(ctx context.Context) ([]ConfirmedTransaction, error) {
	txs, err := call(ctx, s, "getConfirmedTransactions", func(ctx context.Context) ([]ConfirmedTransaction, error) {
		return s.engine.GetConfirmedTransactions(ctx)
	})
	if err != nil {
		return nil, err
	}
	if txs == nil {
		txs = []ConfirmedTransaction{}
	}
	return txs, nil
}
