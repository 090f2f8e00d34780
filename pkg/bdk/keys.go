package bdk

import (
	"context"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// GetExtendedKeyInfo derives the extended key pair for a seed phrase.
// Fields are forwarded without local validation; the engine decides what
// it rejects.
func (s *Service) GetExtendedKeyInfo(ctx context.Context, req ExtendedKeyRequest) result.Result[*ExtendedKeyInfo] {
	return run(s, "getExtendedKeyInfo", func() (*ExtendedKeyInfo, error) {
		return s.getExtendedKeyInfo(ctx, req)
	})
}

// DeriveXprv derives the extended private key for a seed phrase.
func (s *Service) DeriveXprv(ctx context.Context, req ExtendedKeyRequest) result.Result[string] {
	return run(s, "deriveXprv", func() (string, error) {
		return s.deriveXprv(ctx, req)
	})
}

func (s *Service) getExtendedKeyInfo(ctx context.Context, req ExtendedKeyRequest) (*ExtendedKeyInfo, error) {
	return call(ctx, s, "getExtendedKeyInfo", func(ctx context.Context) (*ExtendedKeyInfo, error) {
		return s.engine.GetExtendedKeyInfo(ctx, req.Network, req.Mnemonic, req.Password)
	})
}

func (s *Service) deriveXprv(ctx context.Context, req ExtendedKeyRequest) (string, error) {
	info, err := s.getExtendedKeyInfo(ctx, req)
	if err != nil {
		s.logger.Error("deriving xprv: %v", err)
		return "", err
	}
	if info == nil {
		return "", bdkerr.WithSuggestion(bdkerr.ErrEngine, "engine returned no extended key info")
	}
	return info.Xprv, nil
}
