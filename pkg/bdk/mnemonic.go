package bdk

import (
	"context"
	"strconv"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// DefaultWordCount is used when neither entropy nor word count is given.
const DefaultWordCount = 12

// entropyWordCounts maps BIP-39 entropy sizes to their word counts.
//
//nolint:gochecknoglobals // Fixed BIP-39 table
var entropyWordCounts = map[int]int{
	128: 12,
	160: 15,
	192: 18,
	224: 21,
	256: 24,
}

// ResolveMnemonicLength returns the word count for a mnemonic request.
// Entropy is authoritative: when it is supplied, any word count is
// ignored. With only a word count it is used as-is; with neither the
// default of 12 words applies. Unknown entropy sizes resolve to 0.
func ResolveMnemonicLength(entropyBits, wordCount *int) int {
	if ExistsInt(entropyBits) {
		return entropyWordCounts[*entropyBits]
	}
	if ExistsInt(wordCount) {
		return *wordCount
	}
	return DefaultWordCount
}

// GenerateMnemonic asks the engine for a new seed phrase.
func (s *Service) GenerateMnemonic(ctx context.Context, req GenerateMnemonicRequest) result.Result[string] {
	return run(s, "generateMnemonic", func() (string, error) {
		return s.generateMnemonic(ctx, req)
	})
}

func (s *Service) generateMnemonic(ctx context.Context, req GenerateMnemonicRequest) (string, error) {
	wordCount := ResolveMnemonicLength(req.EntropyBits, req.WordCount)
	// A bare word count is the engine's to validate.
	if ExistsInt(req.EntropyBits) && wordCount == 0 {
		return "", bdkerr.WithDetails(bdkerr.ErrInvalidEntropy, map[string]string{
			"entropy": strconv.Itoa(*req.EntropyBits),
		})
	}

	// A present network is replaced with testnet; an absent one is
	// forwarded untouched.
	network := req.Network
	if Exists(network) {
		network = NetworkTestnet
	}

	return call(ctx, s, "generateMnemonic", func(ctx context.Context) (string, error) {
		return s.engine.GenerateMnemonic(ctx, wordCount, network)
	})
}
