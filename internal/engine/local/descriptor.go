package local

import (
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/hdkeychain"
	"github.com/btcsuite/btcd/chaincfg"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// receiveChain is a parsed single-key wpkh descriptor, reduced to its
// account-level public key and the unhardened steps below it.
type receiveChain struct {
	params   *chaincfg.Params
	account  *hdkeychain.ExtendedKey
	steps    []uint32
	wildcard bool
}

// parseWpkh parses descriptors of the form wpkh(<xkey>/<path>[/*]).
// Hardened steps are applied with the private key; the result only
// retains public material.
func parseWpkh(desc string, params *chaincfg.Params) (*receiveChain, error) {
	if !strings.HasPrefix(desc, "wpkh(") || !strings.HasSuffix(desc, ")") {
		return nil, bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrNotSupported, map[string]string{"descriptor": "only wpkh(<xkey>/path/*) is derived locally"}),
			"use a chain-backed engine for this descriptor type",
		)
	}

	parts := strings.Split(strings.TrimSuffix(strings.TrimPrefix(desc, "wpkh("), ")"), "/")
	key, err := hdkeychain.NewKeyFromString(parts[0])
	if err != nil {
		return nil, bdkerr.WithDetails(bdkerr.ErrInvalidDescriptor, map[string]string{"key": err.Error()})
	}
	if !key.IsForNet(params) {
		return nil, bdkerr.WithDetails(bdkerr.ErrInvalidDescriptor, map[string]string{"network": params.Name})
	}

	chain := &receiveChain{params: params}
	path := parts[1:]
	if n := len(path); n > 0 && path[n-1] == "*" {
		chain.wildcard = true
		path = path[:n-1]
	}

	hardenedPrefix := true
	for _, elem := range path {
		step, hardened, err := parseStep(elem)
		if err != nil {
			return nil, err
		}
		if hardened && !hardenedPrefix {
			return nil, bdkerr.WithDetails(bdkerr.ErrInvalidDescriptor, map[string]string{"path": "hardened step after unhardened step"})
		}
		if !hardened {
			hardenedPrefix = false
			chain.steps = append(chain.steps, step)
			continue
		}
		if !key.IsPrivate() {
			return nil, bdkerr.WithDetails(bdkerr.ErrInvalidDescriptor, map[string]string{"path": "hardened step requires a private key"})
		}
		if key, err = key.Derive(step); err != nil {
			return nil, err
		}
	}

	if chain.account, err = key.Neuter(); err != nil {
		return nil, err
	}
	return chain, nil
}

func parseStep(elem string) (uint32, bool, error) {
	hardened := strings.HasSuffix(elem, "'") || strings.HasSuffix(elem, "h")
	if hardened {
		elem = elem[:len(elem)-1]
	}

	n, err := strconv.ParseUint(elem, 10, 31)
	if err != nil {
		return 0, false, bdkerr.WithDetails(bdkerr.ErrInvalidDescriptor, map[string]string{"path": elem})
	}

	step := uint32(n)
	if hardened {
		step += hdkeychain.HardenedKeyStart
	}
	return step, hardened, nil
}

// String renders the watch-only form of the descriptor.
func (c *receiveChain) String() string {
	var sb strings.Builder
	sb.WriteString("wpkh(")
	sb.WriteString(c.account.String())
	for _, step := range c.steps {
		sb.WriteByte('/')
		sb.WriteString(strconv.FormatUint(uint64(step), 10))
	}
	if c.wildcard {
		sb.WriteString("/*")
	}
	sb.WriteByte(')')
	return sb.String()
}

// address derives the P2WPKH address at index. Index is ignored for
// descriptors without a wildcard.
func (c *receiveChain) address(index uint32) (string, error) {
	key := c.account
	var err error
	for _, step := range c.steps {
		if key, err = key.Derive(step); err != nil {
			return "", err
		}
	}
	if c.wildcard {
		if key, err = key.Derive(index); err != nil {
			return "", err
		}
	}

	pub, err := key.ECPubKey()
	if err != nil {
		return "", err
	}
	addr, err := btcutil.NewAddressWitnessPubKeyHash(btcutil.Hash160(pub.SerializeCompressed()), c.params)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}
