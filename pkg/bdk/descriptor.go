package bdk

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// CreateDescriptor builds an output descriptor from either an extended
// private key or a seed phrase.
//
// Single-key descriptors have the form <method>(<xprv><path>). Multisig
// descriptors have the form sh(multi(<threshold><xprv>,<keys...><path>)),
// where the deriving key counts as one of the signers.
func (s *Service) CreateDescriptor(ctx context.Context, req DescriptorRequest) result.Result[string] {
	return run(s, "createDescriptor", func() (string, error) {
		return s.createDescriptor(ctx, req)
	})
}

func (s *Service) createDescriptor(ctx context.Context, req DescriptorRequest) (string, error) {
	hasXprv := Exists(req.Xprv)
	hasMnemonic := Exists(req.Mnemonic)

	switch {
	case !hasXprv && !hasMnemonic:
		return "", bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "xprv or mnemonic"}),
			"pass either an extended private key or a mnemonic",
		)
	case hasXprv && hasMnemonic:
		return "", bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrConflictingParameters, map[string]string{"params": "xprv, mnemonic"}),
			"pass either an extended private key or a mnemonic, not both",
		)
	}

	xprv := req.Xprv
	if hasMnemonic {
		if !Exists(req.Network) {
			return "", bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "network"})
		}

		derived, err := s.deriveXprv(ctx, ExtendedKeyRequest{
			Network:  req.Network,
			Mnemonic: req.Mnemonic,
			Password: req.Password,
		})
		if err != nil {
			return "", err
		}
		xprv = derived
	}

	path := req.Path
	if !Exists(path) {
		path = DefaultDerivationPath
	}

	if req.Type == DescriptorTypeMulti {
		return multisigDescriptor(xprv, path, req.PublicKeys, req.Threshold)
	}
	return singleKeyDescriptor(req.Type, xprv, path)
}

// descriptorMethod maps a descriptor type to its script method. Nested
// methods are returned with their inner opening parenthesis.
func descriptorMethod(descriptorType string) (string, bool) {
	switch descriptorType {
	case "", DescriptorTypeDefault, DescriptorTypeP2WPKH, DescriptorTypeWPKH:
		return "wpkh", true
	case DescriptorTypeP2PKH, DescriptorTypePKH:
		return "pkh", true
	case DescriptorTypeSHP2WPKH, DescriptorTypeP2SHP2WPKH:
		return "sh(wpkh", true
	default:
		return "", false
	}
}

func singleKeyDescriptor(descriptorType, xprv, path string) (string, error) {
	method, ok := descriptorMethod(descriptorType)
	if !ok {
		return "", bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrInvalidDescriptor, map[string]string{"type": descriptorType}),
			"supported types: wpkh, p2wpkh, pkh, p2pkh, shp2wpkh, p2shp2wpkh, MULTI",
		)
	}

	closing := strings.Repeat(")", strings.Count(method, "(")+1)
	return method + "(" + xprv + path + closing, nil
}

func multisigDescriptor(xprv, path string, publicKeys []string, threshold *int) (string, error) {
	if !ExistsInt(threshold) || *threshold == 0 {
		return "", bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "threshold"})
	}
	if len(publicKeys) == 0 {
		return "", bdkerr.WithDetails(bdkerr.ErrMissingParameter, map[string]string{"param": "publicKeys"})
	}

	// The deriving key is an implicit signer, so the upper bound is one
	// more than the number of public keys.
	if *threshold < 1 || *threshold > len(publicKeys)+1 {
		return "", bdkerr.WithDetails(bdkerr.ErrInvalidThreshold, map[string]string{
			"threshold": strconv.Itoa(*threshold),
			"signers":   strconv.Itoa(len(publicKeys) + 1),
		})
	}

	return fmt.Sprintf("sh(multi(%d%s,%s%s))", *threshold, xprv, strings.Join(publicKeys, ","), path), nil
}
