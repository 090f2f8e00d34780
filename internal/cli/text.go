package cli

import (
	"fmt"
	"io"

	"github.com/coreyphillips/bdk-rn/pkg/bdk"
)

func printString(w io.Writer, s string) error {
	_, err := fmt.Fprintln(w, s)
	return err
}

func printKeyInfo(w io.Writer, info *bdk.ExtendedKeyInfo) error {
	if info == nil {
		return nil
	}
	out(w, "Fingerprint: %s\n", info.Fingerprint)
	out(w, "Xpub:        %s\n", info.Xpub)
	out(w, "Xprv:        %s\n", info.Xprv)
	if info.Mnemonic != "" {
		out(w, "Mnemonic:    %s\n", info.Mnemonic)
	}
	return nil
}

func printWallet(w io.Writer, h *bdk.WalletHandle) error {
	if h == nil {
		return nil
	}
	out(w, "Wallet:     %s\n", h.ID)
	out(w, "Network:    %s\n", h.Network)
	out(w, "Descriptor: %s\n", h.Descriptor)
	if h.Address != "" {
		out(w, "Address:    %s\n", h.Address)
	}
	return nil
}

func printTx(w io.Writer, tx *bdk.TxResult) error {
	if tx == nil {
		return nil
	}
	out(w, "Txid: %s\n", tx.Txid)
	out(w, "Fee:  %d sat\n", tx.Fee)
	return nil
}
