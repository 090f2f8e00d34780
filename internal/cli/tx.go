package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

func newTxCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	cmd.AddCommand(newTxBroadcastCmd(cc))
	return cmd
}

func newTxBroadcastCmd(cc *CommandContext) *cobra.Command {
	var (
		flags walletFlags
		req   bdk.BroadcastRequest
	)

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Pay an amount to an address",
		Long: `Initialize the wallet, then build, sign and broadcast a payment.

The amount must be a decimal number. It is passed to the engine unchanged.

Example:
  bdk tx broadcast --mnemonic - --to tb1q... --amount 15000`,
		Args: cobra.NoArgs,
		RunE: withWallet(cc, &flags, func(ctx context.Context) result.Result[*bdk.TxResult] {
			return cc.Service.BroadcastTx(ctx, req)
		}, printTx),
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&req.Address, "to", "", "recipient address")
	cmd.Flags().StringVar(&req.Amount, "amount", "", "amount to send")
	return cmd
}
