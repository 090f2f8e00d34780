package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/internal/output"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// walletFlags describe the wallet every wallet command initializes first.
type walletFlags struct {
	mnemonic    string
	descriptor  string
	password    string
	network     string
	backendURL  string
	proxy       string
	retryCount  int
	timeout     int
	backendName string
}

func (f *walletFlags) register(cmd *cobra.Command) {
	p := cmd.Flags()
	p.StringVar(&f.mnemonic, "mnemonic", "", `seed phrase, or "-" to prompt`)
	p.StringVar(&f.descriptor, "descriptor", "", "output descriptor")
	p.StringVar(&f.password, "password", "", "BIP39 passphrase")
	p.StringVar(&f.network, "network", "", "network (default from config)")
	p.StringVar(&f.backendURL, "backend-url", "", "chain backend URL (default from config)")
	p.StringVar(&f.proxy, "socks5", "", "SOCKS5 proxy for the backend")
	p.IntVar(&f.retryCount, "retry", 0, "backend retry count (default from config)")
	p.IntVar(&f.timeout, "timeout", 0, "backend timeout in seconds (default from config)")
	p.StringVar(&f.backendName, "backend", "", "backend type (default from config)")
}

// request merges flags with the configured backend defaults.
func (f *walletFlags) request(cmd *cobra.Command, cc *CommandContext) (bdk.WalletInitRequest, error) {
	mnemonic, err := resolveSecret(f.mnemonic, "Seed phrase: ")
	if err != nil {
		return bdk.WalletInitRequest{}, err
	}

	backend := cc.Config.GetBackend()
	req := bdk.WalletInitRequest{
		Mnemonic:       mnemonic,
		Descriptor:     f.descriptor,
		Password:       f.password,
		Network:        firstNonEmpty(f.network, cc.Config.GetNetwork()),
		BackendURL:     firstNonEmpty(f.backendURL, backend.URL),
		Socks5Proxy:    firstNonEmpty(f.proxy, backend.Socks5Proxy),
		RetryCount:     &backend.RetryCount,
		TimeoutSeconds: &backend.TimeoutSeconds,
		BackendName:    firstNonEmpty(f.backendName, backend.Name),
	}
	if cmd.Flags().Changed("retry") {
		req.RetryCount = &f.retryCount
	}
	if cmd.Flags().Changed("timeout") {
		req.TimeoutSeconds = &f.timeout
	}
	return req, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// withWallet initializes the wallet and, if that succeeds, runs op.
// A failed initialization is reported as the command's result.
func withWallet[T any](
	cc *CommandContext,
	flags *walletFlags,
	op func(ctx context.Context) result.Result[T],
	text output.TextFunc[T],
) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		req, err := flags.request(cmd, cc)
		if err != nil {
			return err
		}

		ctx, cancel := contextWithTimeout(cmd, commandTimeout)
		defer cancel()

		created := cc.Service.CreateWallet(ctx, req)
		if !created.OK {
			return emit(cc, result.Result[T]{Error: created.Error}, text)
		}
		if created.Data != nil {
			cc.Logger.Debug("wallet %s ready on %s", created.Data.ID, created.Data.Network)
		}
		return emit(cc, op(ctx), text)
	}
}

func newWalletCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Wallet operations",
		Long: `Wallet operations. Every subcommand first initializes the wallet from
--mnemonic or --descriptor (exactly one), then runs its operation.

Example:
  bdk wallet create --mnemonic - --network testnet
  bdk wallet address --descriptor "wpkh(tprv8Zgx.../84'/1'/0'/0/*)" --qr
  bdk wallet transactions --mnemonic - -o json`,
	}

	cmd.AddCommand(
		newWalletCreateCmd(cc),
		newWalletOpCmd(cc, "sync", "Synchronize the wallet with its backend",
			func(s *bdk.Service) func(context.Context) result.Result[string] { return s.SyncWallet }, printString),
		newWalletAddressCmd(cc),
		newWalletOpCmd(cc, "balance", "Show the wallet balance",
			func(s *bdk.Service) func(context.Context) result.Result[string] { return s.GetBalance }, printString),
		newWalletOpCmd(cc, "transactions", "List confirmed and pending transactions",
			func(s *bdk.Service) func(context.Context) result.Result[*bdk.Transactions] { return s.GetTransactions },
			output.WriteTransactions),
		newWalletOpCmd(cc, "pending", "List pending transactions",
			func(s *bdk.Service) func(context.Context) result.Result[[]bdk.PendingTransaction] {
				return s.GetPendingTransactions
			},
			output.WritePending),
		newWalletOpCmd(cc, "confirmed", "List confirmed transactions",
			func(s *bdk.Service) func(context.Context) result.Result[[]bdk.ConfirmedTransaction] {
				return s.GetConfirmedTransactions
			},
			output.WriteConfirmed),
	)
	return cmd
}

// newWalletOpCmd builds a wallet subcommand. The service method is looked
// up at run time because the service is created in PersistentPreRunE.
func newWalletOpCmd[T any](
	cc *CommandContext,
	use, short string,
	method func(*bdk.Service) func(context.Context) result.Result[T],
	text output.TextFunc[T],
) *cobra.Command {
	var flags walletFlags
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: withWallet(cc, &flags, func(ctx context.Context) result.Result[T] {
			return method(cc.Service)(ctx)
		}, text),
	}
	flags.register(cmd)
	return cmd
}

func newWalletCreateCmd(cc *CommandContext) *cobra.Command {
	var flags walletFlags
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Initialize a wallet and show its handle",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cmd, cc)
			if err != nil {
				return err
			}
			ctx, cancel := contextWithTimeout(cmd, commandTimeout)
			defer cancel()
			return emit(cc, cc.Service.CreateWallet(ctx, req), printWallet)
		},
	}
	flags.register(cmd)
	return cmd
}

func newWalletAddressCmd(cc *CommandContext) *cobra.Command {
	var (
		flags walletFlags
		qr    bool
	)
	cmd := &cobra.Command{
		Use:   "address",
		Short: "Show the next receive address",
		Args:  cobra.NoArgs,
	}
	cmd.RunE = withWallet(cc, &flags, func(ctx context.Context) result.Result[string] {
		return cc.Service.GetNewAddress(ctx)
	}, func(w io.Writer, addr string) error {
		if err := printString(w, addr); err != nil {
			return err
		}
		if qr {
			output.RenderQR(w, output.PaymentURI(addr), output.DefaultQRConfig())
		}
		return nil
	})
	flags.register(cmd)
	cmd.Flags().BoolVar(&qr, "qr", false, "render the address as a QR code (terminal only)")
	return cmd
}
