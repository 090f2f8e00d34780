package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/internal/keyfile"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	"github.com/coreyphillips/bdk-rn/pkg/result"
)

// exportWorkFactor is the scrypt work factor for key exports, lowered in tests.
//
//nolint:gochecknoglobals // test seam
var exportWorkFactor = keyfile.DefaultWorkFactor

// keyFlags are the inputs shared by key derivation commands.
type keyFlags struct {
	network  string
	mnemonic string
	password string
}

func (f *keyFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.network, "network", "", "network (default from config)")
	cmd.Flags().StringVar(&f.mnemonic, "mnemonic", stdinSecret, `seed phrase, or "-" to prompt`)
	cmd.Flags().StringVar(&f.password, "password", "", "BIP39 passphrase")
}

func (f *keyFlags) request(cc *CommandContext) (bdk.ExtendedKeyRequest, error) {
	mnemonic, err := resolveSecret(f.mnemonic, "Seed phrase: ")
	if err != nil {
		return bdk.ExtendedKeyRequest{}, err
	}
	network := f.network
	if network == "" {
		network = cc.Config.GetNetwork()
	}
	return bdk.ExtendedKeyRequest{Network: network, Mnemonic: mnemonic, Password: f.password}, nil
}

func newKeyCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Derive and export extended keys",
	}
	cmd.AddCommand(newKeyInfoCmd(cc), newKeyXprvCmd(cc), newKeyShowCmd(cc))
	return cmd
}

func newKeyInfoCmd(cc *CommandContext) *cobra.Command {
	var (
		flags  keyFlags
		export string
	)

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show the root extended key pair for a seed phrase",
		Long: `Derive the root extended private and public keys for a seed phrase.

With --export the key info is encrypted with a passphrase and written to a
file instead of being printed.

Example:
  bdk key info --network testnet
  bdk key info --export ~/backup/wallet.age`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cc)
			if err != nil {
				return err
			}

			ctx, cancel := contextWithTimeout(cmd, commandTimeout)
			defer cancel()
			res := cc.Service.GetExtendedKeyInfo(ctx, req)
			if export == "" || !res.OK {
				return emit(cc, res, printKeyInfo)
			}

			passphrase, err := promptNewPassphraseFn()
			if err != nil {
				return err
			}
			if err := keyfile.Save(export, res.Data, passphrase, exportWorkFactor); err != nil {
				return err
			}
			cc.Logger.Info("exported key %s to %s", res.Data.Fingerprint, export)

			return emit(cc, result.Success(map[string]string{
				"path":        export,
				"fingerprint": res.Data.Fingerprint,
			}), func(w io.Writer, m map[string]string) error {
				return printString(w, fmt.Sprintf("Exported key %s to %s", m["fingerprint"], m["path"]))
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&export, "export", "", "write the key info, encrypted, to this file")
	return cmd
}

func newKeyXprvCmd(cc *CommandContext) *cobra.Command {
	var flags keyFlags

	cmd := &cobra.Command{
		Use:   "xprv",
		Short: "Print only the root extended private key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := flags.request(cc)
			if err != nil {
				return err
			}

			ctx, cancel := contextWithTimeout(cmd, commandTimeout)
			defer cancel()
			return emit(cc, cc.Service.DeriveXprv(ctx, req), printString)
		},
	}

	flags.register(cmd)
	return cmd
}

func newKeyShowCmd(cc *CommandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>",
		Short: "Decrypt and print an exported key file",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			pass, err := promptPasswordFn("Export passphrase: ")
			if err != nil {
				return err
			}
			defer clear(pass)

			info, err := keyfile.Load(args[0], string(pass))
			return emit(cc, result.From(info, err), printKeyInfo)
		},
	}
}
