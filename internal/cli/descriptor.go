package cli

import (
	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/pkg/bdk"
)

func newDescriptorCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "descriptor",
		Short: "Build output descriptors",
	}
	cmd.AddCommand(newDescriptorCreateCmd(cc))
	return cmd
}

func newDescriptorCreateCmd(cc *CommandContext) *cobra.Command {
	var (
		req       bdk.DescriptorRequest
		threshold int
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an output descriptor from an xprv or a seed phrase",
		Long: `Create an output descriptor.

Exactly one of --xprv or --mnemonic is required. Types: wpkh (default),
p2wpkh, pkh, p2pkh, shp2wpkh, p2shp2wpkh and MULTI. MULTI builds a
sh(multi(...)) descriptor and needs --threshold and at least one --pubkey;
the deriving key counts as one signer.

Example:
  bdk descriptor create --xprv tprv8Zgx... --type pkh --path "/44'/1'/0'/0/*"
  bdk descriptor create --mnemonic - --network testnet
  bdk descriptor create --xprv tprv8Zgx... --type MULTI --threshold 2 \
    --pubkey tpubA... --pubkey tpubB...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("threshold") {
				req.Threshold = &threshold
			}
			if cmd.Flags().Changed("mnemonic") {
				mnemonic, err := resolveSecret(req.Mnemonic, "Seed phrase: ")
				if err != nil {
					return err
				}
				req.Mnemonic = mnemonic
				if req.Network == "" {
					req.Network = cc.Config.GetNetwork()
				}
			}
			if req.Type == "" {
				req.Type = cc.Config.Network.DescriptorType
			}
			if req.Path == "" {
				req.Path = cc.Config.Network.DerivationPath
			}

			ctx, cancel := contextWithTimeout(cmd, commandTimeout)
			defer cancel()
			return emit(cc, cc.Service.CreateDescriptor(ctx, req), printString)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&req.Type, "type", "t", "", "descriptor type")
	f.StringVar(&req.Xprv, "xprv", "", "extended private key")
	f.StringVar(&req.Mnemonic, "mnemonic", "", `seed phrase, or "-" to prompt`)
	f.StringVar(&req.Password, "password", "", "BIP39 passphrase")
	f.StringVar(&req.Network, "network", "", "network for seed phrase derivation (default from config)")
	f.StringVar(&req.Path, "path", "", "derivation path (default /84'/1'/0'/0/*)")
	f.StringArrayVar(&req.PublicKeys, "pubkey", nil, "co-signer public key (repeatable, MULTI only)")
	f.IntVar(&threshold, "threshold", 0, "required signatures (MULTI only)")
	return cmd
}
