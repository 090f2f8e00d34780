package cli

import (
	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/pkg/bdk"
)

func newMnemonicCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mnemonic",
		Short: "Generate seed phrases",
	}
	cmd.AddCommand(newMnemonicGenerateCmd(cc))
	return cmd
}

func newMnemonicGenerateCmd(cc *CommandContext) *cobra.Command {
	var (
		entropy   int
		wordCount int
		network   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a new BIP39 seed phrase",
		Long: `Generate a new seed phrase.

--entropy takes precedence over --words when both are given. Supported
entropy sizes are 128, 160, 192, 224 and 256 bits. Without either flag a
12-word phrase is generated.

Example:
  bdk mnemonic generate
  bdk mnemonic generate --entropy 256
  bdk mnemonic generate --words 18`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req := bdk.GenerateMnemonicRequest{Network: network}
			if cmd.Flags().Changed("entropy") {
				req.EntropyBits = &entropy
			}
			if cmd.Flags().Changed("words") {
				req.WordCount = &wordCount
			}

			ctx, cancel := contextWithTimeout(cmd, commandTimeout)
			defer cancel()
			return emit(cc, cc.Service.GenerateMnemonic(ctx, req), printString)
		},
	}

	cmd.Flags().IntVar(&entropy, "entropy", 0, "entropy size in bits")
	cmd.Flags().IntVarP(&wordCount, "words", "w", 0, "number of words")
	cmd.Flags().StringVar(&network, "network", "", "network hint passed to the engine")
	return cmd
}
