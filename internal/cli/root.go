// Package cli implements the bdk command-line interface on top of the
// pkg/bdk façade.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/internal/config"
	"github.com/coreyphillips/bdk-rn/internal/engine/local"
	"github.com/coreyphillips/bdk-rn/internal/metrics"
	"github.com/coreyphillips/bdk-rn/internal/output"
	"github.com/coreyphillips/bdk-rn/pkg/bdk"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// LocalEngine is the default EngineFactory.
func LocalEngine(*config.Config) bdk.Engine {
	return local.New()
}

type globalFlags struct {
	home    string
	output  string
	verbose bool
}

// NewRootCmd builds the command tree. The returned context is populated
// when a command runs.
func NewRootCmd(newEngine EngineFactory) (*cobra.Command, *CommandContext) {
	var flags globalFlags
	cc := &CommandContext{}

	root := &cobra.Command{
		Use:   "bdk",
		Short: "Bitcoin descriptor wallet CLI",
		Long: `bdk validates wallet requests, derives keys and output descriptors,
and forwards wallet operations to a wallet engine.

Every command prints a result envelope: {"ok": true, "data": ...} on
success or {"ok": false, "error": {...}} on failure.

Example:
  bdk mnemonic generate --entropy 256
  bdk descriptor create --mnemonic - --network testnet
  bdk wallet address --mnemonic - --network testnet`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initContext(cmd, cc, &flags, newEngine)
		},
	}

	root.PersistentFlags().StringVar(&flags.home, "home", "", "bdk data directory (default: ~/.bdk)")
	root.PersistentFlags().StringVarP(&flags.output, "output", "o", "auto", "output format: text, json, auto")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable verbose output")

	root.AddCommand(
		newMnemonicCmd(cc),
		newKeyCmd(cc),
		newDescriptorCmd(cc),
		newWalletCmd(cc),
		newTxCmd(cc),
		newConfigCmd(cc),
		newVersionCmd(cc),
	)

	return root, cc
}

// Execute runs the CLI with the local engine.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root, cc := NewRootCmd(LocalEngine)
	err := executeRoot(ctx, root, cc)
	if err != nil && !isReported(err) {
		format := output.FormatText
		if cc.Formatter != nil {
			format = cc.Formatter.Format()
		}
		_ = output.FormatError(os.Stderr, err, format)
	}
	return err
}

// executeRoot runs root and releases the command context afterwards. Cobra
// skips post-run hooks when a command fails, so cleanup happens here.
func executeRoot(ctx context.Context, root *cobra.Command, cc *CommandContext) error {
	defer cleanup(cc)
	return root.ExecuteContext(ctx)
}

// ExitCode returns the process exit code for an error returned by Execute.
func ExitCode(err error) int {
	var re *reportedError
	if errors.As(err, &re) {
		return bdkerr.ExitCodeFor(re.info.Code)
	}
	return bdkerr.ExitCode(err)
}

func initContext(cmd *cobra.Command, cc *CommandContext, flags *globalFlags, newEngine EngineFactory) error {
	home := flags.home
	if home == "" {
		home = os.Getenv(config.EnvHome)
	}
	if home == "" {
		home = config.DefaultHome()
	}
	home, err := config.ExpandHome(home)
	if err != nil {
		return err
	}

	cfg, err := config.Load(config.Path(home))
	switch {
	case errors.Is(err, os.ErrNotExist):
		cfg = config.Defaults()
	case err != nil:
		return err
	}
	cfg.Home = home

	config.ApplyEnvironment(cfg)

	if flags.home != "" {
		cfg.Home = flags.home
	}
	if flags.verbose {
		cfg.Output.Verbose = true
		cfg.Logging.Level = "debug"
	}
	if flags.output != "" && flags.output != "auto" {
		cfg.Output.DefaultFormat = flags.output
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := config.NewLogger(config.ParseLogLevel(cfg.GetLoggingLevel()), cfg.GetLoggingFile())
	if err != nil {
		logger = config.NullLogger()
	}

	w := cmd.OutOrStdout()
	format := output.DetectFormat(w, output.ParseFormat(cfg.GetOutputFormat()))

	*cc = *NewCommandContext(cfg, logger, output.NewFormatter(format, w), metrics.Global, newEngine(cfg))
	logger.Debug("command %s (home %s, network %s)", cmd.CommandPath(), filepath.Clean(cfg.Home), cfg.GetNetwork())
	return nil
}

func cleanup(cc *CommandContext) {
	if cc.Logger == nil {
		return
	}
	if cc.Metrics != nil && cc.Logger.Level() >= config.LogLevelDebug {
		snap := cc.Metrics.Snapshot()
		cc.Logger.Debug("metrics: %d operations (%d failed), %d engine calls (%d failed, avg %.2fms) %v",
			snap.OperationsTotal, snap.OperationErrors, snap.EngineCallsTotal, snap.EngineErrorsTotal,
			cc.Metrics.EngineLatencyAvgMs(), snap.CapabilityNames())
	}
	_ = cc.Logger.Close()
}

// out is a helper for CLI output that ignores write errors.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func out(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// outln is a helper for CLI output with newline.
//
//nolint:errcheck // CLI output writes are intentionally unchecked
func outln(w io.Writer, args ...any) {
	fmt.Fprintln(w, args...)
}
