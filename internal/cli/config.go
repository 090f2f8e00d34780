package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coreyphillips/bdk-rn/internal/config"
	"github.com/coreyphillips/bdk-rn/internal/output"
	"github.com/coreyphillips/bdk-rn/pkg/result"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// configField reads and writes one dotted configuration path.
type configField struct {
	get func(c *config.Config) string
	set func(c *config.Config, value string) error
}

//nolint:gochecknoglobals // static lookup table
var configFields = map[string]configField{
	"home": {
		get: func(c *config.Config) string { return c.Home },
		set: func(c *config.Config, v string) error { c.Home = v; return nil },
	},
	"network.name": {
		get: func(c *config.Config) string { return c.Network.Name },
		set: func(c *config.Config, v string) error {
			if !config.IsKnownNetwork(v) {
				return invalidConfigValue("network.name", v, "use bitcoin, testnet, signet or regtest")
			}
			c.Network.Name = v
			return nil
		},
	},
	"network.descriptor_type": {
		get: func(c *config.Config) string { return c.Network.DescriptorType },
		set: func(c *config.Config, v string) error { c.Network.DescriptorType = v; return nil },
	},
	"network.derivation_path": {
		get: func(c *config.Config) string { return c.Network.DerivationPath },
		set: func(c *config.Config, v string) error { c.Network.DerivationPath = v; return nil },
	},
	"backend.name": {
		get: func(c *config.Config) string { return c.Backend.Name },
		set: func(c *config.Config, v string) error { c.Backend.Name = v; return nil },
	},
	"backend.url": {
		get: func(c *config.Config) string { return c.Backend.URL },
		set: func(c *config.Config, v string) error {
			url := config.SanitizeURL(v)
			if url == "" {
				return invalidConfigValue("backend.url", v, "use a URL such as ssl://host:port")
			}
			c.Backend.URL = url
			return nil
		},
	},
	"backend.socks5_proxy": {
		get: func(c *config.Config) string { return c.Backend.Socks5Proxy },
		set: func(c *config.Config, v string) error { c.Backend.Socks5Proxy = v; return nil },
	},
	"backend.retry_count": {
		get: func(c *config.Config) string { return strconv.Itoa(c.Backend.RetryCount) },
		set: func(c *config.Config, v string) error {
			n, err := parseNonNegative("backend.retry_count", v)
			c.Backend.RetryCount = n
			return err
		},
	},
	"backend.timeout_seconds": {
		get: func(c *config.Config) string { return strconv.Itoa(c.Backend.TimeoutSeconds) },
		set: func(c *config.Config, v string) error {
			n, err := parseNonNegative("backend.timeout_seconds", v)
			c.Backend.TimeoutSeconds = n
			return err
		},
	},
	"output.default_format": {
		get: func(c *config.Config) string { return c.Output.DefaultFormat },
		set: func(c *config.Config, v string) error {
			switch v {
			case "auto", "text", "json":
				c.Output.DefaultFormat = v
				return nil
			}
			return invalidConfigValue("output.default_format", v, "use auto, text or json")
		},
	},
	"output.verbose": {
		get: func(c *config.Config) string { return strconv.FormatBool(c.Output.Verbose) },
		set: func(c *config.Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return invalidConfigValue("output.verbose", v, "use true or false")
			}
			c.Output.Verbose = b
			return nil
		},
	},
	"logging.level": {
		get: func(c *config.Config) string { return c.Logging.Level },
		set: func(c *config.Config, v string) error {
			switch v {
			case "off", "error", "info", "debug":
				c.Logging.Level = v
				return nil
			}
			return invalidConfigValue("logging.level", v, "use off, error, info or debug")
		},
	},
	"logging.file": {
		get: func(c *config.Config) string { return c.GetLoggingFile() },
		set: func(c *config.Config, v string) error { c.Logging.File = v; return nil },
	},
}

func configPaths() []string {
	paths := make([]string, 0, len(configFields))
	for p := range configFields {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

func lookupConfigField(path string) (configField, error) {
	field, ok := configFields[path]
	if !ok {
		return configField{}, bdkerr.WithSuggestion(
			bdkerr.WithDetails(bdkerr.ErrInvalidInput, map[string]string{"key": path}),
			fmt.Sprintf("configuration path '%s' not found; run 'bdk config show' for the known paths", path),
		)
	}
	return field, nil
}

func invalidConfigValue(path, value, suggestion string) error {
	return bdkerr.WithSuggestion(
		bdkerr.WithDetails(bdkerr.ErrConfigInvalid, map[string]string{"key": path, "value": value}),
		suggestion,
	)
}

func parseNonNegative(path, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 0 {
		return 0, invalidConfigValue(path, value, "use a non-negative integer")
	}
	return n, nil
}

func newConfigCmd(cc *CommandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Long:  `View and modify bdk configuration settings.`,
	}
	cmd.AddCommand(
		newConfigInitCmd(cc),
		newConfigShowCmd(cc),
		newConfigGetCmd(cc),
		newConfigSetCmd(cc),
	)
	return cmd
}

func newConfigInitCmd(cc *CommandContext) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration",
		Long: `Create a default configuration file at <home>/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  bdk config init
  bdk config init --force`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.Path(cc.Config.Home)
			if _, err := os.Stat(path); err == nil && !force {
				return emit(cc, result.Failure[string](bdkerr.WithSuggestion(
					bdkerr.ErrGeneral,
					fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", path),
				)), printString)
			}

			defaults := config.Defaults()
			defaults.Home = cc.Config.Home
			if err := config.Save(defaults, path); err != nil {
				return fmt.Errorf("writing config file: %w", err)
			}
			cc.Logger.Info("configuration initialized at %s", path)

			return emit(cc, result.Success(path), func(w io.Writer, p string) error {
				out(w, "Configuration initialized at %s\n", p)
				outln(w)
				outln(w, "Edit this file to configure:")
				outln(w, "  - network.name: bitcoin, testnet, signet or regtest")
				outln(w, "  - backend.url: Electrum or Esplora endpoint")
				outln(w, "  - output.default_format: Output format (auto/text/json)")
				outln(w, "  - logging.level: Log level (off/error/info/debug)")
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration")
	return cmd
}

func newConfigShowCmd(cc *CommandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long: `Display the effective configuration, after environment and flag
overrides.

Example:
  bdk config show
  bdk config show -o json`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			values := make(map[string]string, len(configFields))
			for path, field := range configFields {
				values[path] = field.get(cc.Config)
			}
			return emit(cc, result.Success(values), func(w io.Writer, m map[string]string) error {
				table := output.NewTable("KEY", "VALUE")
				for _, p := range configPaths() {
					table.AddRow(p, m[p])
				}
				return table.Render(w)
			})
		},
	}
}

func newConfigGetCmd(cc *CommandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Get a configuration value",
		Long: `Get a specific configuration value by its dotted path.

Examples:
  bdk config get network.name
  bdk config get backend.url
  bdk config get logging.level`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			field, err := lookupConfigField(args[0])
			if err != nil {
				return emit(cc, result.Failure[string](err), printString)
			}
			return emit(cc, result.Success(field.get(cc.Config)), printString)
		},
	}
}

func newConfigSetCmd(cc *CommandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <value>",
		Short: "Set a configuration value",
		Long: `Set a configuration value by its dotted path and save it to the
configuration file. Environment overrides are not written.

Examples:
  bdk config set network.name signet
  bdk config set backend.url ssl://electrum.blockstream.info:60002
  bdk config set output.default_format json`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			path, value := args[0], args[1]

			field, err := lookupConfigField(path)
			if err != nil {
				return emit(cc, result.Failure[string](err), printString)
			}

			file := config.Path(cc.Config.Home)
			current, err := config.Load(file)
			switch {
			case errors.Is(err, os.ErrNotExist):
				current = config.Defaults()
				current.Home = cc.Config.Home
			case err != nil:
				return emit(cc, result.Failure[string](err), printString)
			}

			if err := field.set(current, value); err != nil {
				return emit(cc, result.Failure[string](err), printString)
			}
			if err := config.Save(current, file); err != nil {
				return fmt.Errorf("saving config: %w", err)
			}
			cc.Logger.Info("config %s set to %q", path, value)

			return emit(cc, result.Success(map[string]string{"key": path, "value": field.get(current)}),
				func(w io.Writer, m map[string]string) error {
					out(w, "Set %s = %s\n", m["key"], m["value"])
					return nil
				})
		},
	}
}
