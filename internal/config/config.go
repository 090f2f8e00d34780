// Package config provides configuration management for the bdk CLI.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/coreyphillips/bdk-rn/internal/fileutil"
	bdkerr "github.com/coreyphillips/bdk-rn/pkg/errors"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Network NetworkConfig `yaml:"network"`
	Backend BackendConfig `yaml:"backend"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// NetworkConfig defines the default network and derivation settings.
type NetworkConfig struct {
	Name           string `yaml:"name"`
	DescriptorType string `yaml:"descriptor_type"`
	DerivationPath string `yaml:"derivation_path,omitempty"`
}

// BackendConfig defines the chain backend handed to the wallet engine.
// Values are passed through to the engine without interpretation.
type BackendConfig struct {
	Name           string `yaml:"name"`
	URL            string `yaml:"url"`
	Socks5Proxy    string `yaml:"socks5_proxy,omitempty"`
	RetryCount     int    `yaml:"retry_count"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings. An empty File logs to
// bdk.log inside the home directory; "-" logs to stderr.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, bdkerr.Wrap(bdkerr.ErrConfigInvalid, "parsing %s: %v", path, err)
	}

	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return fileutil.WriteFile(path, data, 0o600, 0o750)
}

// Path returns the config file path inside home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// Validate checks values the CLI relies on.
func (c *Config) Validate() error {
	if !IsKnownNetwork(c.Network.Name) {
		return bdkerr.WithDetails(bdkerr.ErrConfigInvalid, map[string]string{"network.name": c.Network.Name})
	}
	if c.Backend.RetryCount < 0 {
		return bdkerr.WithDetails(bdkerr.ErrConfigInvalid, map[string]string{"backend.retry_count": "must not be negative"})
	}
	if c.Backend.TimeoutSeconds < 0 {
		return bdkerr.WithDetails(bdkerr.ErrConfigInvalid, map[string]string{"backend.timeout_seconds": "must not be negative"})
	}
	switch strings.ToLower(c.Output.DefaultFormat) {
	case "", "auto", "text", "json":
	default:
		return bdkerr.WithDetails(bdkerr.ErrConfigInvalid, map[string]string{"output.default_format": c.Output.DefaultFormat})
	}
	return nil
}

// IsKnownNetwork reports whether name is a network the CLI knows about.
func IsKnownNetwork(name string) bool {
	switch name {
	case "bitcoin", "testnet", "signet", "regtest":
		return true
	default:
		return false
	}
}

// GetNetwork returns the default network name.
func (c *Config) GetNetwork() string {
	return c.Network.Name
}

// GetBackend returns the backend configuration.
func (c *Config) GetBackend() BackendConfig {
	return c.Backend
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the log file path, defaulting to bdk.log in home.
func (c *Config) GetLoggingFile() string {
	if c.Logging.File == "" {
		return filepath.Join(c.Home, "bdk.log")
	}
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultHome returns the default bdk home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".bdk"
	}
	return filepath.Join(home, ".bdk")
}

// ExpandHome replaces a leading "~/" with the user's home directory.
func ExpandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, path[2:]), nil
}
