package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected bool
	}{
		{"1", true},
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"on", true},
		{"t", true},
		{"0", false},
		{"false", false},
		{"no", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, parseBool(tt.input))
		})
	}
}

func TestSanitizeURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "ssl://electrum.blockstream.info:60002", SanitizeURL("  ssl://electrum.blockstream.info:60002 \n"))
	assert.Equal(t, "tcp://127.0.0.1:50001", SanitizeURL(`"tcp://127.0.0.1:50001"`))
	assert.Empty(t, SanitizeURL("not a url"))
	assert.Empty(t, SanitizeURL(""))
}

//nolint:paralleltest // mutates process environment
func TestApplyEnvironment(t *testing.T) {
	t.Setenv(EnvHome, "/tmp/bdk-home")
	t.Setenv(EnvNetwork, " Regtest ")
	t.Setenv(EnvBackendURL, "tcp://127.0.0.1:50001")
	t.Setenv(EnvSocks5Proxy, "127.0.0.1:9050")
	t.Setenv(EnvOutputFormat, "JSON")
	t.Setenv(EnvVerbose, "yes")
	t.Setenv(EnvLogLevel, "DEBUG")

	cfg := Defaults()
	ApplyEnvironment(cfg)

	assert.Equal(t, "/tmp/bdk-home", cfg.Home)
	assert.Equal(t, "regtest", cfg.Network.Name)
	assert.Equal(t, "tcp://127.0.0.1:50001", cfg.Backend.URL)
	assert.Equal(t, "127.0.0.1:9050", cfg.Backend.Socks5Proxy)
	assert.Equal(t, "json", cfg.Output.DefaultFormat)
	assert.True(t, cfg.Output.Verbose)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

//nolint:paralleltest // mutates process environment
func TestApplyEnvironment_InvalidURLKeepsDefault(t *testing.T) {
	t.Setenv(EnvBackendURL, "::::")

	cfg := Defaults()
	ApplyEnvironment(cfg)

	assert.Equal(t, DefaultBackendURL, cfg.Backend.URL)
}
