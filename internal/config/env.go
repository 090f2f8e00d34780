package config

import (
	"net/url"
	"os"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "BDK_HOME"
	EnvNetwork      = "BDK_NETWORK"
	EnvBackendURL   = "BDK_BACKEND_URL"
	EnvSocks5Proxy  = "BDK_SOCKS5_PROXY"
	EnvOutputFormat = "BDK_OUTPUT_FORMAT"
	EnvVerbose      = "BDK_VERBOSE"
	EnvLogLevel     = "BDK_LOG_LEVEL"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = v
	}

	if v := os.Getenv(EnvNetwork); v != "" {
		cfg.Network.Name = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvBackendURL); v != "" {
		if u := SanitizeURL(v); u != "" {
			cfg.Backend.URL = u
		}
	}

	if v := os.Getenv(EnvSocks5Proxy); v != "" {
		cfg.Backend.Socks5Proxy = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(v)
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(v)
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "on", "t":
		return true
	default:
		return false
	}
}

// SanitizeURL trims copy-paste artifacts from a backend URL. It returns ""
// when the result does not parse as an absolute URL.
func SanitizeURL(raw string) string {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, `"'`)
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.String()
}
