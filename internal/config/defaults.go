package config

// DefaultBackendURL is the public Electrum endpoint used for testnet.
const DefaultBackendURL = "ssl://electrum.blockstream.info:60002"

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.bdk",
		Network: NetworkConfig{
			Name:           "testnet",
			DescriptorType: "wpkh",
		},
		Backend: BackendConfig{
			Name:           "electrum",
			URL:            DefaultBackendURL,
			RetryCount:     5,
			TimeoutSeconds: 5,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
		},
	}
}
