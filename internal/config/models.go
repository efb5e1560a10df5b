package config

import (
	"time"

	"github.com/tillworks/receiptd/internal/discovery"
)

// Config is the receiptd server and CLI configuration.
type Config struct {
	// BindAddr is the host:port the HTTP API listens on.
	BindAddr string `yaml:"bind_addr"`

	// Database is the SQLite database path used by the liveness probe.
	// Empty disables the probe (health reports db as "disabled").
	Database string `yaml:"database,omitempty"`

	// LogLevel sets zap verbosity: debug, info, warn, error.
	// Empty means silent.
	LogLevel string `yaml:"log_level,omitempty"`

	Discovery DiscoveryConfig `yaml:"discovery"`
}

// DiscoveryConfig tunes the printer discovery pass.
type DiscoveryConfig struct {
	// IncludeSerial enables scanning generic serial namespaces. These are
	// shared with non-printer peripherals, so some deployments disable it.
	IncludeSerial bool `yaml:"include_serial"`

	// StringReadTimeoutMS bounds per-device USB string-descriptor reads,
	// in milliseconds. Zero uses the built-in default.
	StringReadTimeoutMS int `yaml:"string_read_timeout_ms,omitempty"`
}

// Default returns the configuration used when no file and no environment
// overrides are present.
func Default() *Config {
	return &Config{
		BindAddr: "127.0.0.1:3000",
		Discovery: DiscoveryConfig{
			IncludeSerial: true,
		},
	}
}

// DiscoveryOptions converts the configuration into discovery pass options.
func (c *Config) DiscoveryOptions() discovery.Options {
	opts := discovery.DefaultOptions()
	opts.IncludeSerial = c.Discovery.IncludeSerial
	if c.Discovery.StringReadTimeoutMS > 0 {
		opts.StringReadTimeout = time.Duration(c.Discovery.StringReadTimeoutMS) * time.Millisecond
	}
	return opts
}
