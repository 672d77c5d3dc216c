package config

import (
	"time"

	"github.com/hcbtrack/hcb/pkg/client"
)

// DefaultTimeout is the default HTTP timeout.
const DefaultTimeout = 30 * time.Second

// DefaultMockPort is the default port for `hcb mock`.
const DefaultMockPort = 8181

// Default log settings.
const (
	DefaultLogLevel  = "warn"
	DefaultLogFormat = "text"
)

// NewDefault creates a new Config with default values.
func NewDefault() *Config {
	cfg := &Config{
		Endpoint:   client.DefaultEndpoint,
		Timeout:    DefaultTimeout,
		AppVersion: client.DefaultAppVersion,
		Server:     client.DefaultServer,
		Log: LogConfig{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
		Mock:    MockConfig{Port: DefaultMockPort},
		Sources: make(map[string]string),
	}

	// Mark all as default source
	for _, key := range []string{"endpoint", "timeout", "appVersion", "server", "log.level", "log.format", "mock.port"} {
		cfg.Sources[key] = SourceDefault
	}

	return cfg
}
