package config

import (
	"io"
	"log/slog"

	"github.com/hcbtrack/hcb/pkg/logging"
)

// Logger builds the CLI logger from the log settings, writing to w.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	cfg := logging.DefaultConfig()
	if c.Log.Level != "" {
		cfg.Level = logging.ParseLevel(c.Log.Level)
	}
	if c.Log.Format != "" {
		cfg.Format = logging.ParseFormat(c.Log.Format)
	}
	cfg.Output = w
	return logging.New(cfg)
}
