// Package config provides configuration types and loading for the hcb CLI.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete configuration for the hcb CLI.
// Configuration values can come from multiple sources with the following precedence:
// 1. Command-line flags (highest priority)
// 2. Environment variables
// 3. Config file (HCB_CONFIG, --config, or ~/.config/hcb/config.yaml)
// 4. Default values (lowest priority)
type Config struct {
	// Service settings
	Endpoint   string        `yaml:"endpoint" json:"endpoint"`
	Timeout    time.Duration `yaml:"timeout" json:"timeout"`
	AppVersion string        `yaml:"appVersion" json:"appVersion"`
	Server     string        `yaml:"server" json:"server"`

	// Account settings
	SchoolCode string `yaml:"schoolCode,omitempty" json:"schoolCode,omitempty"`
	SchoolID   string `yaml:"schoolId,omitempty" json:"schoolId,omitempty"`
	Username   string `yaml:"username,omitempty" json:"username,omitempty"`
	Password   string `yaml:"password,omitempty" json:"password,omitempty"`

	Log  LogConfig  `yaml:"log" json:"log"`
	Mock MockConfig `yaml:"mock" json:"mock"`

	// ConfigFile is the file the config was loaded from, if any.
	ConfigFile string `yaml:"-" json:"configFile,omitempty"`

	// Sources tracks where each value came from, keyed by YAML path.
	Sources map[string]string `yaml:"-" json:"-"`
}

// LogConfig configures the CLI's logger.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`   // debug, info, warn, error
	Format string `yaml:"format" json:"format"` // text, json
}

// MockConfig configures `hcb mock`.
type MockConfig struct {
	Port        int    `yaml:"port" json:"port"`
	FixturesDir string `yaml:"fixturesDir,omitempty" json:"fixturesDir,omitempty"`
}

// UnmarshalYAML decodes c, reading timeout the way HCB_TIMEOUT is read so
// a bare number means seconds.
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	type plain Config
	if value.Kind != yaml.MappingNode {
		return value.Decode((*plain)(c))
	}

	rest := *value
	rest.Content = nil
	var timeout *yaml.Node
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "timeout" {
			timeout = value.Content[i+1]
			continue
		}
		rest.Content = append(rest.Content, value.Content[i], value.Content[i+1])
	}
	if err := rest.Decode((*plain)(c)); err != nil {
		return err
	}

	if timeout != nil && timeout.Tag != "!!null" {
		d, err := ParseTimeout(timeout.Value)
		if err != nil {
			return fmt.Errorf("line %d: timeout: %w", timeout.Line, err)
		}
		c.Timeout = d
	}
	return nil
}

// Redacted returns a copy of c safe to print.
func (c *Config) Redacted() *Config {
	out := *c
	if out.Password != "" {
		out.Password = "********"
	}
	return &out
}

// ConfigSource identifies where a config value originated.
const (
	SourceDefault = "default"
	SourceFile    = "file"
	SourceEnv     = "env"
	SourceFlag    = "flag"
)
