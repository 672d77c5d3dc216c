package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// ConfigDir is the directory under the user config dir holding config.yaml.
	ConfigDir = "hcb"
	// ConfigFileName is the name of the default config file.
	ConfigFileName = "config.yaml"
)

// DefaultPath returns the default config file path, honouring
// XDG_CONFIG_HOME. Returns "" when no config directory is available.
func DefaultPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, ConfigDir, ConfigFileName)
}

// LoadFile loads a Config from a YAML file. Only keys present in the file
// are recorded in Sources.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &FileError{Path: path, Err: err}
	}
	cfg.Sources = make(map[string]string)
	collectKeys(raw, "", cfg.Sources)
	cfg.ConfigFile = path
	return &cfg, nil
}

func collectKeys(m map[string]any, prefix string, into map[string]string) {
	for k, v := range m {
		key := prefix + k
		if sub, ok := v.(map[string]any); ok {
			collectKeys(sub, key+".", into)
			continue
		}
		into[key] = SourceFile
	}
}

// FileError reports an unparsable config file.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }

// Load resolves the configuration from defaults, the config file and the
// environment. path overrides the file location; when empty, HCB_CONFIG
// and then DefaultPath are used. A missing default file is not an error;
// a missing explicit file is.
func Load(path string) (*Config, error) {
	cfg := NewDefault()

	explicit := path != ""
	if !explicit {
		if v := os.Getenv(EnvConfig); v != "" {
			path, explicit = v, true
		} else {
			path = DefaultPath()
		}
	}

	if path != "" {
		fileCfg, err := LoadFile(path)
		switch {
		case err == nil:
			Merge(cfg, fileCfg, SourceFile)
			cfg.ConfigFile = path
		case errors.Is(err, fs.ErrNotExist) && !explicit:
		default:
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := LoadEnv(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
