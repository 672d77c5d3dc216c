package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Environment variable names
const (
	EnvEndpoint   = "HCB_ENDPOINT"
	EnvTimeout    = "HCB_TIMEOUT"
	EnvSchoolCode = "HCB_SCHOOL_CODE"
	EnvSchoolID   = "HCB_SCHOOL_ID"
	EnvUsername   = "HCB_USERNAME"
	EnvPassword   = "HCB_PASSWORD"
	EnvLogLevel   = "HCB_LOG_LEVEL"
	EnvLogFormat  = "HCB_LOG_FORMAT"
	EnvConfig     = "HCB_CONFIG"
	EnvMockPort   = "HCB_MOCK_PORT"
)

// LoadEnv loads configuration from environment variables.
// It only sets values that are present in the environment.
func LoadEnv(cfg *Config) error {
	if cfg.Sources == nil {
		cfg.Sources = make(map[string]string)
	}

	strs := []struct {
		env string
		key string
		dst *string
	}{
		{EnvEndpoint, "endpoint", &cfg.Endpoint},
		{EnvSchoolCode, "schoolCode", &cfg.SchoolCode},
		{EnvSchoolID, "schoolId", &cfg.SchoolID},
		{EnvUsername, "username", &cfg.Username},
		{EnvPassword, "password", &cfg.Password},
		{EnvLogLevel, "log.level", &cfg.Log.Level},
		{EnvLogFormat, "log.format", &cfg.Log.Format},
	}
	for _, s := range strs {
		if v := os.Getenv(s.env); v != "" {
			*s.dst = v
			cfg.Sources[s.key] = SourceEnv
		}
	}

	// HCB_TIMEOUT
	if v := os.Getenv(EnvTimeout); v != "" {
		d, err := ParseTimeout(v)
		if err != nil {
			return fmt.Errorf("%s: %w", EnvTimeout, err)
		}
		cfg.Timeout = d
		cfg.Sources["timeout"] = SourceEnv
	}

	// HCB_MOCK_PORT
	if v := os.Getenv(EnvMockPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: invalid port %q", EnvMockPort, v)
		}
		cfg.Mock.Port = port
		cfg.Sources["mock.port"] = SourceEnv
	}

	return nil
}

// ParseTimeout parses a Go duration ("10s") or a whole number of seconds.
func ParseTimeout(s string) (time.Duration, error) {
	if d, err := time.ParseDuration(s); err == nil {
		return d, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		return time.Duration(n) * time.Second, nil
	}
	return 0, fmt.Errorf("invalid timeout %q", s)
}
