package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid defaults", func(*Config) {}, ""},
		{"http endpoint", func(c *Config) { c.Endpoint = "http://127.0.0.1:8181/SynoviaApi.svc" }, ""},
		{"empty endpoint", func(c *Config) { c.Endpoint = "" }, "endpoint is required"},
		{"ftp endpoint", func(c *Config) { c.Endpoint = "ftp://example.com" }, "must use http or https"},
		{"no host", func(c *Config) { c.Endpoint = "https:///path" }, "has no host"},
		{"zero timeout", func(c *Config) { c.Timeout = 0 }, "must be positive"},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }, "must be positive"},
		{"port too high", func(c *Config) { c.Mock.Port = 70000 }, "mock.port 70000 is out of range"},
		{"port negative", func(c *Config) { c.Mock.Port = -1 }, "mock.port -1 is out of range"},
		{"mixed case level", func(c *Config) { c.Log.Level = "DEBUG" }, ""},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewDefault()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestNewDefault(t *testing.T) {
	cfg := NewDefault()
	assert.Equal(t, "https://api.synovia.com/SynoviaApi.svc", cfg.Endpoint)
	assert.Equal(t, DefaultTimeout, cfg.Timeout)
	assert.Equal(t, "3.6.0", cfg.AppVersion)
	assert.Equal(t, "prdweb1", cfg.Server)
	assert.Equal(t, DefaultMockPort, cfg.Mock.Port)
	assert.Equal(t, SourceDefault, cfg.Sources["endpoint"])
	assert.Empty(t, cfg.Sources["username"])
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
endpoint: http://localhost:8181/SynoviaApi.svc
timeout: 5s
schoolCode: springfield
username: parent@example.com
log:
  level: debug
mock:
  port: 9000
`)

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8181/SynoviaApi.svc", cfg.Endpoint)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, "springfield", cfg.SchoolCode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, 9000, cfg.Mock.Port)
	assert.Equal(t, map[string]string{
		"endpoint":   SourceFile,
		"timeout":    SourceFile,
		"schoolCode": SourceFile,
		"username":   SourceFile,
		"log.level":  SourceFile,
		"mock.port":  SourceFile,
	}, cfg.Sources)
}

func TestLoadFile_Invalid(t *testing.T) {
	path := writeConfig(t, "endpoint: [unterminated")

	_, err := LoadFile(path)
	require.Error(t, err)
	var fe *FileError
	assert.ErrorAs(t, err, &fe)
	assert.Equal(t, path, fe.Path)
}

func TestLoadFile_TimeoutSeconds(t *testing.T) {
	tests := []struct {
		yaml string
		want time.Duration
	}{
		{"timeout: 30\n", 30 * time.Second},
		{"timeout: 1m30s\n", 90 * time.Second},
		{"timeout: \"45\"\n", 45 * time.Second},
		{"endpoint: http://localhost\n", 0},
	}

	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			cfg, err := LoadFile(writeConfig(t, tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Timeout)
		})
	}

	_, err := LoadFile(writeConfig(t, "timeout: soon\n"))
	require.Error(t, err)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
endpoint: http://file.example/SynoviaApi.svc
schoolCode: from-file
username: file-user
mock:
  port: 0
`)
	t.Setenv(EnvUsername, "env-user")
	t.Setenv(EnvTimeout, "7")
	t.Setenv(EnvConfig, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "http://file.example/SynoviaApi.svc", cfg.Endpoint)
	assert.Equal(t, SourceFile, cfg.Sources["endpoint"])
	assert.Equal(t, "from-file", cfg.SchoolCode)
	assert.Equal(t, "env-user", cfg.Username)
	assert.Equal(t, SourceEnv, cfg.Sources["username"])
	assert.Equal(t, 7*time.Second, cfg.Timeout)
	assert.Equal(t, 0, cfg.Mock.Port, "explicit zero in the file wins over the default")
	assert.Equal(t, SourceDefault, cfg.Sources["server"])
	assert.Equal(t, path, cfg.ConfigFile)

	flags := &Config{Username: "flag-user", Sources: map[string]string{"username": SourceFlag}}
	Merge(cfg, flags, SourceFlag)
	assert.Equal(t, "flag-user", cfg.Username)
	assert.Equal(t, SourceFlag, cfg.Sources["username"])
	assert.Equal(t, "from-file", cfg.SchoolCode)
}

func TestLoad_MissingFiles(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(EnvConfig, "")

	cfg, err := Load("")
	require.NoError(t, err, "a missing default config is not an error")
	assert.Empty(t, cfg.ConfigFile)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err, "a missing explicit config is an error")
}

func TestLoad_EnvConfigPath(t *testing.T) {
	path := writeConfig(t, "schoolId: ABC\n")
	t.Setenv(EnvConfig, path)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ABC", cfg.SchoolID)
}

func TestLoadEnv_Invalid(t *testing.T) {
	t.Setenv(EnvTimeout, "forever")
	assert.Error(t, LoadEnv(NewDefault()))

	t.Setenv(EnvTimeout, "")
	t.Setenv(EnvMockPort, "http")
	assert.Error(t, LoadEnv(NewDefault()))
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, filepath.Join("/tmp/xdg", "hcb", "config.yaml"), DefaultPath())
}

func TestMerge_WithoutSources(t *testing.T) {
	cfg := NewDefault()
	Merge(cfg, &Config{Server: "prdweb2"}, SourceFlag)
	assert.Equal(t, "prdweb2", cfg.Server)
	assert.Equal(t, SourceFlag, cfg.Sources["server"])
	assert.Equal(t, SourceDefault, cfg.Sources["endpoint"])
	assert.NotEmpty(t, cfg.Endpoint)

	Merge(cfg, nil, SourceFlag)
}

func TestRedacted(t *testing.T) {
	cfg := NewDefault()
	cfg.Password = "hunter2"
	r := cfg.Redacted()
	assert.Equal(t, "********", r.Password)
	assert.Equal(t, "hunter2", cfg.Password)
}

func TestParseTimeout(t *testing.T) {
	d, err := ParseTimeout("1500ms")
	require.NoError(t, err)
	assert.Equal(t, 1500*time.Millisecond, d)

	d, err = ParseTimeout("12")
	require.NoError(t, err)
	assert.Equal(t, 12*time.Second, d)
}
