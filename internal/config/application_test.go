package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "altcmp.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadApplicationConfig_Defaults(t *testing.T) {
	cfg, err := LoadApplicationConfig(viper.New(), writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, DefaultAltURL, cfg.AltURL)
	assert.Equal(t, DefaultSecondURL, cfg.SecondURL)
	assert.Equal(t, DefaultMappingFile, cfg.MappingFile)
	assert.Equal(t, "table", cfg.Output)
	assert.Empty(t, cfg.OutputFile)
	assert.False(t, cfg.Silent)
	assert.Equal(t, "ALT", cfg.Labels.Alt)
	assert.Equal(t, "Second", cfg.Labels.Second)
	assert.Equal(t, 2, cfg.Fetch.Workers)
	assert.Equal(t, 3, cfg.Fetch.Retries)
	assert.Equal(t, 2*time.Minute, cfg.Fetch.Timeout)
	assert.Equal(t, time.Hour, cfg.Fetch.CacheTTL)
	assert.NotEmpty(t, cfg.Fetch.CacheDir)
	assert.Equal(t, logrus.WarnLevel, cfg.Log.ParsedLevel())
}

func TestLoadApplicationConfig_File(t *testing.T) {
	path := writeConfig(t, `
alt-url: file:///srv/alt/bin.list.xz
second-url: https://mirror.example/Packages
mapping-file: /etc/altcmp/mapping.txt
output: JSON
labels:
  second: Proxmox
fetch:
  workers: 4
  timeout: 30s
  cache-ttl: 0s
log:
  level: debug
  structured: true
`)

	cfg, err := LoadApplicationConfig(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, path, cfg.ConfigPath)
	assert.Equal(t, "file:///srv/alt/bin.list.xz", cfg.AltURL)
	assert.Equal(t, "https://mirror.example/Packages", cfg.SecondURL)
	assert.Equal(t, "/etc/altcmp/mapping.txt", cfg.MappingFile)
	assert.Equal(t, "json", cfg.Output)
	assert.Equal(t, "ALT", cfg.Labels.Alt)
	assert.Equal(t, "Proxmox", cfg.Labels.Second)
	assert.Equal(t, 4, cfg.Fetch.Workers)
	assert.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	assert.Empty(t, cfg.Fetch.CacheDir, "a zero cache-ttl disables the cache")
	assert.Equal(t, logrus.DebugLevel, cfg.Log.ParsedLevel())
	assert.True(t, cfg.Log.Structured)
}

func TestLoadApplicationConfig_Env(t *testing.T) {
	t.Setenv("ALTCMP_OUTPUT", "yaml")
	t.Setenv("ALTCMP_FETCH_WORKERS", "5")

	cfg, err := LoadApplicationConfig(viper.New(), writeConfig(t, ""))
	require.NoError(t, err)

	assert.Equal(t, "yaml", cfg.Output)
	assert.Equal(t, 5, cfg.Fetch.Workers)
}

func TestLoadApplicationConfig_LogLevel(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   logrus.Level
	}{
		{"silent wins", "silent: true\nverbosity: 3\n", logrus.ErrorLevel},
		{"verbosity", "verbosity: 2\nlog:\n  level: error\n", logrus.DebugLevel},
		{"explicit level", "log:\n  level: info\n", logrus.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadApplicationConfig(viper.New(), writeConfig(t, tt.config))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Log.ParsedLevel())
		})
	}
}

func TestLoadApplicationConfig_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		wantErr string
	}{
		{"output", "output: csv\n", "bad --output value"},
		{"workers", "fetch:\n  workers: 0\n", "fetch.workers"},
		{"retries", "fetch:\n  retries: -1\n", "fetch.retries"},
		{"log level", "log:\n  level: loud\n", "bad log.level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadApplicationConfig(viper.New(), writeConfig(t, tt.config))
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestLoadApplicationConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadApplicationConfig(viper.New(), filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorContains(t, err, "unable to read application config")
}

func TestApplication_String(t *testing.T) {
	cfg, err := LoadApplicationConfig(viper.New(), writeConfig(t, ""))
	require.NoError(t, err)

	out := cfg.String()
	assert.Contains(t, out, "alt-url: "+DefaultAltURL)
	assert.Contains(t, out, "cache-ttl: 1h0m0s")
}
