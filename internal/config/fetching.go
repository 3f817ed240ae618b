package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// fetching configures retrieval of the package listings.
type fetching struct {
	Workers  int           `yaml:"workers" mapstructure:"workers"`
	Retries  int           `yaml:"retries" mapstructure:"retries"`
	Timeout  time.Duration `yaml:"timeout" mapstructure:"timeout"`
	CacheDir string        `yaml:"cache-dir" mapstructure:"cache-dir"`
	CacheTTL time.Duration `yaml:"cache-ttl" mapstructure:"cache-ttl"` // zero disables the cache
}

func (cfg fetching) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("fetch.workers", 2)
	v.SetDefault("fetch.retries", 3)
	v.SetDefault("fetch.timeout", 2*time.Minute)
	v.SetDefault("fetch.cache-dir", filepath.Join(xdg.CacheHome, ApplicationName))
	v.SetDefault("fetch.cache-ttl", time.Hour)
}

func (cfg *fetching) parseConfigValues() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("fetch.workers must be at least 1, got %d", cfg.Workers)
	}
	if cfg.Retries < 0 {
		return fmt.Errorf("fetch.retries must not be negative, got %d", cfg.Retries)
	}

	dir, err := homedir.Expand(cfg.CacheDir)
	if err != nil {
		return fmt.Errorf("expanding fetch.cache-dir: %w", err)
	}
	cfg.CacheDir = dir
	if cfg.CacheTTL <= 0 {
		cfg.CacheDir = ""
	}
	return nil
}
