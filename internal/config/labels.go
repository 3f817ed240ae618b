package config

import "github.com/spf13/viper"

// labels names the two repositories in reports and log messages.
type labels struct {
	Alt    string `yaml:"alt" mapstructure:"alt"`
	Second string `yaml:"second" mapstructure:"second"`
}

func (cfg labels) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("labels.alt", "ALT")
	v.SetDefault("labels.second", "Second")
}
