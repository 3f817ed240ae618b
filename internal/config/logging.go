package config

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// logging contains all logging-related configuration options available to the user via the application config.
type logging struct {
	Structured   bool   `yaml:"structured" mapstructure:"structured"` // show all log entries as JSON formatted strings
	Level        string `yaml:"level" mapstructure:"level"`           // the log level string hint
	FileLocation string `yaml:"file" mapstructure:"file"`             // the file path to write logs to
}

func (cfg logging) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("log.level", "")
	v.SetDefault("log.file", "")
	v.SetDefault("log.structured", false)
}

func (cfg *logging) parseConfigValues() error {
	if _, err := logrus.ParseLevel(cfg.Level); err != nil {
		return fmt.Errorf("bad log.level: %w", err)
	}
	return nil
}

// ParsedLevel returns the validated level.
func (cfg logging) ParsedLevel() logrus.Level {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return logrus.WarnLevel
	}
	return level
}
