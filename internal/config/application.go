package config

import (
	"errors"
	"fmt"
	"path"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	"github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/frederic-klein/altcmp/internal/log"
)

const ApplicationName = "altcmp"

var ErrApplicationConfigNotFound = fmt.Errorf("application config not found")

type defaultValueLoader interface {
	loadDefaultValues(*viper.Viper)
}

type parser interface {
	parseConfigValues() error
}

// Application is the full configuration of a run, merged from defaults, config file, environment and flags.
type Application struct {
	ConfigPath  string   `yaml:"-" mapstructure:"-"`
	AltURL      string   `yaml:"alt-url" mapstructure:"alt-url"`               // --alt-url, the ALT bin.list location
	SecondURL   string   `yaml:"second-url" mapstructure:"second-url"`         // --second-url, the Packages location
	MappingFile string   `yaml:"mapping-file" mapstructure:"mapping-file"`     // -m, the ALT -> second repo name table
	OutputFile  string   `yaml:"output-file" mapstructure:"output-file"`       // -o, also write the report to this file
	Output      string   `yaml:"output" mapstructure:"output"`                 // --output, report format
	Silent      bool     `yaml:"silent" mapstructure:"silent"`                 // -s, suppress console output except errors
	Verbosity   int      `yaml:"verbosity,omitempty" mapstructure:"verbosity"` // -v count
	Labels      labels   `yaml:"labels" mapstructure:"labels"`
	Fetch       fetching `yaml:"fetch" mapstructure:"fetch"`
	Log         logging  `yaml:"log" mapstructure:"log"`
}

// LoadApplicationConfig reads the config file (if any) into v and unmarshals the result.
func LoadApplicationConfig(v *viper.Viper, configPath string) (*Application, error) {
	cfg := &Application{}
	cfg.loadDefaultValues(v)

	if err := readConfig(v, configPath); err != nil && !errors.Is(err, ErrApplicationConfigNotFound) {
		return nil, err
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to parse config: %w", err)
	}
	cfg.ConfigPath = v.ConfigFileUsed()

	if err := cfg.parseConfigValues(); err != nil {
		return nil, fmt.Errorf("invalid application config: %w", err)
	}

	return cfg, nil
}

func (cfg Application) loadDefaultValues(v *viper.Viper) {
	v.SetDefault("alt-url", DefaultAltURL)
	v.SetDefault("second-url", DefaultSecondURL)
	v.SetDefault("mapping-file", DefaultMappingFile)
	v.SetDefault("output-file", "")
	v.SetDefault("output", "table")
	v.SetDefault("silent", false)
	v.SetDefault("verbosity", 0)

	value := reflect.ValueOf(cfg)
	for i := 0; i < value.NumField(); i++ {
		if loadable, ok := value.Field(i).Interface().(defaultValueLoader); ok {
			loadable.loadDefaultValues(v)
		}
	}
}

func (cfg *Application) parseConfigValues() error {
	if err := cfg.parseOutputOption(); err != nil {
		return err
	}
	cfg.parseLogLevelOption()

	value := reflect.ValueOf(cfg).Elem()
	for i := 0; i < value.NumField(); i++ {
		if parsable, ok := value.Field(i).Addr().Interface().(parser); ok {
			if err := parsable.parseConfigValues(); err != nil {
				return err
			}
		}
	}
	return nil
}

func (cfg *Application) parseOutputOption() error {
	cfg.Output = strings.ToLower(strings.TrimSpace(cfg.Output))
	for _, f := range OutputFormats {
		if cfg.Output == f {
			return nil
		}
	}
	return fmt.Errorf("bad --output value %q (want one of %s)", cfg.Output, strings.Join(OutputFormats, ", "))
}

func (cfg *Application) parseLogLevelOption() {
	switch {
	case cfg.Silent:
		cfg.Log.Level = logrus.ErrorLevel.String()
	case cfg.Verbosity > 0:
		cfg.Log.Level = log.LevelFromVerbosity(cfg.Verbosity, logrus.WarnLevel).String()
	case cfg.Log.Level == "":
		cfg.Log.Level = logrus.WarnLevel.String()
	}
}

func (cfg Application) String() string {
	out, err := yaml.Marshal(&cfg)
	if err != nil {
		return err.Error()
	}
	return string(out)
}

// readConfig attempts to read the given config path from disk or discover an alternate store location
func readConfig(v *viper.Viper, configPath string) error {
	var err error
	v.AutomaticEnv()
	v.SetEnvPrefix(ApplicationName)
	// nested options via environment variables: fetch.cache-ttl = ALTCMP_FETCH_CACHE_TTL
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("unable to read application config=%q : %w", configPath, err)
		}
		return nil
	}

	// 1. .altcmp.yaml in the current directory
	v.AddConfigPath(".")
	v.SetConfigName("." + ApplicationName)
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 2. .altcmp/config.yaml in the current directory
	v.AddConfigPath("." + ApplicationName)
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	// 3. ~/.altcmp.yaml
	home, err := homedir.Dir()
	if err == nil {
		v.AddConfigPath(home)
		v.SetConfigName("." + ApplicationName)
		if err = v.ReadInConfig(); err == nil {
			return nil
		} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
		}
	}

	// 4. altcmp/config.yaml in the xdg config dirs
	v.AddConfigPath(path.Join(xdg.ConfigHome, ApplicationName))
	for _, dir := range xdg.ConfigDirs {
		v.AddConfigPath(path.Join(dir, ApplicationName))
	}
	v.SetConfigName("config")
	if err = v.ReadInConfig(); err == nil {
		return nil
	} else if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
		return fmt.Errorf("unable to parse config=%q: %w", v.ConfigFileUsed(), err)
	}

	return ErrApplicationConfigNotFound
}
