package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/teranos/tlgen/errors"
	"github.com/teranos/tlgen/logger"
)

var viperInstance *viper.Viper

// GetViper returns the shared Viper instance so commands can bind their flags
func GetViper() *viper.Viper {
	return initViper()
}

// Load reads the configuration from all sources and validates it
func Load() (*Config, error) {
	return LoadWithViper(initViper())
}

// LoadWithViper loads configuration using a provided Viper instance
func LoadWithViper(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(configPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("toml")

	// Set defaults but don't bind environment variables for this specific load
	SetDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", configPath)
	}

	cfg, err := LoadWithViper(v)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", configPath)
	}
	return cfg, nil
}

// Reset clears the cached Viper instance (useful for testing)
func Reset() {
	viperInstance = nil
}

// initViper initializes Viper with configuration sources and defaults
func initViper() *viper.Viper {
	if viperInstance != nil {
		return viperInstance
	}

	v := viper.New()

	// TLGEN_GENERATE_LANG overrides generate.lang, and so on
	v.SetEnvPrefix("TLGEN")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	SetDefaults(v)

	if path := FindProjectConfig(); path != "" {
		mergeConfigFile(v, path)
	}

	viperInstance = v
	return v
}

// FindProjectConfig searches for tlgen.toml by walking up the directory tree.
// Returns the path to the first config file found, or empty string if none found.
func FindProjectConfig() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}
	return findConfigFrom(dir)
}

func findConfigFrom(dir string) string {
	for {
		path := filepath.Join(dir, ProjectConfigName)
		if _, err := os.Stat(path); err == nil {
			return path
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return ""
		}
		dir = parent
	}
}

// mergeConfigFile merges one TOML file over the current settings.
// A broken project config is skipped so that flags can still fix things.
func mergeConfigFile(v *viper.Viper, path string) {
	if err := mergeInto(v, path); err != nil {
		logger.Warnw("Ignoring project config", "path", path, "error", err)
	}
}

func mergeInto(v *viper.Viper, path string) error {
	tmp := viper.New()
	tmp.SetConfigFile(path)
	tmp.SetConfigType("toml")
	if err := tmp.ReadInConfig(); err != nil {
		return errors.Wrapf(err, "failed to read config file %s", path)
	}
	if err := v.MergeConfigMap(tmp.AllSettings()); err != nil {
		return errors.Wrapf(err, "failed to merge config file %s", path)
	}
	v.SetConfigFile(path)
	return nil
}

// MergeFile merges an explicitly named config file into the shared instance,
// over the project config
func MergeFile(path string) error {
	return mergeInto(initViper(), path)
}

// ConfigFileUsed returns the project config merged into the shared instance, if any
func ConfigFileUsed() string {
	return initViper().ConfigFileUsed()
}
