// Package config loads cbuild-idkit settings from an optional YAML file and
// CBUILD_IDKIT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppName is the application name.
	AppName = "cbuild-idkit"
	// LocalConfigFile is looked up in the working directory first.
	LocalConfigFile = ".cbuild-idkit.yaml"
	// EnvPrefix prefixes environment overrides, e.g. CBUILD_IDKIT_FORMAT.
	EnvPrefix = "CBUILD_IDKIT"
)

// Config holds the user settings.
type Config struct {
	Format       string `mapstructure:"format"`
	Verbose      bool   `mapstructure:"verbose"`
	CompilerRoot string `mapstructure:"compiler_root"`
}

// Defaults returns the built-in settings.
func Defaults() Config {
	return Config{Format: "json"}
}

// Load reads settings into v and decodes them. An explicit path must exist;
// otherwise ./.cbuild-idkit.yaml and then <user config dir>/cbuild-idkit/config.yaml
// are tried and a missing file is not an error. The returned string is the
// config file actually used, or "".
func Load(v *viper.Viper, path string) (Config, string, error) {
	defaults := Defaults()
	v.SetDefault("format", defaults.Format)
	v.SetDefault("verbose", defaults.Verbose)
	v.SetDefault("compiler_root", defaults.CompilerRoot)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	switch {
	case path != "":
		v.SetConfigFile(path)
	case fileExists(LocalConfigFile):
		v.SetConfigFile(LocalConfigFile)
	default:
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, AppName))
		}
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}

	used := ""
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("failed to read config: %w", err)
		}
	} else {
		used = v.ConfigFileUsed()
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, "", err
	}
	return cfg, used, nil
}

// Validate checks the setting values.
func (c Config) Validate() error {
	switch strings.ToLower(c.Format) {
	case "json", "yaml", "yml":
		return nil
	default:
		return fmt.Errorf("invalid format %q in configuration (supported: json, yaml)", c.Format)
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
