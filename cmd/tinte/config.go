package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	keyLogLevel        = "log_level"
	keyHumanLogs       = "human_logs"
	keyDefaultProvider = "default_provider"
	keyOutputDir       = "output_dir"
)

// settings is the resolved CLI configuration. Precedence, highest first:
// flags, TINTE_* environment variables, the config file, defaults.
type settings struct {
	LogLevel        string
	HumanLogs       bool
	DefaultProvider string
	OutputDir       string
	ConfigFile      string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyHumanLogs, false)
	v.SetDefault(keyDefaultProvider, "shadcn")
	v.SetDefault(keyOutputDir, "")

	v.SetEnvPrefix("tinte")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadSettings reads the config file named by path, or the default
// $XDG_CONFIG_HOME/tinte/config.yaml when it exists.
func loadSettings(v *viper.Viper, path string) (settings, error) {
	if path == "" {
		path = defaultConfigPath()
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return settings{}, err
			}
		}
	}

	return settings{
		LogLevel:        v.GetString(keyLogLevel),
		HumanLogs:       v.GetBool(keyHumanLogs),
		DefaultProvider: v.GetString(keyDefaultProvider),
		OutputDir:       v.GetString(keyOutputDir),
		ConfigFile:      v.ConfigFileUsed(),
	}, nil
}

func defaultConfigPath() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		var err error
		if dir, err = os.UserConfigDir(); err != nil {
			return ""
		}
	}
	return filepath.Join(dir, "tinte", "config.yaml")
}
