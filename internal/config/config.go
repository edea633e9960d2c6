// Package config loads scatterbrain's configuration from (in ascending
// precedence) built-in defaults, a config file, environment variables
// prefixed SCATTERBRAIN_, and command-line flags — the same layering the
// teacher's cmd/config.go builds with viper, generalized from a
// single-process CLI config to the server + CLI-client split scatterbrain
// needs.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const envPrefix = "SCATTERBRAIN"

// Config is the fully resolved application configuration.
type Config struct {
	Server struct {
		Host string `mapstructure:"host"`
		Port int    `mapstructure:"port"`
	} `mapstructure:"server"`

	Telemetry struct {
		Enabled bool `mapstructure:"enabled"`
	} `mapstructure:"telemetry"`

	Log struct {
		Level  string `mapstructure:"level"`
		Format string `mapstructure:"format"`
	} `mapstructure:"log"`

	CLI struct {
		Server string `mapstructure:"server"`
		Plan   int    `mapstructure:"plan"`
	} `mapstructure:"cli"`
}

// Load builds a Config from defaults, an optional config file, environment
// variables, and the already-bound cobra flag set (v). v is typically the
// package-global viper.Viper cobra commands bind their flags to; pass
// viper.GetViper() from cmd/root.go.
func Load(v *viper.Viper) (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Debug("no .env file loaded", "error", err)
	}

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if cfgFile := os.Getenv(envPrefix + "_CONFIG"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("scatterbrain")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("reading config file %s: %w", v.ConfigFileUsed(), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "127.0.0.1")
	v.SetDefault("server.port", 3000)
	v.SetDefault("telemetry.enabled", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")
	v.SetDefault("cli.server", "http://127.0.0.1:3000")
	v.SetDefault("cli.plan", -1)
}

// WatchAndReload arranges for v to re-read its config file whenever it
// changes on disk, invoking onChange with the freshly unmarshaled Config.
// Reload errors are logged and otherwise ignored: a malformed edit to the
// config file must not crash a running server.
func WatchAndReload(v *viper.Viper, log *slog.Logger, onChange func(*Config)) {
	v.OnConfigChange(func(e fsnotify.Event) {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			log.Error("config reload failed, keeping previous configuration", "event", e.Name, "error", err)
			return
		}
		log.Info("configuration reloaded", "file", e.Name)
		onChange(&cfg)
	})
	v.WatchConfig()
}
