package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds demo application configuration.
type Config struct {
	UI   UIConfig
	Keys map[string][]string
}

// UIConfig holds presentation and input settings.
type UIConfig struct {
	// Unmount removes closed panels from the focus structure entirely; when
	// false they are kept but hidden.
	Unmount bool
	Mouse   bool
}

// Load reads configuration from file and env. Env var overrides use prefix FLYOUT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.unmount", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("keys", map[string][]string{})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("FLYOUT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "flyout"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("FLYOUT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Used for persisting key rebindings chosen at runtime.
func Save(cfg Config) error {
	path := os.Getenv("FLYOUT_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "flyout", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.unmount", cfg.UI.Unmount)
	v.Set("ui.mouse", cfg.UI.Mouse)
	v.Set("keys", cfg.Keys)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
