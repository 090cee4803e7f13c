// Package config holds the application's root configuration, loaded once
// through Viper and shared as a read-only singleton.
package config

import (
	"fmt"
	"sync"

	"github.com/spf13/viper"

	"github.com/xkilldash9x/shroud/pkg/stealth"
)

var (
	instance *Config
	once     sync.Once
)

// Config is the root configuration structure. Behavior-jitter ranges live
// under the stealth section (stealth.humanoid), where the generator reads
// them.
type Config struct {
	Logger  LoggerConfig   `mapstructure:"logger"`
	Stealth stealth.Config `mapstructure:"stealth"`
	Browser BrowserConfig  `mapstructure:"browser"`
}

// ColorConfig maps log levels to console colors by name.
type ColorConfig struct {
	Debug string `mapstructure:"debug" yaml:"debug"`
	Info  string `mapstructure:"info" yaml:"info"`
	Warn  string `mapstructure:"warn" yaml:"warn"`
	Error string `mapstructure:"error" yaml:"error"`
}

// LoggerConfig configures the global logger: console encoding plus an
// optional rotated JSON file.
type LoggerConfig struct {
	Level       string      `mapstructure:"level" yaml:"level"`
	Format      string      `mapstructure:"format" yaml:"format"`
	AddSource   bool        `mapstructure:"add_source" yaml:"add_source"`
	ServiceName string      `mapstructure:"service_name" yaml:"service_name"`
	LogFile     string      `mapstructure:"log_file" yaml:"log_file"`
	MaxSize     int         `mapstructure:"max_size" yaml:"max_size"`
	MaxBackups  int         `mapstructure:"max_backups" yaml:"max_backups"`
	MaxAge      int         `mapstructure:"max_age" yaml:"max_age"`
	Compress    bool        `mapstructure:"compress" yaml:"compress"`
	Colors      ColorConfig `mapstructure:"colors" yaml:"colors"`
}

// BrowserConfig carries the process-level knobs the launch-args command
// folds into its output for consumers that launch Chromium themselves.
type BrowserConfig struct {
	Headless bool     `mapstructure:"headless" yaml:"headless"`
	Args     []string `mapstructure:"args" yaml:"args"`
}

// SetDefaults registers the baseline values so the CLI runs with no config
// file at all. The stealth section deliberately gets no defaults: its zero
// value already is the documented baseline (opt-out gates).
func SetDefaults(v *viper.Viper) {
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.service_name", "shroud")
	v.SetDefault("logger.max_size", 50)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 14)
	v.SetDefault("browser.headless", true)
}

// Load initializes the configuration singleton from Viper.
func Load(v *viper.Viper) error {
	var loadErr error
	once.Do(func() {
		var cfg Config
		if err := v.Unmarshal(&cfg); err != nil {
			loadErr = fmt.Errorf("error unmarshaling config: %w", err)
			return
		}
		instance = &cfg
	})
	return loadErr
}

// Get returns the loaded configuration instance.
func Get() *Config {
	if instance == nil {
		panic("configuration not initialized: call config.Load() in the root command")
	}
	return instance
}
