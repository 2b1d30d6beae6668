// Package config provides configuration management for simfabric.
//
// Configuration is loaded in the following order (later sources
// override earlier ones):
//  1. Default values (hardcoded)
//  2. Configuration files (./config.yaml, ~/.simfabric/config.yaml,
//     /etc/simfabric/config.yaml)
//  3. .env files
//  4. Environment variables (SF_ prefix)
//
// Environment variables use the SF_ prefix and underscores for nested
// keys, e.g. SF_SERVER_PORT=8096 or SF_PLATFORM_CONFIG=/opt/dc.json.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure for simfabric.
type Config struct {
	// Server configures the read-only topology inspection server.
	Server ServerConfig `mapstructure:"server"`

	// Platform configures the platform document lookup.
	Platform PlatformConfig `mapstructure:"platform"`

	// Logging contains logging settings.
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig contains inspection server settings.
type ServerConfig struct {
	// Host is the server bind address (default: localhost)
	Host string `mapstructure:"host"`

	// Port is the server listen port (default: 8096)
	Port int `mapstructure:"port"`

	// ReadTimeout is the maximum duration for reading requests
	ReadTimeout time.Duration `mapstructure:"read_timeout"`

	// WriteTimeout is the maximum duration for writing responses
	WriteTimeout time.Duration `mapstructure:"write_timeout"`

	// ShutdownTimeout is the maximum duration for graceful shutdown
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`

	// Debug enables echo debug mode
	Debug bool `mapstructure:"debug"`
}

// PlatformConfig contains platform document settings.
type PlatformConfig struct {
	// Config overrides the platform document path. When empty, the
	// document is resolved next to the executable and then in the
	// working directory (SF_PLATFORM_CONFIG).
	Config string `mapstructure:"config"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level is the log level (debug, info, warn, error)
	Level string `mapstructure:"level"`

	// Format is the log format (json, console)
	Format string `mapstructure:"format"`
}

var cfg *Config

// Load reads the configuration from the given file, falling back to
// the default search paths when cfgFile is empty.
//
// Configuration precedence (highest to lowest):
//  1. Environment variables (SF_ prefix)
//  2. .env file
//  3. Configuration file
//  4. Default values
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.simfabric")
		v.AddConfigPath("/etc/simfabric")
	}

	if err := v.ReadInConfig(); err != nil {
		if cfgFile != "" {
			if !isFileNotFoundError(err) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		} else {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetConfigFile(".env")
	v.SetConfigType("env")
	_ = v.MergeInConfig() // Ignore error if .env file doesn't exist

	v.SetEnvPrefix("SF")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", 8096)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "10s")
	v.SetDefault("server.debug", false)

	v.SetDefault("platform.config", "")

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")
}

func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", cfg.Server.Port)
	}
	return nil
}

// Get returns the configuration loaded by the last Load call.
func Get() *Config {
	return cfg
}

// isFileNotFoundError checks if an error is a file not found error.
func isFileNotFoundError(err error) bool {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		return errors.Is(pathErr, os.ErrNotExist)
	}
	return false
}
