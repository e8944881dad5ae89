// ABOUTME: Configuration loading for the fitlog CLI via viper.
// ABOUTME: Resolves XDG paths for config, database, and flag store.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	cfgKeyDataDir = "data_dir"
)

// Config stores fitlog configuration.
type Config struct {
	// DataDir is the root directory for data storage: the sqlite file
	// (fitlog.db) and the flag store (flags/) live here. Supports ~
	// expansion. Defaults to the XDG data directory.
	DataDir string
}

// Load reads config.yaml from the XDG config directory. A missing config
// file is not an error; defaults apply.
func Load() (*Config, error) {
	return LoadFrom(ConfigDir())
}

// LoadFrom reads config.yaml from the given directory.
func LoadFrom(configDir string) (*Config, error) {
	v := viper.New()
	v.SetDefault(cfgKeyDataDir, "")
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	return &Config{DataDir: v.GetString(cfgKeyDataDir)}, nil
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// DBPath returns the sqlite file path under the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.GetDataDir(), "fitlog.db")
}

// FlagsDir returns the flag store directory under the data directory.
func (c *Config) FlagsDir() string {
	return filepath.Join(c.GetDataDir(), "flags")
}

// ConfigDir returns the config directory following XDG spec.
func ConfigDir() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "fitlog")
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "fitlog")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
