package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// MaxDecks is the largest deck multiplier a game may be dealt with
const MaxDecks = 8

// Config represents the application configuration
type Config struct {
	Decks    int    `toml:"decks"`
	Seed     int64  `toml:"seed"`
	Color    bool   `toml:"color"`
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration written on first run
func Default() *Config {
	return &Config{
		Decks:    1,
		Seed:     0,
		Color:    true,
		LogLevel: "warn",
	}
}

// Validate reports the first setting that cannot be used
func (c *Config) Validate() error {
	if c.Decks < 1 || c.Decks > MaxDecks {
		return fmt.Errorf("decks must be between 1 and %d, got %d", MaxDecks, c.Decks)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// Set updates a single setting from its string form
func (c *Config) Set(key, value string) error {
	switch strings.ToLower(key) {
	case "decks":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("decks must be a number: %v", err)
		}
		c.Decks = n
	case "seed":
		n, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("seed must be a number: %v", err)
		}
		c.Seed = n
	case "color":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("color must be true or false: %v", err)
		}
		c.Color = b
	case "log_level":
		c.LogLevel = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return c.Validate()
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "solitaire", "config.toml")
}

// LoadConfig loads the config file, writing the defaults if it does not exist
func LoadConfig() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	return LoadFile(configPath)
}

// LoadFile decodes a config file at an arbitrary path. Settings missing
// from the file keep their default values.
func LoadFile(path string) (*Config, error) {
	config := Default()
	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	return config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	config := Default()
	if err := SaveConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// SaveConfig writes config to the config file, creating its directory
func SaveConfig(config *Config) error {
	configPath := GetConfigFilePath()

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("error creating config directory: %v", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}
