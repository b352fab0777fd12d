package config

import (
	"errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"os"
	"warsim/internal/util"
)

// DefaultConfigFile is loaded if WAR_CONFIG_FILE is not set
const DefaultConfigFile = "config.yaml"

// Config provides configuration for the War simulator
type Config struct {
	loaded bool

	// Seed is the shuffle seed. 0 means a cryptographically secure shuffle
	Seed int64 `yaml:"seed" envconfig:"seed"`

	// Output is either console or log
	Output    string `yaml:"output" envconfig:"output"`
	ShowHands bool   `yaml:"showHands" envconfig:"show_hands"`
	Players   struct {
		One    string `yaml:"one" envconfig:"one"`
		Two    string `yaml:"two" envconfig:"two"`
		Random bool   `yaml:"random" envconfig:"random"`
	} `yaml:"players"`

	Log struct {
		Level  string `yaml:"level" envconfig:"level"`
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Output: "console",
	}

	cfg.Players.One = "Player 1"
	cfg.Players.Two = "Player 2"
	cfg.Log.Level = "info"
	cfg.Log.Format = "text"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// A missing config.yaml is not an error, but a missing WAR_CONFIG_FILE is.
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("WAR_CONFIG_FILE", DefaultConfigFile)
	if err := loadFile(configFile, &cfg); err != nil {
		if !errors.Is(err, os.ErrNotExist) || configFile != DefaultConfigFile {
			return err
		}
	}

	if err := envconfig.Process("war", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

func loadFile(name string, cfg *Config) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	return yaml.NewDecoder(file).Decode(cfg)
}
