package config

import (
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"indigo/internal/util"
)

// Config provides configuration for the indigo binaries
type Config struct {
	loaded bool
	Log    struct {
		Level string `yaml:"level" envconfig:"level"`
		// Format is "text" or "json"
		Format string `yaml:"format" envconfig:"format"`
	} `yaml:"log"`
	// QuitToken ends the match immediately when typed at the card prompt
	QuitToken string `yaml:"quitToken" envconfig:"quit_token"`
	// Seed makes the shuffle reproducible. 0 picks a random seed
	Seed       int64 `yaml:"seed" envconfig:"seed"`
	NoColor    bool  `yaml:"noColor" envconfig:"no_color"`
	Simulation struct {
		Matches int `yaml:"matches" envconfig:"matches"`
		Workers int `yaml:"workers" envconfig:"workers"`
	} `yaml:"simulation"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	cfg := Config{
		QuitToken: "exit",
	}
	cfg.Log.Level = "warning"
	cfg.Log.Format = "text"
	cfg.Simulation.Matches = 1000
	cfg.Simulation.Workers = 4

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
// The YAML file is optional; environment variables prefixed with INDIGO_ override it
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("INDIGO_CONFIG_FILE", "indigo.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("indigo", &cfg); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}
