package config

import (
	"errors"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"lolpoker-server/internal/util"
	"lolpoker-server/pkg/table"
	"os"
)

// Config provides configuration for the lolpoker server
type Config struct {
	loaded bool
	Log    struct {
		Level             string `yaml:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	NATS struct {
		URL           string `yaml:"url"`
		Token         string `yaml:"token"`
		SubjectPrefix string `yaml:"subjectPrefix" envconfig:"subject_prefix"`
	} `yaml:"nats"`
	// RateLimit is the number of websocket connections allowed per IP per minute
	RateLimit   int           `yaml:"rateLimit" envconfig:"rate_limit"`
	CatalogPath string        `yaml:"catalogPath" envconfig:"catalog_path"`
	Tables      []string      `yaml:"tables"`
	Game        table.Options `yaml:"game"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		RateLimit:   30,
		CatalogPath: "catalog.json",
		Tables:      []string{"main"},
		Game:        table.DefaultOptions(),
	}

	cfg.Log.Level = "info"
	cfg.NATS.SubjectPrefix = "lolpoker"
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
// Defaults are overlaid by the YAML file, if one exists, and then by the environment
func Load() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return err
	}

	cfg := DefaultConfig()

	configFile := util.Getenv("LOLPOKER_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !os.IsNotExist(err) {
		return err
	}

	if file != nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return fmt.Errorf("could not decode %s: %w", configFile, err)
		}
	}

	if err := envconfig.Process("lolpoker", &cfg); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	cfg.loaded = true
	config = cfg
	return nil
}

// Validate returns every problem with the configuration
func (c Config) Validate() error {
	var result error

	if c.CatalogPath == "" {
		result = multierror.Append(result, errors.New("catalogPath is required"))
	}

	if len(c.Tables) == 0 {
		result = multierror.Append(result, errors.New("at least one table is required"))
	}

	seen := make(map[string]bool)
	for _, id := range c.Tables {
		if id == "" {
			result = multierror.Append(result, errors.New("table ids cannot be blank"))
		} else if seen[id] {
			result = multierror.Append(result, fmt.Errorf("table %s is listed twice", id))
		}

		seen[id] = true
	}

	if c.RateLimit <= 0 {
		result = multierror.Append(result, errors.New("rateLimit must be greater than zero"))
	}

	return result
}
