// Package config loads the service configuration from YAML, applies
// defaults, and validates the result.
package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arcspirits/spirits-api/internal/entities/spirits"
	"github.com/arcspirits/spirits-api/internal/errors"
)

// ServerConfig holds the HTTP listener settings
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	ReadTimeout     time.Duration `yaml:"read_timeout"`
	WriteTimeout    time.Duration `yaml:"write_timeout"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// RedisConfig holds the storage settings
type RedisConfig struct {
	Endpoint string `yaml:"endpoint"`
}

// SimulationConfig holds the estimator limits
type SimulationConfig struct {
	MaxIterations int           `yaml:"max_iterations"`
	ResultTTL     time.Duration `yaml:"result_ttl"`
}

// Config is the full service configuration
type Config struct {
	Server     ServerConfig           `yaml:"server"`
	Redis      RedisConfig            `yaml:"redis"`
	Simulation SimulationConfig       `yaml:"simulation"`
	Rarities   []spirits.RarityConfig `yaml:"rarities"`

	// RarityFile, when set, points at a standalone rarity table that is
	// watched for changes at runtime.
	RarityFile string `yaml:"rarity_file"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the YAML file at path. An empty path yields the defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 // path comes from the operator
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read config file %s", path)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse config file")
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 15 * time.Second
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 60 * time.Second
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 30 * time.Second
	}
	if c.Redis.Endpoint == "" {
		c.Redis.Endpoint = "localhost:6379"
	}
	if c.Simulation.MaxIterations == 0 {
		c.Simulation.MaxIterations = 100_000
	}
	if c.Simulation.ResultTTL == 0 {
		c.Simulation.ResultTTL = 1 * time.Hour
	}
	if len(c.Rarities) == 0 {
		c.Rarities = spirits.DefaultRarityConfigs()
	}
}

// Validate checks the configuration for structural problems
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Simulation.MaxIterations < 1 {
		vb.InvalidField("simulation.max_iterations", "must be positive")
	}
	for i, rc := range c.Rarities {
		if !rc.Rarity.IsValid() {
			vb.Fieldf("rarities", "entry %d has unknown tier %q", i, rc.Rarity)
		}
		if rc.Copies < 0 {
			vb.Fieldf("rarities", "entry %d has negative copies", i)
		}
		if rc.MaxCost < rc.MinCost {
			vb.Fieldf("rarities", "entry %d has max_cost below min_cost", i)
		}
	}

	return vb.Build()
}

// LoadRarityFile parses a standalone rarity table
func LoadRarityFile(path string) ([]spirits.RarityConfig, error) {
	data, err := os.ReadFile(path) // #nosec G304 // path comes from the operator
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read rarity file %s", path)
	}

	var doc struct {
		Rarities []spirits.RarityConfig `yaml:"rarities"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse rarity file")
	}
	if len(doc.Rarities) == 0 {
		return nil, errors.InvalidArgument("rarity file has no entries")
	}
	return doc.Rarities, nil
}
