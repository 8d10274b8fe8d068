package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/orbsim/internal/catalog"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/sim"
)

const (
	DefaultDt          = 86400.0
	DefaultSteps       = 730
	DefaultIntegrator  = "beeman"
	DefaultAccumulator = "direct"
	DefaultTheta       = 0.5
	DefaultCatalog     = "inner"
	DefaultWorkers     = 1
)

// Config describes one run. Bodies, when present, take precedence over
// Catalog.
type Config struct {
	Name          string                   `yaml:"name"`
	Catalog       string                   `yaml:"catalog,omitempty"`
	Bodies        []catalog.Record         `yaml:"bodies,omitempty"`
	Satellite     *catalog.SatelliteRecord `yaml:"satellite,omitempty"`
	Probe         ProbeConfig              `yaml:"probe"`
	Integrator    string                   `yaml:"integrator"`
	Accumulator   string                   `yaml:"accumulator"`
	Theta         float64                  `yaml:"theta"`
	Workers       int                      `yaml:"workers"`
	Dt            float64                  `yaml:"dt"`
	Steps         int                      `yaml:"steps"`
	Gravity       float64                  `yaml:"gravity"`
	ReferenceMass float64                  `yaml:"reference_mass"`
}

// ProbeConfig holds the indices the satellite distances are measured to.
type ProbeConfig struct {
	Earth int `yaml:"earth"`
	Mars  int `yaml:"mars"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:          DefaultCatalog,
		Catalog:       DefaultCatalog,
		Integrator:    DefaultIntegrator,
		Accumulator:   DefaultAccumulator,
		Theta:         DefaultTheta,
		Workers:       DefaultWorkers,
		Dt:            DefaultDt,
		Steps:         DefaultSteps,
		Gravity:       dynamo.G,
		ReferenceMass: dynamo.SolarMass,
		Probe: ProbeConfig{
			Earth: sim.DefaultEarthIndex,
			Mars:  sim.DefaultMarsIndex,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the scalar settings. Body records are checked when the
// system is built.
func (c *Config) Validate() error {
	if !(c.Dt > 0) {
		return fmt.Errorf("%w: dt must be positive, got %g", dynamo.ErrParameterBounds, c.Dt)
	}
	if !(c.Gravity > 0) || !(c.ReferenceMass > 0) {
		return fmt.Errorf("%w: gravity and reference_mass must be positive", dynamo.ErrParameterBounds)
	}
	if c.Theta < 0 {
		return fmt.Errorf("%w: theta must not be negative, got %g", dynamo.ErrParameterBounds, c.Theta)
	}
	if c.Catalog == "" && len(c.Bodies) == 0 {
		return dynamo.ErrNoBodies
	}
	return nil
}

// Records returns the configured bodies, reading the catalog if needed.
func (c *Config) Records() ([]catalog.Record, error) {
	if len(c.Bodies) > 0 {
		return c.Bodies, nil
	}
	return catalog.Records(c.Catalog)
}
