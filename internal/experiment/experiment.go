package experiment

import (
	"context"
	"fmt"

	"github.com/san-kum/orbsim/internal/catalog"
	"github.com/san-kum/orbsim/internal/config"
	"github.com/san-kum/orbsim/internal/sim"
)

// escapeFactor scales the catalog size limit into the Boundedness radius.
const (
	escapeFactor = 10
	au           = 1.496e11
)

type Experiment struct {
	cfg       *config.Config
	registry  *Registry
	system    *sim.System
	sizeLimit float64
}

func New(cfg *config.Config) *Experiment {
	return &Experiment{
		cfg:      cfg,
		registry: NewRegistry(),
	}
}

// Setup builds the system described by the config, adds the satellite if
// one is configured and attaches the default metrics.
func (e *Experiment) Setup() error {
	if err := e.cfg.Validate(); err != nil {
		return err
	}

	scheme, err := e.registry.GetScheme(e.cfg.Integrator)
	if err != nil {
		return err
	}
	acc, err := e.registry.GetAccumulator(e.cfg.Accumulator, e.cfg.Gravity, e.cfg.Theta)
	if err != nil {
		return err
	}

	records, err := e.cfg.Records()
	if err != nil {
		return fmt.Errorf("read bodies: %w", err)
	}
	bodies, err := catalog.Bodies(records, e.cfg.Gravity, e.cfg.ReferenceMass)
	if err != nil {
		return err
	}
	e.sizeLimit = catalog.SizeLimit(records)

	sys, err := sim.New(bodies, e.cfg.Dt,
		sim.WithGravity(e.cfg.Gravity),
		sim.WithScheme(scheme),
		sim.WithAccumulator(acc),
		sim.WithWorkers(e.cfg.Workers),
		sim.WithProbeIndices(e.cfg.Probe.Earth, e.cfg.Probe.Mars),
	)
	if err != nil {
		return err
	}

	if e.cfg.Satellite != nil {
		sat := e.cfg.Satellite.Body()
		if sat.Position.X > e.sizeLimit {
			e.sizeLimit = sat.Position.X
		}
		if err := sys.AddSatellite(sat); err != nil {
			return fmt.Errorf("add satellite: %w", err)
		}
	}

	escape := escapeFactor * e.sizeLimit
	if escape == 0 {
		escape = escapeFactor * au
	}
	for _, m := range e.registry.DefaultMetrics(escape) {
		sys.AddMetric(m)
	}

	e.system = sys
	return nil
}

func (e *Experiment) Run(ctx context.Context) (*sim.Result, error) {
	if e.system == nil {
		return nil, fmt.Errorf("experiment not setup")
	}
	return e.system.Run(ctx, e.cfg.Steps)
}

// System returns the underlying system for attaching sinks and observers.
func (e *Experiment) System() *sim.System {
	return e.system
}

func (e *Experiment) Config() *config.Config {
	return e.cfg
}

// SizeLimit is the widest starting orbit, for scaling views.
func (e *Experiment) SizeLimit() float64 {
	return e.sizeLimit
}

// Build is New followed by Setup.
func Build(cfg *config.Config) (*Experiment, error) {
	e := New(cfg)
	if err := e.Setup(); err != nil {
		return nil, err
	}
	return e, nil
}
