package config

import (
	"sort"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/catalog"
)

var Presets = map[string]*Config{
	"inner": {
		Name: "inner", Catalog: "inner", Steps: 730,
	},
	"all": {
		Name: "all", Catalog: "all", Dt: 4 * DefaultDt, Steps: 15000,
	},
	"satellite": {
		Name: "satellite", Catalog: "inner", Steps: 730,
		Satellite: satellite(30000, 45),
	},
	"binary": {
		Name: "binary", Dt: 3600, Steps: 24 * 400,
		Bodies: []catalog.Record{
			{Name: "Alpha", Mass: 1e30, X: -1e11, Radius: 12,
				Color: body.Color{R: 1.0, G: 0.6, B: 0.2}, Velocity: &r2.Vec{Y: -12917.3}},
			{Name: "Beta", Mass: 1e30, X: 1e11, Radius: 12,
				Color: body.Color{R: 0.4, G: 0.6, B: 1.0}, Velocity: &r2.Vec{Y: 12917.3}},
		},
	},
	"barneshut": {
		Name: "barneshut", Catalog: "all", Accumulator: "barneshut", Theta: 0.7, Workers: 4, Steps: 3650,
	},
}

func satellite(speed, angle float64) *catalog.SatelliteRecord {
	s := catalog.DefaultSatellite(speed, angle)
	return &s
}

// GetPreset returns a copy of the named preset with unset fields filled
// from DefaultConfig, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	cfg.Name = p.Name
	if p.Catalog != "" || len(p.Bodies) > 0 {
		cfg.Catalog = p.Catalog
	}
	if len(p.Bodies) > 0 {
		cfg.Bodies = append([]catalog.Record(nil), p.Bodies...)
	}
	if p.Satellite != nil {
		s := *p.Satellite
		cfg.Satellite = &s
	}
	if p.Accumulator != "" {
		cfg.Accumulator = p.Accumulator
	}
	if p.Theta != 0 {
		cfg.Theta = p.Theta
	}
	if p.Workers != 0 {
		cfg.Workers = p.Workers
	}
	if p.Dt != 0 {
		cfg.Dt = p.Dt
	}
	if p.Steps != 0 {
		cfg.Steps = p.Steps
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
