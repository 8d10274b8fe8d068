package sim

import (
	"context"
	"math"

	"github.com/san-kum/orbsim/internal/dynamo"
)

// Run calls Step the given number of times. A negative count runs until ctx
// is cancelled; such runs do not record per-step times and energies.
func (s *System) Run(ctx context.Context, steps int) (*Result, error) {
	result := &Result{
		Metrics:       make(map[string]float64),
		InitialEnergy: s.energy,
	}
	if steps >= 0 {
		result.Times = make([]float64, 0, steps)
		result.Energies = make([]float64, 0, steps)
	}

	for _, m := range s.metrics {
		m.Reset()
	}

	for i := 0; steps < 0 || i < steps; i++ {
		select {
		case <-ctx.Done():
			s.finish(result)
			return result, ctx.Err()
		default:
		}

		t := s.time
		if err := s.Step(); err != nil {
			s.finish(result)
			return result, &dynamo.SimulationError{Step: s.steps, Time: t, Wrapped: err}
		}
		result.StepsTaken++

		if s.validate {
			if name, bad := s.invalidBody(); bad {
				s.finish(result)
				return result, &dynamo.SimulationError{Step: s.steps - 1, Time: t, Body: name, Wrapped: dynamo.ErrInvalidState}
			}
		}

		if steps >= 0 {
			result.Times = append(result.Times, t)
			result.Energies = append(result.Energies, s.energy)
		}

		for _, m := range s.metrics {
			m.Observe(s)
		}
	}

	s.finish(result)
	return result, nil
}

func (s *System) finish(result *Result) {
	result.FinalEnergy = s.energy
	if result.InitialEnergy != 0 {
		result.EnergyDrift = math.Abs(result.FinalEnergy-result.InitialEnergy) / math.Abs(result.InitialEnergy)
	}
	for _, m := range s.metrics {
		result.Metrics[m.Name()] = m.Value()
	}
}
