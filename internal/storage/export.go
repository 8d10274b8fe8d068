package storage

import (
	"encoding/json"
	"io"
)

type ExportData struct {
	Meta       RunMetadata       `json:"meta"`
	Times      []float64         `json:"times"`
	Energies   []float64         `json:"energies"`
	Periods    []PeriodEvent     `json:"periods"`
	Satellite  []DistanceSample  `json:"satellite,omitempty"`
	Trajectory []TrajectoryPoint `json:"trajectory"`
}

// ExportJSON writes everything stored for a run as one JSON document.
func (s *Store) ExportJSON(runID string, w io.Writer) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}
	data := ExportData{Meta: *meta}

	if data.Times, data.Energies, err = s.LoadEnergy(runID); err != nil {
		return err
	}
	if data.Periods, err = s.LoadPeriods(runID); err != nil {
		return err
	}
	if data.Satellite, err = s.LoadSatellite(runID); err != nil {
		return err
	}
	if data.Trajectory, err = s.LoadTrajectory(runID); err != nil {
		return err
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
