package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"
)

const (
	metadataFile   = "metadata.json"
	energyFile     = "energy.csv"
	periodsFile    = "periods.csv"
	satelliteFile  = "satellite.csv"
	trajectoryFile = "trajectory.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Timestamp     time.Time          `json:"timestamp"`
	Dt            float64            `json:"dt"`
	Steps         int                `json:"steps"`
	Integrator    string             `json:"integrator"`
	Accumulator   string             `json:"accumulator"`
	Bodies        []string           `json:"bodies"`
	InitialEnergy float64            `json:"initial_energy"`
	FinalEnergy   float64            `json:"final_energy"`
	EnergyDrift   float64            `json:"energy_drift"`
	Periods       map[string]float64 `json:"periods_years"`
	Metrics       map[string]float64 `json:"metrics"`
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadEnergy returns the energy log of a run.
func (s *Store) LoadEnergy(runID string) (times, energies []float64, err error) {
	rows, err := s.readRows(runID, energyFile)
	if err != nil {
		return nil, nil, err
	}

	times = make([]float64, 0, len(rows))
	energies = make([]float64, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			continue
		}
		t, err1 := strconv.ParseFloat(row[0], 64)
		e, err2 := strconv.ParseFloat(row[1], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		times = append(times, t)
		energies = append(energies, e)
	}
	return times, energies, nil
}

type PeriodEvent struct {
	Body      string  `json:"body"`
	Time      float64 `json:"time"`
	AvgPeriod float64 `json:"avg_period_years"`
}

func (s *Store) LoadPeriods(runID string) ([]PeriodEvent, error) {
	rows, err := s.readRows(runID, periodsFile)
	if err != nil {
		return nil, err
	}

	events := make([]PeriodEvent, 0, len(rows))
	for _, row := range rows {
		if len(row) < 3 {
			continue
		}
		t, err1 := strconv.ParseFloat(row[1], 64)
		p, err2 := strconv.ParseFloat(row[2], 64)
		if err1 != nil || err2 != nil {
			continue
		}
		events = append(events, PeriodEvent{Body: row[0], Time: t, AvgPeriod: p})
	}
	return events, nil
}

type DistanceSample struct {
	Days    float64 `json:"days"`
	ToMars  float64 `json:"to_mars"`
	ToEarth float64 `json:"to_earth"`
}

// LoadSatellite returns the satellite distance log, empty if the run had no
// satellite.
func (s *Store) LoadSatellite(runID string) ([]DistanceSample, error) {
	rows, err := s.readRows(runID, satelliteFile)
	if err != nil {
		return nil, err
	}

	samples := make([]DistanceSample, 0, len(rows))
	for _, row := range rows {
		nums, ok := parseRow(row, 3)
		if !ok {
			continue
		}
		samples = append(samples, DistanceSample{Days: nums[0], ToMars: nums[1], ToEarth: nums[2]})
	}
	return samples, nil
}

type TrajectoryPoint struct {
	Step int     `json:"step"`
	Time float64 `json:"time"`
	Body string  `json:"body"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	VX   float64 `json:"vx"`
	VY   float64 `json:"vy"`
}

func (s *Store) LoadTrajectory(runID string) ([]TrajectoryPoint, error) {
	rows, err := s.readRows(runID, trajectoryFile)
	if err != nil {
		return nil, err
	}

	points := make([]TrajectoryPoint, 0, len(rows))
	for _, row := range rows {
		if len(row) < 7 {
			continue
		}
		step, err := strconv.Atoi(row[0])
		if err != nil {
			continue
		}
		nums, ok := parseRow(append([]string{row[1]}, row[3:]...), 5)
		if !ok {
			continue
		}
		points = append(points, TrajectoryPoint{
			Step: step,
			Time: nums[0],
			Body: row[2],
			X:    nums[1],
			Y:    nums[2],
			VX:   nums[3],
			VY:   nums[4],
		})
	}
	return points, nil
}

// Tracks groups trajectory points by body, keeping the order bodies first
// appear in.
func Tracks(points []TrajectoryPoint) (names []string, tracks map[string][]TrajectoryPoint) {
	tracks = make(map[string][]TrajectoryPoint)
	for _, p := range points {
		if _, ok := tracks[p.Body]; !ok {
			names = append(names, p.Body)
		}
		tracks[p.Body] = append(tracks[p.Body], p)
	}
	return names, tracks
}

// readRows reads a run CSV without its header. A missing file yields no rows.
func (s *Store) readRows(runID, name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		if os.IsNotExist(err) {
			if _, statErr := os.Stat(filepath.Join(s.baseDir, runID)); statErr == nil {
				return nil, nil
			}
		}
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if len(records) < 2 {
		return nil, nil
	}
	return records[1:], nil
}

func parseRow(row []string, n int) ([]float64, bool) {
	if len(row) < n {
		return nil, false
	}
	nums := make([]float64, n)
	for i := 0; i < n; i++ {
		v, err := strconv.ParseFloat(row[i], 64)
		if err != nil {
			return nil, false
		}
		nums[i] = v
	}
	return nums, true
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
