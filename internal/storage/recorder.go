package storage

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/orbsim/internal/sim"
)

// Recorder streams one run to disk. It implements every sim sink and keeps
// the first write error, which Err and Finish report.
type Recorder struct {
	id    string
	dir   string
	every int

	files      []*os.File
	energy     *csv.Writer
	periods    *csv.Writer
	satellite  *csv.Writer
	trajectory *csv.Writer

	latest map[string]float64
	err    error

	// now is the start time of the step in progress.
	now float64
}

// Create opens a new run directory. Trajectory rows are written every
// `every` steps; zero disables them.
func (s *Store) Create(name string, every int) (*Recorder, error) {
	runID := fmt.Sprintf("%s_%d", name, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, err
	}

	r := &Recorder{
		id:     runID,
		dir:    runDir,
		every:  every,
		latest: make(map[string]float64),
	}

	var err error
	if r.energy, err = r.open(energyFile, "time", "energy"); err != nil {
		return nil, r.abort(err)
	}
	if r.periods, err = r.open(periodsFile, "body", "time", "avg_period_years"); err != nil {
		return nil, r.abort(err)
	}
	if r.satellite, err = r.open(satelliteFile, "days", "to_mars", "to_earth"); err != nil {
		return nil, r.abort(err)
	}
	if r.trajectory, err = r.open(trajectoryFile, "step", "time", "body", "x", "y", "vx", "vy"); err != nil {
		return nil, r.abort(err)
	}

	return r, nil
}

func (r *Recorder) ID() string { return r.id }

func (r *Recorder) Err() error { return r.err }

// Attach registers r on every hook s offers.
func (r *Recorder) Attach(s *sim.System) {
	s.AddEnergySink(r)
	s.AddOrbitSink(r)
	s.AddDistanceSink(r)
	s.AddObserver(r)
}

func (r *Recorder) OnEnergy(t, energy float64) {
	r.write(r.energy, formatFloat(t), formatFloat(energy))
}

func (r *Recorder) OnOrbit(name string, avgPeriod float64) {
	r.latest[name] = avgPeriod
	r.write(r.periods, name, formatFloat(r.now), formatFloat(avgPeriod))
}

func (r *Recorder) OnDistance(days, toMars, toEarth float64) {
	r.write(r.satellite, formatFloat(days), formatFloat(toMars), formatFloat(toEarth))
}

func (r *Recorder) OnStep(s *sim.System) {
	r.now = s.Time()
	if r.every <= 0 || s.Steps()%r.every != 0 {
		return
	}
	step := strconv.Itoa(s.Steps())
	t := formatFloat(s.Time())
	for _, b := range s.Bodies() {
		r.write(r.trajectory, step, t, b.Name,
			formatFloat(b.Position.X), formatFloat(b.Position.Y),
			formatFloat(b.Velocity.X), formatFloat(b.Velocity.Y))
	}
}

// Finish writes metadata.json and closes the run files. meta supplies the
// run description; the recorder fills in the ID, timestamp, result figures
// and latest orbital periods.
func (r *Recorder) Finish(meta RunMetadata, result *sim.Result) error {
	meta.ID = r.id
	meta.Timestamp = time.Now()
	meta.Periods = r.latest
	if result != nil {
		meta.Steps = result.StepsTaken
		meta.InitialEnergy = result.InitialEnergy
		meta.FinalEnergy = result.FinalEnergy
		meta.EnergyDrift = result.EnergyDrift
		meta.Metrics = result.Metrics
	}

	closeErr := r.close()

	metaFile, err := os.Create(filepath.Join(r.dir, metadataFile))
	if err != nil {
		return err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return err
	}

	return errors.Join(r.err, closeErr)
}

func (r *Recorder) open(name string, header ...string) (*csv.Writer, error) {
	f, err := os.Create(filepath.Join(r.dir, name))
	if err != nil {
		return nil, err
	}
	r.files = append(r.files, f)

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	return w, nil
}

func (r *Recorder) write(w *csv.Writer, fields ...string) {
	if r.err != nil {
		return
	}
	if err := w.Write(fields); err != nil {
		r.err = err
	}
}

func (r *Recorder) close() error {
	var errs []error
	for _, w := range []*csv.Writer{r.energy, r.periods, r.satellite, r.trajectory} {
		if w == nil {
			continue
		}
		w.Flush()
		errs = append(errs, w.Error())
	}
	for _, f := range r.files {
		errs = append(errs, f.Close())
	}
	r.files = nil
	return errors.Join(errs...)
}

func (r *Recorder) abort(err error) error {
	r.close()
	os.RemoveAll(r.dir)
	return err
}
