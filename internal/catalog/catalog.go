// Package catalog turns tabular body descriptions into bodies ready for a
// simulation.
//
// A body row is
//
//	name, mass, x, (ignored), radius, r, g, b
//
// and places the body on the x axis. Bodies whose truncated x is not zero
// start on a circular orbit around the reference mass; the others start at
// rest. A satellite row is
//
//	name, mass, x, angle (degrees), speed, radius, r, g, b
package catalog

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/gravity"
)

//go:embed data/*.csv
var builtin embed.FS

const (
	bodyFields      = 8
	satelliteFields = 9
)

// Record is one body row. Velocity overrides the circular-orbit velocity
// when set.
type Record struct {
	Name     string     `yaml:"name" json:"name"`
	Mass     float64    `yaml:"mass" json:"mass"`
	X        float64    `yaml:"x" json:"x"`
	Radius   float64    `yaml:"radius" json:"radius"`
	Color    body.Color `yaml:"color" json:"color"`
	Velocity *r2.Vec    `yaml:"velocity,omitempty" json:"velocity,omitempty"`
}

type SatelliteRecord struct {
	Name   string     `yaml:"name" json:"name"`
	Mass   float64    `yaml:"mass" json:"mass"`
	X      float64    `yaml:"x" json:"x"`
	Angle  float64    `yaml:"angle" json:"angle"`
	Speed  float64    `yaml:"speed" json:"speed"`
	Radius float64    `yaml:"radius" json:"radius"`
	Color  body.Color `yaml:"color" json:"color"`
}

// DefaultSatellite is launched from just outside Earth's orbit.
func DefaultSatellite(speed, angle float64) SatelliteRecord {
	return SatelliteRecord{
		Name:   "Satellite",
		Mass:   1000,
		X:      1.501e11,
		Angle:  angle,
		Speed:  speed,
		Radius: 5000,
		Color:  body.Color{R: 0.0, G: 0.6, B: 0.6},
	}
}

// Body builds the body described by r. Its velocity is circular around a
// mass refMass at the origin unless r carries one.
func (r Record) Body(g, refMass float64) *body.Body {
	var v r2.Vec
	switch {
	case r.Velocity != nil:
		v = *r.Velocity
	case int(r.X) != 0:
		v = r2.Vec{Y: gravity.CircularSpeed(g, refMass, r.X)}
	}

	b := body.New(r.Name, r.Mass, r2.Vec{X: r.X}, v)
	b.Radius = r.Radius
	b.Color = r.Color
	return b
}

func (s SatelliteRecord) Body() *body.Body {
	angle := s.Angle * math.Pi / 180
	v := r2.Vec{X: s.Speed * math.Cos(angle), Y: s.Speed * math.Sin(angle)}

	b := body.New(s.Name, s.Mass, r2.Vec{X: s.X}, v)
	b.Radius = s.Radius
	b.Color = s.Color
	return b
}

// Bodies builds and validates the bodies for records, in order.
func Bodies(records []Record, g, refMass float64) ([]*body.Body, error) {
	bodies := make([]*body.Body, len(records))
	for i, r := range records {
		bodies[i] = r.Body(g, refMass)
	}
	if err := body.Validate(bodies); err != nil {
		return nil, err
	}
	return bodies, nil
}

// Validate reports the first record that could not start a simulation.
func Validate(records []Record) error {
	_, err := Bodies(records, dynamo.G, dynamo.SolarMass)
	return err
}

// SizeLimit is the largest rounded x among records, never below zero.
// Renderers use it to scale their view.
func SizeLimit(records []Record) float64 {
	limit := 0.0
	for _, r := range records {
		if r.X > limit {
			limit = math.Round(r.X)
		}
	}
	return limit
}

func ReadBodies(r io.Reader) ([]Record, error) {
	rows, err := readRows(r, bodyFields)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, len(rows))
	for i, row := range rows {
		nums, err := parseFloats(row, 1, 2, 4, 5, 6, 7)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", i+1, row[0], err)
		}
		records = append(records, Record{
			Name:   row[0],
			Mass:   nums[0],
			X:      nums[1],
			Radius: nums[2],
			Color:  body.Color{R: nums[3], G: nums[4], B: nums[5]},
		})
	}
	return records, nil
}

// ReadSatellite returns the last satellite row in r.
func ReadSatellite(r io.Reader) (SatelliteRecord, error) {
	rows, err := readRows(r, satelliteFields)
	if err != nil {
		return SatelliteRecord{}, err
	}
	if len(rows) == 0 {
		return SatelliteRecord{}, errors.New("catalog: no satellite row")
	}

	row := rows[len(rows)-1]
	nums, err := parseFloats(row, 1, 2, 3, 4, 5, 6, 7, 8)
	if err != nil {
		return SatelliteRecord{}, fmt.Errorf("satellite %s: %w", row[0], err)
	}
	return SatelliteRecord{
		Name:   row[0],
		Mass:   nums[0],
		X:      nums[1],
		Angle:  nums[2],
		Speed:  nums[3],
		Radius: nums[4],
		Color:  body.Color{R: nums[5], G: nums[6], B: nums[7]},
	}, nil
}

func WriteSatellite(w io.Writer, s SatelliteRecord) error {
	cw := csv.NewWriter(w)
	err := cw.Write([]string{
		s.Name,
		formatFloat(s.Mass),
		formatFloat(s.X),
		formatFloat(s.Angle),
		formatFloat(s.Speed),
		formatFloat(s.Radius),
		formatFloat(s.Color.R),
		formatFloat(s.Color.G),
		formatFloat(s.Color.B),
	})
	if err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

// Records resolves source to body records. A built-in catalog name wins
// over a file of the same name.
func Records(source string) ([]Record, error) {
	if data, err := builtin.ReadFile("data/" + source + ".csv"); err == nil {
		return ReadBodies(bytes.NewReader(data))
	}

	f, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadBodies(f)
}

// Load reads the catalog at source and builds its bodies.
func Load(source string, g, refMass float64) ([]*body.Body, error) {
	records, err := Records(source)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", source, err)
	}
	return Bodies(records, g, refMass)
}

func LoadSatellite(path string) (*body.Body, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := ReadSatellite(f)
	if err != nil {
		return nil, err
	}
	return s.Body(), nil
}

// Builtin lists the embedded catalog names.
func Builtin() []string {
	entries, err := builtin.ReadDir("data")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, strings.TrimSuffix(e.Name(), ".csv"))
	}
	sort.Strings(names)
	return names
}

func readRows(r io.Reader, fields int) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = fields
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}
	return rows, nil
}

func parseFloats(row []string, cols ...int) ([]float64, error) {
	nums := make([]float64, len(cols))
	for i, c := range cols {
		v, err := strconv.ParseFloat(strings.TrimSpace(row[c]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %v", dynamo.ErrParameterBounds, c+1, err)
		}
		nums[i] = v
	}
	return nums, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
