package analysis

import (
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"
)

// Apsides returns the closest and farthest distances of track from centre
// and the eccentricity they imply.
func Apsides(track []r2.Vec, centre r2.Vec) (peri, apo, ecc float64) {
	if len(track) == 0 {
		return 0, 0, 0
	}

	peri = math.Inf(1)
	for _, p := range track {
		d := r2.Norm(r2.Sub(p, centre))
		peri = math.Min(peri, d)
		apo = math.Max(apo, d)
	}
	if apo+peri > 0 {
		ecc = (apo - peri) / (apo + peri)
	}
	return peri, apo, ecc
}

// Portrait holds the tracks of several bodies for an ASCII plot with a
// shared scale.
type Portrait struct {
	Tracks [][]r2.Vec
	Marks  []rune
}

func (p *Portrait) Add(track []r2.Vec, mark rune) {
	p.Tracks = append(p.Tracks, track)
	p.Marks = append(p.Marks, mark)
}

// ASCII draws every track on a width x height grid with equal scales on
// both axes, centred on the origin.
func (p *Portrait) ASCII(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	extent := 0.0
	for _, t := range p.Tracks {
		for _, pt := range t {
			extent = math.Max(extent, math.Max(math.Abs(pt.X), math.Abs(pt.Y)))
		}
	}
	if extent == 0 {
		extent = 1
	}
	extent *= 1.1

	canvas := make([][]rune, height)
	for i := range canvas {
		canvas[i] = []rune(strings.Repeat(" ", width))
	}

	// axes first so tracks draw over them
	mid := height / 2
	for col := 0; col < width; col++ {
		canvas[mid][col] = '─'
	}
	for row := 0; row < height; row++ {
		canvas[row][width/2] = '│'
	}
	canvas[mid][width/2] = '┼'

	for i, t := range p.Tracks {
		for _, pt := range t {
			col := int((pt.X/extent + 1) / 2 * float64(width-1))
			row := height - 1 - int((pt.Y/extent+1)/2*float64(height-1))
			if row >= 0 && row < height && col >= 0 && col < width {
				canvas[row][col] = p.Marks[i]
			}
		}
	}

	var sb strings.Builder
	for _, row := range canvas {
		sb.WriteString(string(row))
		sb.WriteRune('\n')
	}
	return sb.String()
}
