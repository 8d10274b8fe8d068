package export

import (
	"strings"
	"testing"

	"github.com/san-kum/orbsim/internal/storage"
	"github.com/san-kum/orbsim/internal/viz"
)

func TestCanvasToSVG(t *testing.T) {
	if CanvasToSVG(nil, 1, nil) != "" {
		t.Error("nil canvas should give empty output")
	}

	c := viz.NewCanvas(4, 2)
	c.Set(0, 0, 1)
	c.Set(3, 5, 2)

	svg := CanvasToSVG(c, 2, func(ink int) string {
		if ink == 1 {
			return "#ff0000"
		}
		return "#0000ff"
	})
	if got := strings.Count(svg, "<circle"); got != 2 {
		t.Errorf("circles = %d, want 2", got)
	}
	if !strings.Contains(svg, `fill="#ff0000"`) || !strings.Contains(svg, `fill="#0000ff"`) {
		t.Error("inks not coloured")
	}
	if !strings.Contains(svg, `width="16" height="16"`) {
		t.Error("unexpected dimensions")
	}
}

func TestTrajectoryToSVG(t *testing.T) {
	points := []storage.TrajectoryPoint{
		{Step: 0, Body: "Sun"},
		{Step: 0, Body: "Earth", X: 1.5e11},
		{Step: 1, Body: "Sun"},
		{Step: 1, Body: "Earth", Y: 1.5e11},
		{Step: 2, Body: "Sun"},
		{Step: 2, Body: "Earth", X: -1.5e11},
	}

	var sb strings.Builder
	if err := TrajectoryToSVG(&sb, points, 200); err != nil {
		t.Fatal(err)
	}
	svg := sb.String()

	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("paths = %d, want 2", got)
	}
	if !strings.Contains(svg, "<title>Earth</title>") {
		t.Error("earth marker missing")
	}
	// Sun sits in the middle of a 200px image.
	if !strings.Contains(svg, `cx="100.0" cy="100.0"`) {
		t.Error("sun not centred")
	}
}

func TestTrajectoryToSVGEmpty(t *testing.T) {
	var sb strings.Builder
	if err := TrajectoryToSVG(&sb, nil, 100); err == nil {
		t.Error("expected error for empty trajectory")
	}
}
