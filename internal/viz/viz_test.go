package viz

import (
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/body"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/sim"
)

const au = 1.496e11

func sunEarth() (*sim.System, error) {
	sun := body.New(body.SunName, 1.989e30, r2.Vec{}, r2.Vec{})
	v := math.Sqrt(dynamo.G * sun.Mass / au)
	earth := body.New("Earth", 5.972e24, r2.Vec{X: au}, r2.Vec{Y: v})
	earth.Color = body.Color{R: 0, G: 0.4, B: 1}
	return sim.New([]*body.Body{sun, earth}, dynamo.SecondsPerDay)
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Set(0, 0, 1)
	c.Set(1, 3, 2)

	if got := c.Grid[0][0]; got != rune(blank|0x1|0x80) {
		t.Errorf("cell = %U", got)
	}
	if c.Ink[0][0] != 2 {
		t.Errorf("ink = %d, want last writer", c.Ink[0][0])
	}
	if c.Dots() != 2 {
		t.Errorf("dots = %d", c.Dots())
	}

	c.Set(-1, 0, 1)
	c.Set(8, 0, 1)
	c.Set(0, 8, 1)
	if c.Dots() != 2 {
		t.Error("out of range set should be ignored")
	}

	c.Clear()
	if c.Dots() != 0 || c.Ink[0][0] != 0 {
		t.Error("clear left dots behind")
	}
}

func TestCanvasLineAndDisc(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(0, 0, 9, 0, 1)
	if c.Dots() != 10 {
		t.Errorf("horizontal line dots = %d", c.Dots())
	}

	c.Clear()
	c.Disc(10, 10, 1, 1)
	if c.Dots() != 5 {
		t.Errorf("disc r=1 dots = %d, want 5", c.Dots())
	}
	if !strings.ContainsRune(c.String(), blank) {
		t.Error("string should contain blank cells")
	}
}

func TestViewportProject(t *testing.T) {
	c := NewCanvas(20, 10)
	v := Viewport{Extent: 10}

	x, y, ok := v.Project(c, r2.Vec{})
	if !ok || x != 20 || y != 20 {
		t.Errorf("origin -> (%d, %d, %v)", x, y, ok)
	}

	x, y, ok = v.Project(c, r2.Vec{Y: 10})
	if !ok || x != 20 || y != 0 {
		t.Errorf("top -> (%d, %d, %v)", x, y, ok)
	}

	x, _, _ = v.Project(c, r2.Vec{X: 10})
	if x != 40 {
		t.Errorf("square pixels: x = %d, want 40", x)
	}

	if _, _, ok := v.Project(c, r2.Vec{X: 100}); ok {
		t.Error("far point should be off canvas")
	}

	v.Centre = r2.Vec{X: 5}
	if x, _, _ := v.Project(c, r2.Vec{X: 5}); x != 20 {
		t.Errorf("centred x = %d", x)
	}
}

func TestGIFRecorder(t *testing.T) {
	c := NewCanvas(4, 2)
	c.Disc(3, 3, 1, 1)

	var g GIFRecorder
	g.Capture(c)
	g.Capture(c)
	if g.Frames() != 2 {
		t.Fatalf("frames = %d", g.Frames())
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := g.Save(path); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(path)
	if err != nil || info.Size() == 0 {
		t.Fatalf("gif not written: %v", err)
	}
	if g.Frames() != 0 {
		t.Error("save should clear frames")
	}
}

func TestBodyColor(t *testing.T) {
	if got := BodyColor(body.Color{R: 1, G: 0.5, B: 0}); got != "#ff7f00" {
		t.Errorf("colour = %s", got)
	}
	if got := BodyColor(body.Color{R: 2, G: -1}); got != "#ff0000" {
		t.Errorf("clamped colour = %s", got)
	}
}

func TestThemes(t *testing.T) {
	if GetTheme("retro").Name != "retro" {
		t.Error("retro theme missing")
	}
	if GetTheme("nope").Name != Themes[0].Name {
		t.Error("unknown theme should fall back")
	}
	if nextTheme(Themes[len(Themes)-1]).Name != Themes[0].Name {
		t.Error("themes should cycle")
	}
	if len(ThemeNames()) != len(Themes) {
		t.Error("theme names")
	}
}

func TestModelTick(t *testing.T) {
	m, err := NewModel("test", sunEarth, 1.25*au)
	if err != nil {
		t.Fatal(err)
	}

	next, cmd := m.Update(TickMsg{})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	m = next.(Model)
	if m.sys.Steps() != 1 {
		t.Errorf("steps = %d", m.sys.Steps())
	}
	if m.canvas.Dots() == 0 {
		t.Error("nothing drawn")
	}

	view := m.View()
	for _, want := range []string{"TEST", "RUNNING", "Earth", "Energy"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelKeys(t *testing.T) {
	m, err := NewModel("test", sunEarth, au)
	if err != nil {
		t.Fatal(err)
	}

	next, _ := m.Update(key(" "))
	m = next.(Model)
	if m.running {
		t.Error("space should pause")
	}
	next, _ = m.Update(TickMsg{})
	m = next.(Model)
	if m.sys.Steps() != 0 {
		t.Error("paused model stepped")
	}

	next, _ = m.Update(key(">"))
	m = next.(Model)
	if m.stepsPerTick != 2 {
		t.Errorf("steps per tick = %d", m.stepsPerTick)
	}
	next, _ = m.Update(key("+"))
	m = next.(Model)
	if m.view.Extent >= au {
		t.Error("zoom in should shrink the extent")
	}
	next, _ = m.Update(key("t"))
	m = next.(Model)
	if m.theme.Name != Themes[1].Name {
		t.Errorf("theme = %s", m.theme.Name)
	}
	next, _ = m.Update(key("?"))
	m = next.(Model)
	if !strings.Contains(m.View(), "KEYBOARD SHORTCUTS") {
		t.Error("help overlay missing")
	}

	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q did not return quit")
	}
}

func TestModelResetAndOrbitLog(t *testing.T) {
	m, err := NewModel("test", sunEarth, au)
	if err != nil {
		t.Fatal(err)
	}
	m.stepsPerTick = 64
	for i := 0; i < 7; i++ {
		next, _ := m.Update(TickMsg{})
		m = next.(Model)
	}
	if len(m.events.lines) == 0 {
		t.Fatal("no orbit logged after 448 days")
	}
	if !strings.Contains(m.View(), "Orbital Period of Earth") {
		t.Error("event log not shown")
	}

	next, _ := m.Update(key("r"))
	m = next.(Model)
	if m.sys.Steps() != 0 || len(m.energies) != 0 || len(m.events.lines) != 0 {
		t.Error("reset kept old state")
	}
}

func TestModelBuildError(t *testing.T) {
	_, err := NewModel("broken", func() (*sim.System, error) {
		return nil, errors.New("boom")
	}, au)
	if err == nil {
		t.Fatal("expected builder error")
	}
}
