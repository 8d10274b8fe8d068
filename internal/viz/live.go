package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/san-kum/orbsim/internal/analysis"
	"github.com/san-kum/orbsim/internal/dynamo"
	"github.com/san-kum/orbsim/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	trailCapacity   = 400
	maxEvents       = 6
	maxStepsPerTick = 64

	// inks
	inkTrail = -1
)

type TickMsg time.Time

// Builder returns the system to show, fresh on every call.
type Builder func() (*sim.System, error)

// eventLog is shared by every copy of the Model; orbit sinks write to it.
type eventLog struct {
	lines []string
}

func (l *eventLog) OnOrbit(name string, avgPeriod float64) {
	l.lines = append(l.lines, fmt.Sprintf("Orbital Period of %s: %.4f", name, avgPeriod))
	if len(l.lines) > maxEvents {
		l.lines = l.lines[1:]
	}
}

// Model is the live view of one system.
type Model struct {
	name  string
	build Builder
	sys   *sim.System

	canvas   *Canvas
	view     Viewport
	initial  float64
	trails   [][]r2.Vec
	energies []float64
	events   *eventLog

	theme        Theme
	running      bool
	showTrails   bool
	showHelp     bool
	stepsPerTick int
	gif          *GIFRecorder
	gifPath      string
	err          error
}

// NewModel builds the first system. extent is the half-width of the view
// in metres.
func NewModel(name string, build Builder, extent float64) (Model, error) {
	m := Model{
		name:         name,
		build:        build,
		canvas:       NewCanvas(width, height),
		view:         Viewport{Extent: extent},
		theme:        Themes[0],
		running:      true,
		showTrails:   true,
		stepsPerTick: 1,
		gifPath:      "orbsim.gif",
	}
	if err := m.reset(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(time.Second/60, func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			if err := m.reset(); err != nil {
				m.err = err
				m.running = false
			}
		case "+", "=":
			m.view.Extent /= 1.25
		case "-", "_":
			m.view.Extent *= 1.25
		case ">", ".":
			m.stepsPerTick = min(maxStepsPerTick, m.stepsPerTick*2)
		case "<", ",":
			m.stepsPerTick = max(1, m.stepsPerTick/2)
		case "l":
			m.showTrails = !m.showTrails
		case "t":
			m.theme = nextTheme(m.theme)
		case "g":
			if m.gif != nil {
				if err := m.gif.Save(m.gifPath); err != nil {
					m.err = err
				}
				m.gif = nil
			} else {
				m.gif = &GIFRecorder{}
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			for i := 0; i < m.stepsPerTick; i++ {
				if err := m.step(); err != nil {
					m.err = err
					m.running = false
					break
				}
			}
		}
		m.draw()
		if m.gif != nil {
			m.gif.Capture(m.canvas)
		}
		return m, tick()
	}
	return m, nil
}

func (m *Model) reset() error {
	sys, err := m.build()
	if err != nil {
		return err
	}
	m.events = &eventLog{}
	sys.AddOrbitSink(m.events)

	m.sys = sys
	m.initial = sys.TotalEnergy()
	m.trails = make([][]r2.Vec, len(sys.Bodies()))
	m.energies = m.energies[:0]
	m.err = nil
	m.draw()
	return nil
}

func (m *Model) step() error {
	if err := m.sys.Step(); err != nil {
		return err
	}

	m.energies = append(m.energies, m.sys.TotalEnergy())
	if len(m.energies) > historyCapacity {
		m.energies = m.energies[1:]
	}

	for i, b := range m.sys.Bodies() {
		if i >= len(m.trails) {
			m.trails = append(m.trails, nil)
		}
		m.trails[i] = append(m.trails[i], b.Position)
		if len(m.trails[i]) > trailCapacity {
			m.trails[i] = m.trails[i][1:]
		}
	}
	return nil
}

// draw paints trails first and bodies on top. Body inks are index+1.
func (m *Model) draw() {
	m.canvas.Clear()

	if m.showTrails {
		for _, trail := range m.trails {
			for _, p := range trail {
				if x, y, ok := m.view.Project(m.canvas, p); ok {
					m.canvas.Set(x, y, inkTrail)
				}
			}
		}
	}

	for i, b := range m.sys.Bodies() {
		x, y, ok := m.view.Project(m.canvas, b.Position)
		if !ok {
			continue
		}
		r := 1
		if b.IsSun() {
			r = 2
		}
		m.canvas.Disc(x, y, r, i+1)
	}
}

func (m Model) renderCanvas() string {
	bodies := m.sys.Bodies()
	trail := lipgloss.NewStyle().Foreground(m.theme.Trail)
	plain := lipgloss.NewStyle().Foreground(m.theme.Primary)

	var sb strings.Builder
	for row := range m.canvas.Grid {
		for col, r := range m.canvas.Grid[row] {
			ink := m.canvas.Ink[row][col]
			switch {
			case r == blank:
				sb.WriteRune(r)
			case ink == inkTrail:
				sb.WriteString(trail.Render(string(r)))
			case ink > 0 && ink <= len(bodies) && !m.theme.Monochrome:
				sb.WriteString(lipgloss.NewStyle().Foreground(BodyColor(bodies[ink-1].Color)).Render(string(r)))
			default:
				sb.WriteString(plain.Render(string(r)))
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (m Model) View() string {
	var s strings.Builder
	title := lipgloss.NewStyle().Foreground(m.theme.Primary).Inherit(headerStyle)
	s.WriteString(title.Render(strings.ToUpper(m.name)) + "\n")

	switch {
	case m.err != nil:
		s.WriteString(StatusRecording.Render("ERROR: "+m.err.Error()) + "\n\n")
	case m.gif != nil:
		s.WriteString(StatusRecording.Render(fmt.Sprintf("REC %d frames", m.gif.Frames())) + "\n\n")
	case m.running:
		s.WriteString(StatusRunning.Render(fmt.Sprintf("RUNNING x%d", m.stepsPerTick)) + "\n\n")
	default:
		s.WriteString(StatusPaused.Render("PAUSED") + "\n\n")
	}

	if len(m.energies) > 1 {
		chart := asciigraph.Plot(analysis.Variation(m.energies),
			asciigraph.Height(5), asciigraph.Width(32), asciigraph.Caption("energy variation %"))
		s.WriteString(graphStyle.Foreground(m.theme.Primary).Render(chart) + "\n")
	}

	drift := 0.0
	if m.initial != 0 {
		drift = (m.sys.TotalEnergy() - m.initial) / m.initial
	}
	s.WriteString(labelStyle.Render("Day") + valueStyle.Render(fmt.Sprintf("%.0f", m.sys.Time()/dynamo.SecondsPerDay)) + "\n")
	s.WriteString(labelStyle.Render("Energy") + valueStyle.Render(fmt.Sprintf("%.6e J", m.sys.TotalEnergy())) + "\n")
	s.WriteString(labelStyle.Render("Drift") + valueStyle.Render(fmt.Sprintf("%+.2e", drift)) + "\n")
	s.WriteString(labelStyle.Render("View") + valueStyle.Render(fmt.Sprintf("%.3g m", m.view.Extent)) + "\n")

	s.WriteString("\nPERIODS (years)\n")
	for _, b := range m.sys.Bodies() {
		if b.IsSun() {
			continue
		}
		avg, err := b.Orbit.AveragePeriod()
		val := "-"
		if err == nil {
			val = fmt.Sprintf("%.4f (%d)", avg, len(b.Orbit.Periods))
		}
		s.WriteString("  " + labelStyle.Render(b.Name) + valueStyle.Render(val) + "\n")
	}

	if len(m.events.lines) > 0 {
		s.WriteString("\n")
		for _, line := range m.events.lines {
			s.WriteString(labelStyle.UnsetWidth().Render(line) + "\n")
		}
	}

	s.WriteString(helpStyle.Render("SP:Pause R:Reset Q:Quit +/-:Zoom </>:Speed ?:Help"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top,
		canvasStyle.Render(m.renderCanvas()), statsStyle.Render(s.String()))
	if m.showHelp {
		return `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  Space    - Pause/Resume simulation  ║
║  R        - Reset simulation         ║
║  Q        - Quit                     ║
║  + / -    - Zoom in / out            ║
║  > / <    - Faster / slower          ║
║  L        - Toggle trails            ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  ?        - Toggle this help         ║
╚══════════════════════════════════════╝
` + "\n\n" + mainView
	}
	return mainView
}

// Run starts the live view and blocks until the user quits.
func Run(name string, build Builder, extent float64) error {
	m, err := NewModel(name, build, extent)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}
