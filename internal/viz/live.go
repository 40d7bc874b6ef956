package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/blackhole/internal/camera"
	"github.com/san-kum/blackhole/internal/sim"
)

const (
	width           = 80
	height          = 24
	historyCapacity = 600
	// terminals report key presses only, so a press holds its direction
	// for this many ticks
	holdTicks = 8
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, false, false, true).BorderForeground(lipgloss.Color("240")).Padding(1, 2).Width(42)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea front end over one Simulation.
type Model struct {
	sim       *sim.Simulation
	dt        float64
	canvas    *Canvas
	proj      Projector
	title     string
	running   bool
	showHelp  bool
	held      map[string]int
	toggle    bool
	last      sim.FrameStats
	history   *sim.History
	lastFrame time.Time
	fps       float64
}

func NewModel(s *sim.Simulation, dt float64, title string) Model {
	h := sim.NewHistory(historyCapacity)
	s.AddObserver(h)
	return Model{
		sim:     s,
		dt:      dt,
		canvas:  NewCanvas(width, height),
		proj:    DefaultProjector(),
		title:   title,
		running: true,
		held:    make(map[string]int),
		history: h,
	}
}

func tick(dt float64) tea.Cmd {
	return tea.Tick(time.Duration(dt*float64(time.Second)), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return tick(m.dt)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "esc", "ctrl+c":
			return m, tea.Quit
		case "w", "s", "a", "d", "q", "e":
			m.held[key] = holdTicks
		case " ":
			m.toggle = true
		case "p":
			m.running = !m.running
		case "r":
			m.reset()
		case "t":
			NextTheme()
		case "?":
			m.showHelp = !m.showHelp
		}
	case tea.WindowSizeMsg:
		w := max(20, msg.Width-50)
		h := max(10, msg.Height-4)
		m.canvas = NewCanvas(w, h)
	case TickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			if elapsed := now.Sub(m.lastFrame).Seconds(); elapsed > 0 {
				m.fps = 0.9*m.fps + 0.1/elapsed
			}
		}
		m.lastFrame = now
		if m.running {
			m.step()
		}
		DrawScene(m.canvas, m.sim, m.proj)
		return m, tick(m.dt)
	}
	return m, nil
}

// input consumes one tick of held keys.
func (m *Model) input() camera.Input {
	in := camera.Input{
		Closer:  m.held["w"] > 0,
		Farther: m.held["s"] > 0,
		Left:    m.held["a"] > 0,
		Right:   m.held["d"] > 0,
		Down:    m.held["q"] > 0,
		Up:      m.held["e"] > 0,
		Toggle:  m.toggle,
	}
	for k, n := range m.held {
		if n <= 1 {
			delete(m.held, k)
		} else {
			m.held[k] = n - 1
		}
	}
	m.toggle = false
	return in
}

func (m *Model) step() {
	m.last = m.sim.Step(m.dt, m.input())
}

func (m *Model) reset() {
	m.sim.Reset()
	m.held = make(map[string]int)
	m.last = sim.FrameStats{}
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(GradientText(strings.ToUpper(m.title), CurrentTheme.Title[0], CurrentTheme.Title[1]) + "\n")

	if m.running {
		s.WriteString(StatusRunning.Render("RUNNING"))
	} else {
		s.WriteString(StatusPaused.Render("PAUSED"))
	}
	s.WriteString("\n")

	if len(m.history.Luminosity) > 1 {
		chart := asciigraph.Plot(m.history.Luminosity, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Luminosity"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	row := func(label, value string) {
		s.WriteString(labelStyle.Render(label) + valueStyle.Render(value) + "\n")
	}
	row("Time", fmt.Sprintf("%.2fs", m.sim.Elapsed))
	row("FPS", fmt.Sprintf("%.0f", m.fps))
	row("Particles", fmt.Sprintf("%d", len(m.sim.Particles)))
	row("Theme", CurrentTheme.Name)
	row("Mean r", fmt.Sprintf("%.2f", m.last.MeanRadius))
	row("Inner r", fmt.Sprintf("%.3f", m.last.MinRadius))
	row("Peak T", fmt.Sprintf("%.0f K", m.last.MaxTemperature))
	if cam := m.sim.Camera; cam != nil {
		auto := "off"
		if cam.AutoRotate {
			auto = "on"
		}
		row("Camera", fmt.Sprintf("d=%.1f az=%.2f el=%.2f", cam.Distance, cam.Azimuth, cam.Elevation))
		row("Auto-rotate", auto)
	}
	s.WriteString(labelStyle.Render("Respawns") + SparklineChart(m.history.Respawns, 28) + "\n")
	s.WriteString(Separator(38) + "\n")
	s.WriteString(helpStyle.Render("W/S:Zoom A/D:Orbit Q/E:Tilt\nSPACE:Auto-rotate P:Pause R:Reset\nT:Theme ?:Help ESC:Quit"))

	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasStyle.Render(m.canvas.Render()), statsStyle.Render(s.String()))
	if m.showHelp {
		return helpOverlay + "\n" + mainView
	}
	return mainView
}

const helpOverlay = `
╔══════════════════════════════════════╗
║          KEYBOARD SHORTCUTS          ║
╠══════════════════════════════════════╣
║  W / S    - Zoom in / out            ║
║  A / D    - Orbit left / right       ║
║  Q / E    - Tilt down / up           ║
║  Space    - Toggle auto-rotate       ║
║  P        - Pause / resume           ║
║  R        - Reset disk               ║
║  T        - Cycle themes             ║
║  ?        - Toggle this help         ║
║  Esc      - Quit                     ║
╚══════════════════════════════════════╝`

// Run starts the live view on the alternate screen.
func Run(s *sim.Simulation, dt float64, title string) error {
	p := tea.NewProgram(NewModel(s, dt, title), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
