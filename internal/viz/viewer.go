package viz

import (
	"fmt"
	"image"
	"image/color"
	"image/gif"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/cubelife/internal/camera"
	"github.com/san-kum/cubelife/internal/export"
	"github.com/san-kum/cubelife/internal/frame"
)

const (
	canvasWidth     = 60
	canvasHeight    = 22
	panelWidth      = 44
	historyCapacity = 240
	frameInterval   = time.Second / 60
)

type TickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Options configures the terminal viewer.
type Options struct {
	Seed    int64
	Density float64
	Theme   string
	// OutDir receives GIF recordings and SVG snapshots.
	OutDir string
}

// Model is the bubbletea model of the terminal viewer. Mouse drags orbit the
// camera and the wheel zooms; every tick runs one frame of the driver.
type Model struct {
	driver   *frame.Driver
	renderer *Renderer
	opts     Options
	theme    Theme
	st       styles

	last       time.Time
	fps        float64
	stats      frame.Stats
	population []float64

	recording bool
	frames    []*image.Paletted
	status    string
	showHelp  bool
}

// NewModel builds a viewer over an existing driver whose renderer is r.
func NewModel(d *frame.Driver, r *Renderer, opts Options, start time.Time) Model {
	theme := GetTheme(opts.Theme)
	if opts.OutDir == "" {
		opts.OutDir = "."
	}
	return Model{
		driver:     d,
		renderer:   r,
		opts:       opts,
		theme:      theme,
		st:         newStyles(theme),
		last:       start,
		population: make([]float64, 0, historyCapacity),
	}
}

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.key(msg)
	case tea.MouseMsg:
		m.mouse(msg)
	case tea.WindowSizeMsg:
		w, h := msg.Width-panelWidth-8, msg.Height-4
		if w < 20 {
			w = 20
		}
		if h < 8 {
			h = 8
		}
		m.renderer.Resize(w, h)
	case TickMsg:
		m.frame(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m Model) key(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		if m.recording {
			m.stopRecording()
		}
		return m, tea.Quit
	case " ":
		m.driver.SetPaused(!m.driver.Paused(), m.last)
	case "r":
		m.opts.Seed++
		m.driver.Reseed(m.opts.Seed, m.opts.Density, m.last)
		m.population = m.population[:0]
		m.status = fmt.Sprintf("reseeded with %d", m.opts.Seed)
	case "t":
		m.theme = NextTheme(m.theme.Name)
		m.st = newStyles(m.theme)
	case "g":
		if m.recording {
			m.stopRecording()
		} else {
			m.recording = true
			m.frames = make([]*image.Paletted, 0)
			m.status = "recording"
		}
	case "s":
		m.snapshot()
	case "?":
		m.showHelp = !m.showHelp
	}
	return m, nil
}

// mouse forwards terminal mouse events to the camera. Cell coordinates are
// scaled to dots so a drag covers the same angle as on the canvas raster.
func (m *Model) mouse(msg tea.MouseMsg) {
	cam := m.driver.State().Camera
	x, y := float64(msg.X*2), float64(msg.Y*4)
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		cam.Scroll(-camera.WheelNotch)
	case msg.Button == tea.MouseButtonWheelDown:
		cam.Scroll(camera.WheelNotch)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		cam.DragStart(x, y)
	case msg.Action == tea.MouseActionMotion:
		cam.DragMove(x, y)
	case msg.Action == tea.MouseActionRelease:
		cam.DragEnd()
	}
}

func (m *Model) frame(now time.Time) {
	if dt := now.Sub(m.last).Seconds(); dt > 0 {
		inst := 1 / dt
		if m.fps == 0 {
			m.fps = inst
		} else {
			m.fps = m.fps*0.9 + inst*0.1
		}
	}
	m.last = now

	m.stats = m.driver.Frame(now)
	if m.stats.Ticks > 0 || len(m.population) == 0 {
		m.population = append(m.population, float64(m.stats.Population))
		if len(m.population) > historyCapacity {
			m.population = m.population[1:]
		}
	}
	if m.recording {
		m.captureFrame()
	}
}

func (m Model) View() string {
	st := m.st
	canvasView := st.canvas.Render(m.renderer.Canvas().String())

	var s strings.Builder
	s.WriteString(st.header.Render("CUBELIFE "+spinner(m.driver.Frames())) + "\n")

	switch {
	case m.recording:
		s.WriteString(st.recorded.Render("● REC") + "\n\n")
	case m.driver.Paused():
		s.WriteString(st.paused.Render("PAUSED") + "\n\n")
	default:
		s.WriteString(st.accent.Render("RUNNING") + "\n\n")
	}

	if len(m.population) > 1 {
		chart := asciigraph.Plot(m.population, asciigraph.Height(5), asciigraph.Width(30), asciigraph.Caption("Population"))
		s.WriteString(st.graph.Render(chart) + "\n\n")
	}

	state := m.driver.State()
	n := state.Grid.Size()
	cam := state.Camera
	s.WriteString(st.row("Generation", fmt.Sprintf("%d", m.stats.Generation)))
	s.WriteString(st.row("Population", fmt.Sprintf("%d / %d", m.stats.Population, n*n*n)))
	s.WriteString(st.row("Drawn", fmt.Sprintf("%d", m.stats.Drawn)))
	s.WriteString(st.row("FPS", fmt.Sprintf("%.0f", m.fps)))
	s.WriteString(st.row("Rotation", fmt.Sprintf("%.0f° / %.0f°", cam.RotationX, cam.RotationY)))
	s.WriteString(st.row("Zoom", fmt.Sprintf("%.1f", cam.Zoom)))
	s.WriteString(st.row("Seed", fmt.Sprintf("%d", m.opts.Seed)))
	s.WriteString(st.row("Theme", m.theme.Name))
	if m.status != "" {
		s.WriteString("\n" + st.value.Render(m.status) + "\n")
	}

	s.WriteString(st.help.Render(separator(panelWidth-6) + "\nDrag:Orbit Wheel:Zoom SP:Pause\nR:Reseed T:Theme G:GIF S:SVG ?:Help Q:Quit"))

	main := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, st.panel.Render(s.String()))
	if m.showHelp {
		return helpText + "\n\n" + main
	}
	return main
}

const helpText = `
╔══════════════════════════════════════╗
║           KEYBOARD SHORTCUTS         ║
╠══════════════════════════════════════╣
║  Drag     - Orbit the camera         ║
║  Wheel    - Zoom in and out          ║
║  Space    - Pause/Resume ticking     ║
║  R        - Reseed the lattice       ║
║  T        - Cycle themes             ║
║  G        - Toggle GIF recording     ║
║  S        - Save SVG snapshot        ║
║  ?        - Toggle this help         ║
║  Q        - Quit                     ║
╚══════════════════════════════════════╝`

func (m *Model) snapshot() {
	svg := export.BrailleToSVG(m.renderer.Canvas().Grid, 4, export.Colors{
		Background: m.theme.Background,
		Foreground: string(m.theme.Cells),
	})
	path := filepath.Join(m.opts.OutDir, fmt.Sprintf("cubelife-gen%d.svg", m.stats.Generation))
	if err := os.WriteFile(path, []byte(svg), 0644); err != nil {
		slog.Error("write snapshot", "path", path, "err", err)
		m.status = "snapshot failed"
		return
	}
	m.status = "saved " + path
}

func (m *Model) stopRecording() {
	path := filepath.Join(m.opts.OutDir, "cubelife.gif")
	if err := m.saveGIF(path); err != nil {
		slog.Error("write recording", "path", path, "err", err)
		m.status = "recording failed"
	} else {
		m.status = fmt.Sprintf("saved %s (%d frames)", path, len(m.frames))
	}
	m.recording = false
	m.frames = nil
}

// captureFrame rasterizes the canvas at 8x16 pixels per terminal cell.
func (m *Model) captureFrame() {
	const charW, charH = 8, 16
	c := m.renderer.Canvas()
	img := image.NewPaletted(image.Rect(0, 0, c.Width*charW, c.Height*charH), color.Palette{color.Black, color.White})
	dotW, dotH := charW/2, charH/4
	dw, dh := c.Dots()
	for y := 0; y < dh; y++ {
		for x := 0; x < dw; x++ {
			if !c.Get(x, y) {
				continue
			}
			for py := 0; py < dotH; py++ {
				for px := 0; px < dotW; px++ {
					img.SetColorIndex(x*dotW+px, y*dotH+py, 1)
				}
			}
		}
	}
	m.frames = append(m.frames, img)
}

func (m *Model) saveGIF(path string) error {
	if len(m.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, f := range m.frames {
		anim.Image = append(anim.Image, f)
		anim.Delay = append(anim.Delay, 2)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
