// Package gui is the raylib window viewer.
package gui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cubelife/internal/audio"
	"github.com/san-kum/cubelife/internal/camera"
	"github.com/san-kum/cubelife/internal/frame"
)

var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
)

const (
	fontPath   = "/usr/share/fonts/liberation/LiberationMono-Regular.ttf"
	maxHistory = 200
)

type Options struct {
	Width, Height int
	FPS           int
	Title         string
	Seed          int64
	Density       float64
	Sound         bool
}

type App struct {
	driver   *frame.Driver
	renderer *Renderer
	font     rl.Font
	opts     Options
	seed     int64

	history []float64
	last    frame.Stats
	audio   *audio.Processor
}

func initWindow(opts Options) {
	rl.InitWindow(int32(opts.Width), int32(opts.Height), opts.Title)
	rl.SetTargetFPS(int32(opts.FPS))
	rl.SetExitKey(rl.KeyQ)
}

func loadFont() rl.Font {
	if _, err := os.Stat(fontPath); err != nil {
		slog.Debug("font not found, using raylib default", "path", fontPath)
		return rl.GetFontDefault()
	}
	font := rl.LoadFontEx(fontPath, 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// Run opens the window and blocks until it is closed.
func Run(state *frame.State, opts Options) error {
	initWindow(opts)
	defer rl.CloseWindow()
	slog.Info("window opened", "width", opts.Width, "height", opts.Height, "lattice", state.Grid.Size())

	r := NewRenderer()
	d, err := frame.New(state, r)
	if err != nil {
		return err
	}
	app := &App{
		driver:   d,
		renderer: r,
		font:     loadFont(),
		opts:     opts,
		seed:     opts.Seed,
		history:  make([]float64, 0, maxHistory),
	}

	if opts.Sound {
		proc := audio.NewProcessor()
		if err := proc.Start(); err != nil {
			slog.Warn("audio disabled", "err", err)
		} else {
			app.audio = proc
			defer proc.Stop()
		}
	}

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Update routes input collected since the last frame.
func (a *App) Update() {
	pos := rl.GetMousePosition()
	camera.Route(a.driver.State().Camera, camera.PointerSample{
		X:        float64(pos.X),
		Y:        float64(pos.Y),
		Pressed:  rl.IsMouseButtonPressed(rl.MouseLeftButton),
		Released: rl.IsMouseButtonReleased(rl.MouseLeftButton),
		Wheel:    float64(rl.GetMouseWheelMove()),
	})

	if rl.IsKeyPressed(rl.KeySpace) {
		a.driver.SetPaused(!a.driver.Paused(), time.Now())
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.seed++
		a.driver.Reseed(a.seed, a.opts.Density, time.Now())
		a.history = a.history[:0]
		slog.Info("reseeded", "seed", a.seed)
	}
}

func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	a.last = a.driver.Frame(time.Now())
	a.record(a.last)
	a.DrawHUD()

	rl.EndDrawing()
}

func (a *App) record(st frame.Stats) {
	g := a.driver.State().Grid
	n := g.Size()
	fraction := float64(st.Population) / float64(n*n*n)
	if len(a.history) == maxHistory {
		copy(a.history, a.history[1:])
		a.history = a.history[:maxHistory-1]
	}
	a.history = append(a.history, float64(st.Population))
	if a.audio != nil {
		a.audio.Update(fraction, st.Ticks > 0)
	}
}

func (a *App) DrawHUD() {
	w, h := rl.GetScreenWidth(), rl.GetScreenHeight()
	a.drawText("cubelife", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: gen %d", a.last.Generation), 160, 34, 16, ColText)
	a.drawText(fmt.Sprintf("population %d  drawn %d", a.last.Population, a.last.Drawn), 30, 64, 14, ColText)

	a.DrawTelemetry(30, h-120)

	status, col := "RUNNING", ColSelect
	if a.driver.Paused() {
		status, col = "PAUSED", ColTextDim
	}
	a.drawText(status, w-130, 30, 16, col)

	a.drawText("[DRAG] ORBIT  [WHEEL] ZOOM  [SPACE] PAUSE  [R] RESEED  [Q] QUIT", w-620, h-40, 14, ColTextDim)
	a.drawText(fmt.Sprintf("%d FPS", rl.GetFPS()), 30, h-40, 14, ColTextDim)
	if a.audio != nil {
		a.drawText("SOUND ON", 30, h-60, 14, ColAccent)
	}
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

// DrawTelemetry plots recent population as a line strip.
func (a *App) DrawTelemetry(x, y int) {
	if len(a.history) < 2 {
		return
	}
	width, height := 400, 60

	minVal, maxVal := a.history[0], a.history[0]
	for _, v := range a.history {
		minVal = min(minVal, v)
		maxVal = max(maxVal, v)
	}
	if maxVal == minVal {
		maxVal = minVal + 1
	}

	points := make([]rl.Vector2, len(a.history))
	for i, v := range a.history {
		px := float32(x) + float32(i)/float32(maxHistory)*float32(width)
		norm := (v - minVal) / (maxVal - minVal)
		py := float32(y+height) - float32(norm)*float32(height)
		points[i] = rl.NewVector2(px, py)
	}
	rl.DrawLineStrip(points, ColAccent)
	a.drawText(fmt.Sprintf("P: %d", int(a.history[len(a.history)-1])), x+width+10, y+height-10, 14, ColText)
}
