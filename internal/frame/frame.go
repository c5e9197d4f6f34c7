// Package frame drives one rendered frame of the cell lattice: scheduled
// ticks, size easing, then one draw per visible cell.
package frame

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/san-kum/cubelife/internal/anim"
	"github.com/san-kum/cubelife/internal/camera"
	"github.com/san-kum/cubelife/internal/clock"
	"github.com/san-kum/cubelife/internal/grid"
	"github.com/san-kum/cubelife/internal/mat"
	"github.com/san-kum/cubelife/internal/render"
)

// CellScale shrinks a full-size cell so neighboring cubes keep a gap.
const CellScale = 0.8

// State is everything a frame reads or writes. Grid, Clock and Animator are
// written only by the Driver; Camera only by input handlers.
type State struct {
	Grid     *grid.Grid
	Clock    *clock.Clock
	Animator anim.Animator
	Camera   *camera.Camera
}

// Settings parameterizes a new State.
type Settings struct {
	Size    int
	Density float64
	Seed    int64

	IntervalMs int64
	MaxCatchUp int
	Step       float64

	RotationX, RotationY, Zoom float64
}

// DefaultSettings is a default lattice seeded with seed.
func DefaultSettings(seed int64) Settings {
	return Settings{
		Size:       grid.DefaultSize,
		Density:    grid.DefaultDensity,
		Seed:       seed,
		IntervalMs: clock.DefaultIntervalMs,
		MaxCatchUp: clock.DefaultMaxCatchUp,
		Step:       anim.DefaultStep,
		RotationX:  camera.DefaultRotationX,
		RotationY:  camera.DefaultRotationY,
		Zoom:       camera.DefaultZoom,
	}
}

// NewState allocates a seeded lattice and starts the clock at now.
func NewState(s Settings, now time.Time) (*State, error) {
	g, err := grid.New(s.Size)
	if err != nil {
		return nil, err
	}
	g.Seed(rand.New(rand.NewSource(s.Seed)), s.Density)
	return &State{
		Grid:     g,
		Clock:    clock.New(now.UnixMilli(), s.IntervalMs, s.MaxCatchUp),
		Animator: anim.New(s.Step),
		Camera:   camera.New(s.RotationX, s.RotationY, s.Zoom),
	}, nil
}

// Stats summarizes one frame.
type Stats struct {
	Ticks      int
	Drawn      int
	Population int
	Generation uint64
	Saturated  bool
}

type Driver struct {
	state    *State
	renderer render.Renderer
	paused   bool
	frames   uint64
}

// New uploads the cube mesh. A renderer that cannot take the mesh leaves the
// viewer with nothing to draw, so the error is meant to be fatal.
func New(state *State, r render.Renderer) (*Driver, error) {
	if err := r.UploadMesh(render.Cube()); err != nil {
		return nil, fmt.Errorf("upload cube mesh: %w", err)
	}
	slog.Debug("cube mesh uploaded", "lattice", state.Grid.Size())
	return &Driver{state: state, renderer: r}, nil
}

func (d *Driver) State() *State  { return d.state }
func (d *Driver) Frames() uint64 { return d.frames }
func (d *Driver) Paused() bool   { return d.paused }

// SetPaused stops or resumes ticking. Resuming re-bases the clock at now so a
// pause is not replayed as catch-up.
func (d *Driver) SetPaused(paused bool, now time.Time) {
	if d.paused && !paused {
		d.state.Clock.Reset(now.UnixMilli())
	}
	d.paused = paused
}

// Reseed replaces the lattice contents and restarts the clock.
func (d *Driver) Reseed(seed int64, density float64, now time.Time) {
	d.state.Grid.Seed(rand.New(rand.NewSource(seed)), density)
	d.state.Clock.Reset(now.UnixMilli())
}

// Frame runs one frame at wall-clock time now.
func (d *Driver) Frame(now time.Time) Stats {
	s := d.state
	var st Stats

	if !d.paused {
		before := s.Clock.Saturated()
		st.Ticks = s.Clock.AdvanceTime(now)
		for i := 0; i < st.Ticks; i++ {
			s.Grid.Tick()
		}
		if s.Clock.Saturated() != before {
			st.Saturated = true
			slog.Debug("tick catch-up capped", "ticks", st.Ticks, "next_due", s.Clock.Next())
		}
	}

	s.Animator.Apply(s.Grid)

	w, h := d.renderer.Viewport()
	aspect := 1.0
	if h > 0 {
		aspect = float64(w) / float64(h)
	}
	d.renderer.SetProjection(camera.Projection(aspect))
	view := s.Camera.View()

	hooks, _ := d.renderer.(render.FrameHooks)
	if hooks != nil {
		hooks.BeginFrame()
	}
	half := float32(s.Grid.Size()) / 2
	s.Grid.Each(func(x, y, z int, c grid.Cell) {
		if c.Alive {
			st.Population++
		}
		if c.Size <= 0 {
			return
		}
		d.renderer.Draw(ModelView(view, x, y, z, half, c.Size))
		st.Drawn++
	})
	if hooks != nil {
		hooks.EndFrame()
	}

	st.Generation = s.Grid.Generation()
	d.frames++
	return st
}

// ModelView places the cell at (x,y,z) of a lattice centered on the origin and
// scales it by its eased size.
func ModelView(view mat.Mat4, x, y, z int, half float32, size float64) mat.Mat4 {
	pos := mat.Translate(float32(x)-half+0.5, float32(y)-half+0.5, float32(z)-half+0.5)
	return view.Mul(pos).Mul(mat.Uniform(float32(size * CellScale)))
}

// Run draws a frame for every value received on frames until ctx is done or
// frames is closed.
func (d *Driver) Run(ctx context.Context, frames <-chan time.Time, observe func(Stats)) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now, ok := <-frames:
			if !ok {
				return nil
			}
			st := d.Frame(now)
			if observe != nil {
				observe(st)
			}
		}
	}
}
