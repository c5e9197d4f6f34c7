package frame

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/san-kum/cubelife/internal/anim"
	"github.com/san-kum/cubelife/internal/camera"
	"github.com/san-kum/cubelife/internal/clock"
	"github.com/san-kum/cubelife/internal/grid"
	"github.com/san-kum/cubelife/internal/mat"
	"github.com/san-kum/cubelife/internal/render"
)

var epoch = time.UnixMilli(1_700_000_000_000)

func emptyState(t *testing.T, n int) *State {
	t.Helper()
	g, err := grid.New(n)
	if err != nil {
		t.Fatal(err)
	}
	return &State{
		Grid:     g,
		Clock:    clock.Default(epoch.UnixMilli()),
		Animator: anim.Default(),
		Camera:   camera.Default(),
	}
}

func newDriver(t *testing.T, s *State) (*Driver, *render.Null) {
	t.Helper()
	r := render.NewNull(640, 480)
	d, err := New(s, r)
	if err != nil {
		t.Fatalf("new driver: %v", err)
	}
	return d, r
}

type failingRenderer struct{ *render.Null }

func (failingRenderer) UploadMesh(render.Mesh) error { return errors.New("no gpu") }

func TestNewUploadFailure(t *testing.T) {
	_, err := New(emptyState(t, 3), failingRenderer{render.NewNull(1, 1)})
	if err == nil {
		t.Fatal("expected upload failure to be returned")
	}
}

func TestNewUploadsCube(t *testing.T) {
	_, r := newDriver(t, emptyState(t, 3))
	if r.Mesh.Triangles() != 12 {
		t.Errorf("expected cube mesh upload, got %d triangles", r.Mesh.Triangles())
	}
}

func TestFrameEmptyLattice(t *testing.T) {
	d, r := newDriver(t, emptyState(t, grid.DefaultSize))
	for i := 1; i <= 20; i++ {
		st := d.Frame(epoch.Add(time.Duration(i) * 250 * time.Millisecond))
		if st.Drawn != 0 || st.Population != 0 {
			t.Fatalf("frame %d: expected nothing drawn, got %+v", i, st)
		}
	}
	if r.Frames != 20 {
		t.Errorf("expected frame hooks for 20 frames, got %d", r.Frames)
	}
	if d.State().Grid.Generation() != 10 {
		t.Errorf("expected 10 generations after 5s, got %d", d.State().Grid.Generation())
	}
}

func TestFrameTickThenAnimate(t *testing.T) {
	s := emptyState(t, 3)
	// six live neighbors around a dead center: born on the first tick
	s.Grid.Set(0, 1, 1, true)
	s.Grid.Set(2, 1, 1, true)
	s.Grid.Set(1, 0, 1, true)
	s.Grid.Set(1, 2, 1, true)
	s.Grid.Set(1, 1, 0, true)
	s.Grid.Set(1, 1, 2, true)
	d, r := newDriver(t, s)

	st := d.Frame(epoch.Add(time.Millisecond))
	if st.Ticks != 1 {
		t.Fatalf("expected one tick, got %d", st.Ticks)
	}
	center := s.Grid.Cell(1, 1, 1)
	if !center.Alive {
		t.Fatal("expected center born")
	}
	if center.Size != anim.DefaultStep {
		t.Errorf("expected center eased once to %v, got %v", anim.DefaultStep, center.Size)
	}
	// the six face neighbors have 4 live neighbors each and die, but are
	// still shrinking so they are drawn alongside the newborn
	if st.Population != 1 || st.Drawn != 7 || r.LastFrameDraws() != 7 {
		t.Errorf("expected population 1 and 7 draws, got %+v (renderer %d)", st, r.LastFrameDraws())
	}
}

func TestFrameCatchUpCap(t *testing.T) {
	d, _ := newDriver(t, emptyState(t, 4))
	st := d.Frame(epoch.Add(time.Hour))
	if st.Ticks != clock.DefaultMaxCatchUp || !st.Saturated {
		t.Errorf("expected capped catch-up, got %+v", st)
	}
}

func TestFrameModelView(t *testing.T) {
	s := emptyState(t, 2)
	s.Grid.Set(1, 0, 1, true)
	d, r := newDriver(t, s)
	r.KeepDraws = true

	d.Frame(epoch)
	if len(r.Draws) != 1 {
		t.Fatalf("expected one draw, got %d", len(r.Draws))
	}
	want := s.Camera.View().
		Mul(mat.Translate(0.5, -0.5, 0.5)).
		Mul(mat.Uniform(CellScale))
	if !r.Draws[0].ApproxEqual(want, 1e-5) {
		t.Errorf("unexpected model-view\n got %v\nwant %v", r.Draws[0], want)
	}
	if r.Projection != camera.Projection(640.0/480.0) {
		t.Error("expected projection for the renderer viewport")
	}
}

func TestFramePaused(t *testing.T) {
	s := emptyState(t, 3)
	d, _ := newDriver(t, s)
	d.SetPaused(true, epoch)
	if st := d.Frame(epoch.Add(time.Minute)); st.Ticks != 0 {
		t.Errorf("expected no ticks while paused, got %d", st.Ticks)
	}
	resume := epoch.Add(time.Minute)
	d.SetPaused(false, resume)
	if st := d.Frame(resume.Add(time.Millisecond)); st.Ticks != 1 {
		t.Errorf("expected a single tick after resume, got %d", st.Ticks)
	}
}

func TestReseed(t *testing.T) {
	s := emptyState(t, 6)
	d, _ := newDriver(t, s)
	d.Reseed(1, 0.5, epoch)
	if s.Grid.Population() == 0 {
		t.Error("expected reseed to populate the lattice")
	}
}

func TestRun(t *testing.T) {
	d, _ := newDriver(t, emptyState(t, 3))
	frames := make(chan time.Time, 3)
	for i := 0; i < 3; i++ {
		frames <- epoch.Add(time.Duration(i) * time.Second)
	}
	close(frames)

	seen := 0
	if err := d.Run(context.Background(), frames, func(Stats) { seen++ }); err != nil {
		t.Fatalf("run: %v", err)
	}
	if seen != 3 || d.Frames() != 3 {
		t.Errorf("expected 3 frames, observed %d, driver %d", seen, d.Frames())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := d.Run(ctx, make(chan time.Time), nil); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestNewState(t *testing.T) {
	s, err := NewState(DefaultSettings(42), epoch)
	if err != nil {
		t.Fatal(err)
	}
	if s.Grid.Population() == 0 {
		t.Error("expected a seeded lattice")
	}
	if s.Clock.Next() != epoch.UnixMilli() || s.Clock.Interval() != clock.DefaultIntervalMs {
		t.Errorf("expected default clock started at epoch, next %d interval %d", s.Clock.Next(), s.Clock.Interval())
	}

	bad := DefaultSettings(1)
	bad.Size = 0
	if _, err := NewState(bad, epoch); !errors.Is(err, grid.ErrInvalidSize) {
		t.Errorf("expected ErrInvalidSize, got %v", err)
	}
}

func TestNewStateSettings(t *testing.T) {
	set := Settings{
		Size:       4,
		Density:    0,
		Seed:       1,
		IntervalMs: 125,
		MaxCatchUp: 3,
		Step:       0.25,
		RotationX:  10,
		RotationY:  20,
		Zoom:       -30,
	}
	s, err := NewState(set, epoch)
	if err != nil {
		t.Fatal(err)
	}
	if s.Grid.Size() != 4 || s.Grid.Population() != 0 {
		t.Errorf("expected empty 4^3 lattice, got side %d population %d", s.Grid.Size(), s.Grid.Population())
	}
	if s.Clock.Interval() != 125 || s.Clock.MaxCatchUp() != 3 {
		t.Errorf("unexpected clock interval %d cap %d", s.Clock.Interval(), s.Clock.MaxCatchUp())
	}
	if s.Animator.Step != 0.25 {
		t.Errorf("expected step 0.25, got %v", s.Animator.Step)
	}
	if s.Camera.RotationX != 10 || s.Camera.RotationY != 20 || s.Camera.Zoom != -30 {
		t.Errorf("unexpected camera %+v", s.Camera)
	}
}
