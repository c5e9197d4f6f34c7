package camera

import (
	"math"
	"math/rand"
	"testing"

	"github.com/san-kum/cubelife/internal/mat"
)

func TestDragOnlyWhileDragging(t *testing.T) {
	c := Default()
	c.DragMove(100, 100)
	c.DragDelta(10, 10)
	if c.RotationX != DefaultRotationX || c.RotationY != DefaultRotationY {
		t.Errorf("expected no rotation outside a drag, got (%v,%v)", c.RotationX, c.RotationY)
	}

	c.DragStart(100, 100)
	c.DragMove(120, 90)
	if c.RotationY != DefaultRotationY+10 {
		t.Errorf("expected rotationY %v, got %v", DefaultRotationY+10, c.RotationY)
	}
	if c.RotationX != DefaultRotationX-5 {
		t.Errorf("expected rotationX %v, got %v", DefaultRotationX-5, c.RotationX)
	}

	c.DragEnd()
	c.DragMove(500, 500)
	if c.RotationY != DefaultRotationY+10 {
		t.Error("expected moves after drag end to be ignored")
	}
}

func TestDragMoveTracksLastPointer(t *testing.T) {
	c := New(0, 0, -20)
	c.DragStart(0, 0)
	c.DragMove(10, 0)
	c.DragMove(20, 0)
	if c.RotationY != 10 {
		t.Errorf("expected 10 degrees after 20px, got %v", c.RotationY)
	}
}

func TestScroll(t *testing.T) {
	c := Default()
	c.Scroll(100)
	if c.Zoom != DefaultZoom-5 {
		t.Errorf("expected zoom %v, got %v", DefaultZoom-5, c.Zoom)
	}
	c.Scroll(-100)
	if math.Abs(c.Zoom-DefaultZoom) > 1e-9 {
		t.Errorf("expected zoom back to %v, got %v", DefaultZoom, c.Zoom)
	}
}

func TestZoomAlwaysClamped(t *testing.T) {
	c := Default()
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 10000; i++ {
		c.Scroll((rng.Float64() - 0.5) * math.Pow(10, float64(rng.Intn(8))))
		if c.Zoom < MinZoom || c.Zoom > MaxZoom {
			t.Fatalf("step %d: zoom %v escaped [%v,%v]", i, c.Zoom, MinZoom, MaxZoom)
		}
	}
	c.Scroll(1e12)
	if c.Zoom != MinZoom {
		t.Errorf("expected saturation at %v, got %v", MinZoom, c.Zoom)
	}
	c.Scroll(-1e12)
	if c.Zoom != MaxZoom {
		t.Errorf("expected saturation at %v, got %v", MaxZoom, c.Zoom)
	}
	if New(0, 0, 3).Zoom != MaxZoom {
		t.Error("expected constructor to clamp zoom")
	}
}

func TestViewOrbitsCenter(t *testing.T) {
	c := New(0, 0, -20)
	o := c.View().Point(mat.Vec3{})
	if o != (mat.Vec3{X: 0, Y: 0, Z: -20}) {
		t.Errorf("expected center at (0,0,-20), got %+v", o)
	}

	// any rotation keeps the focal point on the viewing axis
	c = New(37, -120, -30)
	o = c.View().Point(mat.Vec3{})
	if math.Abs(float64(o.X)) > 1e-5 || math.Abs(float64(o.Y)) > 1e-5 || math.Abs(float64(o.Z)+30) > 1e-4 {
		t.Errorf("expected center at (0,0,-30), got %+v", o)
	}
}

func TestViewComposition(t *testing.T) {
	c := New(20, 70, -15)
	want := mat.Translate(0, 0, -15).Mul(mat.RotateX(20)).Mul(mat.RotateY(70))
	if !c.View().ApproxEqual(want, 1e-6) {
		t.Error("view does not match translate*rotX*rotY")
	}
	other := mat.Translate(0, 0, -15).Mul(mat.RotateY(70)).Mul(mat.RotateX(20))
	if c.View().ApproxEqual(other, 1e-3) {
		t.Error("rotation order should matter")
	}
}

func TestProjectionAspect(t *testing.T) {
	if !Projection(0).ApproxEqual(Projection(1), 0) {
		t.Error("expected non-positive aspect to fall back to 1")
	}
}
