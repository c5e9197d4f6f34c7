// Package camera turns pointer drag and wheel input into an orbit view
// transform.
package camera

import "github.com/san-kum/cubelife/internal/mat"

const (
	DefaultRotationX = 30.0
	DefaultRotationY = 45.0
	DefaultZoom      = -20.0

	MinZoom = -100.0
	MaxZoom = -5.0

	// Degrees of rotation per pixel of pointer travel.
	DragSensitivity = 0.5
	// Zoom units per unit of wheel delta.
	ScrollSensitivity = 0.05

	FieldOfView = 90.0
	Near        = 1.0
	Far         = 10000.0
)

// Input is the event contract a platform input router delivers. Handlers run
// between frames on the frame loop's thread.
type Input interface {
	DragStart(x, y float64)
	DragMove(x, y float64)
	DragEnd()
	Scroll(dy float64)
}

// Camera orbits the lattice center. Only input handlers write it; the frame
// driver reads it once per frame.
type Camera struct {
	RotationX float64
	RotationY float64
	Zoom      float64

	dragging     bool
	lastX, lastY float64
}

var _ Input = (*Camera)(nil)

func New(rotX, rotY, zoom float64) *Camera {
	return &Camera{RotationX: rotX, RotationY: rotY, Zoom: clampZoom(zoom)}
}

func Default() *Camera { return New(DefaultRotationX, DefaultRotationY, DefaultZoom) }

func (c *Camera) DragStart(x, y float64) {
	c.dragging = true
	c.lastX, c.lastY = x, y
}

func (c *Camera) DragEnd() { c.dragging = false }

func (c *Camera) Dragging() bool { return c.dragging }

// DragMove converts an absolute pointer position into a delta against the last
// one seen. Moves outside a drag are ignored.
func (c *Camera) DragMove(x, y float64) {
	if !c.dragging {
		return
	}
	c.DragDelta(x-c.lastX, y-c.lastY)
	c.lastX, c.lastY = x, y
}

// DragDelta rotates about the vertical axis for horizontal travel and about the
// horizontal axis for vertical travel.
func (c *Camera) DragDelta(dx, dy float64) {
	if !c.dragging {
		return
	}
	c.RotationY += dx * DragSensitivity
	c.RotationX += dy * DragSensitivity
}

// Scroll zooms out for positive dy, saturating at the zoom range.
func (c *Camera) Scroll(dy float64) {
	c.Zoom = clampZoom(c.Zoom - dy*ScrollSensitivity)
}

func clampZoom(z float64) float64 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// View composes translate(0,0,zoom), then rotateX, then rotateY. Rotations are
// applied in the camera's local frame, which orbits the lattice center.
func (c *Camera) View() mat.Mat4 {
	return mat.Translate(0, 0, float32(c.Zoom)).
		Mul(mat.RotateX(float32(c.RotationX))).
		Mul(mat.RotateY(float32(c.RotationY)))
}

// Projection returns the fixed perspective for a viewport aspect ratio.
func Projection(aspect float64) mat.Mat4 {
	if aspect <= 0 {
		aspect = 1
	}
	return mat.Perspective(FieldOfView, float32(aspect), Near, Far)
}
