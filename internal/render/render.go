// Package render defines the renderer contract the frame driver draws through
// and the unit cube mesh every live cell is drawn with.
package render

import (
	"errors"

	"github.com/san-kum/cubelife/internal/mat"
)

// ErrEmptyMesh indicates an upload without any triangles.
var ErrEmptyMesh = errors.New("render: mesh has no triangles")

// Renderer draws instances of one uploaded mesh. Draw receives a model-view
// transform; the projection is supplied separately through SetProjection.
type Renderer interface {
	UploadMesh(m Mesh) error
	Viewport() (width, height int)
	SetProjection(p mat.Mat4)
	Draw(modelView mat.Mat4)
}

// FrameHooks is implemented by renderers that need to bracket a frame's draws.
type FrameHooks interface {
	BeginFrame()
	EndFrame()
}

// Color is an RGBA color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

var (
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Yellow  = Color{1, 1, 0, 1}
	Magenta = Color{1, 0, 1, 1}
	Cyan    = Color{0, 1, 1, 1}
)

// Mesh is a flat triangle list with one color per vertex.
type Mesh struct {
	Vertices []mat.Vec3
	Colors   []Color
}

func (m Mesh) Triangles() int { return len(m.Vertices) / 3 }

func (m Mesh) Validate() error {
	if len(m.Vertices) < 3 || len(m.Vertices)%3 != 0 || len(m.Colors) != len(m.Vertices) {
		return ErrEmptyMesh
	}
	return nil
}

// Face names a cube face in mesh order.
type Face int

const (
	Front Face = iota
	Right
	Back
	Left
	Top
	Bottom
)

// FaceColors holds the flat color of each face, indexed by Face.
var FaceColors = [6]Color{Red, Green, Blue, Yellow, Magenta, Cyan}

// Corners of the unit cube centered on the origin.
var Corners = [8]mat.Vec3{
	{X: -0.5, Y: -0.5, Z: 0.5},  // front bottom left
	{X: 0.5, Y: -0.5, Z: 0.5},   // front bottom right
	{X: 0.5, Y: 0.5, Z: 0.5},    // front top right
	{X: -0.5, Y: 0.5, Z: 0.5},   // front top left
	{X: -0.5, Y: -0.5, Z: -0.5}, // back bottom left
	{X: 0.5, Y: -0.5, Z: -0.5},  // back bottom right
	{X: 0.5, Y: 0.5, Z: -0.5},   // back top right
	{X: -0.5, Y: 0.5, Z: -0.5},  // back top left
}

// Quads lists each face's corners counter-clockwise seen from outside.
var Quads = [6][4]int{
	Front:  {0, 1, 2, 3},
	Right:  {1, 5, 6, 2},
	Back:   {5, 4, 7, 6},
	Left:   {4, 0, 3, 7},
	Top:    {3, 2, 6, 7},
	Bottom: {4, 5, 1, 0},
}

// Edges lists the twelve cube edges as corner index pairs.
var Edges = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Cube builds the 36-vertex unit cube, two triangles per face.
func Cube() Mesh {
	m := Mesh{
		Vertices: make([]mat.Vec3, 0, 36),
		Colors:   make([]Color, 0, 36),
	}
	for face, q := range Quads {
		col := FaceColors[face]
		for _, i := range [6]int{q[0], q[1], q[2], q[0], q[2], q[3]} {
			m.Vertices = append(m.Vertices, Corners[i])
			m.Colors = append(m.Colors, col)
		}
	}
	return m
}
