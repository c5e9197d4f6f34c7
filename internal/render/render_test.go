package render

import (
	"errors"
	"testing"

	"github.com/san-kum/cubelife/internal/mat"
)

func TestCube(t *testing.T) {
	m := Cube()
	if len(m.Vertices) != 36 || len(m.Colors) != 36 {
		t.Fatalf("expected 36 vertices and colors, got %d/%d", len(m.Vertices), len(m.Colors))
	}
	if m.Triangles() != 12 {
		t.Errorf("expected 12 triangles, got %d", m.Triangles())
	}
	if err := m.Validate(); err != nil {
		t.Errorf("cube should validate: %v", err)
	}
	for face := 0; face < 6; face++ {
		for v := 0; v < 6; v++ {
			if got := m.Colors[face*6+v]; got != FaceColors[face] {
				t.Errorf("face %d vertex %d: expected flat color %+v, got %+v", face, v, FaceColors[face], got)
			}
		}
	}
}

// Every face triangle must wind counter-clockwise seen from outside, so its
// normal points away from the cube center.
func TestCubeWindingOutward(t *testing.T) {
	m := Cube()
	for i := 0; i < len(m.Vertices); i += 3 {
		a, b, c := m.Vertices[i], m.Vertices[i+1], m.Vertices[i+2]
		e1 := mat.Vec3{X: b.X - a.X, Y: b.Y - a.Y, Z: b.Z - a.Z}
		e2 := mat.Vec3{X: c.X - a.X, Y: c.Y - a.Y, Z: c.Z - a.Z}
		n := mat.Vec3{
			X: e1.Y*e2.Z - e1.Z*e2.Y,
			Y: e1.Z*e2.X - e1.X*e2.Z,
			Z: e1.X*e2.Y - e1.Y*e2.X,
		}
		center := mat.Vec3{X: (a.X + b.X + c.X) / 3, Y: (a.Y + b.Y + c.Y) / 3, Z: (a.Z + b.Z + c.Z) / 3}
		if n.X*center.X+n.Y*center.Y+n.Z*center.Z <= 0 {
			t.Errorf("triangle %d winds inward", i/3)
		}
	}
}

func TestMeshValidate(t *testing.T) {
	tests := []struct {
		name string
		mesh Mesh
	}{
		{"empty", Mesh{}},
		{"partial triangle", Mesh{Vertices: make([]mat.Vec3, 4), Colors: make([]Color, 4)}},
		{"missing colors", Mesh{Vertices: make([]mat.Vec3, 3)}},
	}
	for _, tt := range tests {
		if err := tt.mesh.Validate(); !errors.Is(err, ErrEmptyMesh) {
			t.Errorf("%s: expected ErrEmptyMesh, got %v", tt.name, err)
		}
	}
}

func TestNull(t *testing.T) {
	n := NewNull(800, 600)
	if err := n.UploadMesh(Mesh{}); err == nil {
		t.Error("expected empty mesh upload to fail")
	}
	if err := n.UploadMesh(Cube()); err != nil {
		t.Fatalf("upload: %v", err)
	}
	n.KeepDraws = true
	n.BeginFrame()
	n.Draw(mat.Identity())
	n.Draw(mat.Identity())
	n.EndFrame()
	if n.LastFrameDraws() != 2 || len(n.Draws) != 2 || n.Frames != 1 {
		t.Errorf("unexpected counters: draws=%d kept=%d frames=%d", n.LastFrameDraws(), len(n.Draws), n.Frames)
	}
}
