package gui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/cubelife/internal/mat"
	"github.com/san-kum/cubelife/internal/render"
)

type triangle struct {
	a, b, c mat.Vec3
	color   rl.Color
}

// Renderer draws the uploaded mesh with raylib's immediate-mode triangles. The
// driver's model-view already holds the orbit, so the raylib camera stays at
// the origin looking down -Z.
type Renderer struct {
	tris   []triangle
	camera rl.Camera3D
	draws  int
}

var (
	_ render.Renderer   = (*Renderer)(nil)
	_ render.FrameHooks = (*Renderer)(nil)
)

func NewRenderer() *Renderer {
	return &Renderer{
		camera: rl.NewCamera3D(
			rl.NewVector3(0, 0, 0),
			rl.NewVector3(0, 0, -1),
			rl.NewVector3(0, 1, 0),
			90.0,
			rl.CameraPerspective,
		),
	}
}

func toColor(c render.Color) rl.Color {
	return rl.NewColor(uint8(c.R*255), uint8(c.G*255), uint8(c.B*255), uint8(c.A*255))
}

func (r *Renderer) UploadMesh(m render.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	r.tris = r.tris[:0]
	for i := 0; i+2 < len(m.Vertices); i += 3 {
		r.tris = append(r.tris, triangle{
			a:     m.Vertices[i],
			b:     m.Vertices[i+1],
			c:     m.Vertices[i+2],
			color: toColor(m.Colors[i]),
		})
	}
	return nil
}

func (r *Renderer) Viewport() (int, int) {
	return rl.GetScreenWidth(), rl.GetScreenHeight()
}

// SetProjection is a no-op: raylib builds its projection from the camera's
// field of view and the window aspect.
func (r *Renderer) SetProjection(mat.Mat4) {}

func (r *Renderer) BeginFrame() {
	r.draws = 0
	rl.BeginMode3D(r.camera)
}

func (r *Renderer) EndFrame() { rl.EndMode3D() }

func (r *Renderer) Draw(mv mat.Mat4) {
	for _, t := range r.tris {
		a, b, c := mv.Point(t.a), mv.Point(t.b), mv.Point(t.c)
		rl.DrawTriangle3D(
			rl.NewVector3(a.X, a.Y, a.Z),
			rl.NewVector3(b.X, b.Y, b.Z),
			rl.NewVector3(c.X, c.Y, c.Z),
			t.color,
		)
	}
	r.draws++
}

// Draws is the number of cells drawn in the current frame.
func (r *Renderer) Draws() int { return r.draws }
