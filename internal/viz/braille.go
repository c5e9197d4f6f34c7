package viz

import (
	"github.com/san-kum/cubelife/internal/mat"
	"github.com/san-kum/cubelife/internal/render"
)

// maxNDC bounds how far off screen an endpoint may land before its edge is
// dropped instead of rasterized.
const maxNDC = 4

type segment struct{ a, b mat.Vec3 }

// Renderer draws the outline of the uploaded mesh onto a braille canvas.
type Renderer struct {
	canvas     *Canvas
	outline    []segment
	projection mat.Mat4
	draws      int
}

var (
	_ render.Renderer   = (*Renderer)(nil)
	_ render.FrameHooks = (*Renderer)(nil)
)

// NewRenderer draws onto c, or onto a canvas of the viewer's default size when
// c is nil.
func NewRenderer(c *Canvas) *Renderer {
	if c == nil {
		c = NewCanvas(canvasWidth, canvasHeight)
	}
	return &Renderer{canvas: c, projection: mat.Identity()}
}

func (r *Renderer) Canvas() *Canvas { return r.canvas }

// Resize swaps in a canvas of the given cell dimensions.
func (r *Renderer) Resize(w, h int) { r.canvas = NewCanvas(w, h) }

// UploadMesh keeps the mesh outline: every triangle edge except those shared
// by two triangles of the same color, which are the diagonals splitting a
// flat face.
func (r *Renderer) UploadMesh(m render.Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	type key struct{ a, b mat.Vec3 }
	norm := func(a, b mat.Vec3) key {
		if less(b, a) {
			a, b = b, a
		}
		return key{a, b}
	}

	colors := make(map[key][]render.Color)
	order := make([]key, 0, len(m.Vertices))
	for t := 0; t < len(m.Vertices); t += 3 {
		for i := 0; i < 3; i++ {
			k := norm(m.Vertices[t+i], m.Vertices[t+(i+1)%3])
			if _, seen := colors[k]; !seen {
				order = append(order, k)
			}
			colors[k] = append(colors[k], m.Colors[t])
		}
	}

	r.outline = r.outline[:0]
	for _, k := range order {
		c := colors[k]
		if len(c) == 2 && c[0] == c[1] {
			continue
		}
		r.outline = append(r.outline, segment{k.a, k.b})
	}
	return nil
}

func less(a, b mat.Vec3) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	return a.Z < b.Z
}

// Viewport is the dot resolution of the canvas.
func (r *Renderer) Viewport() (int, int) { return r.canvas.Dots() }

func (r *Renderer) SetProjection(p mat.Mat4) { r.projection = p }

func (r *Renderer) BeginFrame() {
	r.canvas.Clear()
	r.draws = 0
}

func (r *Renderer) EndFrame() {}

// Draws is the number of instances drawn since the last BeginFrame.
func (r *Renderer) Draws() int { return r.draws }

func (r *Renderer) Draw(modelView mat.Mat4) {
	mvp := r.projection.Mul(modelView)
	w, h := r.canvas.Dots()
	for _, s := range r.outline {
		x0, y0, ok0 := project(mvp, s.a, w, h)
		x1, y1, ok1 := project(mvp, s.b, w, h)
		if ok0 && ok1 {
			r.canvas.DrawLine(x0, y0, x1, y1)
		}
	}
	r.draws++
}

// project maps a model-space point to dot coordinates. Points behind the
// camera or far outside the frustum are rejected.
func project(mvp mat.Mat4, p mat.Vec3, w, h int) (int, int, bool) {
	clip := mvp.MulVec4(mat.Vec4{X: p.X, Y: p.Y, Z: p.Z, W: 1})
	if clip.W <= 0 {
		return 0, 0, false
	}
	nx, ny := clip.X/clip.W, clip.Y/clip.W
	if nx < -maxNDC || nx > maxNDC || ny < -maxNDC || ny > maxNDC {
		return 0, 0, false
	}
	x := int((nx + 1) / 2 * float32(w))
	y := int((1 - ny) / 2 * float32(h))
	return x, y, true
}
