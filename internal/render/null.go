package render

import "github.com/san-kum/cubelife/internal/mat"

// Null records draw calls without drawing. It backs benchmarks and tests.
type Null struct {
	Width, Height int
	Mesh          Mesh
	Projection    mat.Mat4
	Draws         []mat.Mat4
	Frames        int
	KeepDraws     bool
	drawCount     int
}

func NewNull(w, h int) *Null { return &Null{Width: w, Height: h} }

func (n *Null) UploadMesh(m Mesh) error {
	if err := m.Validate(); err != nil {
		return err
	}
	n.Mesh = m
	return nil
}

func (n *Null) Viewport() (int, int)     { return n.Width, n.Height }
func (n *Null) SetProjection(p mat.Mat4) { n.Projection = p }

func (n *Null) Draw(mv mat.Mat4) {
	n.drawCount++
	if n.KeepDraws {
		n.Draws = append(n.Draws, mv)
	}
}

func (n *Null) BeginFrame() {
	n.drawCount = 0
	n.Draws = n.Draws[:0]
}

func (n *Null) EndFrame() { n.Frames++ }

// LastFrameDraws is the number of Draw calls since the last BeginFrame.
func (n *Null) LastFrameDraws() int { return n.drawCount }
