// Package mat provides the 4x4 transforms used to place cells in view space.
//
// Matrices are column-major float32, the layout graphics APIs expect, and
// compose left to right: A.Mul(B) applies B first.
package mat

import "github.com/chewxy/math32"

type Vec3 struct {
	X, Y, Z float32
}

type Vec4 struct {
	X, Y, Z, W float32
}

// Mat4 stores element (row r, column c) at index c*4+r.
type Mat4 [16]float32

func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

func (m Mat4) At(row, col int) float32 { return m[col*4+row] }

func (m *Mat4) set(row, col int, v float32) { m[col*4+row] = v }

func Translate(x, y, z float32) Mat4 {
	m := Identity()
	m.set(0, 3, x)
	m.set(1, 3, y)
	m.set(2, 3, z)
	return m
}

func Scale(x, y, z float32) Mat4 {
	m := Identity()
	m.set(0, 0, x)
	m.set(1, 1, y)
	m.set(2, 2, z)
	return m
}

func Uniform(s float32) Mat4 { return Scale(s, s, s) }

func Radians(deg float32) float32 { return deg * math32.Pi / 180 }

// RotateX rotates about the horizontal axis by deg degrees.
func RotateX(deg float32) Mat4 {
	s, c := math32.Sin(Radians(deg)), math32.Cos(Radians(deg))
	m := Identity()
	m.set(1, 1, c)
	m.set(1, 2, -s)
	m.set(2, 1, s)
	m.set(2, 2, c)
	return m
}

// RotateY rotates about the vertical axis by deg degrees.
func RotateY(deg float32) Mat4 {
	s, c := math32.Sin(Radians(deg)), math32.Cos(Radians(deg))
	m := Identity()
	m.set(0, 0, c)
	m.set(0, 2, s)
	m.set(2, 0, -s)
	m.set(2, 2, c)
	return m
}

// Perspective builds a right-handed projection looking down -Z with a
// vertical field of view of fovy degrees.
func Perspective(fovy, aspect, near, far float32) Mat4 {
	f := 1 / math32.Tan(Radians(fovy)/2)
	d := near - far
	var m Mat4
	m.set(0, 0, f/aspect)
	m.set(1, 1, f)
	m.set(2, 2, (near+far)/d)
	m.set(2, 3, 2*near*far/d)
	m.set(3, 2, -1)
	return m
}

func (m Mat4) Mul(o Mat4) Mat4 {
	var r Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += m.At(row, k) * o.At(k, col)
			}
			r.set(row, col, sum)
		}
	}
	return r
}

func (m Mat4) MulVec4(v Vec4) Vec4 {
	return Vec4{
		X: m[0]*v.X + m[4]*v.Y + m[8]*v.Z + m[12]*v.W,
		Y: m[1]*v.X + m[5]*v.Y + m[9]*v.Z + m[13]*v.W,
		Z: m[2]*v.X + m[6]*v.Y + m[10]*v.Z + m[14]*v.W,
		W: m[3]*v.X + m[7]*v.Y + m[11]*v.Z + m[15]*v.W,
	}
}

// Point transforms p as a position (w = 1) and drops w.
func (m Mat4) Point(p Vec3) Vec3 {
	v := m.MulVec4(Vec4{p.X, p.Y, p.Z, 1})
	return Vec3{v.X, v.Y, v.Z}
}

// ApproxEqual compares element-wise within eps.
func (m Mat4) ApproxEqual(o Mat4, eps float32) bool {
	for i := range m {
		if math32.Abs(m[i]-o[i]) > eps {
			return false
		}
	}
	return true
}
