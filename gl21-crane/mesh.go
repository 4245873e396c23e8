package main

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	bytesFloat32       = 4 // a float32 is 4 bytes
	bytesUint16        = 2 // a uint16 is 2 bytes
	vertexPositionSize = 3 // x,y,z
	vertexNormalSize   = 3 // nx,ny,nz
	vertexSize         = vertexPositionSize + vertexNormalSize
)

// geometry is an indexed triangle mesh with interleaved position and
// normal per vertex. Every primitive fits in a unit box centered on
// the origin.
type geometry struct {
	vertices []float32
	indices  []uint16
}

func (g *geometry) vertexCount() int { return len(g.vertices) / vertexSize }

func (g *geometry) addVertex(p, n mgl32.Vec3) uint16 {
	i := uint16(g.vertexCount())
	g.vertices = append(g.vertices, p[0], p[1], p[2], n[0], n[1], n[2])
	return i
}

func (g *geometry) addTriangle(a, b, c uint16) {
	g.indices = append(g.indices, a, b, c)
}

func (g *geometry) addQuad(a, b, c, d uint16) {
	g.addTriangle(a, b, c)
	g.addTriangle(a, c, d)
}

// edges returns a line list with the three sides of every triangle.
func (g *geometry) edges() []uint16 {
	lines := make([]uint16, 0, len(g.indices)*2)
	for i := 0; i+2 < len(g.indices); i += 3 {
		a, b, c := g.indices[i], g.indices[i+1], g.indices[i+2]
		lines = append(lines, a, b, b, c, c, a)
	}
	return lines
}

// unit cube
//
//    v6----- v5
//   /|      /|
//  v1------v0|
//  | |     | |
//  | v7----|-v4
//  |/      |/
//  v2------v3
//
// Each face gets its own four vertices so the normals stay flat.
func makeCube() *geometry {
	g := &geometry{}
	faces := []struct{ n, u, v mgl32.Vec3 }{
		{mgl32.Vec3{0, 0, 1}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 0, -1}, mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{-1, 0, 0}, mgl32.Vec3{0, 0, 1}, mgl32.Vec3{0, 1, 0}},
		{mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, -1}},
		{mgl32.Vec3{0, -1, 0}, mgl32.Vec3{1, 0, 0}, mgl32.Vec3{0, 0, 1}},
	}
	for _, f := range faces {
		c := f.n.Mul(0.5)
		u, v := f.u.Mul(0.5), f.v.Mul(0.5)
		a := g.addVertex(c.Sub(u).Sub(v), f.n)
		b := g.addVertex(c.Add(u).Sub(v), f.n)
		d := g.addVertex(c.Add(u).Add(v), f.n)
		e := g.addVertex(c.Sub(u).Add(v), f.n)
		g.addQuad(a, b, d, e)
	}
	return g
}

// makeCylinder builds a capped cylinder of diameter 1 and height 1
// around the Y axis.
func makeCylinder(slices int) *geometry {
	g := &geometry{}
	up, down := mgl32.Vec3{0, 1, 0}, mgl32.Vec3{0, -1, 0}
	top := g.addVertex(mgl32.Vec3{0, 0.5, 0}, up)
	bottom := g.addVertex(mgl32.Vec3{0, -0.5, 0}, down)
	for i := 0; i < slices; i++ {
		a0, a1 := ringAngle(i, slices), ringAngle(i+1, slices)
		n0 := mgl32.Vec3{float32(math.Cos(a0)), 0, -float32(math.Sin(a0))}
		n1 := mgl32.Vec3{float32(math.Cos(a1)), 0, -float32(math.Sin(a1))}
		p0, p1 := n0.Mul(0.5), n1.Mul(0.5)

		s0 := g.addVertex(p0.Add(down.Mul(0.5)), n0)
		s1 := g.addVertex(p1.Add(down.Mul(0.5)), n1)
		s2 := g.addVertex(p1.Add(up.Mul(0.5)), n1)
		s3 := g.addVertex(p0.Add(up.Mul(0.5)), n0)
		g.addQuad(s0, s1, s2, s3)

		t0 := g.addVertex(p0.Add(up.Mul(0.5)), up)
		t1 := g.addVertex(p1.Add(up.Mul(0.5)), up)
		g.addTriangle(top, t0, t1)

		b0 := g.addVertex(p0.Add(down.Mul(0.5)), down)
		b1 := g.addVertex(p1.Add(down.Mul(0.5)), down)
		g.addTriangle(bottom, b1, b0)
	}
	return g
}

// makeSphere builds a UV sphere of diameter 1.
func makeSphere(stacks, slices int) *geometry {
	g := &geometry{}
	for i := 0; i <= stacks; i++ {
		phi := math.Pi * float64(i) / float64(stacks)
		for j := 0; j <= slices; j++ {
			theta := ringAngle(j, slices)
			n := mgl32.Vec3{
				float32(math.Sin(phi) * math.Cos(theta)),
				float32(math.Cos(phi)),
				-float32(math.Sin(phi) * math.Sin(theta)),
			}
			g.addVertex(n.Mul(0.5), n)
		}
	}
	row := uint16(slices + 1)
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			a := uint16(i)*row + uint16(j)
			g.addQuad(a, a+row, a+row+1, a+1)
		}
	}
	return g
}

func ringAngle(i, n int) float64 {
	return 2 * math.Pi * float64(i) / float64(n)
}
