package crane

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Primitive names a mesh owned by the rasterizer side.
type Primitive int

const (
	Cube Primitive = iota
	Cylinder
	Bunny
)

var primitiveNames = [...]string{
	Cube:     "cube",
	Cylinder: "cylinder",
	Bunny:    "bunny",
}

func (p Primitive) String() string {
	if p >= 0 && int(p) < len(primitiveNames) {
		return primitiveNames[p]
	}
	return fmt.Sprintf("Primitive(%d)", int(p))
}

// DrawMode selects how primitives are rasterized.
type DrawMode int

const (
	Solid DrawMode = iota
	Wireframe
)

func (m DrawMode) String() string {
	if m == Wireframe {
		return "wireframe"
	}
	return "solid"
}

// Toggle returns the other draw mode.
func (m DrawMode) Toggle() DrawMode {
	if m == Wireframe {
		return Solid
	}
	return Wireframe
}

// Rasterizer receives the matrices, colors and primitives of a frame.
// SetModelView and SetColor apply to the following DrawPrimitive calls.
type Rasterizer interface {
	SetProjection(m mgl32.Mat4)
	SetModelView(m mgl32.Mat4)
	SetColor(c color.Color)
	DrawPrimitive(p Primitive, mode DrawMode)
}

// DrawCall is one primitive as it reached the rasterizer.
type DrawCall struct {
	Model     mgl32.Mat4
	Color     color.NRGBA
	Primitive Primitive
	Mode      DrawMode
}

// Recorder is a Rasterizer that keeps the draw calls in memory.
type Recorder struct {
	Projection mgl32.Mat4

	model mgl32.Mat4
	color color.NRGBA
	calls []DrawCall
}

// SetProjection stores m in r.Projection.
func (r *Recorder) SetProjection(m mgl32.Mat4) { r.Projection = m }

// SetModelView sets the model matrix of the following draw calls.
func (r *Recorder) SetModelView(m mgl32.Mat4) { r.model = m }

// SetColor sets the color of the following draw calls.
func (r *Recorder) SetColor(c color.Color) {
	r.color = color.NRGBAModel.Convert(c).(color.NRGBA)
}

// DrawPrimitive records p with the current model matrix and color.
func (r *Recorder) DrawPrimitive(p Primitive, mode DrawMode) {
	r.calls = append(r.calls, DrawCall{Model: r.model, Color: r.color, Primitive: p, Mode: mode})
}

// Calls returns the recorded draw calls in submission order.
func (r *Recorder) Calls() []DrawCall { return r.calls }

// Count returns how many draw calls used p.
func (r *Recorder) Count(p Primitive) int {
	n := 0
	for _, c := range r.calls {
		if c.Primitive == p {
			n++
		}
	}
	return n
}

// Reset forgets the recorded calls.
func (r *Recorder) Reset() { r.calls = r.calls[:0] }
