// Package crane draws an animated tower crane. Input events update a
// State; every frame a Scene walks the crane's parts with a matrix
// stack and hands each primitive, with its model matrix and color, to
// a Rasterizer.
package crane

import (
	"errors"
	"fmt"

	"github.com/paperboard/crane/transform"
)

// ErrUnbalanced is the panic value, possibly wrapped, when a frame
// leaves saved matrices on the stack.
var ErrUnbalanced = errors.New("crane: matrix stack not balanced after frame")

// Stats describes one rendered frame.
type Stats struct {
	DrawCalls int
}

// Scene is the per-frame composer. The zero value is not usable; call
// NewScene.
type Scene struct {
	stack *transform.Stack
	parts []func(*RenderContext) // drawn in order, each in its own scope
}

// NewScene returns a composer drawing the floor and then the crane.
func NewScene() *Scene {
	return &Scene{
		stack: transform.NewStack(),
		parts: []func(*RenderContext){(*RenderContext).Floor, (*RenderContext).Crane},
	}
}

// Render draws one frame of st into out. The whole scene is rebuilt
// from scratch on every call.
func (sc *Scene) Render(st *State, out Rasterizer) Stats {
	cnt := &countingRasterizer{Rasterizer: out}
	s := sc.stack
	s.Reset()

	cnt.SetProjection(st.Projection())
	s.Load(st.Camera.ViewMatrix(st.View))

	rc := &RenderContext{
		Stack: s,
		Pose:  st.Pose,
		Dim:   st.Dimensions(),
		Mode:  st.Mode,
		Out:   cnt,
	}
	for _, draw := range sc.parts {
		s.Scope(func() { draw(rc) })
	}

	if d := s.Depth(); d != 0 {
		panic(fmt.Errorf("%w: %d matrices left", ErrUnbalanced, d))
	}
	return Stats{DrawCalls: cnt.n}
}

type countingRasterizer struct {
	Rasterizer
	n int
}

func (c *countingRasterizer) DrawPrimitive(p Primitive, mode DrawMode) {
	c.n++
	c.Rasterizer.DrawPrimitive(p, mode)
}
