package crane

import (
	"image/color"
	"math"

	"github.com/paperboard/crane/transform"
)

var (
	ColorBeam    = color.NRGBA{255, 255, 0, 255}   // yellow
	ColorFloor1  = color.NRGBA{255, 255, 255, 255} // white
	ColorFloor2  = color.NRGBA{128, 128, 128, 255} // grey
	ColorRotator = color.NRGBA{200, 60, 30, 255}
	ColorCart    = color.NRGBA{40, 90, 200, 255}
	ColorRope    = color.NRGBA{30, 30, 30, 255}
	ColorWeight  = color.NRGBA{120, 70, 40, 255}
)

// sin60 is the height of an equilateral triangle of unit side.
var sin60 = float32(math.Sqrt(3) / 2)

// RenderContext is what every part drawer works with. Each drawer
// expects Stack to hold its parent's frame on entry; drawers that do
// not say otherwise leave the stack advanced past what they drew.
type RenderContext struct {
	Stack *transform.Stack
	Pose  Pose
	Dim   Dimensions
	Mode  DrawMode
	Out   Rasterizer
}

// emit draws p at the current frame.
func (rc *RenderContext) emit(p Primitive, c color.Color) {
	rc.Out.SetModelView(rc.Stack.Current())
	rc.Out.SetColor(c)
	rc.Out.DrawPrimitive(p, rc.Mode)
}

// beam draws a square beam of side e running length l up the local
// Y axis from the origin.
func (rc *RenderContext) beam(l, e float32) {
	s := rc.Stack
	s.Scope(func() {
		s.Apply(transform.Translate(0, l/2, 0))
		s.Apply(transform.Scale(e, l, e))
		rc.emit(Cube, ColorBeam)
	})
}

// Floor lays out a checkerboard of tiles centered under the tower with
// its top face on y = 0.
func (rc *RenderContext) Floor() {
	s, d := rc.Stack, rc.Dim
	n := d.FloorTiles
	s.Apply(transform.Translate(0, -d.FloorThickness/2, 0))
	// Mirrored on Y so the unit slab grows down from the floor top.
	s.Apply(transform.Scale(d.FloorTileSize, -d.FloorThickness, d.FloorTileSize))
	s.Apply(transform.Translate(-float32(n-1)/2, 0, -float32(n-1)/2))
	for i := 0; i < n; i++ {
		s.Save()
		for j := 0; j < n; j++ {
			c := ColorFloor1
			if (i+j)%2 != 0 {
				c = ColorFloor2
			}
			rc.emit(Cube, c)
			s.Apply(transform.Translate(1, 0, 0))
		}
		s.Restore()
		s.Apply(transform.Translate(0, 0, 1))
	}
}

// Crane draws the tower and, on top of it, everything that swings
// with the rotator.
func (rc *RenderContext) Crane() {
	s := rc.Stack
	s.Scope(rc.Tower)
	s.Apply(transform.Translate(0, rc.Dim.TowerTop(rc.Pose.SectionHeight), 0))
	s.Apply(transform.RotateY(rc.Pose.Rotation))
	rc.Rotator()
	s.Apply(transform.Translate(0, rc.Dim.RotatorHeight, 0))
	rc.TopBar()
}

// Tower draws both sections.
func (rc *RenderContext) Tower() {
	s := rc.Stack
	s.Scope(rc.FirstSection)
	s.Scope(rc.SecondSection)
}

// FirstSection stacks T1 cube frames of side L1 on the floor.
func (rc *RenderContext) FirstSection() {
	rc.section(true, rc.Dim.T1, rc.Dim.L1)
}

// SecondSection stacks T2 cube frames of side L2 starting at the
// current section height.
func (rc *RenderContext) SecondSection() {
	rc.Stack.Apply(transform.Translate(0, rc.Pose.SectionHeight, 0))
	rc.section(false, rc.Dim.T2, rc.Dim.L2)
}

func (rc *RenderContext) section(first bool, frames int, l float32) {
	s := rc.Stack
	for i := 0; i < frames; i++ {
		s.Scope(func() { rc.CubeBase(first) })
		s.Scope(func() { rc.SidesOfCube(first) })
		s.Apply(transform.Translate(0, l, 0))
	}
	rc.CubeBase(first)
}

func (rc *RenderContext) cubeSize(first bool) (l, e float32) {
	if first {
		return rc.Dim.L1, rc.Dim.E1
	}
	return rc.Dim.L2, rc.Dim.E2
}

// CubeBase draws the four horizontal edges of a square of side L
// centered on the tower axis.
func (rc *RenderContext) CubeBase(first bool) {
	s := rc.Stack
	l, e := rc.cubeSize(first)
	h := l / 2
	// Along +X: the beam's Y axis is turned onto X.
	s.With(transform.Translate(-h, 0, -h), func() {
		s.Apply(transform.RotateZ(-90))
		rc.beam(l, e)
	})
	s.With(transform.Translate(-h, 0, h), func() {
		s.Apply(transform.RotateZ(-90))
		rc.beam(l, e)
	})
	// Along +Z.
	s.With(transform.Translate(-h, 0, -h), func() {
		s.Apply(transform.RotateX(90))
		rc.beam(l, e)
	})
	s.Apply(transform.Translate(h, 0, -h))
	s.Apply(transform.RotateX(90))
	rc.beam(l, e)
}

// SidesOfCube draws the four vertical edges of a cube frame.
func (rc *RenderContext) SidesOfCube(first bool) {
	s := rc.Stack
	l, e := rc.cubeSize(first)
	h := l / 2
	s.Apply(transform.Translate(-h, 0, -h))
	rc.beam(l, e)
	s.Apply(transform.Translate(l, 0, 0))
	rc.beam(l, e)
	s.Apply(transform.Translate(0, 0, l))
	rc.beam(l, e)
	s.Apply(transform.Translate(-l, 0, 0))
	rc.beam(l, e)
}

// Rotator draws the cylinder coupling the top bar to the tower.
func (rc *RenderContext) Rotator() {
	s, d := rc.Stack, rc.Dim
	s.Scope(func() {
		s.Apply(transform.Translate(0, d.RotatorHeight/2, 0))
		s.Apply(transform.Scale(d.RotatorDiameter, d.RotatorHeight, d.RotatorDiameter))
		rc.emit(Cylinder, ColorRotator)
	})
}

// TopBar draws both arms of the jib along local Z together with the
// cart and the counterweight. The current frame is the underside of
// the bar on the tower axis.
func (rc *RenderContext) TopBar() {
	s := rc.Stack
	s.Scope(func() {
		// Lay the prism's triangle flat: bottom edge on the XZ plane,
		// centered on the axis, apex up.
		s.Apply(transform.Translate(rc.Dim.L3/2, 0, 0))
		s.Apply(transform.RotateZ(30))
		s.Scope(rc.TopBarForward)
		rc.TopBarBackward()
	})
	s.Scope(rc.CartAndRope)
	s.Scope(rc.CounterWeight)
}

// TopBarForward draws T3+1 prisms towards +Z and closes the last one.
func (rc *RenderContext) TopBarForward() {
	s := rc.Stack
	for i := 0; i <= rc.Dim.T3; i++ {
		rc.PrismBase()
		rc.SidesOfPrism()
		s.Apply(transform.Translate(0, 0, rc.Dim.L3))
	}
	rc.PrismBase()
}

// TopBarBackward draws T4 prisms towards -Z. The base at Z = 0 is
// shared with the forward arm.
func (rc *RenderContext) TopBarBackward() {
	s := rc.Stack
	for i := 0; i < rc.Dim.T4; i++ {
		s.Apply(transform.Translate(0, 0, -rc.Dim.L3))
		rc.SidesOfPrism()
		rc.PrismBase()
	}
}

// PrismBase draws an equilateral triangle of side L3 in the local XY
// plane with one vertex at the origin and one at (0, L3).
func (rc *RenderContext) PrismBase() {
	s, l, e := rc.Stack, rc.Dim.L3, rc.Dim.E3
	s.Scope(func() {
		rc.beam(l, e)
	})
	s.With(transform.RotateZ(60), func() {
		rc.beam(l, e)
	})
	s.With(transform.Translate(0, l, 0), func() {
		s.Apply(transform.RotateZ(120))
		rc.beam(l, e)
	})
}

// SidesOfPrism draws the three beams running along Z from the
// vertices of the current PrismBase to the next one.
func (rc *RenderContext) SidesOfPrism() {
	s, l, e := rc.Stack, rc.Dim.L3, rc.Dim.E3
	s.With(transform.RotateX(90), func() {
		rc.beam(l, e)
	})
	s.With(transform.Translate(0, l, 0), func() {
		s.Apply(transform.RotateX(90))
		rc.beam(l, e)
	})
	s.With(transform.Translate(-sin60*l, l/2, 0), func() {
		s.Apply(transform.RotateX(90))
		rc.beam(l, e)
	})
}

// CartAndRope draws the cart under the forward arm and the rope
// hanging from it.
func (rc *RenderContext) CartAndRope() {
	s, d, p := rc.Stack, rc.Dim, rc.Pose
	s.Apply(transform.Translate(0, 0, p.CartPosition))
	s.With(transform.Translate(0, -d.CartHeight/2, 0), func() {
		s.Apply(transform.Scale(d.CartWidth, d.CartHeight, d.CartLength))
		rc.emit(Cube, ColorCart)
	})
	s.Apply(transform.Translate(0, -d.CartHeight-p.RopeLength/2, 0))
	s.Apply(transform.Scale(d.RopeDiameter, p.RopeLength, d.RopeDiameter))
	rc.emit(Cylinder, ColorRope)
}

// CounterWeight hangs a block from four ropes under the last backward
// prism.
func (rc *RenderContext) CounterWeight() {
	s, d := rc.Stack, rc.Dim
	w, r := d.WeightSize, d.WeightRopeLength
	s.Apply(transform.Translate(0, 0, -(float32(d.T4)-0.5)*d.L3))
	for _, c := range [4][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		s.With(transform.Translate(c[0]*w/2, -r/2, c[1]*w/2), func() {
			s.Apply(transform.Scale(d.RopeDiameter, r, d.RopeDiameter))
			rc.emit(Cylinder, ColorRope)
		})
	}
	s.Apply(transform.Translate(0, -r-w/2, 0))
	s.Apply(transform.Scale(w, w, w))
	rc.emit(Bunny, ColorWeight)
}
