package transform

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

// near reports whether a and b differ by less than eps in every
// component. Unlike ApproxEqualThreshold it stays absolute when a
// component is zero.
func near(a, b []float32) bool {
	for i := range a {
		if math.Abs(float64(a[i]-b[i])) >= eps {
			return false
		}
	}
	return true
}

func near3(a, b mgl32.Vec3) bool   { return near(a[:], b[:]) }
func near4(a, b mgl32.Vec4) bool   { return near(a[:], b[:]) }
func nearMat(a, b mgl32.Mat4) bool { return near(a[:], b[:]) }

func TestStackBalanced(t *testing.T) {
	s := NewStack()
	s.Load(LookAt(mgl32.Vec3{3, 4, 5}, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0}))
	s.Apply(Translate(1, 2, 3))
	before := s.Current()

	s.Save()
	s.Apply(RotateX(33))
	s.Apply(Scale(2, -1, 0.5))
	s.Save()
	s.Apply(RotateZ(-71))
	s.Apply(Translate(-4, 0, 9))
	s.Restore()
	s.Apply(RotateY(12))
	s.Restore()

	if have := s.Current(); have != before {
		t.Fatalf("Stack.Current after balanced save/restore\nhave %v\nwant %v", have, before)
	}
	if d := s.Depth(); d != 0 {
		t.Fatalf("Stack.Depth\nhave %d\nwant 0", d)
	}
}

func TestStackRandomBalanced(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	ops := []func(float32) mgl32.Mat4{
		RotateX, RotateY, RotateZ,
		func(v float32) mgl32.Mat4 { return Translate(v, -v/2, v/3) },
		func(v float32) mgl32.Mat4 { return Scale(1+v/400, 1, 1-v/800) },
	}
	s := NewStack()

	// walk applies random ops and nested scopes, checking that every
	// Restore brings back exactly the matrix its Save copied.
	var walk func(level int)
	walk = func(level int) {
		for n := rnd.Intn(6); n > 0; n-- {
			if level < 8 && rnd.Intn(3) == 0 {
				before := s.Current()
				s.Save()
				walk(level + 1)
				s.Restore()
				if have := s.Current(); have != before {
					t.Fatalf("Stack.Current after Restore at level %d\nhave %v\nwant %v", level, have, before)
				}
				continue
			}
			s.Apply(ops[rnd.Intn(len(ops))](rnd.Float32()*360 - 180))
		}
	}

	for i := 0; i < 200; i++ {
		s.Reset()
		s.Apply(Translate(rnd.Float32(), rnd.Float32(), rnd.Float32()))
		before := s.Current()
		s.Save()
		walk(1)
		s.Restore()
		if have := s.Current(); have != before {
			t.Fatalf("sequence %d: Stack.Current\nhave %v\nwant %v", i, have, before)
		}
		if d := s.Depth(); d != 0 {
			t.Fatalf("sequence %d: Stack.Depth\nhave %d\nwant 0", i, d)
		}
	}
}

func TestStackSaveIsCopy(t *testing.T) {
	s := NewStack()
	s.Apply(Translate(1, 0, 0))
	s.Save()
	if d := s.Depth(); d != 1 {
		t.Fatalf("Stack.Depth after Save\nhave %d\nwant 1", d)
	}
	if have, want := s.Current(), Translate(1, 0, 0); have != want {
		t.Fatalf("Stack.Current after Save\nhave %v\nwant %v", have, want)
	}
	s.Apply(Translate(0, 5, 0))
	s.Restore()
	if have, want := s.Current(), Translate(1, 0, 0); have != want {
		t.Fatalf("Stack.Current after Restore\nhave %v\nwant %v", have, want)
	}
}

func TestStackApplyIsLocal(t *testing.T) {
	s := NewStack()
	s.Apply(RotateY(90))
	s.Apply(Translate(0, 0, 1))
	// +Z in a frame turned 90 degrees about Y is world +X.
	p := s.Current().Mul4x1(mgl32.Vec4{0, 0, 0, 1})
	if want := (mgl32.Vec4{1, 0, 0, 1}); !near4(p, want) {
		t.Fatalf("origin after RotateY(90) * Translate(0,0,1)\nhave %v\nwant %v", p, want)
	}
}

func TestStackUnderflow(t *testing.T) {
	s := NewStack()
	s.Save()
	s.Restore()
	defer func() {
		x := recover()
		if x == nil {
			t.Fatal("Stack.Restore on empty stack: expected panic")
		}
		err, ok := x.(error)
		if !ok || !errors.Is(err, ErrUnderflow) {
			t.Fatalf("Stack.Restore panic value\nhave %v\nwant %v", x, ErrUnderflow)
		}
	}()
	s.Restore()
}

func TestStackReset(t *testing.T) {
	s := NewStack()
	s.Apply(Scale(3, 3, 3))
	s.Save()
	s.Save()
	s.Apply(RotateX(10))
	s.Reset()
	if d := s.Depth(); d != 0 {
		t.Fatalf("Stack.Depth after Reset\nhave %d\nwant 0", d)
	}
	if have, want := s.Current(), mgl32.Ident4(); have != want {
		t.Fatalf("Stack.Current after Reset\nhave %v\nwant %v", have, want)
	}
}

func TestStackWith(t *testing.T) {
	s := NewStack()
	s.Apply(Translate(0, 1, 0))
	before := s.Current()
	var inner mgl32.Mat4
	s.With(RotateZ(45), func() {
		s.Scope(func() {
			s.Apply(Scale(2, 2, 2))
		})
		inner = s.Current()
	})
	if want := before.Mul4(RotateZ(45)); inner != want {
		t.Fatalf("Stack.With inner frame\nhave %v\nwant %v", inner, want)
	}
	if have := s.Current(); have != before {
		t.Fatalf("Stack.Current after With\nhave %v\nwant %v", have, before)
	}
}

func TestRotatePeriodic(t *testing.T) {
	m := Translate(1, -2, 3).Mul4(Scale(2, 3, 4))
	for _, r := range []func(float32) mgl32.Mat4{RotateX, RotateY, RotateZ} {
		have := r(360).Mul4(m)
		if !nearMat(have, m) {
			t.Fatalf("rotate(360) * m\nhave %v\nwant %v", have, m)
		}
	}
}

func TestRotateRightHanded(t *testing.T) {
	cases := []struct {
		rot  mgl32.Mat4
		in   mgl32.Vec4
		want mgl32.Vec4
	}{
		{RotateX(90), mgl32.Vec4{0, 1, 0, 1}, mgl32.Vec4{0, 0, 1, 1}},
		{RotateY(90), mgl32.Vec4{0, 0, 1, 1}, mgl32.Vec4{1, 0, 0, 1}},
		{RotateZ(90), mgl32.Vec4{1, 0, 0, 1}, mgl32.Vec4{0, 1, 0, 1}},
		{RotateZ(-90), mgl32.Vec4{0, 1, 0, 1}, mgl32.Vec4{1, 0, 0, 1}},
	}
	for i, c := range cases {
		if have := c.rot.Mul4x1(c.in); !near4(have, c.want) {
			t.Fatalf("case %d\nhave %v\nwant %v", i, have, c.want)
		}
	}
}

func TestScaleInverse(t *testing.T) {
	for _, v := range []mgl32.Vec3{{1, 1, 1}, {2, 0.5, 7}, {-3, 4, -0.25}, {1e-2, 10, 3}} {
		have := Scale(v[0], v[1], v[2]).Mul4(Scale(1/v[0], 1/v[1], 1/v[2]))
		if !nearMat(have, mgl32.Ident4()) {
			t.Fatalf("Scale(%v) * Scale(1/%v)\nhave %v\nwant identity", v, v, have)
		}
	}
}

func TestOrthographic(t *testing.T) {
	p := Orthographic(10, 2)
	cases := []struct{ in, want mgl32.Vec4 }{
		{mgl32.Vec4{20, 10, -30, 1}, mgl32.Vec4{1, 1, 1, 1}},
		{mgl32.Vec4{-20, -10, 30, 1}, mgl32.Vec4{-1, -1, -1, 1}},
		{mgl32.Vec4{0, 0, 0, 1}, mgl32.Vec4{0, 0, 0, 1}},
		{mgl32.Vec4{10, -5, 0, 1}, mgl32.Vec4{0.5, -0.5, 0, 1}},
	}
	for _, c := range cases {
		if have := p.Mul4x1(c.in); !near4(have, c.want) {
			t.Fatalf("Orthographic(10, 2) * %v\nhave %v\nwant %v", c.in, have, c.want)
		}
	}
}

func TestCameraViews(t *testing.T) {
	target := mgl32.Vec3{0, 5, 0}
	c := Camera{Distance: 8, Target: target}
	cases := []struct {
		view View
		in   mgl32.Vec3
		want mgl32.Vec3
	}{
		// Target ends up straight ahead of the viewer.
		{Front, target, mgl32.Vec3{0, 0, -8}},
		{Top, target, mgl32.Vec3{0, 0, -8}},
		{Left, target, mgl32.Vec3{0, 0, -8}},
		{Axonometric, target, mgl32.Vec3{0, 0, -8}},
		// World +X is to the right from the front, +Z from the left.
		{Front, target.Add(mgl32.Vec3{1, 0, 0}), mgl32.Vec3{1, 0, -8}},
		{Left, target.Add(mgl32.Vec3{0, 0, 1}), mgl32.Vec3{1, 0, -8}},
		// From above, -Z is up on screen.
		{Top, target.Add(mgl32.Vec3{0, 0, -1}), mgl32.Vec3{0, 1, -8}},
	}
	for _, x := range cases {
		have := mgl32.TransformCoordinate(x.in, c.ViewMatrix(x.view))
		if !near3(have, x.want) {
			t.Fatalf("%v view of %v\nhave %v\nwant %v", x.view, x.in, have, x.want)
		}
	}
}

func TestCameraAxonometricFollowsAngles(t *testing.T) {
	c := Camera{Distance: 4}
	if have, want := c.ViewMatrix(Axonometric), c.ViewMatrix(Front); !nearMat(have, want) {
		t.Fatalf("axonometric view with zero angles\nhave %v\nwant %v", have, want)
	}
	c.Theta = -90
	if have, want := c.ViewMatrix(Axonometric), c.ViewMatrix(Left); !nearMat(have, want) {
		t.Fatalf("axonometric view turned -90\nhave %v\nwant %v", have, want)
	}
	c.Theta, c.Gamma = 30, 20
	a := c.ViewMatrix(Axonometric)
	c.Distance = 9
	if b := c.ViewMatrix(Axonometric); a == b {
		t.Fatal("axonometric view did not change with the camera distance")
	}
}

func TestViewString(t *testing.T) {
	if s := Axonometric.String(); s != "axonometric" {
		t.Fatalf("Axonometric.String\nhave %q\nwant %q", s, "axonometric")
	}
	if s := View(9).String(); s != "View(9)" {
		t.Fatalf("View(9).String\nhave %q\nwant %q", s, "View(9)")
	}
}
