package crane

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/paperboard/crane/transform"
)

// Pose holds the crane parameters the user drives.
type Pose struct {
	Rotation      float32 // degrees about the tower axis, unbounded
	SectionHeight float32 // base of the second tower section
	RopeLength    float32
	CartPosition  float32 // distance from the tower axis along the forward arm
}

// Key is a discrete input event, named after the key that produced it.
type Key string

const (
	KeyToggleMode  Key = "0"
	KeyFront       Key = "1"
	KeyTop         Key = "2"
	KeyLeft        Key = "3"
	KeyAxonometric Key = "4"
	KeyRaise       Key = "w"
	KeyLower       Key = "s"
	KeyExpand      Key = "i"
	KeyContract    Key = "k"
	KeyRotateCCW   Key = "j"
	KeyRotateCW    Key = "l"
	KeyCartOut     Key = "a"
	KeyCartIn      Key = "d"
	KeyReset       Key = "r"
	KeyAnimation   Key = " "
	KeyArrowLeft   Key = "ArrowLeft"
	KeyArrowRight  Key = "ArrowRight"
	KeyArrowUp     Key = "ArrowUp"
	KeyArrowDown   Key = "ArrowDown"
)

const (
	rotationStep      = 2   // degrees per key press
	orbitStep         = 2   // degrees per key press
	zoomStep          = 0.5 // world units per wheel notch
	maxGamma          = 89
	MinCameraDistance = 1
)

// State is everything input events change between frames. It is
// read by Scene.Render and must only be touched from the thread that
// renders.
type State struct {
	Pose   Pose
	View   transform.View
	Mode   DrawMode
	Camera transform.Camera

	Animation bool    // advance Time on Tick
	Time      float32 // simulated time
	Speed     float32 // added to Time on every Tick

	dim        Dimensions
	limits     Limits
	aspect     float32
	projection mgl32.Mat4
}

// NewState returns the startup state for a crane of dimensions dim,
// assuming a square viewport until Resize is called.
func NewState(dim Dimensions) *State {
	s := &State{
		View:      transform.Axonometric,
		Mode:      Solid,
		Animation: true,
		Speed:     1.0 / 60,
		dim:       dim,
		limits:    dim.Limits(),
		aspect:    1,
	}
	s.Pose = s.DefaultPose()
	s.Camera = s.DefaultCamera()
	s.updateProjection()
	return s
}

// DefaultPose returns the pose the crane starts in.
func (s *State) DefaultPose() Pose {
	l := s.limits
	h := (l.MinSectionHeight + l.MaxSectionHeight) / 2
	return Pose{
		SectionHeight: h,
		RopeLength:    (l.MinRopeLength + l.MaxRopeLength(h)) / 2,
		CartPosition:  (l.MinCartPosition + l.MaxCartPosition) / 2,
	}
}

// DefaultCamera returns a camera framing the crane at full height.
func (s *State) DefaultCamera() transform.Camera {
	half := s.dim.BarBase(s.limits.MaxSectionHeight) / 2
	return transform.Camera{
		Distance: half * 1.15,
		Theta:    30,
		Gamma:    20,
		Target:   mgl32.Vec3{0, half, 0},
	}
}

// Dimensions returns the proportions the state was created with.
func (s *State) Dimensions() Dimensions { return s.dim }

// Limits returns the bounds the pose is clamped to.
func (s *State) Limits() Limits { return s.limits }

// Aspect returns the viewport width over height.
func (s *State) Aspect() float32 { return s.aspect }

// Projection returns the orthographic projection for the current
// camera distance and viewport aspect.
func (s *State) Projection() mgl32.Mat4 { return s.projection }

func (s *State) updateProjection() {
	s.projection = transform.Orthographic(s.Camera.Distance, s.aspect)
}

// Resize records a new viewport size. Degenerate sizes (a minimized
// window) keep the previous aspect.
func (s *State) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.aspect = float32(width) / float32(height)
	s.updateProjection()
}

// Rotate turns the top of the crane by deg degrees.
func (s *State) Rotate(deg float32) { s.Pose.Rotation += deg }

// MoveSection raises (dh > 0) or lowers the second tower section. The
// rope is clamped again since its upper bound depends on the height.
func (s *State) MoveSection(dh float32) {
	l := s.limits
	s.Pose.SectionHeight = mgl32.Clamp(s.Pose.SectionHeight+dh, l.MinSectionHeight, l.MaxSectionHeight)
	s.MoveRope(0)
}

// MoveRope lengthens (dr > 0) or shortens the rope.
func (s *State) MoveRope(dr float32) {
	l := s.limits
	s.Pose.RopeLength = mgl32.Clamp(s.Pose.RopeLength+dr, l.MinRopeLength, l.MaxRopeLength(s.Pose.SectionHeight))
}

// MoveCart slides the cart away from (dc > 0) or towards the tower.
func (s *State) MoveCart(dc float32) {
	l := s.limits
	s.Pose.CartPosition = mgl32.Clamp(s.Pose.CartPosition+dc, l.MinCartPosition, l.MaxCartPosition)
}

// Zoom changes the camera distance, never below MinCameraDistance.
func (s *State) Zoom(dd float32) {
	s.Camera.Distance += dd
	if s.Camera.Distance < MinCameraDistance {
		s.Camera.Distance = MinCameraDistance
	}
	s.updateProjection()
}

// Orbit turns and tilts the axonometric camera.
func (s *State) Orbit(dTheta, dGamma float32) {
	s.Camera.Theta += dTheta
	s.Camera.Gamma = mgl32.Clamp(s.Camera.Gamma+dGamma, -maxGamma, maxGamma)
}

// ResetCamera puts the camera back where it started.
func (s *State) ResetCamera() {
	s.Camera = s.DefaultCamera()
	s.updateProjection()
}

// HandleKey applies the action bound to k and reports whether k is
// bound at all.
func (s *State) HandleKey(k Key) bool {
	d := s.dim
	switch k {
	case KeyToggleMode:
		s.Mode = s.Mode.Toggle()
	case KeyFront:
		s.View = transform.Front
	case KeyTop:
		s.View = transform.Top
	case KeyLeft:
		s.View = transform.Left
	case KeyAxonometric:
		s.View = transform.Axonometric
	case KeyRaise:
		s.MoveRope(-d.L3 / 10)
	case KeyLower:
		s.MoveRope(d.L3 / 10)
	case KeyExpand:
		s.MoveSection(d.L1 / 10)
	case KeyContract:
		s.MoveSection(-d.L1 / 10)
	case KeyRotateCCW:
		s.Rotate(rotationStep)
	case KeyRotateCW:
		s.Rotate(-rotationStep)
	case KeyCartOut:
		s.MoveCart(d.L3 / 10)
	case KeyCartIn:
		s.MoveCart(-d.L3 / 10)
	case KeyArrowLeft:
		s.Orbit(orbitStep, 0)
	case KeyArrowRight:
		s.Orbit(-orbitStep, 0)
	case KeyArrowUp:
		s.Orbit(0, orbitStep)
	case KeyArrowDown:
		s.Orbit(0, -orbitStep)
	case KeyReset:
		s.ResetCamera()
	case KeyAnimation:
		s.Animation = !s.Animation
	default:
		return false
	}
	return true
}

// HandleWheel zooms in for positive dy (wheel pushed away from the
// user) and out for negative dy.
func (s *State) HandleWheel(dy float64) {
	s.Zoom(-float32(dy) * zoomStep)
}

// Tick advances the simulated clock when the animation is running.
// Frames are drawn either way.
func (s *State) Tick() {
	if s.Animation {
		s.Time += s.Speed
	}
}
