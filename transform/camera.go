package transform

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// View selects one of the preset cameras.
type View int

const (
	Front View = iota
	Top
	Left
	Axonometric
)

var viewNames = [...]string{
	Front:       "front",
	Top:         "top",
	Left:        "left",
	Axonometric: "axonometric",
}

func (v View) String() string {
	if v >= 0 && int(v) < len(viewNames) {
		return viewNames[v]
	}
	return fmt.Sprintf("View(%d)", int(v))
}

// Orthographic maps the box
// [-distance*aspect, distance*aspect] x [-distance, distance] x [-3*distance, 3*distance]
// (in eye coordinates) to the NDC cube.
//
// Object Space -> Eye/World Space -> Clip Space -> NDC Space -> Viewport/Window Space
//
// The view matrix produced by Camera takes world coordinates to eye
// coordinates, where the viewer sits at the origin looking down -Z with
// +Y up. Orthographic then takes eye coordinates to clip coordinates;
// since w stays 1 these are already NDC.
//
// https://www.songho.ca/opengl/gl_projectionmatrix.html#ortho
// https://learnopengl.com/Getting-started/Coordinate-Systems
func Orthographic(distance, aspect float32) mgl32.Mat4 {
	return mgl32.Ortho(-distance*aspect, distance*aspect, -distance, distance, -3*distance, 3*distance)
}

// LookAt places a camera at eye looking at target.
func LookAt(eye, target, up mgl32.Vec3) mgl32.Mat4 {
	return mgl32.LookAtV(eye, target, up)
}

// Camera holds the parameters the preset views are computed from.
// Theta turns the axonometric camera around the vertical axis and
// Gamma tilts it above the horizon, both in degrees.
type Camera struct {
	Distance float32
	Theta    float32
	Gamma    float32
	Target   mgl32.Vec3
}

// ViewMatrix returns the look-at matrix of v for the current camera
// parameters. It is meant to be called every frame.
func (c Camera) ViewMatrix(v View) mgl32.Mat4 {
	d := c.Distance
	up := mgl32.Vec3{0, 1, 0}
	var eye mgl32.Vec3
	switch v {
	case Front:
		eye = mgl32.Vec3{0, 0, d}
	case Top:
		eye = mgl32.Vec3{0, d, 0}
		up = mgl32.Vec3{0, 0, -1}
	case Left:
		eye = mgl32.Vec3{-d, 0, 0}
	default:
		theta := float64(mgl32.DegToRad(c.Theta))
		gamma := float64(mgl32.DegToRad(c.Gamma))
		eye = mgl32.Vec3{
			d * float32(math.Cos(gamma)*math.Sin(theta)),
			d * float32(math.Sin(gamma)),
			d * float32(math.Cos(gamma)*math.Cos(theta)),
		}
	}
	return LookAt(c.Target.Add(eye), c.Target, up)
}
