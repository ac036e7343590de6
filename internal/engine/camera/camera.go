// Package camera provides the viewer camera.
package camera

import (
	gomath "math"

	"github.com/Faultbox/bevelbox/pkg/math"
)

// Camera is a fixed-target perspective camera. It starts at the demo
// viewpoint (0, 6, 12) looking at the origin and can orbit around the
// target with WASD-style pans.
type Camera struct {
	Eye    math.Vec3
	Target math.Vec3

	FovY float32 // vertical field of view, radians
	Near float32
	Far  float32
}

// New creates the viewer camera at the demo viewpoint.
func New() *Camera {
	return &Camera{
		Eye:    math.Vec3{X: 0, Y: 6, Z: 12},
		Target: math.Vec3{X: 0, Y: 0, Z: 0},
		FovY:   float32(gomath.Pi / 4),
		Near:   0.1,
		Far:    500.0,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *Camera) ViewMatrix() math.Mat4 {
	up := math.Vec3{X: 0, Y: 1, Z: 0}
	return math.LookAt(c.Eye, c.Target, up)
}

// ProjectionMatrix returns the perspective projection for the given
// viewport aspect ratio (width/height).
func (c *Camera) ProjectionMatrix(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// Orbit rotates the eye around the target by yaw radians (around Y).
func (c *Camera) Orbit(yaw float32) {
	offset := c.Eye.Sub(c.Target)
	rotated := math.RotateY(yaw).TransformPoint(offset)
	c.Eye = c.Target.Add(rotated)
}

// Dolly moves the eye toward (positive) or away from the target.
// The eye never crosses the target.
func (c *Camera) Dolly(amount float32) {
	offset := c.Eye.Sub(c.Target)
	dist := offset.Length()
	newDist := dist - amount
	if newDist < c.Near*2 {
		newDist = c.Near * 2
	}
	c.Eye = c.Target.Add(offset.Normalize().Scale(newDist))
}
