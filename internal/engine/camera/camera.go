// Package camera provides the orbit camera used to view the wall.
package camera

import (
	gomath "math"

	"github.com/charmbracelet/harmonica"

	"github.com/quarterfold/foldwall/pkg/math"
)

// Spring parameters for zoom smoothing.
const (
	springFPS       = 60
	springFrequency = 6.0
	springDamping   = 1.0 // critically damped, no overshoot
)

// OrbitCamera orbits around a center point. Zoom is smoothed with a
// critically damped spring so wheel steps glide instead of snapping.
type OrbitCamera struct {
	// Center point to orbit around
	Center math.Vec3

	// Spherical coordinates
	Distance  float32 // smoothed distance from center
	RotationX float32 // pitch (vertical angle, radians)
	RotationY float32 // yaw (horizontal angle, radians)

	// Constraints
	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	// Sensitivity
	DragSensitivity float32
	ZoomSensitivity float32

	targetDistance float32
	zoomSpring     harmonica.Spring
	zoomVelocity   float64
}

// New creates an orbit camera with default settings.
func New() *OrbitCamera {
	return &OrbitCamera{
		Distance:        12,
		targetDistance:  12,
		RotationX:       0.15,
		RotationY:       0,
		MinDistance:     3,
		MaxDistance:     60,
		MinPitch:        -1.2,
		MaxPitch:        1.2,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		zoomSpring:      harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping),
	}
}

// Position returns the camera position in world space.
func (c *OrbitCamera) Position() math.Vec3 {
	x := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Sin(float64(c.RotationY)))
	y := c.Distance * float32(gomath.Sin(float64(c.RotationX)))
	z := c.Distance * float32(gomath.Cos(float64(c.RotationX))*gomath.Cos(float64(c.RotationY)))

	return math.Vec3{
		X: c.Center.X + x,
		Y: c.Center.Y + y,
		Z: c.Center.Z + z,
	}
}

// ViewMatrix returns the view matrix for this camera.
func (c *OrbitCamera) ViewMatrix() math.Mat4 {
	up := math.Vec3{Y: 1}
	return math.LookAt(c.Position(), c.Center, up)
}

// HandleDrag updates rotation based on mouse drag delta.
func (c *OrbitCamera) HandleDrag(deltaX, deltaY float32) {
	c.RotationY -= deltaX * c.DragSensitivity
	c.RotationX += deltaY * c.DragSensitivity
	c.RotationX = math.Clamp(c.RotationX, c.MinPitch, c.MaxPitch)
}

// HandleZoom moves the zoom target based on scroll wheel delta. The actual
// distance catches up in Update.
func (c *OrbitCamera) HandleZoom(delta float32) {
	c.targetDistance -= delta * c.targetDistance * c.ZoomSensitivity
	c.targetDistance = math.Clamp(c.targetDistance, c.MinDistance, c.MaxDistance)
}

// Update advances the zoom spring one frame.
func (c *OrbitCamera) Update() {
	pos, vel := c.zoomSpring.Update(float64(c.Distance), c.zoomVelocity, float64(c.targetDistance))
	c.Distance = float32(pos)
	c.zoomVelocity = vel
}

// FitToBounds frames the camera on the given bounding box, leaving some
// margin so the wall never touches the viewport edges.
func (c *OrbitCamera) FitToBounds(min, max [3]float32) {
	c.Center = math.Vec3{
		X: (min[0] + max[0]) / 2,
		Y: (min[1] + max[1]) / 2,
		Z: (min[2] + max[2]) / 2,
	}

	size := max[0] - min[0]
	if h := max[1] - min[1]; h > size {
		size = h
	}

	d := math.Clamp(size*1.6, c.MinDistance, c.MaxDistance)
	c.Distance = d
	c.targetDistance = d
	c.zoomVelocity = 0
	c.RotationX = 0.15
	c.RotationY = 0
}
