package carshow

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Camera is an orbit camera: it circles a fixed target at a clamped
// distance and pitch, the way a showroom turntable view works. The view
// matrix maps world space into a Y-up, Z-forward camera space.
type Camera struct {
	fov    float64
	aspect float64
	near   float64
	far    float64

	target *Vector3
	yaw    float64
	pitch  float64
	dist   float64

	minDist  float64
	maxDist  float64
	minPitch float64
	maxPitch float64
}

func NewCamera(target *Vector3, yaw, pitch, dist float64) *Camera {
	c := &Camera{
		fov:    40 * math.Pi / 180,
		aspect: 4.0 / 3.0,
		near:   0.05,
		far:    100,

		target: target.Copy(),
		yaw:    yaw,
		pitch:  pitch,
		dist:   dist,

		minDist:  1.5,
		maxDist:  30,
		minPitch: -85 * math.Pi / 180,
		maxPitch: 85 * math.Pi / 180,
	}
	c.clampOrbit()
	return c
}

// NewCameraAt derives the orbit parameters from an explicit eye position, so
// a fixed vantage point can be given the way the original scene does.
func NewCameraAt(eye, target *Vector3) *Camera {
	d := Subtract(eye, target)
	dist := d.Length()
	if dist == 0 {
		dist = 1
	}
	yaw := math.Atan2(d.X, d.Z)
	pitch := math.Asin(d.Y / dist)
	return NewCamera(target, yaw, pitch, dist)
}

func (c *Camera) SetFov(radians float64)      { c.fov = radians }
func (c *Camera) Fov() float64                { return c.fov }
func (c *Camera) Aspect() float64             { return c.aspect }
func (c *Camera) Near() float64               { return c.near }
func (c *Camera) Far() float64                { return c.far }
func (c *Camera) SetPlanes(near, far float64) { c.near, c.far = near, far }

// Resize recomputes the aspect ratio from viewport dimensions.
func (c *Camera) Resize(width, height int) {
	if height <= 0 {
		return
	}
	c.aspect = float64(width) / float64(height)
}

// Orbit rotates the camera around the target.
func (c *Camera) Orbit(dYaw, dPitch float64) {
	c.yaw += dYaw
	c.pitch += dPitch
	c.clampOrbit()
}

// Zoom moves the camera along the view ray; positive amounts zoom in.
func (c *Camera) Zoom(amount float64) {
	c.dist -= amount
	c.clampOrbit()
}

func (c *Camera) Distance() float64 { return c.dist }

func (c *Camera) clampOrbit() {
	if c.pitch < c.minPitch {
		c.pitch = c.minPitch
	}
	if c.pitch > c.maxPitch {
		c.pitch = c.maxPitch
	}
	if c.dist < c.minDist {
		c.dist = c.minDist
	}
	if c.dist > c.maxDist {
		c.dist = c.maxDist
	}
}

// Position is the eye point derived from the orbit parameters.
func (c *Camera) Position() *Vector3 {
	cp := math.Cos(c.pitch)
	return NewVector3(
		c.target.X+c.dist*cp*math.Sin(c.yaw),
		c.target.Y+c.dist*math.Sin(c.pitch),
		c.target.Z+c.dist*cp*math.Cos(c.yaw),
	)
}

// ViewMatrix builds the world-to-camera matrix. mgl64's look-at produces an
// OpenGL-style -Z-forward space; the final Z flip turns it into the
// +Z-forward space the rasterizer projects from.
func (c *Camera) ViewMatrix() *Matrix {
	eye := c.Position()
	lookAt := mgl64.LookAtV(
		mgl64.Vec3{eye.X, eye.Y, eye.Z},
		mgl64.Vec3{c.target.X, c.target.Y, c.target.Z},
		mgl64.Vec3{0, 1, 0},
	)
	return ScaleMatrix(1, 1, -1).MultiplyBy(ToMatrix(lookAt))
}
