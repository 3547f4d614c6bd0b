package carshow

import (
	"log"
	"math"
	"strings"
)

// Part names looked up after a model load. The body, four rims and the
// glass get the configurable materials; the wheels are kept for spinning.
const (
	PartBody  = "body"
	PartRimFL = "rim_fl"
	PartRimFR = "rim_fr"
	PartRimRL = "rim_rl"
	PartRimRR = "rim_rr"
	PartGlass = "glass"
	PartTrim  = "trim"
)

var wheelNames = []string{"wheel_fl", "wheel_fr", "wheel_rl", "wheel_rr"}

// CarModel is the loaded car: an ordered list of named mesh parts plus the
// wheel parts collected for per-frame rotation.
type CarModel struct {
	parts  []*Object3d
	byName map[string]*Object3d
	wheels []*Object3d
}

func NewCarModel() *CarModel {
	return &CarModel{
		byName: make(map[string]*Object3d),
	}
}

func (c *CarModel) AddPart(p *Object3d) {
	c.parts = append(c.parts, p)
	name := strings.ToLower(p.Name())
	if name != "" {
		c.byName[name] = p
	}
	for _, wn := range wheelNames {
		if name == wn {
			c.wheels = append(c.wheels, p)
		}
	}
}

func (c *CarModel) Part(name string) *Object3d {
	return c.byName[strings.ToLower(name)]
}

func (c *CarModel) Parts() []*Object3d  { return c.parts }
func (c *CarModel) Wheels() []*Object3d { return c.wheels }
func (c *CarModel) PartCount() int      { return len(c.parts) }

// ApplyMaterials assigns the three custom materials to the named parts.
// Parts the asset does not have are logged and skipped; everything else
// keeps its load-time material.
func (c *CarModel) ApplyMaterials(body, trim, glass *Material) {
	assign := map[string]*Material{
		PartBody:  body,
		PartRimFL: trim,
		PartRimFR: trim,
		PartRimRL: trim,
		PartRimRR: trim,
		PartTrim:  trim,
		PartGlass: glass,
	}

	for name, mat := range assign {
		part := c.Part(name)
		if part == nil {
			log.Printf("car model has no part %q, skipping material", name)
			continue
		}
		part.SetMaterial(mat)
	}
}

// AddToScene places every part at the car position plus the part's own
// pivot, so parts keep their arrangement and still spin about their own
// centers.
func (c *CarModel) AddToScene(s *Scene, x, y, z float64) {
	for _, p := range c.parts {
		pv := p.Pivot()
		s.AddObject(p, x+pv.X, y+pv.Y, z+pv.Z)
	}
}

// WheelAngle is the wheel rotation about the axle after the given elapsed
// time: -elapsed * pi radians, a half turn per second rolling forward.
func WheelAngle(elapsedSeconds float64) float64 {
	return -elapsedSeconds * math.Pi
}

// SpinWheels points every wheel's spin matrix at the angle for the elapsed
// time. The angle is absolute, so the rotation stays a pure function of the
// clock.
func (c *CarModel) SpinWheels(elapsedSeconds float64) {
	angle := WheelAngle(elapsedSeconds)
	for _, w := range c.wheels {
		w.SetRotMatrix(NewRotationMatrix(ROTX, angle))
	}
}
