package carshow

import "math"

type Vector3 struct {
	X float64
	Y float64
	Z float64
	W float64
}

func NewVector3(x, y, z float64) *Vector3 {
	return &Vector3{
		X: x,
		Y: y,
		Z: z,
		W: 1.0,
	}
}

func NewVector3FromArray(a []float64) *Vector3 {
	return &Vector3{X: a[0], Y: a[1], Z: a[2]}
}

func (v *Vector3) Add(x, y, z float64) {
	v.X += x
	v.Y += y
	v.Z += z
}

func (v *Vector3) Normalize() {
	length := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if length == 0 {
		return
	}
	v.X /= length
	v.Y /= length
	v.Z /= length
}

func (v *Vector3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

func (v *Vector3) Copy() *Vector3 {
	return &Vector3{X: v.X, Y: v.Y, Z: v.Z, W: v.W}
}

func (v *Vector3) DistanceTo(other *Vector3) float64 {
	dx := v.X - other.X
	dy := v.Y - other.Y
	dz := v.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Subtract returns a new Vector3 that is the difference of v1 and v2.
func Subtract(v1, v2 *Vector3) *Vector3 {
	return NewVector3(
		v1.X-v2.X,
		v1.Y-v2.Y,
		v1.Z-v2.Z,
	)
}

func Cross(a, b *Vector3) *Vector3 {
	return NewVector3(
		a.Y*b.Z-a.Z*b.Y,
		a.Z*b.X-a.X*b.Z,
		a.X*b.Y-a.Y*b.X,
	)
}

func Dot(v1, v2 *Vector3) float64 {
	return v1.X*v2.X + v1.Y*v2.Y + v1.Z*v2.Z
}
