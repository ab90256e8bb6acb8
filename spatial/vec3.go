package spatial

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Vec3 is a 3-D float32 vector.
type Vec3 struct {
	X, Y, Z float32
}

// Splat returns a Vec3 with all three components set to v.
func Splat(v float32) Vec3 {
	return Vec3{X: v, Y: v, Z: v}
}

// Add returns v + other.
func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z}
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Scale returns v scaled componentwise by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of v and other.
func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float32 {
	return math32.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector when v has
// zero length.
func (v Vec3) Normalize() Vec3 {
	length := v.Length()
	if length == 0 {
		return Vec3{}
	}
	return v.Scale(1 / length)
}

// Min returns the componentwise minimum of v and other.
func (v Vec3) Min(other Vec3) Vec3 {
	return Vec3{
		X: math32.Min(v.X, other.X),
		Y: math32.Min(v.Y, other.Y),
		Z: math32.Min(v.Z, other.Z),
	}
}

// Max returns the componentwise maximum of v and other.
func (v Vec3) Max(other Vec3) Vec3 {
	return Vec3{
		X: math32.Max(v.X, other.X),
		Y: math32.Max(v.Y, other.Y),
		Z: math32.Max(v.Z, other.Z),
	}
}

// MaxElement returns the largest of the three components.
func (v Vec3) MaxElement() float32 {
	return math32.Max(v.X, math32.Max(v.Y, v.Z))
}

func (v Vec3) String() string {
	return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
}
