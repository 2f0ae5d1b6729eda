// internal/utils/vector.go
package utils

import "math"

// Vec2 is a point or direction in world space. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{x, y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// DistanceTo returns |v - o|.
func (v Vec2) DistanceTo(o Vec2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Normalize returns v scaled to unit length.
// The caller must make sure v is not the zero vector.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	return Vec2{v.X / l, v.Y / l}
}

// Right returns v rotated by +π/2 (the ship's starboard side when v is the facing).
func (v Vec2) Right() Vec2 {
	return Vec2{-v.Y, v.X}
}

// IsZero reports whether both components are exactly zero.
func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// IsFinite reports whether neither component is NaN or infinite.
func (v Vec2) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsNaN(v.Y) && !math.IsInf(v.X, 0) && !math.IsInf(v.Y, 0)
}

// AngleToVector returns the unit vector pointing at angle (radians).
func AngleToVector(angle float64) Vec2 {
	return Vec2{math.Cos(angle), math.Sin(angle)}
}

// VectorToAngle returns the angle of v in radians, in (-π, π].
func VectorToAngle(v Vec2) float64 {
	return math.Atan2(v.Y, v.X)
}

// RotateVector rotates v by angle radians.
func RotateVector(v Vec2, angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// LocalToWorld places a carrier-local offset in world space.
// The offset frame has +X along the facing and +Y to its right.
func LocalToWorld(origin, facing, offset Vec2) Vec2 {
	return origin.Add(RotateVector(offset, VectorToAngle(facing)))
}
