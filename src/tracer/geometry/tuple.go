package geometry

import "math"

// Tuple is a four-component homogeneous coordinate. W is the discriminant:
// 1 for a point, 0 for a vector. Arithmetic does not police W, so operations
// like point+point produce W=2 tuples that are neither.
type Tuple struct {
	X float64
	Y float64
	Z float64
	W float64
}

// NewPoint creates a point tuple.
func NewPoint(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 1}
}

// NewVector creates a vector tuple.
func NewVector(x, y, z float64) Tuple {
	return Tuple{X: x, Y: y, Z: z, W: 0}
}

// IsPoint reports whether the tuple is a point.
func (t Tuple) IsPoint() bool {
	return math.Abs(t.W-1) < Epsilon
}

// IsVector reports whether the tuple is a vector.
func (t Tuple) IsVector() bool {
	return math.Abs(t.W) < Epsilon
}

// IsEqualTo reports whether this tuple equals another.
// Note that this only considers the cartesian coordinates of the two tuples.
func (t Tuple) IsEqualTo(o *Tuple) bool {
	return math.Abs(t.X-o.X) < Epsilon &&
		math.Abs(t.Y-o.Y) < Epsilon &&
		math.Abs(t.Z-o.Z) < Epsilon
}

// Magnitude returns the Euclidean norm over all four components.
func (t Tuple) Magnitude() float64 {
	return math.Sqrt(t.X*t.X + t.Y*t.Y + t.Z*t.Z + t.W*t.W)
}

// Normalize returns a unit-magnitude copy of the tuple.
func (t Tuple) Normalize() Tuple {
	return t.Div(t.Magnitude())
}

// DotProduct returns the dot product over all four components.
func (t Tuple) DotProduct(o *Tuple) float64 {
	return t.X*o.X +
		t.Y*o.Y +
		t.Z*o.Z +
		t.W*o.W
}

// CrossProduct returns the 3-D cross product as a new vector.
func (t Tuple) CrossProduct(o *Tuple) Tuple {
	return NewVector(
		t.Y*o.Z-t.Z*o.Y, // y * o.z - z * o.y
		t.Z*o.X-t.X*o.Z, // z * o.x - x * o.z
		t.X*o.Y-t.Y*o.X, // x * o.y - y * o.x
	)
}
