package geometry

// Arithmetic never mutates an operand and never validates W: a point plus a
// point comes back with W=2, a vector minus a point with W=-1. Callers that
// care about the point/vector role check IsPoint/IsVector on the result.

// Add returns the component-wise sum of the two tuples, W included.
func (t Tuple) Add(o *Tuple) Tuple {
	return Tuple{
		X: t.X + o.X,
		Y: t.Y + o.Y,
		Z: t.Z + o.Z,
		W: t.W + o.W,
	}
}

// Sub returns the component-wise difference of the two tuples, W included.
func (t Tuple) Sub(o *Tuple) Tuple {
	return Tuple{
		X: t.X - o.X,
		Y: t.Y - o.Y,
		Z: t.Z - o.Z,
		W: t.W - o.W,
	}
}

// Neg returns the tuple with all four components negated.
func (t Tuple) Neg() Tuple {
	return Tuple{
		X: -t.X,
		Y: -t.Y,
		Z: -t.Z,
		W: -t.W,
	}
}

// Mul returns the tuple scaled by s, W included.
func (t Tuple) Mul(s float64) Tuple {
	return Tuple{
		X: t.X * s,
		Y: t.Y * s,
		Z: t.Z * s,
		W: t.W * s,
	}
}

// Div returns the tuple scaled by 1/s, W included. Division by zero is not
// intercepted; the usual IEEE-754 infinities and NaNs flow through.
func (t Tuple) Div(s float64) Tuple {
	return Tuple{
		X: t.X / s,
		Y: t.Y / s,
		Z: t.Z / s,
		W: t.W / s,
	}
}
