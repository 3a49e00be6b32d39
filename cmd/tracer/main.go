package main

import (
	"fmt"

	"github.com/k-mack/the-ray-tracer-challenge/src/tracer/geometry"
)

// Smoke test for the tuple core: fire a projectile and tick it under
// gravity and wind until it hits the ground.
func main() {
	position := geometry.NewPoint(0, 1, 0)
	velocity := geometry.NewVector(1, 1.8, 0).Normalize().Mul(11.25)

	gravity := geometry.NewVector(0, -0.1, 0)
	wind := geometry.NewVector(-0.01, 0, 0)
	env := gravity.Add(&wind)

	ticks := 0
	for position.Y > 0 {
		position = position.Add(&velocity)
		velocity = velocity.Add(&env)
		ticks++
		fmt.Printf("tick %3d: x=%8.3f y=%8.3f\n", ticks, position.X, position.Y)
	}
	fmt.Printf("landed after %d ticks at x=%.3f\n", ticks, position.X)
}
