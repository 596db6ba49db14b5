// Package engine implements the deterministic Pong state machine: paddle
// and ball motion, collision detection, reflection physics, scoring and
// game-over detection. It contains no external dependencies (especially no
// Bubble Tea) so the simulation stays pure and testable; the platform
// layer owns input mapping, timing, rendering and persistence.
package engine

import "math"

// Vec is an immutable 2D vector. Operations return new values and follow
// IEEE semantics for all inputs.
type Vec struct {
	X, Y float64
}

// Add returns the component-wise sum of v and o.
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v minus o.
func (v Vec) Sub(o Vec) Vec {
	return v.Add(o.Scale(-1))
}

// Scale multiplies both components by s.
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Len returns the magnitude of the vector.
func (v Vec) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Ortho rotates the vector 90 degrees clockwise.
func (v Vec) Ortho() Vec {
	return Vec{v.Y, -v.X}
}
