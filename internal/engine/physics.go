package engine

import "math"

// wallBounce inverts the vertical component. Speed is conserved exactly.
func wallBounce(v Vec) Vec {
	return Vec{v.X, -v.Y}
}

// paddleBounce rebuilds the ball velocity from the hit offset. The
// deflection angle grows with the distance from the paddle center up to
// MaxBounceAngle, the horizontal direction sends the ball back toward the
// half it came from, the vertical direction is one random draw, and the
// incoming speed is preserved.
func paddleBounce(b Ball, p Paddle, rng *RNG) Vec {
	ratio := (b.Pos.Y - (p.Pos.Y + p.Height/2)) / (p.Height / 2)
	angle := ratio * MaxBounceAngle

	xDir := 1.0
	if b.Pos.X > CanvasWidth/2 {
		xDir = -1
	}
	yDir := rng.Sign()

	speed := b.Vel.Len()
	return Vec{xDir * speed * math.Cos(angle), yDir * speed * math.Sin(angle)}
}
