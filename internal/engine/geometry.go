package engine

// overlaps reports whether the closed intervals [aLo, aHi] and [bLo, bHi]
// share at least one point.
func overlaps(aLo, aHi, bLo, bHi float64) bool {
	return !(aHi < bLo || bHi < aLo)
}

// The wall-crossing predicates are directional: they hold only once the
// ball has fully left the canvas on that side, not when it merely touches
// the boundary.

func crossedTop(b Ball) bool {
	return b.Pos.Y-b.Radius < 0 &&
		!overlaps(b.Pos.Y-b.Radius, b.Pos.Y+b.Radius, 0, CanvasHeight)
}

func crossedBottom(b Ball) bool {
	return b.Pos.Y+b.Radius > CanvasHeight &&
		!overlaps(b.Pos.Y-b.Radius, b.Pos.Y+b.Radius, 0, CanvasHeight)
}

func crossedLeft(b Ball) bool {
	return b.Pos.X-b.Radius < 0 &&
		!overlaps(b.Pos.X-b.Radius, b.Pos.X+b.Radius, 0, CanvasWidth)
}

func crossedRight(b Ball) bool {
	return b.Pos.X+b.Radius > CanvasWidth &&
		!overlaps(b.Pos.X-b.Radius, b.Pos.X+b.Radius, 0, CanvasWidth)
}

// hitsPaddle reports whether the ball's bounding box overlaps the paddle
// on both axes at once.
func hitsPaddle(b Ball, p Paddle) bool {
	return overlaps(b.Pos.X-b.Radius, b.Pos.X+b.Radius, p.Pos.X, p.Pos.X+p.Width) &&
		overlaps(b.Pos.Y-b.Radius, b.Pos.Y+b.Radius, p.Pos.Y, p.Pos.Y+p.Height)
}
