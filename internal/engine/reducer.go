package engine

import "math"

// Reduce folds one event into the state and returns the successor state.
// It is total: every event yields a state, possibly identical to the
// input. Reduce performs no game-over special-casing; the caller owns the
// decision to stop delivering events once GameOver is set.
func Reduce(s State, ev Event, rng *RNG) State {
	switch ev := ev.(type) {
	case PaddleMove:
		s.RightPaddle = movePaddle(s.RightPaddle, ev.Delta)
	case ComputerPaddleMove:
		// Track the ball with a quarter-height offset so the computer
		// aims off-center and stays beatable.
		dy := (s.Ball.Pos.Y - s.LeftPaddle.Pos.Y) - PaddleHeight/4
		s.LeftPaddle = movePaddle(s.LeftPaddle, Vec{0, dy})
	case BallTick:
		s = stepBall(s, rng)
	}
	return s
}

// movePaddle applies the delta unless the candidate position would leave
// the canvas. Out-of-border moves are rejected whole, not clamped to the
// boundary.
func movePaddle(p Paddle, delta Vec) Paddle {
	candidate := p.Pos.Add(delta)
	if candidate.Y < 0 || candidate.Y+p.Height > CanvasHeight {
		return p
	}
	p.Pos = candidate
	return p
}

// stepBall runs collision detection, reflection and scoring for one tick.
func stepBall(s State, rng *RNG) State {
	ball := s.Ball

	// Wall bounces take priority over paddle hits. If the ball somehow
	// overlapped both paddles at once, the right paddle would win.
	switch {
	case crossedTop(ball) || crossedBottom(ball):
		ball.Vel = wallBounce(ball.Vel)
	case hitsPaddle(ball, s.RightPaddle):
		assert(!hitsPaddle(ball, s.LeftPaddle), "ball overlaps both paddles")
		ball.Vel = paddleBounce(ball, s.RightPaddle, rng)
	case hitsPaddle(ball, s.LeftPaddle):
		ball.Vel = paddleBounce(ball, s.LeftPaddle, rng)
	}

	// Advance with the post-reflection velocity.
	ball.Pos = ball.Pos.Add(ball.Vel)
	s.Ball = ball

	// Only a full left/right exit scores; top/bottom never does.
	switch {
	case crossedLeft(ball):
		s.CPUScore++
		s = resetRound(s, -1, rng)
	case crossedRight(ball):
		s.UserScore++
		s = resetRound(s, 1, rng)
	}

	if s.UserScore >= WinningScore || s.CPUScore >= WinningScore {
		s.GameOver = true
	}
	return s
}

// resetRound recenters the ball and paddles after a point. The serve
// heads toward the scoring side with a freshly randomized vertical
// direction; speed returns to the default magnitude.
func resetRound(s State, xDir float64, rng *RNG) State {
	ball := newBall()
	ball.Vel = Vec{xDir * defaultBallVX, rng.Sign() * math.Abs(defaultBallVY)}
	s.Ball = ball
	s.RightPaddle = newPaddle(s.RightPaddle.ID, CanvasWidth-PaddleWidth-paddleInset)
	s.LeftPaddle = newPaddle(s.LeftPaddle.ID, paddleInset)
	return s
}
