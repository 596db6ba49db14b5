package engine

import (
	"math"
	"testing"
)

func TestNewState(t *testing.T) {
	s := NewState()

	if s.Ball.Pos != (Vec{300, 300}) {
		t.Errorf("ball starts at %v, want {300 300}", s.Ball.Pos)
	}
	if s.Ball.Vel != (Vec{2.5, -3.5}) {
		t.Errorf("ball velocity %v, want {2.5 -3.5}", s.Ball.Vel)
	}
	if s.LeftPaddle.Pos != (Vec{10, 260}) || s.RightPaddle.Pos != (Vec{580, 260}) {
		t.Errorf("paddle starts %v / %v, want {10 260} / {580 260}", s.LeftPaddle.Pos, s.RightPaddle.Pos)
	}
	if s.UserScore != 0 || s.CPUScore != 0 || s.GameOver {
		t.Errorf("fresh state must be zero scores and in play: %+v", s)
	}
}

func TestPaddleMoveWithinBounds(t *testing.T) {
	s := NewState()
	rng := NewRNG(1)

	next := Reduce(s, PaddleMove{Delta: Vec{0, -10}}, rng)

	want := s.RightPaddle.Pos.Add(Vec{0, -10})
	if next.RightPaddle.Pos != want {
		t.Errorf("paddle at %v, want %v", next.RightPaddle.Pos, want)
	}
	if next.LeftPaddle != s.LeftPaddle || next.Ball != s.Ball {
		t.Error("PaddleMove must leave everything but the right paddle unchanged")
	}
}

func TestPaddleMoveRejectedAtBorder(t *testing.T) {
	s := NewState()
	rng := NewRNG(1)

	// Drive the paddle to the top edge: 260 / 10 = 26 moves reach y=0.
	for i := 0; i < 26; i++ {
		s = Reduce(s, PaddleMove{Delta: Vec{0, -10}}, rng)
	}
	if s.RightPaddle.Pos.Y != 0 {
		t.Fatalf("paddle should rest at y=0, got %v", s.RightPaddle.Pos.Y)
	}

	// Further identical moves are rejected whole, not clamped.
	for i := 0; i < 5; i++ {
		s = Reduce(s, PaddleMove{Delta: Vec{0, -10}}, rng)
		if s.RightPaddle.Pos.Y != 0 {
			t.Fatalf("out-of-border move must leave position unchanged, got y=%v", s.RightPaddle.Pos.Y)
		}
	}

	// Bottom edge behaves the same way.
	if got := movePaddle(s.RightPaddle, Vec{0, CanvasHeight}); got.Pos != s.RightPaddle.Pos {
		t.Errorf("move past bottom must be rejected, got %v", got.Pos)
	}
}

func TestComputerPaddleTracksBall(t *testing.T) {
	s := NewState()
	s.Ball.Pos = Vec{300, 400}
	rng := NewRNG(1)

	next := Reduce(s, ComputerPaddleMove{}, rng)

	// dy = (400 - 260) - 80/4 = 120.
	if next.LeftPaddle.Pos.Y != 380 {
		t.Errorf("computer paddle at y=%v, want 380", next.LeftPaddle.Pos.Y)
	}
	if next.RightPaddle != s.RightPaddle || next.Ball != s.Ball {
		t.Error("ComputerPaddleMove must leave everything but the left paddle unchanged")
	}
}

func TestComputerPaddleMoveRejectedAtBorder(t *testing.T) {
	s := NewState()
	s.LeftPaddle.Pos.Y = 500
	s.Ball.Pos = Vec{300, 590} // dy = 70, candidate 570+80 > 600

	next := Reduce(s, ComputerPaddleMove{}, NewRNG(1))

	if next.LeftPaddle.Pos.Y != 500 {
		t.Errorf("out-of-border tracking step must be rejected, got y=%v", next.LeftPaddle.Pos.Y)
	}
}

func TestBallTickLinearMotion(t *testing.T) {
	s := NewState()

	next := Reduce(s, BallTick{}, NewRNG(1))

	if next.Ball.Pos != (Vec{302.5, 296.5}) {
		t.Errorf("ball at %v, want {302.5 296.5}", next.Ball.Pos)
	}
	if next.Ball.Vel != s.Ball.Vel {
		t.Errorf("velocity must be unchanged without collisions, got %v", next.Ball.Vel)
	}
	if next.UserScore != 0 || next.CPUScore != 0 || next.GameOver {
		t.Errorf("no collision tick must not score or end the game: %+v", next)
	}
}

func TestWallBounceConservesSpeed(t *testing.T) {
	s := NewState()
	s.Ball.Pos = Vec{300, -10} // fully above the canvas
	speedBefore := s.Ball.Vel.Len()

	next := Reduce(s, BallTick{}, NewRNG(1))

	if next.Ball.Vel != (Vec{2.5, 3.5}) {
		t.Errorf("wall bounce must only flip vy, got %v", next.Ball.Vel)
	}
	if next.Ball.Vel.Len() != speedBefore {
		t.Errorf("wall bounce must conserve speed exactly: %v vs %v", next.Ball.Vel.Len(), speedBefore)
	}
	// Position advances with the post-reflection velocity.
	if next.Ball.Pos != (Vec{302.5, -6.5}) {
		t.Errorf("ball at %v, want {302.5 -6.5}", next.Ball.Pos)
	}
	if next.UserScore != 0 || next.CPUScore != 0 {
		t.Error("top/bottom exits never score")
	}
}

func TestPaddleBounceConservesSpeedWithinTolerance(t *testing.T) {
	s := NewState()
	s.Ball.Pos = Vec{585, 330} // overlaps the right paddle off-center
	speedBefore := s.Ball.Vel.Len()

	next := Reduce(s, BallTick{}, NewRNG(1))

	if math.Abs(next.Ball.Vel.Len()-speedBefore) > 1e-9 {
		t.Errorf("paddle bounce must conserve pre-bounce speed: %v vs %v", next.Ball.Vel.Len(), speedBefore)
	}
	if next.Ball.Vel.X >= 0 {
		t.Errorf("ball on the right half must head back left, vx = %v", next.Ball.Vel.X)
	}
}

func TestScoreOnRightExit(t *testing.T) {
	s := NewState()
	s.Ball.Pos = Vec{610, 300} // fully past x=600
	s.RightPaddle.Pos.Y = 100  // displaced, must reset
	s.LeftPaddle.Pos.Y = 400

	next := Reduce(s, BallTick{}, NewRNG(1))

	if next.UserScore != 1 {
		t.Errorf("user score = %d, want 1", next.UserScore)
	}
	if next.CPUScore != 0 {
		t.Error("exactly one score may increment per exit")
	}
	if next.Ball.Pos != (Vec{300, 300}) {
		t.Errorf("ball must reset to center, got %v", next.Ball.Pos)
	}
	if next.Ball.Vel.X != 2.5 {
		t.Errorf("serve must head toward the scoring side, vx = %v", next.Ball.Vel.X)
	}
	if math.Abs(next.Ball.Vel.Y) != 3.5 {
		t.Errorf("serve vy magnitude = %v, want 3.5", math.Abs(next.Ball.Vel.Y))
	}
	if next.RightPaddle.Pos != (Vec{580, 260}) || next.LeftPaddle.Pos != (Vec{10, 260}) {
		t.Errorf("paddles must reset to start positions: %v / %v", next.RightPaddle.Pos, next.LeftPaddle.Pos)
	}
	if next.GameOver {
		t.Error("game must stay in play below the winning score")
	}
}

func TestScoreOnLeftExit(t *testing.T) {
	s := NewState()
	s.Ball.Pos = Vec{-10, 300}

	next := Reduce(s, BallTick{}, NewRNG(1))

	if next.CPUScore != 1 || next.UserScore != 0 {
		t.Errorf("left exit scores the opponent only: user=%d cpu=%d", next.UserScore, next.CPUScore)
	}
	if next.Ball.Vel.X != -2.5 {
		t.Errorf("serve must head toward the scoring side, vx = %v", next.Ball.Vel.X)
	}
}

func TestGameOverOnWinningScore(t *testing.T) {
	s := NewState()
	s.CPUScore = WinningScore - 1
	s.Ball.Pos = Vec{-10, 300}

	next := Reduce(s, BallTick{}, NewRNG(1))

	if next.CPUScore != WinningScore {
		t.Fatalf("cpu score = %d, want %d", next.CPUScore, WinningScore)
	}
	if !next.GameOver {
		t.Error("game over must be set in the same transition the winning score is reached")
	}
}

func TestGameOverNeverReverts(t *testing.T) {
	s := NewState()
	s.UserScore = WinningScore
	s.GameOver = true
	rng := NewRNG(1)

	events := []Event{
		PaddleMove{Delta: Vec{0, 10}},
		ComputerPaddleMove{},
		BallTick{},
		BallTick{},
	}
	for _, ev := range events {
		s = Reduce(s, ev, rng)
		if !s.GameOver {
			t.Fatalf("game over reverted after %T", ev)
		}
	}
}

func TestReduceIsDeterministic(t *testing.T) {
	events := make([]Event, 0, 900)
	for i := 0; i < 300; i++ {
		if i%7 == 0 {
			events = append(events, PaddleMove{Delta: Vec{0, -10}})
		}
		events = append(events, ComputerPaddleMove{}, BallTick{})
	}

	run := func() State {
		s := NewState()
		rng := NewRNG(12345)
		for _, ev := range events {
			s = Reduce(s, ev, rng)
		}
		return s
	}

	if a, b := run(), run(); a != b {
		t.Errorf("same seed and event order must reproduce the state:\n%+v\n%+v", a, b)
	}
}

func TestReduceDoesNotMutateInput(t *testing.T) {
	s := NewState()
	before := s

	Reduce(s, BallTick{}, NewRNG(1))
	Reduce(s, PaddleMove{Delta: Vec{0, -10}}, NewRNG(1))

	if s != before {
		t.Error("Reduce must treat its input state as immutable")
	}
}
