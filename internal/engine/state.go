package engine

import "math"

// Playfield and entity dimensions, in canvas units. Physics is fixed at
// compile time; only the platform layer is configurable.
const (
	CanvasWidth  = 600.0
	CanvasHeight = 600.0

	PaddleWidth  = 10.0
	PaddleHeight = 80.0
	paddleInset  = 10.0

	BallRadius = 6.0

	// Default serve velocity. Its magnitude is restored on every round
	// reset; paddle bounces re-derive speed from the incoming velocity.
	defaultBallVX = 2.5
	defaultBallVY = -3.5

	// WinningScore ends the match once either side reaches it.
	WinningScore = 7

	// MaxBounceAngle caps the deflection of a paddle bounce at 80 degrees.
	MaxBounceAngle = 80 * math.Pi / 180
)

// Paddle is an axis-aligned box addressed by its top-left corner.
// Invariant: 0 <= Pos.Y and Pos.Y+Height <= CanvasHeight, enforced by
// rejecting moves that would violate it.
type Paddle struct {
	ID     string
	Pos    Vec
	Width  float64
	Height float64
}

// Ball is a circle addressed by its center. Radius never changes.
type Ball struct {
	ID     string
	Pos    Vec
	Radius float64
	Vel    Vec
}

// State is the complete game state. It is a plain value: the reducer
// returns a fresh copy per event and never mutates its input. Once
// GameOver is set it stays set; the driver decides when to stop
// delivering events.
type State struct {
	RightPaddle Paddle // user-controlled
	LeftPaddle  Paddle // computer-controlled
	UserScore   int
	CPUScore    int
	Ball        Ball
	GameOver    bool
}

// NewState returns the initial match state: scores at zero, ball centered
// on its default serve velocity, paddles vertically centered at their
// start columns.
func NewState() State {
	return State{
		RightPaddle: newPaddle("player", CanvasWidth-PaddleWidth-paddleInset),
		LeftPaddle:  newPaddle("cpu", paddleInset),
		Ball:        newBall(),
	}
}

func newPaddle(id string, x float64) Paddle {
	return Paddle{
		ID:     id,
		Pos:    Vec{x, (CanvasHeight - PaddleHeight) / 2},
		Width:  PaddleWidth,
		Height: PaddleHeight,
	}
}

func newBall() Ball {
	return Ball{
		ID:     "ball",
		Pos:    Vec{CanvasWidth / 2, CanvasHeight / 2},
		Radius: BallRadius,
		Vel:    Vec{defaultBallVX, defaultBallVY},
	}
}
