package engine

// Event is a closed tagged union of everything the reducer can fold.
// The unexported marker method keeps the set of variants fixed to this
// package.
type Event interface {
	isEvent()
}

// PaddleMove asks the user paddle to move by Delta.
type PaddleMove struct {
	Delta Vec
}

// ComputerPaddleMove advances the computer paddle one tracking step.
// It carries no payload; the target is read from the state.
type ComputerPaddleMove struct{}

// BallTick advances the ball one simulation step.
type BallTick struct{}

func (PaddleMove) isEvent()         {}
func (ComputerPaddleMove) isEvent() {}
func (BallTick) isEvent()           {}
