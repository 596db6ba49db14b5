package engine

import "testing"

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name               string
		aLo, aHi, bLo, bHi float64
		want               bool
	}{
		{"disjoint left", 0, 1, 2, 3, false},
		{"disjoint right", 2, 3, 0, 1, false},
		{"touching endpoints", 0, 1, 1, 2, true},
		{"partial overlap", 0, 2, 1, 3, true},
		{"contained", 0, 10, 3, 4, true},
		{"identical", 1, 2, 1, 2, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(tc.aLo, tc.aHi, tc.bLo, tc.bHi); got != tc.want {
				t.Errorf("overlaps(%v,%v,%v,%v) = %v, want %v", tc.aLo, tc.aHi, tc.bLo, tc.bHi, got, tc.want)
			}
		})
	}
}

func ballAt(x, y float64) Ball {
	b := newBall()
	b.Pos = Vec{x, y}
	return b
}

func TestWallCrossingIsDirectionalAndFull(t *testing.T) {
	tests := []struct {
		name string
		ball Ball
		pred func(Ball) bool
		want bool
	}{
		{"touching top is not crossed", ballAt(300, BallRadius), crossedTop, false},
		{"partially above is not crossed", ballAt(300, -2), crossedTop, false},
		{"fully above is crossed", ballAt(300, -BallRadius-1), crossedTop, true},
		{"fully above is not a bottom crossing", ballAt(300, -BallRadius-1), crossedBottom, false},
		{"fully below is crossed", ballAt(300, CanvasHeight+BallRadius+1), crossedBottom, true},
		{"partially below is not crossed", ballAt(300, CanvasHeight+2), crossedBottom, false},
		{"fully left is crossed", ballAt(-BallRadius-1, 300), crossedLeft, true},
		{"partially left is not crossed", ballAt(-2, 300), crossedLeft, false},
		{"fully right is crossed", ballAt(CanvasWidth+BallRadius+1, 300), crossedRight, true},
		{"fully right is not a left crossing", ballAt(CanvasWidth+BallRadius+1, 300), crossedLeft, false},
		{"centered ball crosses nothing", ballAt(300, 300), crossedTop, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.pred(tc.ball); got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestHitsPaddle(t *testing.T) {
	p := newPaddle("p", 580) // occupies x [580,590], y [260,340]

	tests := []struct {
		name string
		ball Ball
		want bool
	}{
		{"overlap on both axes", ballAt(585, 300), true},
		{"touching edge counts", ballAt(580-BallRadius, 300), true},
		{"x overlap only", ballAt(585, 100), false},
		{"y overlap only", ballAt(300, 300), false},
		{"no overlap", ballAt(100, 100), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := hitsPaddle(tc.ball, p); got != tc.want {
				t.Errorf("hitsPaddle = %v, want %v", got, tc.want)
			}
		})
	}
}
