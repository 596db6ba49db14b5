package engine

import "time"

// Linear congruential generator parameters (the classic glibc constants).
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgModulus    = 1 << 31
)

// RNG is a deterministic linear-congruential pseudo-random generator.
// Every random decision in the engine draws from a single instance in
// strict call order, so a fixed seed and a fixed event order reproduce a
// match exactly.
type RNG struct {
	state int64
}

// NewRNG creates a generator from the given seed. A zero seed is replaced
// with a time-derived one; any other seed is used as given, folded into
// the generator's [0, 2^31) state range.
func NewRNG(seed int64) *RNG {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	seed %= lcgModulus
	if seed < 0 {
		seed += lcgModulus
	}
	return &RNG{state: seed}
}

// nextInt advances the generator and returns the new state in [0, 2^31).
func (r *RNG) nextInt() int64 {
	r.state = (lcgMultiplier*r.state + lcgIncrement) % lcgModulus
	return r.state
}

// Float64 returns the next value in [0, 1].
func (r *RNG) Float64() float64 {
	return float64(r.nextInt()) / (lcgModulus - 1)
}

// Sign consumes exactly one draw and returns -1 or +1.
func (r *RNG) Sign() float64 {
	if r.Float64()*2-1 < 0 {
		return -1
	}
	return 1
}
