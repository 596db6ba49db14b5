//go:build debug

package engine

// assert panics on violated invariants in debug builds.
func assert(cond bool, msg string) {
	if !cond {
		panic("engine: " + msg)
	}
}
