// Package randutil provides a small deterministic random source for the
// playground's fuzz mode: the same seed always replays the same op
// sequence.
package randutil

import "math/rand/v2"

// Rand is a seeded PCG source. Create one with New; the zero value is
// not usable.
type Rand struct {
	src *rand.Rand
}

// New returns a source seeded with seed.
func New(seed uint64) *Rand {
	return &Rand{src: rand.New(rand.NewPCG(seed, seed))}
}

// IntBetween returns a uniform int in [lo, hi], both ends inclusive.
// lo must not exceed hi.
func (r *Rand) IntBetween(lo, hi int) int {
	return lo + r.src.IntN(hi-lo+1)
}

// Float64 returns a uniform float64 in [0, 1).
func (r *Rand) Float64() float64 { return r.src.Float64() }

// Uint32 returns a uniform uint32.
func (r *Rand) Uint32() uint32 { return r.src.Uint32() }

// Pick returns a uniformly chosen element of xs. xs must be non-empty.
func Pick[T any](r *Rand, xs []T) T {
	return xs[r.src.IntN(len(xs))]
}
