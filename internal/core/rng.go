package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// offsetLimit is large enough that any clamped offset still saturates an
// average in [0, MaxElevation] to the same bound as the raw value would.
const offsetLimit = 2 * MaxElevation

// Offset returns a perturbation in [-magnitude, +magnitude] derived from one
// uniform draw: draw*2*magnitude - magnitude, truncated toward zero and
// saturated at ±2*MaxElevation so huge magnitudes never overflow int64. Every
// call consumes exactly one draw, including when magnitude is zero, so the
// draw sequence only depends on the call sequence.
func (r *RNG) Offset(magnitude float64) int64 {
	draw := r.r.Float64()
	if magnitude <= 0 {
		return 0
	}
	v := draw*2*magnitude - magnitude
	return int64(max(-offsetLimit, min(v, offsetLimit)))
}

// Float64 returns a uniform value in [0, 1).
func (r *RNG) Float64() float64 {
	return r.r.Float64()
}

// Int63 returns a non-negative pseudo-random int64, used to derive new seeds.
func (r *RNG) Int63() int64 {
	return r.r.Int64()
}
