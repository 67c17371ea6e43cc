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

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillSoup sets each cell alive with the given probability. Density is
// clamped to [0, 1].
func FillSoup(r *rand.Rand, cells []bool, density float64) {
	if density < 0 {
		density = 0
	}
	if density > 1 {
		density = 1
	}
	for i := range cells {
		cells[i] = r.Float64() < density
	}
}
