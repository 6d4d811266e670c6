package allocator

import "math/rand/v2"

// Picker selects an index uniformly at random from [0, n)
type Picker interface {
	Pick(n int) int
}

// SeededPicker is a Picker whose sequence is fully determined by its seed
type SeededPicker struct {
	seed uint64
	rng  *rand.Rand
}

// NewSeededPicker creates a picker that yields the same sequence for the same seed
func NewSeededPicker(seed uint64) *SeededPicker {
	return &SeededPicker{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed)),
	}
}

// Pick returns an index in [0, n). n must be positive.
func (p *SeededPicker) Pick(n int) int {
	return p.rng.IntN(n)
}

// Seed returns the seed the picker was created with
func (p *SeededPicker) Seed() uint64 {
	return p.seed
}
