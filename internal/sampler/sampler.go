package sampler

import (
	"math/rand"
	"time"
)

// Sampler draws bounded scalar values. Every generator in the module takes
// one, so a seeded Rand makes a whole run reproducible.
type Sampler interface {
	Float(min, max float64) float64
	Int(min, max int) int
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

type Rand struct {
	rand *rand.Rand
	seed int64
}

// New returns a Rand seeded with seed. A zero seed picks one from the clock;
// Seed reports the value actually used.
func New(seed int64) *Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Rand{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

func (r *Rand) Seed() int64 {
	return r.seed
}

// Float returns a value in [min, max).
func (r *Rand) Float(min, max float64) float64 {
	return min + r.rand.Float64()*(max-min)
}

// Int returns a value in [min, max], both ends inclusive.
func (r *Rand) Int(min, max int) int {
	if max <= min {
		return min
	}
	return min + r.rand.Intn(max-min+1)
}

func (r *Rand) Intn(n int) int {
	return r.rand.Intn(n)
}

func (r *Rand) Shuffle(n int, swap func(i, j int)) {
	r.rand.Shuffle(n, swap)
}

// Pick returns a random element of items. items must not be empty.
func Pick[T any](s Sampler, items []T) T {
	return items[s.Intn(len(items))]
}
