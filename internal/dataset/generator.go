package dataset

import (
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/winegen/internal/pool"
	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
)

const phonePattern = "%%%%%%%%%%%"

// Generator holds what every stage shares: the sampler, the bounds and the
// record count N. Stages take their upstream values as arguments.
type Generator struct {
	s           sampler.Sampler
	faker       *sampler.Faker
	bounds      Bounds
	count       int
	maxAttempts int
	dateFrom    time.Time
	dateTo      time.Time
}

func NewGenerator(s sampler.Sampler, bounds Bounds, count int) (*Generator, error) {
	if count < 1 {
		return nil, fmt.Errorf("record count must be positive, got %d", count)
	}
	if err := bounds.Validate(); err != nil {
		return nil, err
	}
	from, to, err := bounds.SaleDate.Parse()
	if err != nil {
		return nil, err
	}
	return &Generator{
		s:           s,
		faker:       sampler.NewFaker(s),
		bounds:      bounds,
		count:       count,
		maxAttempts: sampler.DefaultMaxAttempts,
		dateFrom:    from,
		dateTo:      to,
	}, nil
}

// WithMaxAttempts sets the retry budget for unique values.
func (g *Generator) WithMaxAttempts(n int) *Generator {
	if n > 0 {
		g.maxAttempts = n
	}
	return g
}

func (g *Generator) Count() int {
	return g.count
}

// NewPool returns a shuffled permutation of 1..n drawn from the generator's
// sampler.
func (g *Generator) NewPool(name string, n int) *pool.Pool {
	return pool.New(name, n, 1, g.s)
}
