// Package pool hands out ids from a shuffled range without repeating them.
package pool

import "fmt"

type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// ExhaustionError is returned when more ids are requested than the pool
// still holds.
type ExhaustionError struct {
	Pool      string
	Requested int
	Available int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("pool %s exhausted: requested %d, %d available", e.Pool, e.Requested, e.Available)
}

// Pool is a shuffled multiset of the ids 1..n, each present quota times.
type Pool struct {
	name string
	ids  []int
}

func New(name string, n, quota int, shuffler Shuffler) *Pool {
	if quota < 1 {
		quota = 1
	}
	ids := make([]int, 0, n*quota)
	for q := 0; q < quota; q++ {
		for id := 1; id <= n; id++ {
			ids = append(ids, id)
		}
	}
	shuffler.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })
	return &Pool{name: name, ids: ids}
}

func (p *Pool) Name() string {
	return p.name
}

func (p *Pool) Len() int {
	return len(p.ids)
}

// Draw removes and returns the next id.
func (p *Pool) Draw() (int, error) {
	if len(p.ids) == 0 {
		return 0, &ExhaustionError{Pool: p.name, Requested: 1, Available: 0}
	}
	last := len(p.ids) - 1
	id := p.ids[last]
	p.ids = p.ids[:last]
	return id, nil
}

// DrawN removes k ids at once. The pool is left untouched when it holds
// fewer than k.
func (p *Pool) DrawN(k int) ([]int, error) {
	if k > len(p.ids) {
		return nil, &ExhaustionError{Pool: p.name, Requested: k, Available: len(p.ids)}
	}
	out := make([]int, 0, k)
	for i := 0; i < k; i++ {
		id, _ := p.Draw()
		out = append(out, id)
	}
	return out, nil
}
