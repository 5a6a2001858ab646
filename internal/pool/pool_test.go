package pool

import (
	"errors"
	"testing"

	"github.com/Lumos-Labs-HQ/winegen/internal/sampler"
)

func TestDrawIsPermutation(t *testing.T) {
	p := New("cards", 50, 1, sampler.New(1))

	seen := make(map[int]bool)
	for i := 0; i < 50; i++ {
		id, err := p.Draw()
		if err != nil {
			t.Fatalf("draw %d failed: %v", i, err)
		}
		if id < 1 || id > 50 {
			t.Fatalf("id %d out of range", id)
		}
		if seen[id] {
			t.Fatalf("id %d drawn twice", id)
		}
		seen[id] = true
	}

	_, err := p.Draw()
	var exhausted *ExhaustionError
	if !errors.As(err, &exhausted) {
		t.Fatalf("Expected ExhaustionError, got %v", err)
	}
	if exhausted.Pool != "cards" {
		t.Errorf("Expected pool name 'cards', got %q", exhausted.Pool)
	}
}

func TestQuotaAllowsRepeats(t *testing.T) {
	p := New("suppliers", 4, 3, sampler.New(2))
	if p.Len() != 12 {
		t.Fatalf("Expected 12 slots, got %d", p.Len())
	}

	counts := make(map[int]int)
	for p.Len() > 0 {
		id, _ := p.Draw()
		counts[id]++
	}
	for id := 1; id <= 4; id++ {
		if counts[id] != 3 {
			t.Errorf("id %d drawn %d times, want 3", id, counts[id])
		}
	}
}

func TestDrawNLeavesPoolOnFailure(t *testing.T) {
	p := New("suppliers", 3, 1, sampler.New(3))

	if _, err := p.DrawN(4); err == nil {
		t.Fatal("Expected DrawN(4) on a pool of 3 to fail")
	}
	if p.Len() != 3 {
		t.Errorf("failed DrawN consumed ids: %d left", p.Len())
	}

	ids, err := p.DrawN(3)
	if err != nil {
		t.Fatalf("DrawN(3) failed: %v", err)
	}
	if ids[0] == ids[1] || ids[1] == ids[2] || ids[0] == ids[2] {
		t.Errorf("DrawN returned duplicates: %v", ids)
	}
}

func TestSameSeedSameOrder(t *testing.T) {
	a := New("x", 20, 1, sampler.New(9))
	b := New("x", 20, 1, sampler.New(9))
	for a.Len() > 0 {
		x, _ := a.Draw()
		y, _ := b.Draw()
		if x != y {
			t.Fatalf("order differs: %d != %d", x, y)
		}
	}
}
