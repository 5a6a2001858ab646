package sampler

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestRandIsDeterministicForSeed(t *testing.T) {
	a := New(42)
	b := New(42)

	for i := 0; i < 100; i++ {
		if x, y := a.Int(0, 1000), b.Int(0, 1000); x != y {
			t.Fatalf("draw %d differs: %d != %d", i, x, y)
		}
		if x, y := a.Float(118, 1000), b.Float(118, 1000); x != y {
			t.Fatalf("draw %d differs: %v != %v", i, x, y)
		}
	}
}

func TestZeroSeedIsReplaced(t *testing.T) {
	r := New(0)
	if r.Seed() == 0 {
		t.Error("Expected a non-zero seed to be chosen")
	}
}

func TestBoundsAreRespected(t *testing.T) {
	r := New(7)
	for i := 0; i < 10000; i++ {
		if v := r.Int(8, 16); v < 8 || v > 16 {
			t.Fatalf("Int out of range: %d", v)
		}
		if v := r.Float(7.5, 22); v < 7.5 || v >= 22 {
			t.Fatalf("Float out of range: %v", v)
		}
	}
	if v := r.Int(5, 5); v != 5 {
		t.Errorf("Expected degenerate range to return 5, got %d", v)
	}
}

func TestNumerify(t *testing.T) {
	r := New(3)
	for i := 0; i < 200; i++ {
		got := Numerify(r, "%%#-x")
		if len(got) != 5 {
			t.Fatalf("unexpected length for %q", got)
		}
		if got[0] == '0' || got[1] == '0' {
			t.Fatalf("'%%' produced a zero in %q", got)
		}
		if !strings.HasSuffix(got, "-x") {
			t.Fatalf("literal characters not copied: %q", got)
		}
	}
}

func TestUniqueRetriesAndFails(t *testing.T) {
	u := NewUnique("test", 5)

	if _, err := u.Next(func() string { return "a" }); err != nil {
		t.Fatalf("first value should be accepted: %v", err)
	}

	calls := 0
	got, err := u.Next(func() string {
		calls++
		if calls < 3 {
			return "a"
		}
		return "b"
	})
	if err != nil || got != "b" {
		t.Fatalf("Expected retry to yield b, got %q, %v", got, err)
	}

	_, err = u.Next(func() string { return "a" })
	var collision *UniquenessCollisionError
	if !errors.As(err, &collision) {
		t.Fatalf("Expected UniquenessCollisionError, got %v", err)
	}
	if collision.Attempts != 5 || collision.Namespace != "test" {
		t.Errorf("unexpected error contents: %+v", collision)
	}
}

func TestFakerPasswordAndDate(t *testing.T) {
	f := NewFaker(New(11))
	for i := 0; i < 500; i++ {
		p := f.Password(8, 16)
		if len(p) < 8 || len(p) > 16 {
			t.Fatalf("password length %d out of range", len(p))
		}
		for _, c := range p {
			if !strings.ContainsRune(letters, c) {
				t.Fatalf("unexpected password character %q", c)
			}
		}
	}

	from := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, 1, 31, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		d := f.Date(from, to)
		if d.Before(from) || d.After(to) {
			t.Fatalf("date %s outside window", d)
		}
	}
}
