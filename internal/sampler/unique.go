package sampler

import (
	"fmt"
	"strings"
)

const DefaultMaxAttempts = 1000

// UniquenessCollisionError is returned when every attempt of a Unique
// produced a value that was already taken.
type UniquenessCollisionError struct {
	Namespace string
	Attempts  int
	Last      string
}

func (e *UniquenessCollisionError) Error() string {
	return fmt.Sprintf("unique %s: %d attempts collided (last %q)", e.Namespace, e.Attempts, e.Last)
}

// Unique remembers the values handed out for one namespace, such as
// supplier names or user logins.
type Unique struct {
	namespace   string
	maxAttempts int
	seen        map[string]struct{}
}

func NewUnique(namespace string, maxAttempts int) *Unique {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Unique{
		namespace:   namespace,
		maxAttempts: maxAttempts,
		seen:        make(map[string]struct{}),
	}
}

// Next calls gen until it yields an unseen value or the attempt budget runs out.
func (u *Unique) Next(gen func() string) (string, error) {
	var last string
	for attempt := 0; attempt < u.maxAttempts; attempt++ {
		last = gen()
		if _, taken := u.seen[last]; !taken {
			u.seen[last] = struct{}{}
			return last, nil
		}
	}
	return "", &UniquenessCollisionError{Namespace: u.namespace, Attempts: u.maxAttempts, Last: last}
}

// Token returns a unique numerified pattern, see Numerify.
func (u *Unique) Token(s Sampler, pattern string) (string, error) {
	return u.Next(func() string { return Numerify(s, pattern) })
}

func (u *Unique) Len() int {
	return len(u.seen)
}

// Numerify replaces '#' with a digit 0-9 and '%' with a digit 1-9.
// Other characters are copied.
func Numerify(s Sampler, pattern string) string {
	var b strings.Builder
	b.Grow(len(pattern))
	for _, r := range pattern {
		switch r {
		case '#':
			b.WriteByte(byte('0' + s.Intn(10)))
		case '%':
			b.WriteByte(byte('1' + s.Intn(9)))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
