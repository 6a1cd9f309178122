package javarand

import "github.com/jonboulle/clockwork"

// Option represents a modification to the default behavior of NewRandomized.
type Option func(*config)

type config struct {
	Clock clockwork.Clock
}

// WithClock overrides the wall clock mixed into the randomized seed.
func WithClock(clock clockwork.Clock) Option {
	return func(c *config) {
		c.Clock = clock
	}
}
