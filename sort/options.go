package sort

import (
	"fmt"

	"github.com/exascience/timsort"
)

// An Option customizes a single call of one of the sorting functions.
type Option func(*config)

type config struct {
	tuning timsort.Tuning
	stats  *Stats
}

func newConfig(opts []Option) config {
	cfg := config{tuning: timsort.DefaultTuning()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithTuning replaces both tuning constants. It panics if t is not
// valid.
func WithTuning(t timsort.Tuning) Option {
	if err := t.Validate(); err != nil {
		panic(err)
	}
	return func(c *config) {
		c.tuning = t
	}
}

// WithMinMerge sets the sequence length below which no merging takes
// place. It panics if n is not a power of two >= 2.
func WithMinMerge(n int) Option {
	if n < 2 || n&(n-1) != 0 {
		panic(fmt.Sprintf("invalid min merge: %v", n))
	}
	return func(c *config) {
		c.tuning.MinMerge = n
	}
}

// WithMinGallop sets the initial galloping threshold. It panics if n < 1.
func WithMinGallop(n int) Option {
	if n < 1 {
		panic(fmt.Sprintf("invalid min gallop: %v", n))
	}
	return func(c *config) {
		c.tuning.MinGallop = n
	}
}

// WithStats makes the sort record what it did in *s. The previous
// contents of *s are discarded. It panics if s is nil.
func WithStats(s *Stats) Option {
	if s == nil {
		panic("sort: WithStats(nil)")
	}
	return func(c *config) {
		c.stats = s
	}
}
