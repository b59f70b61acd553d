package dsl

import "github.com/gitrdm/ranked-belief/rank"

type config struct {
	offset rank.Rank
	dedup  bool
}

// Option configures NormalExceptional.
type Option func(*config)

func newConfig(opts []Option) config {
	cfg := config{offset: rank.Must(1)}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithOffset sets how much more surprising the exceptional branch is than
// the normal one. The default is 1.
func WithOffset(offset rank.Rank) Option {
	return func(c *config) {
		c.offset = offset
	}
}

// WithDedup drops repeated values from the combined ranking, keeping each
// value at its minimal rank. Values must be valid map keys.
func WithDedup() Option {
	return func(c *config) {
		c.dedup = true
	}
}
