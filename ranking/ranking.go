package ranking

import (
	"errors"

	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

var (
	// ErrEmpty is returned when a first element is requested from a ranking
	// that enumerates no pairs.
	ErrEmpty = errors.New("ranking: empty ranking")

	// ErrOutOfOrder is returned when a generator yields a rank smaller than
	// the one it yielded before it.
	ErrOutOfOrder = errors.New("ranking: generator produced decreasing ranks")
)

// Pair is a single enumerated outcome: a value and its degree of surprise.
type Pair[T any] struct {
	Value T
	Rank  rank.Rank
}

// node is one memoized cons cell of a ranking's chain. A nil *node marks the
// end of the chain. Cells are immutable once created; all sharing happens
// through the next promise, so concurrent holders of a tail observe a single
// forcing of it.
type node[T any] struct {
	value T
	rank  rank.Rank
	next  *lazy.Promise[*node[T]]
}

// Ranking is a lazy enumeration of value/rank pairs in non-decreasing rank
// order. The zero value is an empty ranking.
//
// Rankings are cheap handles: copying one shares the underlying chain, and
// every transform returns a new handle without forcing the source. Forcing
// happens in consuming calls (First, Materialize, Iter, All) and is memoized
// per position, so enumerating twice runs each deferred computation once.
type Ranking[T any] struct {
	head *lazy.Promise[*node[T]]

	// bound is a lower bound on the rank of the first pair, maintained so
	// merges can delay forcing this chain until the bound is globally
	// minimal. It is advisory: the true first rank may be larger.
	bound rank.Rank
}

// chain returns the head promise, substituting a resolved empty chain for
// the zero value.
func (r Ranking[T]) chain() *lazy.Promise[*node[T]] {
	if r.head == nil {
		return lazy.Resolved[*node[T]](nil)
	}
	return r.head
}

// forceHead resolves the first cell. A nil cell means the ranking is empty.
func (r Ranking[T]) forceHead() (*node[T], error) {
	if r.head == nil {
		return nil, nil
	}
	return r.head.Force()
}
