package ranking

import (
	"iter"

	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

// Iterator walks a ranking pair by pair. Each Next forces at most one new
// position; abandoning the iterator leaves the rest of the chain unforced.
// Iterators over the same ranking share the memoized chain, so a second pass
// re-reads cached cells instead of re-running deferred computations.
type Iterator[T any] struct {
	next *lazy.Promise[*node[T]]
	err  error
}

// Iter returns a fresh iterator positioned before the first pair.
func (r Ranking[T]) Iter() *Iterator[T] {
	return &Iterator[T]{next: r.chain()}
}

// Next returns the next pair. ok is false once the ranking is exhausted or a
// position fails; Err distinguishes the two.
func (it *Iterator[T]) Next() (Pair[T], bool) {
	if it.err != nil || it.next == nil {
		return Pair[T]{}, false
	}
	n, err := it.next.Force()
	if err != nil {
		it.err = err
		it.next = nil
		return Pair[T]{}, false
	}
	if n == nil {
		it.next = nil
		return Pair[T]{}, false
	}
	it.next = n.next
	return Pair[T]{Value: n.value, Rank: n.rank}, true
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator[T]) Err() error {
	return it.err
}

// All exposes the ranking as a range-over-func sequence of value/rank pairs.
// Iteration stops silently at the first failed position; callers that need
// the error should use Iter.
func (r Ranking[T]) All() iter.Seq2[T, rank.Rank] {
	return func(yield func(T, rank.Rank) bool) {
		it := r.Iter()
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p.Value, p.Rank) {
				return
			}
		}
	}
}
