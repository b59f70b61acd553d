package ranking

import (
	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

// First returns the least surprising pair. It forces exactly one element and
// returns ErrEmpty if there is none.
func (r Ranking[T]) First() (Pair[T], error) {
	n, err := r.forceHead()
	if err != nil {
		return Pair[T]{}, err
	}
	if n == nil {
		return Pair[T]{}, ErrEmpty
	}
	return Pair[T]{Value: n.value, Rank: n.rank}, nil
}

// MostNormal returns the value of the least surprising pair.
func (r Ranking[T]) MostNormal() (T, error) {
	p, err := r.First()
	if err != nil {
		var zero T
		return zero, err
	}
	return p.Value, nil
}

// IsEmpty reports whether the ranking enumerates nothing. It may force the
// first element to find out.
func (r Ranking[T]) IsEmpty() (bool, error) {
	n, err := r.forceHead()
	if err != nil {
		return false, err
	}
	return n == nil, nil
}

// Take keeps the first n pairs. The result is finite and never forces the
// source beyond position n-1.
func (r Ranking[T]) Take(n int) Ranking[T] {
	if n <= 0 {
		return Empty[T]()
	}
	return Ranking[T]{head: takeNode(r.chain(), n), bound: r.bound}
}

func takeNode[T any](p *lazy.Promise[*node[T]], remaining int) *lazy.Promise[*node[T]] {
	return lazy.Defer(func() (*node[T], error) {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		next := lazy.Resolved[*node[T]](nil)
		if remaining > 1 {
			next = takeNode(n.next, remaining-1)
		}
		return &node[T]{value: n.value, rank: n.rank, next: next}, nil
	})
}

// TakeWhileRank keeps the leading pairs whose rank does not exceed limit.
// Because the chain is rank-ordered the result ends at the first pair above
// the limit, and later positions are never forced.
func (r Ranking[T]) TakeWhileRank(limit rank.Rank) Ranking[T] {
	return Ranking[T]{head: whileNode(r.chain(), limit), bound: r.bound}
}

func whileNode[T any](p *lazy.Promise[*node[T]], limit rank.Rank) *lazy.Promise[*node[T]] {
	return lazy.Defer(func() (*node[T], error) {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil || limit.Less(n.rank) {
			return nil, nil
		}
		return &node[T]{value: n.value, rank: n.rank, next: whileNode(n.next, limit)}, nil
	})
}

// Materialize forces up to n pairs into a slice. It stops early when the
// ranking is exhausted and returns the first error a forced position
// produced.
func (r Ranking[T]) Materialize(n int) ([]Pair[T], error) {
	if n <= 0 {
		return nil, nil
	}
	out := make([]Pair[T], 0, n)
	p := r.chain()
	for len(out) < n {
		cell, err := p.Force()
		if err != nil {
			return nil, err
		}
		if cell == nil {
			break
		}
		out = append(out, Pair[T]{Value: cell.value, Rank: cell.rank})
		p = cell.next
	}
	return out, nil
}
