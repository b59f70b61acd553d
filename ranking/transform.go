package ranking

import (
	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

// Map transforms each value while keeping its rank. f runs lazily, when the
// element holding its result is first forced, and its error fails the chain
// at that position.
func Map[T, U any](r Ranking[T], f func(T) (U, error)) Ranking[U] {
	return Ranking[U]{head: mapNode(r.chain(), f), bound: r.bound}
}

func mapNode[T, U any](p *lazy.Promise[*node[T]], f func(T) (U, error)) *lazy.Promise[*node[U]] {
	return lazy.Defer(func() (*node[U], error) {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		u, err := f(n.value)
		if err != nil {
			return nil, err
		}
		return &node[U]{value: u, rank: n.rank, next: mapNode(n.next, f)}, nil
	})
}

// MapWithRank transforms value and rank together. The returned ranks must be
// non-decreasing along the chain or downstream order guarantees are lost;
// callers that cannot promise this should route the result through FromList.
func MapWithRank[T, U any](r Ranking[T], f func(T, rank.Rank) (U, rank.Rank, error)) Ranking[U] {
	return Ranking[U]{head: mapRankNode(r.chain(), f)}
}

func mapRankNode[T, U any](p *lazy.Promise[*node[T]], f func(T, rank.Rank) (U, rank.Rank, error)) *lazy.Promise[*node[U]] {
	return lazy.Defer(func() (*node[U], error) {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		u, nr, err := f(n.value, n.rank)
		if err != nil {
			return nil, err
		}
		return &node[U]{value: u, rank: nr, next: mapRankNode(n.next, f)}, nil
	})
}

// MapWithIndex transforms each value given its zero-based position in the
// enumeration, keeping ranks unchanged.
func MapWithIndex[T, U any](r Ranking[T], f func(i int, v T) (U, error)) Ranking[U] {
	return Ranking[U]{head: mapIndexNode(r.chain(), f, 0), bound: r.bound}
}

func mapIndexNode[T, U any](p *lazy.Promise[*node[T]], f func(int, T) (U, error), i int) *lazy.Promise[*node[U]] {
	return lazy.Defer(func() (*node[U], error) {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		u, err := f(i, n.value)
		if err != nil {
			return nil, err
		}
		return &node[U]{value: u, rank: n.rank, next: mapIndexNode(n.next, f, i+1)}, nil
	})
}

// Observe conditions the ranking on pred: values failing it are discarded,
// and the survivors are renormalized so the least surprising one sits at
// rank zero again. Renormalization is incremental, so conditioning an
// infinite ranking stays lazy.
//
// Infinitely ranked pairs never satisfy an observation. The scan stops at
// the first one, since every pair after it is infinite too. Observing away
// every finite pair yields an empty ranking, not an error.
func (r Ranking[T]) Observe(pred func(T) (bool, error)) Ranking[T] {
	head := lazy.Defer(func() (*node[T], error) {
		n, base, err := survivor(r.chain(), pred)
		if err != nil || n == nil {
			return nil, err
		}
		return &node[T]{value: n.value, rank: rank.Zero(), next: survivorNode(n.next, pred, base)}, nil
	})
	return Ranking[T]{head: head}
}

// Filter is Observe under its sequence-processing name.
func (r Ranking[T]) Filter(pred func(T) (bool, error)) Ranking[T] {
	return r.Observe(pred)
}

// ObserveValue conditions on equality with target. Values are compared as
// interfaces, so the dynamic types involved must be comparable.
func (r Ranking[T]) ObserveValue(target T) Ranking[T] {
	return r.Observe(func(v T) (bool, error) {
		return any(v) == any(target), nil
	})
}

// survivor scans forward to the first finitely ranked pair satisfying pred,
// returning it along with its original rank.
func survivor[T any](p *lazy.Promise[*node[T]], pred func(T) (bool, error)) (*node[T], rank.Rank, error) {
	for {
		n, err := p.Force()
		if err != nil {
			return nil, rank.Rank{}, err
		}
		if n == nil || n.rank.IsInfinity() {
			return nil, rank.Rank{}, nil
		}
		ok, err := pred(n.value)
		if err != nil {
			return nil, rank.Rank{}, err
		}
		if ok {
			return n, n.rank, nil
		}
		p = n.next
	}
}

func survivorNode[T any](p *lazy.Promise[*node[T]], pred func(T) (bool, error), base rank.Rank) *lazy.Promise[*node[T]] {
	return lazy.Defer(func() (*node[T], error) {
		n, _, err := survivor(p, pred)
		if err != nil || n == nil {
			return nil, err
		}
		shifted, err := n.rank.Sub(base)
		if err != nil {
			return nil, err
		}
		return &node[T]{value: n.value, rank: shifted, next: survivorNode(n.next, pred, base)}, nil
	})
}

// Dedup drops every repetition of a value already enumerated, keeping the
// first occurrence only. Because the chain is rank-ordered, that occurrence
// is the value's minimal rank, whether or not the repetitions were adjacent.
// Values are tracked in a map keyed on the value as an interface, so the
// dynamic types involved must be valid map keys.
func (r Ranking[T]) Dedup() Ranking[T] {
	head := lazy.Defer(func() (*node[T], error) {
		return dedupNode(r.chain(), make(map[any]struct{}))
	})
	return Ranking[T]{head: head, bound: r.bound}
}

func dedupNode[T any](p *lazy.Promise[*node[T]], seen map[any]struct{}) (*node[T], error) {
	for {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		if _, dup := seen[any(n.value)]; !dup {
			seen[any(n.value)] = struct{}{}
			rest := n.next
			next := lazy.Defer(func() (*node[T], error) {
				return dedupNode(rest, seen)
			})
			return &node[T]{value: n.value, rank: n.rank, next: next}, nil
		}
		p = n.next
	}
}

// Shift adds d to every rank, pushing the whole ranking further into the
// exceptional. Shifting by infinity marks everything impossible; shifting an
// already infinite rank leaves it infinite.
func (r Ranking[T]) Shift(d rank.Rank) Ranking[T] {
	if d == rank.Zero() {
		return r
	}
	return Ranking[T]{head: shiftNode(r.chain(), d), bound: r.bound.Add(d)}
}

func shiftNode[T any](p *lazy.Promise[*node[T]], d rank.Rank) *lazy.Promise[*node[T]] {
	return lazy.Defer(func() (*node[T], error) {
		n, err := p.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		return &node[T]{value: n.value, rank: n.rank.Add(d), next: shiftNode(n.next, d)}, nil
	})
}
