package ranking

import (
	"github.com/google/btree"

	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

// Empty returns a ranking that enumerates nothing.
func Empty[T any]() Ranking[T] {
	return Ranking[T]{}
}

// Singleton returns a ranking holding exactly one value at the given rank.
func Singleton[T any](value T, r rank.Rank) Ranking[T] {
	cell := &node[T]{value: value, rank: r, next: lazy.Resolved[*node[T]](nil)}
	return Ranking[T]{head: lazy.Resolved(cell), bound: r}
}

// FromValuesSequential ranks the given values 0, 1, 2, ... in slice order.
func FromValuesSequential[T any](values []T) Ranking[T] {
	pairs := make([]Pair[T], len(values))
	for i, v := range values {
		pairs[i] = Pair[T]{Value: v, Rank: rank.Must(int64(i))}
	}
	return fromSorted(pairs)
}

// FromValuesUniform ranks every given value 0, preserving slice order for
// tie-breaking.
func FromValuesUniform[T any](values []T) Ranking[T] {
	pairs := make([]Pair[T], len(values))
	for i, v := range values {
		pairs[i] = Pair[T]{Value: v}
	}
	return fromSorted(pairs)
}

// listItem keys a pair by (rank, insertion order) inside the sorting tree.
type listItem[T any] struct {
	pair Pair[T]
	seq  int
}

// FromList builds a ranking from explicit pairs. The input need not be
// sorted: pairs are ordered by rank on first demand, with the original slice
// order deciding ties. The slice is copied, so later caller mutations do not
// leak into the ranking.
func FromList[T any](pairs []Pair[T]) Ranking[T] {
	if len(pairs) == 0 {
		return Empty[T]()
	}
	items := make([]Pair[T], len(pairs))
	copy(items, pairs)

	bound := items[0].Rank
	for _, p := range items[1:] {
		bound = rank.Min(bound, p.Rank)
	}

	head := lazy.Defer(func() (*node[T], error) {
		tree := btree.NewG(2, func(a, b listItem[T]) bool {
			if c := a.pair.Rank.Compare(b.pair.Rank); c != 0 {
				return c < 0
			}
			return a.seq < b.seq
		})
		for i, p := range items {
			tree.ReplaceOrInsert(listItem[T]{pair: p, seq: i})
		}
		sorted := make([]Pair[T], 0, tree.Len())
		tree.Ascend(func(it listItem[T]) bool {
			sorted = append(sorted, it.pair)
			return true
		})
		return pairsNode(sorted, 0)
	})
	return Ranking[T]{head: head, bound: bound}
}

// fromSorted wraps pairs already in non-decreasing rank order.
func fromSorted[T any](pairs []Pair[T]) Ranking[T] {
	if len(pairs) == 0 {
		return Empty[T]()
	}
	head := lazy.Defer(func() (*node[T], error) {
		return pairsNode(pairs, 0)
	})
	return Ranking[T]{head: head, bound: pairs[0].Rank}
}

func pairsNode[T any](pairs []Pair[T], i int) (*node[T], error) {
	if i >= len(pairs) {
		return nil, nil
	}
	next := lazy.Defer(func() (*node[T], error) {
		return pairsNode(pairs, i+1)
	})
	return &node[T]{value: pairs[i].Value, rank: pairs[i].Rank, next: next}, nil
}

// FromGenerator builds a logically infinite ranking from an indexed
// generator. The generator is called with 0, 1, 2, ... as elements are
// demanded; nothing is called at construction time, and each index is called
// at most once.
//
// Generators must yield non-decreasing ranks. The first violation surfaces
// as ErrOutOfOrder from the forcing call, and the chain ends there.
func FromGenerator[T any](f func(i int) (T, rank.Rank, error)) Ranking[T] {
	return Ranking[T]{head: generatorNode(f, 0, rank.Zero())}
}

func generatorNode[T any](f func(i int) (T, rank.Rank, error), i int, floor rank.Rank) *lazy.Promise[*node[T]] {
	return lazy.Defer(func() (*node[T], error) {
		v, r, err := f(i)
		if err != nil {
			return nil, err
		}
		if r.Less(floor) {
			return nil, ErrOutOfOrder
		}
		return &node[T]{value: v, rank: r, next: generatorNode(f, i+1, r)}, nil
	})
}

// Defer wraps a ranking that does not exist yet. fn runs once, at the moment
// the first element is demanded, and its result is enumerated in place. This
// is the knot-tying constructor for recursive rankings: the exceptional
// branch of a definition can refer back to the definition itself as long as
// it does so through Defer.
func Defer[T any](fn func() (Ranking[T], error)) Ranking[T] {
	head := lazy.Defer(func() (*node[T], error) {
		r, err := fn()
		if err != nil {
			return nil, err
		}
		return r.forceHead()
	})
	return Ranking[T]{head: head}
}
