package ranking

import (
	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

// Merge interleaves two rankings into one rank-ordered enumeration. Ties go
// to the receiver. Neither operand is forced until the merged result is.
func (r Ranking[T]) Merge(other Ranking[T]) Ranking[T] {
	return MergeAll([]Ranking[T]{r, other})
}

// MergeAll merges any number of rankings, resolving rank ties by operand
// position. The merge is fully lazy: an operand's chain is forced only once
// its rank lower bound is the smallest obligation left, so operands may be
// infinite or recursively defined.
func MergeAll[T any](rs []Ranking[T]) Ranking[T] {
	switch len(rs) {
	case 0:
		return Empty[T]()
	case 1:
		return rs[0]
	}
	f := &frontier[T]{}
	bound := rank.Infinity()
	for _, r := range rs {
		if r.head == nil {
			continue
		}
		f.push(&entry[T]{key: r.bound, seq: f.nextSeq(), kind: pendingEntry, rest: r.head})
		bound = rank.Min(bound, r.bound)
	}
	if f.len() == 0 {
		return Empty[T]()
	}
	head := lazy.Defer(func() (*node[T], error) {
		return step(f)
	})
	return Ranking[T]{head: head, bound: bound}
}

// MergeApply is monadic bind: it applies f to every value of r and merges
// the resulting rankings after shifting each one by the rank of the value
// that spawned it. The combined enumeration is rank-ordered with earlier
// source elements winning ties, and both r and the spawned rankings are
// consumed lazily: a source element is pulled, and f called on it, only when
// every rank the merge could still emit first has been ruled out.
func MergeApply[T, U any](r Ranking[T], f func(T) (Ranking[U], error)) Ranking[U] {
	source := r.chain()
	pull := func() (*opened[U], error) {
		n, err := source.Force()
		if err != nil {
			return nil, err
		}
		if n == nil {
			return nil, nil
		}
		source = n.next
		spawned, err := f(n.value)
		if err != nil {
			return nil, err
		}
		shifted := spawned.Shift(n.rank)
		return &opened[U]{
			branch:      shifted.chain(),
			branchBound: shifted.bound,
			nextBound:   n.rank,
		}, nil
	}
	fr := &frontier[U]{}
	fr.push(&entry[U]{key: r.bound, seq: fr.nextSeq(), kind: sourceEntry, pull: pull})
	head := lazy.Defer(func() (*node[U], error) {
		return step(fr)
	})
	return Ranking[U]{head: head, bound: r.bound}
}

// step advances a merge by one emitted cell. It repeatedly takes the
// minimal obligation: an open head at the global minimum is emitted, a
// pending chain at the minimum is forced and reopened at its true rank, and
// a source at the minimum is pulled to spawn its next branch. Entries
// re-enter the heap keyed by what they can still produce, so user code runs
// only for obligations that could own the next position.
func step[T any](f *frontier[T]) (*node[T], error) {
	for f.len() > 0 {
		e := f.min()
		switch e.kind {
		case openEntry:
			f.pop()
			n := e.node
			f.push(&entry[T]{key: n.rank, seq: e.seq, kind: pendingEntry, rest: n.next})
			next := lazy.Defer(func() (*node[T], error) {
				return step(f)
			})
			return &node[T]{value: n.value, rank: n.rank, next: next}, nil
		case pendingEntry:
			f.pop()
			n, err := e.rest.Force()
			if err != nil {
				return nil, err
			}
			if n == nil {
				continue
			}
			f.push(&entry[T]{key: n.rank, seq: e.seq, kind: openEntry, node: n})
		case sourceEntry:
			f.pop()
			o, err := e.pull()
			if err != nil {
				return nil, err
			}
			if o == nil {
				continue
			}
			f.push(&entry[T]{key: o.branchBound, seq: f.nextSeq(), kind: pendingEntry, rest: o.branch})
			f.push(&entry[T]{key: o.nextBound, seq: f.nextSeq(), kind: sourceEntry, pull: e.pull})
		}
	}
	return nil, nil
}
