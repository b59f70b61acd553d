package ranking

import (
	"github.com/gitrdm/ranked-belief/lazy"
	"github.com/gitrdm/ranked-belief/rank"
)

// entryKind says what obligation a frontier entry represents.
type entryKind uint8

const (
	// openEntry holds an already-forced head cell awaiting emission.
	openEntry entryKind = iota
	// pendingEntry holds an unforced chain whose first rank is known to be
	// at least key.
	pendingEntry
	// sourceEntry holds the unopened continuation of a bind source: pulling
	// it forces one source element and spawns its branch.
	sourceEntry
)

// entry is one scheduled obligation in a merge. key is the lower bound on
// anything the obligation can still produce; seq breaks ties in favour of
// earlier operands and keeps a chain's elements ahead of later arrivals at
// the same rank.
type entry[T any] struct {
	key  rank.Rank
	seq  uint64
	kind entryKind

	node *node[T]                   // openEntry
	rest *lazy.Promise[*node[T]]    // pendingEntry
	pull func() (*opened[T], error) // sourceEntry
}

// opened describes what pulling a bind source produced: the spawned branch
// chain, its rank lower bound, and the bound on whatever the source yields
// next. A nil opened means the source is exhausted.
type opened[T any] struct {
	branch      *lazy.Promise[*node[T]]
	branchBound rank.Rank
	nextBound   rank.Rank
}

// frontier is a binary min-heap of entries ordered by (key, seq). Merges
// force nothing until its key is the global minimum, which is what keeps
// recursive rankings from being unwound eagerly.
type frontier[T any] struct {
	entries []*entry[T]
	seq     uint64
}

func (f *frontier[T]) nextSeq() uint64 {
	s := f.seq
	f.seq++
	return s
}

func (f *frontier[T]) less(a, b *entry[T]) bool {
	if c := a.key.Compare(b.key); c != 0 {
		return c < 0
	}
	return a.seq < b.seq
}

func (f *frontier[T]) len() int {
	return len(f.entries)
}

func (f *frontier[T]) min() *entry[T] {
	return f.entries[0]
}

func (f *frontier[T]) push(e *entry[T]) {
	f.entries = append(f.entries, e)
	f.up(len(f.entries) - 1)
}

func (f *frontier[T]) pop() *entry[T] {
	top := f.entries[0]
	last := len(f.entries) - 1
	f.entries[0] = f.entries[last]
	f.entries[last] = nil
	f.entries = f.entries[:last]
	if last > 0 {
		f.down(0)
	}
	return top
}

func (f *frontier[T]) up(i int) {
	for i > 0 {
		parent := (i - 1) / 2
		if !f.less(f.entries[i], f.entries[parent]) {
			break
		}
		f.entries[i], f.entries[parent] = f.entries[parent], f.entries[i]
		i = parent
	}
}

func (f *frontier[T]) down(i int) {
	n := len(f.entries)
	for {
		left := 2*i + 1
		if left >= n {
			break
		}
		smallest := left
		if right := left + 1; right < n && f.less(f.entries[right], f.entries[left]) {
			smallest = right
		}
		if !f.less(f.entries[smallest], f.entries[i]) {
			break
		}
		f.entries[i], f.entries[smallest] = f.entries[smallest], f.entries[i]
		i = smallest
	}
}
