// Package ranking implements a lazy, rank-ordered enumeration over possible
// values: the ranking-theoretic analogue of a probability distribution. Each
// element pairs a value with a rank from package rank (0 = fully normal,
// higher = more surprising, infinite = impossible), and every Ranking
// enumerates its pairs in non-decreasing rank order.
//
// Rankings are built compositionally (singletons, explicit lists, generators,
// deferred recursive definitions) and combined with merge, conditioning and
// monadic bind while preserving two guarantees:
//
//   - order: pairs always arrive in non-decreasing rank order, with ties
//     resolved in favour of the earlier (left) operand;
//   - laziness: no user-supplied computation runs before a consumer demands
//     the position that needs it, and each position runs it at most once.
//
// The second guarantee is what lets recursive, logically infinite rankings
// (an exceptional branch defined in terms of a larger instance of itself) be
// constructed safely and consumed one element at a time.
//
// Key features:
//   - Generic over the value type, with a dynamic variant via Ranking[any]
//   - Memoized cons-cell chain: shared tails force once for all holders
//   - k-way merge and bind scheduled on a rank-keyed frontier, so branches
//     are opened only when their lower bound is globally minimal
//   - Conditioning (Observe) with incremental renormalization to rank zero
//   - Optional global deduplication keeping each value at its minimal rank
//
// Basic usage:
//
//	r := ranking.FromValuesSequential([]string{"sunny", "cloudy", "rainy"})
//	pair, err := r.First() // {"sunny", rank 0}
//
//	wet := r.Observe(func(s string) (bool, error) {
//	    return s != "sunny", nil
//	})
//	pairs, err := wet.Materialize(2) // {"cloudy", 0}, {"rainy", 1}
//
// Recursive definitions defer their tail so construction terminates:
//
//	var doubling func(v int) ranking.Ranking[int]
//	doubling = func(v int) ranking.Ranking[int] {
//	    tail := ranking.Defer(func() (ranking.Ranking[int], error) {
//	        return doubling(v * 2), nil
//	    })
//	    return ranking.Singleton(v, rank.Zero()).Merge(tail.Shift(rank.Must(1)))
//	}
//	doubling(1).Materialize(4) // 1@0, 2@1, 4@2, 8@3
//
// Errors raised by user callbacks (map functions, predicates, generators)
// surface from the forcing call (First, Materialize, iteration), never from
// construction, and are re-delivered unchanged on repeated access to the
// failed position.
package ranking
