package dsl

import (
	"errors"
	"fmt"

	"github.com/gitrdm/ranked-belief/rank"
	"github.com/gitrdm/ranked-belief/ranking"
)

// ErrNotCallable is returned when RankedApply resolves a function position
// to a value it cannot invoke.
var ErrNotCallable = errors.New("dsl: value is not callable")

// R is the dynamically typed ranking the combinators in this package
// produce and consume.
type R = ranking.Ranking[any]

// Func is the callable shape RankedApply invokes on each combination.
type Func = func(args ...any) (any, error)

// EnsureRanking lifts a value into a ranking:
//
//   - a Ranking[any] is returned as is;
//   - a nullary thunk is deferred, and its result lifted when first forced,
//     which is what makes recursive definitions terminate;
//   - anything else becomes a singleton at rank zero.
func EnsureRanking(x any) R {
	switch v := x.(type) {
	case R:
		return v
	case func() (any, error):
		return ranking.Defer(func() (R, error) {
			out, err := v()
			if err != nil {
				return R{}, err
			}
			return EnsureRanking(out), nil
		})
	case func() any:
		return ranking.Defer(func() (R, error) {
			return EnsureRanking(v()), nil
		})
	default:
		return ranking.Singleton[any](x, rank.Zero())
	}
}

// NormalExceptional builds the ranking that is normally normal and
// exceptionally exceptional. Both operands are lifted with EnsureRanking;
// the exceptional side is shifted by the offset (default 1) before merging,
// so its outcomes start one degree more surprising than the normal side's.
func NormalExceptional(normal, exceptional any, opts ...Option) R {
	cfg := newConfig(opts)
	out := EnsureRanking(normal).Merge(EnsureRanking(exceptional).Shift(cfg.offset))
	if cfg.dedup {
		out = out.Dedup()
	}
	return out
}

// EitherOf returns all given values at rank zero, equally unsurprising.
func EitherOf(values ...any) R {
	return ranking.FromValuesUniform(values)
}

// EitherOr lifts every argument and merges them, keeping each argument's own
// ranks. Ties resolve left to right.
func EitherOr(xs ...any) R {
	rs := make([]R, len(xs))
	for i, x := range xs {
		rs[i] = EnsureRanking(x)
	}
	return ranking.MergeAll(rs)
}

// Observe lifts x and conditions it on pred.
func Observe(x any, pred func(any) (bool, error)) R {
	return EnsureRanking(x).Observe(pred)
}

// ObserveValue lifts x and conditions it on equality with target.
func ObserveValue(x, target any) R {
	return EnsureRanking(x).ObserveValue(target)
}

// MergeApply lifts x, applies f to each of its values and flattens the
// lifted results, combining ranks additively.
func MergeApply(x any, f func(any) (any, error)) R {
	return ranking.MergeApply(EnsureRanking(x), func(v any) (R, error) {
		out, err := f(v)
		if err != nil {
			return R{}, err
		}
		return EnsureRanking(out), nil
	})
}

// RankedApply enumerates every combination of callable and arguments, ranks
// combined, and yields the call's result at the combination's rank. The
// function position and each argument are lifted, and combinations are
// explored left to right: function first, then arguments in order, with
// earlier positions winning rank ties.
//
// Each resolved function position must be a Func; anything else fails the
// affected combinations with ErrNotCallable when they are forced.
func RankedApply(fn any, args ...any) R {
	combos := ranking.Map(EnsureRanking(fn), func(f any) ([]any, error) {
		return []any{f}, nil
	})
	for _, arg := range args {
		lifted := EnsureRanking(arg)
		combos = ranking.MergeApply(combos, func(sofar []any) (ranking.Ranking[[]any], error) {
			return ranking.Map(lifted, func(v any) ([]any, error) {
				next := make([]any, len(sofar)+1)
				copy(next, sofar)
				next[len(sofar)] = v
				return next, nil
			}), nil
		})
	}
	return ranking.MergeApply(combos, func(sofar []any) (R, error) {
		f, ok := sofar[0].(Func)
		if !ok {
			return R{}, fmt.Errorf("%w: %T", ErrNotCallable, sofar[0])
		}
		out, err := f(sofar[1:]...)
		if err != nil {
			return R{}, err
		}
		return ranking.Singleton(out, rank.Zero()), nil
	})
}

// TakeN lifts x and forces its first n pairs.
func TakeN(x any, n int) ([]ranking.Pair[any], error) {
	return EnsureRanking(x).Materialize(n)
}
