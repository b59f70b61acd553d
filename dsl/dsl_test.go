package dsl_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitrdm/ranked-belief/dsl"
	"github.com/gitrdm/ranked-belief/rank"
	"github.com/gitrdm/ranked-belief/ranking"
)

func pairs(t *testing.T, r dsl.R, n int) []ranking.Pair[any] {
	t.Helper()
	out, err := r.Materialize(n)
	require.NoError(t, err)
	return out
}

func values(ps []ranking.Pair[any]) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		out[i] = p.Value
	}
	return out
}

func rankOf(t *testing.T, r rank.Rank) int64 {
	t.Helper()
	v, err := r.Value()
	require.NoError(t, err)
	return v
}

func TestEnsureRankingPassesRankingsThrough(t *testing.T) {
	r := ranking.FromValuesSequential([]any{"a", "b"})
	assert.Equal(t, pairs(t, r, 5), pairs(t, dsl.EnsureRanking(r), 5))
}

func TestEnsureRankingWrapsPlainValues(t *testing.T) {
	got := pairs(t, dsl.EnsureRanking(42), 5)
	require.Len(t, got, 1)
	assert.Equal(t, 42, got[0].Value)
	assert.True(t, got[0].Rank.IsZero())
}

func TestEnsureRankingDefersThunks(t *testing.T) {
	calls := 0
	r := dsl.EnsureRanking(func() any {
		calls++
		return dsl.EitherOf("x", "y")
	})
	assert.Zero(t, calls, "lifting a thunk must not invoke it")

	assert.Equal(t, []any{"x", "y"}, values(pairs(t, r, 5)))
	pairs(t, r, 5)
	assert.Equal(t, 1, calls)
}

func TestEnsureRankingThunkError(t *testing.T) {
	boom := errors.New("thunk failed")
	r := dsl.EnsureRanking(func() (any, error) {
		return nil, boom
	})

	_, err := r.First()
	assert.ErrorIs(t, err, boom)
}

func TestNormalExceptional(t *testing.T) {
	r := dsl.NormalExceptional("works", "fails")

	got := pairs(t, r, 5)
	require.Len(t, got, 2)
	assert.Equal(t, "works", got[0].Value)
	assert.EqualValues(t, 0, rankOf(t, got[0].Rank))
	assert.Equal(t, "fails", got[1].Value)
	assert.EqualValues(t, 1, rankOf(t, got[1].Rank))
}

func TestNormalExceptionalWithOffset(t *testing.T) {
	r := dsl.NormalExceptional("works", "fails", dsl.WithOffset(rank.Must(3)))

	got := pairs(t, r, 5)
	require.Len(t, got, 2)
	assert.EqualValues(t, 3, rankOf(t, got[1].Rank))
}

func TestNormalExceptionalWithDedup(t *testing.T) {
	r := dsl.NormalExceptional(dsl.EitherOf("a", "b"), "a", dsl.WithDedup())

	got := pairs(t, r, 5)
	assert.Equal(t, []any{"a", "b"}, values(got))
}

func TestNormalExceptionalNests(t *testing.T) {
	r := dsl.NormalExceptional("a", dsl.NormalExceptional("b", "c"))

	got := pairs(t, r, 5)
	assert.Equal(t, []any{"a", "b", "c"}, values(got))
	assert.EqualValues(t, 2, rankOf(t, got[2].Rank))
}

func TestNormalExceptionalRecursion(t *testing.T) {
	var doubling func(v int) dsl.R
	doubling = func(v int) dsl.R {
		return dsl.NormalExceptional(v, func() any {
			return doubling(v * 2)
		})
	}

	got := pairs(t, doubling(1), 4)
	assert.Equal(t, []any{1, 2, 4, 8}, values(got))
	assert.EqualValues(t, 3, rankOf(t, got[3].Rank))
}

func TestEitherOf(t *testing.T) {
	got := pairs(t, dsl.EitherOf("red", "green", "blue"), 5)
	assert.Equal(t, []any{"red", "green", "blue"}, values(got))
	for _, p := range got {
		assert.True(t, p.Rank.IsZero())
	}
}

func TestEitherOrKeepsOperandRanks(t *testing.T) {
	r := dsl.EitherOr(
		dsl.NormalExceptional("a", "b"),
		dsl.NormalExceptional("c", "d", dsl.WithOffset(rank.Must(2))),
	)

	got := pairs(t, r, 10)
	assert.Equal(t, []any{"a", "c", "b", "d"}, values(got))
}

func TestObserve(t *testing.T) {
	r := dsl.Observe(dsl.EitherOr("a", dsl.NormalExceptional("b", "c")), func(v any) (bool, error) {
		return v != "a", nil
	})

	got := pairs(t, r, 10)
	assert.Equal(t, []any{"b", "c"}, values(got))
	assert.True(t, got[0].Rank.IsZero())
}

func TestObserveValue(t *testing.T) {
	r := dsl.ObserveValue(dsl.EitherOf(1, 2, 3), 2)

	got := pairs(t, r, 10)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Value)
}

func TestMergeApplyLiftsResults(t *testing.T) {
	r := dsl.MergeApply(dsl.NormalExceptional(1, 2), func(v any) (any, error) {
		return dsl.NormalExceptional(v.(int)*10, v.(int)*100), nil
	})

	got := pairs(t, r, 10)
	assert.Equal(t, []any{10, 100, 20, 200}, values(got))
	assert.EqualValues(t, 2, rankOf(t, got[3].Rank))
}

func TestMergeApplyPlainResults(t *testing.T) {
	r := dsl.MergeApply(dsl.EitherOf(1, 2), func(v any) (any, error) {
		return v.(int) + 1, nil
	})

	assert.Equal(t, []any{2, 3}, values(pairs(t, r, 10)))
}

func TestRankedApply(t *testing.T) {
	addTen := dsl.Func(func(args ...any) (any, error) {
		return args[0].(int) + 10, nil
	})
	subTen := dsl.Func(func(args ...any) (any, error) {
		return args[0].(int) - 10, nil
	})

	r := dsl.RankedApply(dsl.NormalExceptional(addTen, subTen), 5)

	got := pairs(t, r, 10)
	assert.Equal(t, []any{15, -5}, values(got))
	assert.EqualValues(t, 1, rankOf(t, got[1].Rank))
}

func TestRankedApplyRankedArguments(t *testing.T) {
	add := dsl.Func(func(args ...any) (any, error) {
		return args[0].(int) + args[1].(int), nil
	})

	r := dsl.RankedApply(add, dsl.NormalExceptional(1, 2), dsl.NormalExceptional(10, 20))

	got := pairs(t, r, 10)
	assert.Equal(t, []any{11, 21, 12, 22}, values(got))
	assert.EqualValues(t, 2, rankOf(t, got[3].Rank))
}

func TestRankedApplyNotCallable(t *testing.T) {
	r := dsl.RankedApply(42, 1)

	_, err := r.First()
	assert.ErrorIs(t, err, dsl.ErrNotCallable)
}

func TestRankedApplyPropagatesCallError(t *testing.T) {
	boom := errors.New("call failed")
	fail := dsl.Func(func(args ...any) (any, error) {
		return nil, boom
	})

	_, err := dsl.RankedApply(fail, 1).First()
	assert.ErrorIs(t, err, boom)
}

func TestTakeN(t *testing.T) {
	got, err := dsl.TakeN(dsl.NormalExceptional("a", "b"), 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a", got[0].Value)
}
