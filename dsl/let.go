package dsl

import (
	"maps"

	"github.com/gitrdm/ranked-belief/ranking"
)

// Env carries the values bound so far in a LetStar expression. Each
// enumerated combination sees its own copy, so bodies and later bindings may
// read it freely.
type Env map[string]any

// Binding names one LetStar variable and builds its ranking of candidate
// values from the bindings before it.
type Binding struct {
	Name  string
	Build func(Env) (any, error)
}

// Bind is shorthand for a Binding whose candidates do not depend on earlier
// variables.
func Bind(name string, x any) Binding {
	return Binding{Name: name, Build: func(Env) (any, error) {
		return x, nil
	}}
}

// LetStar enumerates the bindings in order, each one seeing the values chosen
// for those before it, and runs body once per combination. Ranks combine
// additively across bindings, and the body's result is lifted with
// EnsureRanking, so a body may itself return a ranking, a thunk, or a plain
// value.
//
// Combinations arrive in rank order, earlier bindings breaking ties.
func LetStar(bindings []Binding, body func(Env) (any, error)) R {
	return letFrom(Env{}, bindings, body)
}

func letFrom(env Env, bindings []Binding, body func(Env) (any, error)) R {
	if len(bindings) == 0 {
		return ranking.Defer(func() (R, error) {
			out, err := body(env)
			if err != nil {
				return R{}, err
			}
			return EnsureRanking(out), nil
		})
	}
	b := bindings[0]
	rest := bindings[1:]
	choices := ranking.Defer(func() (R, error) {
		out, err := b.Build(env)
		if err != nil {
			return R{}, err
		}
		return EnsureRanking(out), nil
	})
	return ranking.MergeApply(choices, func(v any) (R, error) {
		next := maps.Clone(env)
		next[b.Name] = v
		return letFrom(next, rest, body), nil
	})
}
