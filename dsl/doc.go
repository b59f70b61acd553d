// Package dsl is a dynamically typed convenience layer over package ranking.
// It mirrors the vocabulary of ranked programming: expressions are plain Go
// values, thunks, or rankings, and every combinator lifts its inputs with
// EnsureRanking before composing them.
//
// The central combinator is NormalExceptional: a value that is normally one
// thing and exceptionally another, with the exceptional branch pushed one
// rank further by default. Because thunks are lifted lazily, the exceptional
// branch may recursively mention the expression being defined:
//
//	var count func(from int) dsl.R
//	count = func(from int) dsl.R {
//	    return dsl.NormalExceptional(from, func() any { return count(from + 1) })
//	}
//	pairs, _ := dsl.TakeN(count(0), 3) // 0@0, 1@1, 2@2
//
// Combinators never panic and force nothing at construction: errors from
// thunks, predicates and callables surface when results are demanded.
package dsl
