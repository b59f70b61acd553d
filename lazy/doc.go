// Package lazy provides a shared, single-transition memoization cell for
// deferred computations. A Promise starts unforced, runs its function exactly
// once on first demand, and afterwards hands every holder the identical
// recorded outcome, whether that outcome was a value or an error.
package lazy
