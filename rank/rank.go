package rank

import (
	"errors"
	"math"
	"strconv"
)

// Common errors returned by rank operations.
var (
	ErrRange    = errors.New("rank: value out of range")
	ErrInfinite = errors.New("rank: infinite rank has no finite value")
)

// MaxValue is the largest finite value a Rank can hold.
const MaxValue int64 = math.MaxInt64 - 1

// infinite is the internal sentinel for the infinite rank.
const infinite uint64 = math.MaxUint64

// Rank is a degree of disbelief: a natural number extended with infinity.
// The zero value is rank zero. Rank is an immutable value type and can be
// compared with ==.
type Rank struct {
	v uint64
}

// Zero returns rank zero, the fully normal rank.
func Zero() Rank {
	return Rank{}
}

// Infinity returns the infinite rank, marking an impossible outcome.
func Infinity() Rank {
	return Rank{v: infinite}
}

// FromValue constructs a finite rank from n. It returns ErrRange if n is
// negative or exceeds MaxValue.
func FromValue(n int64) (Rank, error) {
	if n < 0 || n > MaxValue {
		return Rank{}, ErrRange
	}
	return Rank{v: uint64(n)}, nil
}

// Must is like FromValue but panics on error. It is intended for constants
// whose validity is known at the call site.
func Must(n int64) Rank {
	r, err := FromValue(n)
	if err != nil {
		panic(err)
	}
	return r
}

// Value returns the finite value of r, or ErrInfinite for the infinite rank.
func (r Rank) Value() (int64, error) {
	if r.v == infinite {
		return 0, ErrInfinite
	}
	return int64(r.v), nil
}

// IsFinite reports whether r holds a finite value.
func (r Rank) IsFinite() bool {
	return r.v != infinite
}

// IsZero reports whether r is rank zero.
func (r Rank) IsZero() bool {
	return r.v == 0
}

// IsInfinity reports whether r is the infinite rank.
func (r Rank) IsInfinity() bool {
	return r.v == infinite
}

// Add returns r + other. Addition saturates: if either operand is infinite,
// or the sum would exceed MaxValue, the result is infinity.
func (r Rank) Add(other Rank) Rank {
	if r.v == infinite || other.v == infinite {
		return Infinity()
	}
	sum := r.v + other.v
	if sum > uint64(MaxValue) {
		return Infinity()
	}
	return Rank{v: sum}
}

// Sub returns r - other. The infinite rank minus any finite rank stays
// infinite. It returns ErrInfinite when other is infinite and ErrRange when
// the subtraction would go below zero.
func (r Rank) Sub(other Rank) (Rank, error) {
	if other.v == infinite {
		return Rank{}, ErrInfinite
	}
	if r.v == infinite {
		return Infinity(), nil
	}
	if r.v < other.v {
		return Rank{}, ErrRange
	}
	return Rank{v: r.v - other.v}, nil
}

// Compare returns -1, 0, or +1 depending on whether r is ordered before,
// equal to, or after other. Infinity compares greater than every finite rank.
func (r Rank) Compare(other Rank) int {
	switch {
	case r.v < other.v:
		return -1
	case r.v > other.v:
		return 1
	default:
		return 0
	}
}

// Less reports whether r is strictly smaller than other.
func (r Rank) Less(other Rank) bool {
	return r.v < other.v
}

// Min returns the smaller of a and b.
func Min(a, b Rank) Rank {
	if b.Less(a) {
		return b
	}
	return a
}

// Max returns the larger of a and b.
func Max(a, b Rank) Rank {
	if a.Less(b) {
		return b
	}
	return a
}

// String renders finite ranks in decimal and the infinite rank as "∞".
func (r Rank) String() string {
	if r.v == infinite {
		return "∞"
	}
	return strconv.FormatUint(r.v, 10)
}
