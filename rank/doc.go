// Package rank implements the extended natural numbers used to grade how
// surprising an outcome is. Rank zero is fully normal, higher ranks are
// increasingly exceptional, and the distinguished infinite rank marks an
// outcome as impossible.
//
// Ranks form a totally ordered, saturating arithmetic: addition never
// overflows but caps at infinity, and infinity compares strictly greater
// than every finite rank. Values are immutable and comparable with ==.
//
// Basic usage:
//
//	r, err := rank.FromValue(2)
//	if err != nil {
//	    // value was negative or above rank.MaxValue
//	}
//	total := r.Add(rank.Must(1)) // rank 3
//	if total.Less(rank.Infinity()) {
//	    fmt.Println(total) // "3"
//	}
//
// The zero value of Rank is rank zero, so ranks embed naturally in structs
// without explicit initialisation.
package rank
