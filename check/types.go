package check

import "fmt"

// Delta represents the type of difference found when comparing two ranges
// as multisets. It indicates whether an item is only in the first range
// (Missing from the second) or only in the second range (Extra).
type Delta int

const (
	// Extra indicates an item that exists only in the second range (B).
	// For a sort result this is a value the algorithm invented.
	Extra Delta = iota // +

	// Missing indicates an item that exists only in the first range (A).
	// For a sort result this is a value the algorithm lost.
	Missing // -
)

func (d Delta) String() string {
	switch d {
	case Extra:
		return ">"
	case Missing:
		return "<"
	default:
		return "?"
	}
}

// CompareFunc returns a negative integer, zero, or a positive integer when a
// orders before, equal to, or after b. It has the semantics of cmp.Compare.
type CompareFunc[T any] func(a, b T) int

// LessFunc reports whether a must be ordered before b.
type LessFunc[T any] func(a, b T) bool

// ResultFunc is called once for each item that appears in only one of the
// two ranges. Returning an error stops the comparison.
type ResultFunc[T any] func(Delta, T) error

// Result contains counts describing the multiset difference of two ranges.
type Result struct {
	// Missing is the count of items that exist only in range A
	Missing uint64

	// Extra is the count of items that exist only in range B
	Extra uint64

	// TotalA is the total count of items processed from range A
	TotalA uint64

	// TotalB is the total count of items processed from range B
	TotalB uint64

	// Common is the count of items that exist in both ranges
	Common uint64
}

// Equal reports whether both ranges held the same multiset
func (r *Result) Equal() bool {
	return r.Missing == 0 && r.Extra == 0
}

func (r *Result) String() string {
	return fmt.Sprintf("A: %d/%d\tB: %d/%d\tC: %d", r.Missing, r.TotalA, r.Extra, r.TotalB, r.Common)
}
