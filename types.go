package sortlab

// Sorter is the interface that all sortlab algorithms must satisfy.
// It provides a single Sort method that rearranges data in place into
// non-decreasing order under less.
type Sorter[E any] interface {
	// Sort sorts data in place. Comparison based algorithms order the range
	// with less; Radix ignores it and orders by numeric digit value.
	// A non-nil error means a precondition was violated or the comparator
	// panicked; the contents of data are then unspecified.
	Sort(data []E, less Less[E]) error
}

// Less is a function type for comparing two items of type E.
// It must implement a strict weak ordering: irreflexive, asymmetric and transitive.
// Returns true if a must be ordered before b in the final sorted output.
// Comparators that violate the ordering never make an algorithm crash or loop
// forever, but the resulting order is unspecified.
type Less[E any] func(a, b E) bool

// Compare is the three-way form of a comparator. It returns a negative integer
// if a should be ordered before b, zero if they are equivalent, and a positive
// integer otherwise. This follows the same semantics as cmp.Compare.
type Compare[E any] func(a, b E) int

// ToCompare derives a three-way comparator from less.
func ToCompare[E any](less Less[E]) Compare[E] {
	return func(a, b E) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// SortRange sorts the half open range [first, last) of buf with s.
// Malformed bounds are reported as a *RangeError and buf is left untouched.
func SortRange[E any](s Sorter[E], buf []E, first, last int, less Less[E]) error {
	if first < 0 || last > len(buf) || first > last {
		return &RangeError{First: first, Last: last, Len: len(buf)}
	}
	return s.Sort(buf[first:last], less)
}

// guard runs fn and converts a comparator panic into a ComparisonError.
func guard(context string, fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = NewComparisonError(r, context)
		}
	}()
	fn()
	return nil
}
