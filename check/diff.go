// Package check verifies the output of sorting algorithms: that a range is
// ordered and that it holds exactly the elements of the input.
package check

import (
	"fmt"
	"slices"
)

// Diff compares ranges a and b as multisets. Both are copied and sorted with
// compare, then walked in lock step; resultFunc (which may be nil) is called
// for every item found in only one of them. Neither input is modified.
func Diff[T any](a, b []T, compare CompareFunc[T], resultFunc ResultFunc[T]) (r Result, err error) {
	if compare == nil {
		return Result{}, fmt.Errorf("compare must not be nil")
	}
	if resultFunc == nil {
		resultFunc = func(Delta, T) error { return nil }
	}
	sa := slices.Clone(a)
	sb := slices.Clone(b)
	slices.SortFunc(sa, compare)
	slices.SortFunc(sb, compare)

	i, j := 0, 0
	for i < len(sa) && j < len(sb) {
		c := compare(sa[i], sb[j])
		switch {
		case c > 0:
			r.TotalB++
			r.Extra++
			if err = resultFunc(Extra, sb[j]); err != nil {
				return
			}
			j++
		case c < 0:
			r.TotalA++
			r.Missing++
			if err = resultFunc(Missing, sa[i]); err != nil {
				return
			}
			i++
		default:
			r.Common++
			r.TotalA++
			r.TotalB++
			i++
			j++
		}
	}
	// if only A has data left
	for ; i < len(sa); i++ {
		r.TotalA++
		r.Missing++
		if err = resultFunc(Missing, sa[i]); err != nil {
			return
		}
	}
	// if only B has data left
	for ; j < len(sb); j++ {
		r.TotalB++
		r.Extra++
		if err = resultFunc(Extra, sb[j]); err != nil {
			return
		}
	}
	return
}

// Permutation reports whether b holds exactly the elements of a.
func Permutation[T any](a, b []T, compare CompareFunc[T]) bool {
	if len(a) != len(b) {
		return false
	}
	r, err := Diff(a, b, compare, nil)
	return err == nil && r.Equal()
}

// PrintDiff is a ResultFunc that prints each difference to stdout,
// prefixed with the Delta symbol (< for Missing, > for Extra).
func PrintDiff[T any](d Delta, v T) error {
	_, err := fmt.Printf("%s %v\n", d, v)
	return err
}
