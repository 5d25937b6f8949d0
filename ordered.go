package sortlab

import (
	"cmp"
	"fmt"
	"strings"
)

// OrderedLess returns the default benchmark comparator, the < operator over E.
func OrderedLess[E cmp.Ordered]() Less[E] {
	return func(a, b E) bool { return a < b }
}

// Reverse returns a comparator ordering items in the opposite direction of less.
func Reverse[E any](less Less[E]) Less[E] {
	return func(a, b E) bool { return less(b, a) }
}

// maxContractSample bounds the O(n^3) transitivity probe
const maxContractSample = 64

// CheckStrictWeakOrder probes less over sample for irreflexivity, asymmetry and
// transitivity (of both the order and the induced equivalence). Only the first
// 64 elements are examined. A violation is reported as a *ContractError.
func CheckStrictWeakOrder[E any](sample []E, less Less[E]) (err error) {
	if len(sample) > maxContractSample {
		sample = sample[:maxContractSample]
	}
	defer func() {
		if r := recover(); r != nil {
			err = NewComparisonError(r, "CheckStrictWeakOrder")
		}
	}()
	equiv := func(a, b E) bool { return !less(a, b) && !less(b, a) }

	for i, a := range sample {
		if less(a, a) {
			return NewContractError("comparator", "not irreflexive at index %d", i)
		}
		for j, b := range sample {
			if less(a, b) && less(b, a) {
				return NewContractError("comparator", "not asymmetric for indexes %d and %d", i, j)
			}
		}
	}
	for i, a := range sample {
		for j, b := range sample {
			for k, c := range sample {
				if less(a, b) && less(b, c) && !less(a, c) {
					return NewContractError("comparator", "not transitive for indexes %d, %d, %d", i, j, k)
				}
				if equiv(a, b) && equiv(b, c) && !equiv(a, c) {
					return NewContractError("comparator", "equivalence not transitive for indexes %d, %d, %d", i, j, k)
				}
			}
		}
	}
	return nil
}

// Format prints the range as "[ a b c ]".
func Format[E any](data []E) string {
	var b strings.Builder
	b.WriteString("[ ")
	for _, v := range data {
		fmt.Fprintf(&b, "%v ", v)
	}
	b.WriteString("]")
	return b.String()
}
