package sortlab

import (
	"golang.org/x/exp/constraints"
)

const (
	// DefaultRadixBase is the digit base used when Radix.Base is unset
	DefaultRadixBase = 10
	// MaxRadixBase bounds the number of buckets allocated per pass
	MaxRadixBase = 1 << 16
)

// Radix implements a least significant digit (LSD) radix sort for non-negative
// integer keys. It needs no comparator: each pass distributes the range into
// Base buckets by one digit and concatenates them back, and since every pass
// is stable the range is ordered after as many passes as the largest key has
// digits. Complexity is O(digits * (n + Base)).
//
// Buckets are pooled and reused across passes and calls, so a Radix must not
// be copied after first use; use NewRadix or a pointer to a zero value.
type Radix[E constraints.Integer] struct {
	// Base is the digit base, DefaultRadixBase when zero
	Base int

	buckets bucketPool[E]
}

// NewRadix creates a Radix sorter using the given digit base.
func NewRadix[E constraints.Integer](base int) *Radix[E] {
	return &Radix[E]{Base: base}
}

// base validates the configured base against the range of E
func (r *Radix[E]) base() (int, error) {
	base := r.Base
	if base == 0 {
		base = DefaultRadixBase
	}
	if base < 2 || base > MaxRadixBase {
		return 0, NewContractError("radix", "base %d outside [2,%d]", base, MaxRadixBase)
	}
	if E(base) <= 1 || int(E(base)) != base {
		return 0, NewContractError("radix", "base %d not representable in element type", base)
	}
	return base, nil
}

// Sort orders data by numeric value. The comparator is ignored. Negative keys
// violate the precondition and are reported before any element is moved.
func (r *Radix[E]) Sort(data []E, _ Less[E]) error {
	base, err := r.base()
	if err != nil {
		return err
	}
	if len(data) < 2 {
		return nil
	}

	maxKey := data[0]
	uniform := true
	for i, v := range data {
		if v < 0 {
			return NewContractError("radix", "negative key %v at index %d", v, i)
		}
		if v > maxKey {
			maxKey = v
		}
		if v != data[0] {
			uniform = false
		}
	}
	if uniform {
		return nil
	}

	passes := digitCount(maxKey, E(base))
	buckets := r.buckets.get(base)
	defer r.buckets.put(buckets)

	place := E(1)
	for i := 0; i < passes; i++ {
		*buckets = DigitPass(data, data, identity[E], place, E(base), *buckets)
		if i+1 < passes {
			place *= E(base)
		}
	}
	return nil
}

// DigitPass performs one stable radix distribution. Each element of src is
// appended to the bucket selected by the digit (key(x) / place) % base, then
// the buckets are concatenated in ascending order into dst, which may alias
// src and must be at least as long. Elements sharing a digit keep their
// relative order. Keys must be non-negative.
//
// buckets is scratch storage; it is resized to base entries when needed and
// returned emptied so that callers can reuse it on the next pass.
func DigitPass[T any, K constraints.Integer](dst, src []T, key func(T) K, place, base K, buckets [][]T) [][]T {
	if len(buckets) != int(base) {
		buckets = make([][]T, int(base))
	}
	for _, x := range src {
		d := (key(x) / place) % base
		buckets[d] = append(buckets[d], x)
	}
	pos := 0
	for i := range buckets {
		pos += copy(dst[pos:], buckets[i])
		buckets[i] = buckets[i][:0]
	}
	return buckets
}

// digitCount returns how many base digits are needed to represent v
func digitCount[E constraints.Integer](v, base E) int {
	n := 0
	for ; v > 0; v /= base {
		n++
	}
	return n
}

func identity[E any](v E) E { return v }
