package sortlab

import (
	"errors"
	"math"
	"math/rand/v2"
	"slices"
	"testing"
)

type record struct {
	key   uint32
	order int
}

func TestDigitPassIsStable(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	src := make([]record, 400)
	for i := range src {
		src[i] = record{key: uint32(rng.IntN(1000)), order: i}
	}
	dst := make([]record, len(src))
	buckets := DigitPass(dst, src, func(r record) uint32 { return r.key }, 10, 10, nil)
	if len(buckets) != 10 {
		t.Fatalf("got %d buckets, want 10", len(buckets))
	}
	for i, b := range buckets {
		if len(b) != 0 {
			t.Fatalf("bucket %d returned with %d items", i, len(b))
		}
	}
	for i := 1; i < len(dst); i++ {
		da, db := (dst[i-1].key/10)%10, (dst[i].key/10)%10
		if db < da {
			t.Fatalf("index %d: digit %d after %d", i, db, da)
		}
		if da == db && dst[i].order < dst[i-1].order {
			t.Fatalf("index %d: equal digits out of input order", i)
		}
	}
}

func TestDigitPassInPlace(t *testing.T) {
	data := []uint16{31, 12, 41, 22, 11}
	DigitPass(data, data, identity[uint16], 1, 10, nil)
	want := []uint16{31, 41, 11, 12, 22}
	if !slices.Equal(data, want) {
		t.Fatalf("got %v, want %v", data, want)
	}
}

func TestRadixMatchesSlicesSort(t *testing.T) {
	rng := rand.New(rand.NewPCG(2, 3))
	for _, base := range []int{2, 10, 16, 256, 1 << 16} {
		r := NewRadix[int64](base)
		data := make([]int64, 2000)
		for i := range data {
			data[i] = rng.Int64N(math.MaxInt64)
		}
		want := slices.Clone(data)
		slices.Sort(want)
		if err := r.Sort(data, nil); err != nil {
			t.Fatalf("base %d: %v", base, err)
		}
		if !slices.Equal(data, want) {
			t.Fatalf("base %d: output differs from slices.Sort", base)
		}
	}
}

func TestRadixIgnoresComparator(t *testing.T) {
	data := []int{5, 3, 9, 0, 3}
	if err := NewRadix[int](10).Sort(data, Reverse(OrderedLess[int]())); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(data, []int{0, 3, 3, 5, 9}) {
		t.Fatalf("got %v", data)
	}
}

func TestRadixNegativeKey(t *testing.T) {
	data := []int{4, 2, -1, 3}
	err := NewRadix[int](10).Sort(data, nil)
	var contractErr *ContractError
	if !errors.As(err, &contractErr) {
		t.Fatalf("expected ContractError, got %v", err)
	}
	if !slices.Equal(data, []int{4, 2, -1, 3}) {
		t.Fatalf("data modified before rejection: %v", data)
	}
}

func TestRadixBase(t *testing.T) {
	var contractErr *ContractError
	for _, base := range []int{1, -3, MaxRadixBase + 1} {
		if err := NewRadix[int](base).Sort([]int{2, 1}, nil); !errors.As(err, &contractErr) {
			t.Errorf("base %d accepted, got %v", base, err)
		}
	}
	// 256 buckets cannot be addressed by a uint8 digit
	if err := NewRadix[uint8](256).Sort([]uint8{2, 1}, nil); !errors.As(err, &contractErr) {
		t.Errorf("base 256 accepted for uint8, got %v", err)
	}
	var zero Radix[int]
	data := []int{3, 1, 2}
	if err := zero.Sort(data, nil); err != nil {
		t.Fatalf("zero value: %v", err)
	}
	if !slices.Equal(data, []int{1, 2, 3}) {
		t.Fatalf("zero value: got %v", data)
	}
}

func TestRadixUint8Extremes(t *testing.T) {
	data := []uint8{255, 0, 128, 255, 1}
	if err := NewRadix[uint8](16).Sort(data, nil); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(data, []uint8{0, 1, 128, 255, 255}) {
		t.Fatalf("got %v", data)
	}
}

func TestDigitCount(t *testing.T) {
	for _, tc := range []struct{ v, base, want int }{
		{0, 10, 0},
		{9, 10, 1},
		{10, 10, 2},
		{999999, 10, 6},
		{255, 16, 2},
		{256, 16, 3},
		{1, 2, 1},
	} {
		if got := digitCount(tc.v, tc.base); got != tc.want {
			t.Errorf("digitCount(%d, %d) = %d, want %d", tc.v, tc.base, got, tc.want)
		}
	}
}
