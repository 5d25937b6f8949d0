package sortlab_test

import (
	"errors"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/lanrat/sortlab"
)

type val struct {
	Key, Order int
}

func valLess(a, b val) bool {
	return a.Key < b.Key
}

// makeTestArray returns size records whose keys repeat, tagged with their
// original position
func makeTestArray(size int) []val {
	a := make([]val, size)
	for i := 0; i < size; i++ {
		a[i] = val{i & 0xeeeeee, i}
	}
	return a
}

func IsSorted[E any](a []E, less sortlab.Less[E]) bool {
	for i := 1; i < len(a); i++ {
		if less(a[i], a[i-1]) {
			return false
		}
	}
	return true
}

func IsStable(a []val) bool {
	for i := 1; i < len(a); i++ {
		if a[i].Key == a[i-1].Key && a[i].Order < a[i-1].Order {
			return false
		}
	}
	return true
}

func randomInts(rng *rand.Rand, n, max int) []int {
	a := make([]int, n)
	for i := range a {
		a[i] = rng.IntN(max)
	}
	return a
}

// inputs returns named test ranges covering the usual shapes
func inputs() map[string][]int {
	rng := rand.New(rand.NewPCG(7, 11))
	random := randomInts(rng, 1000, 1000000)
	dups := randomInts(rng, 1000, 8)
	sorted := slices.Clone(random)
	slices.Sort(sorted)
	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)
	return map[string][]int{
		"empty":    {},
		"single":   {5},
		"pair":     {2, 1},
		"equal":    {3, 3, 3, 3, 3, 3, 3},
		"random":   random,
		"dups":     dups,
		"sorted":   sorted,
		"reversed": reversed,
		"zeros":    make([]int, 100),
	}
}

func TestAllAlgorithmsSort(t *testing.T) {
	less := sortlab.OrderedLess[int]()
	for _, e := range sortlab.DefaultRegistry[int](10).Entries() {
		for name, in := range inputs() {
			got := slices.Clone(in)
			if err := e.Sorter.Sort(got, less); err != nil {
				t.Fatalf("%s on %s: %v", e.Name, name, err)
			}
			want := slices.Clone(in)
			slices.Sort(want)
			if !slices.Equal(got, want) {
				t.Errorf("%s on %s: output differs from slices.Sort", e.Name, name)
			}
		}
	}
}

func TestAllAlgorithmsIdempotent(t *testing.T) {
	less := sortlab.OrderedLess[int]()
	in := inputs()["dups"]
	for _, e := range sortlab.DefaultRegistry[int](10).Entries() {
		once := slices.Clone(in)
		if err := e.Sorter.Sort(once, less); err != nil {
			t.Fatalf("%s: %v", e.Name, err)
		}
		twice := slices.Clone(once)
		if err := e.Sorter.Sort(twice, less); err != nil {
			t.Fatalf("%s: %v", e.Name, err)
		}
		if !slices.Equal(once, twice) {
			t.Errorf("%s: sorting a sorted range changed it", e.Name)
		}
	}
}

func TestComparisonAlgorithmsDescending(t *testing.T) {
	less := sortlab.Reverse(sortlab.OrderedLess[int]())
	sorters := map[string]sortlab.Sorter[int]{
		"insertion": sortlab.Insertion[int]{},
		"selection": sortlab.Selection[int]{},
		"bubble":    sortlab.Bubble[int]{},
		"shell":     sortlab.Shell[int]{},
		"merge":     sortlab.NewMerge[int](),
		"quick":     sortlab.Quick[int]{},
	}
	in := inputs()["random"]
	for name, s := range sorters {
		got := slices.Clone(in)
		if err := s.Sort(got, less); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !IsSorted(got, less) {
			t.Errorf("%s: not sorted in descending order", name)
		}
	}
}

func TestStableAlgorithms(t *testing.T) {
	sorters := map[string]sortlab.Sorter[val]{
		"insertion": sortlab.Insertion[val]{},
		"bubble":    sortlab.Bubble[val]{},
		"merge":     sortlab.NewMerge[val](),
	}
	for name, s := range sorters {
		a := makeTestArray(500)
		rng := rand.New(rand.NewPCG(3, 4))
		rng.Shuffle(len(a), func(i, j int) { a[i], a[j] = a[j], a[i] })
		for i := range a {
			a[i].Key %= 13
			a[i].Order = i
		}
		if err := s.Sort(a, valLess); err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		if !IsSorted(a, valLess) {
			t.Errorf("%s: not sorted", name)
		}
		if !IsStable(a) {
			t.Errorf("%s: equal keys changed relative order", name)
		}
	}
}

func TestQuickPivotPolicies(t *testing.T) {
	less := sortlab.OrderedLess[int]()
	for _, p := range []sortlab.PivotPolicy{sortlab.PivotMedianOfThree, sortlab.PivotMiddle, sortlab.PivotFirst} {
		for name, in := range inputs() {
			got := slices.Clone(in)
			if err := (sortlab.Quick[int]{Pivot: p}).Sort(got, less); err != nil {
				t.Fatalf("%s on %s: %v", p, name, err)
			}
			if !IsSorted(got, less) {
				t.Errorf("%s on %s: not sorted", p, name)
			}
		}
	}
}

func TestQuickFirstPivotWorstCase(t *testing.T) {
	// reversed input drives the first element pivot to its quadratic case;
	// recursion on the smaller side keeps the stack shallow
	a := make([]int, 5000)
	for i := range a {
		a[i] = len(a) - i
	}
	less := sortlab.OrderedLess[int]()
	if err := (sortlab.Quick[int]{Pivot: sortlab.PivotFirst}).Sort(a, less); err != nil {
		t.Fatal(err)
	}
	if !IsSorted(a, less) {
		t.Fatal("not sorted")
	}
}

func TestShellGaps(t *testing.T) {
	got := sortlab.Shell[int]{}.Gaps(100)
	want := []int{50, 25, 12, 6, 3, 1}
	if !slices.Equal(got, want) {
		t.Fatalf("Gaps(100) = %v, want %v", got, want)
	}
	if g := (sortlab.Shell[int]{}).Gaps(1); len(g) != 0 {
		t.Fatalf("Gaps(1) = %v, want none", g)
	}
}

func TestSortRange(t *testing.T) {
	buf := []int{9, 8, 7, 6, 5, 4, 3}
	less := sortlab.OrderedLess[int]()
	if err := sortlab.SortRange[int](sortlab.Insertion[int]{}, buf, 2, 5, less); err != nil {
		t.Fatal(err)
	}
	want := []int{9, 8, 5, 6, 7, 4, 3}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}

	// empty range is a no-op
	if err := sortlab.SortRange[int](sortlab.Insertion[int]{}, buf, 3, 3, less); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("empty range modified buffer: %v", buf)
	}

	for _, bounds := range [][2]int{{-1, 3}, {4, 2}, {0, 8}} {
		err := sortlab.SortRange[int](sortlab.Insertion[int]{}, buf, bounds[0], bounds[1], less)
		var rangeErr *sortlab.RangeError
		if !errors.As(err, &rangeErr) {
			t.Fatalf("bounds %v: expected RangeError, got %v", bounds, err)
		}
		if rangeErr.Len != len(buf) {
			t.Errorf("bounds %v: RangeError.Len = %d, want %d", bounds, rangeErr.Len, len(buf))
		}
	}
	if !slices.Equal(buf, want) {
		t.Fatalf("rejected range modified buffer: %v", buf)
	}
}

func TestComparatorPanic(t *testing.T) {
	sorters := map[string]sortlab.Sorter[int]{
		"insertion": sortlab.Insertion[int]{},
		"selection": sortlab.Selection[int]{},
		"bubble":    sortlab.Bubble[int]{},
		"shell":     sortlab.Shell[int]{},
		"merge":     sortlab.NewMerge[int](),
		"quick":     sortlab.Quick[int]{},
	}
	for name, s := range sorters {
		calls := 0
		less := func(a, b int) bool {
			calls++
			if calls > 10 {
				panic("comparator exploded")
			}
			return a < b
		}
		err := s.Sort(inputs()["random"], less)
		var cmpErr *sortlab.ComparisonError
		if !errors.As(err, &cmpErr) {
			t.Fatalf("%s: expected ComparisonError, got %v", name, err)
		}
		if cmpErr.Context != name {
			t.Errorf("%s: error context is %q", name, cmpErr.Context)
		}
	}
}

func TestInconsistentComparatorTerminates(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	less := func(a, b int) bool { return rng.IntN(2) == 0 }
	for _, e := range sortlab.DefaultRegistry[int](10).Entries() {
		data := randomInts(rand.New(rand.NewPCG(5, 6)), 300, 100)
		_ = e.Sorter.Sort(data, less)
	}
}

func TestCheckStrictWeakOrder(t *testing.T) {
	sample := inputs()["dups"]
	if err := sortlab.CheckStrictWeakOrder(sample, sortlab.OrderedLess[int]()); err != nil {
		t.Fatalf("< rejected: %v", err)
	}
	var contractErr *sortlab.ContractError

	lessEqual := func(a, b int) bool { return a <= b }
	if err := sortlab.CheckStrictWeakOrder(sample, lessEqual); !errors.As(err, &contractErr) {
		t.Fatalf("<= accepted, got %v", err)
	}

	// distance based "close enough" equivalence is not transitive
	fuzzy := func(a, b int) bool { return a < b-1 }
	if err := sortlab.CheckStrictWeakOrder([]int{1, 2, 3}, fuzzy); !errors.As(err, &contractErr) {
		t.Fatalf("non transitive equivalence accepted, got %v", err)
	}

	panicky := func(a, b int) bool { panic("boom") }
	var cmpErr *sortlab.ComparisonError
	if err := sortlab.CheckStrictWeakOrder(sample, panicky); !errors.As(err, &cmpErr) {
		t.Fatalf("expected ComparisonError, got %v", err)
	}
}

func TestFormat(t *testing.T) {
	if got := sortlab.Format([]int{3, 1, 2}); got != "[ 3 1 2 ]" {
		t.Fatalf("got %q", got)
	}
	if got := sortlab.Format([]int{}); got != "[ ]" {
		t.Fatalf("got %q", got)
	}
}
