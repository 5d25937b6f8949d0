package sortlab

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/lanrat/sortlab/check"
	"golang.org/x/exp/constraints"
	"golang.org/x/sync/errgroup"
)

// naturalOrderer is implemented by sorters that ignore the comparator and
// order elements by their own key instead.
type naturalOrderer[E any] interface {
	NaturalOrder() Less[E]
}

// NaturalOrder returns the order Radix produces, ascending numeric value.
func (r *Radix[E]) NaturalOrder() Less[E] {
	return OrderedLess[E]()
}

// DefaultProbes returns the inputs used to verify algorithms before timing:
// empty, single element, all equal, sorted, reversed and random with
// duplicates.
func DefaultProbes[E constraints.Integer](seed uint64) [][]E {
	rng := rand.New(rand.NewPCG(seed, 0x5eed))
	random := make([]E, 257)
	for i := range random {
		random[i] = E(rng.IntN(64))
	}
	sorted := slices.Clone(random)
	slices.Sort(sorted)
	reversed := slices.Clone(sorted)
	slices.Reverse(reversed)
	equal := make([]E, 33)
	for i := range equal {
		equal[i] = 7
	}
	return [][]E{{}, {42}, equal, sorted, reversed, random}
}

// Verify checks every algorithm of algs against probes, one goroutine per
// algorithm. Each output must be a permutation of its probe and be ordered
// under less (or under the sorter's natural order for comparator free
// algorithms). The comparator itself is first probed with CheckStrictWeakOrder
// over the largest probe. The registry cursor is not touched.
func Verify[E any](ctx context.Context, algs *Registry[E], less Less[E], probes [][]E) error {
	var largest []E
	for _, p := range probes {
		if len(p) > len(largest) {
			largest = p
		}
	}
	if err := CheckStrictWeakOrder(largest, less); err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	for _, e := range algs.Entries() {
		e := e
		g.Go(func() error {
			order := less
			if n, ok := e.Sorter.(naturalOrderer[E]); ok {
				order = n.NaturalOrder()
			}
			for i, probe := range probes {
				if err := ctx.Err(); err != nil {
					return err
				}
				got := slices.Clone(probe)
				if err := e.Sorter.Sort(got, less); err != nil {
					return fmt.Errorf("%s on probe %d: %w", e.Name, i, err)
				}
				if at, ok := check.Sorted(got, check.LessFunc[E](order)); !ok {
					return NewContractError(e.Name, "probe %d out of order at index %d%s", i, at, showRange(probe, got))
				}
				if !check.Permutation(probe, got, check.CompareFunc[E](ToCompare(order))) {
					return NewContractError(e.Name, "probe %d output is not a permutation of its input%s", i, showRange(probe, got))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// maxShownRange is the largest probe printed in full in error messages
const maxShownRange = 16

// showRange renders input and output for error messages, or nothing when the
// range is too long to be useful
func showRange[E any](in, out []E) string {
	if len(in) > maxShownRange {
		return ""
	}
	return fmt.Sprintf(": input %s output %s", Format(in), Format(out))
}
