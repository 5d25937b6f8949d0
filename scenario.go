package sortlab

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"golang.org/x/exp/constraints"
)

// Scenario is a named input generation policy. Fill overwrites every element
// of dst with values in [0, maxValue) drawn from rng according to the policy.
type Scenario[E constraints.Integer] struct {
	Name string
	Fill func(dst []E, rng *rand.Rand, maxValue int64)
}

// fewUniqueValues is the size of the value pool used by FewUnique
const fewUniqueValues = 16

// AllRandom fills the range with uniformly random values.
func AllRandom[E constraints.Integer]() Scenario[E] {
	return Scenario[E]{Name: "all_random", Fill: fillRandom[E]}
}

// PercentSorted fills the range so that its leading percent share holds the
// smallest values already in ascending order and final position, while the
// rest of the range holds the remaining values in random order.
func PercentSorted[E constraints.Integer](percent int) Scenario[E] {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return Scenario[E]{
		Name: fmt.Sprintf("sorted_%d", percent),
		Fill: func(dst []E, rng *rand.Rand, maxValue int64) {
			fillRandom(dst, rng, maxValue)
			slices.Sort(dst)
			tail := dst[len(dst)*percent/100:]
			rng.Shuffle(len(tail), func(i, j int) { tail[i], tail[j] = tail[j], tail[i] })
		},
	}
}

// FullySorted fills the range with ascending values.
func FullySorted[E constraints.Integer]() Scenario[E] {
	s := PercentSorted[E](100)
	s.Name = "sorted"
	return s
}

// Reversed fills the range with descending values.
func Reversed[E constraints.Integer]() Scenario[E] {
	return Scenario[E]{
		Name: "reversed",
		Fill: func(dst []E, rng *rand.Rand, maxValue int64) {
			fillRandom(dst, rng, maxValue)
			slices.Sort(dst)
			slices.Reverse(dst)
		},
	}
}

// FewUnique fills the range with random picks from a small pool of values.
func FewUnique[E constraints.Integer]() Scenario[E] {
	return Scenario[E]{
		Name: "few_unique",
		Fill: func(dst []E, rng *rand.Rand, maxValue int64) {
			var pool [fewUniqueValues]E
			fillRandom(pool[:], rng, maxValue)
			for i := range dst {
				dst[i] = pool[rng.IntN(len(pool))]
			}
		},
	}
}

// DefaultScenarios returns the built in scenarios in their fixed run order.
func DefaultScenarios[E constraints.Integer]() []Scenario[E] {
	return []Scenario[E]{
		AllRandom[E](),
		PercentSorted[E](25),
		PercentSorted[E](50),
		PercentSorted[E](75),
		FullySorted[E](),
		Reversed[E](),
		FewUnique[E](),
	}
}

// SelectScenarios returns the named scenarios from DefaultScenarios in the
// given order. An empty list selects all of them.
func SelectScenarios[E constraints.Integer](names ...string) ([]Scenario[E], error) {
	all := DefaultScenarios[E]()
	if len(names) == 0 {
		return all, nil
	}
	selected := make([]Scenario[E], 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(all, func(s Scenario[E]) bool { return s.Name == name })
		if i < 0 {
			return nil, &ConfigError{Field: "Scenarios", Value: name, Reason: "unknown scenario"}
		}
		selected = append(selected, all[i])
	}
	return selected, nil
}

func fillRandom[E constraints.Integer](dst []E, rng *rand.Rand, maxValue int64) {
	for i := range dst {
		dst[i] = E(rng.Int64N(maxValue))
	}
}
