package sortlab

import (
	"math/rand/v2"

	"golang.org/x/exp/constraints"
)

// DataSet iterates over an ordered list of scenarios and produces the input
// range for each (scenario, sample size) pair. The range lives in a buffer
// owned by the DataSet and is overwritten by every call to Generate.
//
// Generation is reproducible: the values produced for a given seed, scenario
// position, sample size and draw number never change, regardless of what
// else was generated before.
type DataSet[E constraints.Integer] struct {
	scenarios []Scenario[E]
	seed      uint64
	maxValue  int64
	cur       int
	buf       []E
}

// NewDataSet creates a DataSet visiting scenarios in the given order.
// Values are drawn from [0, maxValue), so maxValue-1 must be representable
// in E.
func NewDataSet[E constraints.Integer](seed uint64, maxValue int64, scenarios ...Scenario[E]) (*DataSet[E], error) {
	if len(scenarios) == 0 {
		return nil, &ConfigError{Field: "Scenarios", Value: 0, Reason: "at least one scenario is required"}
	}
	if maxValue < 1 {
		return nil, &ConfigError{Field: "MaxValue", Value: maxValue, Reason: "must be positive"}
	}
	// every value in [0, maxValue) must survive the conversion to E
	if top := maxValue - 1; int64(E(top)) != top {
		return nil, &ConfigError{Field: "MaxValue", Value: maxValue, Reason: "exceeds the range of the element type"}
	}
	seen := make(map[string]bool, len(scenarios))
	for _, s := range scenarios {
		if s.Name == "" || s.Fill == nil {
			return nil, &ConfigError{Field: "Scenarios", Value: s.Name, Reason: "scenario needs a name and a fill policy"}
		}
		if seen[s.Name] {
			return nil, &ConfigError{Field: "Scenarios", Value: s.Name, Reason: "duplicate scenario name"}
		}
		seen[s.Name] = true
	}
	return &DataSet[E]{
		scenarios: append([]Scenario[E](nil), scenarios...),
		seed:      seed,
		maxValue:  maxValue,
	}, nil
}

// Len returns the total number of scenarios
func (d *DataSet[E]) Len() int {
	return len(d.scenarios)
}

// HasEnded reports whether every scenario has been visited
func (d *DataSet[E]) HasEnded() bool {
	return d.cur >= len(d.scenarios)
}

// Next advances to the next scenario
func (d *DataSet[E]) Next() {
	if d.cur < len(d.scenarios) {
		d.cur++
	}
}

// Reset rewinds the cursor to the first scenario
func (d *DataSet[E]) Reset() {
	d.cur = 0
}

// Index returns the position of the current scenario
func (d *DataSet[E]) Index() int {
	return d.cur
}

// Scenario returns the current scenario. It panics once HasEnded is true.
func (d *DataSet[E]) Scenario() Scenario[E] {
	if d.HasEnded() {
		panic("sortlab: dataset has no current scenario")
	}
	return d.scenarios[d.cur]
}

// Scenarios returns a copy of the scenario list in visiting order
func (d *DataSet[E]) Scenarios() []Scenario[E] {
	return append([]Scenario[E](nil), d.scenarios...)
}

// Generate fills the range with n values for the current scenario and returns
// it. It is equivalent to GenerateDraw(n, 0).
func (d *DataSet[E]) Generate(n int) []E {
	return d.GenerateDraw(n, 0)
}

// GenerateDraw fills the range with the draw-th instance of size n for the
// current scenario and returns it.
func (d *DataSet[E]) GenerateDraw(n, draw int) []E {
	s := d.Scenario()
	if cap(d.buf) < n {
		d.buf = make([]E, n)
	}
	d.buf = d.buf[:n]
	s.Fill(d.buf, d.rng(n, draw), d.maxValue)
	return d.buf
}

// Data returns the current range, as last produced by Generate
func (d *DataSet[E]) Data() []E {
	return d.buf
}

// Bounds returns the start and exclusive end position of the current range
func (d *DataSet[E]) Bounds() (first, last int) {
	return 0, len(d.buf)
}

// rng derives an independent stream for (seed, scenario, n, draw)
func (d *DataSet[E]) rng(n, draw int) *rand.Rand {
	stream := uint64(d.cur+1)*0x9e3779b97f4a7c15 ^
		uint64(n)*0xbf58476d1ce4e5b9 ^
		uint64(draw+1)*0x94d049bb133111eb
	return rand.New(rand.NewPCG(d.seed, stream))
}
