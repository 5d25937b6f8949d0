package sortlab

import (
	"fmt"
	"time"

	"github.com/lanrat/sortlab/queue"
)

// RunResult is the measurement for one (scenario, sample size, algorithm)
// combination.
type RunResult struct {
	Scenario   string
	SampleSize int
	Algorithm  string
	// Mean is the running mean of the elapsed time over Runs repetitions
	Mean time.Duration
	// Runs is the number of timed repetitions
	Runs int
	// ZeroRuns counts repetitions that measured zero or negative time,
	// which happens when a run is shorter than the clock resolution
	ZeroRuns int
}

// Row holds every algorithm's result for one sample size, in registry order.
type Row struct {
	Scenario   string
	SampleSize int
	Results    []RunResult
}

// Sink receives benchmark output, one Stream per scenario.
type Sink interface {
	// Open starts the stream for a scenario
	Open(scenario string) (Stream, error)
}

// Stream receives the rows of one scenario: a single header listing the
// algorithm columns, then one row per sample size. How durations are
// rendered (units, widths) is up to the implementation.
type Stream interface {
	Header(algorithms []string) error
	Row(row Row) error
	Close() error
}

// RowError records a row that was aborted because an algorithm failed.
type RowError struct {
	Scenario   string
	SampleSize int
	Algorithm  string
	Err        error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %s/%d aborted by %s: %v", e.Scenario, e.SampleSize, e.Algorithm, e.Err)
}

func (e *RowError) Unwrap() error {
	return e.Err
}

// RowSummary is what the Report retains about an emitted row.
type RowSummary struct {
	Scenario   string
	SampleSize int
	// Ranking lists algorithm names fastest first
	Ranking []string
}

// Report summarises a benchmark run.
type Report struct {
	Rows    []RowSummary
	Aborted []*RowError
}

// Winner returns the fastest algorithm of every emitted row of scenario,
// keyed by sample size.
func (r *Report) Winner(scenario string) map[int]string {
	w := make(map[int]string)
	for _, row := range r.Rows {
		if row.Scenario == scenario && len(row.Ranking) > 0 {
			w[row.SampleSize] = row.Ranking[0]
		}
	}
	return w
}

// Rank orders results by mean duration, fastest first. Results with equal
// means keep their original order.
func Rank(results []RunResult) []RunResult {
	pq := queue.NewPriorityQueue(func(a, b RunResult) bool {
		return a.Mean < b.Mean
	})
	for _, r := range results {
		pq.Push(r)
	}
	return pq.Drain()
}
