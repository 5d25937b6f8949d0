// Package sortlab is a small algorithms laboratory: a library of
// interchangeable in-place sorting algorithms plus a benchmark driver that
// times them across input scenarios and sample sizes.
package sortlab

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/convox/logger"
	"golang.org/x/exp/constraints"
)

// Option configures a Driver
type Option func(*driverOptions)

type driverOptions struct {
	log      *logger.Logger
	progress func(done, total int)
	clock    func() time.Time
}

// WithLogger sets the logger used for progress and error lines. By default
// nothing is logged.
func WithLogger(l *logger.Logger) Option {
	return func(o *driverOptions) { o.log = l }
}

// WithProgress registers a callback invoked after every measurement with the
// number of completed and total (scenario, size, algorithm) measurements.
func WithProgress(fn func(done, total int)) Option {
	return func(o *driverOptions) { o.progress = fn }
}

// WithClock replaces time.Now as the time source for measurements.
func WithClock(clock func() time.Time) Option {
	return func(o *driverOptions) { o.clock = clock }
}

// Driver runs the benchmark: for each scenario, for each sample size, for
// each algorithm it times NRuns sorts of a generated range and emits one row
// per sample size to the sink. Everything runs sequentially on the calling
// goroutine so that runs never overlap.
type Driver[E constraints.Integer] struct {
	config Config
	data   *DataSet[E]
	algs   *Registry[E]
	sink   Sink
	less   Less[E]
	driverOptions

	// work is the range handed to the algorithms under ReuseInstance
	work []E
}

// NewDriver creates a Driver. config may be nil to use the defaults; unset
// numeric fields are filled with defaults but Repetition must be chosen.
func NewDriver[E constraints.Integer](config *Config, data *DataSet[E], algs *Registry[E], sink Sink, less Less[E], opts ...Option) (*Driver[E], error) {
	if config != nil {
		c := *config
		config = &c
	}
	config = mergeConfig(config)
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if data == nil || algs == nil || sink == nil || less == nil {
		return nil, fmt.Errorf("dataset, registry, sink and comparator must not be nil")
	}
	d := &Driver[E]{
		config: *config,
		data:   data,
		algs:   algs,
		sink:   sink,
		less:   less,
		driverOptions: driverOptions{
			log:   logger.NewWriter("ns=sortlab", io.Discard),
			clock: time.Now,
		},
	}
	for _, opt := range opts {
		opt(&d.driverOptions)
	}
	return d, nil
}

// Config returns the effective configuration
func (d *Driver[E]) Config() Config {
	return d.config
}

// Verify checks every registered algorithm against DefaultProbes.
func (d *Driver[E]) Verify(ctx context.Context) error {
	log := d.log.At("verify").Start()
	if err := Verify(ctx, d.algs, d.less, DefaultProbes[E](d.config.Seed)); err != nil {
		return log.Error(err)
	}
	log.Successf("algorithms=%d", d.algs.Len())
	return nil
}

// Run executes the benchmark. A row whose measurement runs out of resources
// is skipped and listed in the Report. Any other sort failure, such as a
// *ContractError or *ComparisonError, stops the run and is returned as a
// *RowError wrapping it. Sink failures stop the run too. ctx is only checked
// between rows, a started measurement always runs to completion.
func (d *Driver[E]) Run(ctx context.Context) (*Report, error) {
	if d.config.Verify {
		if err := d.Verify(ctx); err != nil {
			return nil, err
		}
	}

	log := d.log.At("run").Start()
	sizes := d.config.SampleSizes()
	names := d.algs.Names()
	report := &Report{}
	total := d.data.Len() * len(sizes) * d.algs.Len()
	done := 0

	for d.data.Reset(); !d.data.HasEnded(); d.data.Next() {
		scenario := d.data.Scenario().Name
		stream, err := d.sink.Open(scenario)
		if err != nil {
			return report, log.Error(NewSinkError(err, "open", scenario))
		}

		printedHeader := false
		for _, n := range sizes {
			if err := ctx.Err(); err != nil {
				stream.Close()
				return report, err
			}

			row, err := d.measureRow(scenario, n, &done, total)
			if err != nil {
				rowErr := err.(*RowError)
				var resErr *ResourceError
				if !errors.As(rowErr, &resErr) {
					// precondition and comparator failures are never retried
					stream.Close()
					return report, log.Error(rowErr)
				}
				report.Aborted = append(report.Aborted, rowErr)
				log.Logf("state=aborted scenario=%s size=%d algorithm=%s error=%q", scenario, n, rowErr.Algorithm, rowErr.Err)
				continue
			}

			if !printedHeader {
				if err := stream.Header(names); err != nil {
					stream.Close()
					return report, log.Error(NewSinkError(err, "header", scenario))
				}
				printedHeader = true
			}
			if err := stream.Row(row); err != nil {
				stream.Close()
				return report, log.Error(NewSinkError(err, "row", scenario))
			}

			ranking := Rank(row.Results)
			summary := RowSummary{Scenario: scenario, SampleSize: n, Ranking: make([]string, len(ranking))}
			for i, r := range ranking {
				summary.Ranking[i] = r.Algorithm
			}
			report.Rows = append(report.Rows, summary)
			log.Logf("scenario=%s size=%d fastest=%s mean=%s", scenario, n, ranking[0].Algorithm, ranking[0].Mean)
		}

		if err := stream.Close(); err != nil {
			return report, log.Error(NewSinkError(err, "close", scenario))
		}
	}

	log.Successf("rows=%d aborted=%d", len(report.Rows), len(report.Aborted))
	return report, nil
}

// measureRow times every algorithm for sample size n of the current scenario.
// The first failure ends the row and is returned as a *RowError.
func (d *Driver[E]) measureRow(scenario string, n int, done *int, total int) (Row, error) {
	row := Row{Scenario: scenario, SampleSize: n, Results: make([]RunResult, 0, d.algs.Len())}

	var instance []E
	if d.config.Repetition == ReuseInstance {
		instance = d.data.Generate(n)
		if cap(d.work) < n {
			d.work = make([]E, n)
		}
	}

	for d.algs.Reset(); !d.algs.HasEnded(); d.algs.Next() {
		entry := d.algs.Current()
		result, err := d.measure(entry, scenario, n, instance)
		*done++
		if d.progress != nil {
			d.progress(*done, total)
		}
		if err != nil {
			// the remaining algorithms of this row are skipped
			*done += d.algs.Len() - d.algs.cur - 1
			if d.progress != nil {
				d.progress(*done, total)
			}
			return Row{}, &RowError{Scenario: scenario, SampleSize: n, Algorithm: entry.Name, Err: err}
		}
		row.Results = append(row.Results, result)
	}
	return row, nil
}

// measure runs one algorithm NRuns times and folds the elapsed times into a
// running mean. Input preparation happens outside the timed section.
func (d *Driver[E]) measure(entry Entry[E], scenario string, n int, instance []E) (RunResult, error) {
	result := RunResult{Scenario: scenario, SampleSize: n, Algorithm: entry.Name}
	var mean float64

	for run := 0; run < d.config.NRuns; run++ {
		var work []E
		if d.config.Repetition == ReuseInstance {
			work = d.work[:n]
			copy(work, instance)
		} else {
			work = d.data.GenerateDraw(n, run)
		}

		start := d.clock()
		err := runSorter(entry, work, d.less)
		elapsed := d.clock().Sub(start)
		if err != nil {
			return RunResult{}, err
		}

		if elapsed <= 0 {
			result.ZeroRuns++
		}
		result.Runs++
		mean += (float64(elapsed) - mean) / float64(result.Runs)
	}

	result.Mean = time.Duration(mean)
	return result, nil
}

// runSorter calls the sorter, turning a runtime panic such as a failed
// allocation of working storage into a resource error.
func runSorter[E any](entry Entry[E], data []E, less Less[E]) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = NewResourceError(e, "memory", entry.Name)
			} else {
				err = NewResourceError(fmt.Errorf("%v", r), "memory", entry.Name)
			}
		}
	}()
	return entry.Sorter.Sort(data, less)
}
