package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/dustin/go-humanize"
	"github.com/lanrat/sortlab"
	"github.com/lanrat/sortlab/resultfile"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func newRunCmd(g *globalOptions) *cobra.Command {
	var noProgress bool
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run the benchmark and write one result file per scenario",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(cmd, g).At("run")
			c, err := loadConfig(g.configFile, cmd.Flags())
			if err != nil {
				return fail(cmd, log, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			report, files, err := runBenchmark(ctx, cmd, g, c, noProgress)
			if err != nil {
				return fail(cmd, log, err)
			}
			printSummary(cmd.OutOrStdout(), report, files)
			return nil
		},
	}
	addBenchmarkFlags(cmd.Flags())
	addOutputFlags(cmd.Flags())
	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "do not draw a progress bar")
	return cmd
}

// runBenchmark wires the dataset, registry and result files into a driver
// and runs it
func runBenchmark(ctx context.Context, cmd *cobra.Command, g *globalOptions, c *fileConfig, noProgress bool) (*sortlab.Report, []string, error) {
	log := newLogger(cmd, g).At("run")

	scenarios, err := sortlab.SelectScenarios[int64](c.Scenarios...)
	if err != nil {
		return nil, nil, err
	}
	data, err := sortlab.NewDataSet(c.Seed, c.MaxValue, scenarios...)
	if err != nil {
		return nil, nil, err
	}
	algs, err := sortlab.DefaultRegistry[int64](c.RadixBase).Select(c.Algorithms...)
	if err != nil {
		return nil, nil, err
	}
	opts, err := c.Output.sinkOptions()
	if err != nil {
		return nil, nil, err
	}
	sink, err := resultfile.New(c.Output.Dir, opts)
	if err != nil {
		return nil, nil, errors.Wrap(err, "output directory")
	}

	driverOpts := []sortlab.Option{sortlab.WithLogger(newLogger(cmd, g))}
	if !noProgress && !g.quiet {
		pm := progress("measuring ", cmd.ErrOrStderr())
		defer pm.Finish()
		driverOpts = append(driverOpts, sortlab.WithProgress(pm.Progress))
	}

	driver, err := sortlab.NewDriver(&c.Config, data, algs, sink, sortlab.OrderedLess[int64](), driverOpts...)
	if err != nil {
		return nil, nil, err
	}

	sizes := c.SampleSizes()
	log.Logf("scenarios=%d algorithms=%d samples=%d smallest=%s largest=%s runs=%d repetition=%s dir=%q",
		data.Len(), algs.Len(), len(sizes),
		humanize.Comma(int64(sizes[0])), humanize.Comma(int64(sizes[len(sizes)-1])),
		c.NRuns, c.Repetition, sink.Dir())

	report, err := driver.Run(ctx)
	return report, sink.Files(), err
}
