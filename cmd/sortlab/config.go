package main

import (
	"os"

	"github.com/lanrat/sortlab"
	"github.com/lanrat/sortlab/resultfile"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v2"
)

// fileConfig is the layout of the YAML configuration file: the benchmark
// settings inline plus an output section for the result files
type fileConfig struct {
	sortlab.Config `yaml:",inline"`
	Output         outputConfig `yaml:"output"`
}

type outputConfig struct {
	Dir       string `yaml:"dir"`
	Format    string `yaml:"format"`
	Unit      string `yaml:"unit"`
	Precision *int   `yaml:"precision"`
	Prefix    string `yaml:"prefix"`
}

// addBenchmarkFlags registers the flags that override configuration values
func addBenchmarkFlags(fs *pflag.FlagSet) {
	fs.Int("min", 0, "smallest sample size")
	fs.Int("max", 0, "largest sample size")
	fs.Int("samples", 0, "number of linearly spaced sample sizes")
	fs.Int("runs", 0, "timed repetitions averaged per measurement")
	fs.Int("radix-base", 0, "digit base for radix sort")
	fs.String("repetition", "", "input preparation between runs: reuse or regenerate")
	fs.Uint64("seed", 0, "base seed for input generation")
	fs.Int64("max-value", 0, "generated values lie in [0, max-value)")
	fs.Bool("verify", false, "check every algorithm before timing")
	fs.StringSlice("scenarios", nil, "scenarios to run, in order (default all)")
	fs.StringSlice("algorithms", nil, "algorithms to time, in order (default all)")
}

func addOutputFlags(fs *pflag.FlagSet) {
	fs.StringP("out", "o", "", "output directory (default ./results)")
	fs.String("format", "", "result file format: table or csv")
	fs.String("unit", "", "duration unit: ns, us, ms or s")
	fs.Int("precision", -1, "digits after the decimal point")
	fs.String("prefix", "", "result file name prefix")
}

// loadConfig reads the optional YAML file at path, starting from the
// defaults, and then applies every flag that was explicitly set
func loadConfig(path string, fs *pflag.FlagSet) (*fileConfig, error) {
	c := &fileConfig{Config: *sortlab.DefaultConfig()}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrap(err, "read config")
		}
		if err := yaml.UnmarshalStrict(data, c); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}
	if err := applyFlags(c, fs); err != nil {
		return nil, err
	}
	if err := c.Config.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func applyFlags(c *fileConfig, fs *pflag.FlagSet) error {
	var err error
	set := func(name string, apply func() error) {
		if err == nil && fs.Lookup(name) != nil && fs.Changed(name) {
			err = errors.Wrapf(apply(), "flag --%s", name)
		}
	}
	set("min", func() (e error) { c.MinSampleSize, e = fs.GetInt("min"); return })
	set("max", func() (e error) { c.MaxSampleSize, e = fs.GetInt("max"); return })
	set("samples", func() (e error) { c.NSamples, e = fs.GetInt("samples"); return })
	set("runs", func() (e error) { c.NRuns, e = fs.GetInt("runs"); return })
	set("radix-base", func() (e error) { c.RadixBase, e = fs.GetInt("radix-base"); return })
	set("seed", func() (e error) { c.Seed, e = fs.GetUint64("seed"); return })
	set("max-value", func() (e error) { c.MaxValue, e = fs.GetInt64("max-value"); return })
	set("verify", func() (e error) { c.Verify, e = fs.GetBool("verify"); return })
	set("scenarios", func() (e error) { c.Scenarios, e = fs.GetStringSlice("scenarios"); return })
	set("algorithms", func() (e error) { c.Algorithms, e = fs.GetStringSlice("algorithms"); return })
	set("repetition", func() error {
		s, e := fs.GetString("repetition")
		if e != nil {
			return e
		}
		c.Repetition, e = sortlab.ParseRepetition(s)
		return e
	})
	set("out", func() (e error) { c.Output.Dir, e = fs.GetString("out"); return })
	set("format", func() (e error) { c.Output.Format, e = fs.GetString("format"); return })
	set("unit", func() (e error) { c.Output.Unit, e = fs.GetString("unit"); return })
	set("prefix", func() (e error) { c.Output.Prefix, e = fs.GetString("prefix"); return })
	set("precision", func() error {
		p, e := fs.GetInt("precision")
		c.Output.Precision = &p
		return e
	})
	return err
}

// sinkOptions converts the output section into result file options
func (o outputConfig) sinkOptions() (*resultfile.Options, error) {
	opts := resultfile.DefaultOptions()
	switch resultfile.Format(o.Format) {
	case "":
	case resultfile.Table, resultfile.CSV:
		opts.Format = resultfile.Format(o.Format)
	default:
		return nil, errors.Errorf("unknown output format %q", o.Format)
	}
	if o.Unit != "" {
		unit, err := resultfile.ParseUnit(o.Unit)
		if err != nil {
			return nil, err
		}
		opts.Unit = unit
	}
	if o.Precision != nil && *o.Precision >= 0 {
		opts.Precision = *o.Precision
	}
	opts.Prefix = o.Prefix
	return &opts, nil
}
