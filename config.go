package sortlab

import (
	"fmt"
	"strings"
)

// Repetition selects how the input is prepared for each of the NRuns timed
// repetitions of one (scenario, sample size, algorithm) measurement.
type Repetition int

const (
	// RepetitionUnset is invalid; the policy must always be chosen explicitly
	RepetitionUnset Repetition = iota
	// ReuseInstance generates one instance per (scenario, sample size) and
	// sorts a fresh copy of it on every run, holding the input constant
	ReuseInstance
	// RegeneratePerRun draws a new instance for every run, averaging over
	// generation noise as well as timing noise
	RegeneratePerRun
)

func (r Repetition) String() string {
	switch r {
	case ReuseInstance:
		return "reuse"
	case RegeneratePerRun:
		return "regenerate"
	default:
		return "unset"
	}
}

// ParseRepetition converts "reuse" or "regenerate" to a Repetition
func ParseRepetition(s string) (Repetition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "reuse":
		return ReuseInstance, nil
	case "regenerate":
		return RegeneratePerRun, nil
	}
	return RepetitionUnset, &ConfigError{Field: "Repetition", Value: s, Reason: "must be \"reuse\" or \"regenerate\""}
}

// MarshalYAML encodes the policy by name
func (r Repetition) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML decodes a policy name
func (r *Repetition) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	v, err := ParseRepetition(s)
	if err != nil {
		return err
	}
	*r = v
	return nil
}

// Config holds configuration settings for a benchmark run
type Config struct {
	MinSampleSize int        `yaml:"min_sample_sz"` // smallest range to sort
	MaxSampleSize int        `yaml:"max_sample_sz"` // largest range to sort
	NSamples      int        `yaml:"n_samples"`     // number of linearly spaced sample sizes
	NRuns         int        `yaml:"n_runs"`        // timed repetitions averaged per measurement
	RadixBase     int        `yaml:"radix_base"`    // digit base for radix sort
	Repetition    Repetition `yaml:"repetition"`    // input preparation between runs, must be set
	Seed          uint64     `yaml:"seed"`          // base seed for dataset generation
	MaxValue      int64      `yaml:"max_value"`     // generated values lie in [0, MaxValue)
	Verify        bool       `yaml:"verify"`        // check every algorithm before timing
	Scenarios     []string   `yaml:"scenarios"`     // scenario names in run order, empty for all
	Algorithms    []string   `yaml:"algorithms"`    // algorithm names in run order, empty for all
}

// DefaultConfig returns the default configuration options used if none provided
func DefaultConfig() *Config {
	return &Config{
		MinSampleSize: 1000,
		MaxSampleSize: 1000000,
		NSamples:      25,
		NRuns:         5,
		RadixBase:     DefaultRadixBase,
		Repetition:    ReuseInstance,
		Seed:          1,
		MaxValue:      1000000,
	}
}

// mergeConfig takes a provided config and replaces any numeric values not set
// with the defaults. Repetition is deliberately left alone.
func mergeConfig(c *Config) *Config {
	d := DefaultConfig()
	if c == nil {
		return d
	}
	if c.MinSampleSize == 0 && c.MaxSampleSize == 0 {
		c.MinSampleSize = d.MinSampleSize
		c.MaxSampleSize = d.MaxSampleSize
	}
	if c.NSamples == 0 {
		c.NSamples = d.NSamples
	}
	if c.NRuns == 0 {
		c.NRuns = d.NRuns
	}
	if c.RadixBase == 0 {
		c.RadixBase = d.RadixBase
	}
	if c.MaxValue == 0 {
		c.MaxValue = d.MaxValue
	}
	return c
}

// Validate reports the first invalid field as a *ConfigError
func (c *Config) Validate() error {
	switch {
	case c.MinSampleSize < 0:
		return &ConfigError{Field: "MinSampleSize", Value: c.MinSampleSize, Reason: "must not be negative"}
	case c.MaxSampleSize < c.MinSampleSize:
		return &ConfigError{Field: "MaxSampleSize", Value: c.MaxSampleSize, Reason: fmt.Sprintf("must be >= MinSampleSize (%d)", c.MinSampleSize)}
	case c.NSamples < 1:
		return &ConfigError{Field: "NSamples", Value: c.NSamples, Reason: "must be at least 1"}
	case c.NSamples > 1 && c.MaxSampleSize-c.MinSampleSize < c.NSamples-1:
		return &ConfigError{Field: "NSamples", Value: c.NSamples, Reason: "too many samples for a strictly increasing scale"}
	case c.NRuns < 1:
		return &ConfigError{Field: "NRuns", Value: c.NRuns, Reason: "must be at least 1"}
	case c.RadixBase < 2 || c.RadixBase > MaxRadixBase:
		return &ConfigError{Field: "RadixBase", Value: c.RadixBase, Reason: fmt.Sprintf("must be in [2,%d]", MaxRadixBase)}
	case c.Repetition != ReuseInstance && c.Repetition != RegeneratePerRun:
		return &ConfigError{Field: "Repetition", Value: c.Repetition, Reason: "must be chosen explicitly (reuse or regenerate)"}
	case c.MaxValue < 1:
		return &ConfigError{Field: "MaxValue", Value: c.MaxValue, Reason: "must be positive"}
	}
	return nil
}

// SampleStep returns the nominal increase in size between consecutive
// samples, (max-min)/(n-1) truncated. When the span does not divide evenly
// the actual sizes from SampleSizes are spread over the whole span and may
// differ from Min + i*SampleStep(); SampleSizes is authoritative.
func (c *Config) SampleStep() int {
	if c.NSamples < 2 {
		return 0
	}
	return (c.MaxSampleSize - c.MinSampleSize) / (c.NSamples - 1)
}

// SampleSizes returns the configured linear scale of sample sizes.
func (c *Config) SampleSizes() []int {
	return SampleSizes(c.MinSampleSize, c.MaxSampleSize, c.NSamples)
}

// SampleSizes returns n sizes spaced linearly over [min, max]. The first is
// min, the last is max and the i-th is min + i*(max-min)/(n-1).
func SampleSizes(min, max, n int) []int {
	if n < 1 {
		return nil
	}
	if n == 1 {
		return []int{min}
	}
	sizes := make([]int, n)
	span := max - min
	for i := range sizes {
		sizes[i] = min + i*span/(n-1)
	}
	return sizes
}
