package resultfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/lanrat/sortlab"
)

// Format selects how rows are laid out in a result file
type Format string

const (
	// Table writes fixed width, right aligned columns with a commented header
	Table Format = "table"
	// CSV writes comma separated values with a plain header
	CSV Format = "csv"
)

// Options control how result rows are rendered
type Options struct {
	Unit      time.Duration // unit of the duration columns
	Width     int           // column width for Table
	Precision int           // digits after the decimal point
	Format    Format        // Table or CSV
	Prefix    string        // file name prefix
}

// DefaultOptions returns millisecond columns 10 wide with 3 decimals
func DefaultOptions() Options {
	return Options{
		Unit:      time.Millisecond,
		Width:     10,
		Precision: 3,
		Format:    Table,
		Prefix:    "",
	}
}

// mergeOptions fills any unset option with its default
func mergeOptions(o *Options) Options {
	d := DefaultOptions()
	if o == nil {
		return d
	}
	c := *o
	if c.Unit <= 0 {
		c.Unit = d.Unit
	}
	if c.Width <= 0 {
		c.Width = d.Width
	}
	if c.Precision < 0 {
		c.Precision = d.Precision
	}
	if c.Format == "" {
		c.Format = d.Format
	}
	return c
}

// ParseUnit converts ns, us, ms or s into a duration unit
func ParseUnit(s string) (time.Duration, error) {
	switch strings.ToLower(s) {
	case "ns":
		return time.Nanosecond, nil
	case "us", "µs":
		return time.Microsecond, nil
	case "ms":
		return time.Millisecond, nil
	case "s":
		return time.Second, nil
	}
	return 0, fmt.Errorf("unknown duration unit %q", s)
}

// UnitName returns the short name of a duration unit
func UnitName(unit time.Duration) string {
	switch unit {
	case time.Nanosecond:
		return "ns"
	case time.Microsecond:
		return "us"
	case time.Millisecond:
		return "ms"
	case time.Second:
		return "s"
	}
	return unit.String()
}

// Extension returns the file extension for the format
func (f Format) Extension() string {
	if f == CSV {
		return ".csv"
	}
	return ".dat"
}

// formatter renders header and data lines for one stream
type formatter struct {
	opts Options
}

func (f formatter) header(w io.Writer, algorithms []string) error {
	unit := UnitName(f.opts.Unit)
	if f.opts.Format == CSV {
		fields := []string{"sample_size"}
		for _, a := range algorithms {
			fields = append(fields, a+"_"+unit)
		}
		return writeCSV(w, fields)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#%*s", f.opts.Width-1, "size")
	for _, a := range algorithms {
		fmt.Fprintf(&b, " %*s", f.opts.Width, a)
	}
	fmt.Fprintf(&b, "  (%s)\n", unit)
	_, err := io.WriteString(w, b.String())
	return err
}

func (f formatter) row(w io.Writer, row sortlab.Row) error {
	if f.opts.Format == CSV {
		fields := []string{strconv.Itoa(row.SampleSize)}
		for _, r := range row.Results {
			fields = append(fields, strconv.FormatFloat(f.value(r.Mean), 'f', f.opts.Precision, 64))
		}
		return writeCSV(w, fields)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%*d", f.opts.Width, row.SampleSize)
	for _, r := range row.Results {
		fmt.Fprintf(&b, " %*.*f", f.opts.Width, f.opts.Precision, f.value(r.Mean))
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

// value converts d to the configured unit
func (f formatter) value(d time.Duration) float64 {
	return float64(d) / float64(f.opts.Unit)
}

func writeCSV(w io.Writer, fields []string) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(fields); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
