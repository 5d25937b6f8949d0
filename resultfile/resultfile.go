// Package resultfile implements a benchmark result sink that writes one file
// per scenario: a header naming the algorithm columns followed by one line
// per sample size. Writes are buffered and flushed when the stream closes.
package resultfile

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/lanrat/sortlab"
	"github.com/pkg/errors"
)

// file IO buffer size for each stream
var fileBufferSize = 1 << 16 // 64k

// Sink writes result files into a directory
type Sink struct {
	dir   string
	opts  Options
	files []string
}

// fileStream is the Stream for one scenario file
type fileStream struct {
	file      *os.File
	bufWriter *bufio.Writer
	format    formatter
}

// New creates a Sink writing into dir, which is resolved with OutputDir.
// opts may be nil to use DefaultOptions.
func New(dir string, opts *Options) (*Sink, error) {
	out, err := OutputDir(dir)
	if err != nil {
		return nil, err
	}
	return &Sink{dir: out, opts: mergeOptions(opts)}, nil
}

// Dir returns the directory files are written to
func (s *Sink) Dir() string {
	return s.dir
}

// Files returns the paths of every file opened so far, in order
func (s *Sink) Files() []string {
	return append([]string(nil), s.files...)
}

// FileName returns the file name used for scenario
func (s *Sink) FileName(scenario string) string {
	return s.opts.Prefix + sanitize(scenario) + s.opts.Format.Extension()
}

// Open creates (or truncates) the file for scenario
func (s *Sink) Open(scenario string) (sortlab.Stream, error) {
	path := filepath.Join(s.dir, s.FileName(scenario))
	f, err := os.Create(path)
	if err != nil {
		return nil, errors.Wrapf(err, "create %s", path)
	}
	s.files = append(s.files, path)
	return &fileStream{
		file:      f,
		bufWriter: bufio.NewWriterSize(f, fileBufferSize),
		format:    formatter{opts: s.opts},
	}, nil
}

func (w *fileStream) Header(algorithms []string) error {
	return errors.Wrap(w.format.header(w.bufWriter, algorithms), "write header")
}

func (w *fileStream) Row(row sortlab.Row) error {
	return errors.Wrapf(w.format.row(w.bufWriter, row), "write row %d", row.SampleSize)
}

// Close flushes buffered rows and closes the file
func (w *fileStream) Close() error {
	if w.file == nil {
		return nil
	}
	err := w.bufWriter.Flush()
	cerr := w.file.Close()
	w.file = nil
	w.bufWriter = nil
	if err != nil {
		return errors.Wrap(err, "flush")
	}
	return errors.Wrap(cerr, "close")
}

// sanitize keeps scenario names safe to use as file names
func sanitize(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			return r
		}
		return '_'
	}, name)
}
