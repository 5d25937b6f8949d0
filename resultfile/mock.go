package resultfile

import (
	"bytes"
	"fmt"

	"github.com/lanrat/sortlab"
)

// MockSink provides an in-memory implementation of sortlab.Sink.
// It stores every stream in a bytes.Buffer instead of a file on disk.
// This is useful for testing without filesystem I/O.
type MockSink struct {
	opts      Options
	order     []string
	streams   map[string]*bytes.Buffer
	headers   map[string]int
	closed    map[string]bool
	FailOpen  error // returned by Open when set
	FailWrite error // returned by Header and Row when set
}

type mockStream struct {
	sink     *MockSink
	scenario string
	format   formatter
}

// Mock creates a new in-memory sink. opts may be nil to use DefaultOptions.
func Mock(opts *Options) *MockSink {
	return &MockSink{
		opts:    mergeOptions(opts),
		streams: make(map[string]*bytes.Buffer),
		headers: make(map[string]int),
		closed:  make(map[string]bool),
	}
}

// Open starts a new in-memory stream for scenario
func (m *MockSink) Open(scenario string) (sortlab.Stream, error) {
	if m.FailOpen != nil {
		return nil, m.FailOpen
	}
	if _, ok := m.streams[scenario]; ok {
		return nil, fmt.Errorf("stream %q already opened", scenario)
	}
	m.order = append(m.order, scenario)
	m.streams[scenario] = &bytes.Buffer{}
	return &mockStream{sink: m, scenario: scenario, format: formatter{opts: m.opts}}, nil
}

// Scenarios returns the scenarios opened so far, in order
func (m *MockSink) Scenarios() []string {
	return append([]string(nil), m.order...)
}

// Contents returns everything written to the stream of scenario
func (m *MockSink) Contents(scenario string) string {
	if b, ok := m.streams[scenario]; ok {
		return b.String()
	}
	return ""
}

// Headers returns how many header rows the stream of scenario received
func (m *MockSink) Headers(scenario string) int {
	return m.headers[scenario]
}

// Closed reports whether the stream of scenario was closed
func (m *MockSink) Closed(scenario string) bool {
	return m.closed[scenario]
}

func (s *mockStream) Header(algorithms []string) error {
	if s.sink.FailWrite != nil {
		return s.sink.FailWrite
	}
	s.sink.headers[s.scenario]++
	return s.format.header(s.sink.streams[s.scenario], algorithms)
}

func (s *mockStream) Row(row sortlab.Row) error {
	if s.sink.FailWrite != nil {
		return s.sink.FailWrite
	}
	return s.format.row(s.sink.streams[s.scenario], row)
}

func (s *mockStream) Close() error {
	s.sink.closed[s.scenario] = true
	return nil
}
