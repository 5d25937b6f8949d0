package sortlab

import (
	"golang.org/x/exp/constraints"
)

// Entry pairs a human readable name with a sorting routine.
type Entry[E any] struct {
	Name   string
	Sorter Sorter[E]
}

// Registry holds the ordered list of algorithms exercised by a benchmark.
// It is configured once at startup; the only state that changes afterwards
// is the iteration cursor.
type Registry[E any] struct {
	entries []Entry[E]
	cur     int
}

// NewRegistry creates a Registry with entries in the given order. Entries
// must have a non-empty unique name and a sorter.
func NewRegistry[E any](entries ...Entry[E]) (*Registry[E], error) {
	if len(entries) == 0 {
		return nil, &ConfigError{Field: "Algorithms", Value: 0, Reason: "at least one algorithm is required"}
	}
	seen := make(map[string]bool, len(entries))
	for _, e := range entries {
		if e.Name == "" || e.Sorter == nil {
			return nil, &ConfigError{Field: "Algorithms", Value: e.Name, Reason: "entry needs a name and a sorter"}
		}
		if seen[e.Name] {
			return nil, &ConfigError{Field: "Algorithms", Value: e.Name, Reason: "duplicate algorithm name"}
		}
		seen[e.Name] = true
	}
	return &Registry[E]{entries: append([]Entry[E](nil), entries...)}, nil
}

// DefaultRegistry returns every algorithm in the order Radix, Insertion,
// Selection, Bubble, Shell, Merge, Quick. base is the radix digit base.
func DefaultRegistry[E constraints.Integer](base int) *Registry[E] {
	return &Registry[E]{entries: []Entry[E]{
		{Name: "radix", Sorter: NewRadix[E](base)},
		{Name: "insertion", Sorter: Insertion[E]{}},
		{Name: "selection", Sorter: Selection[E]{}},
		{Name: "bubble", Sorter: Bubble[E]{}},
		{Name: "shell", Sorter: Shell[E]{}},
		{Name: "merge", Sorter: NewMerge[E]()},
		{Name: "quick", Sorter: Quick[E]{Pivot: PivotMedianOfThree}},
	}}
}

// Len returns the number of entries
func (r *Registry[E]) Len() int {
	return len(r.entries)
}

// HasEnded reports whether the cursor moved past the last entry
func (r *Registry[E]) HasEnded() bool {
	return r.cur >= len(r.entries)
}

// Next advances the cursor
func (r *Registry[E]) Next() {
	if r.cur < len(r.entries) {
		r.cur++
	}
}

// Reset rewinds the cursor to the first entry
func (r *Registry[E]) Reset() {
	r.cur = 0
}

// Current returns the entry under the cursor. It panics once HasEnded is true.
func (r *Registry[E]) Current() Entry[E] {
	if r.HasEnded() {
		panic("sortlab: registry has no current entry")
	}
	return r.entries[r.cur]
}

// Entries returns a copy of all entries in order
func (r *Registry[E]) Entries() []Entry[E] {
	return append([]Entry[E](nil), r.entries...)
}

// Names returns the entry names in order
func (r *Registry[E]) Names() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.Name
	}
	return names
}

// Lookup returns the entry with the given name
func (r *Registry[E]) Lookup(name string) (Entry[E], bool) {
	for _, e := range r.entries {
		if e.Name == name {
			return e, true
		}
	}
	return Entry[E]{}, false
}

// Select builds a new Registry holding the named entries in the given order.
// An empty list selects every entry.
func (r *Registry[E]) Select(names ...string) (*Registry[E], error) {
	if len(names) == 0 {
		return NewRegistry(r.entries...)
	}
	selected := make([]Entry[E], 0, len(names))
	for _, name := range names {
		e, ok := r.Lookup(name)
		if !ok {
			return nil, &ConfigError{Field: "Algorithms", Value: name, Reason: "unknown algorithm"}
		}
		selected = append(selected, e)
	}
	return NewRegistry(selected...)
}
