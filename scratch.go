package sortlab

import "sync"

// scratchPool hands out reusable working storage so that algorithms needing
// auxiliary memory do not reallocate it on every call. Storage is returned to
// the pool when the call completes, so a single sorter value stays safe for
// concurrent use.
type scratchPool[T any] struct {
	pool sync.Pool // *[]T
}

// get returns a slice of length n, reusing pooled capacity when possible
func (p *scratchPool[T]) get(n int) *[]T {
	if s, ok := p.pool.Get().(*[]T); ok && cap(*s) >= n {
		*s = (*s)[:n]
		return s
	}
	s := make([]T, n)
	return &s
}

// put returns s to the pool for reuse
func (p *scratchPool[T]) put(s *[]T) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}

// bucketPool holds per-digit bucket sets for radix passes.
type bucketPool[T any] struct {
	pool sync.Pool // *[][]T
}

// get returns base empty buckets that keep any capacity from earlier use
func (p *bucketPool[T]) get(base int) *[][]T {
	if b, ok := p.pool.Get().(*[][]T); ok && len(*b) == base {
		for i := range *b {
			(*b)[i] = (*b)[i][:0]
		}
		return b
	}
	b := make([][]T, base)
	return &b
}

func (p *bucketPool[T]) put(b *[][]T) {
	if b == nil {
		return
	}
	p.pool.Put(b)
}
