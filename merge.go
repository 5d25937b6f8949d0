package sortlab

// Merge implements top-down merge sort. The range is split at its midpoint,
// both halves are sorted recursively and then merged through an auxiliary
// buffer sized to the range. One buffer is taken per call and shared by every
// recursion level. It is stable and always O(n log n).
//
// Buffers are pooled, so a Merge must not be copied after first use; use
// NewMerge or a pointer to a zero value.
type Merge[E any] struct {
	buffers scratchPool[E]
}

// NewMerge creates a Merge sorter.
func NewMerge[E any]() *Merge[E] {
	return &Merge[E]{}
}

// Sort sorts data in place using less.
func (m *Merge[E]) Sort(data []E, less Less[E]) error {
	if len(data) < 2 {
		return nil
	}
	buf := m.buffers.get(len(data))
	defer m.buffers.put(buf)
	return guard("merge", func() { mergeSort(data, *buf, less) })
}

// mergeSort sorts data using buf, which is at least len(data) long
func mergeSort[E any](data, buf []E, less Less[E]) {
	if len(data) < 2 {
		return
	}
	mid := len(data) / 2
	mergeSort(data[:mid], buf, less)
	mergeSort(data[mid:], buf, less)
	if !less(data[mid], data[mid-1]) {
		// halves already in order
		return
	}
	mergeHalves(data, mid, buf[:len(data)], less)
}

// mergeHalves merges the sorted runs data[:mid] and data[mid:] back into data.
// Ties are taken from the left run, which keeps the merge stable.
func mergeHalves[E any](data []E, mid int, buf []E, less Less[E]) {
	copy(buf, data)
	left, right := buf[:mid], buf[mid:]
	k := 0
	for len(left) > 0 && len(right) > 0 {
		if less(right[0], left[0]) {
			data[k] = right[0]
			right = right[1:]
		} else {
			data[k] = left[0]
			left = left[1:]
		}
		k++
	}
	k += copy(data[k:], left)
	copy(data[k:], right)
}
