package sortlab

// Selection implements selection sort: the smallest remaining element is
// found and swapped into the next position. It always performs O(n^2)
// comparisons but at most n-1 swaps. It is not stable.
type Selection[E any] struct{}

// Sort sorts data in place using less.
func (Selection[E]) Sort(data []E, less Less[E]) error {
	if len(data) < 2 {
		return nil
	}
	return guard("selection", func() {
		for i := 0; i < len(data)-1; i++ {
			m := i
			for j := i + 1; j < len(data); j++ {
				if less(data[j], data[m]) {
					m = j
				}
			}
			if m != i {
				data[i], data[m] = data[m], data[i]
			}
		}
	})
}
