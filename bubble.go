package sortlab

// Bubble implements bubble sort with early exit. Each pass swaps adjacent
// out of order pairs; everything past the last swap is in its final place, so
// the next pass stops there and a pass without swaps ends the sort. At most
// n-1 passes run whatever the comparator does. It is stable.
type Bubble[E any] struct{}

// Sort sorts data in place using less.
func (Bubble[E]) Sort(data []E, less Less[E]) error {
	if len(data) < 2 {
		return nil
	}
	return guard("bubble", func() {
		for end := len(data); end > 1; {
			last := 0
			for i := 1; i < end; i++ {
				if less(data[i], data[i-1]) {
					data[i], data[i-1] = data[i-1], data[i]
					last = i
				}
			}
			end = last
		}
	})
}
