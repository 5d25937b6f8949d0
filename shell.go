package sortlab

// Shell implements Shell sort with Shell's original gap sequence: n/2, n/4,
// and so on down to 1. Each pass insertion sorts the gap separated
// subsequences, and the final gap of 1 is a plain insertion sort over a
// nearly ordered range. The sequence is fixed so that measurements stay
// comparable between runs. It is not stable.
type Shell[E any] struct{}

// Gaps returns the gap sequence used for a range of length n, largest first.
func (Shell[E]) Gaps(n int) []int {
	var gaps []int
	for gap := n / 2; gap > 0; gap /= 2 {
		gaps = append(gaps, gap)
	}
	return gaps
}

// Sort sorts data in place using less.
func (Shell[E]) Sort(data []E, less Less[E]) error {
	if len(data) < 2 {
		return nil
	}
	return guard("shell", func() {
		for gap := len(data) / 2; gap > 0; gap /= 2 {
			for i := gap; i < len(data); i++ {
				v := data[i]
				j := i
				for ; j >= gap && less(v, data[j-gap]); j -= gap {
					data[j] = data[j-gap]
				}
				data[j] = v
			}
		}
	})
}
