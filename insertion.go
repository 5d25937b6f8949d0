package sortlab

// Insertion implements canonical insertion sort: each element is shifted
// backward through the sorted prefix until its ordered position is found.
// It is stable, O(n^2) in the worst case and O(n) on nearly sorted input.
type Insertion[E any] struct{}

// Sort sorts data in place using less.
func (Insertion[E]) Sort(data []E, less Less[E]) error {
	if len(data) < 2 {
		return nil
	}
	return guard("insertion", func() { insertionSort(data, less) })
}

func insertionSort[E any](data []E, less Less[E]) {
	for i := 1; i < len(data); i++ {
		v := data[i]
		j := i
		for ; j > 0 && less(v, data[j-1]); j-- {
			data[j] = data[j-1]
		}
		data[j] = v
	}
}
