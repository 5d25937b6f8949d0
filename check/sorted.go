package check

// Sorted reports whether data is non-decreasing under less. When it is not,
// the returned index i is the first position with less(data[i], data[i-1]).
func Sorted[T any](data []T, less LessFunc[T]) (int, bool) {
	for i := 1; i < len(data); i++ {
		if less(data[i], data[i-1]) {
			return i, false
		}
	}
	return len(data), true
}

// Stable reports whether equal keys kept their original relative order.
// key extracts the sort key and order the original position of each element;
// data must already be sorted by key.
func Stable[T any, K comparable](data []T, key func(T) K, order func(T) int) (int, bool) {
	for i := 1; i < len(data); i++ {
		if key(data[i]) == key(data[i-1]) && order(data[i]) < order(data[i-1]) {
			return i, false
		}
	}
	return len(data), true
}
