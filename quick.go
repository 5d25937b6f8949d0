package sortlab

import "fmt"

// PivotPolicy selects how Quick picks the partitioning element.
type PivotPolicy int

const (
	// PivotMedianOfThree uses the median of the first, middle and last elements
	PivotMedianOfThree PivotPolicy = iota
	// PivotMiddle uses the middle element
	PivotMiddle
	// PivotFirst uses the first element, quadratic on sorted and reversed input
	PivotFirst
)

func (p PivotPolicy) String() string {
	switch p {
	case PivotMedianOfThree:
		return "median-of-three"
	case PivotMiddle:
		return "middle"
	case PivotFirst:
		return "first"
	default:
		return fmt.Sprintf("PivotPolicy(%d)", int(p))
	}
}

// Quick implements quicksort with a fixed pivot policy. Partitioning scans
// from both ends and stops on keys equal to the pivot, so ranges with many
// duplicates still split evenly. The smaller partition is sorted recursively
// and the larger one iteratively, bounding stack depth to O(log n) even when
// the running time degrades to O(n^2). It is not stable.
type Quick[E any] struct {
	Pivot PivotPolicy
}

// Sort sorts data in place using less.
func (q Quick[E]) Sort(data []E, less Less[E]) error {
	if len(data) < 2 {
		return nil
	}
	return guard("quick", func() { q.sort(data, less) })
}

func (q Quick[E]) sort(data []E, less Less[E]) {
	for len(data) > 1 {
		p := q.partition(data, less)
		left, right := data[:p], data[p+1:]
		if len(left) < len(right) {
			q.sort(left, less)
			data = right
		} else {
			q.sort(right, less)
			data = left
		}
	}
}

// partition places the pivot at its final index p with data[:p] not after it
// and data[p+1:] not before it, and returns p
func (q Quick[E]) partition(data []E, less Less[E]) int {
	pi := q.pivotIndex(data, less)
	data[0], data[pi] = data[pi], data[0]
	pivot := data[0]

	i, j := 1, len(data)-1
	for {
		for i <= j && less(data[i], pivot) {
			i++
		}
		for i <= j && less(pivot, data[j]) {
			j--
		}
		if i >= j {
			break
		}
		data[i], data[j] = data[j], data[i]
		i++
		j--
	}
	data[0], data[j] = data[j], data[0]
	return j
}

func (q Quick[E]) pivotIndex(data []E, less Less[E]) int {
	mid := len(data) / 2
	switch q.Pivot {
	case PivotFirst:
		return 0
	case PivotMiddle:
		return mid
	default:
		return medianOfThree(data, 0, mid, len(data)-1, less)
	}
}

// medianOfThree returns whichever of the indexes a, b, c holds the median value
func medianOfThree[E any](data []E, a, b, c int, less Less[E]) int {
	if less(data[b], data[a]) {
		a, b = b, a
	}
	if less(data[c], data[b]) {
		b = c
		if less(data[b], data[a]) {
			b = a
		}
	}
	return b
}
