package main

import (
	"fmt"
	"math/rand/v2"

	"github.com/lanrat/sortlab"
)

var count = 20

func main() {
	// create a range of unsorted data
	data := make([]int64, count)
	for i := range data {
		data[i] = rand.Int64N(1000)
	}
	fmt.Println("input: ", sortlab.Format(data))

	// sort it in place with quicksort under the natural order
	sorter := sortlab.Quick[int64]{Pivot: sortlab.PivotMedianOfThree}
	if err := sorter.Sort(data, sortlab.OrderedLess[int64]()); err != nil {
		fmt.Printf("err: %s", err.Error())
		return
	}
	fmt.Println("output:", sortlab.Format(data))
}
