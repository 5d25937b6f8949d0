package check_test

import (
	"cmp"
	"errors"
	"testing"

	"github.com/lanrat/sortlab/check"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdentical(t *testing.T) {
	a := []int{5, 3, 3, 1}
	b := []int{3, 1, 5, 3}

	r, err := check.Diff(a, b, cmp.Compare[int], nil)
	require.NoError(t, err)
	assert.True(t, r.Equal())
	assert.Equal(t, uint64(4), r.Common)
	assert.Equal(t, uint64(4), r.TotalA)
	assert.Equal(t, uint64(4), r.TotalB)
	assert.Equal(t, []int{5, 3, 3, 1}, a, "inputs must not be modified")
}

func TestDiffReportsMissingAndExtra(t *testing.T) {
	a := []int{1, 2, 2, 3}
	b := []int{1, 2, 3, 4}

	var got []string
	r, err := check.Diff(a, b, cmp.Compare[int], func(d check.Delta, v int) error {
		got = append(got, d.String()+string(rune('0'+v)))
		return nil
	})
	require.NoError(t, err)
	assert.False(t, r.Equal())
	assert.Equal(t, uint64(1), r.Missing)
	assert.Equal(t, uint64(1), r.Extra)
	assert.Equal(t, uint64(3), r.Common)
	assert.Equal(t, []string{"<2", ">4"}, got)
}

func TestDiffStopsOnResultError(t *testing.T) {
	stop := errors.New("stop")
	_, err := check.Diff([]int{1}, []int{2}, cmp.Compare[int], func(check.Delta, int) error {
		return stop
	})
	assert.ErrorIs(t, err, stop)
}

func TestDiffNilCompare(t *testing.T) {
	_, err := check.Diff([]int{1}, []int{1}, nil, nil)
	assert.Error(t, err)
}

func TestPermutation(t *testing.T) {
	assert.True(t, check.Permutation([]int{}, []int{}, cmp.Compare[int]))
	assert.True(t, check.Permutation([]int{2, 1, 2}, []int{1, 2, 2}, cmp.Compare[int]))
	assert.False(t, check.Permutation([]int{2, 1, 2}, []int{1, 1, 2}, cmp.Compare[int]))
	assert.False(t, check.Permutation([]int{1, 2}, []int{1, 2, 2}, cmp.Compare[int]))
}

func TestSorted(t *testing.T) {
	less := func(a, b int) bool { return a < b }

	i, ok := check.Sorted([]int{1, 2, 2, 5}, less)
	assert.True(t, ok)
	assert.Equal(t, 4, i)

	i, ok = check.Sorted([]int{1, 3, 2, 5}, less)
	assert.False(t, ok)
	assert.Equal(t, 2, i)

	_, ok = check.Sorted([]int(nil), less)
	assert.True(t, ok)
}

type tagged struct {
	Key, Order int
}

func TestStable(t *testing.T) {
	key := func(v tagged) int { return v.Key }
	order := func(v tagged) int { return v.Order }

	_, ok := check.Stable([]tagged{{1, 0}, {1, 2}, {2, 1}}, key, order)
	assert.True(t, ok)

	i, ok := check.Stable([]tagged{{1, 2}, {1, 0}, {2, 1}}, key, order)
	assert.False(t, ok)
	assert.Equal(t, 1, i)
}

func TestDeltaString(t *testing.T) {
	assert.Equal(t, ">", check.Extra.String())
	assert.Equal(t, "<", check.Missing.String())
	assert.Equal(t, "?", check.Delta(7).String())
}
