package adapters

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	smallExample = []uint64{16, 10, 15, 5, 1, 11, 7, 19, 6, 12, 4}
	largeExample = []uint64{
		28, 33, 18, 42, 31, 14, 46, 20, 48, 47, 24, 23, 49, 45, 19, 38,
		39, 11, 1, 32, 25, 35, 8, 17, 7, 9, 4, 2, 34, 10, 3,
	}
)

func TestChain_SmallExample(t *testing.T) {
	c := NewChain(smallExample)

	diffs, err := c.Differences()
	require.NoError(t, err)
	require.Equal(t, [3]uint64{7, 0, 5}, diffs)

	product, err := c.DifferenceProduct()
	require.NoError(t, err)
	require.Equal(t, uint64(35), product)
	require.Equal(t, uint64(8), c.Arrangements())
	require.Equal(t, uint64(22), c.Device())
}

func TestChain_LargeExample(t *testing.T) {
	require.Len(t, largeExample, 31)
	c := NewChain(largeExample)

	product, err := c.DifferenceProduct()
	require.NoError(t, err)
	require.Equal(t, uint64(220), product)
	require.Equal(t, uint64(19208), c.Arrangements())
}

func TestNewChain_DoesNotAliasInput(t *testing.T) {
	in := []uint64{3, 1, 2}
	c := NewChain(in)
	require.Equal(t, []uint64{3, 1, 2}, in)
	require.Equal(t, []uint64{1, 2, 3}, c.Ratings())
}

func TestParse(t *testing.T) {
	c, err := Parse([]string{"3", " 1", "2 "})
	require.NoError(t, err)
	require.Equal(t, []uint64{1, 2, 3}, c.Ratings())

	_, err = Parse(nil)
	require.ErrorIs(t, err, ErrNoAdapters)

	_, err = Parse([]string{"1", "-4"})
	require.ErrorIs(t, err, ErrMalformed)
	require.Contains(t, err.Error(), "line 2")

	_, err = Parse([]string{"x"})
	require.ErrorIs(t, err, ErrMalformed)

	_, err = Parse([]string{"18446744073709551613"})
	require.ErrorIs(t, err, ErrMalformed)

	c, err = Parse([]string{"18446744073709551612"})
	require.NoError(t, err)
	require.Equal(t, uint64(math.MaxUint64), c.Device())
}

func TestDevice_SaturatesNearMaxUint64(t *testing.T) {
	require.Equal(t, uint64(math.MaxUint64), NewChain([]uint64{math.MaxUint64}).Device())
	require.Equal(t, uint64(math.MaxUint64), NewChain([]uint64{math.MaxUint64 - 1}).Device())
	require.Equal(t, uint64(math.MaxUint64), NewChain([]uint64{MaxRating}).Device())
}

func TestDifferences_RejectsUnbridgeableGaps(t *testing.T) {
	_, err := NewChain([]uint64{1, 5}).Differences()
	require.ErrorIs(t, err, ErrGap)

	_, err = NewChain([]uint64{1, 2, 2}).DifferenceProduct()
	require.ErrorIs(t, err, ErrGap)

	_, err = NewChain([]uint64{4}).Differences()
	require.ErrorIs(t, err, ErrGap)
}

func TestArrangements_UnreachableIsZero(t *testing.T) {
	require.Equal(t, uint64(0), NewChain([]uint64{1, 5, 6}).Arrangements())
	require.Equal(t, uint64(0), NewChain([]uint64{4}).Arrangements())
}

func TestArrangements_EmptyChain(t *testing.T) {
	require.Equal(t, uint64(1), Chain{}.Arrangements())
	require.Equal(t, uint64(MaxJoltGap), Chain{}.Device())
}

// fullHistory is the textbook O(n²) formulation, used as a reference.
func fullHistory(ratings []uint64) uint64 {
	ways := make([]uint64, len(ratings))
	for i, r := range ratings {
		if r <= MaxJoltGap {
			ways[i] = 1
		}
		for j := 0; j < i; j++ {
			if r-ratings[j] <= MaxJoltGap {
				ways[i] += ways[j]
			}
		}
	}
	return ways[len(ways)-1]
}

func TestArrangements_MatchesFullHistory(t *testing.T) {
	c := NewChain(largeExample)
	require.Equal(t, fullHistory(c.Ratings()), c.Arrangements())

	var run []uint64
	for r := uint64(1); r <= 60; r++ {
		run = append(run, r)
	}
	long := NewChain(run)
	require.Equal(t, fullHistory(run), long.Arrangements())
	require.Greater(t, long.Arrangements(), uint64(10_000_000_000_000), "needs 64-bit counts")
}

func TestArrangements_SmallRuns(t *testing.T) {
	cases := []struct {
		ratings []uint64
		want    uint64
	}{
		{[]uint64{1}, 1},
		{[]uint64{1, 2}, 2},
		{[]uint64{1, 2, 3}, 4},
		{[]uint64{1, 2, 3, 4}, 7},
		{[]uint64{3, 6, 9}, 1},
		{[]uint64{2, 4, 6}, 1},
		{[]uint64{1, 3, 4}, 3},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, NewChain(tc.ratings).Arrangements(), "%v", tc.ratings)
	}
}
