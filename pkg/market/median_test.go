package market_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketsim/pkg/market"
)

// sortMedian is the reference the two-heap tracker must agree with: middle
// element for odd counts, truncated mean of the two middles for even.
func sortMedian(prices []int64) int64 {
	s := append([]int64(nil), prices...)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	n := len(s)
	if n%2 == 1 {
		return s[n/2]
	}
	return (s[n/2-1] + s[n/2]) / 2
}

func TestMedianEmptyInterval(t *testing.T) {
	m := market.NewMedianTracker()
	_, ok := m.Median()
	assert.False(t, ok)
}

func TestMedianSmallSequences(t *testing.T) {
	tests := []struct {
		name   string
		prices []int64
		want   int64
	}{
		{"single", []int64{7}, 7},
		{"pair averages down", []int64{4, 7}, 5},
		{"odd picks middle", []int64{9, 1, 5}, 5},
		{"even truncates", []int64{1, 2, 3, 4}, 2},
		{"duplicates", []int64{5, 5, 5, 1}, 5},
		{"descending", []int64{9, 8, 7, 6, 5}, 7},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := market.NewMedianTracker()
			for _, p := range tc.prices {
				m.Insert(p)
			}
			got, ok := m.Median()
			require.True(t, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMedianQueryIsIdempotent(t *testing.T) {
	m := market.NewMedianTracker()
	m.Insert(3)
	m.Insert(8)
	m.Insert(1)

	first, ok := m.Median()
	require.True(t, ok)
	for i := 0; i < 5; i++ {
		again, ok := m.Median()
		require.True(t, ok)
		assert.Equal(t, first, again)
	}
}

func TestMedianResetClears(t *testing.T) {
	m := market.NewMedianTracker()
	m.Insert(10)
	m.Insert(20)
	m.Reset()

	_, ok := m.Median()
	assert.False(t, ok, "reset trackers report no trades")

	// The tracker is intra-interval only: values from before the reset must
	// not bleed into the next interval's median.
	m.Insert(100)
	got, ok := m.Median()
	require.True(t, ok)
	assert.Equal(t, int64(100), got)
}

func TestMedianMatchesSortOnRandomInput(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < 50; trial++ {
		m := market.NewMedianTracker()
		var prices []int64
		for i := 0; i < rng.Intn(200)+1; i++ {
			p := int64(rng.Intn(1000)) + 1
			prices = append(prices, p)
			m.Insert(p)

			got, ok := m.Median()
			require.True(t, ok)
			require.Equal(t, sortMedian(prices), got, "trial %d after %d inserts", trial, i+1)
		}
	}
}
