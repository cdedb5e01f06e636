package lloyd

import (
	"math"
	"math/rand"
	"testing"

	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/distance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDataset(t *testing.T, records [][]float64) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.New(records)
	require.NoError(t, err)
	return ds
}

func TestSampleDistinct(t *testing.T) {
	for seed := int64(0); seed < 50; seed++ {
		rng := rand.New(rand.NewSource(seed))
		idx, err := SampleDistinct(rng, 10, 4)
		require.NoError(t, err)
		require.Len(t, idx, 4)

		seen := make(map[int]bool)
		for _, i := range idx {
			assert.GreaterOrEqual(t, i, 0)
			assert.Less(t, i, 10)
			assert.False(t, seen[i], "duplicate index %d", i)
			seen[i] = true
		}
	}
}

func TestSampleDistinct_WholePopulation(t *testing.T) {
	idx, err := SampleDistinct(rand.New(rand.NewSource(7)), 5, 5)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{0, 1, 2, 3, 4}, idx)
}

func TestSampleDistinct_Deterministic(t *testing.T) {
	a, err := SampleDistinct(rand.New(rand.NewSource(42)), 100, 10)
	require.NoError(t, err)
	b, err := SampleDistinct(rand.New(rand.NewSource(42)), 100, 10)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSampleDistinct_Errors(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := SampleDistinct(rng, 3, 4)
	assert.ErrorIs(t, err, ErrSampleTooLarge)

	_, err = SampleDistinct(rng, 3, 0)
	assert.ErrorIs(t, err, ErrInvalidSampleSize)
}

func TestSeed(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})

	centroids := Seed(ds, []int{2, 0})
	assert.Equal(t, [][]float64{{3, 3}, {1, 1}}, centroids)

	// Centroids are copies, not views into the dataset.
	centroids[0][0] = 99
	assert.Equal(t, []float64{3, 3}, ds.Row(2))
}

func TestNearest(t *testing.T) {
	centroids := [][]float64{{0, 0}, {10, 0}, {0, 10}}

	c, d, err := Nearest([]float64{9, 1}, centroids)
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	assert.InDelta(t, math.Sqrt(2), d, 1e-12)
}

func TestNearest_TieGoesToLowestIndex(t *testing.T) {
	c, _, err := Nearest([]float64{5, 0}, [][]float64{{10, 0}, {0, 0}})
	require.NoError(t, err)
	assert.Equal(t, 0, c)

	c, _, err = Nearest([]float64{2, 2}, [][]float64{{9, 9}, {1, 1}, {1, 1}})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
}

func TestNearest_NaNCentroidNeverWins(t *testing.T) {
	c, d, err := Nearest([]float64{1, 1}, [][]float64{{math.NaN(), 0}, {4, 5}})
	require.NoError(t, err)
	assert.Equal(t, 1, c)
	assert.InDelta(t, 5.0, d, 1e-12)

	c, _, err = Nearest([]float64{1, 1}, [][]float64{{math.NaN(), 0}, {0, math.NaN()}})
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestNearest_Errors(t *testing.T) {
	_, _, err := Nearest([]float64{1, 2}, nil)
	assert.ErrorIs(t, err, ErrNoCentroids)

	_, _, err = Nearest([]float64{1, 2}, [][]float64{{1, 2}, {1, 2, 3}})
	var dm *distance.ErrDimensionMismatch
	require.ErrorAs(t, err, &dm)
	assert.Equal(t, 2, dm.Expected)
	assert.Equal(t, 3, dm.Actual)
}

func TestAssign(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}, {1, 2}, {9, 9}, {9, 8}})
	centroids := [][]float64{{1, 1}, {9, 9}}

	labels, inertia, err := Assign(ds, centroids)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0, 1, 1}, labels)
	assert.InDelta(t, 2.0, inertia, 1e-12)

	// Every record is at least as close to its own centroid as to any other.
	for i, label := range labels {
		own := distance.Euclidean(ds.Row(i), centroids[label])
		for _, c := range centroids {
			assert.LessOrEqual(t, own, distance.Euclidean(ds.Row(i), c)+1e-12)
		}
	}
}

func TestAssign_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	records := make([][]float64, 200)
	for i := range records {
		records[i] = []float64{rng.Float64() * 100, rng.Float64() * 100, rng.Float64()}
	}
	ds := mustDataset(t, records)
	centroids := Seed(ds, []int{0, 50, 100, 150})

	first, _, err := Assign(ds, centroids)
	require.NoError(t, err)
	second, _, err := Assign(ds, centroids)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestAssign_DimensionMismatch(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}, {2, 2}})

	_, _, err := Assign(ds, [][]float64{{1, 1, 1}})
	var dm *distance.ErrDimensionMismatch
	assert.ErrorAs(t, err, &dm)
}

func TestUpdate(t *testing.T) {
	ds := mustDataset(t, [][]float64{{1, 1}, {1, 2}, {9, 9}, {9, 8}, {5, 5}})

	means := Update(ds, []int{0, 0, 1, 1, 1}, 3)
	require.Len(t, means, 3)

	assert.False(t, means[0].Empty())
	assert.Equal(t, 2, means[0].Count)
	assert.Equal(t, []float64{1, 1.5}, means[0].Vector)

	assert.Equal(t, 3, means[1].Count)
	assert.InDeltaSlice(t, []float64{23.0 / 3, 22.0 / 3}, means[1].Vector, 1e-12)

	assert.True(t, means[2].Empty())
	assert.Nil(t, means[2].Vector)
}

func TestUpdate_DoesNotTouchDataset(t *testing.T) {
	ds := mustDataset(t, [][]float64{{2, 4}})
	means := Update(ds, []int{0}, 1)
	means[0].Vector[0] = 100
	assert.Equal(t, []float64{2, 4}, ds.Row(0))
}

func TestConverged(t *testing.T) {
	a := [][]float64{{1, 1.5}, {9, 8.5}}

	assert.True(t, Converged(a, [][]float64{{1, 1.5}, {9, 8.5}}, 0))
	assert.False(t, Converged(a, [][]float64{{1, 1.5}, {9, 8.5000001}}, 0))
	assert.True(t, Converged(a, [][]float64{{1, 1.5}, {9, 8.5000001}}, 1e-3))
	assert.False(t, Converged(a, [][]float64{{1, 1.5}}, 1))
	assert.False(t, Converged(a, [][]float64{{1, 1.5}, {9, 8.5, 0}}, 1))

	nan := [][]float64{{math.NaN()}}
	assert.False(t, Converged(nan, [][]float64{{math.NaN()}}, 1))

	inf := [][]float64{{math.Inf(1)}}
	assert.True(t, Converged(inf, [][]float64{{math.Inf(1)}}, 0))
}

func TestShift(t *testing.T) {
	prev := [][]float64{{1, 1}, {9, 9}}
	cur := [][]float64{{1, 1.5}, {9, 8.25}}
	assert.Equal(t, 0.75, Shift(prev, cur))
	assert.Equal(t, 0.0, Shift(cur, cur))
}
