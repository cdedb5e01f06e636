package lloyd

import (
	"errors"
	"math/rand"

	"github.com/hupe1980/kmeans/dataset"
)

var (
	// ErrInvalidSampleSize is returned when fewer than one index is requested.
	ErrInvalidSampleSize = errors.New("lloyd: sample size must be positive")

	// ErrSampleTooLarge is returned when more distinct indices are requested
	// than the population holds.
	ErrSampleTooLarge = errors.New("lloyd: sample size exceeds population")
)

// SampleDistinct draws k distinct indices uniformly at random from [0, n)
// using a partial Fisher-Yates shuffle. It never retries, so it terminates
// for every input.
func SampleDistinct(rng *rand.Rand, n, k int) ([]int, error) {
	if k <= 0 {
		return nil, ErrInvalidSampleSize
	}
	if k > n {
		return nil, ErrSampleTooLarge
	}

	perm := make([]int, n)
	for i := range perm {
		perm[i] = i
	}
	for i := 0; i < k; i++ {
		j := i + rng.Intn(n-i)
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm[:k:k], nil
}

// Seed copies the records at the given indices into a new centroid set.
func Seed(ds *dataset.Dataset, indices []int) [][]float64 {
	centroids := make([][]float64, len(indices))
	for c, idx := range indices {
		centroids[c] = append([]float64(nil), ds.Row(idx)...)
	}
	return centroids
}
