package lloyd

import (
	"errors"
	"fmt"
	"math"

	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/distance"
)

// ErrNoCentroids is returned when assignment is attempted without centroids.
var ErrNoCentroids = errors.New("lloyd: no centroids")

// Nearest returns the index of the centroid closest to v and the Euclidean
// distance to it. Ties go to the lowest index. A NaN distance never wins;
// if every distance is NaN, centroid 0 is returned.
func Nearest(v []float64, centroids [][]float64) (int, float64, error) {
	if len(centroids) == 0 {
		return -1, 0, ErrNoCentroids
	}

	best, bestDist := -1, math.Inf(1)
	first := math.NaN()
	for c, centroid := range centroids {
		d, err := distance.Checked(v, centroid)
		if err != nil {
			return -1, 0, fmt.Errorf("centroid %d: %w", c, err)
		}
		if c == 0 {
			first = d
		}
		// Strict comparison keeps the first minimum.
		if d < bestDist || (best < 0 && d == bestDist) {
			bestDist = d
			best = c
		}
	}

	if best < 0 {
		return 0, first, nil
	}
	return best, bestDist, nil
}

// Assign labels every record with its nearest centroid. It also returns the
// inertia: the sum of squared distances from records to their centroids.
func Assign(ds *dataset.Dataset, centroids [][]float64) ([]int, float64, error) {
	labels := make([]int, ds.Len())
	var inertia float64

	for i := range labels {
		label, d, err := Nearest(ds.Row(i), centroids)
		if err != nil {
			return nil, 0, fmt.Errorf("record %d: %w", i, err)
		}
		labels[i] = label
		inertia += d * d
	}

	return labels, inertia, nil
}
