package lloyd

import (
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kmeans/dataset"
)

// Mean is the update result for one cluster. An empty cluster has Count 0
// and a nil Vector; its mean is undefined.
type Mean struct {
	Vector []float64
	Count  int
}

// Empty reports whether no record was assigned to the cluster.
func (m Mean) Empty() bool { return m.Count == 0 }

// Update computes the mean of the records carrying each label in [0, k).
// labels must come from Assign over the same dataset.
func Update(ds *dataset.Dataset, labels []int, k int) []Mean {
	sums := make([][]float64, k)
	for c := range sums {
		sums[c] = make([]float64, ds.Dim())
	}
	counts := make([]int, k)

	for i, c := range labels {
		floats.Add(sums[c], ds.Row(i))
		counts[c]++
	}

	means := make([]Mean, k)
	for c := range means {
		if counts[c] == 0 {
			continue
		}
		n := float64(counts[c])
		for j := range sums[c] {
			sums[c][j] /= n
		}
		means[c] = Mean{Vector: sums[c], Count: counts[c]}
	}
	return means
}
