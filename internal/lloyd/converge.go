package lloyd

import (
	"math"

	"github.com/hupe1980/kmeans/distance"
)

// Converged reports whether every component of cur is within tol of the same
// component of prev. A tol of 0 demands exact equality. NaN never converges.
func Converged(prev, cur [][]float64, tol float64) bool {
	if len(prev) != len(cur) {
		return false
	}
	for c := range cur {
		if len(prev[c]) != len(cur[c]) {
			return false
		}
		for j, v := range cur[c] {
			if v == prev[c][j] {
				continue
			}
			if !(math.Abs(v-prev[c][j]) <= tol) {
				return false
			}
		}
	}
	return true
}

// Shift returns the largest absolute change of any centroid component
// between prev and cur. Both sets must have the same shape.
func Shift(prev, cur [][]float64) float64 {
	var shift float64
	for c := range cur {
		if d := distance.MaxAbsDiff(prev[c], cur[c]); d > shift {
			shift = d
		}
	}
	return shift
}
