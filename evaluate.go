package kmeans

import (
	"errors"
	"fmt"
)

// ErrNoTags is returned by Purity when there is nothing to score.
var ErrNoTags = errors.New("no tags to score against")

// Purity scores a labeling against reference tags: every cluster is credited
// with the count of its most frequent tag, and the credits are divided by the
// number of records. The result is in (0, 1]; 1 means every cluster holds a
// single tag.
func Purity(labels []int, tags []string) (float64, error) {
	if len(tags) == 0 {
		return 0, ErrNoTags
	}
	if len(labels) != len(tags) {
		return 0, fmt.Errorf("%d labels for %d tags", len(labels), len(tags))
	}

	counts := make(map[int]map[string]int)
	for i, l := range labels {
		m, ok := counts[l]
		if !ok {
			m = make(map[string]int)
			counts[l] = m
		}
		m[tags[i]]++
	}

	var correct int
	for _, m := range counts {
		best := 0
		for _, n := range m {
			best = max(best, n)
		}
		correct += best
	}

	return float64(correct) / float64(len(labels)), nil
}
