package kmeans

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/kmeans/codec"
	"github.com/hupe1980/kmeans/internal/lloyd"
)

// Result is the outcome of a Fit.
type Result struct {
	// Labels maps every record index to its cluster in [0, K).
	Labels []int `json:"labels"`
	// Centroids holds K vectors of the dataset's dimension.
	Centroids [][]float64 `json:"centroids"`
	// Rounds is the number of assign/update rounds that ran.
	Rounds int `json:"rounds"`
	// Converged is false when the round limit stopped the run.
	Converged bool `json:"converged"`
	// Inertia is the sum of squared distances of records to the centroid
	// they are labeled with.
	Inertia float64 `json:"inertia"`
	// Reseeded counts the empty clusters that were reseeded during the run.
	Reseeded int `json:"reseeded"`
}

// K returns the number of clusters.
func (r *Result) K() int { return len(r.Centroids) }

// Sizes returns the number of records in each cluster.
func (r *Result) Sizes() []int {
	sizes := make([]int, r.K())
	for _, l := range r.Labels {
		sizes[l]++
	}
	return sizes
}

// Members returns the record indices labeled with cluster c.
func (r *Result) Members(c int) (*roaring.Bitmap, error) {
	if c < 0 || c >= r.K() {
		return nil, fmt.Errorf("cluster %d out of range [0, %d)", c, r.K())
	}
	bm := roaring.New()
	for i, l := range r.Labels {
		if l == c {
			bm.Add(uint32(i)) //nolint:gosec // record counts fit in uint32
		}
	}
	return bm, nil
}

// Clusters returns the members of every cluster, indexed by cluster.
func (r *Result) Clusters() []*roaring.Bitmap {
	clusters := make([]*roaring.Bitmap, r.K())
	for c := range clusters {
		clusters[c] = roaring.New()
	}
	for i, l := range r.Labels {
		clusters[l].Add(uint32(i)) //nolint:gosec // record counts fit in uint32
	}
	return clusters
}

// Predict returns the cluster whose centroid is nearest to v.
func (r *Result) Predict(v []float64) (int, error) {
	if len(r.Centroids) > 0 && len(v) != len(r.Centroids[0]) {
		return -1, &ErrDimensionMismatch{Expected: len(r.Centroids[0]), Actual: len(v)}
	}
	c, _, err := lloyd.Nearest(v, r.Centroids)
	if err != nil {
		return -1, translateError(err)
	}
	return c, nil
}

// Encode serializes the result with c (codec.Default if nil).
func (r *Result) Encode(c codec.Codec) ([]byte, error) {
	if c == nil {
		c = codec.Default
	}
	return c.Marshal(r)
}

// DecodeResult parses a result produced by Encode and checks its shape.
func DecodeResult(c codec.Codec, data []byte) (*Result, error) {
	if c == nil {
		c = codec.Default
	}
	var r Result
	if err := c.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("decode result (%s): %w", c.Name(), err)
	}
	for i, l := range r.Labels {
		if l < 0 || l >= r.K() {
			return nil, fmt.Errorf("decode result: record %d has label %d outside [0, %d)", i, l, r.K())
		}
	}
	return &r, nil
}
