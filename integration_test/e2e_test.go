package integration_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/klauspost/compress/zstd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/blobstore"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/plot"
	"github.com/hupe1980/kmeans/testutil"
)

// tsv renders records with their tags in the last column.
func tsv(records [][]float64, tags []string) []byte {
	var sb strings.Builder
	for i, r := range records {
		for _, x := range r {
			fmt.Fprintf(&sb, "%g\t", x)
		}
		sb.WriteString(tags[i])
		sb.WriteByte('\n')
	}
	return []byte(sb.String())
}

func zstdCompress(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw, err := zstd.NewWriter(&buf)
	require.NoError(t, err)
	_, err = zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestE2E_StoreToClusters(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(11)
	centers := testutil.GridCenters(4, 3, 25)
	records, truth := rng.Blobs(400, centers, 0.8)
	tags := testutil.Tags(truth)

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "blobs.tsv.zst", zstdCompress(t, tsv(records, tags))))

	ds, err := dataset.Open(ctx, store, "blobs.tsv.zst")
	require.NoError(t, err)
	require.Equal(t, 400, ds.Len())
	require.Equal(t, 3, ds.Dim())
	require.True(t, ds.HasTags())

	metrics := &kmeans.BasicMetricsCollector{}
	c, err := kmeans.New(4, kmeans.WithMetricsCollector(metrics))
	require.NoError(t, err)

	// One record per blob; records cycle through the centers.
	res, err := c.Fit(ctx, ds, [][]float64{ds.Row(0), ds.Row(1), ds.Row(2), ds.Row(3)})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, []int{100, 100, 100, 100}, res.Sizes())

	purity, err := kmeans.Purity(res.Labels, ds.Tags())
	require.NoError(t, err)
	assert.Equal(t, 1.0, purity)

	for i, centroid := range res.Centroids {
		assert.InDeltaSlice(t, centers[i], centroid, 0.5)
	}

	stats := metrics.GetStats()
	assert.Equal(t, int64(1), stats.FitCount)
	assert.Equal(t, int64(res.Rounds), stats.RoundCount)

	var html bytes.Buffer
	require.NoError(t, plot.Scatter(&html, ds, res))
	assert.Contains(t, html.String(), "Cluster 3")
}

func TestE2E_RandomInitialization(t *testing.T) {
	ctx := context.Background()
	rng := testutil.NewRNG(5)
	records, _ := rng.Blobs(300, testutil.GridCenters(3, 2, 30), 1)

	ds, err := dataset.New(records)
	require.NoError(t, err)

	for seed := int64(0); seed < 10; seed++ {
		c, err := kmeans.New(3, kmeans.WithSeed(seed))
		require.NoError(t, err)

		res, err := c.Fit(ctx, ds, nil)
		require.NoError(t, err)
		assert.True(t, res.Converged, "seed %d", seed)

		for _, size := range res.Sizes() {
			assert.Positive(t, size, "seed %d", seed)
		}
	}
}
