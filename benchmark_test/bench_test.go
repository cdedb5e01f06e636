package benchmark_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/testutil"
)

func BenchmarkFit(b *testing.B) {
	for _, bc := range []struct {
		n, dim, k int
	}{
		{1_000, 2, 4},
		{10_000, 16, 8},
		{10_000, 128, 16},
	} {
		b.Run(fmt.Sprintf("n=%d/dim=%d/k=%d", bc.n, bc.dim, bc.k), func(b *testing.B) {
			benchmarkFit(b, bc.n, bc.dim, bc.k)
		})
	}
}

func benchmarkFit(b *testing.B, n, dim, k int) {
	b.ReportAllocs()

	rng := testutil.NewRNG(1)
	vectors, _ := rng.Blobs(n, testutil.GridCenters(k, dim, 3), 1)
	ds, err := dataset.New(vectors)
	if err != nil {
		b.Fatal(err)
	}

	metrics := &kmeans.BasicMetricsCollector{}
	c, err := kmeans.New(k, kmeans.WithSeed(1), kmeans.WithMetricsCollector(metrics))
	if err != nil {
		b.Fatal(err)
	}

	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Fit(ctx, ds, nil); err != nil {
			b.Fatal(err)
		}
	}
	b.StopTimer()

	stats := metrics.GetStats()
	if stats.FitCount > 0 {
		b.ReportMetric(float64(stats.RoundCount)/float64(stats.FitCount), "rounds/op")
	}
}

func BenchmarkPredict(b *testing.B) {
	rng := testutil.NewRNG(2)
	vectors, _ := rng.Blobs(5_000, testutil.GridCenters(32, 64, 3), 1)
	ds, err := dataset.New(vectors)
	if err != nil {
		b.Fatal(err)
	}

	c, err := kmeans.New(32, kmeans.WithSeed(2), kmeans.WithMaxRounds(20))
	if err != nil {
		b.Fatal(err)
	}
	res, err := c.Fit(context.Background(), ds, nil)
	if err != nil {
		b.Fatal(err)
	}

	queries := rng.GaussianVectors(1024, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := res.Predict(queries[i%len(queries)]); err != nil {
			b.Fatal(err)
		}
	}
}
