// Package kmeans partitions numeric records into k clusters with Lloyd's
// algorithm under Euclidean distance.
//
// # Quick Start
//
//	ds, _ := dataset.New([][]float64{{1, 1}, {1, 2}, {9, 9}, {9, 8}})
//	c, _ := kmeans.New(2, kmeans.WithSeed(42))
//	res, _ := c.Fit(ctx, ds, nil)
//	fmt.Println(res.Labels, res.Centroids, res.Rounds)
//
// Pass explicit starting centroids instead of nil to make a run fully
// deterministic:
//
//	res, _ := c.Fit(ctx, ds, [][]float64{{1, 1}, {9, 9}})
//
// # Rounds
//
// Every round assigns each record to its nearest centroid (ties go to the
// lowest cluster index) and then moves every centroid to the mean of its
// records. A run converges when no centroid component moved by more than the
// tolerance (WithTolerance, default 0: identical centroids). WithMaxRounds
// bounds a run; hitting the bound returns the last result with
// Result.Converged set to false.
//
// # Empty Clusters
//
// A cluster may lose all of its records. WithEmptyClusterPolicy selects the
// recovery: EmptyClusterReseed (default) moves the centroid to a random
// record that is not already a centroid, EmptyClusterKeep leaves it in place and EmptyClusterFail returns
// *ErrEmptyCluster. Datasets and explicit centroids must be finite, so
// centroids never become NaN.
//
// # Observability
//
// An Observer receives a RoundEvent after every round. Structured logging
// (WithLogger) and metrics (WithMetricsCollector, see the promcollector
// package for Prometheus) are disabled by default.
package kmeans
