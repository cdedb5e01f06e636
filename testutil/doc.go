// Package testutil provides testing utilities for kmeans.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random records and
// well separated Gaussian blobs with known membership.
//
// # Random Records
//
//	rng := testutil.NewRNG(seed)
//	uniform := rng.UniformVectors(100, 2)   // uniform [0, 1)
//	normal := rng.GaussianVectors(100, 2)   // standard normal
//
// # Blobs
//
//	centers := testutil.GridCenters(3, 2, 10)
//	records, labels := rng.Blobs(300, centers, 0.5)
//	tags := testutil.Tags(labels)
package testutil
