// Package lloyd implements the steps of Lloyd's k-means iteration over a
// dataset.Dataset: initial centroid sampling, nearest-centroid assignment,
// mean update and the convergence test.
//
// The steps are stateless; the caller owns the centroids and labels between
// rounds and decides what to do with empty clusters.
package lloyd
