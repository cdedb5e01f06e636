// Package plot renders clustering results as standalone HTML charts.
//
// Scatter draws every cluster in its own color with the centroids in black.
// Records with more than two components are projected onto two axes by
// averaging consecutive column groups. Sizes draws a bar per cluster.
package plot
