package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/kmeans"
	"github.com/hupe1980/kmeans/dataset"
)

// narrator prints the clusters and centroids after every round.
type narrator struct {
	out io.Writer
	ds  *dataset.Dataset
}

// OnRound implements kmeans.Observer.
func (n *narrator) OnRound(_ context.Context, ev kmeans.RoundEvent) {
	fmt.Fprintf(n.out, "\nRound %d (shift %g, inertia %g)\n", ev.Round, ev.Shift, ev.Inertia)
	for _, c := range ev.Reseeded {
		fmt.Fprintf(n.out, "K%d was empty and got a new centroid\n", c+1)
	}
	fmt.Fprintln(n.out, "Clusters")
	writeClusters(n.out, n.ds, ev.Labels, len(ev.Centroids))
	fmt.Fprintln(n.out, "Centroids")
	writeCentroids(n.out, ev.Centroids)
}

func writeClusters(w io.Writer, ds *dataset.Dataset, labels []int, k int) {
	members := make([][]string, k)
	for i, l := range labels {
		members[l] = append(members[l], "{"+formatVector(ds.Row(i), " ")+"}")
	}
	for c, m := range members {
		fmt.Fprintf(w, "K%d : [ %s ]\n", c+1, strings.Join(m, " "))
	}
}

func writeCentroids(w io.Writer, centroids [][]float64) {
	for c, v := range centroids {
		fmt.Fprintf(w, "C%d = {%s}\n", c+1, formatVector(v, " "))
	}
}

func formatVector(v []float64, sep string) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = strconv.FormatFloat(x, 'g', -1, 64)
	}
	return strings.Join(parts, sep)
}

// writeReport prints the final clusters and the run summary.
func writeReport(w io.Writer, ds *dataset.Dataset, res *kmeans.Result) error {
	fmt.Fprintln(w, "\nThe final clusters are:")
	writeClusters(w, ds, res.Labels, res.K())
	fmt.Fprintln(w, "Centroids")
	writeCentroids(w, res.Centroids)

	if res.Converged {
		fmt.Fprintf(w, "\nClustering converged at round %d\n", res.Rounds)
	} else {
		fmt.Fprintf(w, "\nClustering stopped at round %d without converging\n", res.Rounds)
	}
	fmt.Fprintf(w, "Inertia: %g\n", res.Inertia)
	if res.Reseeded > 0 {
		fmt.Fprintf(w, "Reseeded empty clusters: %d\n", res.Reseeded)
	}

	if ds.HasTags() {
		purity, err := kmeans.Purity(res.Labels, ds.Tags())
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "Purity: %.4f\n", purity)
	}
	return nil
}
