package kmeans

import (
	"context"
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/hupe1980/kmeans/dataset"
	"github.com/hupe1980/kmeans/internal/lloyd"
)

// Clusterer partitions datasets into k clusters with Lloyd's algorithm.
//
// A Clusterer may be reused for several Fit calls, but not concurrently:
// it owns the random source configured through its options.
type Clusterer struct {
	k    int
	opts options
}

// New creates a Clusterer for k clusters.
func New(k int, optFns ...Option) (*Clusterer, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}

	opts := applyOptions(optFns)

	if opts.maxRounds <= 0 {
		return nil, ErrInvalidMaxRounds
	}
	if opts.tolerance < 0 || math.IsNaN(opts.tolerance) {
		return nil, ErrInvalidTolerance
	}
	switch opts.emptyCluster {
	case EmptyClusterReseed, EmptyClusterKeep, EmptyClusterFail:
	default:
		return nil, fmt.Errorf("invalid empty cluster policy: %s", opts.emptyCluster)
	}

	return &Clusterer{k: k, opts: opts}, nil
}

// K returns the number of clusters.
func (c *Clusterer) K() int { return c.k }

// Fit clusters ds. initial optionally supplies the k starting centroids; when
// it is nil, k distinct records are drawn at random.
//
// Parameter errors are returned before any round runs. A run that reaches
// the round limit without converging is not an error: the last labels and
// centroids are returned with Result.Converged set to false.
func (c *Clusterer) Fit(ctx context.Context, ds *dataset.Dataset, initial [][]float64) (*Result, error) {
	start := time.Now()
	res, err := c.fit(ctx, ds, initial)

	rounds, converged := 0, false
	if res != nil {
		rounds, converged = res.Rounds, res.Converged
	}
	c.opts.metricsCollector.RecordFit(rounds, converged, time.Since(start), err)

	return res, err
}

// run holds the state of one Fit.
type run struct {
	ds        *dataset.Dataset
	k         int
	centroids [][]float64
	labels    []int
	inertia   float64
	round     int
	reseeded  []int
	reseeds   int
	log       *Logger
}

func (c *Clusterer) fit(ctx context.Context, ds *dataset.Dataset, initial [][]float64) (*Result, error) {
	if ds == nil || ds.Len() == 0 {
		return nil, ErrEmptyDataset
	}
	if c.k > ds.Len() {
		return nil, fmt.Errorf("%w: k=%d, records=%d", ErrTooFewRecords, c.k, ds.Len())
	}

	log := c.opts.logger.
		WithRunID(uuid.NewString()).
		WithK(c.k).
		WithDimension(ds.Dim()).
		WithCount(ds.Len())

	centroids, err := c.initialCentroids(ds, initial)
	if err != nil {
		log.LogFit(ctx, 0, false, err)
		return nil, err
	}

	r := &run{
		ds:        ds,
		k:         c.k,
		centroids: centroids,
		log:       log,
	}

	converged := false
	for r.round < c.opts.maxRounds {
		if err := ctx.Err(); err != nil {
			log.LogFit(ctx, r.round, false, err)
			return nil, err
		}

		roundStart := time.Now()

		prev := r.centroids
		if err := c.step(r); err != nil {
			log.LogFit(ctx, r.round, false, err)
			return nil, err
		}
		r.round++

		shift := lloyd.Shift(prev, r.centroids)
		// A reseeded round always continues; the new centroid has not been
		// through an assignment yet.
		converged = len(r.reseeded) == 0 && lloyd.Converged(prev, r.centroids, c.opts.tolerance)

		c.opts.metricsCollector.RecordRound(r.round, shift, len(r.reseeded), time.Since(roundStart))
		log.LogRound(ctx, r.round, shift, r.inertia, len(r.reseeded))
		c.notify(ctx, r, shift, converged)

		if converged {
			break
		}
	}

	log.LogFit(ctx, r.round, converged, nil)

	return &Result{
		Labels:    r.labels,
		Centroids: r.centroids,
		Rounds:    r.round,
		Converged: converged,
		Inertia:   r.inertia,
		Reseeded:  r.reseeds,
	}, nil
}

func (c *Clusterer) initialCentroids(ds *dataset.Dataset, initial [][]float64) ([][]float64, error) {
	if initial == nil {
		idx, err := lloyd.SampleDistinct(c.opts.rng, ds.Len(), c.k)
		if err != nil {
			return nil, translateError(err)
		}
		return lloyd.Seed(ds, idx), nil
	}

	if len(initial) != c.k {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrCentroidCount, len(initial), c.k)
	}
	centroids := make([][]float64, c.k)
	for i, v := range initial {
		if len(v) != ds.Dim() {
			return nil, &ErrDimensionMismatch{Expected: ds.Dim(), Actual: len(v)}
		}
		if slices.ContainsFunc(v, nonFinite) {
			return nil, fmt.Errorf("%w: centroid %d", ErrNonFiniteCentroid, i)
		}
		centroids[i] = slices.Clone(v)
	}
	return centroids, nil
}

// step runs one assign/update round and applies the empty cluster policy.
func (c *Clusterer) step(r *run) error {
	labels, inertia, err := lloyd.Assign(r.ds, r.centroids)
	if err != nil {
		return translateError(err)
	}

	means := lloyd.Update(r.ds, labels, r.k)
	next := make([][]float64, r.k)
	r.reseeded = r.reseeded[:0:0]

	var empty []int
	for cl, m := range means {
		if m.Empty() {
			empty = append(empty, cl)
			continue
		}
		next[cl] = m.Vector
	}

	for _, cl := range empty {
		switch c.opts.emptyCluster {
		case EmptyClusterFail:
			return &ErrEmptyCluster{Cluster: cl, Round: r.round + 1}
		case EmptyClusterKeep:
			next[cl] = slices.Clone(r.centroids[cl])
		default:
			row, ok := c.reseedRow(r.ds, next)
			if !ok {
				// Every record already sits on a centroid.
				next[cl] = slices.Clone(r.centroids[cl])
				continue
			}
			next[cl] = row
			r.reseeded = append(r.reseeded, cl)
			r.reseeds++
		}
	}

	r.labels = labels
	r.inertia = inertia
	r.centroids = next
	return nil
}

// reseedRow returns a copy of a random record that coincides with none of
// the centroids placed so far. It reports false if no such record exists.
func (c *Clusterer) reseedRow(ds *dataset.Dataset, placed [][]float64) ([]float64, bool) {
	n := ds.Len()
	start := c.opts.rng.Intn(n)
	for off := range n {
		row := ds.Row((start + off) % n)
		taken := slices.ContainsFunc(placed, func(centroid []float64) bool {
			return centroid != nil && slices.Equal(centroid, row)
		})
		if !taken {
			return slices.Clone(row), true
		}
	}
	return nil, false
}

func nonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }

func (c *Clusterer) notify(ctx context.Context, r *run, shift float64, converged bool) {
	if c.opts.observer == nil {
		return
	}
	c.opts.observer.OnRound(ctx, RoundEvent{
		Round:     r.round,
		Labels:    slices.Clone(r.labels),
		Centroids: cloneCentroids(r.centroids),
		Shift:     shift,
		Inertia:   r.inertia,
		Reseeded:  slices.Clone(r.reseeded),
		Converged: converged,
	})
}

func cloneCentroids(src [][]float64) [][]float64 {
	dst := make([][]float64, len(src))
	for i, v := range src {
		dst[i] = slices.Clone(v)
	}
	return dst
}
