package kmeans

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting clustering metrics.
// Implement this interface to integrate with monitoring systems; see the
// promcollector package for Prometheus.
type MetricsCollector interface {
	// RecordRound is called after each assign/update round.
	// shift is the largest centroid component change, reseeded the number of
	// empty clusters that were reseeded in the round.
	RecordRound(round int, shift float64, reseeded int, duration time.Duration)

	// RecordFit is called once per Fit. err is nil if the run produced a
	// result, converged is false when the round limit stopped it.
	RecordFit(rounds int, converged bool, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
// Use this when metrics collection is not needed.
type NoopMetricsCollector struct{}

func (NoopMetricsCollector) RecordRound(int, float64, int, time.Duration) {}
func (NoopMetricsCollector) RecordFit(int, bool, time.Duration, error)    {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	RoundCount      atomic.Int64
	RoundTotalNanos atomic.Int64
	ReseedCount     atomic.Int64
	FitCount        atomic.Int64
	FitErrors       atomic.Int64
	FitNotConverged atomic.Int64
	FitTotalNanos   atomic.Int64
}

// RecordRound implements MetricsCollector.
func (b *BasicMetricsCollector) RecordRound(round int, shift float64, reseeded int, duration time.Duration) {
	b.RoundCount.Add(1)
	b.RoundTotalNanos.Add(duration.Nanoseconds())
	b.ReseedCount.Add(int64(reseeded))
}

// RecordFit implements MetricsCollector.
func (b *BasicMetricsCollector) RecordFit(rounds int, converged bool, duration time.Duration, err error) {
	b.FitCount.Add(1)
	b.FitTotalNanos.Add(duration.Nanoseconds())
	switch {
	case err != nil:
		b.FitErrors.Add(1)
	case !converged:
		b.FitNotConverged.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	return BasicMetricsStats{
		RoundCount:      b.RoundCount.Load(),
		RoundAvgNanos:   avg(b.RoundTotalNanos.Load(), b.RoundCount.Load()),
		ReseedCount:     b.ReseedCount.Load(),
		FitCount:        b.FitCount.Load(),
		FitErrors:       b.FitErrors.Load(),
		FitNotConverged: b.FitNotConverged.Load(),
		FitAvgNanos:     avg(b.FitTotalNanos.Load(), b.FitCount.Load()),
	}
}

func avg(total, count int64) int64 {
	if count == 0 {
		return 0
	}
	return total / count
}

// BasicMetricsStats is a snapshot of BasicMetricsCollector state.
type BasicMetricsStats struct {
	RoundCount      int64
	RoundAvgNanos   int64
	ReseedCount     int64
	FitCount        int64
	FitErrors       int64
	FitNotConverged int64
	FitAvgNanos     int64
}
