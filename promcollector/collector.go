package promcollector

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/hupe1980/kmeans"
)

// Namespace prefixes every metric name.
const Namespace = "kmeans"

var _ kmeans.MetricsCollector = (*Collector)(nil)

// Collector implements kmeans.MetricsCollector on Prometheus metrics.
type Collector struct {
	roundLatency prometheus.Histogram
	roundShift   prometheus.Gauge
	reseeds      prometheus.Counter
	fitLatency   *prometheus.HistogramVec
	fitRounds    prometheus.Histogram
	fits         *prometheus.CounterVec
}

// New creates a Collector and registers its metrics with reg.
// A nil reg registers with prometheus.DefaultRegisterer.
func New(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	c := &Collector{
		roundLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "round_duration_seconds",
			Help:      "Duration of one assign/update round",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}),
		roundShift: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: Namespace,
			Name:      "round_shift",
			Help:      "Largest centroid component change of the last round",
		}),
		reseeds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "reseeds_total",
			Help:      "Empty clusters moved to a random record",
		}),
		fitLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "fit_duration_seconds",
			Help:      "Duration of a clustering run",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		fitRounds: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: Namespace,
			Name:      "fit_rounds",
			Help:      "Rounds per clustering run",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 11),
		}),
		fits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: Namespace,
			Name:      "fits_total",
			Help:      "Clustering runs by outcome",
		}, []string{"status"}),
	}

	for _, m := range []prometheus.Collector{
		c.roundLatency, c.roundShift, c.reseeds, c.fitLatency, c.fitRounds, c.fits,
	} {
		if err := reg.Register(m); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// RecordRound implements kmeans.MetricsCollector.
func (c *Collector) RecordRound(_ int, shift float64, reseeded int, d time.Duration) {
	c.roundLatency.Observe(d.Seconds())
	c.roundShift.Set(shift)
	c.reseeds.Add(float64(reseeded))
}

// RecordFit implements kmeans.MetricsCollector.
func (c *Collector) RecordFit(rounds int, converged bool, d time.Duration, err error) {
	status := "converged"
	switch {
	case err != nil:
		status = "error"
	case !converged:
		status = "not_converged"
	}
	c.fitLatency.WithLabelValues(status).Observe(d.Seconds())
	c.fits.WithLabelValues(status).Inc()
	if err == nil {
		c.fitRounds.Observe(float64(rounds))
	}
}
