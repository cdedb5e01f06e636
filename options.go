package kmeans

import (
	"log/slog"
	"math/rand"
	"time"
)

// DefaultMaxRounds bounds a Fit that never reaches a fixed point.
const DefaultMaxRounds = 1000

type options struct {
	maxRounds        int
	tolerance        float64
	rng              *rand.Rand
	emptyCluster     EmptyClusterPolicy
	observer         Observer
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a Clusterer.
type Option func(*options)

// WithMaxRounds caps the number of assign/update rounds of a single Fit.
// A run that hits the cap is returned with Result.Converged set to false.
func WithMaxRounds(n int) Option {
	return func(o *options) {
		o.maxRounds = n
	}
}

// WithTolerance sets the largest per-component centroid change that still
// counts as converged. The default of 0 stops only when two consecutive
// rounds produce identical centroids.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		o.tolerance = tol
	}
}

// WithSeed seeds the random source used for initial centroids and reseeding.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.rng = rand.New(rand.NewSource(seed)) //nolint:gosec // not security sensitive
	}
}

// WithRand sets the random source used for initial centroids and reseeding.
// The Clusterer takes ownership of rng; it must not be shared with other
// goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithEmptyClusterPolicy selects what happens to a cluster that loses all of
// its records during a round. The default is EmptyClusterReseed, which moves
// the centroid to a random record not already used as a centroid. When every
// record coincides with a centroid (fewer distinct records than k) the
// centroid stays where it was, so such a run still converges.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithObserver registers an Observer notified after every round.
//
// Example:
//
//	c, _ := kmeans.New(3, kmeans.WithObserver(kmeans.ObserverFunc(
//	    func(ctx context.Context, ev kmeans.RoundEvent) {
//	        fmt.Printf("round %d shift %.4f\n", ev.Round, ev.Shift)
//	    })))
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// WithMetricsCollector configures metrics collection for clustering runs.
// Pass nil to disable metrics collection.
//
// Example with basic metrics:
//
//	metrics := &kmeans.BasicMetricsCollector{}
//	c, _ := kmeans.New(3, kmeans.WithMetricsCollector(metrics))
//	// ... fit ...
//	stats := metrics.GetStats()
//	fmt.Printf("Rounds: %d, Avg latency: %dns\n", stats.RoundCount, stats.RoundAvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for clustering runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kmeans.NewJSONLogger(slog.LevelInfo)
//	c, _ := kmeans.New(3, kmeans.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		maxRounds:        DefaultMaxRounds,
		emptyCluster:     EmptyClusterReseed,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint:gosec // not security sensitive
	}
	if o.metricsCollector == nil {
		o.metricsCollector = NoopMetricsCollector{}
	}
	if o.logger == nil {
		o.logger = NoopLogger()
	}
	return o
}
