package kmeans

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kmeans/distance"
	"github.com/hupe1980/kmeans/internal/lloyd"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrTooFewRecords is returned when k exceeds the number of records.
	ErrTooFewRecords = errors.New("k exceeds the number of records")

	// ErrEmptyDataset is returned when Fit is called without records.
	ErrEmptyDataset = errors.New("dataset is empty")

	// ErrCentroidCount is returned when the explicit initial centroids do not
	// number k.
	ErrCentroidCount = errors.New("initial centroid count does not match k")

	// ErrNonFiniteCentroid is returned when an explicit initial centroid has
	// a NaN or infinite component.
	ErrNonFiniteCentroid = errors.New("initial centroid is not finite")

	// ErrInvalidMaxRounds is returned when the round limit is not positive.
	ErrInvalidMaxRounds = errors.New("max rounds must be positive")

	// ErrInvalidTolerance is returned for a negative or NaN tolerance.
	ErrInvalidTolerance = errors.New("tolerance must be a non-negative number")
)

// ErrDimensionMismatch indicates a centroid or query whose dimension differs
// from the records'.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrEmptyCluster is returned under EmptyClusterFail when a round leaves a
// cluster without records.
type ErrEmptyCluster struct {
	Cluster int
	Round   int
}

func (e *ErrEmptyCluster) Error() string {
	return fmt.Sprintf("cluster %d has no records after round %d", e.Cluster, e.Round)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var dm *distance.ErrDimensionMismatch
	if errors.As(err, &dm) {
		return &ErrDimensionMismatch{Expected: dm.Expected, Actual: dm.Actual, cause: err}
	}
	if errors.Is(err, lloyd.ErrSampleTooLarge) {
		return fmt.Errorf("%w: %w", ErrTooFewRecords, err)
	}
	if errors.Is(err, lloyd.ErrInvalidSampleSize) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}

	return err
}
