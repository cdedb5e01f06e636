package kmeans

import "context"

// RoundEvent describes one finished assign/update round. Its slices are
// copies and may be retained.
type RoundEvent struct {
	// Round is 1-based.
	Round int
	// Labels holds the assignment computed this round.
	Labels []int
	// Centroids holds the centroids produced by this round's update.
	Centroids [][]float64
	// Shift is the largest absolute change of any centroid component.
	Shift float64
	// Inertia is the sum of squared distances of the assignment.
	Inertia float64
	// Reseeded lists the clusters that were empty and got a new centroid.
	Reseeded []int
	// Converged is true on the final round of a converged run.
	Converged bool
}

// Observer is notified after every round of a Fit.
type Observer interface {
	OnRound(ctx context.Context, ev RoundEvent)
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx context.Context, ev RoundEvent)

// OnRound implements Observer.
func (f ObserverFunc) OnRound(ctx context.Context, ev RoundEvent) { f(ctx, ev) }
