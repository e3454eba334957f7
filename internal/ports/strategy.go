package ports

import (
	"context"

	"geo-distance-service/internal/domain"
)

// Contract for computing the distance between two geographic points.
type DistanceStrategy interface {
	// Return the distance in kilometers between origin and destination.
	// Implementations may block on the network; failures come back as an
	// error in the calculation taxonomy, never as a panic.
	CalculateDistance(ctx context.Context, origin, destination domain.GeoPoint) (float64, error)
}

// Port: a boundary for constructing strategy instances. A factory carries
// only its construction-time parameters and is safe to keep around for the
// lifetime of the process.
type StrategyFactory interface {
	// Identify the strategy this factory builds, e.g. "haversine".
	Name() string
	// Build a fresh strategy instance. Configuration problems such as a
	// missing API key surface here, not during calculation.
	CreateStrategy() (DistanceStrategy, error)
}
