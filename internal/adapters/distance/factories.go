package distance

import "geo-distance-service/internal/ports"

// HaversineFactory builds the pure in-process strategy. It carries no state.
type HaversineFactory struct{}

func NewHaversineFactory() HaversineFactory { return HaversineFactory{} }

func (HaversineFactory) Name() string { return "haversine" }

func (HaversineFactory) CreateStrategy() (ports.DistanceStrategy, error) {
	return NewHaversineStrategy(), nil
}

// MatrixAPIFactory builds remote strategies bound to one API key. The key is
// fixed at construction and checked only when a strategy is built, so a
// factory for a missing key can sit unused without failing anything.
type MatrixAPIFactory struct {
	apiKey string
	opts   []Option
}

func NewMatrixAPIFactory(apiKey string, opts ...Option) MatrixAPIFactory {
	return MatrixAPIFactory{apiKey: apiKey, opts: opts}
}

func (MatrixAPIFactory) Name() string { return "remote" }

func (f MatrixAPIFactory) CreateStrategy() (ports.DistanceStrategy, error) {
	return NewMatrixAPIStrategy(f.apiKey, f.opts...)
}
