package distance

import (
	"context"

	"geo-distance-service/internal/domain"
	"geo-distance-service/internal/ports"
)

// MockStrategy returns a canned result or error and counts invocations.
type MockStrategy struct {
	Km    float64
	Err   error
	Calls int
}

func (m *MockStrategy) CalculateDistance(
	_ context.Context,
	_ domain.GeoPoint,
	_ domain.GeoPoint,
) (float64, error) {
	m.Calls++
	if m.Err != nil {
		return 0, m.Err
	}
	return m.Km, nil
}

// MockFactory hands out a prepared strategy, or fails on demand.
type MockFactory struct {
	FactoryName string
	Strategy    ports.DistanceStrategy
	Err         error
}

func (f *MockFactory) Name() string {
	if f.FactoryName == "" {
		return "mock"
	}
	return f.FactoryName
}

func (f *MockFactory) CreateStrategy() (ports.DistanceStrategy, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	return f.Strategy, nil
}
